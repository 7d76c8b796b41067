// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file contains database bootstrapping helpers for
// SQLite (pure Go driver) and schema migrations.
package repo

import (
	"os"
	"path/filepath"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/lexcraft/go-legal-backend/internal/domain"
)

// sqlitePragmas tune the connection for a single-process API server: WAL so
// readers never block the writer, a busy timeout instead of immediate
// SQLITE_BUSY, and enforced foreign keys (off by default in SQLite).
var sqlitePragmas = []string{
	"PRAGMA journal_mode=WAL;",
	"PRAGMA synchronous=NORMAL;",
	"PRAGMA foreign_keys=ON;",
	"PRAGMA busy_timeout=5000;",
}

// OpenSQLite opens (or creates) a SQLite database at path, applies the
// connection PRAGMAs, and bounds the pool.
func OpenSQLite(path string) (*gorm.DB, error) {
	// A missing parent directory surfaces from the driver as a cryptic
	// "out of memory (14)"; stat it up front for a readable error.
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	for _, pragma := range sqlitePragmas {
		db.Exec(pragma)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	return db, nil
}

// AutoMigrate creates or updates the schema for every domain model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Lawyer{},
		&domain.LegalCase{},
		&domain.LegalDocument{},
		&domain.Statute{},
		&domain.Precedent{},
		&domain.ResearchSession{},
		&domain.AnalysisResult{},
		&domain.ApprovalRequest{},
		&domain.FeedbackRecord{},
		&domain.Idempotency{},
	)
}

// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the reference
// law library: the Statute and Precedent models.
//
// Statute search runs directly against the database with LIKE matching,
// ranked by citation count. Precedent ranking is more involved (scored
// keyword matching) and lives in the search package, which builds its
// in-memory index from ListPrecedents.
//
// Error semantics:
//   - When a record is not found, functions return gorm.ErrRecordNotFound
//     (also exported as ErrNotFound).
//   - When an insert violates a unique constraint (statute code, citation),
//     the create functions return ErrDuplicate.
//
// Functions:
//
//   - CreateStatute(ctx, db, s) -> error
//   - SearchStatutes(ctx, db, query, jurisdiction, category, limit) -> []domain.Statute, error
//   - CreatePrecedent(ctx, db, p) -> error
//   - GetPrecedent(ctx, db, id) -> *domain.Precedent, error
//   - ListPrecedents(ctx, db, includeOverruled) -> []domain.Precedent, error
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/lexcraft/go-legal-backend/internal/domain"
)

// CreateStatute inserts a new Statute row. The statute code is unique; a
// conflicting insert returns ErrDuplicate. On other failures, it returns a
// DB error.
func CreateStatute(ctx context.Context, db *gorm.DB, s *domain.Statute) error {
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// SearchStatutes returns statutes whose title, summary or full text contains
// query (case-insensitive LIKE), optionally narrowed by jurisdiction and
// category, ordered by citation count descending. limit caps the result set;
// values < 1 fall back to 10. On DB error, it returns the error.
func SearchStatutes(ctx context.Context, db *gorm.DB, query, jurisdiction, category string, limit int) ([]domain.Statute, error) {
	if limit < 1 {
		limit = 10
	}
	pattern := "%" + query + "%"
	q := db.WithContext(ctx).
		Where("(title LIKE ? OR summary LIKE ? OR full_text LIKE ?)", pattern, pattern, pattern)
	if jurisdiction != "" {
		q = q.Where("jurisdiction = ?", jurisdiction)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var out []domain.Statute
	err := q.Order("citation_count desc").Limit(limit).Find(&out).Error
	return out, err
}

// CreatePrecedent inserts a new Precedent row. The citation is unique; a
// conflicting insert returns ErrDuplicate. On other failures, it returns a
// DB error.
func CreatePrecedent(ctx context.Context, db *gorm.DB, p *domain.Precedent) error {
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// GetPrecedent fetches a single precedent by its ID. If the record does not
// exist, it returns ErrNotFound. On other DB errors, the raw error is returned.
func GetPrecedent(ctx context.Context, db *gorm.DB, id int64) (*domain.Precedent, error) {
	var p domain.Precedent
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPrecedents returns the precedent corpus ordered by importance score
// descending. Overruled precedents are excluded unless includeOverruled is
// true. On DB error, it returns the error.
func ListPrecedents(ctx context.Context, db *gorm.DB, includeOverruled bool) ([]domain.Precedent, error) {
	q := db.WithContext(ctx)
	if !includeOverruled {
		q = q.Where("overruled = ?", false)
	}
	var out []domain.Precedent
	err := q.Order("importance_score desc").Find(&out).Error
	return out, err
}

package repo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/lexcraft/go-legal-backend/internal/domain"
)

func TestOpenSQLite_RejectsMissingParentDir(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "missing", "app.db")

	db, err := OpenSQLite(bad)
	if db != nil || err == nil {
		t.Fatalf("OpenSQLite(%q) = (%v, %v), want error", bad, db, err)
	}

	// Driver wording differs by platform, so accept any of the usual forms.
	lower := strings.ToLower(err.Error())
	ok := os.IsNotExist(err)
	for _, form := range []string{
		"unable to open database file",
		"no such file or directory",
		"out of memory", // sqlite code 14 surfaces this way
	} {
		ok = ok || strings.Contains(lower, form)
	}
	if !ok {
		t.Fatalf("unrecognized open error: %v", err)
	}
}

func TestOpenSQLite_PragmasPoolAndSchema(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	t.Run("pragmas applied", func(t *testing.T) {
		pragmas := []struct{ stmt, want string }{
			{"PRAGMA journal_mode;", "wal"},
			{"PRAGMA synchronous;", "1"}, // NORMAL
			{"PRAGMA foreign_keys;", "1"},
			{"PRAGMA busy_timeout;", "5000"},
		}
		for _, p := range pragmas {
			var got string
			if err := db.Raw(p.stmt).Row().Scan(&got); err != nil {
				t.Fatalf("%s %v", p.stmt, err)
			}
			if !strings.EqualFold(got, p.want) {
				t.Errorf("%s = %q, want %q", p.stmt, got, p.want)
			}
		}
	})

	t.Run("pool tuned", func(t *testing.T) {
		if stats := sqlDB.Stats(); stats.MaxOpenConnections != 10 {
			t.Errorf("MaxOpenConnections = %d, want 10", stats.MaxOpenConnections)
		}
	})

	t.Run("schema migrates and takes writes", func(t *testing.T) {
		if err := AutoMigrate(db); err != nil {
			t.Fatalf("AutoMigrate: %v", err)
		}
		m := db.Migrator()
		for _, model := range []any{
			&domain.Lawyer{}, &domain.LegalCase{}, &domain.LegalDocument{},
			&domain.Statute{}, &domain.Precedent{},
			&domain.ResearchSession{}, &domain.AnalysisResult{},
			&domain.ApprovalRequest{}, &domain.FeedbackRecord{}, &domain.Idempotency{},
		} {
			if !m.HasTable(model) {
				t.Errorf("no table for %T", model)
			}
		}

		// Insert a small related slice of the schema and read it back.
		lawyer := &domain.Lawyer{Name: "Jane Doe", BarNumber: "NY123456", Jurisdiction: "New York"}
		if err := db.Create(lawyer).Error; err != nil {
			t.Fatalf("insert lawyer: %v", err)
		}
		if lawyer.ID == 0 {
			t.Fatal("lawyer ID not assigned")
		}
		records := []any{
			&domain.LegalCase{CaseNumber: "NY-2025-0001", Title: "Doe v. Roe", LawyerID: lawyer.ID},
			&domain.ResearchSession{SessionName: "Case Law Research - test", LawyerID: lawyer.ID, ResearchQuery: "q"},
		}
		for _, rec := range records {
			if err := db.Create(rec).Error; err != nil {
				t.Fatalf("insert %T: %v", rec, err)
			}
		}

		var got domain.Lawyer
		if err := db.First(&got, "id = ?", lawyer.ID).Error; err != nil || got.BarNumber != lawyer.BarNumber {
			t.Fatalf("readback lawyer: err=%v got=%+v", err, got)
		}
	})
}

// Keeps the constructor signature stable for cmd wiring.
var _ func(string) (*gorm.DB, error) = OpenSQLite

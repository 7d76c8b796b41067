// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Lawyer model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a lawyer is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - When an insert violates the unique bar number constraint,
//     CreateLawyer returns ErrDuplicate.
//   - On other DB errors (connectivity issues, etc.), the raw gorm error
//     is propagated.
//
// Functions:
//
//   - CreateLawyer(ctx, db, lawyer) -> error
//     Inserts a new Lawyer row; the integer primary key is assigned by the DB.
//
//   - GetLawyer(ctx, db, id) -> *domain.Lawyer, error
//     Fetches a single lawyer by ID, or ErrNotFound if missing.
//
//   - GetLawyerByBarNumber(ctx, db, barNumber) -> *domain.Lawyer, error
//     Fetches a single lawyer by bar number, or ErrNotFound if missing.
//
//   - ListLawyers(ctx, db, practiceArea, jurisdiction) -> []domain.Lawyer, error
//     Returns lawyers matching the optional filters, ordered by name.
//
//   - CountLawyers(ctx, db, practiceArea, jurisdiction) -> (int64, error)
//     Returns the number of lawyers matching the optional filters.
//
//   - ListLawyersPage(ctx, db, practiceArea, jurisdiction, offset, limit) -> []domain.Lawyer, error
//     Returns a paginated slice of lawyers matching the optional filters.
//
// Usage:
//
//	// Within a service layer
//	l, err := repo.GetLawyer(ctx, db, lawyerID)
//	if errors.Is(err, repo.ErrNotFound) {
//	    // handle missing
//	} else if err != nil {
//	    // handle DB failure
//	}
//
// This repository is designed to be wrapped by a higher-level service
// (see services.LawyerService) which enforces business rules such as
// input validation and profile statistics.
package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/lexcraft/go-legal-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// isUniqueViolation reports whether err is a unique-constraint failure.
// glebarez/sqlite often returns plain-text errors for UNIQUE violations.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "unique constraint failed") ||
		strings.Contains(low, "constraint failed: unique")
}

// CreateLawyer inserts a new Lawyer row. The primary key is assigned by the
// database and written back into lawyer.ID.
//
// Bar number and email are unique; a conflicting insert returns ErrDuplicate.
// On other failures, it returns a DB error.
func CreateLawyer(ctx context.Context, db *gorm.DB, lawyer *domain.Lawyer) error {
	if err := db.WithContext(ctx).Create(lawyer).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// GetLawyer fetches a single lawyer by its ID. If the record does not exist,
// it returns ErrNotFound. On other DB errors, the raw error is returned.
func GetLawyer(ctx context.Context, db *gorm.DB, id int64) (*domain.Lawyer, error) {
	var l domain.Lawyer
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// GetLawyerByBarNumber fetches a single lawyer by bar number. If the record
// does not exist, it returns ErrNotFound. On other DB errors, the raw error
// is returned.
func GetLawyerByBarNumber(ctx context.Context, db *gorm.DB, barNumber string) (*domain.Lawyer, error) {
	var l domain.Lawyer
	err := db.WithContext(ctx).
		Where("bar_number = ?", barNumber).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// lawyerFilters scopes a query by the optional practiceArea and jurisdiction
// filters. Empty strings match all rows.
func lawyerFilters(q *gorm.DB, practiceArea, jurisdiction string) *gorm.DB {
	if practiceArea != "" {
		q = q.Where("practice_areas LIKE ?", "%"+practiceArea+"%")
	}
	if jurisdiction != "" {
		q = q.Where("jurisdiction = ?", jurisdiction)
	}
	return q
}

// ListLawyers returns all lawyers matching the optional practiceArea and
// jurisdiction filters, ordered by name ascending. It returns an empty slice
// when nothing matches. On DB error, it returns the error.
func ListLawyers(ctx context.Context, db *gorm.DB, practiceArea, jurisdiction string) ([]domain.Lawyer, error) {
	var out []domain.Lawyer
	err := lawyerFilters(db.WithContext(ctx), practiceArea, jurisdiction).
		Order("name asc").
		Find(&out).Error
	return out, err
}

// CountLawyers returns the number of lawyers matching the optional
// practiceArea and jurisdiction filters. On DB error, it returns the error.
func CountLawyers(ctx context.Context, db *gorm.DB, practiceArea, jurisdiction string) (int64, error) {
	var total int64
	err := lawyerFilters(db.WithContext(ctx).Model(&domain.Lawyer{}), practiceArea, jurisdiction).
		Count(&total).Error
	return total, err
}

// ListLawyersPage returns a paginated slice of lawyers matching the optional
// filters, ordered by name ascending. Use CountLawyers to obtain the total
// for pagination metadata. On DB error, it returns the error.
//
// The caller is responsible for computing offset and limit (e.g., (page-1)*pageSize).
func ListLawyersPage(ctx context.Context, db *gorm.DB, practiceArea, jurisdiction string, offset, limit int) ([]domain.Lawyer, error) {
	var out []domain.Lawyer
	err := lawyerFilters(db.WithContext(ctx), practiceArea, jurisdiction).
		Order("name asc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

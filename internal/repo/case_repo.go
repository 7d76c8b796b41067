// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the LegalCase
// model.
//
// Error semantics:
//   - When a case is not found, functions return gorm.ErrRecordNotFound
//     (also exported as ErrNotFound).
//   - When an insert violates the case_number unique constraint,
//     CreateCase returns ErrDuplicate.
//   - On other DB errors, the raw gorm error is propagated.
//
// Functions:
//
//   - CreateCase(ctx, db, c) -> error
//     Inserts a new LegalCase row; the primary key is assigned by the DB.
//
//   - GetCase(ctx, db, id) -> *domain.LegalCase, error
//     Fetches a single case by ID, or ErrNotFound if missing.
//
//   - GetCaseByNumber(ctx, db, caseNumber) -> *domain.LegalCase, error
//     Fetches a single case by its court case number, or ErrNotFound.
//
//   - ListLawyerCases(ctx, db, lawyerID) -> []domain.LegalCase, error
//     Returns all cases handled by a lawyer, most recent filing first.
//
//   - CountLawyerCases(ctx, db, lawyerID) -> (int64, error)
//     Returns the number of cases handled by a lawyer.
//
//   - ListLawyerCasesPage(ctx, db, lawyerID, offset, limit) -> []domain.LegalCase, error
//     Returns a paginated slice of a lawyer's cases.
//
//   - UpdateCaseStatus(ctx, db, id, status, outcome) -> error
//     Updates the lifecycle status (and optional outcome) of a case.
//     Returns ErrNotFound if the case does not exist.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/lexcraft/go-legal-backend/internal/domain"
)

// CreateCase inserts a new LegalCase row. The primary key is assigned by the
// database and written back into c.ID.
//
// Case numbers are unique; a conflicting insert returns ErrDuplicate.
// On other failures, it returns a DB error.
func CreateCase(ctx context.Context, db *gorm.DB, c *domain.LegalCase) error {
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// GetCase fetches a single case by its ID. If the record does not exist,
// it returns ErrNotFound. On other DB errors, the raw error is returned.
func GetCase(ctx context.Context, db *gorm.DB, id int64) (*domain.LegalCase, error) {
	var c domain.LegalCase
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCaseByNumber fetches a single case by its court case number. If the
// record does not exist, it returns ErrNotFound. On other DB errors, the raw
// error is returned.
func GetCaseByNumber(ctx context.Context, db *gorm.DB, caseNumber string) (*domain.LegalCase, error) {
	var c domain.LegalCase
	err := db.WithContext(ctx).
		Where("case_number = ?", caseNumber).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListLawyerCases returns all cases handled by lawyerID, ordered by filing
// date descending (most recent first). Cases without a filing date sort last.
// It returns an empty slice if the lawyer has no cases. On DB error, it
// returns the error.
func ListLawyerCases(ctx context.Context, db *gorm.DB, lawyerID int64) ([]domain.LegalCase, error) {
	var out []domain.LegalCase
	err := db.WithContext(ctx).
		Where("lawyer_id = ?", lawyerID).
		Order("filing_date desc").
		Find(&out).Error
	return out, err
}

// CountLawyerCases returns the number of cases handled by lawyerID.
// On DB error, it returns the error.
func CountLawyerCases(ctx context.Context, db *gorm.DB, lawyerID int64) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.LegalCase{}).
		Where("lawyer_id = ?", lawyerID).
		Count(&total).Error
	return total, err
}

// ListLawyerCasesPage returns a paginated slice of cases for lawyerID,
// ordered by filing date descending. Use CountLawyerCases to obtain the
// total for pagination metadata. On DB error, it returns the error.
//
// The caller is responsible for computing offset and limit (e.g., (page-1)*pageSize).
func ListLawyerCasesPage(ctx context.Context, db *gorm.DB, lawyerID int64, offset, limit int) ([]domain.LegalCase, error) {
	var out []domain.LegalCase
	err := db.WithContext(ctx).
		Where("lawyer_id = ?", lawyerID).
		Order("filing_date desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// UpdateCaseStatus updates the lifecycle status of the case identified by id.
// When outcome is non-nil, the outcome column is updated as well. If no rows
// are affected, it returns ErrNotFound. On DB error, the raw error is returned.
func UpdateCaseStatus(ctx context.Context, db *gorm.DB, id int64, status string, outcome *string) error {
	fields := map[string]any{"status": status}
	if outcome != nil {
		fields["outcome"] = *outcome
	}
	res := db.WithContext(ctx).
		Model(&domain.LegalCase{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

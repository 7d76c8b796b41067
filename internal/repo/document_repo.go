// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// LegalDocument model.
//
// Error semantics:
//   - When a document is not found, functions return gorm.ErrRecordNotFound
//     (also exported as ErrNotFound).
//   - On other DB errors, the raw gorm error is propagated.
//
// Functions:
//
//   - CreateDocument(ctx, db, d) -> error
//     Inserts a new LegalDocument row; the primary key is assigned by the DB.
//
//   - GetDocument(ctx, db, id) -> *domain.LegalDocument, error
//     Fetches a single document by ID, or ErrNotFound if missing.
//
//   - ListCaseDocuments(ctx, db, caseID) -> []domain.LegalDocument, error
//     Returns all documents attached to a case, newest first.
//
//   - ListLawyerDocumentsPage(ctx, db, lawyerID, offset, limit) -> []domain.LegalDocument, error
//     Returns a paginated slice of documents authored by a lawyer.
//
//   - CountLawyerDocuments(ctx, db, lawyerID) -> (int64, error)
//     Returns the number of documents authored by a lawyer.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/lexcraft/go-legal-backend/internal/domain"
)

// CreateDocument inserts a new LegalDocument row. The primary key is assigned
// by the database and written back into d.ID.
//
// On success, it returns nil. On failure, it returns a DB error.
func CreateDocument(ctx context.Context, db *gorm.DB, d *domain.LegalDocument) error {
	return db.WithContext(ctx).Create(d).Error
}

// GetDocument fetches a single document by its ID. If the record does not
// exist, it returns ErrNotFound. On other DB errors, the raw error is returned.
func GetDocument(ctx context.Context, db *gorm.DB, id int64) (*domain.LegalDocument, error) {
	var d domain.LegalDocument
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListCaseDocuments returns all documents attached to caseID, ordered by
// creation time descending (most recent first). It returns an empty slice if
// the case has no documents. On DB error, it returns the error.
func ListCaseDocuments(ctx context.Context, db *gorm.DB, caseID int64) ([]domain.LegalDocument, error) {
	var out []domain.LegalDocument
	err := db.WithContext(ctx).
		Where("case_id = ?", caseID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// ListLawyerDocumentsPage returns a paginated slice of documents authored by
// lawyerID, ordered by creation time descending. Use CountLawyerDocuments to
// obtain the total for pagination metadata. On DB error, it returns the error.
//
// The caller is responsible for computing offset and limit (e.g., (page-1)*pageSize).
func ListLawyerDocumentsPage(ctx context.Context, db *gorm.DB, lawyerID int64, offset, limit int) ([]domain.LegalDocument, error) {
	var out []domain.LegalDocument
	err := db.WithContext(ctx).
		Where("lawyer_id = ?", lawyerID).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// CountLawyerDocuments returns the number of documents authored by lawyerID.
// On DB error, it returns the error.
func CountLawyerDocuments(ctx context.Context, db *gorm.DB, lawyerID int64) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.LegalDocument{}).
		Where("lawyer_id = ?", lawyerID).
		Count(&total).Error
	return total, err
}

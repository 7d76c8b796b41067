// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// AnalysisResult model, the persisted trail of AI analysis runs.
//
// Functions:
//
//   - CreateAnalysisResult(ctx, db, a) -> error
//     Inserts an analysis result row; the primary key is assigned by the DB.
//
//   - ListEntityAnalyses(ctx, db, entityType, entityID) -> []domain.AnalysisResult, error
//     Returns every analysis recorded for one entity, newest first.
//
//   - ListLawyerAnalysesPage(ctx, db, lawyerID, offset, limit) -> []domain.AnalysisResult, error
//     Returns a paginated slice of analyses requested by a lawyer.
//
//   - CountLawyerAnalyses(ctx, db, lawyerID) -> (int64, error)
//     Returns the number of analyses requested by a lawyer.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/lexcraft/go-legal-backend/internal/domain"
)

// CreateAnalysisResult inserts a new AnalysisResult row. The primary key is
// assigned by the database and written back into a.ID.
//
// On success, it returns nil. On failure, it returns a DB error.
func CreateAnalysisResult(ctx context.Context, db *gorm.DB, a *domain.AnalysisResult) error {
	return db.WithContext(ctx).Create(a).Error
}

// ListEntityAnalyses returns all analyses recorded for the entity identified
// by (entityType, entityID), ordered by analysis date descending. It returns
// an empty slice if the entity has none. On DB error, it returns the error.
func ListEntityAnalyses(ctx context.Context, db *gorm.DB, entityType string, entityID int64) ([]domain.AnalysisResult, error) {
	var out []domain.AnalysisResult
	err := db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("analysis_date desc").
		Find(&out).Error
	return out, err
}

// ListLawyerAnalysesPage returns a paginated slice of analyses requested by
// lawyerID, ordered by analysis date descending. Use CountLawyerAnalyses to
// obtain the total for pagination metadata. On DB error, it returns the error.
func ListLawyerAnalysesPage(ctx context.Context, db *gorm.DB, lawyerID int64, offset, limit int) ([]domain.AnalysisResult, error) {
	var out []domain.AnalysisResult
	err := db.WithContext(ctx).
		Where("lawyer_id = ?", lawyerID).
		Order("analysis_date desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// CountLawyerAnalyses returns the number of analyses requested by lawyerID.
// On DB error, it returns the error.
func CountLawyerAnalyses(ctx context.Context, db *gorm.DB, lawyerID int64) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.AnalysisResult{}).
		Where("lawyer_id = ?", lawyerID).
		Count(&total).Error
	return total, err
}

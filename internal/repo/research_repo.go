// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// ResearchSession model, the persisted trail of AI research runs.
//
// The repository follows a "thin" approach: it performs persistence and simple
// query composition, leaving business rules to the services package.
//
// Functions:
//
//   - CreateResearchSession(ctx, db, s) -> error
//     Inserts a research session row; the primary key is assigned by the DB.
//
//   - ListLawyerResearchSessions(ctx, db, lawyerID, offset, limit) -> []domain.ResearchSession, error
//     Returns a paginated slice of a lawyer's sessions, newest first.
//
//   - CountLawyerResearchSessions(ctx, db, lawyerID) -> (int64, error)
//     Returns the number of research sessions recorded for a lawyer.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/lexcraft/go-legal-backend/internal/domain"
)

// CreateResearchSession inserts a new ResearchSession row. The primary key is
// assigned by the database and written back into s.ID.
//
// On success, it returns nil. On failure, it returns a DB error.
func CreateResearchSession(ctx context.Context, db *gorm.DB, s *domain.ResearchSession) error {
	return db.WithContext(ctx).Create(s).Error
}

// ListLawyerResearchSessions returns a paginated slice of research sessions
// recorded for lawyerID, ordered by session date descending. On DB error, it
// returns the error.
func ListLawyerResearchSessions(ctx context.Context, db *gorm.DB, lawyerID int64, offset, limit int) ([]domain.ResearchSession, error) {
	var out []domain.ResearchSession
	err := db.WithContext(ctx).
		Where("lawyer_id = ?", lawyerID).
		Order("session_date desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// CountLawyerResearchSessions returns the number of research sessions
// recorded for lawyerID. On DB error, it returns the error.
func CountLawyerResearchSessions(ctx context.Context, db *gorm.DB, lawyerID int64) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.ResearchSession{}).
		Where("lawyer_id = ?", lawyerID).
		Count(&total).Error
	return total, err
}

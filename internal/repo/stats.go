// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate/statistics queries used
// primarily for conditional responses (e.g., ETag generation) in the HTTP
// layer, plus the table counts backing the operational stats endpoint.
// Each function is context-aware and safe to call from services or handlers.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/lexcraft/go-legal-backend/internal/domain"
)

// statTables maps the stats-endpoint keys to the physical table names counted
// by DatabaseStats.
var statTables = map[string]string{
	"lawyers":           "lawyers",
	"cases":             "cases",
	"documents":         "legal_documents",
	"statutes":          "statutes",
	"precedents":        "precedents",
	"research_sessions": "research_sessions",
	"analysis_results":  "analysis_results",
	"approval_requests": "approval_requests",
	"feedback_records":  "feedback_records",
}

// DatabaseStats returns the row count of every domain table, keyed by the
// stats-endpoint name. On the first DB error, it returns the error.
func DatabaseStats(ctx context.Context, db *gorm.DB) (map[string]int64, error) {
	out := make(map[string]int64, len(statTables))
	for key, table := range statTables {
		var n int64
		if err := db.WithContext(ctx).Table(table).Count(&n).Error; err != nil {
			return nil, err
		}
		out[key] = n
	}
	return out, nil
}

// ApprovalsStats returns aggregate metadata for a requester's approval
// history: the total number of rows and the maximum CreatedAt timestamp
// among those rows. When requesterID is nil, the whole table is considered.
//
// When there are no matching rows, the returned count is 0 and maxCreatedAt
// is nil.
//
// Return values:
//   - count:        total approval requests in scope
//   - maxCreatedAt: pointer to the greatest CreatedAt, or nil if no rows
//   - err:          database error, if any
func ApprovalsStats(ctx context.Context, db *gorm.DB, requesterID *int64) (count int64, maxCreatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.ApprovalRequest{})
	if requesterID != nil {
		q = q.Where("requester_id = ?", *requesterID)
	}

	// Count
	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest created_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		CreatedAt time.Time
	}
	if err = q.Select("created_at").Order("created_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.CreatedAt, nil
}

// FeedbackStats returns aggregate metadata for feedback of one content type
// (or all types when contentType is empty): the total number of rows and the
// maximum SubmittedAt timestamp among those rows.
//
// When there are no matching rows, the returned count is 0 and
// maxSubmittedAt is nil.
//
// Return values:
//   - count:          total feedback records in scope
//   - maxSubmittedAt: pointer to the greatest SubmittedAt, or nil if no rows
//   - err:            database error, if any
func FeedbackStats(ctx context.Context, db *gorm.DB, contentType string) (count int64, maxSubmittedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.FeedbackRecord{})
	if contentType != "" {
		q = q.Where("content_type = ?", contentType)
	}

	// Count
	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest submitted_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		SubmittedAt time.Time
	}
	if err = q.Select("submitted_at").Order("submitted_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.SubmittedAt, nil
}

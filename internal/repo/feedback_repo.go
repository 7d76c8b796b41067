// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// FeedbackRecord model.
//
// The repository follows a "thin" approach: it performs persistence and simple
// query composition, leaving aggregation math (averages, distributions,
// improvement areas) to the services package.
//
// Error semantics:
//   - When a record is not found, functions return gorm.ErrRecordNotFound
//     (also exported as ErrNotFound).
//   - When an insert collides with an existing feedback ID, CreateFeedback
//     returns ErrDuplicate.
//   - On other DB errors, the raw gorm error is propagated.
//
// Functions:
//
//   - CreateFeedback(ctx, db, rec) -> error
//     Inserts a feedback row with a caller-derived string ID.
//
//   - GetFeedback(ctx, db, id) -> *domain.FeedbackRecord, error
//     Fetches a single record by ID, or ErrNotFound if missing.
//
//   - ListFeedbackByContent(ctx, db, contentID) -> []domain.FeedbackRecord, error
//     Returns all feedback left on one artifact, newest first.
//
//   - ListFeedbackByUser(ctx, db, userID) -> []domain.FeedbackRecord, error
//     Returns all feedback submitted by one user, newest first.
//
//   - ListFeedbackByType(ctx, db, contentType) -> []domain.FeedbackRecord, error
//     Returns all feedback for one content type (or all types when empty),
//     newest first.
//
//   - ListLowRatedFeedback(ctx, db, threshold) -> []domain.FeedbackRecord, error
//     Returns records rated strictly below threshold, worst rating first.
//
//   - ListFeedbackAtMost(ctx, db, maxRating) -> []domain.FeedbackRecord, error
//     Returns records rated at or below maxRating in submission order.
//
//   - MarkFeedbackAddressed(ctx, db, id, followUp, at) -> (int64, error)
//     Flags a record as addressed; returns the affected row count.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/lexcraft/go-legal-backend/internal/domain"
)

// CreateFeedback inserts a new FeedbackRecord row. The caller derives the
// string ID before the insert; a collision with an existing ID returns
// ErrDuplicate. On other failures, it returns a DB error.
//
// Rating bounds are validated at the service layer and additionally enforced
// by a CHECK constraint on the table.
func CreateFeedback(ctx context.Context, db *gorm.DB, rec *domain.FeedbackRecord) error {
	if err := db.WithContext(ctx).Create(rec).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// GetFeedback fetches a single feedback record by its ID. If the record does
// not exist, it returns ErrNotFound. On other DB errors, the raw error is
// returned.
func GetFeedback(ctx context.Context, db *gorm.DB, id string) (*domain.FeedbackRecord, error) {
	var rec domain.FeedbackRecord
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListFeedbackByContent returns all feedback left on the artifact identified
// by contentID, ordered by submission time descending. It returns an empty
// slice when there is none. On DB error, it returns the error.
func ListFeedbackByContent(ctx context.Context, db *gorm.DB, contentID string) ([]domain.FeedbackRecord, error) {
	var out []domain.FeedbackRecord
	err := db.WithContext(ctx).
		Where("content_id = ?", contentID).
		Order("submitted_at desc").
		Find(&out).Error
	return out, err
}

// ListFeedbackByUser returns all feedback submitted by userID, ordered by
// submission time descending. On DB error, it returns the error.
func ListFeedbackByUser(ctx context.Context, db *gorm.DB, userID int64) ([]domain.FeedbackRecord, error) {
	var out []domain.FeedbackRecord
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at desc").
		Find(&out).Error
	return out, err
}

// ListFeedbackByType returns all feedback for contentType, ordered by
// submission time descending. An empty contentType matches every record,
// which is how the summary endpoint computes store-wide aggregates.
// On DB error, it returns the error.
func ListFeedbackByType(ctx context.Context, db *gorm.DB, contentType string) ([]domain.FeedbackRecord, error) {
	q := db.WithContext(ctx)
	if contentType != "" {
		q = q.Where("content_type = ?", contentType)
	}
	var out []domain.FeedbackRecord
	err := q.Order("submitted_at desc").Find(&out).Error
	return out, err
}

// ListLowRatedFeedback returns records whose rating is strictly below
// threshold, ordered by rating ascending (worst first) with newer records
// first among equal ratings. On DB error, it returns the error.
func ListLowRatedFeedback(ctx context.Context, db *gorm.DB, threshold int) ([]domain.FeedbackRecord, error) {
	var out []domain.FeedbackRecord
	err := db.WithContext(ctx).
		Where("rating < ?", threshold).
		Order("rating asc, submitted_at desc").
		Find(&out).Error
	return out, err
}

// ListFeedbackAtMost returns records whose rating is at or below maxRating,
// ordered by submission time ascending. The stable submission order makes
// downstream issue extraction deterministic. On DB error, it returns the
// error.
func ListFeedbackAtMost(ctx context.Context, db *gorm.DB, maxRating int) ([]domain.FeedbackRecord, error) {
	var out []domain.FeedbackRecord
	err := db.WithContext(ctx).
		Where("rating <= ?", maxRating).
		Order("submitted_at asc, id asc").
		Find(&out).Error
	return out, err
}

// MarkFeedbackAddressed flags the record identified by id as addressed,
// recording the optional follow-up note and the time the flag was set.
//
// The returned count is the number of rows affected: 1 when the record
// exists, 0 when it does not. Re-flagging an already addressed record is
// permitted and refreshes the follow-up and timestamp. On DB error, the raw
// error is returned.
func MarkFeedbackAddressed(ctx context.Context, db *gorm.DB, id string, followUp *string, at time.Time) (int64, error) {
	res := db.WithContext(ctx).
		Model(&domain.FeedbackRecord{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"addressed":    true,
			"follow_up":    followUp,
			"addressed_at": at,
		})
	return res.RowsAffected, res.Error
}

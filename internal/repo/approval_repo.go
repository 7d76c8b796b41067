// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// ApprovalRequest model.
//
// The decision functions (ApproveRequest, RejectRequest) are written as a
// single guarded UPDATE with `status = 'pending'` in the WHERE clause, so a
// decided request can never be decided again even under concurrent reviewers:
// whichever statement runs second matches zero rows. Callers distinguish
// "request missing" from "already decided" by re-reading the row when the
// update affects nothing.
//
// Error semantics:
//   - When a request is not found, functions return gorm.ErrRecordNotFound
//     (also exported as ErrNotFound).
//   - When an insert collides with an existing request ID, CreateApproval
//     returns ErrDuplicate; callers may rederive the ID and retry.
//   - On other DB errors, the raw gorm error is propagated.
//
// Functions:
//
//   - CreateApproval(ctx, db, a) -> error
//     Inserts a pending approval row with a caller-derived string ID.
//
//   - GetApproval(ctx, db, id) -> *domain.ApprovalRequest, error
//     Fetches a single request by ID, or ErrNotFound if missing.
//
//   - ListPendingApprovals(ctx, db, requesterID) -> []domain.ApprovalRequest, error
//     Returns the pending queue (oldest first), optionally for one requester.
//
//   - ListApprovalsByRequester(ctx, db, requesterID, offset, limit) -> []domain.ApprovalRequest, error
//     Returns a requester's full history (newest first), paginated.
//
//   - CountApprovalsByRequester(ctx, db, requesterID) -> (int64, error)
//     Returns the size of a requester's history.
//
//   - ApproveRequest(ctx, db, id, approverID, comments, modifiedContent, at) -> (int64, error)
//     Marks a pending request approved; returns the affected row count.
//
//   - RejectRequest(ctx, db, id, approverID, reason, at) -> (int64, error)
//     Marks a pending request rejected; returns the affected row count.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/lexcraft/go-legal-backend/internal/domain"
)

// CreateApproval inserts a new pending ApprovalRequest row. The caller
// derives the string ID before the insert; a collision with an existing ID
// returns ErrDuplicate so the caller can rederive and retry. On other
// failures, it returns a DB error.
func CreateApproval(ctx context.Context, db *gorm.DB, a *domain.ApprovalRequest) error {
	if err := db.WithContext(ctx).Create(a).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// GetApproval fetches a single approval request by its ID. If the record
// does not exist, it returns ErrNotFound. On other DB errors, the raw error
// is returned.
func GetApproval(ctx context.Context, db *gorm.DB, id string) (*domain.ApprovalRequest, error) {
	var a domain.ApprovalRequest
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListPendingApprovals returns all requests still awaiting a decision,
// ordered by creation time ascending (oldest first, review-queue order).
// When requesterID is non-nil the queue is narrowed to that requester.
// On DB error, it returns the error.
func ListPendingApprovals(ctx context.Context, db *gorm.DB, requesterID *int64) ([]domain.ApprovalRequest, error) {
	q := db.WithContext(ctx).Where("status = ?", domain.ApprovalPending)
	if requesterID != nil {
		q = q.Where("requester_id = ?", *requesterID)
	}
	var out []domain.ApprovalRequest
	err := q.Order("created_at asc").Find(&out).Error
	return out, err
}

// ListApprovalsByRequester returns a paginated slice of every request ever
// filed by requesterID, in any state, ordered by creation time descending.
// Use CountApprovalsByRequester to obtain the total for pagination metadata.
// On DB error, it returns the error.
func ListApprovalsByRequester(ctx context.Context, db *gorm.DB, requesterID int64, offset, limit int) ([]domain.ApprovalRequest, error) {
	var out []domain.ApprovalRequest
	err := db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// CountApprovalsByRequester returns the number of requests ever filed by
// requesterID. On DB error, it returns the error.
func CountApprovalsByRequester(ctx context.Context, db *gorm.DB, requesterID int64) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.ApprovalRequest{}).
		Where("requester_id = ?", requesterID).
		Count(&total).Error
	return total, err
}

// ApproveRequest transitions the request identified by id from pending to
// approved in a single guarded UPDATE. It records the deciding reviewer and
// decision time, plus optional comments and replacement content. Every
// approval records content_modified: true when modifiedContent is supplied,
// false otherwise.
//
// The returned count is the number of rows affected: 1 when the request was
// pending and is now approved, 0 when it is missing or was already decided.
// On DB error, the raw error is returned.
func ApproveRequest(ctx context.Context, db *gorm.DB, id string, approverID int64, comments, modifiedContent *string, at time.Time) (int64, error) {
	fields := map[string]any{
		"status":           domain.ApprovalApproved,
		"approver_id":      approverID,
		"approved_at":      at,
		"comments":         comments,
		"content_modified": modifiedContent != nil,
	}
	if modifiedContent != nil {
		fields["modified_content"] = *modifiedContent
	}
	res := db.WithContext(ctx).
		Model(&domain.ApprovalRequest{}).
		Where("id = ? AND status = ?", id, domain.ApprovalPending).
		Updates(fields)
	return res.RowsAffected, res.Error
}

// RejectRequest transitions the request identified by id from pending to
// rejected in a single guarded UPDATE, recording the deciding reviewer, the
// decision time and the reason.
//
// The returned count is the number of rows affected: 1 when the request was
// pending and is now rejected, 0 when it is missing or was already decided.
// On DB error, the raw error is returned.
func RejectRequest(ctx context.Context, db *gorm.DB, id string, approverID int64, reason string, at time.Time) (int64, error) {
	res := db.WithContext(ctx).
		Model(&domain.ApprovalRequest{}).
		Where("id = ? AND status = ?", id, domain.ApprovalPending).
		Updates(map[string]any{
			"status":           domain.ApprovalRejected,
			"approver_id":      approverID,
			"approved_at":      at,
			"rejection_reason": reason,
		})
	return res.RowsAffected, res.Error
}

// Package services – ApprovalService
//
// This file implements the ApprovalService, the human-in-the-loop gate for
// generated content. Callers submit content for review; a reviewer later
// approves (optionally substituting modified text) or rejects it. Decisions
// are immutable: once a request leaves Pending it can never be decided again,
// which the repository enforces with a status-guarded UPDATE so concurrent
// reviewers cannot both win.
//
// Request IDs encode type, UTC timestamp, and requester
// ({type}_{YYYYMMDDhhmmss}_{requesterID}); same-second collisions are resolved
// by appending a numeric suffix until the insert succeeds.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/lexcraft/go-legal-backend/internal/domain"
	"github.com/lexcraft/go-legal-backend/internal/repo"
)

// idTimestampFormat is the timestamp segment of generated approval and
// feedback IDs.
const idTimestampFormat = "20060102150405"

// ApprovalService provides the approval workflow operations: submitting
// content for review, deciding requests, and querying the review queue
// and per-requester history.
type ApprovalService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB

	// Now returns the current time; overridable in tests to force
	// same-second ID collisions.
	Now func() time.Time
}

// NewApprovalService constructs an ApprovalService backed by db.
func NewApprovalService(db *gorm.DB) *ApprovalService {
	return &ApprovalService{DB: db, Now: time.Now}
}

// RequestApproval stores content as a new Pending request and returns its
// generated ID. Metadata is persisted verbatim and never interpreted.
// Storage failures return ErrPersistence-wrapped errors.
func (s *ApprovalService) RequestApproval(ctx context.Context, approvalType, content string, metadata domain.JSONMap, requesterID int64) (string, error) {
	now := s.Now().UTC()
	base := fmt.Sprintf("%s_%s_%d", approvalType, now.Format(idTimestampFormat), requesterID)

	id := base
	for attempt := 2; ; attempt++ {
		rec := &domain.ApprovalRequest{
			ID:           id,
			ApprovalType: approvalType,
			Content:      content,
			Metadata:     metadata,
			RequesterID:  requesterID,
			Status:       domain.ApprovalPending,
			CreatedAt:    now,
		}
		err := repo.CreateApproval(ctx, s.DB, rec)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, repo.ErrDuplicate) {
			return "", fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		id = fmt.Sprintf("%s_%d", base, attempt)
	}
}

// Approve decides a Pending request in the requester's favor. When
// modifications is non-empty the reviewer's text is stored alongside the
// original and the record is flagged as modified; either way the approval
// notes whether content was modified. Unknown IDs return ErrApprovalNotFound;
// requests already decided return ErrAlreadyDecided. The decided record is
// returned.
func (s *ApprovalService) Approve(ctx context.Context, id string, approverID int64, comments, modifications string) (*domain.ApprovalRequest, error) {
	var commentsPtr, modPtr *string
	if comments != "" {
		commentsPtr = &comments
	}
	if modifications != "" {
		modPtr = &modifications
	}

	rows, err := repo.ApproveRequest(ctx, s.DB, id, approverID, commentsPtr, modPtr, s.Now().UTC())
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, s.decisionConflict(ctx, id)
	}
	return s.reread(ctx, id)
}

// Reject decides a Pending request against the requester, recording the
// reviewer and reason. Unknown IDs return ErrApprovalNotFound; requests
// already decided return ErrAlreadyDecided. The decided record is returned.
func (s *ApprovalService) Reject(ctx context.Context, id string, approverID int64, reason string) (*domain.ApprovalRequest, error) {
	rows, err := repo.RejectRequest(ctx, s.DB, id, approverID, reason, s.Now().UTC())
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, s.decisionConflict(ctx, id)
	}
	return s.reread(ctx, id)
}

// GetPendingApprovals returns the review queue: Pending requests in
// submission order, optionally scoped to one requester.
func (s *ApprovalService) GetPendingApprovals(ctx context.Context, requesterID *int64) ([]domain.ApprovalRequest, error) {
	return repo.ListPendingApprovals(ctx, s.DB, requesterID)
}

// GetApprovalStatus returns the current lifecycle status of a request,
// or ErrApprovalNotFound when it does not exist.
func (s *ApprovalService) GetApprovalStatus(ctx context.Context, id string) (domain.ApprovalStatus, error) {
	rec, err := repo.GetApproval(ctx, s.DB, id)
	if err != nil {
		if isNotFound(err) {
			return "", ErrApprovalNotFound
		}
		return "", err
	}
	return rec.Status, nil
}

// GetApprovalHistory returns a page of the requester's requests across every
// status, newest first. It applies defaults for invalid page/pageSize and
// returns the total count.
func (s *ApprovalService) GetApprovalHistory(ctx context.Context, requesterID int64, page, pageSize int) ([]domain.ApprovalRequest, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := repo.CountApprovalsByRequester(ctx, s.DB, requesterID)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.ApprovalRequest{}, 0, nil
	}

	items, err := repo.ListApprovalsByRequester(ctx, s.DB, requesterID, offset, pageSize)
	return items, total, err
}

// decisionConflict classifies a guarded UPDATE that matched no rows: the
// request either does not exist or has already been decided.
func (s *ApprovalService) decisionConflict(ctx context.Context, id string) error {
	if _, err := repo.GetApproval(ctx, s.DB, id); err != nil {
		if isNotFound(err) {
			return ErrApprovalNotFound
		}
		return err
	}
	return ErrAlreadyDecided
}

// reread fetches the decided record for the caller. A vanishing row between
// the UPDATE and this read surfaces as a raw error; it cannot happen under
// normal operation because requests are never deleted.
func (s *ApprovalService) reread(ctx context.Context, id string) (*domain.ApprovalRequest, error) {
	rec, err := repo.GetApproval(ctx, s.DB, id)
	if err != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApprovalNotFound
	}
	return rec, err
}

// Package domain defines the core persistence models for the application.
// This file holds the human-review records: approval requests gating generated
// content, and the feedback collected on generated artifacts.
package domain

import "time"

// ApprovalStatus is the lifecycle state of an approval request. The state
// machine is Pending -> Approved or Pending -> Rejected; both outcomes are
// terminal and a decided request can never change again.
type ApprovalStatus string

// Approval request states.
const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Terminal reports whether s is a decided (immutable) state.
func (s ApprovalStatus) Terminal() bool {
	return s == ApprovalApproved || s == ApprovalRejected
}

// ApprovalRequest gates a piece of generated content behind a human decision.
// Rows are append-only: a request is created Pending, decided exactly once,
// and retained indefinitely for history queries.
//
// Fields:
//   - ID: derived from {type, timestamp, requester} at creation time, unique
//     across the store.
//   - Metadata: opaque context supplied by the caller, stored as JSON and
//     never interpreted by the workflow.
//   - ApproverID / ApprovedAt / Comments: set only when the request is
//     decided (both approval and rejection record the deciding reviewer).
//   - ModifiedContent: set only when an approver supplies replacement text;
//     ContentModified records true/false on every approval.
//   - RejectionReason: set only on rejection.
type ApprovalRequest struct {
	ID              string         `json:"id"               gorm:"type:varchar(128);primaryKey"`
	ApprovalType    string         `json:"type"             gorm:"type:varchar(64);not null;index"`
	Content         string         `json:"content"          gorm:"type:text;not null"`
	Metadata        JSONMap        `json:"metadata"         gorm:"type:text"`
	RequesterID     int64          `json:"requester_id"     gorm:"not null;index:idx_requester_approvals"`
	Status          ApprovalStatus `json:"status"           gorm:"type:varchar(16);not null;default:'pending';index;check:status IN ('pending','approved','rejected')"`
	ApproverID      *int64         `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time     `json:"approved_at,omitempty"`
	Comments        *string        `json:"comments,omitempty"         gorm:"type:text"`
	ModifiedContent *string        `json:"modified_content,omitempty" gorm:"type:text"`
	ContentModified *bool          `json:"content_modified,omitempty"`
	RejectionReason *string        `json:"rejection_reason,omitempty" gorm:"type:text"`
	CreatedAt       time.Time      `json:"created_at"       gorm:"index:idx_requester_approvals"`
}

// TableName returns the database table name for ApprovalRequest.
func (ApprovalRequest) TableName() string { return "approval_requests" }

// FeedbackRecord is one user rating of a generated artifact, with optional
// free-text comments and issue labels. Ratings are immutable once submitted;
// only the addressed bookkeeping may change, and only from false to true.
type FeedbackRecord struct {
	ID             string     `json:"id"              gorm:"type:varchar(64);primaryKey"`
	ContentID      string     `json:"content_id"      gorm:"type:varchar(128);not null;index"`
	ContentType    string     `json:"content_type"    gorm:"type:varchar(64);not null;index"`
	UserID         int64      `json:"user_id"         gorm:"not null;index"`
	Rating         int        `json:"rating"          gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Comments       string     `json:"comments,omitempty"        gorm:"type:text"`
	SpecificIssues StringList `json:"specific_issues" gorm:"type:text"`
	SubmittedAt    time.Time  `json:"submitted_at"    gorm:"autoCreateTime;index"`
	Addressed      bool       `json:"addressed"       gorm:"not null;default:false"`
	FollowUp       *string    `json:"follow_up,omitempty"  gorm:"type:text"`
	AddressedAt    *time.Time `json:"addressed_at,omitempty"`
}

// TableName returns the database table name for FeedbackRecord.
func (FeedbackRecord) TableName() string { return "feedback_records" }

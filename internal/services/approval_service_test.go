package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lexcraft/go-legal-backend/internal/domain"
	"github.com/lexcraft/go-legal-backend/internal/repo"
)

func newApprovalSvcDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:approvalsvc_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	if err := db.AutoMigrate(&domain.ApprovalRequest{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

// tickingClock returns a Now func that starts at a fixed instant and a
// function that advances it. Keeping the clock still forces same-second
// ID collisions; advancing it keeps queue ordering deterministic.
func tickingClock(start time.Time) (func() time.Time, func(d time.Duration)) {
	now := start
	return func() time.Time { return now }, func(d time.Duration) { now = now.Add(d) }
}

func TestRequestApproval_IDFormatAndPendingDefaults(t *testing.T) {
	db := newApprovalSvcDB(t)
	svc := NewApprovalService(db)
	svc.Now, _ = tickingClock(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))

	id, err := svc.RequestApproval(context.Background(), "document_draft", "Draft text", domain.JSONMap{"case_id": 7}, 42)
	if err != nil {
		t.Fatalf("RequestApproval: %v", err)
	}
	if id != "document_draft_20240315120000_42" {
		t.Fatalf("id = %q", id)
	}

	rec, err := repo.GetApproval(context.Background(), db, id)
	if err != nil {
		t.Fatalf("GetApproval: %v", err)
	}
	if rec.Status != domain.ApprovalPending {
		t.Errorf("status = %q, want pending", rec.Status)
	}
	if rec.ApproverID != nil || rec.ApprovedAt != nil || rec.Comments != nil ||
		rec.ModifiedContent != nil || rec.ContentModified != nil || rec.RejectionReason != nil {
		t.Errorf("fresh request carries decision fields: %+v", rec)
	}
	if rec.Metadata["case_id"] == nil {
		t.Errorf("metadata not persisted: %+v", rec.Metadata)
	}
}

func TestRequestApproval_SameSecondCollisionSuffix(t *testing.T) {
	db := newApprovalSvcDB(t)
	svc := NewApprovalService(db)
	svc.Now, _ = tickingClock(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))

	ids := make([]string, 3)
	for i := range ids {
		id, err := svc.RequestApproval(context.Background(), "memo", "v"+fmt.Sprint(i), nil, 1)
		if err != nil {
			t.Fatalf("RequestApproval %d: %v", i, err)
		}
		ids[i] = id
	}

	base := "memo_20240315120000_1"
	want := []string{base, base + "_2", base + "_3"}
	for i, w := range want {
		if ids[i] != w {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], w)
		}
	}
}

func TestApprove_WithModifications(t *testing.T) {
	db := newApprovalSvcDB(t)
	svc := NewApprovalService(db)

	id, err := svc.RequestApproval(context.Background(), "memo", "Original", nil, 1)
	if err != nil {
		t.Fatalf("RequestApproval: %v", err)
	}

	rec, err := svc.Approve(context.Background(), id, 99, "tightened the language", "Edited")
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if rec.Status != domain.ApprovalApproved {
		t.Errorf("status = %q, want approved", rec.Status)
	}
	if rec.ApproverID == nil || *rec.ApproverID != 99 {
		t.Errorf("approver = %v, want 99", rec.ApproverID)
	}
	if rec.ApprovedAt == nil {
		t.Errorf("ApprovedAt not set")
	}
	if rec.Comments == nil || *rec.Comments != "tightened the language" {
		t.Errorf("comments = %v", rec.Comments)
	}
	if rec.ModifiedContent == nil || *rec.ModifiedContent != "Edited" {
		t.Errorf("modified content = %v", rec.ModifiedContent)
	}
	if rec.ContentModified == nil || !*rec.ContentModified {
		t.Errorf("content_modified = %v, want true", rec.ContentModified)
	}
	if rec.Content != "Original" {
		t.Errorf("original content overwritten: %q", rec.Content)
	}
}

func TestApprove_AsIsRecordsUnmodified(t *testing.T) {
	db := newApprovalSvcDB(t)
	svc := NewApprovalService(db)

	id, err := svc.RequestApproval(context.Background(), "memo", "Original", nil, 1)
	if err != nil {
		t.Fatalf("RequestApproval: %v", err)
	}

	rec, err := svc.Approve(context.Background(), id, 99, "", "")
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if rec.ContentModified == nil || *rec.ContentModified {
		t.Errorf("content_modified = %v, want false", rec.ContentModified)
	}
	if rec.ModifiedContent != nil {
		t.Errorf("modified content = %v, want nil", rec.ModifiedContent)
	}
	if rec.Comments != nil {
		t.Errorf("comments = %v, want nil", rec.Comments)
	}
}

func TestReject_RecordsReason(t *testing.T) {
	db := newApprovalSvcDB(t)
	svc := NewApprovalService(db)

	id, err := svc.RequestApproval(context.Background(), "memo", "Original", nil, 1)
	if err != nil {
		t.Fatalf("RequestApproval: %v", err)
	}

	rec, err := svc.Reject(context.Background(), id, 99, "cites repealed statute")
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if rec.Status != domain.ApprovalRejected {
		t.Errorf("status = %q, want rejected", rec.Status)
	}
	if rec.RejectionReason == nil || *rec.RejectionReason != "cites repealed statute" {
		t.Errorf("reason = %v", rec.RejectionReason)
	}
	if rec.ApproverID == nil || *rec.ApproverID != 99 {
		t.Errorf("approver = %v, want 99", rec.ApproverID)
	}
}

func TestDecisions_AreImmutable(t *testing.T) {
	db := newApprovalSvcDB(t)
	svc := NewApprovalService(db)

	id, err := svc.RequestApproval(context.Background(), "memo", "Original", nil, 1)
	if err != nil {
		t.Fatalf("RequestApproval: %v", err)
	}
	first, err := svc.Approve(context.Background(), id, 99, "fine as is", "")
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}

	if _, err := svc.Reject(context.Background(), id, 7, "changed my mind"); !errors.Is(err, ErrAlreadyDecided) {
		t.Fatalf("Reject after Approve: expected ErrAlreadyDecided, got %v", err)
	}
	if _, err := svc.Approve(context.Background(), id, 7, "", ""); !errors.Is(err, ErrAlreadyDecided) {
		t.Fatalf("second Approve: expected ErrAlreadyDecided, got %v", err)
	}

	// The losing decision must leave the record exactly as the winner wrote it.
	rec, err := repo.GetApproval(context.Background(), db, id)
	if err != nil {
		t.Fatalf("GetApproval: %v", err)
	}
	if rec.Status != domain.ApprovalApproved {
		t.Errorf("status = %q, want approved", rec.Status)
	}
	if rec.ApproverID == nil || *rec.ApproverID != *first.ApproverID {
		t.Errorf("approver = %v, want %v", rec.ApproverID, first.ApproverID)
	}
	if rec.RejectionReason != nil {
		t.Errorf("rejection reason leaked onto approved record: %v", rec.RejectionReason)
	}
}

func TestDecide_UnknownRequest(t *testing.T) {
	db := newApprovalSvcDB(t)
	svc := NewApprovalService(db)

	if _, err := svc.Approve(context.Background(), "nope", 1, "", ""); !errors.Is(err, ErrApprovalNotFound) {
		t.Fatalf("Approve: expected ErrApprovalNotFound, got %v", err)
	}
	if _, err := svc.Reject(context.Background(), "nope", 1, "reason"); !errors.Is(err, ErrApprovalNotFound) {
		t.Fatalf("Reject: expected ErrApprovalNotFound, got %v", err)
	}
}

func TestGetPendingApprovals_QueueOrderAndFilter(t *testing.T) {
	db := newApprovalSvcDB(t)
	svc := NewApprovalService(db)
	now, tick := tickingClock(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))
	svc.Now = now

	var ids []string
	for i, requester := range []int64{1, 2, 1} {
		id, err := svc.RequestApproval(context.Background(), "memo", fmt.Sprintf("v%d", i), nil, requester)
		if err != nil {
			t.Fatalf("RequestApproval %d: %v", i, err)
		}
		ids = append(ids, id)
		tick(time.Second)
	}
	// Decided requests leave the queue.
	if _, err := svc.Approve(context.Background(), ids[0], 9, "", ""); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	queue, err := svc.GetPendingApprovals(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetPendingApprovals: %v", err)
	}
	if len(queue) != 2 || queue[0].ID != ids[1] || queue[1].ID != ids[2] {
		t.Fatalf("queue = %v, want [%s %s]", queueIDs(queue), ids[1], ids[2])
	}

	one := int64(1)
	mine, err := svc.GetPendingApprovals(context.Background(), &one)
	if err != nil {
		t.Fatalf("GetPendingApprovals(1): %v", err)
	}
	if len(mine) != 1 || mine[0].ID != ids[2] {
		t.Fatalf("requester queue = %v, want [%s]", queueIDs(mine), ids[2])
	}
}

func TestGetApprovalStatus(t *testing.T) {
	db := newApprovalSvcDB(t)
	svc := NewApprovalService(db)

	id, err := svc.RequestApproval(context.Background(), "memo", "Original", nil, 1)
	if err != nil {
		t.Fatalf("RequestApproval: %v", err)
	}

	st, err := svc.GetApprovalStatus(context.Background(), id)
	if err != nil || st != domain.ApprovalPending {
		t.Fatalf("status = (%q, %v), want pending", st, err)
	}
	if _, err := svc.GetApprovalStatus(context.Background(), "nope"); !errors.Is(err, ErrApprovalNotFound) {
		t.Fatalf("expected ErrApprovalNotFound, got %v", err)
	}
}

func TestGetApprovalHistory_Pagination(t *testing.T) {
	db := newApprovalSvcDB(t)
	svc := NewApprovalService(db)
	now, tick := tickingClock(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))
	svc.Now = now

	items, total, err := svc.GetApprovalHistory(context.Background(), 1, 1, 10)
	if err != nil || total != 0 || items == nil || len(items) != 0 {
		t.Fatalf("empty history = (%v, %d, %v)", items, total, err)
	}

	var ids []string
	for i := 0; i < 3; i++ {
		id, err := svc.RequestApproval(context.Background(), "memo", fmt.Sprintf("v%d", i), nil, 1)
		if err != nil {
			t.Fatalf("RequestApproval %d: %v", i, err)
		}
		ids = append(ids, id)
		tick(time.Second)
	}

	items, total, err = svc.GetApprovalHistory(context.Background(), 1, 1, 2)
	if err != nil {
		t.Fatalf("GetApprovalHistory: %v", err)
	}
	if total != 3 || len(items) != 2 {
		t.Fatalf("page 1: items=%d total=%d, want 2/3", len(items), total)
	}
	// Newest first.
	if items[0].ID != ids[2] || items[1].ID != ids[1] {
		t.Errorf("page 1 order = %v", queueIDs(items))
	}

	items, _, err = svc.GetApprovalHistory(context.Background(), 1, 2, 2)
	if err != nil || len(items) != 1 || items[0].ID != ids[0] {
		t.Fatalf("page 2 = (%v, %v)", queueIDs(items), err)
	}
}

func queueIDs(recs []domain.ApprovalRequest) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}

// Approval HTTP handlers.
//
// This file exposes REST endpoints for the human-review workflow:
//   - POST /approvals               (queue generated content for review)
//   - POST /approvals/{id}/approve  (approve, optionally with edits)
//   - POST /approvals/{id}/reject   (reject with a reason)
//   - GET  /approvals/pending       (review queue, oldest first)
//   - GET  /approvals/{id}/status   (current status of one request)
//   - GET  /approvals/history       (a requester's requests, paginated, ETag support)
//
// Decisions are immutable: once a request leaves Pending, further approve or
// reject calls return 409 conflict and the first decision stands.
package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lexcraft/go-legal-backend/internal/domain"
	"github.com/lexcraft/go-legal-backend/internal/repo"
	"github.com/lexcraft/go-legal-backend/internal/services"
)

//
// DTOs
//

// RequestApprovalRequest is the JSON payload for queueing content for review.
type RequestApprovalRequest struct {
	// ApprovalType labels what is being reviewed, e.g. document_draft.
	ApprovalType string `json:"approval_type" binding:"required" example:"document_draft"`
	// Content is the generated text under review.
	Content string `json:"content" binding:"required,min=1" example:"# Demand Letter\n\nDear Widget Co, ..."`
	// Metadata carries free-form context, e.g. {"case_id": 3}.
	Metadata domain.JSONMap `json:"metadata"`
	// RequesterID is the lawyer asking for review.
	RequesterID int64 `json:"requester_id" binding:"required,min=1" example:"42"`
}

// ApprovalCreatedResponse acknowledges a queued approval request.
type ApprovalCreatedResponse struct {
	ApprovalID string                `json:"approval_id" example:"document_draft_20240315120000_42"`
	Status     domain.ApprovalStatus `json:"status" example:"pending"`
}

// ApproveRequest is the JSON payload for an approval decision.
type ApproveRequest struct {
	ApproverID int64 `json:"approver_id" binding:"required,min=1" example:"7"`
	// Comments optionally explain the decision.
	Comments string `json:"comments" example:"Good to send after the edits below."`
	// Modifications, when non-empty, replace the content being approved.
	Modifications string `json:"modifications"`
}

// RejectRequest is the JSON payload for a rejection decision.
type RejectRequest struct {
	ApproverID int64 `json:"approver_id" binding:"required,min=1" example:"7"`
	// Reason is required; a rejection must say why.
	Reason string `json:"reason" binding:"required,min=1" example:"Cites an overruled precedent."`
}

// ApprovalStatusResponse reports the current status of one request.
type ApprovalStatusResponse struct {
	ApprovalID string                `json:"approval_id"`
	Status     domain.ApprovalStatus `json:"status"`
}

// PendingApprovalsResponse wraps the review queue.
type PendingApprovalsResponse struct {
	Approvals []domain.ApprovalRequest `json:"approvals"`
	Count     int                      `json:"count"`
}

// ApprovalHistoryResponse wraps a page of a requester's approval requests.
type ApprovalHistoryResponse struct {
	Approvals  []domain.ApprovalRequest `json:"approvals"`
	Pagination Pagination               `json:"pagination"`
}

// approvalDB exposes the approval store's DB handle for conditional
// responses when the wired implementation is the concrete ApprovalService.
func (h *Handlers) approvalDB() *gorm.DB {
	if svc, ok := h.approvalSvc.(*services.ApprovalService); ok {
		return svc.DB
	}
	return nil
}

//
// Handlers
//

// RequestApproval godoc
// @ID          requestApproval
// @Summary     Queue content for review
// @Description Creates a pending approval request for generated content and returns its id.
// @Tags        Approvals
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.RequestApprovalRequest  true  "Approval payload"
//
// @Success     201  {object}  handlers.ApprovalCreatedResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /approvals [post]
func (h *Handlers) RequestApproval(c *gin.Context) {
	var req RequestApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body: approval_type, content and requester_id required")
		return
	}

	id, err := h.approvalSvc.RequestApproval(c.Request.Context(),
		strings.TrimSpace(req.ApprovalType), req.Content, req.Metadata, req.RequesterID)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusCreated, ApprovalCreatedResponse{ApprovalID: id, Status: domain.ApprovalPending})
}

// ApproveContent godoc
// @ID          approveContent
// @Summary     Approve a pending request
// @Description Records an approval decision. Modifications, when supplied, replace the approved content.
// @Description A request that has already been decided returns 409 and keeps its first decision.
// @Tags        Approvals
// @Accept      json
// @Produce     json
//
// @Param       id    path  string                   true  "Approval request ID"  example(document_draft_20240315120000_42)
// @Param       body  body  handlers.ApproveRequest  true  "Decision payload"
//
// @Success     200  {object}  domain.ApprovalRequest
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Approval request not found"
// @Failure     409  {object}  handlers.ErrorResponse  "Already decided"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /approvals/{id}/approve [post]
func (h *Handlers) ApproveContent(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body: approver_id required")
		return
	}

	rec, err := h.approvalSvc.Approve(c.Request.Context(), id, req.ApproverID, req.Comments, req.Modifications)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, rec)
}

// RejectContent godoc
// @ID          rejectContent
// @Summary     Reject a pending request
// @Description Records a rejection decision with its reason.
// @Description A request that has already been decided returns 409 and keeps its first decision.
// @Tags        Approvals
// @Accept      json
// @Produce     json
//
// @Param       id    path  string                  true  "Approval request ID"
// @Param       body  body  handlers.RejectRequest  true  "Decision payload"
//
// @Success     200  {object}  domain.ApprovalRequest
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Approval request not found"
// @Failure     409  {object}  handlers.ErrorResponse  "Already decided"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /approvals/{id}/reject [post]
func (h *Handlers) RejectContent(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Reason) == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body: approver_id and reason required")
		return
	}

	rec, err := h.approvalSvc.Reject(c.Request.Context(), id, req.ApproverID, req.Reason)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, rec)
}

// ListPendingApprovals godoc
// @ID          listPendingApprovals
// @Summary     Review queue
// @Description Returns pending approval requests oldest first, optionally filtered by requester.
// @Tags        Approvals
// @Produce     json
//
// @Param       requester_id  query  int  false  "Filter by requester"  minimum(1)
//
// @Success     200  {object}  handlers.PendingApprovalsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /approvals/pending [get]
func (h *Handlers) ListPendingApprovals(c *gin.Context) {
	requesterID, okQ := queryID(c, "requester_id")
	if !okQ {
		return
	}

	items, err := h.approvalSvc.GetPendingApprovals(c.Request.Context(), requesterID)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, PendingApprovalsResponse{Approvals: items, Count: len(items)})
}

// GetApprovalStatus godoc
// @ID          getApprovalStatus
// @Summary     Status of one approval request
// @Description Returns just the status for quick polling.
// @Tags        Approvals
// @Produce     json
//
// @Param       id  path  string  true  "Approval request ID"
//
// @Success     200  {object}  handlers.ApprovalStatusResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Approval request not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /approvals/{id}/status [get]
func (h *Handlers) GetApprovalStatus(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	status, err := h.approvalSvc.GetApprovalStatus(c.Request.Context(), id)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, ApprovalStatusResponse{ApprovalID: id, Status: status})
}

// GetApprovalHistory godoc
// @ID          getApprovalHistory
// @Summary     Approval history (paginated)
// @Description Returns a requester's approval requests of every status, newest first.
// @Description Supports weak ETag via If-None-Match and may return 304.
// @Tags        Approvals
// @Produce     json
//
// @Param       requester_id   query   int     true  "Requester (lawyer) ID"       minimum(1)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"abc123\")
// @Param       page           query   int     false "Page number"                 minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"              minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ApprovalHistoryResponse
// @Header      200  {string} ETag  "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /approvals/history [get]
func (h *Handlers) GetApprovalHistory(c *gin.Context) {
	ctx := c.Request.Context()

	requesterID, okQ := queryID(c, "requester_id")
	if !okQ {
		return
	}
	if requesterID == nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "requester_id is required")
		return
	}
	page, pageSize := clampPagination(c)

	// ETag pre-check (best effort).
	if db := h.approvalDB(); db != nil {
		count, maxTS, err := repo.ApprovalsStats(ctx, db, requesterID)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"approvals:%d:%d:%d"`, *requesterID, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, total, err := h.approvalSvc.GetApprovalHistory(ctx, *requesterID, page, pageSize)
	if err != nil {
		failService(c, err)
		return
	}

	ok(c, http.StatusOK, ApprovalHistoryResponse{
		Approvals:  items,
		Pagination: pageOf(page, pageSize, total),
	})
}

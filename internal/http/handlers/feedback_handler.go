// Feedback HTTP handlers.
//
// This file exposes REST endpoints for quality feedback on generated content:
//   - POST /feedback                    (submit a rating)
//   - GET  /feedback/{id}               (fetch one record)
//   - GET  /feedback                    (list; content_id, user_id or type filter)
//   - GET  /feedback/low-rated          (records below a rating threshold)
//   - GET  /feedback/summary            (aggregate metrics, ETag support)
//   - GET  /feedback/improvement-areas  (issue lists derived from low ratings)
//   - POST /feedback/{id}/addressed     (flag a record as handled)
//
// Ratings run 1 (poor) to 5 (excellent); anything else is rejected before a
// row is written.
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
	"github.com/lexcraft/go-legal-backend/internal/utils"
)

//
// DTOs
//

// SubmitFeedbackRequest is the JSON payload for rating generated content.
type SubmitFeedbackRequest struct {
	// ContentID names the rated content, e.g. an approval or document id.
	ContentID string `json:"content_id" binding:"required" example:"document_draft_20240315120000_42"`
	// ContentType labels the kind of content, e.g. memo, contract_analysis.
	ContentType string `json:"content_type" binding:"required" example:"memo"`
	// UserID is the lawyer submitting the rating.
	UserID int64 `json:"user_id" binding:"required,min=1" example:"42"`
	// Rating runs 1 (poor) to 5 (excellent).
	Rating int `json:"rating" example:"4"`
	// Comments carry free-form remarks.
	Comments string `json:"comments" example:"Solid analysis, but too verbose."`
	// SpecificIssues list concrete problems, e.g. "wrong citation format".
	SpecificIssues []string `json:"specific_issues"`
}

// FeedbackCreatedResponse acknowledges a stored feedback record.
type FeedbackCreatedResponse struct {
	FeedbackID string `json:"feedback_id" example:"feedback_1_20240315120000"`
}

// FeedbackListResponse wraps a filtered feedback listing.
type FeedbackListResponse struct {
	Feedback []domain.FeedbackRecord `json:"feedback"`
	Count    int                     `json:"count"`
}

// ImprovementAreasResponse wraps the per-type improvement areas.
type ImprovementAreasResponse struct {
	ImprovementAreas map[string][]string `json:"improvement_areas"`
}

// MarkAddressedRequest is the JSON payload for flagging feedback as handled.
type MarkAddressedRequest struct {
	// FollowUp describes what was done about the feedback.
	FollowUp string `json:"follow_up" example:"Tightened the drafting prompt."`
}

// FeedbackAddressedResponse acknowledges an addressed record.
type FeedbackAddressedResponse struct {
	FeedbackID string `json:"feedback_id"`
	Addressed  bool   `json:"addressed"`
}

// feedbackDB exposes the feedback store's DB handle for conditional
// responses when the wired implementation is the concrete FeedbackService.
func (h *Handlers) feedbackDB() *gorm.DB {
	if svc, ok := h.feedbackSvc.(*services.FeedbackService); ok {
		return svc.DB
	}
	return nil
}

//
// Handlers
//

// SubmitFeedback godoc
// @ID          submitFeedback
// @Summary     Submit feedback
// @Description Records a 1-5 rating for generated content, with optional comments and specific issues.
// @Tags        Feedback
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.SubmitFeedbackRequest  true  "Feedback payload"
//
// @Success     201  {object}  handlers.FeedbackCreatedResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request or rating out of range"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /feedback [post]
func (h *Handlers) SubmitFeedback(c *gin.Context) {
	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body: content_id, content_type and user_id required")
		return
	}

	id, err := h.feedbackSvc.SubmitFeedback(c.Request.Context(),
		strings.TrimSpace(req.ContentID), strings.TrimSpace(req.ContentType),
		req.UserID, req.Rating, req.Comments, req.SpecificIssues)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusCreated, FeedbackCreatedResponse{FeedbackID: id})
}

// GetFeedback godoc
// @ID          getFeedback
// @Summary     Fetch one feedback record
// @Tags        Feedback
// @Produce     json
//
// @Param       id  path  string  true  "Feedback ID"  example(feedback_1_20240315120000)
//
// @Success     200  {object}  domain.FeedbackRecord
// @Failure     404  {object}  handlers.ErrorResponse  "Feedback not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /feedback/{id} [get]
func (h *Handlers) GetFeedback(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	rec, err := h.feedbackSvc.GetFeedback(c.Request.Context(), id)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, rec)
}

// ListFeedback godoc
// @ID          listFeedback
// @Summary     List feedback
// @Description Returns feedback records newest first. Exactly one filter applies, checked in
// @Description order: content_id, then user_id, then type. With no filter, everything is returned.
// @Tags        Feedback
// @Produce     json
//
// @Param       content_id  query  string  false  "Filter by rated content id"
// @Param       user_id     query  int     false  "Filter by submitting user"  minimum(1)
// @Param       type        query  string  false  "Filter by content type"     example(memo)
//
// @Success     200  {object}  handlers.FeedbackListResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /feedback [get]
func (h *Handlers) ListFeedback(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		items []domain.FeedbackRecord
		err   error
	)
	if cid := strings.TrimSpace(c.Query("content_id")); cid != "" {
		items, err = h.feedbackSvc.GetContentFeedback(ctx, cid)
	} else if uid, okQ := queryID(c, "user_id"); !okQ {
		return
	} else if uid != nil {
		items, err = h.feedbackSvc.GetUserFeedback(ctx, *uid)
	} else {
		// Empty type matches every record.
		items, err = h.feedbackSvc.GetFeedbackByType(ctx, strings.TrimSpace(c.Query("type")))
	}
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, FeedbackListResponse{Feedback: items, Count: len(items)})
}

// ListLowRatedFeedback godoc
// @ID          listLowRatedFeedback
// @Summary     Low-rated feedback
// @Description Returns records rated below the threshold (default 3), worst rating first.
// @Tags        Feedback
// @Produce     json
//
// @Param       threshold  query  int  false  "Ratings below this value are returned"  minimum(1) maximum(5) default(3)
//
// @Success     200  {object}  handlers.FeedbackListResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /feedback/low-rated [get]
func (h *Handlers) ListLowRatedFeedback(c *gin.Context) {
	threshold := utils.AtoiDefault(c.Query("threshold"), 3)

	items, err := h.feedbackSvc.GetLowRatedContent(c.Request.Context(), threshold)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, FeedbackListResponse{Feedback: items, Count: len(items)})
}

// GetFeedbackSummary godoc
// @ID          getFeedbackSummary
// @Summary     Feedback summary
// @Description Aggregates ratings for one content type (or all types) into totals, average,
// @Description distribution, most common issues and the share of positive ratings.
// @Description Supports weak ETag via If-None-Match and may return 304.
// @Tags        Feedback
// @Produce     json
//
// @Param       type           query   string  false  "Content type scope; empty covers all"  example(memo)
// @Param       If-None-Match  header  string  false  "Return 304 if ETag matches"
//
// @Success     200  {object}  services.FeedbackSummary
// @Header      200  {string}  ETag  "Weak ETag for current result"
// @Success     304  {string}  string "Not Modified"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /feedback/summary [get]
func (h *Handlers) GetFeedbackSummary(c *gin.Context) {
	ctx := c.Request.Context()
	contentType := strings.TrimSpace(c.Query("type"))

	// ETag pre-check (best effort).
	if db := h.feedbackDB(); db != nil {
		count, maxTS, err := repo.FeedbackStats(ctx, db, contentType)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"feedback:%s:%d:%d"`, contentType, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	sum, err := h.feedbackSvc.GetFeedbackSummary(ctx, contentType)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, sum)
}

// GetImprovementAreas godoc
// @ID          getImprovementAreas
// @Summary     Improvement areas
// @Description Derives a deduplicated issue list per content type from records rated 2 or lower.
// @Tags        Feedback
// @Produce     json
//
// @Success     200  {object}  handlers.ImprovementAreasResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /feedback/improvement-areas [get]
func (h *Handlers) GetImprovementAreas(c *gin.Context) {
	areas, err := h.feedbackSvc.IdentifyImprovementAreas(c.Request.Context())
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, ImprovementAreasResponse{ImprovementAreas: areas})
}

// MarkFeedbackAddressed godoc
// @ID          markFeedbackAddressed
// @Summary     Flag feedback as addressed
// @Description Marks a record handled, recording what was done. Repeat calls refresh the follow-up.
// @Tags        Feedback
// @Accept      json
// @Produce     json
//
// @Param       id    path  string                          true   "Feedback ID"
// @Param       body  body  handlers.MarkAddressedRequest  false  "Follow-up note"
//
// @Success     200  {object}  handlers.FeedbackAddressedResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Feedback not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /feedback/{id}/addressed [post]
func (h *Handlers) MarkFeedbackAddressed(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req MarkAddressedRequest
	// Body is optional; a bare POST flags the record with no follow-up.
	_ = c.ShouldBindJSON(&req)

	found, err := h.feedbackSvc.MarkAddressed(c.Request.Context(), id, strings.TrimSpace(req.FollowUp))
	if err != nil {
		failService(c, err)
		return
	}
	if !found {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "feedback not found")
		return
	}
	ok(c, http.StatusOK, FeedbackAddressedResponse{FeedbackID: id, Addressed: true})
}

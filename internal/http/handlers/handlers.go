// Handler wiring for the public API.
//
// This file declares the service contracts the HTTP layer consumes, the
// Handlers aggregate that binds them, and the small helpers shared by every
// endpoint (caller identity, path/query id parsing, pagination clamping).
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses (including conditional responses).
package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lexcraft/go-legal-backend/internal/domain"
	"github.com/lexcraft/go-legal-backend/internal/services"
	"github.com/lexcraft/go-legal-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// LawyerService defines lawyer registration and lookup operations.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type LawyerService interface {
	// Register validates and stores a new lawyer profile.
	Register(ctx context.Context, l *domain.Lawyer) (*domain.Lawyer, error)
	// Get fetches a lawyer by id.
	Get(ctx context.Context, id int64) (*domain.Lawyer, error)
	// GetByBarNumber fetches a lawyer by bar number.
	GetByBarNumber(ctx context.Context, barNumber string) (*domain.Lawyer, error)
	// ListPage returns a page of lawyers matching optional filters and the total count.
	ListPage(ctx context.Context, practiceArea, jurisdiction string, page, pageSize int) ([]domain.Lawyer, int64, error)
}

// CaseService defines case lifecycle and document operations.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type CaseService interface {
	// Create validates and stores a new case for an existing lawyer.
	Create(ctx context.Context, lc *domain.LegalCase) (*domain.LegalCase, error)
	// Get fetches a case by id.
	Get(ctx context.Context, id int64) (*domain.LegalCase, error)
	// GetByNumber fetches a case by its docket-style case number.
	GetByNumber(ctx context.Context, caseNumber string) (*domain.LegalCase, error)
	// ListForLawyer returns a page of a lawyer's cases and the total count.
	ListForLawyer(ctx context.Context, lawyerID int64, page, pageSize int) ([]domain.LegalCase, int64, error)
	// UpdateStatus moves a case through its lifecycle, optionally recording the outcome.
	UpdateStatus(ctx context.Context, id int64, status string, outcome *string) (*domain.LegalCase, error)
	// AttachDocument stores a document under a case.
	AttachDocument(ctx context.Context, caseID int64, d *domain.LegalDocument) (*domain.LegalDocument, error)
	// ListDocuments returns a case's documents, newest first.
	ListDocuments(ctx context.Context, caseID int64) ([]domain.LegalDocument, error)
}

// IntelligenceService defines the model-backed legal work operations. Each
// call resolves the acting lawyer, runs exactly one generation, and records
// an audit row.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type IntelligenceService interface {
	// ResearchCaseLaw researches precedents for a legal issue.
	ResearchCaseLaw(ctx context.Context, lawyerID int64, p services.ResearchParams) (string, error)
	// AnalyzeContract reviews a contract supplied inline or by document id.
	AnalyzeContract(ctx context.Context, lawyerID int64, p services.ContractParams) (string, error)
	// AssessCompliance produces a regulatory compliance assessment.
	AssessCompliance(ctx context.Context, lawyerID int64, p services.ComplianceParams) (string, error)
	// DraftDocument drafts a memo, motion, demand letter or contract clause.
	DraftDocument(ctx context.Context, lawyerID int64, p services.DraftParams) (string, error)
	// DevelopLitigationStrategy builds a strategy for an existing case.
	DevelopLitigationStrategy(ctx context.Context, lawyerID, caseID int64, p services.StrategyParams) (string, error)
	// ComprehensiveCaseAnalysis chains research, strategy and contract review.
	ComprehensiveCaseAnalysis(ctx context.Context, lawyerID, caseID int64) (*services.CaseAnalysisBundle, error)
	// GetLawyerSummary derives a practice snapshot for a lawyer.
	GetLawyerSummary(ctx context.Context, lawyerID int64) (*services.LawyerSummary, error)
}

// ApprovalService defines the human-review workflow operations.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ApprovalService interface {
	// RequestApproval queues generated content for review and returns its id.
	RequestApproval(ctx context.Context, approvalType, content string, metadata domain.JSONMap, requesterID int64) (string, error)
	// Approve records an approval decision, optionally with edited content.
	Approve(ctx context.Context, id string, approverID int64, comments, modifications string) (*domain.ApprovalRequest, error)
	// Reject records a rejection decision with a reason.
	Reject(ctx context.Context, id string, approverID int64, reason string) (*domain.ApprovalRequest, error)
	// GetPendingApprovals returns the review queue, oldest first.
	GetPendingApprovals(ctx context.Context, requesterID *int64) ([]domain.ApprovalRequest, error)
	// GetApprovalStatus returns the current status of one request.
	GetApprovalStatus(ctx context.Context, id string) (domain.ApprovalStatus, error)
	// GetApprovalHistory returns a requester's requests, newest first, with the total.
	GetApprovalHistory(ctx context.Context, requesterID int64, page, pageSize int) ([]domain.ApprovalRequest, int64, error)
}

// FeedbackService defines quality-feedback capture and aggregation operations.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type FeedbackService interface {
	// SubmitFeedback records a rating (1-5) for generated content and returns its id.
	SubmitFeedback(ctx context.Context, contentID, contentType string, userID int64, rating int, comments string, issues []string) (string, error)
	// GetFeedback fetches one feedback record by id.
	GetFeedback(ctx context.Context, id string) (*domain.FeedbackRecord, error)
	// GetContentFeedback returns feedback for one piece of content, newest first.
	GetContentFeedback(ctx context.Context, contentID string) ([]domain.FeedbackRecord, error)
	// GetUserFeedback returns feedback submitted by one user, newest first.
	GetUserFeedback(ctx context.Context, userID int64) ([]domain.FeedbackRecord, error)
	// GetFeedbackByType returns feedback for one content type; empty type matches all.
	GetFeedbackByType(ctx context.Context, contentType string) ([]domain.FeedbackRecord, error)
	// GetLowRatedContent returns records rated below the threshold, worst first.
	GetLowRatedContent(ctx context.Context, threshold int) ([]domain.FeedbackRecord, error)
	// GetFeedbackSummary aggregates ratings for one content type (or all).
	GetFeedbackSummary(ctx context.Context, contentType string) (*services.FeedbackSummary, error)
	// MarkAddressed flags a record as handled; false when the id is unknown.
	MarkAddressed(ctx context.Context, id, followUp string) (bool, error)
	// IdentifyImprovementAreas derives issue lists per content type from low ratings.
	IdentifyImprovementAreas(ctx context.Context) (map[string][]string, error)
}

// LibraryService defines read access to the statute and precedent reference
// library plus operational store statistics.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type LibraryService interface {
	// SearchPrecedents ranks precedents against a query, optionally
	// restricted to one jurisdiction.
	SearchPrecedents(ctx context.Context, query, jurisdiction string, limit int) ([]PrecedentHit, error)
	// SearchStatutes returns statutes matching the optional keyword,
	// jurisdiction and category filters, most cited first.
	SearchStatutes(ctx context.Context, query, jurisdiction, category string, limit int) ([]domain.Statute, error)
	// DatabaseStats returns per-table row counts.
	DatabaseStats(ctx context.Context) (map[string]int64, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for lawyers, cases, generation tasks,
// approvals, feedback, and the reference library. It depends on abstract
// service interfaces to keep transport concerns separate from business logic.
type Handlers struct {
	lawyerSvc   LawyerService
	caseSvc     CaseService
	aiSvc       IntelligenceService
	approvalSvc ApprovalService
	feedbackSvc FeedbackService
	librarySvc  LibraryService

	// idemTTL bounds how long stored generation responses stay replayable.
	idemTTL time.Duration
}

// New constructs and returns a Handlers instance bound to the given services.
func New(lawyerSvc LawyerService, caseSvc CaseService, aiSvc IntelligenceService,
	approvalSvc ApprovalService, feedbackSvc FeedbackService, librarySvc LibraryService) *Handlers {
	return &Handlers{
		lawyerSvc:   lawyerSvc,
		caseSvc:     caseSvc,
		aiSvc:       aiSvc,
		approvalSvc: approvalSvc,
		feedbackSvc: feedbackSvc,
		librarySvc:  librarySvc,
	}
}

// WithIdempotencyTTL sets the replay window for stored generation responses
// (24h when unset). It returns h so router setup can chain it onto New.
func (h *Handlers) WithIdempotencyTTL(ttl time.Duration) *Handlers {
	h.idemTTL = ttl
	return h
}

// userID extracts the calling client's id from Gin context (set by upstream
// middleware). If absent, it falls back to "X-User-ID" header (tests use it),
// and finally to "demo-user". It scopes idempotency records and rate limits;
// the acting lawyer is always named explicitly in request payloads.
func userID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if c != nil && c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-User-ID")); h != "" {
			return h
		}
	}
	return "demo-user"
}

//
// Shared DTOs
//

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// PrecedentHit is one scored entry in a precedent search response.
type PrecedentHit struct {
	Precedent domain.Precedent `json:"precedent"`
	Score     float64          `json:"score"`
}

//
// Helpers
//

// pageOf assembles pagination metadata from the fetched page and total count.
func pageOf(page, pageSize int, total int64) Pagination {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
	}
}

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

// pathID parses the named path parameter as a positive integer id. On failure
// it writes a 400 response and returns ok=false.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

// queryID parses an optional integer query parameter. A missing or empty
// parameter yields (nil, true); a malformed one writes a 400 response and
// returns ok=false.
func queryID(c *gin.Context, name string) (*int64, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, name+" must be a positive integer")
		return nil, false
	}
	return &id, true
}

// Generation HTTP handlers.
//
// This file exposes the model-backed legal work endpoints:
//   - POST /research/case-law                  (precedent research)
//   - POST /analyze/contract                   (contract review)
//   - POST /assess/compliance                  (regulatory assessment)
//   - POST /draft/document                     (document drafting)
//   - POST /strategy/litigation/{caseId}       (litigation strategy)
//   - POST /analyze/comprehensive/{caseId}     (research + strategy + contract review)
//
// Handlers are transport-thin:
//   - validate inputs and resolve the acting lawyer id from the payload
//   - delegate to the IntelligenceService (one generation per request)
//   - implement idempotency semantics for safe retries
//
// Idempotency:
// Generation is expensive and not naturally idempotent, so when the client
// supplies an Idempotency-Key header and a previous successful result exists
// for (caller, path, key), the handler returns the recorded response body and
// sets `Idempotency-Replayed: true` without touching the model.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lexcraft/go-legal-backend/internal/http/middleware"
	"github.com/lexcraft/go-legal-backend/internal/repo"
	"github.com/lexcraft/go-legal-backend/internal/services"
)

//
// DTOs
//

// ResearchRequest is the JSON payload for case-law research.
type ResearchRequest struct {
	// LawyerID names the lawyer the research is performed for.
	LawyerID int64 `json:"lawyer_id" binding:"required,min=1" example:"1"`
	// LegalIssue is the question to research.
	LegalIssue string `json:"legal_issue" binding:"required,min=1" example:"trade secret misappropriation by a former employee"`
	// Jurisdiction defaults to the lawyer's jurisdiction when empty.
	Jurisdiction string `json:"jurisdiction" example:"California"`
	// PracticeArea defaults to the lawyer's practice areas when empty.
	PracticeArea string `json:"practice_area" example:"Intellectual Property"`
	CurrentFacts string `json:"current_facts" example:"Employee downloaded design files before resigning."`
	// CaseID optionally links the research to a case; when the case exists
	// its summary replaces CurrentFacts.
	CaseID *int64 `json:"case_id,omitempty" example:"3"`
}

// ContractAnalysisRequest is the JSON payload for contract review. Either
// DocumentID (stored document) or ContractText (inline) must be supplied.
type ContractAnalysisRequest struct {
	LawyerID     int64  `json:"lawyer_id" binding:"required,min=1" example:"1"`
	DocumentID   *int64 `json:"document_id,omitempty" example:"9"`
	ContractName string `json:"contract_name" example:"Master Services Agreement"`
	ContractType string `json:"contract_type" example:"services"`
	ContractText string `json:"contract_text" example:"This Agreement is made and entered into..."`
	Parties      string `json:"parties" example:"Acme Corp; Widget Co"`
	PartyRole    string `json:"party_role" example:"vendor"`
	Jurisdiction string `json:"jurisdiction" example:"California"`
	Industry     string `json:"industry" example:"software"`
}

// ComplianceRequest is the JSON payload for a compliance assessment.
type ComplianceRequest struct {
	LawyerID int64 `json:"lawyer_id" binding:"required,min=1" example:"1"`
	// Organization defaults to the lawyer's firm when empty.
	Organization string `json:"organization" example:"Acme Corp"`
	Industry     string `json:"industry" example:"healthcare"`
	// Jurisdictions defaults to the lawyer's jurisdiction when empty.
	Jurisdictions []string `json:"jurisdictions" example:"California,New York"`
	// Frameworks defaults to the configured framework list when empty.
	Frameworks       []string `json:"frameworks" example:"HIPAA,SOC 2"`
	Scope            []string `json:"scope" example:"data retention,vendor management"`
	CurrentPractices string   `json:"current_practices" example:"Annual privacy training; no formal DPA process."`
}

// DraftDocumentRequest is the JSON payload for document drafting. DocumentType
// selects the deliverable; only the fields for that type are read.
type DraftDocumentRequest struct {
	LawyerID int64 `json:"lawyer_id" binding:"required,min=1" example:"1"`
	// DocumentType is one of: memo, motion, demand_letter, contract_clause.
	DocumentType string `json:"document_type" binding:"required" example:"memo"`
	// Title overrides the default "<Type> Draft" title.
	Title  string `json:"title" example:"Liability Exposure Memo"`
	CaseID *int64 `json:"case_id,omitempty" example:"3"`

	// Shared by several document types.
	Facts        string `json:"facts" example:"Client terminated a distributor without notice."`
	Jurisdiction string `json:"jurisdiction" example:"California"`

	// Memo.
	Recipient string `json:"recipient" example:"Senior Partner"`
	Author    string `json:"author" example:"Jane Smith"`
	Subject   string `json:"subject" example:"Termination liability"`
	Question  string `json:"question" example:"Does early termination expose the client to damages?"`

	// Motion.
	Court        string `json:"court" example:"Superior Court of California"`
	CaseNumber   string `json:"case_number" example:"CV-2024-001234"`
	CaseCaption  string `json:"case_caption" example:"Smith v. Jones"`
	MotionType   string `json:"motion_type" example:"motion to dismiss"`
	ReliefSought string `json:"relief_sought" example:"dismissal with prejudice"`

	// Demand letter.
	ClientName     string `json:"client_name" example:"Acme Corp"`
	ClientPosition string `json:"client_position" example:"unpaid invoices under the supply agreement"`
	RecipientName  string `json:"recipient_name" example:"Widget Co"`
	LegalBasis     string `json:"legal_basis" example:"breach of contract"`
	Damages        string `json:"damages" example:"$50,000 in unpaid invoices"`
	Demand         string `json:"demand" example:"payment of $50,000 within 30 days"`
	Deadline       string `json:"deadline" example:"30 days from receipt"`

	// Contract clause.
	ClauseType   string `json:"clause_type" example:"indemnification"`
	Purpose      string `json:"purpose" example:"limit vendor liability for third-party claims"`
	ContractType string `json:"contract_type" example:"services"`
	Requirements string `json:"requirements" example:"mutual, carve-out for gross negligence"`
}

// StrategyRequest is the JSON payload for litigation strategy development.
type StrategyRequest struct {
	LawyerID int64 `json:"lawyer_id" binding:"required,min=1" example:"1"`
	// ClientPosition defaults to plaintiff when empty.
	ClientPosition string `json:"client_position" example:"defendant"`
	ClientInfo     string `json:"client_info" example:"mid-size manufacturer"`
	Objectives     string `json:"objectives" example:"avoid trial, settle under $100k"`
}

// ComprehensiveRequest is the JSON payload for a comprehensive case analysis.
type ComprehensiveRequest struct {
	LawyerID int64 `json:"lawyer_id" binding:"required,min=1" example:"1"`
}

// GenerationResponse is the JSON envelope for generated text.
type GenerationResponse struct {
	// Result is the generated deliverable, markdown-formatted.
	Result string `json:"result"`
}

//
// Helpers
//

// defaultIdempotencyTTL bounds the replay window when the router does not
// supply a configured TTL.
const defaultIdempotencyTTL = 24 * time.Hour

// idempotencyKey returns the validated Idempotency-Key stashed by upstream
// middleware, falling back to the raw header when no middleware ran (handler
// tests register routes bare).
func idempotencyKey(c *gin.Context) string {
	if k, found := middleware.GetIdempotencyKey(c); found {
		return k
	}
	return strings.TrimSpace(c.GetHeader(middleware.HeaderIdempotencyKey))
}

// idempotencyScope identifies the operation a stored response belongs to.
// The concrete URL path (not the route template) keeps keys for different
// case ids apart.
func idempotencyScope(c *gin.Context) string {
	return c.Request.URL.Path
}

// intelligenceDB exposes the orchestrator's DB handle for idempotency
// records when the wired implementation is the concrete Orchestrator.
func (h *Handlers) intelligenceDB() *gorm.DB {
	if svc, ok := h.aiSvc.(*services.Orchestrator); ok {
		return svc.DB
	}
	return nil
}

// replayGeneration serves the recorded response for (caller, path, key) when
// one exists, marking it with `Idempotency-Replayed: true`. It reports
// whether the request was replayed.
func (h *Handlers) replayGeneration(c *gin.Context, key string) bool {
	if key == "" {
		return false
	}
	db := h.intelligenceDB()
	if db == nil {
		return false
	}
	rec, err := repo.GetIdempotency(c.Request.Context(), db, userID(c), idempotencyScope(c), key, time.Now().UTC())
	if err != nil || rec == nil {
		return false
	}
	c.Header("Idempotency-Replayed", "true")
	c.Data(rec.Status, "application/json; charset=utf-8", []byte(rec.Body))
	return true
}

// respondGeneration writes the fresh generation response and, when the
// request carried an Idempotency-Key, records the serialized body for replay.
// Storage is best effort; a failed write never fails the request.
func (h *Handlers) respondGeneration(c *gin.Context, key string, status int, body any) {
	if key != "" {
		if db := h.intelligenceDB(); db != nil {
			if buf, err := json.Marshal(body); err == nil {
				ttl := h.idemTTL
				if ttl <= 0 {
					ttl = defaultIdempotencyTTL
				}
				_, _ = repo.CreateIdempotency(c.Request.Context(), db, userID(c), idempotencyScope(c), key, string(buf), status, ttl)
			}
		}
	}
	ok(c, status, body)
}

//
// Handlers
//

// ResearchCaseLaw godoc
// @ID          researchCaseLaw
// @Summary     Research case law
// @Description Researches precedents for a legal issue on behalf of a lawyer and records a research session.
// @Description Supports idempotency via the Idempotency-Key header (same key → same result).
// @Tags        Intelligence
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries (UUID recommended)"  example(7a8d9f4c-1b2a-4c3d-8e9f-0123456789ab)
// @Param       body             body    handlers.ResearchRequest  true  "Research payload"
//
// @Success     200  {object}  handlers.GenerationResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Lawyer not found"
// @Failure     502  {object}  handlers.ErrorResponse  "Generation failed"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /research/case-law [post]
func (h *Handlers) ResearchCaseLaw(c *gin.Context) {
	var req ResearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body: lawyer_id and legal_issue required")
		return
	}

	key := idempotencyKey(c)
	if h.replayGeneration(c, key) {
		return
	}

	start := time.Now()
	result, err := h.aiSvc.ResearchCaseLaw(c.Request.Context(), req.LawyerID, services.ResearchParams{
		LegalIssue:   strings.TrimSpace(req.LegalIssue),
		Jurisdiction: strings.TrimSpace(req.Jurisdiction),
		PracticeArea: strings.TrimSpace(req.PracticeArea),
		CurrentFacts: strings.TrimSpace(req.CurrentFacts),
		CaseID:       req.CaseID,
	})
	middleware.ObserveGeneration("research", time.Since(start), err)
	if err != nil {
		failService(c, err)
		return
	}
	h.respondGeneration(c, key, http.StatusOK, GenerationResponse{Result: result})
}

// AnalyzeContract godoc
// @ID          analyzeContract
// @Summary     Analyze a contract
// @Description Reviews a contract supplied inline or by stored document id and records the analysis.
// @Description Supports idempotency via the Idempotency-Key header.
// @Tags        Intelligence
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries"
// @Param       body             body    handlers.ContractAnalysisRequest  true  "Contract payload"
//
// @Success     200  {object}  handlers.GenerationResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Lawyer or document not found"
// @Failure     502  {object}  handlers.ErrorResponse  "Generation failed"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /analyze/contract [post]
func (h *Handlers) AnalyzeContract(c *gin.Context) {
	var req ContractAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body: lawyer_id required")
		return
	}
	if req.DocumentID == nil && strings.TrimSpace(req.ContractText) == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "contract_text or document_id required")
		return
	}

	key := idempotencyKey(c)
	if h.replayGeneration(c, key) {
		return
	}

	start := time.Now()
	result, err := h.aiSvc.AnalyzeContract(c.Request.Context(), req.LawyerID, services.ContractParams{
		DocumentID:   req.DocumentID,
		ContractName: strings.TrimSpace(req.ContractName),
		ContractType: strings.TrimSpace(req.ContractType),
		ContractText: req.ContractText,
		Parties:      strings.TrimSpace(req.Parties),
		PartyRole:    strings.TrimSpace(req.PartyRole),
		Jurisdiction: strings.TrimSpace(req.Jurisdiction),
		Industry:     strings.TrimSpace(req.Industry),
	})
	middleware.ObserveGeneration("contract", time.Since(start), err)
	if err != nil {
		failService(c, err)
		return
	}
	h.respondGeneration(c, key, http.StatusOK, GenerationResponse{Result: result})
}

// AssessCompliance godoc
// @ID          assessCompliance
// @Summary     Assess regulatory compliance
// @Description Produces a compliance assessment for an organization against the selected frameworks.
// @Description Supports idempotency via the Idempotency-Key header.
// @Tags        Intelligence
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries"
// @Param       body             body    handlers.ComplianceRequest  true  "Compliance payload"
//
// @Success     200  {object}  handlers.GenerationResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Lawyer not found"
// @Failure     502  {object}  handlers.ErrorResponse  "Generation failed"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /assess/compliance [post]
func (h *Handlers) AssessCompliance(c *gin.Context) {
	var req ComplianceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body: lawyer_id required")
		return
	}

	key := idempotencyKey(c)
	if h.replayGeneration(c, key) {
		return
	}

	start := time.Now()
	result, err := h.aiSvc.AssessCompliance(c.Request.Context(), req.LawyerID, services.ComplianceParams{
		Organization:     strings.TrimSpace(req.Organization),
		Industry:         strings.TrimSpace(req.Industry),
		Jurisdictions:    req.Jurisdictions,
		Frameworks:       req.Frameworks,
		Scope:            req.Scope,
		CurrentPractices: req.CurrentPractices,
	})
	middleware.ObserveGeneration("compliance", time.Since(start), err)
	if err != nil {
		failService(c, err)
		return
	}
	h.respondGeneration(c, key, http.StatusOK, GenerationResponse{Result: result})
}

// DraftDocument godoc
// @ID          draftDocument
// @Summary     Draft a legal document
// @Description Drafts a memo, motion, demand letter or contract clause and stores it as a draft document.
// @Description Supports idempotency via the Idempotency-Key header.
// @Tags        Intelligence
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries"
// @Param       body             body    handlers.DraftDocumentRequest  true  "Draft payload"
//
// @Success     200  {object}  handlers.GenerationResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Unsupported document type"
// @Failure     404  {object}  handlers.ErrorResponse  "Lawyer or case not found"
// @Failure     502  {object}  handlers.ErrorResponse  "Generation failed"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /draft/document [post]
func (h *Handlers) DraftDocument(c *gin.Context) {
	var req DraftDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body: lawyer_id and document_type required")
		return
	}

	key := idempotencyKey(c)
	if h.replayGeneration(c, key) {
		return
	}

	start := time.Now()
	result, err := h.aiSvc.DraftDocument(c.Request.Context(), req.LawyerID, services.DraftParams{
		DocumentType: strings.TrimSpace(req.DocumentType),
		Title:        strings.TrimSpace(req.Title),
		CaseID:       req.CaseID,

		Facts:        req.Facts,
		Jurisdiction: strings.TrimSpace(req.Jurisdiction),

		Recipient: strings.TrimSpace(req.Recipient),
		Author:    strings.TrimSpace(req.Author),
		Subject:   strings.TrimSpace(req.Subject),
		Question:  req.Question,

		Court:        strings.TrimSpace(req.Court),
		CaseNumber:   strings.TrimSpace(req.CaseNumber),
		CaseCaption:  strings.TrimSpace(req.CaseCaption),
		MotionType:   strings.TrimSpace(req.MotionType),
		ReliefSought: req.ReliefSought,

		ClientName:     strings.TrimSpace(req.ClientName),
		ClientPosition: req.ClientPosition,
		RecipientName:  strings.TrimSpace(req.RecipientName),
		LegalBasis:     req.LegalBasis,
		Damages:        req.Damages,
		Demand:         req.Demand,
		Deadline:       strings.TrimSpace(req.Deadline),

		ClauseType:   strings.TrimSpace(req.ClauseType),
		Purpose:      req.Purpose,
		ContractType: strings.TrimSpace(req.ContractType),
		Requirements: req.Requirements,
	})
	middleware.ObserveGeneration("draft", time.Since(start), err)
	if err != nil {
		failService(c, err)
		return
	}
	h.respondGeneration(c, key, http.StatusOK, GenerationResponse{Result: result})
}

// DevelopStrategy godoc
// @ID          developStrategy
// @Summary     Develop litigation strategy
// @Description Builds a litigation strategy for an existing case and records the analysis.
// @Description Supports idempotency via the Idempotency-Key header.
// @Tags        Intelligence
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries"
// @Param       caseId           path    int     true  "Case ID"  minimum(1)
// @Param       body             body    handlers.StrategyRequest  true  "Strategy payload"
//
// @Success     200  {object}  handlers.GenerationResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Case or lawyer not found"
// @Failure     502  {object}  handlers.ErrorResponse  "Generation failed"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /strategy/litigation/{caseId} [post]
func (h *Handlers) DevelopStrategy(c *gin.Context) {
	caseID, okID := pathID(c, "caseId")
	if !okID {
		return
	}

	var req StrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body: lawyer_id required")
		return
	}

	key := idempotencyKey(c)
	if h.replayGeneration(c, key) {
		return
	}

	start := time.Now()
	result, err := h.aiSvc.DevelopLitigationStrategy(c.Request.Context(), req.LawyerID, caseID, services.StrategyParams{
		ClientPosition: strings.TrimSpace(req.ClientPosition),
		ClientInfo:     req.ClientInfo,
		Objectives:     req.Objectives,
	})
	middleware.ObserveGeneration("strategy", time.Since(start), err)
	if err != nil {
		failService(c, err)
		return
	}
	h.respondGeneration(c, key, http.StatusOK, GenerationResponse{Result: result})
}

// AnalyzeComprehensive godoc
// @ID          analyzeComprehensive
// @Summary     Comprehensive case analysis
// @Description Chains case-law research, litigation strategy and contract review of the case's
// @Description recent contract documents into one bundle. Supports idempotency via the Idempotency-Key header.
// @Tags        Intelligence
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries"
// @Param       caseId           path    int     true  "Case ID"  minimum(1)
// @Param       body             body    handlers.ComprehensiveRequest  true  "Analysis payload"
//
// @Success     200  {object}  services.CaseAnalysisBundle
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Case or lawyer not found"
// @Failure     502  {object}  handlers.ErrorResponse  "Generation failed"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /analyze/comprehensive/{caseId} [post]
func (h *Handlers) AnalyzeComprehensive(c *gin.Context) {
	caseID, okID := pathID(c, "caseId")
	if !okID {
		return
	}

	var req ComprehensiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body: lawyer_id required")
		return
	}

	key := idempotencyKey(c)
	if h.replayGeneration(c, key) {
		return
	}

	start := time.Now()
	bundle, err := h.aiSvc.ComprehensiveCaseAnalysis(c.Request.Context(), req.LawyerID, caseID)
	middleware.ObserveGeneration("comprehensive", time.Since(start), err)
	if err != nil {
		failService(c, err)
		return
	}
	h.respondGeneration(c, key, http.StatusOK, bundle)
}

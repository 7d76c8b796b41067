// Case HTTP handlers.
//
// This file exposes REST endpoints for case resources:
//   - POST  /cases                        (open a case)
//   - GET   /cases/{id}                   (fetch)
//   - GET   /cases/by-number/{caseNumber} (fetch by docket number)
//   - PATCH /cases/{id}/status            (advance lifecycle, record outcome)
//   - POST  /cases/{id}/documents         (attach a document)
//   - GET   /cases/{id}/documents         (list documents, newest first)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses.
package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lexcraft/go-legal-backend/internal/domain"
)

//
// DTOs
//

// CreateCaseRequest is the JSON payload for opening a case.
type CreateCaseRequest struct {
	// CaseNumber is the docket-style identifier, e.g. CV-2024-001234.
	CaseNumber string `json:"case_number" binding:"required" example:"CV-2024-001234"`
	// Title names the matter.
	Title         string     `json:"title" binding:"required,min=1,max=255" example:"Smith v. Jones"`
	CaseType      string     `json:"case_type" example:"civil"`
	PracticeArea  string     `json:"practice_area" example:"Civil Litigation"`
	Jurisdiction  string     `json:"jurisdiction" example:"California"`
	Court         string     `json:"court" example:"Superior Court of California"`
	FilingDate    *time.Time `json:"filing_date,omitempty"`
	LawyerID      int64      `json:"lawyer_id" binding:"required,min=1" example:"1"`
	ClientName    string     `json:"client_name" example:"Pat Smith"`
	OpposingParty string     `json:"opposing_party" example:"Drew Jones"`
	CaseSummary   string     `json:"case_summary" example:"Breach of a commercial supply agreement."`
	KeyIssues     string     `json:"key_issues" example:"breach of contract, damages calculation"`
}

// UpdateCaseStatusRequest is the JSON payload for a case lifecycle change.
type UpdateCaseStatusRequest struct {
	// Status is the new lifecycle label: active, pending, closed, settled or dismissed.
	Status string `json:"status" binding:"required" example:"closed"`
	// Outcome optionally records how the matter ended, e.g. won or lost.
	Outcome *string `json:"outcome,omitempty" example:"won"`
}

// AttachDocumentRequest is the JSON payload for attaching a document to a case.
type AttachDocumentRequest struct {
	// DocumentType labels the document, e.g. contract, motion, memo.
	DocumentType string `json:"document_type" binding:"required" example:"contract"`
	// Title names the document.
	Title           string `json:"title" binding:"required,min=1,max=255" example:"Master Services Agreement"`
	DocumentContent string `json:"document_content" example:"This Agreement is made and entered into..."`
	Jurisdiction    string `json:"jurisdiction" example:"California"`
	PracticeArea    string `json:"practice_area" example:"Corporate Law"`
	// Status defaults to draft when empty.
	Status string `json:"status" example:"executed"`
}

//
// Handlers
//

// CreateCase godoc
// @ID          createCase
// @Summary     Open a case
// @Description Validates and stores a new case for an existing lawyer. Case numbers are unique.
// @Tags        Cases
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateCaseRequest  true  "Case payload"
//
// @Success     201  {object}  domain.LegalCase
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     404  {object}  handlers.ErrorResponse  "Lawyer not found"
// @Failure     409  {object}  handlers.ErrorResponse  "Case number already exists"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /cases [post]
func (h *Handlers) CreateCase(c *gin.Context) {
	var req CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body: case_number, title and lawyer_id required")
		return
	}

	lc := &domain.LegalCase{
		CaseNumber:    strings.TrimSpace(req.CaseNumber),
		Title:         strings.TrimSpace(req.Title),
		CaseType:      strings.TrimSpace(req.CaseType),
		PracticeArea:  strings.TrimSpace(req.PracticeArea),
		Jurisdiction:  strings.TrimSpace(req.Jurisdiction),
		Court:         strings.TrimSpace(req.Court),
		FilingDate:    req.FilingDate,
		LawyerID:      req.LawyerID,
		ClientName:    strings.TrimSpace(req.ClientName),
		OpposingParty: strings.TrimSpace(req.OpposingParty),
		CaseSummary:   strings.TrimSpace(req.CaseSummary),
		KeyIssues:     strings.TrimSpace(req.KeyIssues),
	}

	out, err := h.caseSvc.Create(c.Request.Context(), lc)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusCreated, out)
}

// GetCase godoc
// @ID          getCase
// @Summary     Fetch a case
// @Description Returns one case by id.
// @Tags        Cases
// @Produce     json
//
// @Param       id  path  int  true  "Case ID"  minimum(1)
//
// @Success     200  {object} domain.LegalCase
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Case not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /cases/{id} [get]
func (h *Handlers) GetCase(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		return
	}

	lc, err := h.caseSvc.Get(c.Request.Context(), id)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, lc)
}

// GetCaseByNumber godoc
// @ID          getCaseByNumber
// @Summary     Fetch a case by docket number
// @Description Returns one case by its unique case number.
// @Tags        Cases
// @Produce     json
//
// @Param       caseNumber  path  string  true  "Case number"  example(CV-2024-001234)
//
// @Success     200  {object} domain.LegalCase
// @Failure     404  {object} handlers.ErrorResponse "Case not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /cases/by-number/{caseNumber} [get]
func (h *Handlers) GetCaseByNumber(c *gin.Context) {
	number := strings.TrimSpace(c.Param("caseNumber"))

	lc, err := h.caseSvc.GetByNumber(c.Request.Context(), number)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, lc)
}

// UpdateCaseStatus godoc
// @ID          updateCaseStatus
// @Summary     Update a case's lifecycle status
// @Description Moves the case to a new status and optionally records the outcome (set when a case closes).
// @Tags        Cases
// @Accept      json
// @Produce     json
//
// @Param       id    path  int                                  true  "Case ID"  minimum(1)
// @Param       body  body  handlers.UpdateCaseStatusRequest  true  "New status"
//
// @Success     200  {object} domain.LegalCase
// @Failure     400  {object} handlers.ErrorResponse "Unknown status"
// @Failure     404  {object} handlers.ErrorResponse "Case not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /cases/{id}/status [patch]
func (h *Handlers) UpdateCaseStatus(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		return
	}

	var req UpdateCaseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Status) == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "status required")
		return
	}

	lc, err := h.caseSvc.UpdateStatus(c.Request.Context(), id, req.Status, req.Outcome)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, lc)
}

// AttachDocument godoc
// @ID          attachDocument
// @Summary     Attach a document to a case
// @Description Stores a document under the case. The document inherits the case's lawyer.
// @Tags        Cases
// @Accept      json
// @Produce     json
//
// @Param       id    path  int                               true  "Case ID"  minimum(1)
// @Param       body  body  handlers.AttachDocumentRequest  true  "Document payload"
//
// @Success     201  {object} domain.LegalDocument
// @Failure     400  {object} handlers.ErrorResponse "Validation failed"
// @Failure     404  {object} handlers.ErrorResponse "Case not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /cases/{id}/documents [post]
func (h *Handlers) AttachDocument(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		return
	}

	var req AttachDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body: document_type and title required")
		return
	}

	d := &domain.LegalDocument{
		DocumentType:    strings.TrimSpace(req.DocumentType),
		Title:           strings.TrimSpace(req.Title),
		DocumentContent: req.DocumentContent,
		Jurisdiction:    strings.TrimSpace(req.Jurisdiction),
		PracticeArea:    strings.TrimSpace(req.PracticeArea),
		Status:          strings.TrimSpace(req.Status),
	}

	out, err := h.caseSvc.AttachDocument(c.Request.Context(), id, d)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusCreated, out)
}

// ListCaseDocuments godoc
// @ID          listCaseDocuments
// @Summary     List a case's documents
// @Description Returns all documents attached to the case, newest first.
// @Tags        Cases
// @Produce     json
//
// @Param       id  path  int  true  "Case ID"  minimum(1)
//
// @Success     200  {array}  domain.LegalDocument
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Case not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /cases/{id}/documents [get]
func (h *Handlers) ListCaseDocuments(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		return
	}

	docs, err := h.caseSvc.ListDocuments(c.Request.Context(), id)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, docs)
}

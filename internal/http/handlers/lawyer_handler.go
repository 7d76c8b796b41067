// Lawyer HTTP handlers.
//
// This file exposes REST endpoints for lawyer resources:
//   - POST /lawyers               (register)
//   - GET  /lawyers               (list, paginated, optional filters)
//   - GET  /lawyers/{id}          (fetch profile)
//   - GET  /lawyers/{id}/summary  (practice snapshot with case statistics)
//   - GET  /lawyers/{id}/cases    (list the lawyer's cases, paginated)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lexcraft/go-legal-backend/internal/domain"
)

//
// DTOs
//

// CreateLawyerRequest is the JSON payload for registering a lawyer.
type CreateLawyerRequest struct {
	// Name is the lawyer's full name.
	Name string `json:"name" binding:"required,min=1,max=255" example:"Jane Smith"`
	// BarNumber is the unique bar registration (6-15 letters/digits).
	BarNumber       string `json:"bar_number" binding:"required" example:"CA123456"`
	Firm            string `json:"firm" example:"Smith & Associates"`
	PracticeAreas   string `json:"practice_areas" example:"Corporate Law, Securities"`
	Jurisdiction    string `json:"jurisdiction" example:"California"`
	YearsExperience int    `json:"years_experience" example:"12"`
	Specializations string `json:"specializations" example:"M&A, Venture Financing"`
	Email           string `json:"email" example:"jane.smith@smithlaw.example"`
	Phone           string `json:"phone" example:"415-555-0142"`
}

// ListLawyersResponse wraps a page of lawyers and pagination information.
type ListLawyersResponse struct {
	Lawyers    []domain.Lawyer `json:"lawyers"`
	Pagination Pagination      `json:"pagination"`
}

// ListCasesResponse wraps a page of cases and pagination information.
type ListCasesResponse struct {
	Cases      []domain.LegalCase `json:"cases"`
	Pagination Pagination         `json:"pagination"`
}

//
// Handlers
//

// CreateLawyer godoc
// @ID          createLawyer
// @Summary     Register a lawyer
// @Description Validates and stores a new lawyer profile. Bar numbers are unique and normalized to uppercase.
// @Tags        Lawyers
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateLawyerRequest  true  "Lawyer profile"
//
// @Success     201  {object}  domain.Lawyer
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     409  {object}  handlers.ErrorResponse  "Bar number already registered"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /lawyers [post]
func (h *Handlers) CreateLawyer(c *gin.Context) {
	var req CreateLawyerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body: name and bar_number required")
		return
	}

	l := &domain.Lawyer{
		Name:            strings.TrimSpace(req.Name),
		BarNumber:       strings.TrimSpace(req.BarNumber),
		Firm:            strings.TrimSpace(req.Firm),
		PracticeAreas:   strings.TrimSpace(req.PracticeAreas),
		Jurisdiction:    strings.TrimSpace(req.Jurisdiction),
		YearsExperience: req.YearsExperience,
		Specializations: strings.TrimSpace(req.Specializations),
		Email:           strings.TrimSpace(req.Email),
		Phone:           strings.TrimSpace(req.Phone),
	}

	out, err := h.lawyerSvc.Register(c.Request.Context(), l)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusCreated, out)
}

// ListLawyers godoc
// @ID          listLawyers
// @Summary     List lawyers (paginated)
// @Description Returns a page of lawyers, optionally filtered by practice area and jurisdiction.
// @Description When bar_number is supplied, the matching lawyer is returned as a single-item page.
// @Tags        Lawyers
// @Produce     json
//
// @Param       practice_area  query  string  false "Filter by practice area"   example(Corporate Law)
// @Param       jurisdiction   query  string  false "Filter by jurisdiction"    example(California)
// @Param       bar_number     query  string  false "Exact bar number lookup"   example(CA123456)
// @Param       page           query  int     false "Page number"               minimum(1) default(1)
// @Param       page_size      query  int     false "Items per page"            minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ListLawyersResponse
// @Failure     404  {object} handlers.ErrorResponse "Bar number not registered"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /lawyers [get]
func (h *Handlers) ListLawyers(c *gin.Context) {
	ctx := c.Request.Context()

	// Exact lookup short-circuits the paged listing.
	if bar := strings.TrimSpace(c.Query("bar_number")); bar != "" {
		l, err := h.lawyerSvc.GetByBarNumber(ctx, bar)
		if err != nil {
			failService(c, err)
			return
		}
		ok(c, http.StatusOK, ListLawyersResponse{
			Lawyers:    []domain.Lawyer{*l},
			Pagination: pageOf(1, 1, 1),
		})
		return
	}

	page, pageSize := clampPagination(c)
	items, total, err := h.lawyerSvc.ListPage(ctx,
		strings.TrimSpace(c.Query("practice_area")),
		strings.TrimSpace(c.Query("jurisdiction")),
		page, pageSize)
	if err != nil {
		failService(c, err)
		return
	}

	ok(c, http.StatusOK, ListLawyersResponse{
		Lawyers:    items,
		Pagination: pageOf(page, pageSize, total),
	})
}

// GetLawyer godoc
// @ID          getLawyer
// @Summary     Fetch a lawyer
// @Description Returns one lawyer profile by id.
// @Tags        Lawyers
// @Produce     json
//
// @Param       id  path  int  true  "Lawyer ID"  minimum(1)
//
// @Success     200  {object} domain.Lawyer
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Lawyer not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /lawyers/{id} [get]
func (h *Handlers) GetLawyer(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		return
	}

	l, err := h.lawyerSvc.Get(c.Request.Context(), id)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, l)
}

// GetLawyerSummary godoc
// @ID          getLawyerSummary
// @Summary     Practice snapshot for a lawyer
// @Description Returns profile fields plus caseload and outcome statistics (active/closed/won cases, win rate, recent cases).
// @Tags        Lawyers
// @Produce     json
//
// @Param       id  path  int  true  "Lawyer ID"  minimum(1)
//
// @Success     200  {object} services.LawyerSummary
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Lawyer not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /lawyers/{id}/summary [get]
func (h *Handlers) GetLawyerSummary(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		return
	}

	sum, err := h.aiSvc.GetLawyerSummary(c.Request.Context(), id)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, sum)
}

// ListLawyerCases godoc
// @ID          listLawyerCases
// @Summary     List a lawyer's cases (paginated)
// @Description Returns a page of the lawyer's cases, most recently filed first.
// @Tags        Lawyers
// @Produce     json
//
// @Param       id         path   int  true  "Lawyer ID"      minimum(1)
// @Param       page       query  int  false "Page number"    minimum(1) default(1)
// @Param       page_size  query  int  false "Items per page" minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ListCasesResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Lawyer not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /lawyers/{id}/cases [get]
func (h *Handlers) ListLawyerCases(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		return
	}

	page, pageSize := clampPagination(c)
	items, total, err := h.caseSvc.ListForLawyer(c.Request.Context(), id, page, pageSize)
	if err != nil {
		failService(c, err)
		return
	}

	ok(c, http.StatusOK, ListCasesResponse{
		Cases:      items,
		Pagination: pageOf(page, pageSize, total),
	})
}

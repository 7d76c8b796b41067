// Reference library HTTP handlers.
//
// This file exposes read-only endpoints over the statute and precedent
// library plus operational store statistics:
//   - GET /precedents/search  (ranked lexical search over the precedent index)
//   - GET /statutes/search    (filtered statute lookup, most cited first)
//   - GET /stats/database     (per-table row counts)
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lexcraft/go-legal-backend/internal/domain"
	"github.com/lexcraft/go-legal-backend/internal/utils"
)

//
// DTOs
//

// PrecedentSearchResponse wraps ranked precedent search results.
type PrecedentSearchResponse struct {
	Results []PrecedentHit `json:"results"`
	Count   int            `json:"count"`
}

// StatuteSearchResponse wraps a statute search result set.
type StatuteSearchResponse struct {
	Statutes []domain.Statute `json:"statutes"`
	Count    int              `json:"count"`
}

// clampSearchLimit bounds the limit query param for search endpoints.
func clampSearchLimit(c *gin.Context) int {
	const (
		defaultLimit = 10
		maxLimit     = 50
	)
	limit := utils.AtoiDefault(c.Query("limit"), defaultLimit)
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit
}

//
// Handlers
//

// SearchPrecedents godoc
// @ID          searchPrecedents
// @Summary     Search precedents
// @Description Ranks precedents against the query by lexical similarity, optionally restricted
// @Description to one jurisdiction. Overruled precedents are excluded from the index.
// @Tags        Library
// @Produce     json
//
// @Param       query         query  string  true   "Search terms"            example(trade secret misappropriation)
// @Param       jurisdiction  query  string  false  "Restrict to jurisdiction" example(California)
// @Param       limit         query  int     false  "Maximum results"          minimum(1) maximum(50) default(10)
//
// @Success     200  {object}  handlers.PrecedentSearchResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing query"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /precedents/search [get]
func (h *Handlers) SearchPrecedents(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "query is required")
		return
	}

	hits, err := h.librarySvc.SearchPrecedents(c.Request.Context(), query,
		strings.TrimSpace(c.Query("jurisdiction")), clampSearchLimit(c))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, PrecedentSearchResponse{Results: hits, Count: len(hits)})
}

// SearchStatutes godoc
// @ID          searchStatutes
// @Summary     Search statutes
// @Description Returns statutes matching the optional keyword, jurisdiction and category
// @Description filters, most cited first.
// @Tags        Library
// @Produce     json
//
// @Param       query         query  string  false  "Keyword against title and summary"  example(data protection)
// @Param       jurisdiction  query  string  false  "Filter by jurisdiction"             example(California)
// @Param       category      query  string  false  "Filter by category"                 example(privacy)
// @Param       limit         query  int     false  "Maximum results"                    minimum(1) maximum(50) default(10)
//
// @Success     200  {object}  handlers.StatuteSearchResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /statutes/search [get]
func (h *Handlers) SearchStatutes(c *gin.Context) {
	statutes, err := h.librarySvc.SearchStatutes(c.Request.Context(),
		strings.TrimSpace(c.Query("query")),
		strings.TrimSpace(c.Query("jurisdiction")),
		strings.TrimSpace(c.Query("category")),
		clampSearchLimit(c))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, StatuteSearchResponse{Statutes: statutes, Count: len(statutes)})
}

// GetDatabaseStats godoc
// @ID          getDatabaseStats
// @Summary     Store statistics
// @Description Returns the row count of every domain table.
// @Tags        Library
// @Produce     json
//
// @Success     200  {object}  map[string]int64
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /stats/database [get]
func (h *Handlers) GetDatabaseStats(c *gin.Context) {
	stats, err := h.librarySvc.DatabaseStats(c.Request.Context())
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, stats)
}

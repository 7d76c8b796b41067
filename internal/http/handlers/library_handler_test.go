package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/lexcraft/go-legal-backend/internal/domain"
)

func newLibraryRouter(lib LibraryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(stubLawyerSvc{}, stubCaseSvc{}, stubIntelSvc{},
		stubApprovalSvc{}, stubFeedbackSvc{}, lib)

	r := gin.New()
	r.GET("/precedents/search", h.SearchPrecedents)
	r.GET("/statutes/search", h.SearchStatutes)
	r.GET("/stats/database", h.GetDatabaseStats)
	return r
}

func TestSearchPrecedents_QueryAndLimitClamping(t *testing.T) {
	var gotQuery, gotJurisdiction string
	var gotLimit int
	lib := stubLibrarySvc{
		precedents: func(_ context.Context, q, j string, limit int) ([]PrecedentHit, error) {
			gotQuery, gotJurisdiction, gotLimit = q, j, limit
			return []PrecedentHit{
				{Precedent: domain.Precedent{CaseName: "Waymo v. Uber"}, Score: 0.82},
			}, nil
		},
	}
	r := newLibraryRouter(lib)

	// Missing query -> 400
	{
		w := getJSON(t, r, "/precedents/search")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("missing query -> %d body=%s", w.Code, w.Body.String())
		}
		var er ErrorResponse
		_ = json.Unmarshal(w.Body.Bytes(), &er)
		if er.Message != "query is required" {
			t.Fatalf("unexpected 400 body: %s", w.Body.String())
		}
	}

	// Defaults: limit 10
	{
		w := getJSON(t, r, "/precedents/search?query=trade+secrets&jurisdiction=California")
		if w.Code != http.StatusOK {
			t.Fatalf("search -> %d body=%s", w.Code, w.Body.String())
		}
		if gotQuery != "trade secrets" || gotJurisdiction != "California" || gotLimit != 10 {
			t.Fatalf("args = %q %q %d", gotQuery, gotJurisdiction, gotLimit)
		}
		var resp PrecedentSearchResponse
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Count != 1 || resp.Results[0].Precedent.CaseName != "Waymo v. Uber" {
			t.Fatalf("unexpected results: %s", w.Body.String())
		}
		if resp.Results[0].Score != 0.82 {
			t.Fatalf("score = %v", resp.Results[0].Score)
		}
	}

	// Limit clamps to [1, 50]
	{
		getJSON(t, r, "/precedents/search?query=x&limit=500")
		if gotLimit != 50 {
			t.Fatalf("limit 500 clamped to %d", gotLimit)
		}
		getJSON(t, r, "/precedents/search?query=x&limit=-3")
		if gotLimit != 1 {
			t.Fatalf("limit -3 clamped to %d", gotLimit)
		}
	}
}

func TestSearchStatutes_FiltersPassThrough(t *testing.T) {
	var gotQuery, gotJurisdiction, gotCategory string
	var gotLimit int
	lib := stubLibrarySvc{
		statutes: func(_ context.Context, q, j, cat string, limit int) ([]domain.Statute, error) {
			gotQuery, gotJurisdiction, gotCategory, gotLimit = q, j, cat, limit
			return []domain.Statute{
				{StatuteCode: "CIV-1798.100", Title: "California Consumer Privacy Act"},
			}, nil
		},
	}
	r := newLibraryRouter(lib)

	// Statute search has no mandatory query; empty filters match broadly
	w := getJSON(t, r, "/statutes/search?category=privacy&limit=5")
	if w.Code != http.StatusOK {
		t.Fatalf("statutes -> %d body=%s", w.Code, w.Body.String())
	}
	if gotQuery != "" || gotJurisdiction != "" || gotCategory != "privacy" || gotLimit != 5 {
		t.Fatalf("args = %q %q %q %d", gotQuery, gotJurisdiction, gotCategory, gotLimit)
	}
	var resp StatuteSearchResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Count != 1 || resp.Statutes[0].StatuteCode != "CIV-1798.100" {
		t.Fatalf("unexpected statutes: %s", w.Body.String())
	}
}

func TestDatabaseStats_AndLibraryErrors(t *testing.T) {
	// Stats happy path
	{
		lib := stubLibrarySvc{
			stats: func(context.Context) (map[string]int64, error) {
				return map[string]int64{"lawyers": 3, "cases": 12, "statutes": 40}, nil
			},
		}
		r := newLibraryRouter(lib)
		w := getJSON(t, r, "/stats/database")
		if w.Code != http.StatusOK {
			t.Fatalf("stats -> %d body=%s", w.Code, w.Body.String())
		}
		var stats map[string]int64
		_ = json.Unmarshal(w.Body.Bytes(), &stats)
		if stats["cases"] != 12 || stats["statutes"] != 40 {
			t.Fatalf("unexpected stats: %+v", stats)
		}
	}

	// Store failure surfaces as 500 internal_error
	{
		lib := stubLibrarySvc{
			stats: func(context.Context) (map[string]int64, error) {
				return nil, errors.New("disk gone")
			},
		}
		r := newLibraryRouter(lib)
		w := getJSON(t, r, "/stats/database")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("failed stats -> %d body=%s", w.Code, w.Body.String())
		}
		var er ErrorResponse
		_ = json.Unmarshal(w.Body.Bytes(), &er)
		if er.Code != ErrCodeInternal {
			t.Fatalf("code = %q", er.Code)
		}
	}
}

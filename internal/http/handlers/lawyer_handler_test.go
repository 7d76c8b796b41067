package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/lexcraft/go-legal-backend/internal/domain"
	"github.com/lexcraft/go-legal-backend/internal/services"
)

// newLawyerRouter wires the real LawyerService over an in-memory DB; the
// other services stay stubbed.
func newLawyerRouter(t *testing.T, intel IntelligenceService, caseSvc CaseService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newHandlersDB(t)
	svc := services.NewLawyerService(db, testLawyerRepo{})
	if intel == nil {
		intel = stubIntelSvc{}
	}
	if caseSvc == nil {
		caseSvc = stubCaseSvc{}
	}
	h := New(svc, caseSvc, intel, stubApprovalSvc{}, stubFeedbackSvc{}, stubLibrarySvc{})

	r := gin.New()
	r.POST("/lawyers", h.CreateLawyer)
	r.GET("/lawyers", h.ListLawyers)
	r.GET("/lawyers/:id", h.GetLawyer)
	r.GET("/lawyers/:id/summary", h.GetLawyerSummary)
	r.GET("/lawyers/:id/cases", h.ListLawyerCases)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func getJSON(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestCreateLawyer_ValidationAndNormalization(t *testing.T) {
	r := newLawyerRouter(t, nil, nil)

	// Bad JSON -> 400
	{
		w := postJSON(t, r, "/lawyers", `{"name": 12}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("bad json -> %d body=%s", w.Code, w.Body.String())
		}
	}

	// Missing required profile fields -> 400 validation_failed
	{
		w := postJSON(t, r, "/lawyers", `{"name":"Jane Smith","bar_number":"CA123456"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("missing fields -> %d body=%s", w.Code, w.Body.String())
		}
		var er ErrorResponse
		_ = json.Unmarshal(w.Body.Bytes(), &er)
		if er.Code != ErrCodeValidationFailed {
			t.Fatalf("code = %q body=%s", er.Code, w.Body.String())
		}
	}

	// Lowercase bar number -> 201, stored uppercase
	{
		w := postJSON(t, r, "/lawyers", `{
			"name":"Jane Smith","bar_number":"ca123456",
			"practice_areas":"Corporate Law","jurisdiction":"California"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("create -> %d body=%s", w.Code, w.Body.String())
		}
		var l domain.Lawyer
		if err := json.Unmarshal(w.Body.Bytes(), &l); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if l.ID == 0 || l.BarNumber != "CA123456" {
			t.Fatalf("unexpected lawyer: %+v", l)
		}
	}

	// Same bar number again -> 409 conflict
	{
		w := postJSON(t, r, "/lawyers", `{
			"name":"Jane Smith 2","bar_number":"CA123456",
			"practice_areas":"Corporate Law","jurisdiction":"California"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("duplicate -> %d body=%s", w.Code, w.Body.String())
		}
		var er ErrorResponse
		_ = json.Unmarshal(w.Body.Bytes(), &er)
		if er.Code != ErrCodeConflict || er.Message != "lawyer already registered" {
			t.Fatalf("unexpected 409 body: %s", w.Body.String())
		}
	}
}

func TestGetLawyer_PathsAndNotFound(t *testing.T) {
	r := newLawyerRouter(t, nil, nil)

	w := postJSON(t, r, "/lawyers", `{
		"name":"Ada Pierce","bar_number":"NY654321",
		"practice_areas":"Litigation","jurisdiction":"New York"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("seed -> %d body=%s", w.Code, w.Body.String())
	}
	var created domain.Lawyer
	_ = json.Unmarshal(w.Body.Bytes(), &created)

	// Non-numeric id -> 400
	if w := getJSON(t, r, "/lawyers/abc"); w.Code != http.StatusBadRequest {
		t.Fatalf("bad id -> %d", w.Code)
	}

	// Unknown id -> 404
	if w := getJSON(t, r, "/lawyers/9999"); w.Code != http.StatusNotFound {
		t.Fatalf("missing -> %d", w.Code)
	}

	// Known id -> 200
	w = getJSON(t, r, "/lawyers/"+strconv.FormatInt(created.ID, 10))
	if w.Code != http.StatusOK {
		t.Fatalf("get -> %d body=%s", w.Code, w.Body.String())
	}
	var got domain.Lawyer
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got.ID != created.ID || got.Name != "Ada Pierce" {
		t.Fatalf("unexpected lawyer: %+v", got)
	}
}

func TestListLawyers_FiltersPaginationAndBarLookup(t *testing.T) {
	r := newLawyerRouter(t, nil, nil)

	seed := []string{
		`{"name":"A One","bar_number":"CA000001","practice_areas":"Corporate Law","jurisdiction":"California"}`,
		`{"name":"B Two","bar_number":"CA000002","practice_areas":"Corporate Law","jurisdiction":"California"}`,
		`{"name":"C Three","bar_number":"NY000003","practice_areas":"Litigation","jurisdiction":"New York"}`,
	}
	for _, body := range seed {
		if w := postJSON(t, r, "/lawyers", body); w.Code != http.StatusCreated {
			t.Fatalf("seed -> %d body=%s", w.Code, w.Body.String())
		}
	}

	// Page 1 of 2 -> has_next
	{
		w := getJSON(t, r, "/lawyers?page=1&page_size=2")
		if w.Code != http.StatusOK {
			t.Fatalf("list -> %d body=%s", w.Code, w.Body.String())
		}
		var resp ListLawyersResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(resp.Lawyers) != 2 || resp.Pagination.Total != 3 ||
			resp.Pagination.TotalPages != 2 || !resp.Pagination.HasNext {
			t.Fatalf("unexpected page: %+v", resp.Pagination)
		}
	}

	// Jurisdiction filter
	{
		w := getJSON(t, r, "/lawyers?jurisdiction=New+York")
		var resp ListLawyersResponse
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if len(resp.Lawyers) != 1 || resp.Lawyers[0].BarNumber != "NY000003" {
			t.Fatalf("filter: %s", w.Body.String())
		}
	}

	// Exact bar lookup -> single-item page, case-insensitive
	{
		w := getJSON(t, r, "/lawyers?bar_number=ca000001")
		if w.Code != http.StatusOK {
			t.Fatalf("bar lookup -> %d body=%s", w.Code, w.Body.String())
		}
		var resp ListLawyersResponse
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if len(resp.Lawyers) != 1 || resp.Lawyers[0].Name != "A One" {
			t.Fatalf("bar lookup body: %s", w.Body.String())
		}
		if resp.Pagination.Page != 1 || resp.Pagination.Total != 1 || resp.Pagination.HasNext {
			t.Fatalf("bar lookup pagination: %+v", resp.Pagination)
		}
	}

	// Unregistered bar number -> 404
	if w := getJSON(t, r, "/lawyers?bar_number=ZZ999999"); w.Code != http.StatusNotFound {
		t.Fatalf("unknown bar -> %d", w.Code)
	}
}

func TestLawyerSummaryAndCases(t *testing.T) {
	intel := stubIntelSvc{
		summary: func(_ context.Context, id int64) (*services.LawyerSummary, error) {
			if id == 404 {
				return nil, services.ErrLawyerNotFound
			}
			return &services.LawyerSummary{LawyerID: id, Name: "Stub", TotalCases: 4, WonCases: 2}, nil
		},
	}
	cases := stubCaseSvc{
		listForLwyr: func(_ context.Context, id int64, page, pageSize int) ([]domain.LegalCase, int64, error) {
			return []domain.LegalCase{{ID: 1, LawyerID: id, CaseNumber: "CV-2025-000001"}}, 1, nil
		},
	}
	r := newLawyerRouter(t, intel, cases)

	// Summary happy path
	{
		w := getJSON(t, r, "/lawyers/5/summary")
		if w.Code != http.StatusOK {
			t.Fatalf("summary -> %d body=%s", w.Code, w.Body.String())
		}
		var sum services.LawyerSummary
		_ = json.Unmarshal(w.Body.Bytes(), &sum)
		if sum.LawyerID != 5 || sum.TotalCases != 4 {
			t.Fatalf("unexpected summary: %+v", sum)
		}
	}

	// Summary for missing lawyer -> 404
	if w := getJSON(t, r, "/lawyers/404/summary"); w.Code != http.StatusNotFound {
		t.Fatalf("summary missing -> %d", w.Code)
	}

	// Cases listing passes through pagination metadata
	{
		w := getJSON(t, r, "/lawyers/5/cases")
		if w.Code != http.StatusOK {
			t.Fatalf("cases -> %d body=%s", w.Code, w.Body.String())
		}
		var resp ListCasesResponse
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if len(resp.Cases) != 1 || resp.Cases[0].CaseNumber != "CV-2025-000001" {
			t.Fatalf("cases body: %s", w.Body.String())
		}
	}
}

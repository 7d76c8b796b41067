package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lexcraft/go-legal-backend/internal/domain"
	"github.com/lexcraft/go-legal-backend/internal/repo"
	"github.com/lexcraft/go-legal-backend/internal/services"
)

// ---------- test DB + repo shim ----------

func newHandlersDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique DSN per call to avoid cross-test contamination
	dsn := fmt.Sprintf("file:handlers_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Enforce FKs and migrate schemas
	db.Exec("PRAGMA foreign_keys=ON;")
	if err := db.AutoMigrate(
		&domain.Lawyer{}, &domain.LegalCase{}, &domain.LegalDocument{},
		&domain.Statute{}, &domain.Precedent{},
		&domain.ResearchSession{}, &domain.AnalysisResult{},
		&domain.ApprovalRequest{}, &domain.FeedbackRecord{},
		&domain.Idempotency{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Minimal shim implementing services.LawyerRepo using repo package (like router.go)
type testLawyerRepo struct{}

func (testLawyerRepo) CreateLawyer(ctx context.Context, db *gorm.DB, l *domain.Lawyer) error {
	return repo.CreateLawyer(ctx, db, l)
}

func (testLawyerRepo) GetLawyer(ctx context.Context, db *gorm.DB, id int64) (*domain.Lawyer, error) {
	return repo.GetLawyer(ctx, db, id)
}

func (testLawyerRepo) GetLawyerByBarNumber(ctx context.Context, db *gorm.DB, barNumber string) (*domain.Lawyer, error) {
	return repo.GetLawyerByBarNumber(ctx, db, barNumber)
}

func (testLawyerRepo) CountLawyers(ctx context.Context, db *gorm.DB, practiceArea, jurisdiction string) (int64, error) {
	return repo.CountLawyers(ctx, db, practiceArea, jurisdiction)
}

func (testLawyerRepo) ListLawyersPage(ctx context.Context, db *gorm.DB, practiceArea, jurisdiction string, offset, limit int) ([]domain.Lawyer, error) {
	return repo.ListLawyersPage(ctx, db, practiceArea, jurisdiction, offset, limit)
}

// ---------- flexible service stubs shared across handler tests ----------

type stubLawyerSvc struct {
	register func(context.Context, *domain.Lawyer) (*domain.Lawyer, error)
	get      func(context.Context, int64) (*domain.Lawyer, error)
	getByBar func(context.Context, string) (*domain.Lawyer, error)
	listPage func(context.Context, string, string, int, int) ([]domain.Lawyer, int64, error)
}

func (s stubLawyerSvc) Register(ctx context.Context, l *domain.Lawyer) (*domain.Lawyer, error) {
	if s.register != nil {
		return s.register(ctx, l)
	}
	l.ID = 1
	return l, nil
}

func (s stubLawyerSvc) Get(ctx context.Context, id int64) (*domain.Lawyer, error) {
	if s.get != nil {
		return s.get(ctx, id)
	}
	return &domain.Lawyer{ID: id}, nil
}

func (s stubLawyerSvc) GetByBarNumber(ctx context.Context, bar string) (*domain.Lawyer, error) {
	if s.getByBar != nil {
		return s.getByBar(ctx, bar)
	}
	return &domain.Lawyer{ID: 1, BarNumber: bar}, nil
}

func (s stubLawyerSvc) ListPage(ctx context.Context, pa, j string, p, ps int) ([]domain.Lawyer, int64, error) {
	if s.listPage != nil {
		return s.listPage(ctx, pa, j, p, ps)
	}
	return nil, 0, nil
}

type stubCaseSvc struct {
	create       func(context.Context, *domain.LegalCase) (*domain.LegalCase, error)
	get          func(context.Context, int64) (*domain.LegalCase, error)
	getByNumber  func(context.Context, string) (*domain.LegalCase, error)
	listForLwyr  func(context.Context, int64, int, int) ([]domain.LegalCase, int64, error)
	updateStatus func(context.Context, int64, string, *string) (*domain.LegalCase, error)
	attachDoc    func(context.Context, int64, *domain.LegalDocument) (*domain.LegalDocument, error)
	listDocs     func(context.Context, int64) ([]domain.LegalDocument, error)
}

func (s stubCaseSvc) Create(ctx context.Context, lc *domain.LegalCase) (*domain.LegalCase, error) {
	if s.create != nil {
		return s.create(ctx, lc)
	}
	lc.ID = 1
	return lc, nil
}

func (s stubCaseSvc) Get(ctx context.Context, id int64) (*domain.LegalCase, error) {
	if s.get != nil {
		return s.get(ctx, id)
	}
	return &domain.LegalCase{ID: id}, nil
}

func (s stubCaseSvc) GetByNumber(ctx context.Context, n string) (*domain.LegalCase, error) {
	if s.getByNumber != nil {
		return s.getByNumber(ctx, n)
	}
	return &domain.LegalCase{ID: 1, CaseNumber: n}, nil
}

func (s stubCaseSvc) ListForLawyer(ctx context.Context, id int64, p, ps int) ([]domain.LegalCase, int64, error) {
	if s.listForLwyr != nil {
		return s.listForLwyr(ctx, id, p, ps)
	}
	return nil, 0, nil
}

func (s stubCaseSvc) UpdateStatus(ctx context.Context, id int64, st string, out *string) (*domain.LegalCase, error) {
	if s.updateStatus != nil {
		return s.updateStatus(ctx, id, st, out)
	}
	return &domain.LegalCase{ID: id, Status: st}, nil
}

func (s stubCaseSvc) AttachDocument(ctx context.Context, id int64, d *domain.LegalDocument) (*domain.LegalDocument, error) {
	if s.attachDoc != nil {
		return s.attachDoc(ctx, id, d)
	}
	d.ID = 1
	return d, nil
}

func (s stubCaseSvc) ListDocuments(ctx context.Context, id int64) ([]domain.LegalDocument, error) {
	if s.listDocs != nil {
		return s.listDocs(ctx, id)
	}
	return nil, nil
}

type stubIntelSvc struct {
	research      func(context.Context, int64, services.ResearchParams) (string, error)
	contract      func(context.Context, int64, services.ContractParams) (string, error)
	compliance    func(context.Context, int64, services.ComplianceParams) (string, error)
	draft         func(context.Context, int64, services.DraftParams) (string, error)
	strategy      func(context.Context, int64, int64, services.StrategyParams) (string, error)
	comprehensive func(context.Context, int64, int64) (*services.CaseAnalysisBundle, error)
	summary       func(context.Context, int64) (*services.LawyerSummary, error)
}

func (s stubIntelSvc) ResearchCaseLaw(ctx context.Context, id int64, p services.ResearchParams) (string, error) {
	if s.research != nil {
		return s.research(ctx, id, p)
	}
	return "research result", nil
}

func (s stubIntelSvc) AnalyzeContract(ctx context.Context, id int64, p services.ContractParams) (string, error) {
	if s.contract != nil {
		return s.contract(ctx, id, p)
	}
	return "contract analysis", nil
}

func (s stubIntelSvc) AssessCompliance(ctx context.Context, id int64, p services.ComplianceParams) (string, error) {
	if s.compliance != nil {
		return s.compliance(ctx, id, p)
	}
	return "compliance assessment", nil
}

func (s stubIntelSvc) DraftDocument(ctx context.Context, id int64, p services.DraftParams) (string, error) {
	if s.draft != nil {
		return s.draft(ctx, id, p)
	}
	return "drafted document", nil
}

func (s stubIntelSvc) DevelopLitigationStrategy(ctx context.Context, lawyerID, caseID int64, p services.StrategyParams) (string, error) {
	if s.strategy != nil {
		return s.strategy(ctx, lawyerID, caseID, p)
	}
	return "strategy", nil
}

func (s stubIntelSvc) ComprehensiveCaseAnalysis(ctx context.Context, lawyerID, caseID int64) (*services.CaseAnalysisBundle, error) {
	if s.comprehensive != nil {
		return s.comprehensive(ctx, lawyerID, caseID)
	}
	return &services.CaseAnalysisBundle{}, nil
}

func (s stubIntelSvc) GetLawyerSummary(ctx context.Context, id int64) (*services.LawyerSummary, error) {
	if s.summary != nil {
		return s.summary(ctx, id)
	}
	return &services.LawyerSummary{LawyerID: id}, nil
}

type stubApprovalSvc struct {
	request func(context.Context, string, string, domain.JSONMap, int64) (string, error)
	approve func(context.Context, string, int64, string, string) (*domain.ApprovalRequest, error)
	reject  func(context.Context, string, int64, string) (*domain.ApprovalRequest, error)
	pending func(context.Context, *int64) ([]domain.ApprovalRequest, error)
	status  func(context.Context, string) (domain.ApprovalStatus, error)
	history func(context.Context, int64, int, int) ([]domain.ApprovalRequest, int64, error)
}

func (s stubApprovalSvc) RequestApproval(ctx context.Context, at, content string, md domain.JSONMap, rid int64) (string, error) {
	if s.request != nil {
		return s.request(ctx, at, content, md, rid)
	}
	return "approval-1", nil
}

func (s stubApprovalSvc) Approve(ctx context.Context, id string, aid int64, comments, mods string) (*domain.ApprovalRequest, error) {
	if s.approve != nil {
		return s.approve(ctx, id, aid, comments, mods)
	}
	return &domain.ApprovalRequest{ID: id, Status: domain.ApprovalApproved}, nil
}

func (s stubApprovalSvc) Reject(ctx context.Context, id string, aid int64, reason string) (*domain.ApprovalRequest, error) {
	if s.reject != nil {
		return s.reject(ctx, id, aid, reason)
	}
	return &domain.ApprovalRequest{ID: id, Status: domain.ApprovalRejected}, nil
}

func (s stubApprovalSvc) GetPendingApprovals(ctx context.Context, rid *int64) ([]domain.ApprovalRequest, error) {
	if s.pending != nil {
		return s.pending(ctx, rid)
	}
	return nil, nil
}

func (s stubApprovalSvc) GetApprovalStatus(ctx context.Context, id string) (domain.ApprovalStatus, error) {
	if s.status != nil {
		return s.status(ctx, id)
	}
	return domain.ApprovalPending, nil
}

func (s stubApprovalSvc) GetApprovalHistory(ctx context.Context, rid int64, p, ps int) ([]domain.ApprovalRequest, int64, error) {
	if s.history != nil {
		return s.history(ctx, rid, p, ps)
	}
	return nil, 0, nil
}

type stubFeedbackSvc struct {
	submit      func(context.Context, string, string, int64, int, string, []string) (string, error)
	get         func(context.Context, string) (*domain.FeedbackRecord, error)
	byContent   func(context.Context, string) ([]domain.FeedbackRecord, error)
	byUser      func(context.Context, int64) ([]domain.FeedbackRecord, error)
	byType      func(context.Context, string) ([]domain.FeedbackRecord, error)
	lowRated    func(context.Context, int) ([]domain.FeedbackRecord, error)
	summary     func(context.Context, string) (*services.FeedbackSummary, error)
	mark        func(context.Context, string, string) (bool, error)
	improvement func(context.Context) (map[string][]string, error)
}

func (s stubFeedbackSvc) SubmitFeedback(ctx context.Context, cid, ct string, uid int64, rating int, comments string, issues []string) (string, error) {
	if s.submit != nil {
		return s.submit(ctx, cid, ct, uid, rating, comments, issues)
	}
	return "feedback-1", nil
}

func (s stubFeedbackSvc) GetFeedback(ctx context.Context, id string) (*domain.FeedbackRecord, error) {
	if s.get != nil {
		return s.get(ctx, id)
	}
	return &domain.FeedbackRecord{ID: id}, nil
}

func (s stubFeedbackSvc) GetContentFeedback(ctx context.Context, cid string) ([]domain.FeedbackRecord, error) {
	if s.byContent != nil {
		return s.byContent(ctx, cid)
	}
	return nil, nil
}

func (s stubFeedbackSvc) GetUserFeedback(ctx context.Context, uid int64) ([]domain.FeedbackRecord, error) {
	if s.byUser != nil {
		return s.byUser(ctx, uid)
	}
	return nil, nil
}

func (s stubFeedbackSvc) GetFeedbackByType(ctx context.Context, ct string) ([]domain.FeedbackRecord, error) {
	if s.byType != nil {
		return s.byType(ctx, ct)
	}
	return nil, nil
}

func (s stubFeedbackSvc) GetLowRatedContent(ctx context.Context, th int) ([]domain.FeedbackRecord, error) {
	if s.lowRated != nil {
		return s.lowRated(ctx, th)
	}
	return nil, nil
}

func (s stubFeedbackSvc) GetFeedbackSummary(ctx context.Context, ct string) (*services.FeedbackSummary, error) {
	if s.summary != nil {
		return s.summary(ctx, ct)
	}
	return &services.FeedbackSummary{}, nil
}

func (s stubFeedbackSvc) MarkAddressed(ctx context.Context, id, fu string) (bool, error) {
	if s.mark != nil {
		return s.mark(ctx, id, fu)
	}
	return true, nil
}

func (s stubFeedbackSvc) IdentifyImprovementAreas(ctx context.Context) (map[string][]string, error) {
	if s.improvement != nil {
		return s.improvement(ctx)
	}
	return map[string][]string{}, nil
}

type stubLibrarySvc struct {
	precedents func(context.Context, string, string, int) ([]PrecedentHit, error)
	statutes   func(context.Context, string, string, string, int) ([]domain.Statute, error)
	stats      func(context.Context) (map[string]int64, error)
}

func (s stubLibrarySvc) SearchPrecedents(ctx context.Context, q, j string, limit int) ([]PrecedentHit, error) {
	if s.precedents != nil {
		return s.precedents(ctx, q, j, limit)
	}
	return nil, nil
}

func (s stubLibrarySvc) SearchStatutes(ctx context.Context, q, j, cat string, limit int) ([]domain.Statute, error) {
	if s.statutes != nil {
		return s.statutes(ctx, q, j, cat, limit)
	}
	return nil, nil
}

func (s stubLibrarySvc) DatabaseStats(ctx context.Context) (map[string]int64, error) {
	if s.stats != nil {
		return s.stats(ctx)
	}
	return map[string]int64{}, nil
}

// ---------- helpers-only tests ----------

func Test_userID_and_clampPagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// userID helper
	rc := gin.CreateTestContextOnly(httptest.NewRecorder(), gin.New())
	if got := userID(rc); got != "demo-user" {
		t.Fatalf("fallback userID = %q", got)
	}
	rc.Set("userID", "u1")
	if got := userID(rc); got != "u1" {
		t.Fatalf("ctx userID = %q", got)
	}
	rc.Set("userID", 123) // wrong type → fallback
	if got := userID(rc); got != "demo-user" {
		t.Fatalf("wrong-type fallback userID = %q", got)
	}

	// header fallback
	cH, _ := gin.CreateTestContext(httptest.NewRecorder())
	reqH := httptest.NewRequest("GET", "/", nil)
	reqH.Header.Set("X-User-ID", "u-123")
	cH.Request = reqH
	if got := userID(cH); got != "u-123" {
		t.Fatalf("header fallback userID = %q", got)
	}

	// clampPagination bounds
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest("GET", "/?page=-5&page_size=9999", nil)
	c.Request = req
	p, ps := clampPagination(c)
	if p != 1 || ps != 100 {
		t.Fatalf("clamp bounds got p=%d ps=%d", p, ps)
	}
	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	req = httptest.NewRequest("GET", "/?page=&page_size=0", nil)
	c.Request = req
	p, ps = clampPagination(c)
	if p != 1 || ps != 1 {
		t.Fatalf("clamp defaults got p=%d ps=%d", p, ps)
	}
}

func Test_pageOf(t *testing.T) {
	// empty result set
	pg := pageOf(1, 20, 0)
	if pg.TotalPages != 0 || pg.HasNext {
		t.Fatalf("empty pageOf: %#v", pg)
	}

	// 41 rows over pages of 20 → 3 pages
	pg = pageOf(1, 20, 41)
	if pg.TotalPages != 3 || !pg.HasNext {
		t.Fatalf("page 1 of 41: %#v", pg)
	}
	pg = pageOf(3, 20, 41)
	if pg.TotalPages != 3 || pg.HasNext {
		t.Fatalf("page 3 of 41: %#v", pg)
	}
}

func Test_pathID_and_queryID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/lawyers/:id", func(c *gin.Context) {
		id, okID := pathID(c, "id")
		if !okID {
			return
		}
		ok(c, http.StatusOK, gin.H{"id": id})
	})
	r.GET("/approvals/pending", func(c *gin.Context) {
		id, okQ := queryID(c, "requester_id")
		if !okQ {
			return
		}
		if id == nil {
			ok(c, http.StatusOK, gin.H{"filtered": false})
			return
		}
		ok(c, http.StatusOK, gin.H{"filtered": true, "id": *id})
	})

	cases := []struct {
		name string
		path string
		want int
	}{
		{"path id ok", "/lawyers/7", http.StatusOK},
		{"path id non-numeric", "/lawyers/abc", http.StatusBadRequest},
		{"path id zero", "/lawyers/0", http.StatusBadRequest},
		{"path id negative", "/lawyers/-3", http.StatusBadRequest},
		{"query id absent", "/approvals/pending", http.StatusOK},
		{"query id ok", "/approvals/pending?requester_id=42", http.StatusOK},
		{"query id malformed", "/approvals/pending?requester_id=x", http.StatusBadRequest},
		{"query id zero", "/approvals/pending?requester_id=0", http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("%s -> %d want %d body=%s", tc.path, w.Code, tc.want, w.Body.String())
			}
		})
	}
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lexcraft/go-legal-backend/internal/domain"
	"github.com/lexcraft/go-legal-backend/internal/search"
)

func newOrchestratorDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:orchestrator_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	err = db.AutoMigrate(
		&domain.Lawyer{},
		&domain.LegalCase{},
		&domain.LegalDocument{},
		&domain.ResearchSession{},
		&domain.AnalysisResult{},
	)
	if err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

// scriptedGen records every prompt it receives and can be told to fail on
// the nth Generate call.
type scriptedGen struct {
	calls   int
	prompts []string
	failAt  int
}

func (g *scriptedGen) Generate(_ context.Context, prompt string) (string, error) {
	g.calls++
	g.prompts = append(g.prompts, prompt)
	if g.failAt != 0 && g.calls == g.failAt {
		return "", errors.New("model unavailable")
	}
	return fmt.Sprintf("analysis %d", g.calls), nil
}

// spyIndex serves canned precedent results and records the queries it saw.
type spyIndex struct {
	queries []string
	results []search.Result
}

func (s *spyIndex) TopK(query string, k int) []search.Result {
	s.queries = append(s.queries, query)
	if k < len(s.results) {
		return s.results[:k]
	}
	return s.results
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}

func TestResearchCaseLaw_UnknownLawyer(t *testing.T) {
	db := newOrchestratorDB(t)
	gen := &scriptedGen{}
	orch := NewOrchestrator(db, gen)

	_, err := orch.ResearchCaseLaw(context.Background(), 999, ResearchParams{LegalIssue: "anything"})
	if !errors.Is(err, ErrLawyerNotFound) {
		t.Fatalf("expected ErrLawyerNotFound, got %v", err)
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times for an unknown lawyer", gen.calls)
	}
	if n := countRows(t, db, &domain.ResearchSession{}); n != 0 {
		t.Errorf("%d session rows written", n)
	}
}

func TestResearchCaseLaw_ProfileBackfillAndAudit(t *testing.T) {
	db := newOrchestratorDB(t)
	l := &domain.Lawyer{Name: "Jane Doe", BarNumber: "CA123456", PracticeAreas: "Intellectual Property", Jurisdiction: "California"}
	if err := db.Create(l).Error; err != nil {
		t.Fatalf("seed lawyer: %v", err)
	}
	gen := &scriptedGen{}
	orch := NewOrchestrator(db, gen)

	got, err := orch.ResearchCaseLaw(context.Background(), l.ID, ResearchParams{
		LegalIssue: "trade secret misappropriation",
	})
	if err != nil {
		t.Fatalf("ResearchCaseLaw: %v", err)
	}
	if got != "analysis 1" {
		t.Errorf("result = %q", got)
	}
	prompt := gen.prompts[0]
	if !strings.Contains(prompt, "**Jurisdiction**: California") {
		t.Errorf("profile jurisdiction missing from prompt")
	}
	if !strings.Contains(prompt, "**Practice Area**: Intellectual Property") {
		t.Errorf("profile practice area missing from prompt")
	}

	var session domain.ResearchSession
	if err := db.First(&session).Error; err != nil {
		t.Fatalf("session row: %v", err)
	}
	if session.SessionName != "Case Law Research - trade secret misappropriation" {
		t.Errorf("session name = %q", session.SessionName)
	}
	if session.LawyerID != l.ID || session.CaseID != nil {
		t.Errorf("session linkage = lawyer %d case %v", session.LawyerID, session.CaseID)
	}
	if session.ResearchQuery != "trade secret misappropriation" ||
		session.Jurisdiction != "California" || session.PracticeArea != "Intellectual Property" {
		t.Errorf("session fields = %+v", session)
	}
	if session.Findings != "analysis 1" {
		t.Errorf("findings = %q", session.Findings)
	}
}

func TestResearchCaseLaw_CaseSummaryReplacesFacts(t *testing.T) {
	db := newOrchestratorDB(t)
	l := seedLawyer(t, db, "Jane Doe")
	c := &domain.LegalCase{
		CaseNumber: "CV-2024-000001", Title: "Smith v. Jones", CaseType: "civil",
		Jurisdiction: "California", LawyerID: l.ID, Status: "active",
		CaseSummary: "Client alleges theft of customer lists by a departing employee.",
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed case: %v", err)
	}
	gen := &scriptedGen{}
	orch := NewOrchestrator(db, gen)

	_, err := orch.ResearchCaseLaw(context.Background(), l.ID, ResearchParams{
		LegalIssue:   "trade secrets",
		CurrentFacts: "from the caller",
		CaseID:       &c.ID,
	})
	if err != nil {
		t.Fatalf("ResearchCaseLaw: %v", err)
	}
	if !strings.Contains(gen.prompts[0], c.CaseSummary) {
		t.Errorf("case summary missing from prompt")
	}
	if strings.Contains(gen.prompts[0], "from the caller") {
		t.Errorf("caller facts should be replaced by the case summary")
	}
	var session domain.ResearchSession
	if err := db.First(&session).Error; err != nil {
		t.Fatalf("session row: %v", err)
	}
	if session.CaseID == nil || *session.CaseID != c.ID {
		t.Errorf("session case = %v, want %d", session.CaseID, c.ID)
	}

	// A dangling case reference is ignored and the caller facts survive.
	missing := int64(999)
	_, err = orch.ResearchCaseLaw(context.Background(), l.ID, ResearchParams{
		LegalIssue:   "trade secrets",
		CurrentFacts: "from the caller",
		CaseID:       &missing,
	})
	if err != nil {
		t.Fatalf("ResearchCaseLaw with dangling case: %v", err)
	}
	if !strings.Contains(gen.prompts[1], "from the caller") {
		t.Errorf("caller facts missing from prompt when the case does not exist")
	}
}

func TestResearchCaseLaw_PrecedentIndexBackfill(t *testing.T) {
	db := newOrchestratorDB(t)
	l := seedLawyer(t, db, "Jane Doe")
	gen := &scriptedGen{}
	orch := NewOrchestrator(db, gen)
	idx := &spyIndex{results: []search.Result{
		{Precedent: domain.Precedent{ID: 1, CaseName: "Acme Corp v. Widget Co"}, Score: 0.8},
	}}
	orch.PrecedentIndex = idx

	_, err := orch.ResearchCaseLaw(context.Background(), l.ID, ResearchParams{LegalIssue: "trade secrets"})
	if err != nil {
		t.Fatalf("ResearchCaseLaw: %v", err)
	}
	if len(idx.queries) != 1 || idx.queries[0] != "trade secrets" {
		t.Fatalf("index queries = %v", idx.queries)
	}
	if !strings.Contains(gen.prompts[0], "Acme Corp v. Widget Co") {
		t.Errorf("indexed precedent missing from prompt")
	}

	// Caller-supplied precedents bypass the index.
	_, err = orch.ResearchCaseLaw(context.Background(), l.ID, ResearchParams{
		LegalIssue: "trade secrets",
		Precedents: []domain.Precedent{{ID: 2, CaseName: "Supplied v. Directly"}},
	})
	if err != nil {
		t.Fatalf("ResearchCaseLaw: %v", err)
	}
	if len(idx.queries) != 1 {
		t.Errorf("index consulted despite supplied precedents: %v", idx.queries)
	}
	if !strings.Contains(gen.prompts[1], "Supplied v. Directly") {
		t.Errorf("supplied precedent missing from prompt")
	}
}

func TestResearchCaseLaw_GenerationFailurePersistsNothing(t *testing.T) {
	db := newOrchestratorDB(t)
	l := seedLawyer(t, db, "Jane Doe")
	gen := &scriptedGen{failAt: 1}
	orch := NewOrchestrator(db, gen)

	_, err := orch.ResearchCaseLaw(context.Background(), l.ID, ResearchParams{LegalIssue: "trade secrets"})
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got %v", err)
	}
	if n := countRows(t, db, &domain.ResearchSession{}); n != 0 {
		t.Errorf("%d session rows written after failed generation", n)
	}
}

func TestAnalyzeContract_InlineParams(t *testing.T) {
	db := newOrchestratorDB(t)
	l := seedLawyer(t, db, "Jane Doe")
	gen := &scriptedGen{}
	orch := NewOrchestrator(db, gen)

	got, err := orch.AnalyzeContract(context.Background(), l.ID, ContractParams{
		ContractName: "Master Services Agreement",
		ContractType: "services",
		ContractText: "The vendor shall indemnify...",
	})
	if err != nil {
		t.Fatalf("AnalyzeContract: %v", err)
	}
	if got != "analysis 1" {
		t.Errorf("result = %q", got)
	}
	if !strings.Contains(gen.prompts[0], "Master Services Agreement") ||
		!strings.Contains(gen.prompts[0], "The vendor shall indemnify...") {
		t.Errorf("contract details missing from prompt")
	}

	var rec domain.AnalysisResult
	if err := db.First(&rec).Error; err != nil {
		t.Fatalf("analysis row: %v", err)
	}
	if rec.AnalysisType != "contract_analysis" || rec.EntityType != "contract" || rec.EntityID != 0 {
		t.Errorf("analysis record = %+v", rec)
	}
	if rec.LawyerID != l.ID || rec.DetailedAnalysis != "analysis 1" {
		t.Errorf("analysis record = %+v", rec)
	}
}

func TestAnalyzeContract_StoredDocument(t *testing.T) {
	db := newOrchestratorDB(t)
	l := seedLawyer(t, db, "Jane Doe")
	doc := &domain.LegalDocument{
		DocumentType: "contract", Title: "Supply Agreement", LawyerID: l.ID,
		DocumentContent: "Buyer agrees to purchase...",
	}
	if err := db.Create(doc).Error; err != nil {
		t.Fatalf("seed document: %v", err)
	}
	gen := &scriptedGen{}
	orch := NewOrchestrator(db, gen)

	_, err := orch.AnalyzeContract(context.Background(), l.ID, ContractParams{DocumentID: &doc.ID})
	if err != nil {
		t.Fatalf("AnalyzeContract: %v", err)
	}
	if !strings.Contains(gen.prompts[0], "Supply Agreement") ||
		!strings.Contains(gen.prompts[0], "Buyer agrees to purchase...") {
		t.Errorf("stored document fields missing from prompt")
	}
	var rec domain.AnalysisResult
	if err := db.First(&rec).Error; err != nil {
		t.Fatalf("analysis row: %v", err)
	}
	if rec.EntityID != doc.ID {
		t.Errorf("entity = %d, want document %d", rec.EntityID, doc.ID)
	}

	missing := int64(999)
	gen2 := &scriptedGen{}
	orch2 := NewOrchestrator(db, gen2)
	if _, err := orch2.AnalyzeContract(context.Background(), l.ID, ContractParams{DocumentID: &missing}); !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
	if gen2.calls != 0 {
		t.Errorf("generator called %d times for a missing document", gen2.calls)
	}
}

func TestAssessCompliance_ProfileAndDefaultBackfills(t *testing.T) {
	db := newOrchestratorDB(t)
	l := &domain.Lawyer{
		Name: "Jane Doe", BarNumber: "CA123456", PracticeAreas: "Privacy",
		Jurisdiction: "California", Firm: "Doe & Partners LLP",
	}
	if err := db.Create(l).Error; err != nil {
		t.Fatalf("seed lawyer: %v", err)
	}
	gen := &scriptedGen{}
	orch := NewOrchestrator(db, gen)
	orch.DefaultFrameworks = []string{"GDPR", "CCPA"}

	_, err := orch.AssessCompliance(context.Background(), l.ID, ComplianceParams{Industry: "Technology"})
	if err != nil {
		t.Fatalf("AssessCompliance: %v", err)
	}
	prompt := gen.prompts[0]
	if !strings.Contains(prompt, "**Name**: Doe & Partners LLP") {
		t.Errorf("firm backfill missing from prompt")
	}
	if !strings.Contains(prompt, "**Jurisdiction(s)**: California") {
		t.Errorf("jurisdiction backfill missing from prompt")
	}
	if !strings.Contains(prompt, "**Frameworks**: GDPR, CCPA") {
		t.Errorf("default frameworks missing from prompt")
	}

	var rec domain.AnalysisResult
	if err := db.First(&rec).Error; err != nil {
		t.Fatalf("analysis row: %v", err)
	}
	if rec.AnalysisType != "compliance_assessment" || rec.EntityType != "organization" || rec.EntityID != 0 {
		t.Errorf("analysis record = %+v", rec)
	}
}

func TestDraftDocument_UnsupportedType(t *testing.T) {
	db := newOrchestratorDB(t)
	seedLawyer(t, db, "Jane Doe")
	gen := &scriptedGen{}
	orch := NewOrchestrator(db, gen)

	_, err := orch.DraftDocument(context.Background(), 1, DraftParams{DocumentType: "affidavit"})
	if !errors.Is(err, ErrUnsupportedDocumentType) {
		t.Fatalf("expected ErrUnsupportedDocumentType, got %v", err)
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times for an unsupported type", gen.calls)
	}
}

func TestDraftDocument_StoresDraft(t *testing.T) {
	db := newOrchestratorDB(t)
	l := seedLawyer(t, db, "Jane Doe")
	gen := &scriptedGen{}
	orch := NewOrchestrator(db, gen)

	got, err := orch.DraftDocument(context.Background(), l.ID, DraftParams{
		DocumentType: "demand_letter",
		ClientName:   "Acme Corp",
		Demand:       "$50,000",
	})
	if err != nil {
		t.Fatalf("DraftDocument: %v", err)
	}
	if !strings.Contains(gen.prompts[0], "Acme Corp") || !strings.Contains(gen.prompts[0], "$50,000") {
		t.Errorf("demand details missing from prompt")
	}

	var doc domain.LegalDocument
	if err := db.First(&doc).Error; err != nil {
		t.Fatalf("document row: %v", err)
	}
	if doc.DocumentType != "demand_letter" || doc.Title != "Demand Letter Draft" {
		t.Errorf("stored draft = %q/%q", doc.DocumentType, doc.Title)
	}
	if doc.Status != "draft" || doc.DocumentContent != got || doc.LawyerID != l.ID {
		t.Errorf("stored draft = %+v", doc)
	}
	if doc.CaseID != nil {
		t.Errorf("draft linked to case %v, want none", doc.CaseID)
	}
}

func TestDraftDocument_TitleAndCaseLinks(t *testing.T) {
	db := newOrchestratorDB(t)
	l := seedLawyer(t, db, "Jane Doe")
	c := &domain.LegalCase{
		CaseNumber: "CV-2024-000002", Title: "Smith v. Jones", CaseType: "civil",
		Jurisdiction: "California", LawyerID: l.ID, Status: "active",
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed case: %v", err)
	}
	gen := &scriptedGen{}
	orch := NewOrchestrator(db, gen)

	missing := int64(999)
	if _, err := orch.DraftDocument(context.Background(), l.ID, DraftParams{
		DocumentType: "memo",
		CaseID:       &missing,
	}); !errors.Is(err, ErrCaseNotFound) {
		t.Fatalf("expected ErrCaseNotFound, got %v", err)
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times for a missing case", gen.calls)
	}

	_, err := orch.DraftDocument(context.Background(), l.ID, DraftParams{
		DocumentType: "memo",
		Title:        "Liability Exposure Memo",
		CaseID:       &c.ID,
		Subject:      "Successor liability",
	})
	if err != nil {
		t.Fatalf("DraftDocument: %v", err)
	}
	var doc domain.LegalDocument
	if err := db.First(&doc).Error; err != nil {
		t.Fatalf("document row: %v", err)
	}
	if doc.Title != "Liability Exposure Memo" {
		t.Errorf("title = %q, want the caller's title", doc.Title)
	}
	if doc.CaseID == nil || *doc.CaseID != c.ID {
		t.Errorf("draft case = %v, want %d", doc.CaseID, c.ID)
	}
}

func TestDevelopLitigationStrategy(t *testing.T) {
	db := newOrchestratorDB(t)
	gen := &scriptedGen{}
	orch := NewOrchestrator(db, gen)

	// The case is resolved before the lawyer.
	if _, err := orch.DevelopLitigationStrategy(context.Background(), 999, 999, StrategyParams{}); !errors.Is(err, ErrCaseNotFound) {
		t.Fatalf("expected ErrCaseNotFound, got %v", err)
	}

	l := seedLawyer(t, db, "Jane Doe")
	c := &domain.LegalCase{
		CaseNumber: "CV-2024-000003", Title: "Smith v. Jones", CaseType: "employment",
		Jurisdiction: "California", LawyerID: l.ID, Status: "active",
		ClientName: "Pat Smith", KeyIssues: "wrongful termination",
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed case: %v", err)
	}
	if _, err := orch.DevelopLitigationStrategy(context.Background(), 999, c.ID, StrategyParams{}); !errors.Is(err, ErrLawyerNotFound) {
		t.Fatalf("expected ErrLawyerNotFound, got %v", err)
	}
	if gen.calls != 0 {
		t.Fatalf("generator called %d times before entities resolved", gen.calls)
	}

	_, err := orch.DevelopLitigationStrategy(context.Background(), l.ID, c.ID, StrategyParams{})
	if err != nil {
		t.Fatalf("DevelopLitigationStrategy: %v", err)
	}
	prompt := gen.prompts[0]
	if !strings.Contains(prompt, "**Case Name**: Smith v. Jones") {
		t.Errorf("case name missing from prompt")
	}
	if !strings.Contains(prompt, "**Our Position**: plaintiff") {
		t.Errorf("default client position missing from prompt")
	}
	if !strings.Contains(prompt, "**Our Client**: Pat Smith") {
		t.Errorf("client name fallback missing from prompt")
	}

	var rec domain.AnalysisResult
	if err := db.First(&rec).Error; err != nil {
		t.Fatalf("analysis row: %v", err)
	}
	if rec.AnalysisType != "litigation_strategy" || rec.EntityType != "case" || rec.EntityID != c.ID {
		t.Errorf("analysis record = %+v", rec)
	}
}

func TestComprehensiveCaseAnalysis_Bundle(t *testing.T) {
	db := newOrchestratorDB(t)
	l := seedLawyer(t, db, "Jane Doe")
	c := &domain.LegalCase{
		CaseNumber: "CV-2024-000004", Title: "Smith v. Jones", CaseType: "civil",
		Jurisdiction: "California", LawyerID: l.ID, Status: "active",
		KeyIssues: "breach of contract", PracticeArea: "Commercial",
		CaseSummary: "Supplier failed to deliver.",
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed case: %v", err)
	}
	contract := &domain.LegalDocument{
		DocumentType: "contract", Title: "Supply Agreement", CaseID: &c.ID,
		LawyerID: l.ID, DocumentContent: "Delivery terms...",
	}
	motion := &domain.LegalDocument{
		DocumentType: "motion", Title: "Motion to Compel", CaseID: &c.ID, LawyerID: l.ID,
	}
	if err := db.Create(contract).Error; err != nil {
		t.Fatalf("seed contract: %v", err)
	}
	if err := db.Create(motion).Error; err != nil {
		t.Fatalf("seed motion: %v", err)
	}

	gen := &scriptedGen{}
	orch := NewOrchestrator(db, gen)

	bundle, err := orch.ComprehensiveCaseAnalysis(context.Background(), l.ID, c.ID)
	if err != nil {
		t.Fatalf("ComprehensiveCaseAnalysis: %v", err)
	}
	if bundle.Research == "" || bundle.Strategy == "" {
		t.Errorf("bundle = %+v", bundle)
	}
	// Research, strategy, and one reviewable contract document.
	if gen.calls != 3 {
		t.Errorf("generator calls = %d, want 3", gen.calls)
	}
	if len(bundle.DocumentAnalyses) != 1 {
		t.Fatalf("document analyses = %+v, want the contract only", bundle.DocumentAnalyses)
	}
	if got := bundle.DocumentAnalyses[0]; got.DocumentID != contract.ID || got.Title != "Supply Agreement" {
		t.Errorf("document analysis = %+v", got)
	}

	if n := countRows(t, db, &domain.ResearchSession{}); n != 1 {
		t.Errorf("research sessions = %d, want 1", n)
	}
	if n := countRows(t, db, &domain.AnalysisResult{}); n != 2 {
		t.Errorf("analysis results = %d, want strategy + contract", n)
	}
}

func TestComprehensiveCaseAnalysis_StrategyFailureKeepsResearch(t *testing.T) {
	db := newOrchestratorDB(t)
	l := seedLawyer(t, db, "Jane Doe")
	c := &domain.LegalCase{
		CaseNumber: "CV-2024-000005", Title: "Smith v. Jones", CaseType: "civil",
		Jurisdiction: "California", LawyerID: l.ID, Status: "active",
		KeyIssues: "breach of contract",
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed case: %v", err)
	}

	gen := &scriptedGen{failAt: 2}
	orch := NewOrchestrator(db, gen)

	bundle, err := orch.ComprehensiveCaseAnalysis(context.Background(), l.ID, c.ID)
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got %v", err)
	}
	if bundle != nil {
		t.Errorf("bundle = %+v, want nil", bundle)
	}
	// The research step completed before the strategy failed, and its audit
	// record stays.
	if n := countRows(t, db, &domain.ResearchSession{}); n != 1 {
		t.Errorf("research sessions = %d, want 1", n)
	}
	if n := countRows(t, db, &domain.AnalysisResult{}); n != 0 {
		t.Errorf("analysis results = %d, want 0", n)
	}
}

func TestGetLawyerSummary(t *testing.T) {
	db := newOrchestratorDB(t)
	gen := &scriptedGen{}
	orch := NewOrchestrator(db, gen)

	if _, err := orch.GetLawyerSummary(context.Background(), 999); !errors.Is(err, ErrLawyerNotFound) {
		t.Fatalf("expected ErrLawyerNotFound, got %v", err)
	}

	l := &domain.Lawyer{
		Name: "Jane Doe", BarNumber: "CA123456", PracticeAreas: "Litigation",
		Jurisdiction: "California", Firm: "Doe & Partners LLP",
		YearsExperience: 12, Specializations: "Trade secrets",
	}
	if err := db.Create(l).Error; err != nil {
		t.Fatalf("seed lawyer: %v", err)
	}
	seed := []struct {
		status  string
		outcome string
	}{
		{"active", ""},
		{"active", ""},
		{"closed", "won"},
		{"closed", "favorable"},
		{"settled", "lost"},
		{"dismissed", ""},
	}
	for i, sc := range seed {
		c := &domain.LegalCase{
			CaseNumber: fmt.Sprintf("CV-2024-10%04d", i), Title: fmt.Sprintf("Case %d", i),
			CaseType: "civil", Jurisdiction: "California", LawyerID: l.ID,
			Status: sc.status, Outcome: sc.outcome,
		}
		if err := db.Create(c).Error; err != nil {
			t.Fatalf("seed case %d: %v", i, err)
		}
	}
	for i := 0; i < 2; i++ {
		s := &domain.ResearchSession{SessionName: fmt.Sprintf("Session %d", i), LawyerID: l.ID, ResearchQuery: "q"}
		if err := db.Create(s).Error; err != nil {
			t.Fatalf("seed session %d: %v", i, err)
		}
	}

	sum, err := orch.GetLawyerSummary(context.Background(), l.ID)
	if err != nil {
		t.Fatalf("GetLawyerSummary: %v", err)
	}
	if sum.Name != "Jane Doe" || sum.Firm != "Doe & Partners LLP" || sum.YearsExperience != 12 {
		t.Errorf("profile fields = %+v", sum)
	}
	if sum.TotalCases != 6 || sum.ActiveCases != 2 || sum.ClosedCases != 4 {
		t.Errorf("caseload = total %d active %d closed %d", sum.TotalCases, sum.ActiveCases, sum.ClosedCases)
	}
	if sum.WonCases != 2 || sum.WinRate != 50.0 {
		t.Errorf("outcomes = won %d rate %v, want 2 and 50", sum.WonCases, sum.WinRate)
	}
	if sum.ResearchSessions != 2 {
		t.Errorf("research sessions = %d, want 2", sum.ResearchSessions)
	}
	if len(sum.RecentCases) != 5 {
		t.Errorf("recent cases = %d, want capped at 5", len(sum.RecentCases))
	}
}

// Package services – Orchestrator
//
// This file implements the Orchestrator, which routes AI-assisted legal work
// to the right specialist agent on behalf of a requesting lawyer: case law
// research, contract analysis, compliance assessment, document drafting, and
// litigation strategy, plus the comprehensive case-analysis chain and
// per-lawyer practice summaries.
//
// Every generation operation follows the same discipline: resolve the
// requesting lawyer (and any referenced entities) before generating, make
// exactly one generation call, persist exactly one audit record afterward,
// and return the generated text. Audit persistence is best-effort: a storage
// failure after successful generation is logged and swallowed so the caller
// still receives the result. Generation failures wrap ErrGeneration and
// persist nothing.
//
// Observability: all public methods are OpenTelemetry-instrumented; spans
// include lawyer/case identifiers where applicable.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/lexcraft/go-legal-backend/internal/agents"
	"github.com/lexcraft/go-legal-backend/internal/domain"
	"github.com/lexcraft/go-legal-backend/internal/llm"
	"github.com/lexcraft/go-legal-backend/internal/repo"
	"github.com/lexcraft/go-legal-backend/internal/search"

	// OpenTelemetry
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// findingsPreviewRunes caps the findings excerpt stored on a research session.
	findingsPreviewRunes = 1000
	// summaryPreviewRunes caps the result summary stored on an analysis record.
	summaryPreviewRunes = 500
	// sessionNameRunes caps the legal-issue excerpt used in session names.
	sessionNameRunes = 50
	// recentCaseLimit is how many cases a lawyer summary lists.
	recentCaseLimit = 5
	// comprehensiveDocLimit is how many case documents comprehensive analysis
	// considers for contract review.
	comprehensiveDocLimit = 3
	// defaultPrecedentTopK is how many indexed precedents research attaches
	// when the caller supplies none.
	defaultPrecedentTopK = 5
)

// closedStatuses are the case statuses counted as closed in summaries.
var closedStatuses = map[string]bool{"closed": true, "settled": true, "dismissed": true}

// wonOutcomes are the closed-case outcomes counted as wins.
var wonOutcomes = map[string]bool{"won": true, "favorable": true, "settled": true}

// draftableTypes are the document types the drafting agent produces.
var draftableTypes = map[string]bool{"memo": true, "motion": true, "demand_letter": true, "contract_clause": true}

// Orchestrator coordinates the specialist agents, the precedent index, and
// the audit trail. One instance serves every request.
type Orchestrator struct {
	// DB is the GORM handle used for entity resolution and audit records.
	DB *gorm.DB

	Researcher        *agents.Researcher
	ContractAnalyst   *agents.ContractAnalyst
	ComplianceAdvisor *agents.ComplianceAdvisor
	Drafter           *agents.Drafter
	Strategist        *agents.LitigationStrategist

	// PrecedentIndex is the startup snapshot over the precedent library;
	// research pulls supporting precedents from it when the caller supplies
	// none. Optional: research proceeds without one.
	PrecedentIndex search.Index
	// PrecedentTopK caps how many indexed precedents research attaches.
	PrecedentTopK int

	// DefaultFrameworks backfills compliance assessments that name none.
	DefaultFrameworks []string
}

// NewOrchestrator constructs an Orchestrator whose five agents all share the
// given generation backend.
func NewOrchestrator(db *gorm.DB, gen llm.Generator) *Orchestrator {
	return &Orchestrator{
		DB:                db,
		Researcher:        agents.NewResearcher(gen),
		ContractAnalyst:   agents.NewContractAnalyst(gen),
		ComplianceAdvisor: agents.NewComplianceAdvisor(gen),
		Drafter:           agents.NewDrafter(gen),
		Strategist:        agents.NewLitigationStrategist(gen),
		PrecedentTopK:     defaultPrecedentTopK,
	}
}

// --- Research ---

// ResearchParams carries the inputs to ResearchCaseLaw. Zero values defer to
// the lawyer's profile (jurisdiction, practice areas) or to the referenced
// case (facts). Precedents may be supplied directly; when empty, the most
// relevant rows are pulled from the precedent index.
type ResearchParams struct {
	LegalIssue   string
	Jurisdiction string
	PracticeArea string
	CurrentFacts string
	Precedents   []domain.Precedent
	CaseID       *int64
}

// ResearchCaseLaw runs case-law research for a lawyer and records the session.
// The lawyer must exist; a referenced case that does not exist is ignored
// (research can proceed on the issue alone), but when it does exist its
// summary replaces the supplied facts.
func (s *Orchestrator) ResearchCaseLaw(ctx context.Context, lawyerID int64, p ResearchParams) (string, error) {
	tr := otel.Tracer("services/Orchestrator")
	ctx, span := tr.Start(ctx, "ResearchCaseLaw",
		trace.WithAttributes(attribute.Int64("lawyer.id", lawyerID)),
	)
	defer span.End()

	lawyer, err := s.lawyer(ctx, lawyerID)
	if err != nil {
		return "", err
	}

	jurisdiction := firstNonEmpty(p.Jurisdiction, lawyer.Jurisdiction, "Not specified")
	practiceArea := firstNonEmpty(p.PracticeArea, lawyer.PracticeAreas, "General")
	facts := p.CurrentFacts
	if p.CaseID != nil {
		if c, cerr := repo.GetCase(ctx, s.DB, *p.CaseID); cerr == nil {
			facts = c.CaseSummary
		}
	}

	precedents := p.Precedents
	if len(precedents) == 0 && s.PrecedentIndex != nil {
		for _, r := range s.PrecedentIndex.TopK(p.LegalIssue, s.PrecedentTopK) {
			precedents = append(precedents, r.Precedent)
		}
	}

	result, err := s.Researcher.Research(ctx, agents.ResearchRequest{
		LegalIssue:   p.LegalIssue,
		Jurisdiction: jurisdiction,
		PracticeArea: practiceArea,
		CurrentFacts: facts,
		Precedents:   precedents,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	session := &domain.ResearchSession{
		SessionName:   "Case Law Research - " + clip(firstNonEmpty(p.LegalIssue, "Unknown"), sessionNameRunes),
		LawyerID:      lawyer.ID,
		CaseID:        p.CaseID,
		ResearchQuery: p.LegalIssue,
		PracticeArea:  practiceArea,
		Jurisdiction:  jurisdiction,
		Findings:      clip(result, findingsPreviewRunes),
	}
	if perr := repo.CreateResearchSession(ctx, s.DB, session); perr != nil {
		logAuditFailure(perr, "research_session", lawyer.ID)
	}
	return result, nil
}

// --- Contract analysis ---

// ContractParams carries the inputs to AnalyzeContract. When DocumentID is
// set, the stored document supplies the name, text, and type.
type ContractParams struct {
	DocumentID   *int64
	ContractName string
	ContractType string
	ContractText string
	Parties      string
	PartyRole    string
	Jurisdiction string
	Industry     string
}

// AnalyzeContract reviews a contract for a lawyer and records the analysis.
// The lawyer must exist; when DocumentID is set, so must the document.
func (s *Orchestrator) AnalyzeContract(ctx context.Context, lawyerID int64, p ContractParams) (string, error) {
	tr := otel.Tracer("services/Orchestrator")
	ctx, span := tr.Start(ctx, "AnalyzeContract",
		trace.WithAttributes(attribute.Int64("lawyer.id", lawyerID)),
	)
	defer span.End()

	lawyer, err := s.lawyer(ctx, lawyerID)
	if err != nil {
		return "", err
	}

	var entityID int64
	if p.DocumentID != nil {
		doc, derr := repo.GetDocument(ctx, s.DB, *p.DocumentID)
		if derr != nil {
			if isNotFound(derr) {
				return "", ErrDocumentNotFound
			}
			return "", derr
		}
		entityID = doc.ID
		p.ContractName = doc.Title
		p.ContractText = doc.DocumentContent
		p.ContractType = doc.DocumentType
	}

	result, err := s.ContractAnalyst.Analyze(ctx, agents.ContractRequest{
		ContractName: p.ContractName,
		ContractType: p.ContractType,
		Parties:      p.Parties,
		PartyRole:    p.PartyRole,
		Jurisdiction: p.Jurisdiction,
		Industry:     p.Industry,
		ContractText: p.ContractText,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	rec := &domain.AnalysisResult{
		AnalysisType:     "contract_analysis",
		EntityType:       "contract",
		EntityID:         entityID,
		LawyerID:         lawyer.ID,
		ResultSummary:    clip(result, summaryPreviewRunes),
		DetailedAnalysis: result,
	}
	if perr := repo.CreateAnalysisResult(ctx, s.DB, rec); perr != nil {
		logAuditFailure(perr, "contract_analysis", lawyer.ID)
	}
	return result, nil
}

// --- Compliance ---

// ComplianceParams carries the inputs to AssessCompliance. Zero values defer
// to the lawyer's profile (firm, jurisdiction) and the configured default
// frameworks.
type ComplianceParams struct {
	Organization     string
	Industry         string
	Jurisdictions    []string
	Frameworks       []string
	Scope            []string
	CurrentPractices string
}

// AssessCompliance produces a regulatory compliance assessment for a lawyer's
// organization and records it. The lawyer must exist.
func (s *Orchestrator) AssessCompliance(ctx context.Context, lawyerID int64, p ComplianceParams) (string, error) {
	tr := otel.Tracer("services/Orchestrator")
	ctx, span := tr.Start(ctx, "AssessCompliance",
		trace.WithAttributes(attribute.Int64("lawyer.id", lawyerID)),
	)
	defer span.End()

	lawyer, err := s.lawyer(ctx, lawyerID)
	if err != nil {
		return "", err
	}

	organization := firstNonEmpty(p.Organization, lawyer.Firm)
	jurisdictions := p.Jurisdictions
	if len(jurisdictions) == 0 && lawyer.Jurisdiction != "" {
		jurisdictions = []string{lawyer.Jurisdiction}
	}
	frameworks := p.Frameworks
	if len(frameworks) == 0 {
		frameworks = s.DefaultFrameworks
	}

	result, err := s.ComplianceAdvisor.Assess(ctx, agents.ComplianceRequest{
		Organization:     organization,
		Industry:         p.Industry,
		Jurisdictions:    jurisdictions,
		Frameworks:       frameworks,
		Scope:            p.Scope,
		CurrentPractices: p.CurrentPractices,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	rec := &domain.AnalysisResult{
		AnalysisType:     "compliance_assessment",
		EntityType:       "organization",
		EntityID:         0,
		LawyerID:         lawyer.ID,
		ResultSummary:    clip(result, summaryPreviewRunes),
		DetailedAnalysis: result,
	}
	if perr := repo.CreateAnalysisResult(ctx, s.DB, rec); perr != nil {
		logAuditFailure(perr, "compliance_assessment", lawyer.ID)
	}
	return result, nil
}

// --- Drafting ---

// DraftParams carries the inputs to DraftDocument. DocumentType selects the
// deliverable; the remaining fields feed whichever prompt that type builds
// and may be left zero to take the drafter's defaults.
type DraftParams struct {
	DocumentType string
	Title        string
	CaseID       *int64

	// Shared by several document types.
	Facts        string
	Jurisdiction string

	// Memo.
	Recipient string
	Author    string
	Subject   string
	Question  string

	// Motion.
	Court        string
	CaseNumber   string
	CaseCaption  string
	MotionType   string
	ReliefSought string

	// Demand letter.
	ClientName     string
	ClientPosition string
	RecipientName  string
	LegalBasis     string
	Damages        string
	Demand         string
	Deadline       string

	// Contract clause.
	ClauseType   string
	Purpose      string
	ContractType string
	Requirements string
}

// DraftDocument produces a legal document of the requested type for a lawyer
// and stores it as a draft. Unknown types return ErrUnsupportedDocumentType;
// the lawyer, and the case when one is referenced, must exist.
func (s *Orchestrator) DraftDocument(ctx context.Context, lawyerID int64, p DraftParams) (string, error) {
	tr := otel.Tracer("services/Orchestrator")
	ctx, span := tr.Start(ctx, "DraftDocument",
		trace.WithAttributes(
			attribute.Int64("lawyer.id", lawyerID),
			attribute.String("document.type", p.DocumentType),
		),
	)
	defer span.End()

	if !draftableTypes[p.DocumentType] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDocumentType, p.DocumentType)
	}

	lawyer, err := s.lawyer(ctx, lawyerID)
	if err != nil {
		return "", err
	}
	if p.CaseID != nil {
		if _, err := s.legalCase(ctx, *p.CaseID); err != nil {
			return "", err
		}
	}

	var result string
	switch p.DocumentType {
	case "memo":
		result, err = s.Drafter.DraftMemo(ctx, agents.MemoRequest{
			Recipient:    p.Recipient,
			Author:       p.Author,
			Subject:      p.Subject,
			Question:     p.Question,
			Facts:        p.Facts,
			Jurisdiction: p.Jurisdiction,
		})
	case "motion":
		result, err = s.Drafter.DraftMotion(ctx, agents.MotionRequest{
			Court:        p.Court,
			CaseNumber:   p.CaseNumber,
			CaseCaption:  p.CaseCaption,
			MotionType:   p.MotionType,
			ReliefSought: p.ReliefSought,
			Facts:        p.Facts,
		})
	case "demand_letter":
		result, err = s.Drafter.DraftDemandLetter(ctx, agents.DemandLetterRequest{
			ClientName:     p.ClientName,
			ClientPosition: p.ClientPosition,
			RecipientName:  p.RecipientName,
			Subject:        p.Subject,
			Facts:          p.Facts,
			LegalBasis:     p.LegalBasis,
			Damages:        p.Damages,
			Demand:         p.Demand,
			Deadline:       p.Deadline,
		})
	case "contract_clause":
		result, err = s.Drafter.DraftClause(ctx, agents.ClauseRequest{
			ClauseType:   p.ClauseType,
			Purpose:      p.Purpose,
			ContractType: p.ContractType,
			Jurisdiction: p.Jurisdiction,
			Requirements: p.Requirements,
		})
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	doc := &domain.LegalDocument{
		DocumentType:    p.DocumentType,
		Title:           draftTitle(p.DocumentType, p.Title),
		CaseID:          p.CaseID,
		LawyerID:        lawyer.ID,
		DocumentContent: result,
		Status:          "draft",
	}
	if perr := repo.CreateDocument(ctx, s.DB, doc); perr != nil {
		logAuditFailure(perr, "legal_document", lawyer.ID)
	}
	return result, nil
}

// --- Litigation strategy ---

// StrategyParams carries the caller-adjustable inputs to
// DevelopLitigationStrategy; everything else is read from the case.
type StrategyParams struct {
	ClientPosition string
	ClientInfo     string
	Objectives     string
}

// DevelopLitigationStrategy produces a litigation strategy for a case and
// records it. The case is resolved first, then the lawyer; both must exist.
// The client is assumed to be the plaintiff unless stated otherwise.
func (s *Orchestrator) DevelopLitigationStrategy(ctx context.Context, lawyerID, caseID int64, p StrategyParams) (string, error) {
	tr := otel.Tracer("services/Orchestrator")
	ctx, span := tr.Start(ctx, "DevelopLitigationStrategy",
		trace.WithAttributes(
			attribute.Int64("lawyer.id", lawyerID),
			attribute.Int64("case.id", caseID),
		),
	)
	defer span.End()

	c, err := s.legalCase(ctx, caseID)
	if err != nil {
		return "", err
	}
	lawyer, err := s.lawyer(ctx, lawyerID)
	if err != nil {
		return "", err
	}

	result, err := s.Strategist.Develop(ctx, agents.StrategyRequest{
		CaseName:       c.Title,
		CaseType:       c.CaseType,
		ClientPosition: firstNonEmpty(p.ClientPosition, "plaintiff"),
		CaseStage:      c.Status,
		Facts:          firstNonEmpty(c.CaseSummary, "Not provided"),
		LegalIssues:    firstNonEmpty(c.KeyIssues, "Not specified"),
		ClientInfo:     firstNonEmpty(p.ClientInfo, c.ClientName, "Client"),
		Objectives:     p.Objectives,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	rec := &domain.AnalysisResult{
		AnalysisType:     "litigation_strategy",
		EntityType:       "case",
		EntityID:         c.ID,
		LawyerID:         lawyer.ID,
		ResultSummary:    clip(result, summaryPreviewRunes),
		DetailedAnalysis: result,
	}
	if perr := repo.CreateAnalysisResult(ctx, s.DB, rec); perr != nil {
		logAuditFailure(perr, "litigation_strategy", lawyer.ID)
	}
	return result, nil
}

// --- Comprehensive analysis ---

// DocumentAnalysis pairs one reviewed case document with its analysis.
type DocumentAnalysis struct {
	DocumentID int64  `json:"document_id"`
	Title      string `json:"title"`
	Analysis   string `json:"analysis"`
}

// CaseAnalysisBundle is the combined output of a comprehensive case analysis.
type CaseAnalysisBundle struct {
	Research         string             `json:"research"`
	Strategy         string             `json:"strategy"`
	DocumentAnalyses []DocumentAnalysis `json:"document_analyses"`
}

// ComprehensiveCaseAnalysis chains research, strategy, and contract review of
// the case's most recent contract-type documents into one bundle. Any step
// failing fails the whole call; audit records persisted by earlier successful
// steps remain (the chain is deliberately not transactional, so partial work
// is not lost).
func (s *Orchestrator) ComprehensiveCaseAnalysis(ctx context.Context, lawyerID, caseID int64) (*CaseAnalysisBundle, error) {
	tr := otel.Tracer("services/Orchestrator")
	ctx, span := tr.Start(ctx, "ComprehensiveCaseAnalysis",
		trace.WithAttributes(
			attribute.Int64("lawyer.id", lawyerID),
			attribute.Int64("case.id", caseID),
		),
	)
	defer span.End()

	c, err := s.legalCase(ctx, caseID)
	if err != nil {
		return nil, err
	}

	research, err := s.ResearchCaseLaw(ctx, lawyerID, ResearchParams{
		LegalIssue:   c.KeyIssues,
		PracticeArea: c.PracticeArea,
		CaseID:       &c.ID,
	})
	if err != nil {
		return nil, err
	}

	strategy, err := s.DevelopLitigationStrategy(ctx, lawyerID, caseID, StrategyParams{})
	if err != nil {
		return nil, err
	}

	docs, err := repo.ListCaseDocuments(ctx, s.DB, caseID)
	if err != nil {
		return nil, err
	}
	if len(docs) > comprehensiveDocLimit {
		docs = docs[:comprehensiveDocLimit]
	}

	analyses := []DocumentAnalysis{}
	for i := range docs {
		doc := docs[i]
		if doc.DocumentType != "contract" && doc.DocumentType != "agreement" {
			continue
		}
		analysis, aerr := s.AnalyzeContract(ctx, lawyerID, ContractParams{DocumentID: &doc.ID})
		if aerr != nil {
			return nil, aerr
		}
		analyses = append(analyses, DocumentAnalysis{
			DocumentID: doc.ID,
			Title:      doc.Title,
			Analysis:   analysis,
		})
	}

	return &CaseAnalysisBundle{
		Research:         research,
		Strategy:         strategy,
		DocumentAnalyses: analyses,
	}, nil
}

// --- Lawyer summary ---

// LawyerSummary is a snapshot of a lawyer's practice: profile fields plus
// caseload and outcome statistics derived from their cases.
type LawyerSummary struct {
	LawyerID         int64              `json:"lawyer_id"`
	Name             string             `json:"name"`
	BarNumber        string             `json:"bar_number"`
	Firm             string             `json:"firm"`
	YearsExperience  int                `json:"years_experience"`
	Specializations  string             `json:"specializations"`
	TotalCases       int                `json:"total_cases"`
	ActiveCases      int                `json:"active_cases"`
	ClosedCases      int                `json:"closed_cases"`
	WonCases         int                `json:"won_cases"`
	WinRate          float64            `json:"win_rate"`
	ResearchSessions int64              `json:"research_sessions"`
	RecentCases      []domain.LegalCase `json:"recent_cases"`
}

// GetLawyerSummary derives a practice snapshot for the lawyer: closed cases
// are those with status closed, settled or dismissed; wins are closed cases
// whose outcome is won, favorable or settled; the win rate is wins over
// closed cases in percent (zero when none are closed).
func (s *Orchestrator) GetLawyerSummary(ctx context.Context, lawyerID int64) (*LawyerSummary, error) {
	tr := otel.Tracer("services/Orchestrator")
	ctx, span := tr.Start(ctx, "GetLawyerSummary",
		trace.WithAttributes(attribute.Int64("lawyer.id", lawyerID)),
	)
	defer span.End()

	lawyer, err := s.lawyer(ctx, lawyerID)
	if err != nil {
		return nil, err
	}

	lawyerCases, err := repo.ListLawyerCases(ctx, s.DB, lawyer.ID)
	if err != nil {
		return nil, err
	}
	sessions, err := repo.CountLawyerResearchSessions(ctx, s.DB, lawyer.ID)
	if err != nil {
		return nil, err
	}

	summary := &LawyerSummary{
		LawyerID:         lawyer.ID,
		Name:             lawyer.Name,
		BarNumber:        lawyer.BarNumber,
		Firm:             lawyer.Firm,
		YearsExperience:  lawyer.YearsExperience,
		Specializations:  lawyer.Specializations,
		TotalCases:       len(lawyerCases),
		ResearchSessions: sessions,
		RecentCases:      []domain.LegalCase{},
	}
	for _, c := range lawyerCases {
		switch {
		case c.Status == "active":
			summary.ActiveCases++
		case closedStatuses[c.Status]:
			summary.ClosedCases++
			if wonOutcomes[c.Outcome] {
				summary.WonCases++
			}
		}
	}
	if summary.ClosedCases > 0 {
		summary.WinRate = float64(summary.WonCases) / float64(summary.ClosedCases) * 100
	}
	if len(lawyerCases) > recentCaseLimit {
		lawyerCases = lawyerCases[:recentCaseLimit]
	}
	summary.RecentCases = lawyerCases
	return summary, nil
}

// --- Helpers ---

// lawyer resolves the requesting lawyer, translating a missing row into
// ErrLawyerNotFound.
func (s *Orchestrator) lawyer(ctx context.Context, id int64) (*domain.Lawyer, error) {
	l, err := repo.GetLawyer(ctx, s.DB, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrLawyerNotFound
		}
		return nil, err
	}
	return l, nil
}

// legalCase resolves a referenced case, translating a missing row into
// ErrCaseNotFound.
func (s *Orchestrator) legalCase(ctx context.Context, id int64) (*domain.LegalCase, error) {
	c, err := repo.GetCase(ctx, s.DB, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCaseNotFound
		}
		return nil, err
	}
	return c, nil
}

// logAuditFailure records a failed audit write. By the time persistence runs
// the caller already holds a successful result, so only the record is lost.
func logAuditFailure(err error, record string, lawyerID int64) {
	log.Error().Err(err).
		Str("record", record).
		Int64("lawyer_id", lawyerID).
		Msg("audit record not persisted")
}

// draftTitle produces the stored title for a drafted document, defaulting to
// a title-cased "<Type> Draft" label when the caller supplies none.
func draftTitle(docType, title string) string {
	if strings.TrimSpace(title) != "" {
		return title
	}
	label := cases.Title(language.English).String(strings.ReplaceAll(docType, "_", " "))
	return label + " Draft"
}

// firstNonEmpty returns the first argument with non-blank content, or "".
func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// clip truncates s to at most n runes.
func clip(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// Package domain defines the persistence models for the legal intelligence
// platform: lawyers, cases, documents, the research/analysis audit trail, and
// the human-review records (approvals, feedback). These types are mapped with
// GORM and are shared across the repository and service layers.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Lawyer represents a legal professional registered with the platform. Every
// generation request is made on behalf of a lawyer, and summary statistics
// (win rate, active cases) are derived from the cases linked to one.
//
// Fields:
//   - ID: auto-incrementing primary key; referenced by cases, documents and
//     audit records as well as by approval/feedback requester ids.
//   - BarNumber: unique bar registration (validated on create).
//   - PracticeAreas / Specializations: comma-separated labels.
//   - DeletedAt: soft deletion marker (retains row for audit/history).
type Lawyer struct {
	ID              int64          `json:"id"               gorm:"primaryKey"`
	Name            string         `json:"name"             gorm:"type:varchar(255);not null"`
	BarNumber       string         `json:"bar_number"       gorm:"type:varchar(32);uniqueIndex"`
	Firm            string         `json:"firm"             gorm:"type:varchar(255)"`
	PracticeAreas   string         `json:"practice_areas"   gorm:"type:varchar(512)"`
	Jurisdiction    string         `json:"jurisdiction"     gorm:"type:varchar(128)"`
	YearsExperience int            `json:"years_experience"`
	Specializations string         `json:"specializations"  gorm:"type:varchar(512)"`
	Email           string         `json:"email"            gorm:"type:varchar(255);index"`
	Phone           string         `json:"phone"            gorm:"type:varchar(32)"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-"                gorm:"index"`
}

// TableName returns the database table name for Lawyer.
func (Lawyer) TableName() string { return "lawyers" }

// LegalCase represents a matter handled by a lawyer. Case summaries feed the
// research and litigation-strategy prompts, and closed-case outcomes drive the
// lawyer summary statistics.
//
// Fields:
//   - CaseNumber: unique docket-style identifier (validated on create).
//   - Status: lifecycle label; "active" counts toward active cases, while
//     "closed", "settled" and "dismissed" count as closed.
//   - Outcome: set when a case closes; "won", "favorable" and "settled"
//     count as wins.
//   - Lawyer: FK association, cascade delete/update with the owning lawyer.
type LegalCase struct {
	ID            int64          `json:"id"             gorm:"primaryKey"`
	CaseNumber    string         `json:"case_number"    gorm:"type:varchar(32);uniqueIndex;not null"`
	Title         string         `json:"title"          gorm:"type:varchar(255);not null"`
	CaseType      string         `json:"case_type"      gorm:"type:varchar(64)"`
	PracticeArea  string         `json:"practice_area"  gorm:"type:varchar(128)"`
	Jurisdiction  string         `json:"jurisdiction"   gorm:"type:varchar(128)"`
	Court         string         `json:"court"          gorm:"type:varchar(255)"`
	FilingDate    *time.Time     `json:"filing_date,omitempty"`
	Status        string         `json:"status"         gorm:"type:varchar(32);not null;default:'active';index"`
	LawyerID      int64          `json:"lawyer_id"      gorm:"not null;index:idx_lawyer_cases"`
	ClientName    string         `json:"client_name"    gorm:"type:varchar(255)"`
	OpposingParty string         `json:"opposing_party" gorm:"type:varchar(255)"`
	CaseSummary   string         `json:"case_summary"   gorm:"type:text"`
	KeyIssues     string         `json:"key_issues"     gorm:"type:text"`
	Outcome       string         `json:"outcome"        gorm:"type:varchar(32)"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-"              gorm:"index"`

	Lawyer Lawyer `json:"-" gorm:"foreignKey:LawyerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for LegalCase.
func (LegalCase) TableName() string { return "cases" }

// LegalDocument is a document attached to a case or drafted standalone.
// Drafted output from the drafting agent is stored here with status "draft";
// documents typed "contract" or "agreement" are picked up by comprehensive
// case analysis.
type LegalDocument struct {
	ID              int64          `json:"id"               gorm:"primaryKey"`
	DocumentType    string         `json:"document_type"    gorm:"type:varchar(64);not null;index"`
	Title           string         `json:"title"            gorm:"type:varchar(255);not null"`
	CaseID          *int64         `json:"case_id,omitempty" gorm:"index:idx_case_docs"`
	LawyerID        int64          `json:"lawyer_id"        gorm:"index"`
	DocumentContent string         `json:"document_content" gorm:"type:text"`
	Jurisdiction    string         `json:"jurisdiction"     gorm:"type:varchar(128)"`
	PracticeArea    string         `json:"practice_area"    gorm:"type:varchar(128)"`
	Status          string         `json:"status"           gorm:"type:varchar(32);not null;default:'draft'"`
	CreatedAt       time.Time      `json:"created_at"       gorm:"index:idx_case_docs"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-"                gorm:"index"`

	Case *LegalCase `json:"-" gorm:"foreignKey:CaseID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for LegalDocument.
func (LegalDocument) TableName() string { return "legal_documents" }

// Statute is a statute or regulation in the reference library, searchable by
// jurisdiction, category and keyword.
type Statute struct {
	ID            int64      `json:"id"             gorm:"primaryKey"`
	StatuteCode   string     `json:"statute_code"   gorm:"type:varchar(64);uniqueIndex;not null"`
	Title         string     `json:"title"          gorm:"type:varchar(255);not null"`
	Jurisdiction  string     `json:"jurisdiction"   gorm:"type:varchar(128);index"`
	Category      string     `json:"category"       gorm:"type:varchar(128);index"`
	Summary       string     `json:"summary"        gorm:"type:text"`
	FullText      string     `json:"full_text"      gorm:"type:text"`
	EffectiveDate *time.Time `json:"effective_date,omitempty"`
	Status        string     `json:"status"         gorm:"type:varchar(32);not null;default:'active'"`
	CitationCount int        `json:"citation_count" gorm:"not null;default:0"`
	CreatedAt     time.Time  `json:"created_at"`
}

// TableName returns the database table name for Statute.
func (Statute) TableName() string { return "statutes" }

// Precedent is a decided case in the reference library. The in-memory search
// index is built from precedent rows at startup.
type Precedent struct {
	ID              int64      `json:"id"               gorm:"primaryKey"`
	CaseName        string     `json:"case_name"        gorm:"type:varchar(255);not null"`
	Citation        string     `json:"citation"         gorm:"type:varchar(128);uniqueIndex"`
	Court           string     `json:"court"            gorm:"type:varchar(255)"`
	Jurisdiction    string     `json:"jurisdiction"     gorm:"type:varchar(128);index"`
	DecisionDate    *time.Time `json:"decision_date,omitempty"`
	PracticeArea    string     `json:"practice_area"    gorm:"type:varchar(128);index"`
	LegalIssue      string     `json:"legal_issue"      gorm:"type:text"`
	Holding         string     `json:"holding"          gorm:"type:text"`
	Keywords        string     `json:"keywords"         gorm:"type:varchar(512)"`
	ImportanceScore float64    `json:"importance_score" gorm:"not null;default:0"`
	CitationCount   int        `json:"citation_count"   gorm:"not null;default:0"`
	Overruled       bool       `json:"overruled"        gorm:"not null;default:false"`
	CreatedAt       time.Time  `json:"created_at"`
}

// TableName returns the database table name for Precedent.
func (Precedent) TableName() string { return "precedents" }

// ResearchSession records one completed case-law research run: the query that
// was asked and a truncated preview of the findings. Written exactly once per
// successful research call and never mutated afterward.
type ResearchSession struct {
	ID            int64     `json:"id"             gorm:"primaryKey"`
	SessionName   string    `json:"session_name"   gorm:"type:varchar(255);not null"`
	LawyerID      int64     `json:"lawyer_id"      gorm:"not null;index:idx_lawyer_sessions"`
	CaseID        *int64    `json:"case_id,omitempty" gorm:"index"`
	ResearchQuery string    `json:"research_query" gorm:"type:text"`
	PracticeArea  string    `json:"practice_area"  gorm:"type:varchar(128)"`
	Jurisdiction  string    `json:"jurisdiction"   gorm:"type:varchar(128)"`
	Findings      string    `json:"findings"       gorm:"type:text"`
	SessionDate   time.Time `json:"session_date"   gorm:"autoCreateTime;index:idx_lawyer_sessions"`
}

// TableName returns the database table name for ResearchSession.
func (ResearchSession) TableName() string { return "research_sessions" }

// AnalysisResult records one completed analysis run (contract analysis,
// compliance assessment or litigation strategy) against some entity. Like
// ResearchSession it is an append-only audit record.
type AnalysisResult struct {
	ID               int64     `json:"id"                gorm:"primaryKey"`
	AnalysisType     string    `json:"analysis_type"     gorm:"type:varchar(64);not null;index"`
	EntityType       string    `json:"entity_type"       gorm:"type:varchar(64);not null;index:idx_entity_analyses"`
	EntityID         int64     `json:"entity_id"         gorm:"not null;index:idx_entity_analyses"`
	LawyerID         int64     `json:"lawyer_id"         gorm:"index"`
	ResultSummary    string    `json:"result_summary"    gorm:"type:text"`
	DetailedAnalysis string    `json:"detailed_analysis" gorm:"type:text"`
	AnalysisDate     time.Time `json:"analysis_date"     gorm:"autoCreateTime;index"`
}

// TableName returns the database table name for AnalysisResult.
func (AnalysisResult) TableName() string { return "analysis_results" }

package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/lexcraft/go-legal-backend/internal/llm"
)

const drafterInstructions = `You are an expert Legal Drafting Specialist with mastery in legal writing,
document preparation, and persuasive advocacy. Your role is to help lawyers
draft clear, effective, and professionally formatted legal documents.

## Core Responsibilities
1. **Document Drafting**: pleadings, motions, memoranda, letters, and contract
   clauses.
2. **Legal Writing**: precise language, proper citations, logical argument
   structure.
3. **Formatting**: standard document structure for the document type at hand.

## Output Guidelines
Produce the complete document, not an outline. Use the conventional structure
for the document type, mark any facts or citations that must be verified with
[VERIFY], and keep the tone appropriate to the audience.`

// Drafter produces legal documents of several types. Each document type has
// its own operation because the prompt structure differs per type.
type Drafter struct {
	agent
}

// NewDrafter builds the legal drafting agent.
func NewDrafter(gen llm.Generator) *Drafter {
	return &Drafter{agent{
		name:         "Legal Drafting Specialist",
		instructions: drafterInstructions,
		gen:          gen,
	}}
}

// MemoRequest carries the parameters for a legal memorandum.
type MemoRequest struct {
	Recipient    string // defaults to "Senior Partner"
	Author       string // defaults to "Associate"
	Subject      string
	Question     string
	Facts        string
	Jurisdiction string
}

// DraftMemo drafts a legal research memorandum.
func (d *Drafter) DraftMemo(ctx context.Context, req MemoRequest) (string, error) {
	var b strings.Builder
	b.WriteString("Draft a legal memorandum addressing the following:\n\n")
	b.WriteString("## Memo Parameters\n")
	fmt.Fprintf(&b, "**To**: %s\n", orElse(req.Recipient, "Senior Partner"))
	fmt.Fprintf(&b, "**From**: %s\n", orElse(req.Author, "Associate"))
	fmt.Fprintf(&b, "**Re**: %s\n\n", orElse(req.Subject, "Legal Research Memorandum"))
	b.WriteString("## Question Presented\n")
	fmt.Fprintf(&b, "%s\n\n", orElse(req.Question, "Not specified"))
	b.WriteString("## Facts\n")
	fmt.Fprintf(&b, "%s\n\n", orElse(req.Facts, "Not provided"))
	b.WriteString("## Applicable Law\n")
	fmt.Fprintf(&b, "**Jurisdiction**: %s\n\n", orElse(req.Jurisdiction, "Not specified"))
	b.WriteString("## Analysis Required\n")
	b.WriteString("Draft a complete legal memorandum following standard format:\n")
	b.WriteString("1. Question Presented (reframed if needed for clarity)\n")
	b.WriteString("2. Brief Answer (2-3 sentences)\n")
	b.WriteString("3. Facts (organized and relevant)\n")
	b.WriteString("4. Discussion (thorough legal analysis with CREAC structure)\n")
	b.WriteString("5. Conclusion\n")
	return d.run(ctx, b.String())
}

// MotionRequest carries the parameters for a court motion.
type MotionRequest struct {
	Court        string
	CaseNumber   string
	CaseCaption  string
	MotionType   string
	ReliefSought string
	Facts        string
}

// DraftMotion drafts a motion for filing in court.
func (d *Drafter) DraftMotion(ctx context.Context, req MotionRequest) (string, error) {
	var b strings.Builder
	b.WriteString("Draft a motion for filing in court:\n\n")
	b.WriteString("## Court Information\n")
	fmt.Fprintf(&b, "**Court**: %s\n", orElse(req.Court, "Not specified"))
	fmt.Fprintf(&b, "**Case Number**: %s\n", orElse(req.CaseNumber, "XX-XXXX-XXXXXX"))
	fmt.Fprintf(&b, "**Case Caption**: %s\n\n", orElse(req.CaseCaption, "Plaintiff v. Defendant"))
	b.WriteString("## Motion Type\n")
	fmt.Fprintf(&b, "%s\n\n", orElse(req.MotionType, "Not specified"))
	b.WriteString("## Relief Sought\n")
	fmt.Fprintf(&b, "%s\n\n", orElse(req.ReliefSought, "Not specified"))
	b.WriteString("## Factual Background\n")
	fmt.Fprintf(&b, "%s\n\n", orElse(req.Facts, "Not provided"))
	b.WriteString("## Draft Requirements\n")
	b.WriteString("Create a complete motion including:\n")
	b.WriteString("1. Caption\n")
	b.WriteString("2. Title\n")
	b.WriteString("3. Introduction (what you're asking for and why)\n")
	b.WriteString("4. Statement of Facts (relevant background)\n")
	b.WriteString("5. Argument (organized by issue with legal analysis)\n")
	b.WriteString("6. Conclusion (specific relief requested)\n")
	return d.run(ctx, b.String())
}

// DemandLetterRequest carries the parameters for a demand letter.
type DemandLetterRequest struct {
	ClientName     string
	ClientPosition string
	RecipientName  string
	Subject        string
	Facts          string
	LegalBasis     string
	Damages        string
	Demand         string
	Deadline       string
}

// DraftDemandLetter drafts a pre-litigation demand letter.
func (d *Drafter) DraftDemandLetter(ctx context.Context, req DemandLetterRequest) (string, error) {
	var b strings.Builder
	b.WriteString("Draft a demand letter:\n\n")
	b.WriteString("## Client Information\n")
	fmt.Fprintf(&b, "**Client**: %s\n", orElse(req.ClientName, "Our Client"))
	fmt.Fprintf(&b, "**Client Position**: %s\n\n", orElse(req.ClientPosition, "Not specified"))
	b.WriteString("## Recipient Information\n")
	fmt.Fprintf(&b, "**Recipient**: %s\n\n", orElse(req.RecipientName, "Recipient"))
	b.WriteString("## Matter\n")
	fmt.Fprintf(&b, "**Subject**: %s\n", orElse(req.Subject, "Legal Matter"))
	fmt.Fprintf(&b, "**Facts**: %s\n\n", orElse(req.Facts, "Not provided"))
	b.WriteString("## Legal Basis\n")
	fmt.Fprintf(&b, "%s\n\n", orElse(req.LegalBasis, "Not provided"))
	b.WriteString("## Damages/Relief\n")
	fmt.Fprintf(&b, "%s\n\n", orElse(req.Damages, "Not specified"))
	b.WriteString("## Demand\n")
	fmt.Fprintf(&b, "**Amount/Action Demanded**: %s\n", orElse(req.Demand, "Not specified"))
	fmt.Fprintf(&b, "**Deadline**: %s\n\n", orElse(req.Deadline, "Not specified"))
	b.WriteString("## Draft Requirements\n")
	b.WriteString("Create a professional demand letter that:\n")
	b.WriteString("1. Identifies your client and role\n")
	b.WriteString("2. States the facts clearly and persuasively\n")
	b.WriteString("3. Explains legal basis for demand\n")
	b.WriteString("4. Makes a specific demand with deadline\n")
	b.WriteString("5. States consequences of non-compliance\n")
	b.WriteString("The tone should be firm but professional.\n")
	return d.run(ctx, b.String())
}

// ClauseRequest carries the parameters for a single contract clause.
type ClauseRequest struct {
	ClauseType   string
	Purpose      string
	ContractType string
	Jurisdiction string
	Requirements string
}

// DraftClause drafts a standalone contract clause.
func (d *Drafter) DraftClause(ctx context.Context, req ClauseRequest) (string, error) {
	var b strings.Builder
	b.WriteString("Draft a contract clause:\n\n")
	b.WriteString("## Clause Type\n")
	fmt.Fprintf(&b, "%s\n\n", orElse(req.ClauseType, "Not specified"))
	b.WriteString("## Purpose\n")
	fmt.Fprintf(&b, "%s\n\n", orElse(req.Purpose, "Not specified"))
	b.WriteString("## Context\n")
	fmt.Fprintf(&b, "**Contract Type**: %s\n", orElse(req.ContractType, "General"))
	fmt.Fprintf(&b, "**Jurisdiction**: %s\n\n", orElse(req.Jurisdiction, "Not specified"))
	b.WriteString("## Requirements\n")
	fmt.Fprintf(&b, "%s\n\n", orElse(req.Requirements, "Not provided"))
	b.WriteString("## Drafting Task\n")
	b.WriteString("Draft a complete, professional contract clause that:\n")
	b.WriteString("1. Clearly expresses the intended rights and obligations\n")
	b.WriteString("2. Uses proper contract drafting language\n")
	b.WriteString("3. Anticipates potential issues or disputes\n")
	b.WriteString("4. Includes appropriate qualifications or exceptions\n")
	b.WriteString("5. Integrates well with standard contract structure\n")
	b.WriteString("Provide a primary version and, where a different approach is viable, an alternative version.\n")
	return d.run(ctx, b.String())
}

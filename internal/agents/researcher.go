package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/lexcraft/go-legal-backend/internal/domain"
	"github.com/lexcraft/go-legal-backend/internal/llm"
)

const researcherInstructions = `You are an expert Case Law Research Specialist with deep expertise in legal
precedents, judicial reasoning, and case analysis. Your role is to help lawyers
research relevant case law, analyze judicial decisions, and identify applicable
precedents.

## Core Responsibilities
1. **Case Law Research**: identify relevant precedents, analyze judicial
   decisions, and flag overruling or distinguishing cases.
2. **Precedent Analysis**: evaluate precedential value and binding authority,
   compare factual similarities, and isolate key holdings from dicta.
3. **Citation Analysis**: weigh seminal and frequently cited cases over
   peripheral authority.
4. **Issue Identification**: extract the controlling legal questions and note
   any novel issues.

## Output Guidelines
Structure the analysis with clear headings. For each precedent discussed, state
its holding, its relevance to the issue, and how an opponent might distinguish
it. Close with strategic recommendations ranked by strength of authority.`

// Researcher performs case law research over a supplied precedent set.
type Researcher struct {
	agent
}

// NewResearcher builds the case law research agent.
func NewResearcher(gen llm.Generator) *Researcher {
	return &Researcher{agent{
		name:         "Case Law Research Specialist",
		instructions: researcherInstructions,
		gen:          gen,
	}}
}

// ResearchRequest carries the parameters for one research run.
type ResearchRequest struct {
	LegalIssue   string
	Jurisdiction string
	PracticeArea string
	CurrentFacts string
	Precedents   []domain.Precedent
}

// Research renders the research task and returns the model's analysis.
func (r *Researcher) Research(ctx context.Context, req ResearchRequest) (string, error) {
	return r.run(ctx, buildResearchTask(req))
}

func buildResearchTask(req ResearchRequest) string {
	var b strings.Builder
	b.WriteString("Conduct comprehensive case law research for the following matter:\n\n")
	b.WriteString("## Research Parameters\n")
	fmt.Fprintf(&b, "**Legal Issue**: %s\n", orElse(req.LegalIssue, "Not specified"))
	fmt.Fprintf(&b, "**Jurisdiction**: %s\n", orElse(req.Jurisdiction, "Not specified"))
	fmt.Fprintf(&b, "**Practice Area**: %s\n\n", orElse(req.PracticeArea, "Not specified"))
	fmt.Fprintf(&b, "**Current Case Facts**: %s\n\n", orElse(req.CurrentFacts, "Not provided"))
	fmt.Fprintf(&b, "## Available Precedents (%d cases)\n\n", len(req.Precedents))
	b.WriteString(formatPrecedents(req.Precedents))
	b.WriteString("\n## Task\n")
	b.WriteString("Provide comprehensive case law research analysis following your analytical framework.\n")
	b.WriteString("Focus on identifying the most relevant and applicable precedents for the legal issue.\n")
	b.WriteString("Provide strategic recommendations for how to use these precedents effectively.\n")
	return b.String()
}

// formatPrecedents renders each precedent as a detailed markdown block.
func formatPrecedents(precedents []domain.Precedent) string {
	if len(precedents) == 0 {
		return "**No precedents provided**\n"
	}
	var b strings.Builder
	for i, p := range precedents {
		date := "N/A"
		if p.DecisionDate != nil {
			date = p.DecisionDate.Format("2006-01-02")
		}
		fmt.Fprintf(&b, "### Case %d: %s\n", i+1, orElse(p.CaseName, "Unknown"))
		fmt.Fprintf(&b, "**Citation**: %s\n", orElse(p.Citation, "N/A"))
		fmt.Fprintf(&b, "**Court**: %s (%s)\n", orElse(p.Court, "Unknown"), orElse(p.Jurisdiction, "Unknown"))
		fmt.Fprintf(&b, "**Date**: %s\n", date)
		fmt.Fprintf(&b, "**Legal Issue**: %s\n", orElse(p.LegalIssue, "Not specified"))
		fmt.Fprintf(&b, "**Holding**: %s\n", orElse(p.Holding, "Not provided"))
		fmt.Fprintf(&b, "**Importance Score**: %.1f\n", p.ImportanceScore)
		fmt.Fprintf(&b, "**Citations**: %d\n", p.CitationCount)
		if p.Overruled {
			b.WriteString("**Status**: OVERRULED\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

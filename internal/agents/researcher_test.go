package agents

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/lexcraft/go-legal-backend/internal/domain"
)

func TestResearch_PromptCarriesParameters(t *testing.T) {
	prompt, gen := capture("analysis text")
	r := NewResearcher(gen)

	decided := time.Date(2019, 6, 21, 0, 0, 0, 0, time.UTC)
	got, err := r.Research(context.Background(), ResearchRequest{
		LegalIssue:   "breach of fiduciary duty",
		Jurisdiction: "Delaware",
		PracticeArea: "Corporate Law",
		CurrentFacts: "Director approved a self-dealing transaction.",
		Precedents: []domain.Precedent{
			{
				CaseName:        "Smith v. Van Gorkom",
				Citation:        "488 A.2d 858",
				Court:           "Delaware Supreme Court",
				Jurisdiction:    "Delaware",
				DecisionDate:    &decided,
				LegalIssue:      "duty of care",
				Holding:         "Directors grossly negligent in approving merger.",
				ImportanceScore: 9.5,
				CitationCount:   1200,
			},
		},
	})
	if err != nil {
		t.Fatalf("Research returned error: %v", err)
	}
	if got != "analysis text" {
		t.Fatalf("Research = %q, want generator output", got)
	}

	for _, want := range []string{
		"## Research Parameters",
		"**Legal Issue**: breach of fiduciary duty",
		"**Jurisdiction**: Delaware",
		"**Practice Area**: Corporate Law",
		"**Current Case Facts**: Director approved a self-dealing transaction.",
		"## Available Precedents (1 cases)",
		"### Case 1: Smith v. Van Gorkom",
		"**Citation**: 488 A.2d 858",
		"**Court**: Delaware Supreme Court (Delaware)",
		"**Date**: 2019-06-21",
		"**Holding**: Directors grossly negligent in approving merger.",
		"**Importance Score**: 9.5",
		"**Citations**: 1200",
		"## Task",
	} {
		if !strings.Contains(*prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestResearch_DefaultsForBlankFields(t *testing.T) {
	prompt, gen := capture("x")
	r := NewResearcher(gen)

	if _, err := r.Research(context.Background(), ResearchRequest{}); err != nil {
		t.Fatalf("Research returned error: %v", err)
	}
	for _, want := range []string{
		"**Legal Issue**: Not specified",
		"**Jurisdiction**: Not specified",
		"**Practice Area**: Not specified",
		"**Current Case Facts**: Not provided",
		"## Available Precedents (0 cases)",
		"**No precedents provided**",
	} {
		if !strings.Contains(*prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestFormatPrecedents(t *testing.T) {
	out := formatPrecedents([]domain.Precedent{
		{CaseName: "A v. B", Overruled: true},
		{CaseName: "C v. D"},
	})

	if !strings.Contains(out, "### Case 1: A v. B") || !strings.Contains(out, "### Case 2: C v. D") {
		t.Errorf("cases should be numbered from 1, got:\n%s", out)
	}
	if !strings.Contains(out, "**Status**: OVERRULED") {
		t.Errorf("overruled precedent should be flagged, got:\n%s", out)
	}
	if !strings.Contains(out, "**Date**: N/A") {
		t.Errorf("missing decision date should render as N/A, got:\n%s", out)
	}
	if strings.Count(out, "**Status**: OVERRULED") != 1 {
		t.Errorf("only the overruled case should carry the status line")
	}
}

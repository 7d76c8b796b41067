// Package agents defines the specialist legal agents that turn structured
// request data into prompts and run them through an llm.Generator.
//
// Each agent pairs a fixed instruction preamble (its role and analytical
// framework) with one or more typed operations that render a task block in
// markdown. The final prompt sent to the model is the preamble followed by
// the task. Agents hold no database access and perform no persistence; the
// services layer resolves entities, calls an agent, and stores results.
//
// Agents:
//   - Researcher: case law research over a set of precedents
//   - ContractAnalyst: full contract review and risk assessment
//   - ComplianceAdvisor: regulatory compliance assessment
//   - Drafter: memos, motions, demand letters, and contract clauses
//   - LitigationStrategist: case strategy development
//
// Usage:
//
//	r := agents.NewResearcher(gen)
//	analysis, err := r.Research(ctx, agents.ResearchRequest{
//		LegalIssue:   "breach of fiduciary duty",
//		Jurisdiction: "Delaware",
//		Precedents:   precedents,
//	})
package agents

import (
	"context"
	"strings"

	"github.com/lexcraft/go-legal-backend/internal/llm"
)

// agent is the shared core of every specialist: a name, an instruction
// preamble, and the generator that executes prompts.
type agent struct {
	name         string
	instructions string
	gen          llm.Generator
}

// run renders the final prompt (instructions + task) and executes it.
func (a agent) run(ctx context.Context, task string) (string, error) {
	var b strings.Builder
	b.Grow(len(a.instructions) + len(task) + 2)
	b.WriteString(strings.TrimSpace(a.instructions))
	b.WriteString("\n\n")
	b.WriteString(task)
	return a.gen.Generate(ctx, b.String())
}

// Name reports the agent's display name.
func (a agent) Name() string { return a.name }

// orElse returns v, or fallback when v is blank. Prompt fields always render
// with an explicit placeholder so the model never sees dangling labels.
func orElse(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

// joinOr joins list items with ", ", or returns fallback for an empty list.
func joinOr(items []string, fallback string) string {
	cleaned := make([]string, 0, len(items))
	for _, it := range items {
		if t := strings.TrimSpace(it); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	if len(cleaned) == 0 {
		return fallback
	}
	return strings.Join(cleaned, ", ")
}

package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/lexcraft/go-legal-backend/internal/llm"
)

const strategistInstructions = `You are an expert Litigation Strategy Specialist with deep expertise in case
analysis, strategic planning, risk assessment, and outcome prediction. Your
role is to help lawyers develop winning litigation strategies and make informed
decisions about case management.

## Core Responsibilities
1. **Case Analysis**: assess strengths and weaknesses, evidence quality, and
   procedural posture.
2. **Strategy Development**: discovery plan, key motions, trial strategy, and
   settlement approach.
3. **Outcome Prediction**: likelihood of success, damages exposure, settlement
   value, cost and timeline projections.
4. **Risk Assessment**: litigation risks on both sides of the case.

## Output Guidelines
Open with an executive summary of the recommended strategy. Analyze the case
and the opponent separately, then lay out a phased plan covering discovery,
motions, trial, and settlement. Quantify risk where the facts allow it.`

// LitigationStrategist develops case strategy from the case record.
type LitigationStrategist struct {
	agent
}

// NewLitigationStrategist builds the litigation strategy agent.
func NewLitigationStrategist(gen llm.Generator) *LitigationStrategist {
	return &LitigationStrategist{agent{
		name:         "Litigation Strategy Specialist",
		instructions: strategistInstructions,
		gen:          gen,
	}}
}

// StrategyRequest carries the case posture for strategy development.
type StrategyRequest struct {
	CaseName       string
	CaseType       string
	ClientPosition string
	CaseStage      string
	Facts          string
	LegalIssues    string
	ClientInfo     string
	Objectives     string
}

// Develop renders the strategy task and returns the model's analysis.
func (l *LitigationStrategist) Develop(ctx context.Context, req StrategyRequest) (string, error) {
	return l.run(ctx, buildStrategyTask(req))
}

func buildStrategyTask(req StrategyRequest) string {
	var b strings.Builder
	b.WriteString("Conduct comprehensive litigation strategy analysis:\n\n")
	b.WriteString("## Case Overview\n")
	fmt.Fprintf(&b, "**Case Name**: %s\n", orElse(req.CaseName, "Unknown"))
	fmt.Fprintf(&b, "**Case Type**: %s\n", orElse(req.CaseType, "Unknown"))
	fmt.Fprintf(&b, "**Our Position**: %s\n", orElse(req.ClientPosition, "Not specified"))
	fmt.Fprintf(&b, "**Current Stage**: %s\n\n", orElse(req.CaseStage, "Not specified"))
	b.WriteString("## Facts\n")
	fmt.Fprintf(&b, "%s\n\n", orElse(req.Facts, "Not provided"))
	b.WriteString("## Legal Issues\n")
	fmt.Fprintf(&b, "%s\n\n", orElse(req.LegalIssues, "Not provided"))
	b.WriteString("## Parties\n")
	fmt.Fprintf(&b, "**Our Client**: %s\n\n", orElse(req.ClientInfo, "Not specified"))
	b.WriteString("## Objectives\n")
	fmt.Fprintf(&b, "**Client Goals**: %s\n\n", orElse(req.Objectives, "Not specified"))
	b.WriteString("## Strategic Analysis Task\n")
	b.WriteString("Provide comprehensive strategic analysis following your analytical framework.\n")
	b.WriteString("Include:\n")
	b.WriteString("- Executive summary with key recommendations\n")
	b.WriteString("- Detailed case analysis (strengths/weaknesses)\n")
	b.WriteString("- Opponent analysis\n")
	b.WriteString("- Strategic plan (discovery, motions, trial, settlement)\n")
	b.WriteString("- Risk assessment\n")
	b.WriteString("- Economic analysis\n")
	b.WriteString("- Specific recommendations with rationale\n\n")
	b.WriteString("Ensure analysis is practical, realistic, and aligned with client objectives.\n")
	return b.String()
}

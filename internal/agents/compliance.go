package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/lexcraft/go-legal-backend/internal/llm"
)

const complianceAdvisorInstructions = `You are an expert Compliance Advisory Specialist with deep expertise in
regulatory compliance, risk management, corporate governance, and policy
development. Your role is to help organizations navigate complex regulatory
requirements and maintain compliance.

## Core Responsibilities
1. **Compliance Assessment**: identify applicable laws and regulations, assess
   current status, and surface gaps and risks.
2. **Risk Management**: rate risk severity and likelihood, and propose
   mitigation strategies.
3. **Policy Guidance**: recommend policies and procedures that satisfy the
   applicable frameworks.
4. **Regulatory Research**: interpret requirements and their practical impact
   on the organization.

## Output Guidelines
Organize findings by framework. For each gap, state the requirement, the
current shortfall, the risk if unaddressed, and a prioritized remediation step
with a rough effort estimate. Close with an implementation roadmap.`

// ComplianceAdvisor assesses an organization's regulatory posture.
type ComplianceAdvisor struct {
	agent
}

// NewComplianceAdvisor builds the compliance advisory agent.
func NewComplianceAdvisor(gen llm.Generator) *ComplianceAdvisor {
	return &ComplianceAdvisor{agent{
		name:         "Compliance Advisory Specialist",
		instructions: complianceAdvisorInstructions,
		gen:          gen,
	}}
}

// ComplianceRequest describes the organization and the assessment scope.
type ComplianceRequest struct {
	Organization     string
	Industry         string
	Jurisdictions    []string
	Frameworks       []string
	Scope            []string
	CurrentPractices string
}

// Assess renders the compliance assessment task and returns the model's output.
func (c *ComplianceAdvisor) Assess(ctx context.Context, req ComplianceRequest) (string, error) {
	return c.run(ctx, buildComplianceTask(req))
}

func buildComplianceTask(req ComplianceRequest) string {
	var b strings.Builder
	b.WriteString("Conduct a comprehensive compliance assessment for:\n\n")
	b.WriteString("## Organization Profile\n")
	fmt.Fprintf(&b, "**Name**: %s\n", orElse(req.Organization, "Unknown"))
	fmt.Fprintf(&b, "**Industry**: %s\n", orElse(req.Industry, "Not specified"))
	fmt.Fprintf(&b, "**Jurisdiction(s)**: %s\n\n", joinOr(req.Jurisdictions, "Not specified"))
	b.WriteString("## Compliance Scope\n")
	fmt.Fprintf(&b, "**Frameworks**: %s\n", joinOr(req.Frameworks, "Not specified"))
	fmt.Fprintf(&b, "**Focus Areas**: %s\n\n", joinOr(req.Scope, "General compliance"))
	b.WriteString("## Current Practices\n")
	fmt.Fprintf(&b, "%s\n\n", orElse(req.CurrentPractices, "Not provided"))
	b.WriteString("## Assessment Task\n")
	b.WriteString("Provide comprehensive compliance assessment following your analytical framework.\n")
	b.WriteString("Focus on:\n")
	b.WriteString("- Identifying all applicable regulations\n")
	b.WriteString("- Assessing current compliance status\n")
	b.WriteString("- Identifying gaps and risks\n")
	b.WriteString("- Providing prioritized remediation recommendations\n")
	b.WriteString("- Developing implementation roadmap\n\n")
	b.WriteString("Ensure recommendations are practical, prioritized, and include resource estimates.\n")
	return b.String()
}

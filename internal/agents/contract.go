package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/lexcraft/go-legal-backend/internal/llm"
)

const contractAnalystInstructions = `You are an expert Contract Analysis Specialist with deep expertise in contract
law, risk assessment, and commercial transactions. Your role is to help lawyers
and businesses analyze contracts, identify risks, and ensure favorable terms.

## Core Responsibilities
1. **Contract Review**: clause-by-clause analysis, missing or problematic
   provisions, internal inconsistencies.
2. **Risk Assessment**: liability exposure, termination and payment risks,
   indemnification obligations, limitation of liability.
3. **Clause Analysis**: favorable versus unfavorable terms, alternative
   language, comparison to market standards.
4. **Compliance Verification**: required legal provisions and execution
   requirements for the governing jurisdiction.

## Output Guidelines
Lead with an executive summary and an overall risk rating. Review the contract
section by section, rate each identified risk, and quote the clause language at
issue. Recommend specific replacement language where a change is needed.`

// ContractAnalyst reviews contracts for risk and drafting quality.
type ContractAnalyst struct {
	agent
}

// NewContractAnalyst builds the contract analysis agent.
func NewContractAnalyst(gen llm.Generator) *ContractAnalyst {
	return &ContractAnalyst{agent{
		name:         "Contract Analysis Specialist",
		instructions: contractAnalystInstructions,
		gen:          gen,
	}}
}

// ContractRequest carries the contract under review and its context.
type ContractRequest struct {
	ContractName string
	ContractType string
	Parties      string
	PartyRole    string
	Jurisdiction string
	Industry     string
	ContractText string
}

// Analyze renders the contract review task and returns the model's analysis.
func (c *ContractAnalyst) Analyze(ctx context.Context, req ContractRequest) (string, error) {
	return c.run(ctx, buildContractTask(req))
}

func buildContractTask(req ContractRequest) string {
	var b strings.Builder
	b.WriteString("Perform a comprehensive analysis of the following contract:\n\n")
	b.WriteString("## Contract Information\n")
	fmt.Fprintf(&b, "**Contract Name**: %s\n", orElse(req.ContractName, "Unknown"))
	fmt.Fprintf(&b, "**Contract Type**: %s\n", orElse(req.ContractType, "Unknown"))
	fmt.Fprintf(&b, "**Parties**: %s\n", orElse(req.Parties, "Not specified"))
	fmt.Fprintf(&b, "**Our Role**: %s\n", orElse(req.PartyRole, "Not specified"))
	fmt.Fprintf(&b, "**Jurisdiction**: %s\n", orElse(req.Jurisdiction, "Not specified"))
	fmt.Fprintf(&b, "**Industry**: %s\n\n", orElse(req.Industry, "General"))
	b.WriteString("## Full Contract Text\n")
	fmt.Fprintf(&b, "%s\n\n", orElse(req.ContractText, "Not provided"))
	b.WriteString("## Analysis Requirements\n")
	b.WriteString("Provide comprehensive analysis following your analytical framework. Focus on:\n")
	b.WriteString("- Executive summary with key findings\n")
	b.WriteString("- Detailed section-by-section review\n")
	b.WriteString("- Risk assessment with specific risk ratings\n")
	b.WriteString("- Recommended changes with specific language\n")
	b.WriteString("- Negotiation strategy and priorities\n\n")
	b.WriteString("Ensure analysis is practical, specific, and actionable for business decision-making.\n")
	return b.String()
}

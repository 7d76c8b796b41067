package agents

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lexcraft/go-legal-backend/internal/llm"
)

// capture returns a generator that records the prompt it receives and a
// pointer through which tests can read it back.
func capture(reply string) (*string, llm.Generator) {
	var prompt string
	gen := llm.Func(func(_ context.Context, p string) (string, error) {
		prompt = p
		return reply, nil
	})
	return &prompt, gen
}

func TestAgentRun_PrependsInstructions(t *testing.T) {
	prompt, gen := capture("out")
	a := agent{name: "Test Agent", instructions: "You are a test agent.", gen: gen}

	got, err := a.run(context.Background(), "Do the thing.")
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if got != "out" {
		t.Fatalf("run = %q, want out", got)
	}
	if !strings.HasPrefix(*prompt, "You are a test agent.") {
		t.Errorf("prompt should start with instructions, got %q", *prompt)
	}
	if !strings.HasSuffix(*prompt, "Do the thing.") {
		t.Errorf("prompt should end with the task, got %q", *prompt)
	}
	if !strings.Contains(*prompt, "\n\n") {
		t.Errorf("prompt should separate instructions from task with a blank line")
	}
}

func TestAgentRun_PropagatesGeneratorError(t *testing.T) {
	boom := errors.New("boom")
	a := agent{instructions: "x", gen: llm.Static{Err: boom}}

	if _, err := a.run(context.Background(), "task"); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestAgentName(t *testing.T) {
	_, gen := capture("")
	if got := NewResearcher(gen).Name(); got != "Case Law Research Specialist" {
		t.Errorf("Researcher name = %q", got)
	}
	if got := NewContractAnalyst(gen).Name(); got != "Contract Analysis Specialist" {
		t.Errorf("ContractAnalyst name = %q", got)
	}
	if got := NewComplianceAdvisor(gen).Name(); got != "Compliance Advisory Specialist" {
		t.Errorf("ComplianceAdvisor name = %q", got)
	}
	if got := NewDrafter(gen).Name(); got != "Legal Drafting Specialist" {
		t.Errorf("Drafter name = %q", got)
	}
	if got := NewLitigationStrategist(gen).Name(); got != "Litigation Strategy Specialist" {
		t.Errorf("LitigationStrategist name = %q", got)
	}
}

func TestOrElse(t *testing.T) {
	if got := orElse("value", "fallback"); got != "value" {
		t.Errorf("orElse(value) = %q", got)
	}
	if got := orElse("", "fallback"); got != "fallback" {
		t.Errorf("orElse(empty) = %q", got)
	}
	if got := orElse("   ", "fallback"); got != "fallback" {
		t.Errorf("orElse(blank) = %q", got)
	}
}

func TestJoinOr(t *testing.T) {
	if got := joinOr([]string{"GDPR", "HIPAA"}, "none"); got != "GDPR, HIPAA" {
		t.Errorf("joinOr = %q", got)
	}
	if got := joinOr([]string{" GDPR ", "", "  "}, "none"); got != "GDPR" {
		t.Errorf("joinOr should drop blank entries, got %q", got)
	}
	if got := joinOr(nil, "none"); got != "none" {
		t.Errorf("joinOr(nil) = %q", got)
	}
}

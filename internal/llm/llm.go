// Package llm provides the text-generation client used by the legal agents.
//
// The package defines a small Generator interface so that services and agents
// depend on the generation capability rather than on a concrete vendor SDK.
// Two kinds of implementation are provided:
//
//   - Client: calls the Gemini generateContent REST API over HTTP.
//   - Static / Func: local generators for development mode and tests.
//
// Usage:
//
//	gen := llm.NewClient(apiKey,
//		llm.WithModel("gemini-2.5-flash-lite"),
//		llm.WithTemperature(0.7),
//	)
//	text, err := gen.Generate(ctx, prompt)
package llm

import "context"

// Generator produces model output for a fully rendered prompt.
// Implementations must be safe for concurrent use.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Local Generator implementations used when AI_FAKE is enabled and in tests.

package llm

import "context"

// Static returns fixed output for every prompt. The server runs it in place
// of the remote client when no API key is configured.
type Static struct {
	Text string
	Err  error
}

// Generate returns the configured text or error, ignoring the prompt.
func (s Static) Generate(ctx context.Context, prompt string) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.Text, nil
}

// Func adapts an ordinary function to the Generator interface, in the manner
// of http.HandlerFunc. Tests use it to capture prompts.
type Func func(ctx context.Context, prompt string) (string, error)

// Generate calls f.
func (f Func) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

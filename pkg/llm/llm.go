package llm

import "context"

// Options tunes a single generation call. Zero values mean "provider default".
type Options struct {
	Temperature     float32
	MaxOutputTokens int
	// JSON asks providers that support it for a JSON-only reply.
	JSON bool
}

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// Implementations return the generated text; callers treat it as untrusted input.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string, opts Options) (string, error)
	Name() string
}

// Presets used across the service.
var (
	// Extraction is the free-text résumé extraction call.
	Extraction = Options{Temperature: 0.2, MaxOutputTokens: 2048}
	// Structured covers JSON replies: scoring and full-JSON extraction.
	Structured = Options{Temperature: 0.2, MaxOutputTokens: 4000, JSON: true}
	// Enhancement rewrites one résumé section.
	Enhancement = Options{Temperature: 0.7, MaxOutputTokens: 200}
)

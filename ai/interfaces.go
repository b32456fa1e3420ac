package ai

import "context"

// Request is a single chat-completion request. Generation parameters
// such as model, temperature and token limits belong to the provider
// and are fixed at construction time; a request only carries the
// prompts and the output-format hint.
type Request struct {
	// System is the optional system prompt.
	System string

	// Prompt is the user prompt.
	Prompt string

	// JSONMode asks the provider for a JSON-only response where the
	// backend supports it. Providers without native JSON mode ignore it;
	// callers must still run the response through DecodeJSON.
	JSONMode bool
}

// Provider is a single LLM chat-completion backend.
// Implementations must be safe for concurrent use.
type Provider interface {
	// Name identifies the provider in configuration and logs
	// (e.g. "google", "nvidia", "groq").
	Name() string

	// Complete sends the request and returns the raw response text.
	Complete(ctx context.Context, req Request) (string, error)
}

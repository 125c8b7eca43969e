package llm

import (
	"context"
	"errors"
)

// Client abstracts chat-completion LLM providers for session analysis.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompletionRequest captures one model invocation: a fixed system instruction,
// the user content, and the sampling temperature. The returned text is free
// form and not guaranteed to be valid structured data.
type CompletionRequest struct {
	System      string
	User        string
	Temperature float32
}

// ErrNotConfigured is returned when no provider credentials are available.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is a stub implementation used when no provider is wired.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	_ = ctx
	_ = req
	return "", ErrNotConfigured
}

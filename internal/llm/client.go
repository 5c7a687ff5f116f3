// Package llm provides clients for the external text-generation APIs that
// codelens delegates analysis to. The rest of the tool treats a provider as
// an opaque Client so tests can substitute a deterministic stub.
package llm

import (
	"context"
	"errors"
	"time"
)

// Client is the interface all providers implement.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ErrNoAPIKey is returned when a client is used without credentials.
var ErrNoAPIKey = errors.New("API key not configured")

const (
	defaultMaxTokens = 4096
	defaultTimeout   = 2 * time.Minute

	// Low temperature keeps structured output stable.
	defaultTemperature = 0.1

	// 429 handling: up to 3 retries with exponential backoff.
	maxRetries = 3
)

func backoff(attempt int) time.Duration {
	return time.Duration(1<<uint(attempt-1)) * time.Second
}

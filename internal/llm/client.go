package llm

import (
	"context"
	"time"
)

// Client defines the interface for LLM advice providers.
type Client interface {
	Advise(ctx context.Context, query string) (AdviceResponse, error)
}

// AdviceResponse contains the LLM's generated advice text.
type AdviceResponse struct {
	Advice string
}

// Config holds configuration for the LLM advice generator.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string // endpoint override, used in tests
	MaxRetries  int
	RetryDelay  time.Duration
	CacheTTL    time.Duration
	RateLimit   int
	Temperature float64
	MaxTokens   int
}

// systemPrompt frames every advice request.
const systemPrompt = "You are a helpful personal finance assistant. " +
	"Provide clear, practical financial advice. Be concise but comprehensive. " +
	"Always remind users to consult with financial professionals for major decisions."

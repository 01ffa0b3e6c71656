// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/harperdean/pocketwise/internal/model"
)

// SentimentAnalyzer is the optional polarity signal consumed by the
// synthesis engine. Implementations may be unavailable; callers must
// treat any error as non-fatal.
type SentimentAnalyzer interface {
	Analyze(ctx context.Context, text string) (model.Sentiment, error)
}

// AdviceGenerator is the optional generative-text signal consumed by the
// synthesis engine. An error or empty result triggers the fallback path.
type AdviceGenerator interface {
	Advise(ctx context.Context, query string) (string, error)
}

// HistoryStore defines the contract for session transcript persistence.
// The synthesis engine never depends on it; only the surrounding shell does.
type HistoryStore interface {
	SaveMessage(ctx context.Context, msg *model.ChatMessage) error
	GetHistory(ctx context.Context, sessionID string, limit int) ([]model.ChatMessage, error)
	ClearHistory(ctx context.Context, sessionID string) error
	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for external calls.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// AdviceSuggestion is a cached advice result keyed by query hash.
type AdviceSuggestion struct {
	Query  string
	Advice string
}

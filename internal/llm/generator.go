package llm

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/harperdean/pocketwise/internal/common"
	"github.com/harperdean/pocketwise/internal/service"
)

// Generator implements the service.AdviceGenerator interface using LLM APIs.
// It wraps a provider client with caching, rate limiting, and optional
// retry behavior.
type Generator struct {
	client      Client
	cache       *adviceCache
	logger      *slog.Logger
	rateLimiter *rateLimiter
	retryOpts   service.RetryOptions
}

// NewGenerator creates a new LLM-based advice generator.
func NewGenerator(cfg Config, logger *slog.Logger) (*Generator, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return newGeneratorWithClient(client, cfg, logger), nil
}

// newGeneratorWithClient wires the generator around an existing client.
func newGeneratorWithClient(client Client, cfg Config, logger *slog.Logger) *Generator {
	retryOpts := service.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}

	// A single attempt by default: synthesis calls each external signal
	// at most once per request.
	if retryOpts.MaxAttempts == 0 {
		retryOpts.MaxAttempts = 1
	}
	if retryOpts.InitialDelay == 0 {
		retryOpts.InitialDelay = time.Second
	}

	return &Generator{
		client:      client,
		cache:       newAdviceCache(cfg.CacheTTL),
		logger:      logger,
		retryOpts:   retryOpts,
		rateLimiter: newRateLimiter(cfg.RateLimit),
	}
}

// Advise generates advice text for a query. An empty result is surfaced as
// ErrEmptyAdvice so callers can take their fallback path.
func (g *Generator) Advise(ctx context.Context, query string) (string, error) {
	key := queryHash(query)
	if suggestion, found := g.cache.get(key); found {
		g.logger.Debug("cache hit for advice query", "query_hash", key)
		return suggestion.Advice, nil
	}

	if err := g.rateLimiter.wait(ctx); err != nil {
		return "", err
	}

	var resp AdviceResponse
	err := common.WithRetry(ctx, func() error {
		var callErr error
		resp, callErr = g.client.Advise(ctx, query)
		return callErr
	}, g.retryOpts)
	if err != nil {
		return "", err
	}

	advice := strings.TrimSpace(resp.Advice)
	if advice == "" {
		return "", common.ErrEmptyAdvice
	}

	g.cache.set(key, service.AdviceSuggestion{
		Query:  query,
		Advice: advice,
	})

	return advice, nil
}

// Close releases the generator's background resources.
func (g *Generator) Close() {
	g.cache.Close()
	g.rateLimiter.Close()
}

// queryHash produces a stable cache key for a query.
func queryHash(query string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(query))))
	return fmt.Sprintf("%x", sum)
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"github.com/harperdean/pocketwise/internal/common"
	"github.com/harperdean/pocketwise/internal/config"
	"github.com/harperdean/pocketwise/internal/engine"
	"github.com/harperdean/pocketwise/internal/llm"
	"github.com/harperdean/pocketwise/internal/sentiment"
	"github.com/harperdean/pocketwise/internal/service"
	"github.com/harperdean/pocketwise/internal/storage"
)

// initStorage initializes the history store with proper path expansion.
func initStorage(ctx context.Context) (service.HistoryStore, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/pocketwise/pocketwise.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	common.LogDebug("history store ready", common.Fields{"path": dbPath})

	return store, nil
}

// initSynthesizer wires the synthesis engine from configuration. Signals
// without credentials get null implementations; the engine works offline.
// The returned cleanup releases generator resources and must always be
// called.
func initSynthesizer(ctx context.Context, logger *slog.Logger) (*engine.Synthesizer, func(), error) {
	cleanup := func() {}

	var adviceSignal service.AdviceGenerator
	provider := viper.GetString("llm.provider")
	if provider != "" {
		generator, err := llm.NewGenerator(llm.Config{
			Provider:    provider,
			APIKey:      viper.GetString("llm.api_key"),
			Model:       viper.GetString("llm.model"),
			Temperature: viper.GetFloat64("llm.temperature"),
			MaxTokens:   viper.GetInt("llm.max_tokens"),
			RateLimit:   viper.GetInt("llm.rate_limit"),
			CacheTTL:    viper.GetDuration("llm.cache_ttl"),
			MaxRetries:  viper.GetInt("llm.max_retries"),
			RetryDelay:  viper.GetDuration("llm.retry_delay"),
		}, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create advice generator: %w", err)
		}
		adviceSignal = generator
		cleanup = generator.Close
	} else {
		logger.Debug("no LLM provider configured, advice falls back to canned responses")
	}

	sentimentSignal, err := initSentiment(ctx, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	synth := engine.New(sentimentSignal, adviceSignal, engine.Config{
		SignalTimeout: signalTimeout(),
	}, logger)

	return synth, cleanup, nil
}

// initSentiment builds the sentiment signal from configuration, degrading
// to the null analyzer without credentials.
func initSentiment(ctx context.Context, logger *slog.Logger) (service.SentimentAnalyzer, error) {
	credsPath := viper.GetString("sentiment.credentials")
	if credsPath == "" {
		logger.Debug("no sentiment credentials configured, label will be unknown")
		return sentiment.NewNullAnalyzer(), nil
	}

	analyzer, err := sentiment.NewGoogleAnalyzer(ctx, sentiment.Config{
		ServiceAccountPath: config.ExpandPath(credsPath),
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create sentiment analyzer: %w", err)
	}
	return analyzer, nil
}

func signalTimeout() time.Duration {
	timeout := viper.GetDuration("engine.signal_timeout")
	if timeout <= 0 {
		timeout = engine.DefaultSignalTimeout
	}
	return timeout
}

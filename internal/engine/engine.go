// Package engine orchestrates chat response synthesis. It composes amount
// extraction, the optional sentiment signal, the optional advice signal,
// and the deterministic fallback advisor into one structured reply,
// degrading gracefully as external signals become unavailable.
package engine

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/harperdean/pocketwise/internal/advisor"
	"github.com/harperdean/pocketwise/internal/common"
	"github.com/harperdean/pocketwise/internal/llm"
	"github.com/harperdean/pocketwise/internal/model"
	"github.com/harperdean/pocketwise/internal/money"
	"github.com/harperdean/pocketwise/internal/sentiment"
	"github.com/harperdean/pocketwise/internal/service"
)

// DefaultSignalTimeout bounds each external signal call per request.
const DefaultSignalTimeout = 5 * time.Second

// Config holds configuration for the synthesizer.
type Config struct {
	// SignalTimeout bounds each external collaborator call. Defaults to
	// DefaultSignalTimeout.
	SignalTimeout time.Duration
}

// Synthesizer builds structured replies from raw user text. It holds no
// per-request state; concurrent Synthesize calls are safe.
type Synthesizer struct {
	sentimentSignal service.SentimentAnalyzer
	adviceSignal    service.AdviceGenerator
	fallback        *advisor.Advisor
	logger          *slog.Logger
	now             func() time.Time
	signalTimeout   time.Duration
}

// New creates a synthesizer with its collaborators injected. Nil
// collaborators are replaced with null implementations, so the synthesizer
// never branches on configuration state.
func New(sentimentSignal service.SentimentAnalyzer, adviceSignal service.AdviceGenerator, cfg Config, logger *slog.Logger) *Synthesizer {
	if sentimentSignal == nil {
		sentimentSignal = sentiment.NewNullAnalyzer()
	}
	if adviceSignal == nil {
		adviceSignal = llm.NewNullGenerator()
	}
	if logger == nil {
		logger = slog.Default()
	}

	timeout := cfg.SignalTimeout
	if timeout <= 0 {
		timeout = DefaultSignalTimeout
	}

	return &Synthesizer{
		sentimentSignal: sentimentSignal,
		adviceSignal:    adviceSignal,
		fallback:        advisor.New(nil),
		logger:          logger,
		now:             time.Now,
		signalTimeout:   timeout,
	}
}

// Synthesize produces a reply for raw user text. It always succeeds: the
// reply text is never empty, and no collaborator failure propagates to the
// caller. Each external signal is attempted at most once.
func (s *Synthesizer) Synthesize(ctx context.Context, rawText string) model.ChatReply {
	reply := model.ChatReply{
		Timestamp: s.now(),
		Amounts:   []float64{},
	}

	text := strings.TrimSpace(rawText)
	if text == "" {
		reply.Text = s.fallback.Fallback(rawText)
		reply.Source = model.SourceFallback
		reply.Sentiment = model.Sentiment{Label: model.SentimentUnknown}
		return reply
	}

	reply.Amounts = money.ExtractAmounts(text)

	var sentimentErr error
	reply.Sentiment, sentimentErr = s.analyzeSentiment(ctx, text)

	var adviceErr error
	reply.Text, reply.Source, adviceErr = s.generateAdvice(ctx, text)

	// The amount summary belongs to the generative path only; fallback
	// responses already address amounts in their own terms.
	if reply.Source == model.SourceGenerative && len(reply.Amounts) > 0 {
		reply.Text += "\n\nI noticed these amounts in your question: " + formatAmounts(reply.Amounts)
	}

	reply.Error = collaboratorFailure(sentimentErr, adviceErr)

	return reply
}

// analyzeSentiment calls the sentiment signal with a bounded timeout. Any
// failure is recovered locally into an unknown or error label.
func (s *Synthesizer) analyzeSentiment(ctx context.Context, text string) (model.Sentiment, error) {
	signalCtx, cancel := context.WithTimeout(ctx, s.signalTimeout)
	defer cancel()

	result, err := s.sentimentSignal.Analyze(signalCtx, text)
	if err == nil {
		return result, nil
	}

	if errors.Is(err, common.ErrSignalUnavailable) {
		s.logger.Debug("sentiment signal unavailable")
		return model.Sentiment{Label: model.SentimentUnknown}, nil
	}

	s.logger.Warn("sentiment analysis failed", "error", err)
	return model.Sentiment{Label: model.SentimentError}, err
}

// generateAdvice calls the advice signal with a bounded timeout. On any
// failure, unconfigured state, or empty result it takes the fallback path;
// exactly one of the two sources produces the base text.
func (s *Synthesizer) generateAdvice(ctx context.Context, text string) (string, model.ReplySource, error) {
	signalCtx, cancel := context.WithTimeout(ctx, s.signalTimeout)
	defer cancel()

	advice, err := s.adviceSignal.Advise(signalCtx, text)
	if err == nil && strings.TrimSpace(advice) != "" {
		return advice, model.SourceGenerative, nil
	}

	switch {
	case err == nil:
		s.logger.Debug("advice signal returned empty text, using fallback")
	case errors.Is(err, common.ErrSignalUnavailable):
		s.logger.Debug("advice signal unavailable, using fallback")
		err = nil
	case errors.Is(err, common.ErrEmptyAdvice):
		// Empty advice is an expected fallback transition, not a failure.
		s.logger.Debug("advice signal returned empty advice, using fallback")
		err = nil
	default:
		s.logger.Warn("advice generation failed, using fallback", "error", err)
	}

	return s.fallback.Fallback(text), model.SourceFallback, err
}

// formatAmounts renders extracted amounts as a comma-separated currency list.
func formatAmounts(amounts []float64) string {
	formatted := make([]string, len(amounts))
	for i, amount := range amounts {
		formatted[i] = money.FormatCurrency(amount)
	}
	return strings.Join(formatted, ", ")
}

// collaboratorFailure summarizes non-fatal signal failures for the reply's
// error indicator. Unavailable signals are expected and not reported.
func collaboratorFailure(errs ...error) string {
	for _, err := range errs {
		if err != nil {
			return err.Error()
		}
	}
	return ""
}

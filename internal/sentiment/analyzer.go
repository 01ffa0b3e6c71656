// Package sentiment provides polarity analysis of user text. The analyzer
// is an optional collaborator: environments without credentials inject the
// null implementation and the engine degrades to an unknown label.
package sentiment

import (
	"context"

	"github.com/harperdean/pocketwise/internal/common"
	"github.com/harperdean/pocketwise/internal/model"
)

// NullAnalyzer is the always-unavailable sentiment analyzer. Injecting it
// keeps the synthesis engine free of nil checks.
type NullAnalyzer struct{}

// NewNullAnalyzer creates an analyzer that reports the signal unavailable.
func NewNullAnalyzer() *NullAnalyzer {
	return &NullAnalyzer{}
}

// Analyze always returns an unknown sentiment and ErrSignalUnavailable.
func (a *NullAnalyzer) Analyze(_ context.Context, _ string) (model.Sentiment, error) {
	return model.Sentiment{Label: model.SentimentUnknown}, common.ErrSignalUnavailable
}

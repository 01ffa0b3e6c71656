package sentiment

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperdean/pocketwise/internal/model"
)

func newTestAnalyzer(t *testing.T, handler http.HandlerFunc) *GoogleAnalyzer {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	analyzer, err := NewGoogleAnalyzer(context.Background(), Config{Endpoint: server.URL}, slog.Default())
	require.NoError(t, err)

	return analyzer
}

func TestGoogleAnalyzerAnalyze(t *testing.T) {
	tests := []struct {
		name      string
		score     float64
		magnitude float64
		wantLabel model.SentimentLabel
	}{
		{name: "positive score", score: 0.8, magnitude: 0.9, wantLabel: model.SentimentPositive},
		{name: "negative score", score: -0.6, magnitude: 0.7, wantLabel: model.SentimentNegative},
		{name: "neutral score", score: 0.1, magnitude: 0.2, wantLabel: model.SentimentNeutral},
		{name: "boundary positive threshold is neutral", score: 0.25, magnitude: 0.1, wantLabel: model.SentimentNeutral},
		{name: "boundary negative threshold is neutral", score: -0.25, magnitude: 0.1, wantLabel: model.SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := newTestAnalyzer(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(map[string]any{
					"documentSentiment": map[string]any{
						"score":     tt.score,
						"magnitude": tt.magnitude,
					},
				})
			})

			got, err := analyzer.Analyze(context.Background(), "some financial worry")
			require.NoError(t, err)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.InDelta(t, tt.score, got.Score, 0.0001)
			assert.InDelta(t, tt.magnitude, got.Magnitude, 0.0001)
		})
	}
}

func TestGoogleAnalyzerAPIError(t *testing.T) {
	analyzer := newTestAnalyzer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error": {"code": 500}}`, http.StatusInternalServerError)
	})

	got, err := analyzer.Analyze(context.Background(), "anything")
	require.Error(t, err)
	assert.Equal(t, model.SentimentError, got.Label)
}

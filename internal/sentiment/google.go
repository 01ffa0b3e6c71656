package sentiment

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	language "google.golang.org/api/language/v1"
	"google.golang.org/api/option"

	"github.com/harperdean/pocketwise/internal/model"
)

// Config holds settings for the Google Natural Language analyzer.
type Config struct {
	// ServiceAccountPath points to a service account JSON key. When empty,
	// application default credentials are used.
	ServiceAccountPath string
	// Endpoint overrides the API endpoint, used in tests.
	Endpoint string
}

// GoogleAnalyzer analyzes text polarity via the Google Cloud Natural
// Language API.
type GoogleAnalyzer struct {
	service *language.Service
	logger  *slog.Logger
}

// NewGoogleAnalyzer creates an analyzer backed by the Natural Language API.
func NewGoogleAnalyzer(ctx context.Context, cfg Config, logger *slog.Logger) (*GoogleAnalyzer, error) {
	opts, err := clientOptions(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc, err := language.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create language service: %w", err)
	}

	return &GoogleAnalyzer{
		service: svc,
		logger:  logger,
	}, nil
}

// Analyze returns the sentiment of the text with its label derived from the
// polarity score. Callers must treat any error as a recoverable signal loss.
func (a *GoogleAnalyzer) Analyze(ctx context.Context, text string) (model.Sentiment, error) {
	req := &language.AnalyzeSentimentRequest{
		Document: &language.Document{
			Content: text,
			Type:    "PLAIN_TEXT",
		},
	}

	resp, err := a.service.Documents.AnalyzeSentiment(req).Context(ctx).Do()
	if err != nil {
		return model.Sentiment{Label: model.SentimentError}, fmt.Errorf("sentiment analysis failed: %w", err)
	}

	doc := resp.DocumentSentiment
	if doc == nil {
		return model.Sentiment{Label: model.SentimentError}, fmt.Errorf("no document sentiment in response")
	}

	result := model.Sentiment{
		Label:     model.LabelForScore(doc.Score),
		Score:     doc.Score,
		Magnitude: doc.Magnitude,
	}

	a.logger.Debug("sentiment analyzed",
		"label", result.Label,
		"score", result.Score,
		"magnitude", result.Magnitude)

	return result, nil
}

// clientOptions builds API client options from the config.
func clientOptions(ctx context.Context, cfg Config) ([]option.ClientOption, error) {
	var opts []option.ClientOption

	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint), option.WithoutAuthentication())
		return opts, nil
	}

	if cfg.ServiceAccountPath != "" {
		jsonKey, err := os.ReadFile(cfg.ServiceAccountPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}

		creds, err := google.CredentialsFromJSON(ctx, jsonKey, language.CloudLanguageScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account key: %w", err)
		}

		httpClient := oauth2.NewClient(ctx, creds.TokenSource)
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	return opts, nil
}

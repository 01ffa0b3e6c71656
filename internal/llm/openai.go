package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/harperdean/pocketwise/internal/common"
)

const openAIDefaultURL = "https://api.openai.com/v1/chat/completions"

// openAIClient implements the Client interface for the OpenAI API.
type openAIClient struct {
	httpClient  *http.Client
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	maxTokens   int
}

// newOpenAIClient creates a new OpenAI API client.
func newOpenAIClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key: %w", common.ErrMissingConfig)
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-3.5-turbo"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.7
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 500
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = openAIDefaultURL
	}

	return &openAIClient{
		apiKey:      cfg.APIKey,
		model:       model,
		baseURL:     baseURL,
		temperature: temperature,
		maxTokens:   maxTokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// Advise sends an advice request to OpenAI.
func (c *openAIClient) Advise(ctx context.Context, query string) (AdviceResponse, error) {
	requestBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{
				"role":    "system",
				"content": systemPrompt,
			},
			{
				"role":    "user",
				"content": query,
			},
		},
		"temperature": c.temperature,
		"max_tokens":  c.maxTokens,
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return AdviceResponse{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(string(jsonBody)))
	if err != nil {
		return AdviceResponse{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return AdviceResponse{}, &common.RetryableError{
			Err:       fmt.Errorf("request failed: %w", err),
			Retryable: true,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return AdviceResponse{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return AdviceResponse{}, fmt.Errorf("%w: %s", common.ErrRateLimit, string(body))
	}

	if resp.StatusCode != http.StatusOK {
		// Server-side failures are worth another attempt; client errors
		// are not.
		return AdviceResponse{}, &common.RetryableError{
			Err:       fmt.Errorf("OpenAI API error (status %d): %s", resp.StatusCode, string(body)),
			Retryable: resp.StatusCode >= http.StatusInternalServerError,
		}
	}

	var response openAIResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return AdviceResponse{}, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(response.Choices) == 0 {
		return AdviceResponse{}, fmt.Errorf("no completion choices returned")
	}

	return AdviceResponse{Advice: response.Choices[0].Message.Content}, nil
}

// openAIResponse represents the OpenAI API response structure.
type openAIResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
		Index        int    `json:"index"`
	} `json:"choices"`
}

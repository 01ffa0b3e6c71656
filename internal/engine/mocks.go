package engine

import (
	"context"
	"sync"

	"github.com/harperdean/pocketwise/internal/model"
)

// MockAnalyzer is a test implementation of service.SentimentAnalyzer.
type MockAnalyzer struct {
	Err    error
	Result model.Sentiment
	Delay  func(ctx context.Context) error
	calls  []string
	mu     sync.Mutex
}

// Analyze returns the scripted sentiment or error, recording the call.
func (m *MockAnalyzer) Analyze(ctx context.Context, text string) (model.Sentiment, error) {
	m.mu.Lock()
	m.calls = append(m.calls, text)
	m.mu.Unlock()

	if m.Delay != nil {
		if err := m.Delay(ctx); err != nil {
			return model.Sentiment{Label: model.SentimentError}, err
		}
	}

	if m.Err != nil {
		return model.Sentiment{Label: model.SentimentError}, m.Err
	}
	return m.Result, nil
}

// Calls returns the texts passed to Analyze so far.
func (m *MockAnalyzer) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// MockAdviceGenerator is a test implementation of service.AdviceGenerator.
type MockAdviceGenerator struct {
	Err    error
	Advice string
	Delay  func(ctx context.Context) error
	calls  []string
	mu     sync.Mutex
}

// Advise returns the scripted advice or error, recording the call.
func (m *MockAdviceGenerator) Advise(ctx context.Context, query string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, query)
	m.mu.Unlock()

	if m.Delay != nil {
		if err := m.Delay(ctx); err != nil {
			return "", err
		}
	}

	if m.Err != nil {
		return "", m.Err
	}
	return m.Advice, nil
}

// Calls returns the queries passed to Advise so far.
func (m *MockAdviceGenerator) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

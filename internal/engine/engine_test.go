package engine

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperdean/pocketwise/internal/common"
	"github.com/harperdean/pocketwise/internal/model"
)

func TestSynthesizeGenerativePath(t *testing.T) {
	analyzer := &MockAnalyzer{Result: model.Sentiment{Label: model.SentimentPositive, Score: 0.6}}
	advice := &MockAdviceGenerator{Advice: "Index funds are a solid starting point."}

	s := New(analyzer, advice, Config{}, nil)
	reply := s.Synthesize(context.Background(), "should I invest $5000 in stocks and save $2,500?")

	assert.Equal(t, model.SourceGenerative, reply.Source)
	assert.Contains(t, reply.Text, "Index funds are a solid starting point.")
	assert.Contains(t, reply.Text, "I noticed these amounts in your question: $5,000.00, $2,500.00")
	assert.Equal(t, model.SentimentPositive, reply.Sentiment.Label)
	assert.Equal(t, []float64{5000, 2500}, reply.Amounts)
	assert.Empty(t, reply.Error)
	assert.False(t, reply.Timestamp.IsZero())
}

func TestSynthesizeFallbackWhenAdviceFails(t *testing.T) {
	analyzer := &MockAnalyzer{Result: model.Sentiment{Label: model.SentimentNeutral}}
	advice := &MockAdviceGenerator{Err: errors.New("api down")}

	s := New(analyzer, advice, Config{}, nil)
	reply := s.Synthesize(context.Background(), "help me plan my budget")

	assert.Equal(t, model.SourceFallback, reply.Source)
	assert.Contains(t, reply.Text, "50/30/20")
	assert.NotEmpty(t, reply.Error)
}

func TestSynthesizeFallbackWhenAdviceEmpty(t *testing.T) {
	advice := &MockAdviceGenerator{Advice: "   "}

	s := New(nil, advice, Config{}, nil)
	reply := s.Synthesize(context.Background(), "help me plan my budget")

	assert.Equal(t, model.SourceFallback, reply.Source)
	assert.NotEmpty(t, reply.Text)
	assert.Empty(t, reply.Error)
}

func TestSynthesizeEmptyAdviceErrorIsNotDegraded(t *testing.T) {
	advice := &MockAdviceGenerator{Err: common.ErrEmptyAdvice}

	s := New(nil, advice, Config{}, nil)
	reply := s.Synthesize(context.Background(), "help me plan my budget")

	assert.Equal(t, model.SourceFallback, reply.Source)
	assert.Contains(t, reply.Text, "50/30/20")
	assert.Empty(t, reply.Error)
}

func TestSynthesizeNoAmountSummaryOnFallback(t *testing.T) {
	advice := &MockAdviceGenerator{Err: errors.New("api down")}

	s := New(nil, advice, Config{}, nil)
	reply := s.Synthesize(context.Background(), "a loan of $10,000 please")

	assert.Equal(t, model.SourceFallback, reply.Source)
	assert.Equal(t, []float64{10000}, reply.Amounts)
	assert.NotContains(t, reply.Text, "I noticed these amounts")
}

func TestSynthesizeAllSignalsUnavailable(t *testing.T) {
	// Nil collaborators degrade to null implementations.
	s := New(nil, nil, Config{}, nil)

	inputs := []string{
		"how do I get out of debt?",
		"random text with no topic",
		"$100 $200 $300",
	}

	for _, input := range inputs {
		reply := s.Synthesize(context.Background(), input)
		assert.NotEmpty(t, reply.Text, "input %q", input)
		assert.Equal(t, model.SourceFallback, reply.Source)
		assert.Equal(t, model.SentimentUnknown, reply.Sentiment.Label)
		assert.Empty(t, reply.Error)
	}
}

func TestSynthesizeIdempotentFallback(t *testing.T) {
	s := New(nil, nil, Config{}, nil)

	first := s.Synthesize(context.Background(), "saving for retirement")
	second := s.Synthesize(context.Background(), "saving for retirement")
	assert.Equal(t, first.Text, second.Text)
}

func TestSynthesizeSentimentErrorLabel(t *testing.T) {
	analyzer := &MockAnalyzer{Err: errors.New("quota exceeded")}
	advice := &MockAdviceGenerator{Advice: "Some advice."}

	s := New(analyzer, advice, Config{}, nil)
	reply := s.Synthesize(context.Background(), "am I doing okay financially?")

	assert.Equal(t, model.SentimentError, reply.Sentiment.Label)
	// Sentiment failure must not derail the reply.
	assert.Equal(t, model.SourceGenerative, reply.Source)
	assert.NotEmpty(t, reply.Error)
}

func TestSynthesizeEmptyInput(t *testing.T) {
	analyzer := &MockAnalyzer{Result: model.Sentiment{Label: model.SentimentPositive}}
	advice := &MockAdviceGenerator{Advice: "should not be called"}

	s := New(analyzer, advice, Config{}, nil)

	for _, input := range []string{"", "   ", "\n\t"} {
		reply := s.Synthesize(context.Background(), input)
		assert.NotEmpty(t, reply.Text)
		assert.Equal(t, model.SourceFallback, reply.Source)
		assert.Empty(t, reply.Amounts)
		assert.Equal(t, model.SentimentUnknown, reply.Sentiment.Label)
	}

	// Empty input short-circuits before any external call.
	assert.Empty(t, analyzer.Calls())
	assert.Empty(t, advice.Calls())
}

func TestSynthesizeStalledSignalTimesOut(t *testing.T) {
	block := func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}
	analyzer := &MockAnalyzer{Delay: block}
	advice := &MockAdviceGenerator{Delay: block}

	s := New(analyzer, advice, Config{SignalTimeout: 20 * time.Millisecond}, nil)

	start := time.Now()
	reply := s.Synthesize(context.Background(), "budget advice please")
	elapsed := time.Since(start)

	assert.Less(t, elapsed, 2*time.Second)
	assert.Equal(t, model.SourceFallback, reply.Source)
	assert.Equal(t, model.SentimentError, reply.Sentiment.Label)
	assert.NotEmpty(t, reply.Text)
}

func TestSynthesizeCallerCancellation(t *testing.T) {
	block := func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}
	advice := &MockAdviceGenerator{Delay: block}

	ctx, cancel := context.WithCancel(context.Background())
	s := New(nil, advice, Config{}, nil)

	var wg sync.WaitGroup
	var reply model.ChatReply
	wg.Add(1)
	go func() {
		defer wg.Done()
		reply = s.Synthesize(ctx, "loan help")
	}()

	cancel()
	wg.Wait()

	assert.Equal(t, model.SourceFallback, reply.Source)
	assert.NotEmpty(t, reply.Text)
}

func TestSynthesizeConcurrentRequests(t *testing.T) {
	s := New(nil, &MockAdviceGenerator{Advice: "Generated advice."}, Config{}, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reply := s.Synthesize(context.Background(), "invest $1,000 wisely")
			assert.NotEmpty(t, reply.Text)
			assert.Equal(t, []float64{1000}, reply.Amounts)
		}()
	}
	wg.Wait()
}

func TestSynthesizeGenericFallbackEchoesQuery(t *testing.T) {
	s := New(nil, nil, Config{}, nil)

	query := "what about my pet iguana"
	reply := s.Synthesize(context.Background(), query)

	require.True(t, strings.Contains(reply.Text, query))
}

package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperdean/pocketwise/internal/engine"
	"github.com/harperdean/pocketwise/internal/model"
)

// recordingStore captures saved messages for assertions.
type recordingStore struct {
	saved []model.ChatMessage
}

func (s *recordingStore) SaveMessage(_ context.Context, msg *model.ChatMessage) error {
	s.saved = append(s.saved, *msg)
	return nil
}

func (s *recordingStore) GetHistory(_ context.Context, _ string, _ int) ([]model.ChatMessage, error) {
	return s.saved, nil
}

func (s *recordingStore) ClearHistory(_ context.Context, _ string) error {
	s.saved = nil
	return nil
}

func (s *recordingStore) Migrate(_ context.Context) error { return nil }
func (s *recordingStore) Close() error                    { return nil }

func TestPersistExchange(t *testing.T) {
	store := &recordingStore{}
	reply := model.ChatReply{
		Text:      "Some advice.",
		Sentiment: model.Sentiment{Label: model.SentimentNeutral},
		Amounts:   []float64{100},
		Timestamp: time.Now(),
	}

	persistExchange(context.Background(), store, "s1", "spend $100?", reply)
	require.Len(t, store.saved, 2)

	assert.Equal(t, model.RoleUser, store.saved[0].Role)
	assert.Equal(t, "spend $100?", store.saved[0].Text)
	assert.Equal(t, []float64{100}, store.saved[0].Amounts)

	assert.Equal(t, model.RoleAssistant, store.saved[1].Role)
	assert.Equal(t, "Some advice.", store.saved[1].Text)
	assert.Equal(t, model.SentimentNeutral, store.saved[1].Sentiment)
}

func TestPersistExchangeNilStoreIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		persistExchange(context.Background(), nil, "", "hi", model.ChatReply{})
	})
}

// failingStore errors on every save.
type failingStore struct {
	recordingStore
}

func (s *failingStore) SaveMessage(_ context.Context, _ *model.ChatMessage) error {
	return errors.New("disk full")
}

func TestRunChatOnceSurvivesPersistFailure(t *testing.T) {
	synth := engine.New(nil, nil, engine.Config{}, nil)

	err := runChatOnce(context.Background(), synth, &failingStore{}, "s1", "how do I budget?")
	assert.NoError(t, err)
}

func TestRunChatOnceRejectsEmptyMessage(t *testing.T) {
	synth := engine.New(nil, nil, engine.Config{}, nil)

	err := runChatOnce(context.Background(), synth, nil, "", "   ")
	require.Error(t, err)
}

package model

import "time"

// MessageRole identifies who produced a chat message.
type MessageRole string

// Message role constants.
const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// ChatMessage is a single persisted entry in a session transcript.
// The synthesis core never touches these; only the surrounding shell
// reads and writes them.
type ChatMessage struct {
	CreatedAt time.Time
	SessionID string
	Role      MessageRole
	Text      string
	Sentiment SentimentLabel
	ID        int64
	Amounts   []float64
}

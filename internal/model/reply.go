// Package model defines the core domain models used throughout the application.
package model

import "time"

// ReplySource indicates which path produced the reply text.
type ReplySource string

// Reply source constants.
const (
	// SourceGenerative means the advice generator produced the base text.
	SourceGenerative ReplySource = "GENERATIVE"
	// SourceFallback means the deterministic fallback advisor produced it.
	SourceFallback ReplySource = "FALLBACK"
)

// ChatReply is the structured result of a single synthesis call.
type ChatReply struct {
	Timestamp time.Time
	Text      string
	Error     string // non-fatal collaborator failure, empty when clean
	Source    ReplySource
	Sentiment Sentiment
	Amounts   []float64
}

// ValidationFlags records which financial patterns are present in a text.
// The three flags are computed independently.
type ValidationFlags struct {
	HasAmount     bool
	HasPercentage bool
	HasDate       bool
}

package llm

import (
	"context"

	"github.com/harperdean/pocketwise/internal/common"
)

// NullGenerator is the always-unavailable advice generator, satisfying
// service.AdviceGenerator in environments without a configured provider.
type NullGenerator struct{}

// NewNullGenerator creates a generator that reports the signal unavailable.
func NewNullGenerator() *NullGenerator {
	return &NullGenerator{}
}

// Advise always fails with ErrSignalUnavailable.
func (g *NullGenerator) Advise(_ context.Context, _ string) (string, error) {
	return "", common.ErrSignalUnavailable
}

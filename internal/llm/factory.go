package llm

import (
	"fmt"
	"strings"

	"github.com/harperdean/pocketwise/internal/common"
)

// NewClient creates a raw LLM client based on the provided configuration.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return newOpenAIClient(cfg)
	case "anthropic":
		return newAnthropicClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q: %w", cfg.Provider, common.ErrInvalidConfig)
	}
}

package llm

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Client sends a single system + user prompt and returns the text reply.
type Client interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Config holds LLM client configuration.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	MaxRetries  int
	RetryDelay  time.Duration
	Timeout     time.Duration
	RateLimit   int
	Temperature float64
	MaxTokens   int
}

// NewClient creates the client for cfg.Provider.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "anthropic":
		return newAnthropicClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}

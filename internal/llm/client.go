package llm

import (
	"context"
	"fmt"
)

// Prompt is a single completion request: a system instruction, a user query,
// and generation knobs. WantJSON asks the provider to hint the model toward
// syntactically valid JSON where the vendor supports it.
type Prompt struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int32
	WantJSON    bool
}

// Client abstracts the completion API so generators can be tested against a
// fake and the vendor can be swapped by configuration. Close releases the
// provider connection, if it holds one.
type Client interface {
	Complete(ctx context.Context, p Prompt) (string, error)
	Close() error
}

// Settings selects and configures a concrete provider.
type Settings struct {
	Provider string // "gemini" or "openai"
	Model    string
	APIKey   string
}

func New(cfg Settings) (Client, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGeminiClient(cfg)
	case "openai":
		return NewOpenAIClient(cfg)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}

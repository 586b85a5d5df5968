package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kavirubc/playlist-relay/internal/config"
)

var (
	// ErrNoCompletion is returned when the service answers without any generated text
	ErrNoCompletion = errors.New("no completion returned")

	// ErrUnknownProvider is returned by NewProvider for an unsupported provider name
	ErrUnknownProvider = errors.New("unknown LLM provider")
)

// Provider defines the interface for LLM text completion
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CompleteWithSystem(ctx context.Context, system, prompt string) (string, error)
	Name() string
	Model() string
	Close() error
}

// NewProvider creates the provider selected by cfg
func NewProvider(cfg *config.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIProvider(cfg.APIKey, cfg.Model, cfg.BaseURL)
	case "gemini":
		return NewGeminiProvider(cfg.APIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}
}

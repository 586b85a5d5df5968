package models

import (
	"time"

	"github.com/google/uuid"
)

// Exchange records one Prompt and the Completion it produced.
// It lives for a single invocation and is never persisted.
type Exchange struct {
	ID         string    `json:"id"`
	Provider   string    `json:"provider"`
	Model      string    `json:"model"`
	Prompt     string    `json:"prompt"`
	Completion string    `json:"completion"`
	StartedAt  time.Time `json:"started_at"`
	DurationMs int64     `json:"duration_ms"`
}

// NewExchange starts an exchange for prompt with a fresh random ID
func NewExchange(provider, model, prompt string) *Exchange {
	return &Exchange{
		ID:        uuid.NewString(),
		Provider:  provider,
		Model:     model,
		Prompt:    prompt,
		StartedAt: time.Now(),
	}
}

// Finish records the completion and the elapsed time
func (e *Exchange) Finish(completion string) {
	e.Completion = completion
	e.DurationMs = time.Since(e.StartedAt).Milliseconds()
}

package relay

import (
	"context"
	"fmt"

	"github.com/Kavirubc/playlist-relay/internal/llm"
	"github.com/Kavirubc/playlist-relay/pkg/models"
	"github.com/sirupsen/logrus"
)

// SystemInstruction is sent with every prompt. Its wording shapes the output
// format callers rely on, so it must not change.
const SystemInstruction = "You are a helpful music recommendation assistant. Suggest music based on the user's preferences, mood, or context. Provide a mix of well-known tracks and hidden gems, with short explanations. Please provide playlist in an importable format, so no markdown, just artist and song title. No extra text."

// Relay forwards prompts to a text-generation provider
type Relay struct {
	provider llm.Provider
	log      *logrus.Logger
}

// New creates a relay around provider. The relay owns the provider from
// here on; call Close when done.
func New(provider llm.Provider, logger *logrus.Logger) *Relay {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Relay{
		provider: provider,
		log:      logger,
	}
}

// Ask reads one line from p, sends it, and returns the completion unchanged.
// p is closed when Ask returns, whatever the outcome.
func (r *Relay) Ask(ctx context.Context, p *Prompter, label string) (string, error) {
	defer p.Close()

	prompt, err := p.ReadLine(label)
	if err != nil {
		return "", err
	}

	return r.AskText(ctx, prompt)
}

// AskText sends prompt directly, without reading from a Prompter
func (r *Relay) AskText(ctx context.Context, prompt string) (string, error) {
	ex, err := r.Exchange(ctx, prompt)
	if err != nil {
		return "", err
	}
	return ex.Completion, nil
}

// Exchange issues exactly one request for prompt
func (r *Relay) Exchange(ctx context.Context, prompt string) (*models.Exchange, error) {
	ex := models.NewExchange(r.provider.Name(), r.provider.Model(), prompt)
	entry := r.log.WithFields(logrus.Fields{
		"exchange": ex.ID,
		"provider": ex.Provider,
		"model":    ex.Model,
	})

	entry.WithField("prompt_chars", len(prompt)).Debug("Sending prompt")

	completion, err := r.provider.CompleteWithSystem(ctx, SystemInstruction, prompt)
	if err != nil {
		entry.WithError(err).Debug("Completion request failed")
		return nil, fmt.Errorf("completion request failed: %w", err)
	}

	ex.Finish(completion)
	entry.WithFields(logrus.Fields{
		"duration_ms":      ex.DurationMs,
		"completion_chars": len(completion),
	}).Debug("Received completion")

	return ex, nil
}

// Close releases the provider
func (r *Relay) Close() error {
	return r.provider.Close()
}

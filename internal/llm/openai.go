package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// DefaultOpenAIModel is the model used when none is configured
const DefaultOpenAIModel = "gpt-4o"

// ChatClient is the subset of openai.Client the provider uses; tests substitute it.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIProvider implements Provider using OpenAI's API
type OpenAIProvider struct {
	client ChatClient
	model  string
}

// NewOpenAIProvider creates a new OpenAI chat provider.
// An empty apiKey is passed through; the API rejects it on the first call.
func NewOpenAIProvider(apiKey, model, baseURL string) (*OpenAIProvider, error) {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return NewOpenAIProviderWithClient(openai.NewClientWithConfig(cfg), model), nil
}

// NewOpenAIProviderWithClient creates a provider around an existing client
func NewOpenAIProviderWithClient(client ChatClient, model string) *OpenAIProvider {
	if model == "" {
		model = DefaultOpenAIModel
	}

	return &OpenAIProvider{
		client: client,
		model:  model,
	}
}

// Complete generates a completion for the given prompt
func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	return p.CompleteWithSystem(ctx, "", prompt)
}

// CompleteWithSystem generates a completion with a system prompt
func (p *OpenAIProvider) CompleteWithSystem(ctx context.Context, system, prompt string) (string, error) {
	messages := []openai.ChatCompletionMessage{}

	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    p.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: %w", ErrNoCompletion)
	}

	return resp.Choices[0].Message.Content, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Model returns the model identifier sent with every request
func (p *OpenAIProvider) Model() string {
	return p.model
}

// Close releases resources
func (p *OpenAIProvider) Close() error {
	return nil
}

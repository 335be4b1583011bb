package augment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a study assistant. Answer with plain text suitable for a notes panel."

// OpenAIConfig configures the OpenAI-compatible completion provider.
// BaseURL may point at any OpenAI-compatible endpoint (e.g. a local server).
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// OpenAICompleter implements Completer against the OpenAI chat API.
type OpenAICompleter struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

// NewOpenAICompleter builds the provider. A missing API key is reported as
// ErrUnconfigured before any network traffic happens.
func NewOpenAICompleter(cfg OpenAIConfig, logger *slog.Logger) (*OpenAICompleter, error) {
	if cfg.APIKey == "" {
		return nil, ErrUnconfigured
	}
	if logger == nil {
		logger = slog.Default()
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAICompleter{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
		logger: logger,
	}, nil
}

// Complete sends one chat completion request and returns the text of the
// first choice. No retries; transient failures bubble up to the gateway.
func (c *OpenAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	c.logger.Debug("requesting completion", "model", c.model)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("provider returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

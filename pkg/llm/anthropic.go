package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicClient is the alternate summarizer provider.
type AnthropicClient struct {
	client    *anthropic.Client
	model     anthropic.Model
	modelName string
}

func NewAnthropicClient(apiKey string) *AnthropicClient {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(30*time.Second),
	)
	return &AnthropicClient{
		client:    &client,
		model:     anthropic.ModelClaudeHaiku4_5,
		modelName: "claude-4.5-haiku",
	}
}

func (c *AnthropicClient) Name() string {
	return c.modelName
}

func (c *AnthropicClient) Summarize(prompt string) (string, error) {
	resp, err := c.client.Messages.New(context.Background(), anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   400,
		Temperature: anthropic.Float(0.7),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})

	if err != nil {
		return "", wrapAnthropicError(err)
	}

	if len(resp.Content) == 0 {
		return "", &ProviderError{Kind: KindPermanent, Err: fmt.Errorf("no response from anthropic")}
	}

	return resp.Content[0].Text, nil
}

func wrapAnthropicError(err error) *ProviderError {
	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		if kind, ok := classifyStatus(apierr.StatusCode); ok {
			return &ProviderError{Kind: kind, Err: err}
		}
	}
	return &ProviderError{Kind: classifyMessage(err.Error()), Err: err}
}

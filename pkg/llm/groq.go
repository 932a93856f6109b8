package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Groq serves the OpenAI chat-completions API, so the client is the OpenAI
// SDK pointed at Groq's base URL.
const groqBaseURL = "https://api.groq.com/openai/v1"

type GroqClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewGroqClient(apiKey string) *GroqClient {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(groqBaseURL),
		option.WithRequestTimeout(30*time.Second),
	)
	return &GroqClient{
		client:    &client,
		model:     openai.ChatModel("llama-3.1-8b-instant"),
		modelName: "llama-3.1-8b-instant",
	}
}

func (c *GroqClient) Name() string {
	return c.modelName
}

func (c *GroqClient) Summarize(prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(context.Background(), openai.ChatCompletionNewParams{
		Model:       c.model,
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(400),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})

	if err != nil {
		return "", wrapOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", &ProviderError{Kind: KindPermanent, Err: fmt.Errorf("no response from groq")}
	}

	return resp.Choices[0].Message.Content, nil
}

func wrapOpenAIError(err error) *ProviderError {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		if kind, ok := classifyStatus(apierr.StatusCode); ok {
			return &ProviderError{Kind: kind, Err: err}
		}
	}
	return &ProviderError{Kind: classifyMessage(err.Error()), Err: err}
}

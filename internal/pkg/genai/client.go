// Package genai wraps the external text-generation dependency behind a
// one-shot Generator interface with a closed error taxonomy.
package genai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pradiptars/energimap/internal/pkg/logger"
	"github.com/sashabaranov/go-openai"
)

// Generator performs one synchronous generation round trip. No retries:
// resilience under repeated rate-limiting is the caller's concern, and the
// pipeline's answer to it is the offline fallback.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds the endpoint settings. The endpoint is any
// OpenAI-compatible chat-completion API; Gemini exposes one.
type Config struct {
	Endpoint string
	Model    string
	APIKey   string
}

type Client struct {
	client *openai.Client
	model  string
}

var _ Generator = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("endpoint is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = strings.TrimSuffix(cfg.Endpoint, "/")

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
	}, nil
}

// Generate sends the prompt and returns the completion text, or a
// classified *Error.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		classified := Classify(err)
		logger.Errorf(ctx, "generation failed after %s: %s", time.Since(start), classified.Error())
		return "", classified
	}

	if len(resp.Choices) == 0 {
		return "", NewError(KindUnknown, "no choices in response")
	}

	logger.Infof(ctx, "generation completed in %s, %d completion tokens",
		time.Since(start), resp.Usage.CompletionTokens)

	return resp.Choices[0].Message.Content, nil
}

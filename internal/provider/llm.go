// Package provider contains the clients for the two external services the
// planner depends on: a text-generation model and a web-search API.
// Each file holds one client. No business logic lives here — only transport,
// authentication, and error normalization onto domain.ErrProvider.
package provider

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/oharris/trip-planner/internal/domain"
)

// LLMClient generates free-form text through an OpenAI-compatible chat
// completions endpoint. The default configuration targets Google's Gemini
// OpenAI-compatibility layer, but any compatible endpoint works via BaseURL.
//
// The client performs no retries: every failure is wrapped in
// domain.ErrProvider and propagated, and the caller decides how to degrade.
type LLMClient struct {
	client *openai.Client
	model  string
}

// NewLLMClient constructs an LLMClient for the given credentials.
// baseURL and model must be non-empty; config supplies the defaults.
func NewLLMClient(apiKey, baseURL, model string) *LLMClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = strings.TrimRight(baseURL, "/")
	return &LLMClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// GenerateText sends a single-message completion request and returns the raw
// response content verbatim. An empty or choiceless response counts as a
// provider failure — callers must never mistake it for valid empty output.
func (c *LLMClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: chat completion: %v", domain.ErrProvider, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", domain.ErrProvider)
	}
	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: empty response content", domain.ErrProvider)
	}
	return content, nil
}

// Package ai wraps the Gemini API behind the two calls this app
// makes: full article generation and short inline continuations.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ErrNoContent is returned when the provider answers successfully but
// with empty or whitespace-only text. Distinct from transport errors.
var ErrNoContent = errors.New("no content generated")

// Provider is the surface the suggestion pipeline and handlers depend
// on; tests substitute a fake.
type Provider interface {
	Generate(ctx context.Context, topic string) (string, error)
	Suggest(ctx context.Context, title, currentText string) (string, error)
}

// Client calls the Gemini API. No retries; timeouts are whatever the
// transport defaults to.
type Client struct {
	client       *genai.Client
	model        string
	suggestModel string
}

// NewClient creates a Gemini client. model is used for full article
// generation, suggestModel for inline continuations.
func NewClient(ctx context.Context, apiKey, model, suggestModel string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-pro"
	}
	if suggestModel == "" {
		suggestModel = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{
		client:       client,
		model:        model,
		suggestModel: suggestModel,
	}, nil
}

// Generate produces a full blog article for the given topic.
func (c *Client) Generate(ctx context.Context, topic string) (string, error) {
	prompt := fmt.Sprintf(
		`Write a detailed and informative blog post on the topic: %q. The tone should be professional and easy to read.`,
		topic,
	)

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrNoContent
	}
	return text, nil
}

// Suggest produces a 5-15 word continuation of the text being written.
func (c *Client) Suggest(ctx context.Context, title, currentText string) (string, error) {
	prompt := fmt.Sprintf(`You are an AI writing assistant. Given a blog title and the current text being written, provide a natural continuation.

Blog Title: %q

Current text: %q

Provide ONLY a short continuation (5-15 words) that naturally follows the current text. Do not repeat what's already written. Make it relevant to the blog title. Do not include quotation marks or explanations.`,
		title, currentText)

	result, err := c.client.Models.GenerateContent(ctx, c.suggestModel, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini suggest failed: %w", err)
	}

	suggestion := strings.TrimSpace(result.Text())
	if suggestion == "" {
		return "", ErrNoContent
	}
	return suggestion, nil
}

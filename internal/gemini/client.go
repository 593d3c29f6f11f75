// Package gemini implements the narrative.TextGenerator capability on top
// of the Google Gemini API.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"finmon/internal/narrative"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// Client is a thin one-shot wrapper around the genai SDK.
type Client struct {
	client *genai.Client
	model  string
}

// New creates a Gemini-backed text generator. An empty apiKey lets the SDK
// resolve credentials from the environment.
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	var cfg *genai.ClientConfig
	if apiKey != "" {
		cfg = &genai.ClientConfig{APIKey: apiKey}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{client: client, model: model}, nil
}

// Generate implements narrative.TextGenerator. Every failure, including an
// empty candidate list, comes back as a narrative.BackendError.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", &narrative.BackendError{Err: err}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &narrative.BackendError{Err: fmt.Errorf("no candidates in response")}
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

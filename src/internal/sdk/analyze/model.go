// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package analyze

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModelName is the Gemini model used when the caller does not pick one.
const DefaultModelName = "gemini-2.0-flash"

// Model generates a completion for a prompt. The analyzer depends on this
// narrow surface so tests can substitute a canned model and the MCP server
// can route analysis through client-side sampling instead of a direct API.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiModel calls the Gemini API through the official genai client.
type GeminiModel struct {
	client *genai.Client
	model  string
}

// NewGeminiModel builds a Gemini-backed model. An empty modelName selects
// DefaultModelName.
func NewGeminiModel(ctx context.Context, apiKey, modelName string) (*GeminiModel, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("analyze: creating genai client: %w", err)
	}
	if modelName == "" {
		modelName = DefaultModelName
	}
	return &GeminiModel{client: client, model: modelName}, nil
}

// Generate sends the prompt with a low temperature and a JSON response type,
// which keeps the model from wrapping the tool array in prose.
func (g *GeminiModel) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.1),
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("analyze: generate content: %w", err)
	}
	return resp.Text(), nil
}

package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultModel = "gemini-3-flash-preview"

// StructuredRequest is one JSON-mode generation call. InlineData and MIMEType
// are sent only when Document is set.
type StructuredRequest struct {
	Prompt     string
	Document   bool
	InlineData []byte
	MIMEType   string
	Schema     map[string]any
}

type GeminiService interface {
	GenerateStructured(ctx context.Context, req StructuredRequest) (string, error)
}

type geminiService struct {
	client    *genai.Client
	modelName string
}

// NewGeminiService builds the single client used for the lifetime of the process.
func NewGeminiService(ctx context.Context, apiKey, modelName string) (GeminiService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is empty")
	}
	if modelName == "" {
		modelName = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: modelName,
	}, nil
}

// GenerateStructured implements GeminiService.
func (g *geminiService) GenerateStructured(ctx context.Context, req StructuredRequest) (string, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType:   "application/json",
		ResponseJsonSchema: req.Schema,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, buildContents(req), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}

func buildContents(req StructuredRequest) []*genai.Content {
	if !req.Document {
		return genai.Text(req.Prompt)
	}

	parts := []*genai.Part{
		genai.NewPartFromBytes(req.InlineData, req.MIMEType),
		genai.NewPartFromText(req.Prompt),
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}

package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GenerationRequest carries everything a provider needs for one
// schema-constrained itinerary call. Schema is consumed by providers with
// native structured output; SchemaOutline is a compact JSON skeleton for
// providers that only take prose instructions.
type GenerationRequest struct {
	Prompt            string
	SystemInstruction string
	Schema            *genai.Schema
	SchemaOutline     string
}

// ItineraryClientInterface is one generation attempt against an external
// model: no retries, raw JSON text out.
type ItineraryClientInterface interface {
	GenerateItinerary(ctx context.Context, req GenerationRequest) (string, error)
	Close() error
}

// GeminiPlannerClient implements ItineraryClientInterface using Google's
// Gemini models with a response schema.
type GeminiPlannerClient struct {
	apiKey string
	model  string
	client *genai.Client
}

// NewGeminiPlannerClient creates a new Gemini client. An empty key is not a
// construction error: the failure is deferred to call time so it surfaces as
// ErrMissingAPIKey instead of killing startup.
func NewGeminiPlannerClient(apiKey, model string) (*GeminiPlannerClient, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}

	c := &GeminiPlannerClient{apiKey: apiKey, model: model}
	if apiKey == "" {
		return c, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	c.client = client
	return c, nil
}

func (c *GeminiPlannerClient) GenerateItinerary(ctx context.Context, req GenerationRequest) (string, error) {
	if c.apiKey == "" || c.client == nil {
		return "", ErrMissingAPIKey
	}

	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = req.Schema
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.SystemInstruction)}}
	m.SetTemperature(0.3)
	m.SetTopP(0.8)

	resp, err := m.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyCompletion
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok || strings.TrimSpace(string(text)) == "" {
		return "", ErrEmptyCompletion
	}
	return string(text), nil
}

func (c *GeminiPlannerClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// NewItineraryClient creates either a Gemini or OpenAI client based on config.
func NewItineraryClient(provider, apiKey, model string) (ItineraryClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIPlannerClient(apiKey, model), nil
	case "gemini":
		return NewGeminiPlannerClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s", provider)
	}
}

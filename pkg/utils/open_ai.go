package utils

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIPlannerClient implements ItineraryClientInterface via chat
// completions in JSON mode. OpenAI gets no native response schema here, so
// the schema outline is pushed into the system message instead.
type OpenAIPlannerClient struct {
	apiKey string
	model  string
	client *openai.Client
}

func NewOpenAIPlannerClient(apiKey, model string) *OpenAIPlannerClient {
	if model == "" {
		model = openai.GPT4oMini
	}

	c := &OpenAIPlannerClient{apiKey: apiKey, model: model}
	if apiKey != "" {
		c.client = openai.NewClient(apiKey)
	}
	return c
}

func (c *OpenAIPlannerClient) GenerateItinerary(ctx context.Context, req GenerationRequest) (string, error) {
	if c.apiKey == "" || c.client == nil {
		return "", ErrMissingAPIKey
	}

	system := req.SystemInstruction +
		"\n\nReturn JSON only, matching this shape exactly:\n" + req.SchemaOutline

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.3,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIPlannerClient) Close() error { return nil }

package llm

import (
	"context"
	"fmt"

	"github.com/divyakumars/video-summarizer/internal/logger"
	"github.com/sashabaranov/go-openai"
)

type openAIGenerator struct {
	client *openai.Client
	model  string
	logger logger.Logger
}

// NewOpenAI creates a Generator for the OpenAI chat completions API or any
// compatible endpoint when baseURL is set.
func NewOpenAI(apiKey, model, baseURL string, log logger.Logger) Generator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &openAIGenerator{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		logger: log,
	}
}

func (g *openAIGenerator) Name() string {
	return "openai/" + g.model
}

func (g *openAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.logger.Debug(ctx, "OpenAI request: model=%s prompt_chars=%d", g.model, len(prompt))

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}

package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/divyakumars/video-summarizer/internal/logger"
	"google.golang.org/genai"
)

type geminiGenerator struct {
	client *genai.Client
	model  string
	logger logger.Logger
}

// NewGemini creates a Generator backed by the Gemini API. The client is
// created once and shared by every call.
func NewGemini(ctx context.Context, apiKey, model string, log logger.Logger) (Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &geminiGenerator{
		client: client,
		model:  model,
		logger: log,
	}, nil
}

func (g *geminiGenerator) Name() string {
	return "gemini/" + g.model
}

// Generate sends prompt to Gemini and returns the text of the first candidate.
func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.logger.Debug(ctx, "Gemini request: model=%s prompt_chars=%d", g.model, len(prompt))

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return geminiText(result)
}

func geminiText(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}

	return sb.String(), nil
}

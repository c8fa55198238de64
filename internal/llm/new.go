package llm

import (
	"context"
	"fmt"

	"github.com/divyakumars/video-summarizer/internal/config"
	"github.com/divyakumars/video-summarizer/internal/logger"
)

// New builds the Generator selected by cfg.LLM.Provider.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (Generator, error) {
	switch cfg.LLM.Provider {
	case config.ProviderGemini:
		return NewGemini(ctx, cfg.Credentials.GeminiAPIKey, cfg.LLM.Model, log)
	case config.ProviderOpenAI:
		return NewOpenAI(cfg.Credentials.OpenAIAPIKey, cfg.LLM.Model, cfg.LLM.BaseURL, log), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}
}

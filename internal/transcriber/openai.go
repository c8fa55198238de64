package transcriber

import (
	"context"
	"fmt"
	"strings"

	"github.com/divyakumars/video-summarizer/internal/config"
	"github.com/divyakumars/video-summarizer/internal/logger"
	"github.com/sashabaranov/go-openai"
)

type openAITranscriber struct {
	client *openai.Client
	logger logger.Logger
	cfg    config.WhisperConfig
}

// NewOpenAI creates a Transcriber backed by the OpenAI audio transcription API.
func NewOpenAI(apiKey, baseURL string, cfg config.WhisperConfig, log logger.Logger) Transcriber {
	clientCfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientCfg.BaseURL = baseURL
	}
	if cfg.Model == "" {
		cfg.Model = openai.Whisper1
	}

	return &openAITranscriber{
		client: openai.NewClientWithConfig(clientCfg),
		logger: log,
		cfg:    cfg,
	}
}

func (t *openAITranscriber) Name() string {
	return "openai/" + t.cfg.Model
}

func (t *openAITranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	t.logger.Info(ctx, "Uploading audio for transcription: %s", audioPath)

	req := openai.AudioRequest{
		Model:    t.cfg.Model,
		FilePath: audioPath,
		Prompt:   t.cfg.Prompt,
		Format:   openai.AudioResponseFormatJSON,
	}
	if t.cfg.Language != "" && t.cfg.Language != "auto" {
		req.Language = t.cfg.Language
	}

	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("create transcription: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	t.logger.Info(ctx, "Transcription completed: %d chars", len(text))
	return text, nil
}

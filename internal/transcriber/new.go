package transcriber

import (
	"fmt"

	"github.com/divyakumars/video-summarizer/internal/config"
	"github.com/divyakumars/video-summarizer/internal/logger"
	"github.com/divyakumars/video-summarizer/pkg/executor"
)

// New builds the Transcriber selected by cfg.Whisper.Backend.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	switch cfg.Whisper.Backend {
	case config.BackendWhisperCPP:
		return NewWhisperCPP(exec, log, cfg.Whisper), nil
	case config.BackendOpenAI:
		return NewOpenAI(cfg.Credentials.OpenAIAPIKey, cfg.Whisper.BaseURL, cfg.Whisper, log), nil
	default:
		return nil, fmt.Errorf("unknown whisper backend %q", cfg.Whisper.Backend)
	}
}

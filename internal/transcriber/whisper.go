package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/divyakumars/video-summarizer/internal/config"
	"github.com/divyakumars/video-summarizer/internal/logger"
	"github.com/divyakumars/video-summarizer/pkg/executor"
)

type whisperCPP struct {
	executor executor.Executor
	logger   logger.Logger
	cfg      config.WhisperConfig
}

// NewWhisperCPP creates a Transcriber that shells out to the whisper.cpp CLI.
func NewWhisperCPP(exec executor.Executor, log logger.Logger, cfg config.WhisperConfig) Transcriber {
	return &whisperCPP{
		executor: exec,
		logger:   log,
		cfg:      cfg,
	}
}

func (w *whisperCPP) Name() string {
	return "whisper.cpp"
}

// Transcribe runs whisper.cpp with plain-text output and returns the text.
func (w *whisperCPP) Transcribe(ctx context.Context, audioPath string) (string, error) {
	// whisper.cpp appends .txt to the prefix
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))
	txtPath := outputPrefix + ".txt"

	w.logger.Info(ctx, "Starting transcription with %d threads: %s", w.cfg.Threads, audioPath)

	// -otxt: plain text output
	// -l: force language (prevents hallucination)
	// --prompt: domain keywords to improve accuracy
	args := []string{
		"-m", w.cfg.ModelPath,
		"-f", audioPath,
		"-otxt",
		"-l", w.cfg.Language,
		"-t", strconv.Itoa(w.cfg.Threads),
		"--output-file", outputPrefix,
	}
	if w.cfg.Prompt != "" {
		args = append(args, "--prompt", w.cfg.Prompt)
	}

	// whisper.cpp may leave a partial file behind when it fails
	defer os.Remove(txtPath)

	if _, err := w.executor.Execute(ctx, w.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	text := joinLines(string(data))
	w.logger.Info(ctx, "Transcription completed: %d chars", len(text))
	return text, nil
}

// joinLines flattens whisper's one-segment-per-line output into running text.
func joinLines(s string) string {
	var parts []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

package audio

import (
	"github.com/divyakumars/video-summarizer/internal/logger"
	"github.com/divyakumars/video-summarizer/pkg/executor"
)

type implExtractor struct {
	executor   executor.Executor
	logger     logger.Logger
	ffmpeg     string
	sampleRate int
	tempDir    string
}

// New creates an ffmpeg-backed Extractor writing into tempDir.
func New(exec executor.Executor, log logger.Logger, ffmpegPath string, sampleRate int, tempDir string) Extractor {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if sampleRate <= 0 {
		sampleRate = 16000
	}
	return &implExtractor{
		executor:   exec,
		logger:     log,
		ffmpeg:     ffmpegPath,
		sampleRate: sampleRate,
		tempDir:    tempDir,
	}
}

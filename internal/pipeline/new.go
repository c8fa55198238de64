package pipeline

import (
	"github.com/divyakumars/video-summarizer/internal/audio"
	"github.com/divyakumars/video-summarizer/internal/logger"
	"github.com/divyakumars/video-summarizer/internal/summarizer"
	"github.com/divyakumars/video-summarizer/internal/transcriber"
)

type implPipeline struct {
	extractor   audio.Extractor
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	logger      logger.Logger
	sem         *semaphore
}

// New creates a Pipeline. At most maxConcurrent videos are processed at once;
// further callers wait for a free slot.
func New(ext audio.Extractor, tr transcriber.Transcriber, sum summarizer.Summarizer, log logger.Logger, maxConcurrent int) Pipeline {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &implPipeline{
		extractor:   ext,
		transcriber: tr,
		summarizer:  sum,
		logger:      log,
		sem:         newSemaphore(maxConcurrent),
	}
}

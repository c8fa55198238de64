package batch

import (
	"github.com/divyakumars/video-summarizer/internal/logger"
	"github.com/divyakumars/video-summarizer/internal/pipeline"
	"github.com/divyakumars/video-summarizer/internal/report"
)

type implHandler struct {
	pipeline    pipeline.Pipeline
	writer      report.Writer
	logger      logger.Logger
	archivedDir string
	failedDir   string
}

// New creates a Handler that runs the pipeline, writes the report and then
// moves the source video to archivedDir, or failedDir when any step fails.
func New(p pipeline.Pipeline, w report.Writer, log logger.Logger, archivedDir, failedDir string) Handler {
	return &implHandler{
		pipeline:    p,
		writer:      w,
		logger:      log,
		archivedDir: archivedDir,
		failedDir:   failedDir,
	}
}

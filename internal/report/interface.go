package report

import (
	"context"

	"github.com/divyakumars/video-summarizer/internal/pipeline"
)

// Writer persists a pipeline result for a video.
type Writer interface {
	// Write stores result under name and returns the paths it created.
	Write(ctx context.Context, name string, result *pipeline.Result) ([]string, error)
}

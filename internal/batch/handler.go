package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/divyakumars/video-summarizer/internal/pipeline"
)

// Handle runs a dropped video through the pipeline and stores the outcome.
func (h *implHandler) Handle(ctx context.Context, videoPath string) error {
	name := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))

	res, err := h.pipeline.Process(ctx, videoPath)
	if err != nil {
		if interrupted(ctx, err) {
			// left in the input folder for the next startup scan
			h.logger.Warn(ctx, "Processing of %s interrupted, will retry on next start", name)
			return fmt.Errorf("process %s: %w", name, err)
		}
		if stage, ok := pipeline.StageOf(err); ok {
			h.logger.Error(ctx, "Error during %s of %s: %v", stage, name, err)
		}
		h.quarantine(ctx, videoPath)
		return fmt.Errorf("process %s: %w", name, err)
	}

	if _, err := h.writer.Write(ctx, name, res); err != nil {
		if interrupted(ctx, err) {
			return fmt.Errorf("write report for %s: %w", name, err)
		}
		h.quarantine(ctx, videoPath)
		return fmt.Errorf("write report for %s: %w", name, err)
	}

	if _, err := h.moveTo(ctx, videoPath, h.archivedDir); err != nil {
		h.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	h.logger.Info(ctx, "[DONE] %s", name)
	return nil
}

// quarantine moves a video that failed so it is not picked up again.
func (h *implHandler) quarantine(ctx context.Context, videoPath string) {
	if _, err := h.moveTo(ctx, videoPath, h.failedDir); err != nil {
		h.logger.Warn(ctx, "Failed to move %s to failed folder: %v", videoPath, err)
	}
}

// interrupted reports whether err comes from shutdown rather than from the video.
func interrupted(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

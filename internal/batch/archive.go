package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// moveTo moves a video into dir, keeping its file name. Falls back to
// copy+remove when dir is on another filesystem.
func (h *implHandler) moveTo(ctx context.Context, videoPath, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create dir %s: %w", dir, err)
	}
	destPath := filepath.Join(dir, filepath.Base(videoPath))

	h.logger.Info(ctx, "Moving %s -> %s", videoPath, destPath)

	if err := os.Rename(videoPath, destPath); err == nil {
		return destPath, nil
	}

	if err := copyFile(videoPath, destPath); err != nil {
		return "", fmt.Errorf("move %s: %w", videoPath, err)
	}
	if err := os.Remove(videoPath); err != nil {
		h.logger.Warn(ctx, "Copied but failed to remove %s: %v", videoPath, err)
	}
	return destPath, nil
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy: %w", err)
	}
	return out.Close()
}

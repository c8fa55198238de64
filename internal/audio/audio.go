package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var videoExtensions = []string{".mp4", ".mov", ".avi", ".mkv", ".webm", ".m4v", ".flv"}

// SupportedExtensions returns the video extensions the extractor accepts.
func SupportedExtensions() []string {
	out := make([]string, len(videoExtensions))
	copy(out, videoExtensions)
	return out
}

// IsVideoFile checks if the file has a supported video extension
func IsVideoFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range videoExtensions {
		if ext == format {
			return true
		}
	}
	return false
}

// Extract converts the audio track to 16-bit mono PCM WAV, the input format
// whisper expects.
func (e *implExtractor) Extract(ctx context.Context, videoPath string) (string, error) {
	if err := os.MkdirAll(e.tempDir, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	out, err := os.CreateTemp(e.tempDir, base+"-*.wav")
	if err != nil {
		return "", fmt.Errorf("create audio file: %w", err)
	}
	audioPath := out.Name()
	if err := out.Close(); err != nil {
		os.Remove(audioPath)
		return "", fmt.Errorf("close audio file: %w", err)
	}

	e.logger.Info(ctx, "Extracting audio: %s", videoPath)

	args := []string{
		"-i", videoPath,
		"-vn",
		"-ar", strconv.Itoa(e.sampleRate),
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		audioPath,
	}

	if _, err := e.executor.Execute(ctx, e.ffmpeg, args...); err != nil {
		os.Remove(audioPath)
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	e.logger.Info(ctx, "Audio extracted successfully: %s", audioPath)
	return audioPath, nil
}

package audio

import "context"

// Extractor pulls the audio track out of a video file.
type Extractor interface {
	// Extract writes a WAV file and returns its path. The caller removes it.
	Extract(ctx context.Context, videoPath string) (string, error)
}

package transcriber

import "context"

// Transcriber converts an audio file to plain text. Implementations are
// created once at startup and reused for every request.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
	Name() string
}

package summarizer

import "context"

// Summarizer turns a transcript of any length into one summary.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}

package pipeline

import (
	"context"
	"time"
)

// Pipeline turns a video file into a transcript and a summary.
type Pipeline interface {
	Process(ctx context.Context, videoPath string) (*Result, error)
	// Active returns how many videos are being processed right now.
	Active() int
}

// Result is the outcome of a successful run.
type Result struct {
	Transcript string
	Summary    string
	Elapsed    time.Duration
}

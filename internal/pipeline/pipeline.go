package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"
)

// Process runs extraction, transcription and summarization in order. The
// first failing stage stops the run and is reported as a *StageError.
func (p *implPipeline) Process(ctx context.Context, videoPath string) (*Result, error) {
	if err := p.sem.acquire(ctx); err != nil {
		return nil, fmt.Errorf("wait for processing slot: %w", err)
	}
	defer p.sem.release()

	startTime := time.Now()
	p.logger.Info(ctx, "Starting video processing: %s", videoPath)

	// Step 1: Extract audio
	audioPath, err := p.extractor.Extract(ctx, videoPath)
	if err != nil {
		return nil, &StageError{Stage: StageExtraction, Err: err}
	}
	defer p.cleanupTempFile(ctx, audioPath)

	// Step 2: Transcribe
	transcript, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return nil, &StageError{Stage: StageTranscription, Err: err}
	}

	// Step 3: Summarize
	summary, err := p.summarizer.Summarize(ctx, transcript)
	if err != nil {
		return nil, &StageError{Stage: StageSummarization, Err: err}
	}

	res := &Result{
		Transcript: transcript,
		Summary:    summary,
		Elapsed:    time.Since(startTime),
	}
	p.logger.Info(ctx, "Processing completed: %s (%s)", videoPath, res.Elapsed)
	return res, nil
}

func (p *implPipeline) Active() int {
	return p.sem.inUse()
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (p *implPipeline) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}

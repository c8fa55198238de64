package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/divyakumars/video-summarizer/internal/logger"
)

type fakeExtractor struct {
	dir string
	err error
}

func (f *fakeExtractor) Extract(ctx context.Context, videoPath string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	path := filepath.Join(f.dir, "audio.wav")
	return path, os.WriteFile(path, []byte("RIFF"), 0644)
}

type fakeTranscriber struct {
	text  string
	err   error
	calls int
}

func (f *fakeTranscriber) Name() string { return "fake" }

func (f *fakeTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeSummarizer struct {
	got   string
	err   error
	calls int
	block chan struct{}
}

func (f *fakeSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	f.calls++
	f.got = transcript
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return "", f.err
	}
	return "summary of " + transcript, nil
}

func TestProcess(t *testing.T) {
	dir := t.TempDir()
	ext := &fakeExtractor{dir: dir}
	tr := &fakeTranscriber{text: "hello world"}
	sum := &fakeSummarizer{}
	p := New(ext, tr, sum, logger.NewNop(), 1)

	res, err := p.Process(context.Background(), "video.mp4")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if res.Transcript != "hello world" {
		t.Errorf("Transcript = %q", res.Transcript)
	}
	if res.Summary != "summary of hello world" {
		t.Errorf("Summary = %q", res.Summary)
	}
	if _, err := os.Stat(filepath.Join(dir, "audio.wav")); !os.IsNotExist(err) {
		t.Error("temporary audio file should be removed")
	}
	if p.Active() != 0 {
		t.Errorf("Active() = %d after completion, want 0", p.Active())
	}
}

func TestProcessStageErrors(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name           string
		extractErr     error
		transcribeErr  error
		summarizeErr   error
		wantStage      Stage
		wantTranscribe int
		wantSummarize  int
	}{
		{"extraction fails", cause, nil, nil, StageExtraction, 0, 0},
		{"transcription fails skips summary", nil, cause, nil, StageTranscription, 1, 0},
		{"summarization fails", nil, nil, cause, StageSummarization, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &fakeTranscriber{text: "t", err: tt.transcribeErr}
			sum := &fakeSummarizer{err: tt.summarizeErr}
			p := New(&fakeExtractor{dir: t.TempDir(), err: tt.extractErr}, tr, sum, logger.NewNop(), 1)

			res, err := p.Process(context.Background(), "video.mp4")
			if res != nil {
				t.Errorf("Process() result = %+v, want nil on failure", res)
			}
			if !errors.Is(err, cause) {
				t.Fatalf("Process() error = %v, want wrapped cause", err)
			}

			stage, ok := StageOf(err)
			if !ok || stage != tt.wantStage {
				t.Errorf("StageOf() = %q, %v, want %q", stage, ok, tt.wantStage)
			}
			if tr.calls != tt.wantTranscribe {
				t.Errorf("transcriber calls = %d, want %d", tr.calls, tt.wantTranscribe)
			}
			if sum.calls != tt.wantSummarize {
				t.Errorf("summarizer calls = %d, want %d", sum.calls, tt.wantSummarize)
			}
		})
	}
}

func TestStageOfPlainError(t *testing.T) {
	if _, ok := StageOf(errors.New("plain")); ok {
		t.Error("StageOf() should not find a stage in a plain error")
	}
}

func TestProcessWaitsForSlot(t *testing.T) {
	sum := &fakeSummarizer{block: make(chan struct{})}
	p := New(&fakeExtractor{dir: t.TempDir()}, &fakeTranscriber{text: "x"}, sum, logger.NewNop(), 1)

	done := make(chan error, 1)
	go func() {
		_, err := p.Process(context.Background(), "first.mp4")
		done <- err
	}()

	// Wait until the first run holds the only slot.
	deadline := time.Now().Add(2 * time.Second)
	for p.Active() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if p.Active() != 1 {
		t.Fatalf("Active() = %d, want 1", p.Active())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := p.Process(ctx, "second.mp4"); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("second Process() error = %v, want deadline exceeded while waiting", err)
	}

	close(sum.block)
	if err := <-done; err != nil {
		t.Errorf("first Process() error = %v", err)
	}
}

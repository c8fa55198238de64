package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/divyakumars/video-summarizer/internal/logger"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
	done  chan struct{}
	want  int
}

func (r *recorder) handle(ctx context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, filepath.Base(path))
	if len(r.paths) == r.want {
		close(r.done)
	}
	return nil
}

func TestWatcherProcessesExistingAndNewVideos(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"old.mp4", "notes.txt", ".hidden.mp4"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	rec := &recorder{done: make(chan struct{}), want: 2}
	w, err := New(dir, rec.handle, logger.NewNop(), 2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()
	w.(*implWatcher).settleDelay = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- w.Start(ctx) }()

	// Give the watcher a moment to finish the initial scan.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "new.mov"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-rec.done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for handler calls")
	}

	cancel()
	if err := <-errCh; err != context.Canceled {
		t.Errorf("Start() error = %v, want context.Canceled", err)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	sort.Strings(rec.paths)
	if len(rec.paths) != 2 || rec.paths[0] != "new.mov" || rec.paths[1] != "old.mp4" {
		t.Errorf("handled %v, want [new.mov old.mp4]", rec.paths)
	}
}

func TestStartWaitsForRunningHandlerOnCancel(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.mp4", "b.mp4"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	started := make(chan struct{})
	var finished atomic.Bool
	var mu sync.Mutex
	var handled []string

	handler := func(ctx context.Context, path string) error {
		mu.Lock()
		handled = append(handled, filepath.Base(path))
		mu.Unlock()
		close(started)
		<-ctx.Done()
		// keeps working after shutdown was requested
		time.Sleep(200 * time.Millisecond)
		finished.Store(true)
		return ctx.Err()
	}

	w, err := New(dir, handler, logger.NewNop(), 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- w.Start(ctx) }()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for first handler")
	}
	// b.mp4 is now blocked on the only slot
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Start() error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not return after cancel")
	}

	if !finished.Load() {
		t.Error("Start() returned before the running handler finished")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(handled) != 1 || handled[0] != "a.mp4" {
		t.Errorf("handled %v, want [a.mp4]", handled)
	}
}

func TestNewRejectsMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent"), func(context.Context, string) error { return nil }, logger.NewNop(), 1)
	if err == nil {
		t.Error("New() should fail for a missing directory")
	}
}

package watcher

import (
	"fmt"
	"time"

	"github.com/divyakumars/video-summarizer/internal/logger"
	"github.com/fsnotify/fsnotify"
)

// DefaultSettleDelay gives the writer of a new file time to finish.
const DefaultSettleDelay = 500 * time.Millisecond

// New creates a Watcher on inputDir that runs handler for every new video,
// at most maxConcurrent at a time.
func New(inputDir string, handler EventHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &implWatcher{
		inputDir:      inputDir,
		handler:       handler,
		logger:        log,
		watcher:       watcher,
		maxConcurrent: maxConcurrent,
		semaphore:     make(chan struct{}, maxConcurrent),
		settleDelay:   DefaultSettleDelay,
		seen:          make(map[string]struct{}),
	}, nil
}

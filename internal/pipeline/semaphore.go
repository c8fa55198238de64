package pipeline

import "context"

// semaphore bounds how many videos are processed at once
type semaphore struct {
	slots chan struct{}
}

func newSemaphore(capacity int) *semaphore {
	return &semaphore{slots: make(chan struct{}, capacity)}
}

// acquire blocks until a slot is free or ctx is done
func (s *semaphore) acquire(ctx context.Context) error {
	select {
	case s.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *semaphore) release() {
	<-s.slots
}

// inUse is a snapshot; it may be stale by the time the caller reads it.
func (s *semaphore) inUse() int {
	return len(s.slots)
}

package download

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Runner executes one background batch at a time
type Runner struct {
	sem *semaphore.Weighted
	wg  sync.WaitGroup

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewRunner creates an idle runner
func NewRunner() *Runner {
	return &Runner{sem: semaphore.NewWeighted(1)}
}

// Submit starts fn on a new goroutine with a context derived from parent.
// It returns ErrBusy without running fn when a batch is already active.
func (r *Runner) Submit(parent context.Context, fn func(ctx context.Context)) error {
	if !r.sem.TryAcquire(1) {
		return ErrBusy
	}

	ctx, cancel := context.WithCancel(parent)
	r.mu.Lock()
	r.cancel = cancel
	r.mu.Unlock()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer r.sem.Release(1)
		defer func() {
			r.mu.Lock()
			r.cancel = nil
			r.mu.Unlock()
			cancel()
		}()
		fn(ctx)
	}()
	return nil
}

// Cancel stops the running batch, if any
func (r *Runner) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
	}
}

// Busy reports whether a batch is running
func (r *Runner) Busy() bool {
	if r.sem.TryAcquire(1) {
		r.sem.Release(1)
		return false
	}
	return true
}

// Wait blocks until the running batch, if any, has returned
func (r *Runner) Wait() {
	r.wg.Wait()
}

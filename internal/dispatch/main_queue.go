package dispatch

import (
	"context"
	"sync"
)

// MainQueue is a serial executor standing in for the UI-owning context.
// Posted functions run one at a time on whichever goroutine drains the queue.
type MainQueue struct {
	mu      sync.Mutex
	pending []func()
	notify  chan struct{}
}

// NewMainQueue creates an empty queue.
func NewMainQueue() *MainQueue {
	return &MainQueue{notify: make(chan struct{}, 1)}
}

// Post schedules fn. It never blocks.
func (q *MainQueue) Post(fn func()) {
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// RunOnce waits for at least one posted function, then runs everything
// pending. It returns the number of functions run, or ctx's error.
func (q *MainQueue) RunOnce(ctx context.Context) (int, error) {
	for {
		if n := q.drain(); n > 0 {
			return n, nil
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-q.notify:
		}
	}
}

// Run drains the queue until ctx is done.
func (q *MainQueue) Run(ctx context.Context) error {
	for {
		if _, err := q.RunOnce(ctx); err != nil {
			return err
		}
	}
}

// Len returns the number of functions waiting to run.
func (q *MainQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

func (q *MainQueue) drain() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/metawedding/wedding-api/internal/config"
	"github.com/metawedding/wedding-api/internal/logger"
	"github.com/metawedding/wedding-api/internal/metrics"
)

var (
	// ErrQueueFull is returned when a task cannot be queued within the submit timeout.
	ErrQueueFull = errors.New("dispatch queue is full, try again later")
	// ErrStopped is returned for tasks submitted after Stop.
	ErrStopped = errors.New("dispatcher is stopped")
)

// Task outcome labels
const (
	outcomeCompleted = "completed"
	outcomeRejected  = "rejected"
	outcomePanicked  = "panicked"
)

// Task is a unit of background work.
type Task struct {
	ID   uuid.UUID
	Name string
	Run  func(ctx context.Context)
}

// Dispatcher runs tasks on a fixed pool of workers.
type Dispatcher struct {
	tasks         chan Task
	workerCount   int
	submitTimeout time.Duration
	wg            sync.WaitGroup
	ctx           context.Context
	cancel        context.CancelFunc

	mu      sync.RWMutex
	started bool
	stopped bool
}

// NewDispatcher creates a dispatcher with the configured worker count and queue size
func NewDispatcher(cfg config.DispatchConfig) *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())

	return &Dispatcher{
		tasks:         make(chan Task, cfg.QueueSize),
		workerCount:   cfg.Workers,
		submitTimeout: cfg.SubmitTimeout,
		ctx:           ctx,
		cancel:        cancel,
	}
}

// Start starts the worker goroutines. Calling it twice is a no-op.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.stopped {
		return
	}
	d.started = true

	logger.Info("Starting dispatcher", zap.Int("worker_count", d.workerCount))

	for i := 0; i < d.workerCount; i++ {
		workerID := i
		d.wg.Add(1)

		go func() {
			defer d.wg.Done()
			logger.Debug("Dispatch worker started", zap.Int("worker_id", workerID))

			for {
				select {
				case <-d.ctx.Done():
					logger.Debug("Dispatch worker stopped", zap.Int("worker_id", workerID))
					return
				case task := <-d.tasks:
					d.run(workerID, task)
				}
			}
		}()
	}
}

// Stop cancels in-flight work and waits for the workers to exit. Tasks still
// queued at that point run once with the cancelled context, so every
// submitted task is observed exactly once.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	d.mu.Unlock()

	logger.Info("Stopping dispatcher")
	d.cancel()
	d.wg.Wait()
	drained := d.drain()
	logger.Info("Dispatcher stopped", zap.Int("drained", drained))
}

// drain runs whatever is left in the queue. Submit holds the read lock while
// sending, so once stopped is set no new task can arrive.
func (d *Dispatcher) drain() int {
	n := 0
	for {
		select {
		case task := <-d.tasks:
			d.run(-1, task)
			n++
		default:
			return n
		}
	}
}

// Submit queues run under name. It waits up to the submit timeout for room
// in the queue.
func (d *Dispatcher) Submit(name string, run func(ctx context.Context)) (uuid.UUID, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		metrics.DispatchTasks.WithLabelValues(outcomeRejected).Inc()
		return uuid.Nil, ErrStopped
	}

	task := Task{ID: uuid.New(), Name: name, Run: run}

	timer := time.NewTimer(d.submitTimeout)
	defer timer.Stop()

	select {
	case d.tasks <- task:
		logger.Debug("Task queued",
			zap.String("task_id", task.ID.String()),
			zap.String("task", name),
		)
		return task.ID, nil
	case <-timer.C:
		metrics.DispatchTasks.WithLabelValues(outcomeRejected).Inc()
		logger.Warn("Dispatch queue full", zap.String("task", name))
		return uuid.Nil, ErrQueueFull
	}
}

func (d *Dispatcher) run(workerID int, task Task) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			metrics.DispatchTasks.WithLabelValues(outcomePanicked).Inc()
			logger.Error("Task panicked",
				zap.String("task_id", task.ID.String()),
				zap.String("task", task.Name),
				zap.Int("worker_id", workerID),
				zap.Error(fmt.Errorf("%v", r)),
			)
		}
	}()

	task.Run(d.ctx)

	metrics.DispatchTasks.WithLabelValues(outcomeCompleted).Inc()
	logger.Debug("Task completed",
		zap.String("task_id", task.ID.String()),
		zap.String("task", task.Name),
		zap.Int("worker_id", workerID),
		zap.Duration("duration", time.Since(start)),
	)
}

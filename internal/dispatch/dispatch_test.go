package dispatch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metawedding/wedding-api/internal/config"
	"github.com/metawedding/wedding-api/internal/logger"
)

func init() {
	logger.InitLogger("test")
}

func newTestDispatcher(t *testing.T, workers, queue int, timeout time.Duration) *Dispatcher {
	t.Helper()
	d := NewDispatcher(config.DispatchConfig{Workers: workers, QueueSize: queue, SubmitTimeout: timeout})
	t.Cleanup(d.Stop)
	return d
}

func TestDispatcher_RunsTasks(t *testing.T) {
	d := newTestDispatcher(t, 4, 16, time.Second)
	d.Start()

	var (
		wg    sync.WaitGroup
		count int32
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		id, err := d.Submit("count", func(context.Context) {
			defer wg.Done()
			atomic.AddInt32(&count, 1)
		})
		require.NoError(t, err)
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
	}
	wg.Wait()
	assert.Equal(t, int32(20), atomic.LoadInt32(&count))
}

func TestDispatcher_QueueFull(t *testing.T) {
	d := newTestDispatcher(t, 1, 1, 20*time.Millisecond)

	_, err := d.Submit("first", func(context.Context) {})
	require.NoError(t, err)

	_, err = d.Submit("second", func(context.Context) {})
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestDispatcher_StopCancelsInFlight(t *testing.T) {
	d := NewDispatcher(config.DispatchConfig{Workers: 1, QueueSize: 1, SubmitTimeout: time.Second})
	d.Start()

	started := make(chan struct{})
	cancelled := make(chan struct{})
	_, err := d.Submit("block", func(ctx context.Context) {
		close(started)
		<-ctx.Done()
		close(cancelled)
	})
	require.NoError(t, err)

	<-started
	d.Stop()

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("task was not cancelled")
	}

	_, err = d.Submit("late", func(context.Context) {})
	assert.ErrorIs(t, err, ErrStopped)
}

func TestDispatcher_StopReportsQueuedTasks(t *testing.T) {
	d := NewDispatcher(config.DispatchConfig{Workers: 1, QueueSize: 4, SubmitTimeout: time.Second})
	d.Start()
	q := NewMainQueue()

	started := make(chan struct{})
	_, err := d.Submit("busy", func(ctx context.Context) {
		close(started)
		<-ctx.Done()
	})
	require.NoError(t, err)
	<-started

	var results []error
	for i := 0; i < 3; i++ {
		Go(d, q, "queued", func(ctx context.Context) (int, error) {
			return 0, ctx.Err()
		}, func(_ int, err error) {
			results = append(results, err)
		})
	}

	d.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	for len(results) < 3 {
		_, err := q.RunOnce(ctx)
		require.NoError(t, err, "queued callbacks were dropped")
	}
	require.Len(t, results, 3)
	for _, err := range results {
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestDispatcher_RecoversPanics(t *testing.T) {
	d := newTestDispatcher(t, 1, 4, time.Second)
	d.Start()

	_, err := d.Submit("panic", func(context.Context) { panic("boom") })
	require.NoError(t, err)

	done := make(chan struct{})
	_, err = d.Submit("after", func(context.Context) { close(done) })
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker died after panic")
	}
}

func TestMainQueue_RunOnce(t *testing.T) {
	q := NewMainQueue()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	n, err := q.RunOnce(ctx)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	var order []int
	for i := 0; i < 3; i++ {
		i := i
		q.Post(func() { order = append(order, i) })
	}
	assert.Equal(t, 3, q.Len())

	n, err = q.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []int{0, 1, 2}, order)
	assert.Zero(t, q.Len())
}

func TestGo_DeliversOnMainQueue(t *testing.T) {
	d := newTestDispatcher(t, 2, 4, time.Second)
	d.Start()
	q := NewMainQueue()

	var workerRan, callbackRan atomic.Bool
	Go(d, q, "answer", func(context.Context) (int, error) {
		workerRan.Store(true)
		return 42, nil
	}, func(v int, err error) {
		callbackRan.Store(true)
		assert.Equal(t, 42, v)
		assert.NoError(t, err)
	})

	n, err := q.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, workerRan.Load())
	assert.True(t, callbackRan.Load())
}

func TestGo_SubmitFailureDeliveredOnMainQueue(t *testing.T) {
	d := NewDispatcher(config.DispatchConfig{Workers: 1, QueueSize: 1, SubmitTimeout: time.Millisecond})
	d.Stop()
	q := NewMainQueue()

	var got error
	Go(d, q, "late", func(context.Context) (string, error) {
		return "never", nil
	}, func(_ string, err error) {
		got = err
	})

	assert.Nil(t, got, "callback must wait for the main queue")
	_, err := q.RunOnce(context.Background())
	require.NoError(t, err)
	assert.True(t, errors.Is(got, ErrStopped))
}

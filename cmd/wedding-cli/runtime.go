package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/metawedding/wedding-api/internal/dispatch"
	"github.com/metawedding/wedding-api/internal/services"
)

// runtime owns the services and the main queue the callbacks run on.
type runtime struct {
	stack      *services.Stack
	dispatcher *dispatch.Dispatcher
	main       *dispatch.MainQueue
	client     *services.AsyncClient
}

func newRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := services.LoadConfig(ctx)
	if err != nil {
		return nil, err
	}
	stack, err := services.NewStack(ctx, cfg)
	if err != nil {
		return nil, err
	}

	d := dispatch.NewDispatcher(cfg.Dispatch)
	d.Start()
	queue := dispatch.NewMainQueue()

	return &runtime{
		stack:      stack,
		dispatcher: d,
		main:       queue,
		client:     services.NewAsyncClient(stack.Chain, stack.Wedding, d, queue),
	}, nil
}

func (r *runtime) Close() {
	r.dispatcher.Stop()
	r.stack.Close()
}

// await drains the main queue until done reports true.
func await(ctx context.Context, q *dispatch.MainQueue, done func() bool) error {
	for !done() {
		if _, err := q.RunOnce(ctx); err != nil {
			return fmt.Errorf("waiting for result: %w", err)
		}
	}
	return nil
}

// call runs one async operation to completion on the main queue.
func call[T any](ctx context.Context, q *dispatch.MainQueue, start func(onResult func(T, error))) (T, error) {
	var (
		value    T
		callErr  error
		finished bool
	)
	start(func(v T, err error) {
		value, callErr, finished = v, err, true
	})
	if err := await(ctx, q, func() bool { return finished }); err != nil {
		return value, err
	}
	return value, callErr
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

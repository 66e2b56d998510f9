package dispatch

import (
	"context"
	"fmt"
)

// Go runs work on d and delivers its result to onResult on q. A task that
// cannot be queued is reported on q as well. onResult may be nil.
func Go[T any](d *Dispatcher, q *MainQueue, name string, work func(ctx context.Context) (T, error), onResult func(T, error)) {
	deliver := func(value T, err error) {
		if onResult == nil {
			return
		}
		q.Post(func() { onResult(value, err) })
	}

	_, err := d.Submit(name, func(ctx context.Context) {
		var (
			value T
			err   error
		)
		defer func() {
			if r := recover(); r != nil {
				var zero T
				deliver(zero, fmt.Errorf("%s panicked: %v", name, r))
				panic(r)
			}
		}()
		value, err = work(ctx)
		deliver(value, err)
	})
	if err != nil {
		var zero T
		deliver(zero, err)
	}
}

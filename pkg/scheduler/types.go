package scheduler

import (
	"context"
)

type Work[T any] func(ctx context.Context) (T, error)

type Result[T any] struct {
	Data T
	Err  error
}

type Future[T any] struct {
	input  chan T
	cancel context.CancelFunc
}

func NewFuture[T any](input chan T, cancel context.CancelFunc) *Future[T] {
	return &Future[T]{
		input:  input,
		cancel: cancel,
	}
}

func (f *Future[T]) C() <-chan T {
	return f.input
}

// Wait blocks until the result is available or ctx is done. In the latter
// case the work is stopped.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case v := <-f.input:
		return v, nil
	case <-ctx.Done():
		f.Stop()
		var zero T
		return zero, ctx.Err()
	}
}

func (f *Future[T]) Stop() {
	f.cancel()
}

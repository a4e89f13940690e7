package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

type queue[T any] []T

func (q *queue[T]) Len() int { return len(*q) }

func (q *queue[T]) Pop() T {
	old := *q
	x := old[0]
	*q = old[1:]
	return x
}

func (q *queue[T]) Push(t T) {
	*q = append(*q, t)
}

type request[T any] struct {
	fn  Work[T]
	c   chan Result[T]
	ctx context.Context
}

type worker[T any] struct {
	done chan any
	wg   *sync.WaitGroup
}

func (w worker[T]) Work(r request[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			r.c <- Result[T]{Err: fmt.Errorf("worker panicked: %v", rec)}
		}
		w.done <- struct{}{}
		w.wg.Done()
	}()

	v, err := r.fn(r.ctx)
	r.c <- Result[T]{Data: v, Err: err}
}

// Scheduler runs work on a fixed pool of workers. Work submitted while every
// worker is busy waits in a FIFO queue; Close cancels whatever is still queued.
type Scheduler[T any] struct {
	workers    *queue[worker[T]]
	pending    *queue[request[T]]
	inflight   atomic.Int64
	close      chan any
	done       chan any
	work       chan request[T]
	mainCtx    context.Context
	mainCancel context.CancelFunc
	wg         sync.WaitGroup
	once       sync.Once
}

func NewScheduler[T any](nbWorkers int) *Scheduler[T] {
	done := make(chan any, nbWorkers)
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler[T]{
		workers:    &queue[worker[T]]{},
		pending:    &queue[request[T]]{},
		close:      make(chan any),
		done:       done,
		work:       make(chan request[T]),
		mainCtx:    ctx,
		mainCancel: cancel,
	}
	for range nbWorkers {
		s.workers.Push(worker[T]{done: done, wg: &s.wg})
	}
	go s.run()
	return s
}

// AddWork queues w and returns a Future receiving its result. After Close the
// future immediately yields context.Canceled.
func (s *Scheduler[T]) AddWork(w Work[T]) *Future[Result[T]] {
	c := make(chan Result[T], 1)
	ctx, cancel := context.WithCancel(s.mainCtx)

	s.inflight.Add(1)
	select {
	case <-s.mainCtx.Done():
		s.inflight.Add(-1)
		c <- Result[T]{Err: context.Canceled}
	case s.work <- request[T]{s.track(w), c, ctx}:
	}

	return NewFuture(c, cancel)
}

// InFlight returns the number of submitted works that have not finished yet,
// queued ones included.
func (s *Scheduler[T]) InFlight() int {
	return int(s.inflight.Load())
}

func (s *Scheduler[T]) Close() {
	s.once.Do(func() {
		s.mainCancel()
		s.close <- struct{}{}
		<-s.done
	})
}

func (s *Scheduler[T]) track(w Work[T]) Work[T] {
	return func(ctx context.Context) (T, error) {
		defer s.inflight.Add(-1)
		return w(ctx)
	}
}

func (s *Scheduler[T]) run() {
	defer close(s.done)
	for {
		select {
		case r := <-s.work:
			s.pending.Push(r)
			s.dispatch()
		case <-s.done:
			s.workers.Push(worker[T]{done: s.done, wg: &s.wg})
			s.dispatch()
		case <-s.close:
			s.drop()
			s.wg.Wait()
			return
		}
	}
}

// drop cancels the requests still waiting for a worker.
func (s *Scheduler[T]) drop() {
	for s.pending.Len() > 0 {
		r := s.pending.Pop()
		s.inflight.Add(-1)
		r.c <- Result[T]{Err: context.Canceled}
	}
}

// dispatch pairs idle workers with pending requests.
func (s *Scheduler[T]) dispatch() {
	for s.workers.Len() > 0 && s.pending.Len() > 0 {
		r := s.pending.Pop()
		w := s.workers.Pop()
		s.wg.Add(1)
		go w.Work(r)
	}
}

// Package scheduler implements a typed worker pool returning futures.
//
// A Scheduler[T] owns a fixed number of workers. AddWork never blocks on a
// busy pool: the request is queued and dispatched as soon as a worker is
// free. The update service runs it with a single worker so registry updates
// are serialized.
//
//	            AddWork(fn)
//	                 │
//	                 ▼
//	┌─────────────────────────────────────┐
//	│  pending  [req1] [req2] ...         │   FIFO
//	└────────────────┬────────────────────┘
//	                 │ dispatch()
//	                 ▼
//	┌─────────────────────────────────────┐
//	│  workers  [w1] ... [wN]             │   idle pool
//	└────────────────┬────────────────────┘
//	                 │ fn(ctx)
//	                 ▼
//	         Future[Result[T]]
//
// # Event Loop
//
// run() is the only goroutine touching the queues:
//
//	for {
//	    select {
//	    case r := <-s.work:   // new request: queue it, dispatch
//	    case <-s.done:        // a worker finished: return it to the pool, dispatch
//	    case <-s.close:       // wait for running work, exit
//	    }
//	}
//
// # Futures
//
// Every request gets a buffered result channel and a context derived from the
// scheduler context:
//
//   - future.C() yields exactly one Result{Data, Err}
//   - future.Stop() cancels that work's context
//   - Close() cancels every work's context
//
// A panic inside a work is recovered and delivered as an error result; the
// worker goes back to the pool.
//
// # In-flight Accounting
//
// InFlight counts submitted works that have not returned yet, whether running
// or queued. The counter drops before the result is delivered, so a caller
// that received a result never observes its own work as still in flight.
//
// # Shutdown
//
// Close cancels the scheduler context, waits for running works and stops the
// loop. Requests still queued at that point are dropped. Close is idempotent
// and AddWork after Close returns a future already holding context.Canceled.
//
//	sched := scheduler.NewScheduler[*models.UpdateResult](1)
//	defer sched.Close()
//
//	future := sched.AddWork(func(ctx context.Context) (*models.UpdateResult, error) {
//	    return updater.Run(ctx)
//	})
//	result := <-future.C()
package scheduler

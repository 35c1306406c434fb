// Package workerpool provides a fixed-size pool of goroutines fed through a shared task queue.
package workerpool

import (
	"context"
	"errors"
	"iter"
	"sync"
	"time"
)

var (
	// ErrQueueShutdown is returned by Enqueue once Shutdown has begun.
	ErrQueueShutdown = errors.New("work queue is shut down")
	// ErrEmpty is returned by TryRecv when no output is ready yet.
	ErrEmpty = errors.New("work queue has no pending output")
	// ErrDisconnected is returned when every worker has exited and all outputs were consumed.
	ErrDisconnected = errors.New("work queue output is disconnected")
	// ErrTimeout is returned by RecvTimeout when nothing arrived in time.
	ErrTimeout = errors.New("timed out waiting for work queue output")
)

// Task is a unit of work executed by a worker. Run reports false when there is nothing to publish.
type Task[O any] interface {
	Run() (O, bool)
}

// TaskFunc adapts an ordinary function to Task.
type TaskFunc[O any] func() (O, bool)

// Run calls f.
func (f TaskFunc[O]) Run() (O, bool) {
	return f()
}

// WorkQueue distributes tasks across a fixed set of workers and funnels their
// outputs into a single stream owned by the caller.
//
// Each task is received by exactly one worker. Outputs are only published for
// tasks whose Run reported true. A WorkQueue must be shut down by its owner,
// usually with defer q.Close().
type WorkQueue[O any] struct {
	tasks   chan Task[O]
	results chan O
	quit    chan struct{}
	workers int

	wg       sync.WaitGroup
	mu       sync.Mutex
	shutdown sync.Once
}

// New starts workers goroutines and returns the queue feeding them.
//
// capacity bounds the task buffer; Enqueue blocks while it is full. The output
// buffer holds at least capacity outputs so a caller may enqueue up to capacity
// tasks before it starts receiving. Zero workers is allowed: nothing will ever
// be published.
func New[O any](workers, capacity int) *WorkQueue[O] {
	if workers < 0 {
		workers = 0
	}
	if capacity < 0 {
		capacity = 0
	}

	q := &WorkQueue[O]{
		tasks:   make(chan Task[O], capacity),
		results: make(chan O, max(capacity, workers)),
		quit:    make(chan struct{}),
		workers: workers,
	}

	q.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go q.work()
	}

	return q
}

// Workers returns the number of workers started by New.
func (q *WorkQueue[O]) Workers() int {
	return q.workers
}

func (q *WorkQueue[O]) work() {
	defer q.wg.Done()

	for task := range q.tasks {
		// Tasks still queued when shutdown starts are dropped, never run.
		select {
		case <-q.quit:
			return
		default:
		}

		out, ok := task.Run()
		if !ok {
			continue
		}

		select {
		case q.results <- out:
		case <-q.quit:
			return
		}
	}
}

// Enqueue hands the task to the next free worker.
func (q *WorkQueue[O]) Enqueue(t Task[O]) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	select {
	case <-q.quit:
		return ErrQueueShutdown
	default:
	}

	select {
	case q.tasks <- t:
		return nil
	case <-q.quit:
		return ErrQueueShutdown
	}
}

// Recv blocks until a worker publishes an output, the queue is drained after
// shutdown (ErrDisconnected) or ctx is done.
func (q *WorkQueue[O]) Recv(ctx context.Context) (O, error) {
	select {
	case out, ok := <-q.results:
		if !ok {
			var zero O
			return zero, ErrDisconnected
		}
		return out, nil
	case <-ctx.Done():
		var zero O
		return zero, ctx.Err()
	}
}

// TryRecv returns a pending output without blocking.
func (q *WorkQueue[O]) TryRecv() (O, error) {
	var zero O
	select {
	case out, ok := <-q.results:
		if !ok {
			return zero, ErrDisconnected
		}
		return out, nil
	default:
		return zero, ErrEmpty
	}
}

// RecvTimeout waits up to d for an output.
func (q *WorkQueue[O]) RecvTimeout(d time.Duration) (O, error) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	var zero O
	select {
	case out, ok := <-q.results:
		if !ok {
			return zero, ErrDisconnected
		}
		return out, nil
	case <-timer.C:
		return zero, ErrTimeout
	}
}

// Iter yields outputs as they arrive. The sequence ends once the queue has
// been shut down and every buffered output was consumed.
func (q *WorkQueue[O]) Iter() iter.Seq[O] {
	return func(yield func(O) bool) {
		for out := range q.results {
			if !yield(out) {
				return
			}
		}
	}
}

// Shutdown stops accepting tasks, discards queued ones and waits for every
// worker to exit. Tasks already running finish first. Outputs published before
// shutdown stay readable. Calling Shutdown more than once is a no-op.
func (q *WorkQueue[O]) Shutdown() {
	q.shutdown.Do(func() {
		close(q.quit)

		q.mu.Lock()
		close(q.tasks)
		q.mu.Unlock()

		for range q.tasks {
		}

		q.wg.Wait()
		close(q.results)
	})
}

// Close shuts the queue down. It always returns nil.
func (q *WorkQueue[O]) Close() error {
	q.Shutdown()
	return nil
}

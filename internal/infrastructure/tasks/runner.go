// Package tasks provides a small in-process task runner for best-effort
// side effects: a bounded queue drained by worker goroutines, with optional
// per-task delay and retry with doubling backoff. Failures are logged and
// never propagated; callers that need stronger guarantees should not route
// through here.
package tasks

import (
	"context"
	"log"
	"sync"
	"time"
)

// RetryConfig controls retry behavior for a task. Attempts below 1 mean a
// single attempt; Delay doubles after every failed attempt.
type RetryConfig struct {
	Attempts int
	Delay    time.Duration
}

// Task is a unit of deferred work.
type Task struct {
	Name  string
	Delay time.Duration
	Retry RetryConfig
	Fn    func(ctx context.Context) error
}

// Runner drains a bounded task queue with a fixed worker pool.
type Runner struct {
	queue  chan Task
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewRunner creates and starts a runner with the given worker count and
// queue capacity.
func NewRunner(workers, capacity int) *Runner {
	if workers < 1 {
		workers = 1
	}
	if capacity < 1 {
		capacity = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	r := &Runner{
		queue:  make(chan Task, capacity),
		ctx:    ctx,
		cancel: cancel,
	}
	for i := 0; i < workers; i++ {
		r.wg.Add(1)
		go r.worker()
	}
	return r
}

// Submit enqueues a task without blocking. A full or closed queue drops the
// task; the drop is logged and reported through the return value.
func (r *Runner) Submit(t Task) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		log.Printf("[tasks] %s dropped: runner is shut down", t.Name)
		return false
	}
	select {
	case r.queue <- t:
		return true
	default:
		log.Printf("[tasks] %s dropped: queue full", t.Name)
		return false
	}
}

// Shutdown stops accepting tasks and waits for in-flight work, up to the
// context deadline. Queued tasks that have not started are abandoned once
// the deadline hits.
func (r *Runner) Shutdown(ctx context.Context) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.queue)
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		r.cancel()
		<-done
	}
}

func (r *Runner) worker() {
	defer r.wg.Done()
	for t := range r.queue {
		r.run(t)
	}
}

func (r *Runner) run(t Task) {
	if t.Fn == nil {
		return
	}
	if t.Delay > 0 && !r.sleep(t.Delay) {
		log.Printf("[tasks] %s abandoned during initial delay", t.Name)
		return
	}

	attempts := t.Retry.Attempts
	if attempts < 1 {
		attempts = 1
	}
	delay := t.Retry.Delay

	for attempt := 1; attempt <= attempts; attempt++ {
		err := t.Fn(r.ctx)
		if err == nil {
			return
		}
		log.Printf("[tasks] %s attempt %d/%d failed: %v", t.Name, attempt, attempts, err)
		if attempt == attempts {
			break
		}
		if !r.sleep(delay) {
			log.Printf("[tasks] %s abandoned during backoff", t.Name)
			return
		}
		delay *= 2
	}
	log.Printf("[tasks] %s gave up after %d attempts", t.Name, attempts)
}

// sleep waits for d, returning false when the runner is cancelled first.
func (r *Runner) sleep(d time.Duration) bool {
	if d <= 0 {
		return true
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-r.ctx.Done():
		return false
	}
}

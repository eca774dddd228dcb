package analyzer

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrPoolShutdown is returned when submitting to a shutdown pool.
var ErrPoolShutdown = errors.New("worker pool has been shut down")

// workerPool executes analyzer tasks on a bounded set of goroutines.
// Tasks submitted after shutdown are rejected; a cancelled context
// discards tasks that have not been queued yet.
type workerPool struct {
	maxWorkers int
	taskQueue  chan func()
	wg         sync.WaitGroup
	shutdown   atomic.Bool
	once       sync.Once
}

func newWorkerPool(maxWorkers int) *workerPool {
	if maxWorkers <= 0 {
		maxWorkers = 4
	}

	pool := &workerPool{
		maxWorkers: maxWorkers,
		taskQueue:  make(chan func(), maxWorkers*2),
	}

	for i := 0; i < maxWorkers; i++ {
		pool.wg.Add(1)
		go pool.worker()
	}

	return pool
}

func (p *workerPool) worker() {
	defer p.wg.Done()
	for task := range p.taskQueue {
		task()
	}
}

// submit queues a task, honoring context cancellation while waiting for
// queue space.
func (p *workerPool) submit(ctx context.Context, task func()) error {
	if p.shutdown.Load() {
		return ErrPoolShutdown
	}

	select {
	case p.taskQueue <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// close stops accepting tasks and blocks until queued tasks finish.
func (p *workerPool) close() {
	p.once.Do(func() {
		p.shutdown.Store(true)
		close(p.taskQueue)
	})
	p.wg.Wait()
}

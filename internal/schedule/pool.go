package schedule

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/vk/specrungo/internal/ctxlog"
)

// ErrPoolClosed is returned by Submit once Shutdown has begun.
var ErrPoolClosed = errors.New("worker pool is shut down")

// Pool is a fixed-size worker pool draining a FIFO task queue. One run
// owns exactly one pool; the scheduler shuts it down exactly once, on the
// success and on the panic path alike.
//
// The FIFO queue is what makes barrier waits deadlock-free: a task only
// ever waits on fragments of strictly earlier groups, and those tasks sit
// ahead of it in the queue.
type Pool struct {
	tasks chan func()
	wg    sync.WaitGroup

	mu       sync.Mutex
	closed   bool
	shutdown sync.Once
}

// NewPool starts size workers. A size of zero or less means the available
// parallelism. The queue holds up to queue tasks without blocking Submit;
// the scheduler sizes it to the total fragment count of the run.
func NewPool(ctx context.Context, size, queue int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	if queue < size {
		queue = size
	}
	p := &Pool{tasks: make(chan func(), queue)}
	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	return p
}

// worker is the processing loop for a single concurrent worker.
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()
	logger := ctxlog.FromContext(ctx).With("workerID", id)
	logger.Debug("Worker started.")
	for task := range p.tasks {
		task()
	}
	logger.Debug("Worker finished.")
}

// Submit enqueues a task. It fails once Shutdown has begun; nothing is
// newly submittable afterwards.
func (p *Pool) Submit(task func()) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPoolClosed
	}
	p.tasks <- task
	return nil
}

// Shutdown closes the intake. Already-queued tasks still drain; workers
// exit once the queue is empty. Calling Shutdown more than once is a
// no-op.
func (p *Pool) Shutdown() {
	p.shutdown.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.tasks)
		p.mu.Unlock()
	})
}

// Wait blocks until all workers have exited. Shutdown must have been
// called, otherwise Wait blocks forever.
func (p *Pool) Wait() {
	p.wg.Wait()
}

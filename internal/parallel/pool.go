// Package parallel provides the row-band worker pool used by the pixel stages.
//
// Colour filtering and box blur have no cross-pixel dependency inside a
// stage, so a buffer can be cut into horizontal bands and each band handed to
// a different goroutine. Output never depends on the number of workers.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines for parallel pixel processing.
//
// Each worker owns a queue and steals from the other queues when its own is
// empty, which keeps bands of uneven cost balanced.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers    int
	workQueues []chan func()

	// submit is held for reading while ExecuteAll queues work and for
	// writing while Close stops the workers, so nothing is queued after the
	// workers have drained their queues and exited.
	submit sync.RWMutex

	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}
	for i := range workers {
		p.workQueues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

var (
	defaultOnce sync.Once
	defaultPool *WorkerPool
)

// Default returns a process-wide pool sized to GOMAXPROCS.
// It is created on first use and never closed.
func Default() *WorkerPool {
	defaultOnce.Do(func() {
		defaultPool = NewWorkerPool(0)
	})
	return defaultPool
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.workQueues[id]
	for {
		select {
		case <-p.done:
			p.drainQueue(own)
			return
		case work := <-own:
			run(work)
		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				p.drainQueue(own)
				return
			case work := <-own:
				run(work)
			}
		}
	}
}

func run(work func()) {
	if work != nil {
		work()
	}
}

func (p *WorkerPool) drainQueue(queue chan func()) {
	for {
		select {
		case work := <-queue:
			run(work)
		default:
			return
		}
	}
}

// steal takes one item from another worker's queue, or returns nil.
func (p *WorkerPool) steal(myID int) func() {
	for i := range p.workers {
		if i == myID {
			continue
		}
		select {
		case work := <-p.workQueues[i]:
			return work
		default:
		}
	}
	return nil
}

// ExecuteAll distributes work across workers and waits for all of it.
// On a nil or closed pool the items run on the calling goroutine. Every
// item runs exactly once.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}
	if p == nil {
		runInline(work)
		return
	}

	p.submit.RLock()
	if !p.running.Load() {
		p.submit.RUnlock()
		runInline(work)
		return
	}

	var pending sync.WaitGroup
	pending.Add(len(work))
	for i, fn := range work {
		p.workQueues[i%p.workers] <- func() {
			defer pending.Done()
			run(fn)
		}
	}
	p.submit.RUnlock()

	pending.Wait()
}

func runInline(work []func()) {
	for _, fn := range work {
		run(fn)
	}
}

// Close stops the workers after the queued work has run. It waits for
// ExecuteAll calls that are still queueing.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if p == nil {
		return
	}
	p.submit.Lock()
	stopping := p.running.CompareAndSwap(true, false)
	if stopping {
		close(p.done)
	}
	p.submit.Unlock()

	if stopping {
		p.wg.Wait()
	}
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	if p == nil {
		return 1
	}
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p != nil && p.running.Load()
}

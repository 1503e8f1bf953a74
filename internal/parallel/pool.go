// Package parallel runs the per-pixel resolve kernel across worker
// goroutines. The output image is split into horizontal row bands; each
// band is an independent task, and workers steal bands from each other
// when their own queue runs dry.
//
// Thread safety: Pool is safe for concurrent use.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines with per-worker queues and
// work stealing.
type Pool struct {
	workers int

	// queues holds one buffered channel per worker. A worker pulls from
	// its own queue first and steals from the others when idle.
	queues []chan func()

	// done signals workers to drain and exit.
	done chan struct{}

	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	mine := p.queues[id]
	for {
		select {
		case <-p.done:
			drain(mine)
			return

		case task := <-mine:
			if task != nil {
				task()
			}

		default:
			if task := p.steal(id); task != nil {
				task()
			} else {
				select {
				case <-p.done:
					drain(mine)
					return
				case task := <-mine:
					if task != nil {
						task()
					}
				}
			}
		}
	}
}

// drain executes everything left in a queue.
func drain(queue chan func()) {
	for {
		select {
		case task := <-queue:
			if task != nil {
				task()
			}
		default:
			return
		}
	}
}

// steal takes one task from another worker's queue, if any.
func (p *Pool) steal(myID int) func() {
	for i := range p.workers {
		if i == myID {
			continue
		}
		select {
		case task := <-p.queues[i]:
			return task
		default:
		}
	}
	return nil
}

// ExecuteAll distributes tasks round-robin across workers and blocks until
// every task has completed. If the pool is closed this is a no-op.
func (p *Pool) ExecuteAll(tasks []func()) {
	if len(tasks) == 0 || !p.running.Load() {
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(tasks))

	for i, task := range tasks {
		fn := task
		wrapped := func() {
			defer wg.Done()
			fn()
		}
		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-p.done:
			wg.Done()
		}
	}

	wg.Wait()
}

// ForEachBand splits height rows into bands and runs fn for each band in
// parallel, blocking until the whole range is processed. fn receives the
// half-open row range [y0, y1).
func (p *Pool) ForEachBand(height int, fn func(y0, y1 int)) {
	bands := SplitRows(height, p.workers)
	if len(bands) == 0 {
		return
	}
	if len(bands) == 1 {
		// Single band: not worth a queue round trip.
		fn(bands[0].Y0, bands[0].Y1)
		return
	}

	tasks := make([]func(), len(bands))
	for i, b := range bands {
		band := b
		tasks[i] = func() { fn(band.Y0, band.Y1) }
	}
	p.ExecuteAll(tasks)
}

// Close stops accepting work, waits for queued tasks to finish, and stops
// all workers. Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}

// Copyright 2026 The elemwise Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, fixed-size worker pool for
// parallel computation. Unlike per-call goroutine spawning, a Pool is
// created once and reused across many operations, eliminating allocation
// and spawn overhead on the per-operation hot path.
//
// The pool exposes two surfaces: Submit, which returns a Task handle whose
// Wait reports the closure's completion token or error, and ParallelFor,
// a fire-and-join convenience for callers that do not need per-task
// results.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	task := pool.Submit(func() (int, error) {
//	    process(lo, hi)
//	    return 1, nil
//	})
//	token, err := task.Wait()
package workerpool

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan func()
	closeOnce  sync.Once
	closed     atomic.Bool
}

// Task is the handle to one submitted closure. Exactly one Task exists per
// Submit call; Wait may be called from any goroutine, any number of times.
type Task struct {
	done  chan struct{}
	token int
	err   error
}

// Wait blocks until the task completes, then returns its completion token
// or the error it produced. A panic inside the closure is captured by the
// worker and surfaced here as an error; other tasks are unaffected.
func (t *Task) Wait() (int, error) {
	<-t.done
	return t.token, t.err
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan func(), numWorkers*2),
	}

	// Spawn persistent workers
	for w := 0; w < numWorkers; w++ {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for run := range p.workC {
		run()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete before
// the workers exit. Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Submit enqueues fn for execution by any idle worker and returns its Task
// handle immediately. Tasks from different Submit calls may execute in any
// order and concurrently; the pool makes no FIFO guarantee.
//
// If the pool has been closed, fn runs inline on the calling goroutine and
// the returned handle is already complete.
func (p *Pool) Submit(fn func() (int, error)) *Task {
	t := &Task{done: make(chan struct{})}

	if p.closed.Load() {
		t.run(fn)
		return t
	}

	p.workC <- func() { t.run(fn) }
	return t
}

// run executes fn, converting a panic into an error on the handle.
func (t *Task) run(fn func() (int, error)) {
	defer func() {
		if r := recover(); r != nil {
			t.token = 0
			t.err = fmt.Errorf("workerpool: task panicked: %v", r)
		}
		close(t.done)
	}()
	t.token, t.err = fn()
}

// ParallelFor executes fn for each index in [0, n) using the worker pool.
// Each worker processes a contiguous range of indices.
// Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		// Fallback to sequential if pool is closed
		fn(0, n)
		return
	}

	// Determine number of workers to use (don't use more workers than items)
	workers := min(p.numWorkers, n)

	// For very small n, just run sequentially
	if workers == 1 {
		fn(0, n)
		return
	}

	// Calculate chunk size (ensure all items are covered)
	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			// No work for this worker
			wg.Done()
			continue
		}

		p.workC <- func() {
			defer wg.Done()
			fn(start, end)
		}
	}

	wg.Wait()
}

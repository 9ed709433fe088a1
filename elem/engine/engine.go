// Copyright 2026 elemwise Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package engine implements the parallel elementwise dispatch engine: it
// partitions a linear index range across a fixed worker pool, submits one
// task per partition, aggregates per-task completion tokens into a single
// verdict, and recovers once from an undersized destination by shrinking
// the work range.
//
// The engine is deliberately ignorant of element types and kernels; an
// operation hands it a body closure that walks its own kernel cascade over
// the partition it receives.
package engine

import (
	"fmt"
	"io"
	"os"

	"github.com/go-highway/elemwise/elem/workerpool"
)

// MinParallelElems is the default element count below which Run executes
// the body inline instead of fanning out to the pool. Partition submission
// costs a few microseconds; memory-bound elementwise work only wins above
// roughly this many elements.
const MinParallelElems = 4096

// Engine orchestrates partitioned parallel execution over a worker pool.
// It holds no per-operation state; one Engine may be shared by any number
// of concurrent callers.
type Engine struct {
	pool        *workerpool.Pool
	diag        io.Writer
	minParallel int
}

// Option configures an Engine.
type Option func(*Engine)

// WithDiagnostics redirects the engine's advisory diagnostic lines (for
// example the undersized-destination notice) away from os.Stderr. The
// diagnostic channel is not part of the programmatic contract.
func WithDiagnostics(w io.Writer) Option {
	return func(e *Engine) { e.diag = w }
}

// WithMinParallel overrides the inline-execution threshold. Zero forces
// every call through the partition/submit path; useful in tests.
func WithMinParallel(n int) Option {
	return func(e *Engine) { e.minParallel = n }
}

// New creates an Engine running on the given pool. The pool is borrowed,
// not owned: closing it is the caller's responsibility.
func New(pool *workerpool.Pool, opts ...Option) *Engine {
	e := &Engine{
		pool:        pool,
		diag:        os.Stderr,
		minParallel: MinParallelElems,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Workers returns the worker count of the underlying pool.
func (e *Engine) Workers() int {
	return e.pool.NumWorkers()
}

// extent is the tagged result of size resolution: either the full source
// extent, or a shrunk extent after undersized-destination recovery.
type extent struct {
	n      int
	shrunk bool
}

// resolveExtent computes the effective element count for one invocation.
// If the destination cannot hold the combined source extent, the engine
// does not fail: it emits a diagnostic and degrades to computing only as
// many leading elements as the destination holds. The shrunk extent cannot
// itself be undersized, so recovery happens at most once per call.
func (e *Engine) resolveExtent(srcLen, dstLen int) extent {
	if dstLen < srcLen {
		fmt.Fprintf(e.diag, "elemwise: destination holds %d of %d elements; computing truncated range\n",
			dstLen, srcLen)
		return extent{n: dstLen, shrunk: true}
	}
	return extent{n: srcLen}
}

// Plan returns the partitioning Run will use for n effective elements.
// Deterministic: reductions rely on it to size per-partition accumulators
// before invoking RunIndexed.
func (e *Engine) Plan(n int) []Range {
	if n <= 0 {
		return nil
	}
	if n < e.minParallel || e.pool.NumWorkers() == 1 {
		return []Range{{Start: 0, End: n}}
	}
	return Partition(n, e.pool.NumWorkers())
}

// Run executes body over [0, min(srcLen, dstLen)), split across the worker
// pool. It blocks until every partition has finished; partitions never
// outlive the call, so body may capture the caller's buffers by reference.
//
// srcLen is the combined source extent (the minimum of the source buffer
// lengths) and dstLen the destination capacity. A dstLen below srcLen
// triggers the single shrink recovery described on resolveExtent.
//
// The first body error wins; remaining partitions are still awaited (never
// cancelled) and their results discarded. A token-sum mismatch with no
// error reports ErrTaskIncomplete.
func (e *Engine) Run(srcLen, dstLen int, body func(r Range) error) error {
	return e.RunIndexed(srcLen, dstLen, func(_ int, r Range) error {
		return body(r)
	})
}

// RunIndexed is Run with the partition ordinal passed to the body. The
// ordinal indexes the slice returned by Plan for the same effective
// element count, which lets reductions write per-partition partial results
// without locking.
func (e *Engine) RunIndexed(srcLen, dstLen int, body func(part int, r Range) error) error {
	ext := e.resolveExtent(srcLen, dstLen)
	n := ext.n
	if n <= 0 {
		return nil
	}

	ranges := e.Plan(n)
	if len(ranges) == 1 {
		// Inline fast path: one partition, no submission overhead.
		if err := body(0, ranges[0]); err != nil {
			return &WorkerFaultError{Range: ranges[0], Err: err}
		}
		return nil
	}

	tasks := make([]*workerpool.Task, len(ranges))
	for i, r := range ranges {
		i, r := i, r
		tasks[i] = e.pool.Submit(func() (int, error) {
			if err := body(i, r); err != nil {
				return 0, err
			}
			return 1, nil
		})
	}

	// Await every handle in submission order. The first failure is
	// recorded but later handles are still drained so no partition is
	// left running past the call.
	var firstErr error
	tokens := 0
	for i, task := range tasks {
		token, err := task.Wait()
		if err != nil && firstErr == nil {
			firstErr = &WorkerFaultError{Range: ranges[i], Err: err}
		}
		tokens += token
	}
	if firstErr != nil {
		return firstErr
	}

	if tokens != len(tasks) {
		return fmt.Errorf("%w: %d of %d completion tokens", ErrTaskIncomplete, tokens, len(tasks))
	}
	return nil
}

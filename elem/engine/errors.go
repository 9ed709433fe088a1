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

package engine

import (
	"errors"
	"fmt"
)

// ErrTaskIncomplete reports that every task returned but the completion
// token sum does not match the submitted task count. It indicates the
// engine's own contract was violated, not a data problem, and is never
// produced by a well-behaved body.
var ErrTaskIncomplete = errors.New("engine: not all tasks completed")

// WorkerFaultError wraps an error raised inside one partition's task:
// either an error returned by the body or a panic recovered by the worker
// pool. The destination buffer remains memory-safe: completed partitions
// hold valid results, the faulting and unstarted partitions hold their
// prior contents.
type WorkerFaultError struct {
	// Range is the partition whose task faulted.
	Range Range

	// Err is the underlying failure.
	Err error
}

func (e *WorkerFaultError) Error() string {
	return fmt.Sprintf("engine: worker fault on [%d, %d): %v", e.Range.Start, e.Range.End, e.Err)
}

func (e *WorkerFaultError) Unwrap() error {
	return e.Err
}

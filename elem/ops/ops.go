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

// Package ops provides parallel elementwise operations over slices:
// arithmetic, comparison, fused multiply-add, exponentiation and friends.
//
// Every operation resolves its effective element count as the minimum of
// the source lengths, splits it across a process-wide worker pool, and
// runs a tier cascade (widest usable SIMD width down to scalar) inside
// each partition. Calls are synchronous: they return only after every
// partition has finished.
//
// A destination shorter than the sources is not an error: the operation
// computes only the leading elements the destination can hold and emits
// an advisory line on stderr. Callers that want isolation (their own pool,
// their own diagnostics) use the *With variants with an injected engine.
//
// Usage:
//
//	a := make([]float32, 1<<20)
//	b := make([]float32, 1<<20)
//	dst := make([]float32, 1<<20)
//	if err := ops.Add(dst, a, b); err != nil {
//	    ...
//	}
package ops

import (
	"os"
	"runtime"
	"strconv"
	"sync"

	"github.com/go-highway/elemwise/elem"
	"github.com/go-highway/elemwise/elem/engine"
	"github.com/go-highway/elemwise/elem/workerpool"
)

var (
	defaultOnce sync.Once
	defaultEng  *engine.Engine
)

// Default returns the process-wide engine used by the plain operation
// entry points. Its worker pool is created on first use, sized from
// ELEMWISE_MAX_PROCS when set and GOMAXPROCS otherwise, and lives for the
// remainder of the process.
func Default() *engine.Engine {
	defaultOnce.Do(func() {
		n := runtime.GOMAXPROCS(0)
		if v := os.Getenv("ELEMWISE_MAX_PROCS"); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				n = parsed
			}
		}
		defaultEng = engine.New(workerpool.New(n))
	})
	return defaultEng
}

// tierWidths are the vector byte widths tried widest-first by every
// cascade. 64 maps to AVX-512, 32 to AVX2, 16 to SSE2/NEON.
var tierWidths = [...]int{64, 32, 16}

// cascade walks the tier ladder over r for an operation whose step
// processes exactly w contiguous elements starting at index i. The step
// body is the same Go code at every width; the fixed trip count per tier
// is what lets the compiler unroll and vectorize it.
func cascade[T elem.Lanes](r engine.Range, step func(i, w int)) {
	kernels := make([]elem.Kernel, 0, len(tierWidths))
	for _, bytes := range tierWidths {
		bytes := bytes
		w := elem.LanesAt[T](bytes)
		if w <= 1 {
			continue
		}
		kernels = append(kernels, elem.Kernel{
			Width: w,
			Match: func() bool { return elem.WidthSupported(bytes) },
			Step:  func(i int) { step(i, w) },
		})
	}
	elem.RunCascade(kernels, func(i int) { step(i, 1) }, r.Start, r.End)
}

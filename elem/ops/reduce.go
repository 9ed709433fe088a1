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

package ops

import (
	"github.com/go-highway/elemwise/elem"
	"github.com/go-highway/elemwise/elem/engine"
)

// Reductions fold per-partition partial results at the gather step. The
// partial slots are indexed by partition ordinal, so workers never share a
// cache line intentionally written by another partition's accumulator
// beyond the final fold.
//
// Partition boundaries depend on the engine's worker count, so float
// reductions are deterministic for a fixed engine but may differ in the
// last bits across engines.

// Sum returns the sum of all elements of x.
func Sum[T elem.Lanes](x []T) (T, error) {
	return SumWith(Default(), x)
}

// SumWith is Sum on an injected engine.
func SumWith[T elem.Lanes](e *engine.Engine, x []T) (T, error) {
	n := len(x)
	plan := e.Plan(n)
	partials := make([]T, len(plan))

	err := e.RunIndexed(n, n, func(part int, r engine.Range) error {
		var acc T
		cascade[T](r, func(i, w int) {
			for j := i; j < i+w; j++ {
				acc += x[j]
			}
		})
		partials[part] = acc
		return nil
	})
	if err != nil {
		return 0, err
	}

	var total T
	for _, p := range partials {
		total += p
	}
	return total, nil
}

// Dot returns the dot product of a and b over min(len(a), len(b))
// elements.
func Dot[T elem.Floats](a, b []T) (T, error) {
	return DotWith(Default(), a, b)
}

// DotWith is Dot on an injected engine.
func DotWith[T elem.Floats](e *engine.Engine, a, b []T) (T, error) {
	n := min(len(a), len(b))
	plan := e.Plan(n)
	partials := make([]T, len(plan))

	err := e.RunIndexed(n, n, func(part int, r engine.Range) error {
		var acc T
		cascade[T](r, func(i, w int) {
			for j := i; j < i+w; j++ {
				acc += a[j] * b[j]
			}
		})
		partials[part] = acc
		return nil
	})
	if err != nil {
		return 0, err
	}

	var total T
	for _, p := range partials {
		total += p
	}
	return total, nil
}

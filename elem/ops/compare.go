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

// compareOp writes 1 where pred(a[i], b[i]) holds and 0 elsewhere, the
// mask convention shared by all six comparison operations. For floats,
// any comparison involving NaN is false.
func compareOp[T elem.Lanes](e *engine.Engine, dst, a, b []T, pred func(x, y T) bool) error {
	n := min(len(a), len(b))
	return e.Run(n, len(dst), func(r engine.Range) error {
		cascade[T](r, func(i, w int) {
			for j := i; j < i+w; j++ {
				if pred(a[j], b[j]) {
					dst[j] = 1
				} else {
					dst[j] = 0
				}
			}
		})
		return nil
	})
}

// Equal computes dst[i] = 1 if a[i] == b[i], else 0.
func Equal[T elem.Lanes](dst, a, b []T) error {
	return EqualWith(Default(), dst, a, b)
}

// EqualWith is Equal on an injected engine.
func EqualWith[T elem.Lanes](e *engine.Engine, dst, a, b []T) error {
	return compareOp(e, dst, a, b, func(x, y T) bool { return x == y })
}

// NotEqual computes dst[i] = 1 if a[i] != b[i], else 0.
func NotEqual[T elem.Lanes](dst, a, b []T) error {
	return NotEqualWith(Default(), dst, a, b)
}

// NotEqualWith is NotEqual on an injected engine.
func NotEqualWith[T elem.Lanes](e *engine.Engine, dst, a, b []T) error {
	return compareOp(e, dst, a, b, func(x, y T) bool { return x != y })
}

// Less computes dst[i] = 1 if a[i] < b[i], else 0.
func Less[T elem.Lanes](dst, a, b []T) error {
	return LessWith(Default(), dst, a, b)
}

// LessWith is Less on an injected engine.
func LessWith[T elem.Lanes](e *engine.Engine, dst, a, b []T) error {
	return compareOp(e, dst, a, b, func(x, y T) bool { return x < y })
}

// LessEqual computes dst[i] = 1 if a[i] <= b[i], else 0.
func LessEqual[T elem.Lanes](dst, a, b []T) error {
	return LessEqualWith(Default(), dst, a, b)
}

// LessEqualWith is LessEqual on an injected engine.
func LessEqualWith[T elem.Lanes](e *engine.Engine, dst, a, b []T) error {
	return compareOp(e, dst, a, b, func(x, y T) bool { return x <= y })
}

// Greater computes dst[i] = 1 if a[i] > b[i], else 0.
func Greater[T elem.Lanes](dst, a, b []T) error {
	return GreaterWith(Default(), dst, a, b)
}

// GreaterWith is Greater on an injected engine.
func GreaterWith[T elem.Lanes](e *engine.Engine, dst, a, b []T) error {
	return compareOp(e, dst, a, b, func(x, y T) bool { return x > y })
}

// GreaterEqual computes dst[i] = 1 if a[i] >= b[i], else 0.
func GreaterEqual[T elem.Lanes](dst, a, b []T) error {
	return GreaterEqualWith(Default(), dst, a, b)
}

// GreaterEqualWith is GreaterEqual on an injected engine.
func GreaterEqualWith[T elem.Lanes](e *engine.Engine, dst, a, b []T) error {
	return compareOp(e, dst, a, b, func(x, y T) bool { return x >= y })
}

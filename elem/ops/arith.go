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

// Add computes dst[i] = a[i] + b[i] over min(len(a), len(b)) elements.
func Add[T elem.Lanes](dst, a, b []T) error {
	return AddWith(Default(), dst, a, b)
}

// AddWith is Add on an injected engine.
func AddWith[T elem.Lanes](e *engine.Engine, dst, a, b []T) error {
	n := min(len(a), len(b))
	return e.Run(n, len(dst), func(r engine.Range) error {
		cascade[T](r, func(i, w int) {
			for j := i; j < i+w; j++ {
				dst[j] = a[j] + b[j]
			}
		})
		return nil
	})
}

// Sub computes dst[i] = a[i] - b[i].
func Sub[T elem.Lanes](dst, a, b []T) error {
	return SubWith(Default(), dst, a, b)
}

// SubWith is Sub on an injected engine.
func SubWith[T elem.Lanes](e *engine.Engine, dst, a, b []T) error {
	n := min(len(a), len(b))
	return e.Run(n, len(dst), func(r engine.Range) error {
		cascade[T](r, func(i, w int) {
			for j := i; j < i+w; j++ {
				dst[j] = a[j] - b[j]
			}
		})
		return nil
	})
}

// Mul computes dst[i] = a[i] * b[i].
func Mul[T elem.Lanes](dst, a, b []T) error {
	return MulWith(Default(), dst, a, b)
}

// MulWith is Mul on an injected engine.
func MulWith[T elem.Lanes](e *engine.Engine, dst, a, b []T) error {
	n := min(len(a), len(b))
	return e.Run(n, len(dst), func(r engine.Range) error {
		cascade[T](r, func(i, w int) {
			for j := i; j < i+w; j++ {
				dst[j] = a[j] * b[j]
			}
		})
		return nil
	})
}

// Div computes dst[i] = a[i] / b[i]. Division by zero follows IEEE 754
// (Inf or NaN), matching the scalar Go semantics for the element type.
func Div[T elem.Floats](dst, a, b []T) error {
	return DivWith(Default(), dst, a, b)
}

// DivWith is Div on an injected engine.
func DivWith[T elem.Floats](e *engine.Engine, dst, a, b []T) error {
	n := min(len(a), len(b))
	return e.Run(n, len(dst), func(r engine.Range) error {
		cascade[T](r, func(i, w int) {
			for j := i; j < i+w; j++ {
				dst[j] = a[j] / b[j]
			}
		})
		return nil
	})
}

// Min computes dst[i] = min(a[i], b[i]) by ordered comparison.
func Min[T elem.Lanes](dst, a, b []T) error {
	return MinWith(Default(), dst, a, b)
}

// MinWith is Min on an injected engine.
func MinWith[T elem.Lanes](e *engine.Engine, dst, a, b []T) error {
	n := min(len(a), len(b))
	return e.Run(n, len(dst), func(r engine.Range) error {
		cascade[T](r, func(i, w int) {
			for j := i; j < i+w; j++ {
				if a[j] < b[j] {
					dst[j] = a[j]
				} else {
					dst[j] = b[j]
				}
			}
		})
		return nil
	})
}

// Max computes dst[i] = max(a[i], b[i]) by ordered comparison.
func Max[T elem.Lanes](dst, a, b []T) error {
	return MaxWith(Default(), dst, a, b)
}

// MaxWith is Max on an injected engine.
func MaxWith[T elem.Lanes](e *engine.Engine, dst, a, b []T) error {
	n := min(len(a), len(b))
	return e.Run(n, len(dst), func(r engine.Range) error {
		cascade[T](r, func(i, w int) {
			for j := i; j < i+w; j++ {
				if a[j] > b[j] {
					dst[j] = a[j]
				} else {
					dst[j] = b[j]
				}
			}
		})
		return nil
	})
}

// AddScalar computes dst[i] = a[i] + s.
func AddScalar[T elem.Lanes](dst, a []T, s T) error {
	return AddScalarWith(Default(), dst, a, s)
}

// AddScalarWith is AddScalar on an injected engine.
func AddScalarWith[T elem.Lanes](e *engine.Engine, dst, a []T, s T) error {
	return e.Run(len(a), len(dst), func(r engine.Range) error {
		cascade[T](r, func(i, w int) {
			for j := i; j < i+w; j++ {
				dst[j] = a[j] + s
			}
		})
		return nil
	})
}

// SubScalar computes dst[i] = a[i] - s.
func SubScalar[T elem.Lanes](dst, a []T, s T) error {
	return SubScalarWith(Default(), dst, a, s)
}

// SubScalarWith is SubScalar on an injected engine.
func SubScalarWith[T elem.Lanes](e *engine.Engine, dst, a []T, s T) error {
	return e.Run(len(a), len(dst), func(r engine.Range) error {
		cascade[T](r, func(i, w int) {
			for j := i; j < i+w; j++ {
				dst[j] = a[j] - s
			}
		})
		return nil
	})
}

// Scale computes dst[i] = a[i] * s.
func Scale[T elem.Lanes](dst, a []T, s T) error {
	return ScaleWith(Default(), dst, a, s)
}

// ScaleWith is Scale on an injected engine.
func ScaleWith[T elem.Lanes](e *engine.Engine, dst, a []T, s T) error {
	return e.Run(len(a), len(dst), func(r engine.Range) error {
		cascade[T](r, func(i, w int) {
			for j := i; j < i+w; j++ {
				dst[j] = a[j] * s
			}
		})
		return nil
	})
}

// DivScalar computes dst[i] = a[i] / s.
func DivScalar[T elem.Floats](dst, a []T, s T) error {
	return DivScalarWith(Default(), dst, a, s)
}

// DivScalarWith is DivScalar on an injected engine.
func DivScalarWith[T elem.Floats](e *engine.Engine, dst, a []T, s T) error {
	return e.Run(len(a), len(dst), func(r engine.Range) error {
		cascade[T](r, func(i, w int) {
			for j := i; j < i+w; j++ {
				dst[j] = a[j] / s
			}
		})
		return nil
	})
}

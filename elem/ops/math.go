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
	"math"

	"github.com/go-highway/elemwise/elem"
	"github.com/go-highway/elemwise/elem/engine"
)

// transformOp applies f to each element of a. The transcendental
// operations have no vector-tier bodies without hand-written assembly, so
// their cascades collapse to the scalar fallback; parallelism across
// partitions still applies.
func transformOp[T elem.Floats](e *engine.Engine, dst, a []T, f func(x T) T) error {
	return e.Run(len(a), len(dst), func(r engine.Range) error {
		for i := r.Start; i < r.End; i++ {
			dst[i] = f(a[i])
		}
		return nil
	})
}

// Abs computes dst[i] = |a[i]|.
func Abs[T elem.Floats](dst, a []T) error {
	return AbsWith(Default(), dst, a)
}

// AbsWith is Abs on an injected engine.
func AbsWith[T elem.Floats](e *engine.Engine, dst, a []T) error {
	return e.Run(len(a), len(dst), func(r engine.Range) error {
		cascade[T](r, func(i, w int) {
			for j := i; j < i+w; j++ {
				if a[j] < 0 {
					dst[j] = -a[j]
				} else {
					dst[j] = a[j]
				}
			}
		})
		return nil
	})
}

// Neg computes dst[i] = -a[i].
func Neg[T elem.Floats](dst, a []T) error {
	return NegWith(Default(), dst, a)
}

// NegWith is Neg on an injected engine.
func NegWith[T elem.Floats](e *engine.Engine, dst, a []T) error {
	return e.Run(len(a), len(dst), func(r engine.Range) error {
		cascade[T](r, func(i, w int) {
			for j := i; j < i+w; j++ {
				dst[j] = -a[j]
			}
		})
		return nil
	})
}

// Sqrt computes dst[i] = sqrt(a[i]).
func Sqrt[T elem.Floats](dst, a []T) error {
	return SqrtWith(Default(), dst, a)
}

// SqrtWith is Sqrt on an injected engine.
func SqrtWith[T elem.Floats](e *engine.Engine, dst, a []T) error {
	return transformOp(e, dst, a, func(x T) T { return T(math.Sqrt(float64(x))) })
}

// Exp computes dst[i] = e^a[i].
func Exp[T elem.Floats](dst, a []T) error {
	return ExpWith(Default(), dst, a)
}

// ExpWith is Exp on an injected engine.
func ExpWith[T elem.Floats](e *engine.Engine, dst, a []T) error {
	return transformOp(e, dst, a, func(x T) T { return T(math.Exp(float64(x))) })
}

// Log computes dst[i] = ln(a[i]).
func Log[T elem.Floats](dst, a []T) error {
	return LogWith(Default(), dst, a)
}

// LogWith is Log on an injected engine.
func LogWith[T elem.Floats](e *engine.Engine, dst, a []T) error {
	return transformOp(e, dst, a, func(x T) T { return T(math.Log(float64(x))) })
}

// Sigmoid computes dst[i] = 1 / (1 + e^-a[i]).
func Sigmoid[T elem.Floats](dst, a []T) error {
	return SigmoidWith(Default(), dst, a)
}

// SigmoidWith is Sigmoid on an injected engine.
func SigmoidWith[T elem.Floats](e *engine.Engine, dst, a []T) error {
	return transformOp(e, dst, a, func(x T) T {
		return T(1.0 / (1.0 + math.Exp(-float64(x))))
	})
}

// Tanh computes dst[i] = tanh(a[i]).
func Tanh[T elem.Floats](dst, a []T) error {
	return TanhWith(Default(), dst, a)
}

// TanhWith is Tanh on an injected engine.
func TanhWith[T elem.Floats](e *engine.Engine, dst, a []T) error {
	return transformOp(e, dst, a, func(x T) T { return T(math.Tanh(float64(x))) })
}

// Pow computes dst[i] = a[i] ^ b[i] over min(len(a), len(b)) elements.
func Pow[T elem.Floats](dst, a, b []T) error {
	return PowWith(Default(), dst, a, b)
}

// PowWith is Pow on an injected engine.
func PowWith[T elem.Floats](e *engine.Engine, dst, a, b []T) error {
	n := min(len(a), len(b))
	return e.Run(n, len(dst), func(r engine.Range) error {
		for i := r.Start; i < r.End; i++ {
			dst[i] = T(math.Pow(float64(a[i]), float64(b[i])))
		}
		return nil
	})
}

// PowScalar computes dst[i] = a[i] ^ s.
func PowScalar[T elem.Floats](dst, a []T, s T) error {
	return PowScalarWith(Default(), dst, a, s)
}

// PowScalarWith is PowScalar on an injected engine.
func PowScalarWith[T elem.Floats](e *engine.Engine, dst, a []T, s T) error {
	return transformOp(e, dst, a, func(x T) T { return T(math.Pow(float64(x), float64(s))) })
}

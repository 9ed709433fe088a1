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

// MulAdd computes dst[i] = a[i]*b[i] + c[i] over the minimum of the three
// source lengths. The multiply and add may be fused by the hardware; no
// intermediate rounding is guaranteed either way.
func MulAdd[T elem.Floats](dst, a, b, c []T) error {
	return MulAddWith(Default(), dst, a, b, c)
}

// MulAddWith is MulAdd on an injected engine.
func MulAddWith[T elem.Floats](e *engine.Engine, dst, a, b, c []T) error {
	n := min(len(a), len(b), len(c))
	return e.Run(n, len(dst), func(r engine.Range) error {
		cascade[T](r, func(i, w int) {
			for j := i; j < i+w; j++ {
				dst[j] = a[j]*b[j] + c[j]
			}
		})
		return nil
	})
}

// MulAddScalar computes dst[i] = a[i]*s + c[i], the saxpy/daxpy shape.
func MulAddScalar[T elem.Floats](dst, a []T, s T, c []T) error {
	return MulAddScalarWith(Default(), dst, a, s, c)
}

// MulAddScalarWith is MulAddScalar on an injected engine.
func MulAddScalarWith[T elem.Floats](e *engine.Engine, dst, a []T, s T, c []T) error {
	n := min(len(a), len(c))
	return e.Run(n, len(dst), func(r engine.Range) error {
		cascade[T](r, func(i, w int) {
			for j := i; j < i+w; j++ {
				dst[j] = a[j]*s + c[j]
			}
		})
		return nil
	})
}

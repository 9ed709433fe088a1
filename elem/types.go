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

// Package elem provides the capability probe and kernel cascade contract
// that back the elemwise parallel operations.
//
// The probe detects the widest usable SIMD tier once at process start and
// exposes it as read-only state. Operations describe themselves as an
// ordered list of Kernel descriptors (widest tier first) plus a scalar
// fallback, and RunCascade walks that list over a contiguous index range.
//
// Basic usage:
//
//	import "github.com/go-highway/elemwise/elem"
//
//	fmt.Println(elem.CurrentName())     // e.g. "avx2"
//	if elem.WidthSupported(32) {
//	    // 256-bit tier kernels are usable
//	}
package elem

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can occupy SIMD lanes.
type Lanes interface {
	Floats | Integers
}

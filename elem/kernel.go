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

package elem

// Kernel describes one hardware-tier leaf of an operation's cascade.
//
// A kernel processes exactly Width contiguous elements per Step call.
// Match gates the kernel on CPU capability; a nil Match means always
// usable. A nil Step marks the tier as absent for this operation (for
// example, an integer multiply with no hardware support at that width)
// and the cascade falls through to the next tier without partially
// executing.
type Kernel struct {
	// Width is the number of elements consumed per Step call.
	Width int

	// Match reports whether this kernel may run on the current CPU.
	// Checked once per cascade walk, before any Step call.
	Match func() bool

	// Step processes elements [i, i+Width).
	Step func(i int)
}

// RunCascade walks kernels in order (widest tier first) over the half-open
// index range [start, end). Each usable kernel advances in full Width
// steps until fewer than Width elements remain, then the next narrower
// kernel takes over. The scalar fallback consumes any remainder one
// element at a time, including an empty remainder.
//
// Kernels must be ordered widest to narrowest; every index in the range is
// processed exactly once regardless of which tiers are usable.
func RunCascade(kernels []Kernel, scalar func(i int), start, end int) {
	i := start
	for _, k := range kernels {
		if k.Step == nil || k.Width <= 0 {
			continue
		}
		if k.Match != nil && !k.Match() {
			continue
		}
		for ; i+k.Width <= end; i += k.Width {
			k.Step(i)
		}
	}
	for ; i < end; i++ {
		scalar(i)
	}
}

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

// Range is a half-open interval [Start, End) over the logical element
// index space. Ranges produced by Partition for one operation are pairwise
// disjoint and their union is exactly [0, total).
type Range struct {
	Start, End int
}

// Len returns the number of elements in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Partition splits [0, total) into up to chunks contiguous, gap-free
// ranges ordered by Start. The remainder (total mod chunks) is spread one
// element each over the leading ranges, so sizes differ by at most one and
// the lengths sum to total exactly.
//
// total <= 0 yields nil. chunks < 1 is treated as 1. Partition is
// deterministic and side-effect-free: identical inputs always produce
// identical output.
func Partition(total, chunks int) []Range {
	if total <= 0 {
		return nil
	}
	if chunks < 1 {
		chunks = 1
	}
	if chunks > total {
		chunks = total
	}

	base := total / chunks
	rem := total % chunks

	ranges := make([]Range, chunks)
	start := 0
	for i := range ranges {
		size := base
		if i < rem {
			size++
		}
		ranges[i] = Range{Start: start, End: start + size}
		start += size
	}
	return ranges
}

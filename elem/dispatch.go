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

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel represents a SIMD instruction-set tier.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON

	numDispatchLevels
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// VectorWidth returns the vector register width in bytes for this tier.
// Scalar reports 16 so lane math stays consistent across tiers.
func (d DispatchLevel) VectorWidth() int {
	switch d {
	case DispatchAVX512:
		return 64
	case DispatchAVX2:
		return 32
	default:
		return 16
	}
}

// currentLevel is the widest SIMD tier usable on this CPU.
// Set by init() in dispatch_*.go files, never mutated afterwards.
var currentLevel DispatchLevel

// currentWidth is the vector register width in bytes for currentLevel.
var currentWidth int

// currentName is the human-readable name of the current tier.
var currentName string

// levelOK records which tiers are usable on this CPU. Written only by the
// per-arch init(), which happens-before any reader goroutine is spawned, so
// reads need no synchronization.
var levelOK [numDispatchLevels]bool

// hasFMA records fused multiply-add hardware support.
var hasFMA bool

// CurrentLevel returns the widest SIMD tier being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// Supported reports whether the given tier is usable on this CPU.
// DispatchScalar is always supported.
func Supported(level DispatchLevel) bool {
	if level < 0 || level >= numDispatchLevels {
		return false
	}
	return level == DispatchScalar || levelOK[level]
}

// WidthSupported reports whether any usable tier provides vectors of the
// given byte width. This is the architecture-neutral form of Supported:
// width 16 maps to SSE2 or NEON, 32 to AVX2, 64 to AVX-512.
func WidthSupported(bytes int) bool {
	switch bytes {
	case 64:
		return levelOK[DispatchAVX512]
	case 32:
		return levelOK[DispatchAVX2]
	case 16:
		return levelOK[DispatchSSE2] || levelOK[DispatchNEON]
	default:
		return false
	}
}

// HasFMA reports whether the CPU has fused multiply-add hardware.
func HasFMA() bool {
	return hasFMA
}

// NoSimdEnv checks if the ELEMWISE_NO_SIMD environment variable is set.
// When set, elemwise uses scalar fallback regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("ELEMWISE_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// setScalarMode forces the scalar tier. Called from per-arch init() when
// SIMD is disabled or unavailable.
func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // keep 16-byte lane math even in scalar mode
	currentName = "scalar"
}

// MaxLanes returns the number of lanes of type T in a vector of the
// current width.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return currentWidth / elementSize
}

// LanesAt returns the number of lanes of type T in a vector of the given
// byte width. Used by operations to size their per-tier kernel steps.
func LanesAt[T Lanes](bytes int) int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return bytes / elementSize
}

// SetLevelForTesting overrides the detected tier set and returns a restore
// function. Only tiers at or below level remain enabled. Intended for tests
// that need to exercise narrower cascade paths on wide hardware.
func SetLevelForTesting(level DispatchLevel) (restore func()) {
	savedLevel, savedWidth, savedName := currentLevel, currentWidth, currentName
	savedOK := levelOK

	for l := DispatchLevel(0); l < numDispatchLevels; l++ {
		if widthRank(l) > widthRank(level) {
			levelOK[l] = false
		}
	}
	currentLevel = level
	currentWidth = level.VectorWidth()
	currentName = level.String()

	return func() {
		currentLevel, currentWidth, currentName = savedLevel, savedWidth, savedName
		levelOK = savedOK
	}
}

// widthRank orders tiers by vector width so SetLevelForTesting can cap
// across architectures (NEON and SSE2 share a rank).
func widthRank(d DispatchLevel) int {
	switch d {
	case DispatchAVX512:
		return 3
	case DispatchAVX2:
		return 2
	case DispatchSSE2, DispatchNEON:
		return 1
	default:
		return 0
	}
}

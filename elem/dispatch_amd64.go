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

//go:build amd64

package elem

import (
	"os"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	levelOK[DispatchSSE2] = cpu.X86.HasSSE2
	hasFMA = cpu.X86.HasFMA

	// The AVX2 tier additionally requires FMA3 and BMI1, which ship on
	// every AVX2-era core; a CPU reporting AVX2 without them gets the
	// SSE2 tier instead.
	levelOK[DispatchAVX2] = cpu.X86.HasAVX2 &&
		cpuid.CPU.Supports(cpuid.FMA3, cpuid.BMI1)

	// AVX-512 needs the full F+DQ+BW+VL subset before the 512-bit tier
	// is worth enabling. x/sys/cpu exposes only the coarse flag, so the
	// subset check goes through cpuid.
	avx512 := cpu.X86.HasAVX512 &&
		cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512DQ, cpuid.AVX512BW, cpuid.AVX512VL)
	if os.Getenv("ELEMWISE_NO_AVX512") != "" {
		avx512 = false
	}
	levelOK[DispatchAVX512] = avx512

	switch {
	case levelOK[DispatchAVX512]:
		currentLevel = DispatchAVX512
	case levelOK[DispatchAVX2]:
		currentLevel = DispatchAVX2
	case levelOK[DispatchSSE2]:
		currentLevel = DispatchSSE2
	default:
		setScalarMode()
		return
	}
	currentWidth = currentLevel.VectorWidth()
	currentName = currentLevel.String()
}

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

//go:build arm64

package elem

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available as part of the
	// ARMv8-A base architecture. We still consult the cpu package for
	// consistency with the amd64 path.
	if cpu.ARM64.HasASIMD {
		levelOK[DispatchNEON] = true
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)
		currentName = "neon"
	} else {
		// Should never happen on ARMv8+.
		setScalarMode()
	}

	// FMLA is part of base NEON.
	hasFMA = cpu.ARM64.HasASIMD
}

// Copyright 2025 go-highway Authors
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

package hwy

import "testing"

func TestDispatchDetected(t *testing.T) {
	t.Logf("Dispatch level: %s, width %d bytes, FMA %v", CurrentName(), CurrentWidth(), HasFMA())

	switch CurrentWidth() {
	case 16, 32, 64:
	default:
		t.Errorf("CurrentWidth() = %d, want 16, 32 or 64", CurrentWidth())
	}
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, CurrentLevel().String() = %q", CurrentName(), CurrentLevel().String())
	}
	if n := NativeLanes(); n < MinGroupLanes || n > MaxGroupLanes || !IsPowerOfTwo(n) {
		t.Errorf("NativeLanes() = %d", n)
	}
	if CurrentLevel() == DispatchScalar && NativeLanes() != 2 {
		t.Errorf("scalar mode NativeLanes() = %d, want 2", NativeLanes())
	}
}

func TestDispatchLevelString(t *testing.T) {
	levels := map[DispatchLevel]string{
		DispatchScalar:    "scalar",
		DispatchSSE2:      "sse2",
		DispatchAVX2:      "avx2",
		DispatchAVX512:    "avx512",
		DispatchNEON:      "neon",
		DispatchSVE:       "sve",
		DispatchLevel(99): "unknown",
	}
	for level, want := range levels {
		if got := level.String(); got != want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", int(level), got, want)
		}
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("HWY_NO_SIMD=%q: NoSimdEnv() = %v, want %v", tt.val, got, tt.want)
		}
	}
}

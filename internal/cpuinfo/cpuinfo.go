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

// Package cpuinfo describes the CPU features and lane dispatch that decide
// how the matmul kernels run on this machine.
package cpuinfo

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/matbench/hwy"
)

// Feature is one CPU feature flag as reported by golang.org/x/sys/cpu.
type Feature struct {
	Name string
	Has  bool
	Note string
}

// Features returns the feature flags relevant to float64 kernels for the
// running architecture, or nil on architectures without a table.
func Features() []Feature {
	switch runtime.GOARCH {
	case "amd64", "386":
		return []Feature{
			{"HasSSE2", cpu.X86.HasSSE2, "128-bit baseline"},
			{"HasSSE41", cpu.X86.HasSSE41, ""},
			{"HasAVX", cpu.X86.HasAVX, ""},
			{"HasAVX2", cpu.X86.HasAVX2, "256-bit integer and float"},
			{"HasFMA", cpu.X86.HasFMA, "fused multiply-add"},
			{"HasAVX512F", cpu.X86.HasAVX512F, "512-bit foundation"},
			{"HasAVX512VL", cpu.X86.HasAVX512VL, ""},
		}
	case "arm64":
		return []Feature{
			{"HasFP", cpu.ARM64.HasFP, "floating point"},
			{"HasASIMD", cpu.ARM64.HasASIMD, "NEON baseline"},
			{"HasSVE", cpu.ARM64.HasSVE, "Scalable Vector Extension"},
			{"HasSVE2", cpu.ARM64.HasSVE2, ""},
		}
	}
	return nil
}

// Describe writes the platform, the hwy dispatch decision and the feature
// flags to w.
func Describe(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(&b, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(&b, "NumCPU: %d\n", runtime.NumCPU())
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "Dispatch level: %s\n", hwy.CurrentLevel())
	fmt.Fprintf(&b, "Dispatch width: %d bytes\n", hwy.CurrentWidth())
	fmt.Fprintf(&b, "Native float64 lanes: %d\n", hwy.NativeLanes())
	fmt.Fprintf(&b, "Hardware FMA: %v\n", hwy.HasFMA())
	if hwy.NoSimdEnv() {
		fmt.Fprintln(&b, "HWY_NO_SIMD is set: scalar dispatch forced")
	}

	if features := Features(); len(features) > 0 {
		fmt.Fprintln(&b)
		fmt.Fprintf(&b, "=== golang.org/x/sys/cpu (%s) ===\n", runtime.GOARCH)
		width := 0
		for _, f := range features {
			width = max(width, len(f.Name))
		}
		for _, f := range features {
			line := fmt.Sprintf("  %-*s %v", width+1, f.Name+":", f.Has)
			if f.Note != "" {
				line += " (" + f.Note + ")"
			}
			fmt.Fprintln(&b, line)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

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

package matmul

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/ajroetker/matbench/hwy"
)

//go:generate go run ../../../cmd/lanegen -mode kernels -widths 2,4,8 -rows 2,4 -groups 2 -pkg matmul -output z_kernels.go

// Func computes C = A * B for the matrix size it was bound to.
type Func func(c, a, b []float64)

// Kernel is one entry of the kernel set.
type Kernel struct {
	// Name is the short identifier used on the command line.
	Name string

	// Label is printed before the throughput figure, e.g. "Vector J:".
	Label string

	// N is the matrix size the kernel is bound to.
	N int

	// Aligned is set for the lane kernels; the harness only runs them on
	// buffers aligned to Config.Alignment.
	Aligned bool

	// Fused is set for kernels that contract each multiply-add into one
	// rounding. Their k order matches Reference but the last bits may not.
	Fused bool

	// Fn runs the kernel.
	Fn Func
}

// Kernels validates cfg and returns the kernel set bound to it, in this
// order: simple, ikj, vector-j, vector-i, blocked, multi, tiled, followed
// by the vendor kernels when cfg.IncludeExternal is set.
//
// The lane kernels are instantiated with the hwy lane group matching
// cfg.Lanes(). Each runs as the SIMD tile kernel for its shape when the CPU
// has one, else as the generated unrolled tile kernel, else as the generic
// Base kernel.
func Kernels(cfg Config) ([]Kernel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	n := cfg.N

	kernels := []Kernel{
		{Name: "simple", Label: "Simple:", N: n, Fn: func(c, a, b []float64) { Reference(c, a, b, n) }},
		{Name: "ikj", Label: "IKJ:", N: n, Fn: func(c, a, b []float64) { ReferenceIKJ(c, a, b, n) }},
	}

	switch lanes := cfg.Lanes(); lanes {
	case 2:
		kernels = append(kernels, laneKernels[hwy.Vec2](cfg)...)
	case 4:
		kernels = append(kernels, laneKernels[hwy.Vec4](cfg)...)
	case 8:
		kernels = append(kernels, laneKernels[hwy.Vec8](cfg)...)
	default:
		// Unreachable after Validate.
		return nil, fmt.Errorf("%w: no lane group with %d lanes", ErrInvalidConfig, lanes)
	}

	if cfg.IncludeExternal {
		for _, ext := range availableExternals() {
			fn := ext.fn
			kernels = append(kernels, Kernel{
				Name:  ext.name,
				Label: ext.label + ":",
				N:     n,
				Fn:    func(c, a, b []float64) { fn(c, a, b, n) },
			})
		}
	}
	return kernels, nil
}

// laneKernels binds the data-parallel kernels to lane group G.
func laneKernels[G hwy.Group[G]](cfg Config) []Kernel {
	n, rows, groups := cfg.N, cfg.RegisterBlock, cfg.VectorCount
	w := hwy.NumLanes[G]()
	return []Kernel{
		tileKernel("vector-j", "Vector J:", n, 1, w, BaseVectorJ[G]),
		tileKernel("vector-i", "Vector I:", n, w, 1, BaseVectorI[G]),
		tileKernel("blocked", "Blocked:", n, rows, w, func(c, a, b []float64, n int) {
			BaseRegisterBlocked[G](c, a, b, n, rows)
		}),
		tileKernel("multi", "Multi:", n, 1, w*groups, func(c, a, b []float64, n int) {
			BaseMultiGroup[G](c, a, b, n, groups)
		}),
		tileKernel("tiled", "Tiled:", n, rows, w*groups, func(c, a, b []float64, n int) {
			BaseTiled[G](c, a, b, n, rows, groups)
		}),
	}
}

// tileKernel binds the fastest implementation of a kernel that computes C
// in rows x cols tiles: the SIMD tile kernel, the generated unrolled tile
// kernel, or generic.
func tileKernel(name, label string, n, rows, cols int, generic func(c, a, b []float64, n int)) Kernel {
	k := Kernel{Name: name, Label: label, N: n, Aligned: true}
	fn := generic
	if accel := accelTile(rows, cols); accel != nil {
		fn, k.Fused = accel, true
	} else if unrolled := unrolledTile(rows, cols); unrolled != nil {
		fn = unrolled
	}
	k.Fn = func(c, a, b []float64) { fn(c, a, b, n) }
	return k
}

// Names returns the kernel names in order.
func Names(kernels []Kernel) []string {
	return lo.Map(kernels, func(k Kernel, _ int) string { return k.Name })
}

// Lookup returns the kernel with the given name.
func Lookup(kernels []Kernel, name string) (Kernel, bool) {
	return lo.Find(kernels, func(k Kernel) bool { return k.Name == name })
}

// Select returns the kernels whose names are listed, in registry order.
// An empty list selects every kernel. Unknown names are reported as an
// error.
func Select(kernels []Kernel, names []string) ([]Kernel, error) {
	if len(names) == 0 {
		return kernels, nil
	}
	if unknown, _ := lo.Difference(names, Names(kernels)); len(unknown) > 0 {
		return nil, fmt.Errorf("matmul: unknown kernels %v (have %v)", unknown, Names(kernels))
	}
	return lo.Filter(kernels, func(k Kernel, _ int) bool {
		return lo.Contains(names, k.Name)
	}), nil
}

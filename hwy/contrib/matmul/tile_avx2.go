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

//go:build amd64 && goexperiment.simd

package matmul

import (
	"simd/archsimd"

	"github.com/ajroetker/matbench/hwy"
)

// This file provides AVX2 tile kernels that keep the tile of C in
// archsimd.Float64x4 accumulators. MulAdd fuses the multiply and the add, so
// results can differ from Reference in the last bits; the k order is the
// same.

// accelTile returns the AVX2 kernel for rows x cols tiles of C, or nil if
// there is none or the CPU lacks AVX2 with FMA.
func accelTile(rows, cols int) func(c, a, b []float64, n int) {
	switch hwy.CurrentLevel() {
	case hwy.DispatchAVX2, hwy.DispatchAVX512:
	default:
		return nil
	}
	if !hwy.HasFMA() {
		return nil
	}
	switch {
	case rows == 1 && cols == 4:
		return tile1x4_AVX2
	case rows == 1 && cols == 8:
		return tile1x8_AVX2
	case rows == 1 && cols == 16:
		return tile1x16_AVX2
	case rows == 4 && cols == 4:
		return tile4x4_AVX2
	case rows == 4 && cols == 8:
		return tile4x8_AVX2
	case rows == 4 && cols == 16:
		return tile4x16_AVX2
	}
	return nil
}

// tile1x4_AVX2 computes C = A * B holding each 1x4 tile of C in one Float64x4
// accumulator.
func tile1x4_AVX2(c, a, b []float64, n int) {
	checkDims("tile1x4_AVX2", c, a, b, n)
	checkTile("tile1x4_AVX2", n, 1, 4)
	zero := archsimd.BroadcastFloat64x4(0)
	for i := range n {
		a0 := a[i*n : i*n+n]
		for j := 0; j < n; j += 4 {
			r0v0 := zero
			for k := range n {
				bk := b[k*n+j : k*n+j+4]
				b0 := archsimd.LoadFloat64x4Slice(bk)
				x0 := archsimd.BroadcastFloat64x4(a0[k])
				r0v0 = x0.MulAdd(b0, r0v0)
			}
			c0 := c[i*n+j : i*n+j+4]
			r0v0.StoreSlice(c0)
		}
	}
}

// tile1x8_AVX2 computes C = A * B holding each 1x8 tile of C in 2 Float64x4
// accumulators.
func tile1x8_AVX2(c, a, b []float64, n int) {
	checkDims("tile1x8_AVX2", c, a, b, n)
	checkTile("tile1x8_AVX2", n, 1, 8)
	zero := archsimd.BroadcastFloat64x4(0)
	for i := range n {
		a0 := a[i*n : i*n+n]
		for j := 0; j < n; j += 8 {
			r0v0 := zero
			r0v1 := zero
			for k := range n {
				bk := b[k*n+j : k*n+j+8]
				b0 := archsimd.LoadFloat64x4Slice(bk)
				b1 := archsimd.LoadFloat64x4Slice(bk[4:])
				x0 := archsimd.BroadcastFloat64x4(a0[k])
				r0v0 = x0.MulAdd(b0, r0v0)
				r0v1 = x0.MulAdd(b1, r0v1)
			}
			c0 := c[i*n+j : i*n+j+8]
			r0v0.StoreSlice(c0)
			r0v1.StoreSlice(c0[4:])
		}
	}
}

// tile1x16_AVX2 computes C = A * B holding each 1x16 tile of C in 4 Float64x4
// accumulators.
func tile1x16_AVX2(c, a, b []float64, n int) {
	checkDims("tile1x16_AVX2", c, a, b, n)
	checkTile("tile1x16_AVX2", n, 1, 16)
	zero := archsimd.BroadcastFloat64x4(0)
	for i := range n {
		a0 := a[i*n : i*n+n]
		for j := 0; j < n; j += 16 {
			r0v0 := zero
			r0v1 := zero
			r0v2 := zero
			r0v3 := zero
			for k := range n {
				bk := b[k*n+j : k*n+j+16]
				b0 := archsimd.LoadFloat64x4Slice(bk)
				b1 := archsimd.LoadFloat64x4Slice(bk[4:])
				b2 := archsimd.LoadFloat64x4Slice(bk[8:])
				b3 := archsimd.LoadFloat64x4Slice(bk[12:])
				x0 := archsimd.BroadcastFloat64x4(a0[k])
				r0v0 = x0.MulAdd(b0, r0v0)
				r0v1 = x0.MulAdd(b1, r0v1)
				r0v2 = x0.MulAdd(b2, r0v2)
				r0v3 = x0.MulAdd(b3, r0v3)
			}
			c0 := c[i*n+j : i*n+j+16]
			r0v0.StoreSlice(c0)
			r0v1.StoreSlice(c0[4:])
			r0v2.StoreSlice(c0[8:])
			r0v3.StoreSlice(c0[12:])
		}
	}
}

// tile4x4_AVX2 computes C = A * B holding each 4x4 tile of C in 4 Float64x4
// accumulators.
func tile4x4_AVX2(c, a, b []float64, n int) {
	checkDims("tile4x4_AVX2", c, a, b, n)
	checkTile("tile4x4_AVX2", n, 4, 4)
	zero := archsimd.BroadcastFloat64x4(0)
	for i := 0; i < n; i += 4 {
		a0 := a[i*n : i*n+n]
		a1 := a[i*n+n : i*n+2*n]
		a2 := a[i*n+2*n : i*n+3*n]
		a3 := a[i*n+3*n : i*n+4*n]
		for j := 0; j < n; j += 4 {
			r0v0 := zero
			r1v0 := zero
			r2v0 := zero
			r3v0 := zero
			for k := range n {
				bk := b[k*n+j : k*n+j+4]
				b0 := archsimd.LoadFloat64x4Slice(bk)
				x0 := archsimd.BroadcastFloat64x4(a0[k])
				r0v0 = x0.MulAdd(b0, r0v0)
				x1 := archsimd.BroadcastFloat64x4(a1[k])
				r1v0 = x1.MulAdd(b0, r1v0)
				x2 := archsimd.BroadcastFloat64x4(a2[k])
				r2v0 = x2.MulAdd(b0, r2v0)
				x3 := archsimd.BroadcastFloat64x4(a3[k])
				r3v0 = x3.MulAdd(b0, r3v0)
			}
			c0 := c[i*n+j : i*n+j+4]
			r0v0.StoreSlice(c0)
			c1 := c[i*n+n+j : i*n+n+j+4]
			r1v0.StoreSlice(c1)
			c2 := c[i*n+2*n+j : i*n+2*n+j+4]
			r2v0.StoreSlice(c2)
			c3 := c[i*n+3*n+j : i*n+3*n+j+4]
			r3v0.StoreSlice(c3)
		}
	}
}

// tile4x8_AVX2 computes C = A * B holding each 4x8 tile of C in 8 Float64x4
// accumulators.
func tile4x8_AVX2(c, a, b []float64, n int) {
	checkDims("tile4x8_AVX2", c, a, b, n)
	checkTile("tile4x8_AVX2", n, 4, 8)
	zero := archsimd.BroadcastFloat64x4(0)
	for i := 0; i < n; i += 4 {
		a0 := a[i*n : i*n+n]
		a1 := a[i*n+n : i*n+2*n]
		a2 := a[i*n+2*n : i*n+3*n]
		a3 := a[i*n+3*n : i*n+4*n]
		for j := 0; j < n; j += 8 {
			r0v0 := zero
			r0v1 := zero
			r1v0 := zero
			r1v1 := zero
			r2v0 := zero
			r2v1 := zero
			r3v0 := zero
			r3v1 := zero
			for k := range n {
				bk := b[k*n+j : k*n+j+8]
				b0 := archsimd.LoadFloat64x4Slice(bk)
				b1 := archsimd.LoadFloat64x4Slice(bk[4:])
				x0 := archsimd.BroadcastFloat64x4(a0[k])
				r0v0 = x0.MulAdd(b0, r0v0)
				r0v1 = x0.MulAdd(b1, r0v1)
				x1 := archsimd.BroadcastFloat64x4(a1[k])
				r1v0 = x1.MulAdd(b0, r1v0)
				r1v1 = x1.MulAdd(b1, r1v1)
				x2 := archsimd.BroadcastFloat64x4(a2[k])
				r2v0 = x2.MulAdd(b0, r2v0)
				r2v1 = x2.MulAdd(b1, r2v1)
				x3 := archsimd.BroadcastFloat64x4(a3[k])
				r3v0 = x3.MulAdd(b0, r3v0)
				r3v1 = x3.MulAdd(b1, r3v1)
			}
			c0 := c[i*n+j : i*n+j+8]
			r0v0.StoreSlice(c0)
			r0v1.StoreSlice(c0[4:])
			c1 := c[i*n+n+j : i*n+n+j+8]
			r1v0.StoreSlice(c1)
			r1v1.StoreSlice(c1[4:])
			c2 := c[i*n+2*n+j : i*n+2*n+j+8]
			r2v0.StoreSlice(c2)
			r2v1.StoreSlice(c2[4:])
			c3 := c[i*n+3*n+j : i*n+3*n+j+8]
			r3v0.StoreSlice(c3)
			r3v1.StoreSlice(c3[4:])
		}
	}
}

// tile4x16_AVX2 computes C = A * B holding each 4x16 tile of C in 16 Float64x4
// accumulators.
func tile4x16_AVX2(c, a, b []float64, n int) {
	checkDims("tile4x16_AVX2", c, a, b, n)
	checkTile("tile4x16_AVX2", n, 4, 16)
	zero := archsimd.BroadcastFloat64x4(0)
	for i := 0; i < n; i += 4 {
		a0 := a[i*n : i*n+n]
		a1 := a[i*n+n : i*n+2*n]
		a2 := a[i*n+2*n : i*n+3*n]
		a3 := a[i*n+3*n : i*n+4*n]
		for j := 0; j < n; j += 16 {
			r0v0 := zero
			r0v1 := zero
			r0v2 := zero
			r0v3 := zero
			r1v0 := zero
			r1v1 := zero
			r1v2 := zero
			r1v3 := zero
			r2v0 := zero
			r2v1 := zero
			r2v2 := zero
			r2v3 := zero
			r3v0 := zero
			r3v1 := zero
			r3v2 := zero
			r3v3 := zero
			for k := range n {
				bk := b[k*n+j : k*n+j+16]
				b0 := archsimd.LoadFloat64x4Slice(bk)
				b1 := archsimd.LoadFloat64x4Slice(bk[4:])
				b2 := archsimd.LoadFloat64x4Slice(bk[8:])
				b3 := archsimd.LoadFloat64x4Slice(bk[12:])
				x0 := archsimd.BroadcastFloat64x4(a0[k])
				r0v0 = x0.MulAdd(b0, r0v0)
				r0v1 = x0.MulAdd(b1, r0v1)
				r0v2 = x0.MulAdd(b2, r0v2)
				r0v3 = x0.MulAdd(b3, r0v3)
				x1 := archsimd.BroadcastFloat64x4(a1[k])
				r1v0 = x1.MulAdd(b0, r1v0)
				r1v1 = x1.MulAdd(b1, r1v1)
				r1v2 = x1.MulAdd(b2, r1v2)
				r1v3 = x1.MulAdd(b3, r1v3)
				x2 := archsimd.BroadcastFloat64x4(a2[k])
				r2v0 = x2.MulAdd(b0, r2v0)
				r2v1 = x2.MulAdd(b1, r2v1)
				r2v2 = x2.MulAdd(b2, r2v2)
				r2v3 = x2.MulAdd(b3, r2v3)
				x3 := archsimd.BroadcastFloat64x4(a3[k])
				r3v0 = x3.MulAdd(b0, r3v0)
				r3v1 = x3.MulAdd(b1, r3v1)
				r3v2 = x3.MulAdd(b2, r3v2)
				r3v3 = x3.MulAdd(b3, r3v3)
			}
			c0 := c[i*n+j : i*n+j+16]
			r0v0.StoreSlice(c0)
			r0v1.StoreSlice(c0[4:])
			r0v2.StoreSlice(c0[8:])
			r0v3.StoreSlice(c0[12:])
			c1 := c[i*n+n+j : i*n+n+j+16]
			r1v0.StoreSlice(c1)
			r1v1.StoreSlice(c1[4:])
			r1v2.StoreSlice(c1[8:])
			r1v3.StoreSlice(c1[12:])
			c2 := c[i*n+2*n+j : i*n+2*n+j+16]
			r2v0.StoreSlice(c2)
			r2v1.StoreSlice(c2[4:])
			r2v2.StoreSlice(c2[8:])
			r2v3.StoreSlice(c2[12:])
			c3 := c[i*n+3*n+j : i*n+3*n+j+16]
			r3v0.StoreSlice(c3)
			r3v1.StoreSlice(c3[4:])
			r3v2.StoreSlice(c3[8:])
			r3v3.StoreSlice(c3[12:])
		}
	}
}

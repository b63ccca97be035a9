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

// Package matmul provides interchangeable kernels for the dense square
// matrix product C = A·B on row-major float64 buffers, together with the
// reference (oracle) kernel they are validated against.
//
// Every kernel has the same contract:
//
//   - a, b and c are n×n row-major buffers indexed row*n + col;
//   - a and b are only read, c is fully overwritten (nothing accumulates
//     across calls);
//   - no state is kept between calls, so the same inputs always produce the
//     same output;
//   - for a fixed (i, j) the products A[i,k]·B[k,j] are summed in increasing
//     k order, exactly like Reference. Variants only differ in which (i, j)
//     pairs they compute together. Kernels marked Fused round each
//     multiply-add once, and the vendor kernels below make no ordering
//     promise; both are only held to the harness tolerance.
//
// The data-parallel kernels are written once against hwy.Group and
// instantiated for the configured lane width. Each computes C in
// rows x cols tiles, and Kernels swaps in a faster body for the same tile
// shape where one exists: an AVX2 kernel over archsimd.Float64x4 when built
// with GOEXPERIMENT=simd on a CPU with AVX2 and FMA, otherwise a kernel
// generated by cmd/lanegen into z_kernels.go that holds the tile in scalar
// locals:
//
//	kernels, err := matmul.Kernels(matmul.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	for _, k := range kernels {
//		k.Fn(c, a, b)
//	}
//
// Vendor BLAS libraries are included as additional kernels: gonum's pure-Go
// dgemm always, Apple Accelerate when built with cgo on darwin, and
// OpenBLAS when built with cgo and the openblas build tag.
package matmul

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

import "github.com/ajroetker/matbench/hwy"

// BaseVectorJ computes C = A * B data-parallel over the column index.
//
// For each row i and each group of lanes columns starting at j, one lane
// group accumulator walks k: A[i,k] is broadcast, B[k, j:j+lanes] is loaded
// contiguously, and the product is accumulated. The accumulator is stored
// to C[i, j:j+lanes] once k is exhausted.
//
// Each lane accumulates over k in increasing order, so every element is
// summed in the same order as Reference.
func BaseVectorJ[G hwy.Group[G]](c, a, b []float64, n int) {
	checkDims("VectorJ", c, a, b, n)
	lanes := hwy.NumLanes[G]()
	checkLanes("VectorJ", n, lanes)

	for i := range n {
		aRow := a[i*n : i*n+n]
		cRow := c[i*n : i*n+n]
		for j := 0; j < n; j += lanes {
			acc := hwy.Zero[G]()
			for k, aik := range aRow {
				vA := hwy.Set[G](aik)        // Broadcast A[i,k]
				vB := hwy.Load[G](b[k*n+j:]) // B[k, j:j+lanes]
				acc = hwy.MulAdd(vA, vB, acc)
			}
			hwy.Store(acc, cRow[j:])
		}
	}
}

// BaseVectorI computes C = A * B data-parallel over the row index.
//
// Lane l of the accumulator holds C[i+l, j]. For each k, the column slice
// A[i:i+lanes, k] is gathered with a strided load (stride n), B[k,j] is
// broadcast, and the finished column slice is scattered back to C with a
// strided store.
func BaseVectorI[G hwy.Group[G]](c, a, b []float64, n int) {
	checkDims("VectorI", c, a, b, n)
	lanes := hwy.NumLanes[G]()
	checkLanes("VectorI", n, lanes)

	for i := 0; i < n; i += lanes {
		aBlock := a[i*n:]
		for j := range n {
			acc := hwy.Zero[G]()
			for k := range n {
				vA := hwy.LoadStrided[G](aBlock[k:], n) // A[i:i+lanes, k]
				vB := hwy.Set[G](b[k*n+j])              // Broadcast B[k,j]
				acc = hwy.MulAdd(vA, vB, acc)
			}
			hwy.StoreStrided(acc, c[i*n+j:], n)
		}
	}
}

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

// Reference computes C = A * B with the plain i-j-k triple loop:
//
//	C[i,j] = sum(A[i,k] * B[k,j]) for k in 0..n-1
//
// Each element is accumulated left to right in a scalar starting from zero.
// This is the oracle every other kernel is validated against.
func Reference(c, a, b []float64, n int) {
	checkDims("Reference", c, a, b, n)

	for i := range n {
		aRow := a[i*n : i*n+n]
		cRow := c[i*n : i*n+n]
		for j := range n {
			var sum float64
			for k, aik := range aRow {
				sum += aik * b[k*n+j]
			}
			cRow[j] = sum
		}
	}
}

// ReferenceIKJ is the scalar loop-interchanged (i-k-j) implementation.
// The innermost loop walks rows of B and C contiguously. C is cleared first
// and then accumulated into, so the per-element summation order is the
// same as Reference.
func ReferenceIKJ(c, a, b []float64, n int) {
	checkDims("ReferenceIKJ", c, a, b, n)

	// Clear output
	clear(c[:n*n])

	for i := range n {
		cRow := c[i*n : i*n+n]
		for k := range n {
			aik := a[i*n+k]
			bRow := b[k*n : k*n+n]
			for j, bkj := range bRow {
				cRow[j] += aik * bkj
			}
		}
	}
}

// checkDims panics if any buffer is too short for an n×n matrix.
func checkDims(op string, c, a, b []float64, n int) {
	if n < 0 {
		panic(op + ": negative dimension")
	}
	size := n * n
	if len(a) < size {
		panic(op + ": A slice too short")
	}
	if len(b) < size {
		panic(op + ": B slice too short")
	}
	if len(c) < size {
		panic(op + ": C slice too short")
	}
}

// checkLanes panics if n is not a multiple of the lane span.
func checkLanes(op string, n, span int) {
	if span <= 0 || n%span != 0 {
		panic(op + ": n is not a multiple of the lane span")
	}
}

// checkTile panics if n is not a multiple of both tile dimensions.
func checkTile(op string, n, rows, cols int) {
	if rows <= 0 || cols <= 0 || n%rows != 0 || n%cols != 0 {
		panic(op + ": n is not a multiple of the tile")
	}
}

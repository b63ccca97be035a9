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

// BaseRegisterBlocked computes C = A * B processing rows rows of C at a time.
//
// For each k, one group of B[k, j:j+lanes] is loaded and reused for all
// blocked rows, each with its own accumulator, so one B load feeds rows
// multiply-adds. Same semantics as BaseVectorJ with rows-way row unrolling.
//
// rows must be in [1, MaxRegisterBlock] and divide n.
func BaseRegisterBlocked[G hwy.Group[G]](c, a, b []float64, n, rows int) {
	checkDims("RegisterBlocked", c, a, b, n)
	lanes := hwy.NumLanes[G]()
	checkLanes("RegisterBlocked", n, lanes)
	if rows < 1 || rows > MaxRegisterBlock || n%rows != 0 {
		panic("RegisterBlocked: invalid register block")
	}

	var acc [MaxRegisterBlock]G

	for i := 0; i < n; i += rows {
		for j := 0; j < n; j += lanes {
			for r := range rows {
				acc[r] = hwy.Zero[G]()
			}

			for k := range n {
				vB := hwy.Load[G](b[k*n+j:])
				for r := range rows {
					vA := hwy.Set[G](a[(i+r)*n+k])
					acc[r] = hwy.MulAdd(vA, vB, acc[r])
				}
			}

			for r := range rows {
				hwy.Store(acc[r], c[(i+r)*n+j:])
			}
		}
	}
}

// BaseMultiGroup computes C = A * B advancing groups independent lane group
// accumulators per row.
//
// The accumulators cover disjoint column ranges [j + g*lanes, j + (g+1)*lanes)
// and their multiply-adds are independent of each other.
//
// groups must be in [1, MaxVectorCount] and lanes*groups must divide n.
func BaseMultiGroup[G hwy.Group[G]](c, a, b []float64, n, groups int) {
	checkDims("MultiGroup", c, a, b, n)
	lanes := hwy.NumLanes[G]()
	if groups < 1 || groups > MaxVectorCount {
		panic("MultiGroup: invalid vector count")
	}
	span := lanes * groups
	checkLanes("MultiGroup", n, span)

	var acc [MaxVectorCount]G

	for i := range n {
		aRow := a[i*n : i*n+n]
		cRow := c[i*n : i*n+n]
		for j := 0; j < n; j += span {
			for g := range groups {
				acc[g] = hwy.Zero[G]()
			}

			for k, aik := range aRow {
				vA := hwy.Set[G](aik)
				bRow := b[k*n+j:]
				for g := range groups {
					acc[g] = hwy.MulAdd(vA, hwy.Load[G](bRow[g*lanes:]), acc[g])
				}
			}

			for g := range groups {
				hwy.Store(acc[g], cRow[j+g*lanes:])
			}
		}
	}
}

// BaseTiled combines register blocking and multiple lane groups: a tile of
// rows × (groups*lanes) elements of C is kept in rows*groups accumulators.
// Per k, groups loads of B and rows broadcasts of A feed rows*groups
// multiply-adds.
func BaseTiled[G hwy.Group[G]](c, a, b []float64, n, rows, groups int) {
	checkDims("Tiled", c, a, b, n)
	lanes := hwy.NumLanes[G]()
	if rows < 1 || rows > MaxRegisterBlock || n%rows != 0 {
		panic("Tiled: invalid register block")
	}
	if groups < 1 || groups > MaxVectorCount {
		panic("Tiled: invalid vector count")
	}
	span := lanes * groups
	checkLanes("Tiled", n, span)

	var acc [MaxRegisterBlock][MaxVectorCount]G
	var vB [MaxVectorCount]G

	for i := 0; i < n; i += rows {
		for j := 0; j < n; j += span {
			for r := range rows {
				for g := range groups {
					acc[r][g] = hwy.Zero[G]()
				}
			}

			for k := range n {
				bRow := b[k*n+j:]
				for g := range groups {
					vB[g] = hwy.Load[G](bRow[g*lanes:])
				}
				for r := range rows {
					vA := hwy.Set[G](a[(i+r)*n+k])
					for g := range groups {
						acc[r][g] = hwy.MulAdd(vA, vB[g], acc[r][g])
					}
				}
			}

			for r := range rows {
				cRow := c[(i+r)*n+j:]
				for g := range groups {
					hwy.Store(acc[r][g], cRow[g*lanes:])
				}
			}
		}
	}
}

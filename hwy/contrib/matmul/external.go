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
	"slices"
	"strings"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// dgemmFunc is a vendor C = A * B for n×n row-major, non-transposed
// matrices.
type dgemmFunc func(c, a, b []float64, n int)

type externalKernel struct {
	name  string
	label string
	fn    dgemmFunc
}

// externals holds the vendor kernels compiled into this build. Files that
// link a vendor library behind a build constraint add themselves from init.
var externals []externalKernel

func registerExternal(name, label string, fn dgemmFunc) {
	externals = append(externals, externalKernel{name: name, label: label, fn: fn})
}

// availableExternals returns gonum first, then the registered vendor
// kernels sorted by name.
func availableExternals() []externalKernel {
	out := []externalKernel{{name: "gonum", label: "Gonum", fn: Gonum}}
	registered := slices.Clone(externals)
	slices.SortFunc(registered, func(x, y externalKernel) int {
		return strings.Compare(x.name, y.name)
	})
	return append(out, registered...)
}

// gonumBlock is the edge of the blocks of C that Gonum hands to
// blas64.Gemm one call at a time. gonum only fans a call out to worker
// goroutines when it covers at least four of its own 64x64 blocks, so every
// call here runs on the calling goroutine.
const gonumBlock = 64

// Gonum computes C = A * B with gonum's pure-Go dgemm (blas64.Gemm with
// alpha = 1 and beta = 0), one gonumBlock x gonumBlock block of C at a time
// so the whole product stays single-threaded like every other kernel.
//
// With beta = 0 gonum overwrites C without reading it, so stale or
// non-finite values in C do not leak into the result.
func Gonum(c, a, b []float64, n int) {
	checkDims("Gonum", c, a, b, n)
	for i := 0; i < n; i += gonumBlock {
		rows := min(gonumBlock, n-i)
		aStrip := view(a, i*n, rows, n, n)
		for j := 0; j < n; j += gonumBlock {
			cols := min(gonumBlock, n-j)
			blas64.Gemm(blas.NoTrans, blas.NoTrans,
				1, aStrip, view(b, j, n, cols, n),
				0, view(c, i*n+j, rows, cols, n))
		}
	}
}

// view returns the rows x cols submatrix at offset off of a row-major
// matrix with row stride n.
func view(data []float64, off, rows, cols, n int) blas64.General {
	return blas64.General{
		Rows:   rows,
		Cols:   cols,
		Stride: n,
		Data:   data[off : off+(rows-1)*n+cols],
	}
}

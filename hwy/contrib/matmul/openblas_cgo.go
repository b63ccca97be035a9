// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

//go:build cgo && openblas

package matmul

/*
#cgo LDFLAGS: -lopenblas
#include <cblas.h>
*/
import "C"
import "unsafe"

func init() {
	registerExternal("openblas", "OpenBLAS", openblasDgemm)
}

// openblasDgemm computes C = A * B with OpenBLAS's cblas_dgemm.
//
// OpenBLAS may use several threads internally; set OPENBLAS_NUM_THREADS=1
// to keep the comparison single threaded.
func openblasDgemm(c, a, b []float64, n int) {
	checkDims("OpenBLAS", c, a, b, n)
	if n == 0 {
		return
	}
	C.cblas_dgemm(C.CblasRowMajor, C.CblasNoTrans, C.CblasNoTrans,
		C.blasint(n), C.blasint(n), C.blasint(n),
		1.0, (*C.double)(unsafe.Pointer(&a[0])), C.blasint(n),
		(*C.double)(unsafe.Pointer(&b[0])), C.blasint(n),
		0.0, (*C.double)(unsafe.Pointer(&c[0])), C.blasint(n))
}

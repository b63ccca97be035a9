// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

//go:build cgo && darwin

package matmul

/*
#cgo LDFLAGS: -framework Accelerate
#cgo CFLAGS: -DACCELERATE_NEW_LAPACK
#include <Accelerate/Accelerate.h>
*/
import "C"
import "unsafe"

func init() {
	registerExternal("accelerate", "Accelerate", accelerateDgemm)
}

// accelerateDgemm computes C = A * B with Accelerate's cblas_dgemm.
func accelerateDgemm(c, a, b []float64, n int) {
	checkDims("Accelerate", c, a, b, n)
	if n == 0 {
		return
	}
	C.cblas_dgemm(C.CblasRowMajor, C.CblasNoTrans, C.CblasNoTrans,
		C.int(n), C.int(n), C.int(n),
		1.0, (*C.double)(unsafe.Pointer(&a[0])), C.int(n),
		(*C.double)(unsafe.Pointer(&b[0])), C.int(n),
		0.0, (*C.double)(unsafe.Pointer(&c[0])), C.int(n))
}

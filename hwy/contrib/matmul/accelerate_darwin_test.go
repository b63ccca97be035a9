// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

//go:build cgo && darwin

package matmul

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestAccelerateDgemm(t *testing.T) {
	rng := rand.New(rand.NewPCG(0, 0))
	for _, n := range []int{1, 2, 4, 7, 64, 128, 256} {
		t.Run(sizeStr(n), func(t *testing.T) {
			a, b := randomMatrix(rng, n), randomMatrix(rng, n)
			cRef := make([]float64, n*n)
			cAcc := poisoned(n)

			Reference(cRef, a, b, n)
			accelerateDgemm(cAcc, a, b, n)

			for i := range cRef {
				diff := math.Abs(cAcc[i] - cRef[i])
				if diff > 1e-10 {
					t.Errorf("dgemm n=%d index %d: got %f, want %f (diff %e)",
						n, i, cAcc[i], cRef[i], diff)
				}
			}
		})
	}
}

func TestAccelerateRegistered(t *testing.T) {
	kernels, err := Kernels(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := Lookup(kernels, "accelerate"); !ok {
		t.Errorf("accelerate missing from %v", Names(kernels))
	}
}

func BenchmarkAccelerateDgemm(b *testing.B) {
	rng := rand.New(rand.NewPCG(0, 0))
	n := N
	a, bm := randomMatrix(rng, n), randomMatrix(rng, n)
	c := make([]float64, n*n)
	flops := 2 * float64(n) * float64(n) * float64(n)

	for range b.N {
		accelerateDgemm(c, a, bm, n)
	}
	b.ReportMetric(flops*float64(b.N)/b.Elapsed().Seconds()/1e9, "GFLOP/s")
}

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
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAccelTiles(t *testing.T) {
	if accelTile(1, 8) == nil {
		t.Skip("no AVX2 with FMA on this CPU")
	}
	rng := rand.New(rand.NewPCG(22, 22))
	n := 32
	a, b := randomMatrix(rng, n), randomMatrix(rng, n)
	want := make([]float64, n*n)
	Reference(want, a, b, n)

	for _, shape := range [][2]int{{1, 4}, {1, 8}, {1, 16}, {4, 4}, {4, 8}, {4, 16}} {
		t.Run(fmt.Sprintf("%dx%d", shape[0], shape[1]), func(t *testing.T) {
			fn := accelTile(shape[0], shape[1])
			if fn == nil {
				t.Fatalf("no AVX2 kernel for %dx%d", shape[0], shape[1])
			}
			got := poisoned(n)
			fn(got, a, b, n)
			if diff := cmp.Diff(want, got, equateTol); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestKernelsMarkFused(t *testing.T) {
	if accelTile(1, 8) == nil {
		t.Skip("no AVX2 with FMA on this CPU")
	}
	kernels, err := Kernels(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	k, _ := Lookup(kernels, "vector-j")
	if !k.Fused {
		t.Error("vector-j runs on AVX2 but is not marked Fused")
	}
	k, _ = Lookup(kernels, "vector-i")
	if k.Fused {
		t.Error("vector-i has no AVX2 kernel but is marked Fused")
	}
}

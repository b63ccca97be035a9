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
	"math/rand/v2"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/mat"
)

// TestReferenceAgainstGonumMat cross-checks the oracle against gonum's
// mat.Dense product, which is computed independently of this package.
func TestReferenceAgainstGonumMat(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))
	for _, n := range []int{1, 2, 7, 64, N} {
		t.Run(sizeStr(n), func(t *testing.T) {
			a, b := randomMatrix(rng, n), randomMatrix(rng, n)
			got := poisoned(n)
			Reference(got, a, b, n)

			var want mat.Dense
			want.Mul(mat.NewDense(n, n, a), mat.NewDense(n, n, b))
			if diff := cmp.Diff(want.RawMatrix().Data, got, equateTol); diff != "" {
				t.Errorf("Reference differs from mat.Dense.Mul (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGonum(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	for _, n := range []int{1, 5, 64, 72, 200} {
		t.Run(sizeStr(n), func(t *testing.T) {
			a, b := randomMatrix(rng, n), randomMatrix(rng, n)
			want := make([]float64, n*n)
			Reference(want, a, b, n)

			got := poisoned(n)
			Gonum(got, a, b, n)
			if diff := cmp.Diff(want, got, equateTol); diff != "" {
				t.Errorf("Gonum mismatch (-want +got):\n%s", diff)
			}
		})
	}
	Gonum(nil, nil, nil, 0)
}

// TestGonumSingleThreaded checks that Gonum never fans out to worker
// goroutines, even with several Ps available and a matrix large enough
// for a single blas64.Gemm call to go parallel.
func TestGonumSingleThreaded(t *testing.T) {
	defer runtime.GOMAXPROCS(runtime.GOMAXPROCS(4))

	const n = 256
	rng := rand.New(rand.NewPCG(3, 3))
	a, b := randomMatrix(rng, n), randomMatrix(rng, n)
	c := make([]float64, n*n)

	var (
		peak atomic.Int64
		wg   sync.WaitGroup
	)
	done := make(chan struct{})
	base := runtime.NumGoroutine()
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			if g := int64(runtime.NumGoroutine()); g > peak.Load() {
				peak.Store(g)
			}
			runtime.Gosched()
		}
	}()
	for range 4 {
		Gonum(c, a, b, n)
	}
	close(done)
	wg.Wait()

	// The sampler is the only extra goroutine allowed.
	if got := peak.Load(); got > int64(base+1) {
		t.Errorf("Gonum ran with %d goroutines, want at most %d", got, base+1)
	}
}

func TestExternalOrder(t *testing.T) {
	exts := availableExternals()
	if len(exts) == 0 || exts[0].name != "gonum" {
		t.Fatalf("first external = %v, want gonum", exts)
	}
	for i := 2; i < len(exts); i++ {
		if exts[i-1].name > exts[i].name {
			t.Errorf("externals not sorted: %q before %q", exts[i-1].name, exts[i].name)
		}
	}

	cfg := DefaultConfig()
	cfg.IncludeExternal = false
	kernels, err := Kernels(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := Lookup(kernels, "gonum"); ok {
		t.Error("gonum registered with IncludeExternal unset")
	}
}

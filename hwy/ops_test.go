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

package hwy

import (
	"math"
	"testing"
)

func iota64(n int, scale float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = float64(i+1) * scale
	}
	return s
}

func lanesOf[G Group[G]](v G) []float64 {
	out := make([]float64, v.Lanes())
	v.Store(out)
	return out
}

func testGroup[G Group[G]](t *testing.T) {
	lanes := NumLanes[G]()
	if lanes < MinGroupLanes || lanes > MaxGroupLanes {
		t.Fatalf("NumLanes = %d, outside [%d, %d]", lanes, MinGroupLanes, MaxGroupLanes)
	}

	t.Run("Zero", func(t *testing.T) {
		for i, got := range lanesOf(Zero[G]()) {
			if got != 0 {
				t.Errorf("Zero: lane %d: got %v, want 0", i, got)
			}
		}
	})

	t.Run("Set", func(t *testing.T) {
		for i, got := range lanesOf(Set[G](42.5)) {
			if got != 42.5 {
				t.Errorf("Set: lane %d: got %v, want 42.5", i, got)
			}
		}
	})

	t.Run("Load", func(t *testing.T) {
		src := iota64(lanes+3, 1)
		for i, got := range lanesOf(Load[G](src[3:])) {
			if got != src[3+i] {
				t.Errorf("Load: lane %d: got %v, want %v", i, got, src[3+i])
			}
		}
	})

	t.Run("LoadStrided", func(t *testing.T) {
		const stride = 5
		src := iota64(lanes*stride, 1)
		for i, got := range lanesOf(LoadStrided[G](src, stride)) {
			if want := src[i*stride]; got != want {
				t.Errorf("LoadStrided: lane %d: got %v, want %v", i, got, want)
			}
		}
	})

	t.Run("StoreStrided", func(t *testing.T) {
		const stride = 3
		dst := make([]float64, lanes*stride)
		for i := range dst {
			dst[i] = -1
		}
		StoreStrided(Load[G](iota64(lanes, 2)), dst, stride)
		for i, got := range dst {
			want := -1.0
			if i%stride == 0 {
				want = float64(i/stride+1) * 2
			}
			if got != want {
				t.Errorf("StoreStrided: dst[%d]: got %v, want %v", i, got, want)
			}
		}
	})

	t.Run("Store", func(t *testing.T) {
		dst := make([]float64, lanes+1)
		dst[lanes] = 99
		Store(Set[G](7), dst)
		for i := range lanes {
			if dst[i] != 7 {
				t.Errorf("Store: dst[%d]: got %v, want 7", i, dst[i])
			}
		}
		if dst[lanes] != 99 {
			t.Errorf("Store wrote past the group: dst[%d] = %v", lanes, dst[lanes])
		}
	})

	t.Run("Arithmetic", func(t *testing.T) {
		a := iota64(lanes, 1.5)
		b := iota64(lanes, -0.25)
		c := iota64(lanes, 3)
		va, vb, vc := Load[G](a), Load[G](b), Load[G](c)

		sum := lanesOf(Add(va, vb))
		prod := lanesOf(Mul(va, vb))
		muladd := lanesOf(MulAdd(va, vb, vc))
		for i := range lanes {
			if want := a[i] + b[i]; sum[i] != want {
				t.Errorf("Add: lane %d: got %v, want %v", i, sum[i], want)
			}
			if want := a[i] * b[i]; prod[i] != want {
				t.Errorf("Mul: lane %d: got %v, want %v", i, prod[i], want)
			}
			if want := a[i]*b[i] + c[i]; math.Abs(muladd[i]-want) > 1e-12 {
				t.Errorf("MulAdd: lane %d: got %v, want %v", i, muladd[i], want)
			}
		}
	})

	t.Run("ReduceSum", func(t *testing.T) {
		src := iota64(lanes, 1)
		var want float64
		for _, x := range src {
			want += x
		}
		if got := ReduceSum(Load[G](src)); got != want {
			t.Errorf("ReduceSum: got %v, want %v", got, want)
		}
	})

	t.Run("LoadShortPanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Load of a short slice did not panic")
			}
		}()
		Load[G](make([]float64, lanes-1))
	})
}

func TestGroups(t *testing.T) {
	t.Run("Vec2", testGroup[Vec2])
	t.Run("Vec4", testGroup[Vec4])
	t.Run("Vec8", testGroup[Vec8])
}

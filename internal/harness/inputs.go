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

package harness

import (
	"math"
	"math/rand/v2"

	"github.com/ajroetker/matbench/hwy"
	"github.com/ajroetker/matbench/hwy/contrib/matmul"
)

// Inputs holds the four n×n buffers of a run. They are allocated once and
// reused by every iteration and kernel.
type Inputs struct {
	N    int
	A, B []float64

	// Fast receives the output of the kernel under test.
	Fast []float64

	// Gold holds the reference result for the current A and B.
	Gold []float64
}

// NewInputs allocates the buffers, each starting on an align-byte boundary.
func NewInputs(n, align int) *Inputs {
	size := n * n
	return &Inputs{
		N:    n,
		A:    hwy.AlignedFloat64s(size, align),
		B:    hwy.AlignedFloat64s(size, align),
		Fast: hwy.AlignedFloat64s(size, align),
		Gold: hwy.AlignedFloat64s(size, align),
	}
}

// Fill sets A and B to values drawn uniformly from [-1, 1) and recomputes
// Gold with matmul.Reference.
func (in *Inputs) Fill(rng *rand.Rand) {
	for i := range in.A {
		in.A[i] = rng.Float64()*2 - 1
	}
	for i := range in.B {
		in.B[i] = rng.Float64()*2 - 1
	}
	matmul.Reference(in.Gold, in.A, in.B, in.N)
}

// Poison sets every element of Fast to negative infinity.
func (in *Inputs) Poison() {
	for i := range in.Fast {
		in.Fast[i] = math.Inf(-1)
	}
}

// Aligned reports whether every buffer starts on an align-byte boundary.
func (in *Inputs) Aligned(align int) bool {
	return hwy.IsAligned(in.A, align) && hwy.IsAligned(in.B, align) &&
		hwy.IsAligned(in.Fast, align) && hwy.IsAligned(in.Gold, align)
}

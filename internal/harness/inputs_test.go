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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/matbench/hwy/contrib/matmul"
)

func TestInputsFill(t *testing.T) {
	n := 32
	in := NewInputs(n, matmul.Alignment)
	require.True(t, in.Aligned(matmul.Alignment))
	for _, buf := range [][]float64{in.A, in.B, in.Fast, in.Gold} {
		require.Len(t, buf, n*n)
	}

	in.Fill(rand.New(rand.NewPCG(0, 0)))
	for _, buf := range [][]float64{in.A, in.B} {
		for _, v := range buf {
			assert.True(t, v >= -1 && v < 1, "value %v outside [-1, 1)", v)
		}
	}

	want := make([]float64, n*n)
	matmul.Reference(want, in.A, in.B, n)
	assert.Equal(t, want, in.Gold)
}

func TestInputsDeterministic(t *testing.T) {
	x, y := NewInputs(8, 64), NewInputs(8, 64)
	x.Fill(rand.New(rand.NewPCG(9, 9)))
	y.Fill(rand.New(rand.NewPCG(9, 9)))
	assert.Equal(t, x.A, y.A)
	assert.Equal(t, x.B, y.B)
	assert.Equal(t, x.Gold, y.Gold)
}

func TestInputsPoison(t *testing.T) {
	in := NewInputs(4, 64)
	in.Poison()
	for _, v := range in.Fast {
		assert.True(t, math.IsInf(v, -1))
	}
}

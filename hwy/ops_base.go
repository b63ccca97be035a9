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

// This file provides the free-function form of the Group operations so that
// kernels read the same regardless of which lane group they are
// instantiated with.

// NumLanes returns the number of lanes in lane group G.
func NumLanes[G Group[G]]() int {
	var g G
	return g.Lanes()
}

// Zero returns a group with all lanes set to zero.
func Zero[G Group[G]]() G {
	var g G
	return g
}

// Set returns a group with all lanes set to value (broadcast load).
func Set[G Group[G]](value float64) G {
	var g G
	return g.Broadcast(value)
}

// Load returns a group holding the first lanes of src.
// PRECONDITION: len(src) >= NumLanes[G]().
func Load[G Group[G]](src []float64) G {
	var g G
	return g.Load(src)
}

// LoadStrided returns a group holding every stride-th element of src,
// starting at src[0].
func LoadStrided[G Group[G]](src []float64, stride int) G {
	var g G
	return g.LoadStrided(src, stride)
}

// Store writes v to the first lanes of dst.
func Store[G Group[G]](v G, dst []float64) {
	v.Store(dst)
}

// StoreStrided writes lane i of v to dst[i*stride].
func StoreStrided[G Group[G]](v G, dst []float64, stride int) {
	v.StoreStrided(dst, stride)
}

// Add performs element-wise addition.
func Add[G Group[G]](a, b G) G {
	return a.Add(b)
}

// Mul performs element-wise multiplication.
func Mul[G Group[G]](a, b G) G {
	return a.Mul(b)
}

// MulAdd computes a*b + c lane-wise.
//
// The product and the sum are written as separate operations; on targets
// where the Go compiler contracts x*y+z (arm64, ppc64le, s390x) this becomes
// a fused multiply-add, elsewhere it rounds twice.
func MulAdd[G Group[G]](a, b, c G) G {
	return c.MulAdd(a, b)
}

// ReduceSum sums all lanes.
func ReduceSum[G Group[G]](v G) float64 {
	return v.ReduceSum()
}

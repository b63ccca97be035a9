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

// Package hwy provides fixed-width float64 lane groups with runtime CPU
// dispatch, used to write data-parallel kernels once and instantiate them
// for several vector widths.
//
// A kernel is written against the Group capability interface and the free
// functions in this package:
//
//	func axpy[G hwy.Group[G]](alpha float64, x, y []float64) {
//		lanes := hwy.NumLanes[G]()
//		vA := hwy.Set[G](alpha)
//		for i := 0; i+lanes <= len(y); i += lanes {
//			vY := hwy.MulAdd(vA, hwy.Load[G](x[i:]), hwy.Load[G](y[i:]))
//			hwy.Store(vY, y[i:])
//		}
//	}
//
// and instantiated with one of the concrete lane groups (Vec2, Vec4, Vec8),
// usually the one matching NativeLanes.
package hwy

//go:generate go run ../cmd/lanegen -widths 2,4,8 -output z_lanes.go

// Group is a fixed-width group of float64 lanes.
//
// Implementations are value types (arrays) so lane groups live in registers
// or on the stack; every operation returns a new group instead of mutating
// the receiver, except Store and StoreStrided which write to memory.
type Group[G any] interface {
	// Lanes returns the number of float64 lanes in the group.
	Lanes() int

	// Broadcast returns a group with every lane set to x.
	Broadcast(x float64) G

	// Load returns a group holding src[0:Lanes()].
	Load(src []float64) G

	// LoadStrided returns a group holding src[0], src[stride], ...,
	// src[(Lanes()-1)*stride].
	LoadStrided(src []float64, stride int) G

	// Add returns the lane-wise sum of the receiver and o.
	Add(o G) G

	// Mul returns the lane-wise product of the receiver and o.
	Mul(o G) G

	// MulAdd returns a*b + receiver, lane-wise.
	MulAdd(a, b G) G

	// Store writes the lanes to dst[0:Lanes()].
	Store(dst []float64)

	// StoreStrided writes lane i to dst[i*stride].
	StoreStrided(dst []float64, stride int)

	// ReduceSum returns the sum of all lanes, accumulated from lane 0 up.
	ReduceSum() float64
}

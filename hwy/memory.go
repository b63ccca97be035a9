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

import "unsafe"

const float64Size = int(unsafe.Sizeof(float64(0)))

// AlignedFloat64s returns a zeroed slice of n float64 values whose first
// element starts on an align-byte boundary.
//
// The backing array is over-allocated by align bytes and the returned slice
// starts at the first aligned element inside it, so the alignment holds for
// the lifetime of the slice (the Go garbage collector does not move heap
// objects). Capacity is clamped to n so appends reallocate instead of
// silently growing into the padding.
//
// align must be a power of two no smaller than the size of a float64.
func AlignedFloat64s(n, align int) []float64 {
	if n < 0 {
		panic("AlignedFloat64s: negative length")
	}
	if !IsPowerOfTwo(align) || align < float64Size {
		panic("AlignedFloat64s: alignment must be a power of two >= 8")
	}
	pad := align / float64Size
	buf := make([]float64, n+pad)
	if n == 0 {
		return buf[:0:0]
	}
	addr := uintptr(unsafe.Pointer(&buf[0]))
	off := 0
	if rem := int(addr % uintptr(align)); rem != 0 {
		off = (align - rem) / float64Size
	}
	return buf[off : off+n : off+n]
}

// IsAligned reports whether the first element of s starts on an align-byte
// boundary. Empty slices are considered aligned.
func IsAligned(s []float64, align int) bool {
	if len(s) == 0 || align <= 1 {
		return true
	}
	return uintptr(unsafe.Pointer(&s[0]))%uintptr(align) == 0
}

// IsPowerOfTwo reports whether x is a positive power of two.
func IsPowerOfTwo(x int) bool {
	return x > 0 && x&(x-1) == 0
}

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
	"errors"
	"fmt"

	"github.com/ajroetker/matbench/hwy"
)

// Build configuration. These are the reference parameters the benchmark
// runs with; they are fixed for a given build.
const (
	// N is the matrix dimension.
	N = 128

	// VectorLength is the number of float64 lanes per lane group.
	VectorLength = 8

	// RegisterBlock is the number of rows of A processed together by the
	// register-blocked kernels.
	RegisterBlock = 4

	// VectorCount is the number of independent lane groups per row in the
	// multi-group kernels.
	VectorCount = 2

	// Alignment is the byte alignment of the matrix buffers.
	Alignment = 256

	// IncludeExternal adds the vendor BLAS kernels that are available in
	// this build to the registry.
	IncludeExternal = true
)

// Limits on the blocking factors. Kernels keep their accumulators in fixed
// size arrays of this size.
const (
	MaxRegisterBlock = 8
	MaxVectorCount   = 8
)

// The build constants above must satisfy the same constraints that
// Config.Validate checks. Each declaration below only compiles when its
// constraint holds: a zero-length array type is required, or the array
// length must be non-negative.
var (
	_ [0]struct{} = [N % VectorLength]struct{}{}
	_ [0]struct{} = [N % RegisterBlock]struct{}{}
	_ [0]struct{} = [N % (VectorLength * VectorCount)]struct{}{}
	_ [0]struct{} = [Alignment & (Alignment - 1)]struct{}{}
	_ [MaxRegisterBlock - RegisterBlock]struct{}
	_ [MaxVectorCount - VectorCount]struct{}
	_ [hwy.MaxGroupLanes - VectorLength]struct{}
)

// ErrInvalidConfig is returned (wrapped) when a Config cannot be used to
// build the kernel set.
var ErrInvalidConfig = errors.New("matmul: invalid configuration")

// Config describes the matrix size and the blocking parameters of the
// kernel set.
type Config struct {
	// N is the matrix dimension.
	N int

	// VectorLength is the lane group width: 2, 4 or 8 float64 lanes, or 0
	// to use the native width reported by hwy.NativeLanes.
	VectorLength int

	// RegisterBlock is the number of rows blocked together.
	RegisterBlock int

	// VectorCount is the number of lane groups advanced per row.
	VectorCount int

	// Alignment is the byte alignment kernels flagged Aligned expect.
	Alignment int

	// IncludeExternal adds the available vendor BLAS kernels.
	IncludeExternal bool
}

// DefaultConfig returns the build configuration.
func DefaultConfig() Config {
	return Config{
		N:               N,
		VectorLength:    VectorLength,
		RegisterBlock:   RegisterBlock,
		VectorCount:     VectorCount,
		Alignment:       Alignment,
		IncludeExternal: IncludeExternal,
	}
}

// Lanes returns the effective lane group width.
func (c Config) Lanes() int {
	if c.VectorLength == 0 {
		return hwy.NativeLanes()
	}
	return c.VectorLength
}

// Validate reports every constraint the configuration violates, joined into
// one error wrapping ErrInvalidConfig. A configuration whose blocking
// factors do not divide N is rejected rather than computed incorrectly.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.N <= 0 {
		bad("N=%d must be positive", c.N)
	}

	lanes := c.Lanes()
	switch lanes {
	case 2, 4, 8:
		if c.N > 0 && c.N%lanes != 0 {
			bad("N=%d is not a multiple of the vector length %d", c.N, lanes)
		}
	default:
		bad("vector length %d is not one of 0, 2, 4, 8", c.VectorLength)
	}

	if c.RegisterBlock < 1 || c.RegisterBlock > MaxRegisterBlock {
		bad("register block %d outside [1, %d]", c.RegisterBlock, MaxRegisterBlock)
	} else if c.N > 0 && c.N%c.RegisterBlock != 0 {
		bad("N=%d is not a multiple of the register block %d", c.N, c.RegisterBlock)
	}

	if c.VectorCount < 1 || c.VectorCount > MaxVectorCount {
		bad("vector count %d outside [1, %d]", c.VectorCount, MaxVectorCount)
	} else if span := lanes * c.VectorCount; c.N > 0 && span > 0 && c.N%span != 0 {
		bad("N=%d is not a multiple of vector length × vector count = %d", c.N, span)
	}

	if !hwy.IsPowerOfTwo(c.Alignment) || c.Alignment < 8 {
		bad("alignment %d is not a power of two >= 8", c.Alignment)
	}

	return errors.Join(errs...)
}

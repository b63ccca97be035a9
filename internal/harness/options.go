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
	"errors"
	"fmt"
	"math"
)

// Run parameters of the build. One policy applies to every kernel.
const (
	// Iterations is the number of outer iterations; each one regenerates
	// the inputs and the gold result.
	Iterations = 8

	// Warmup is the number of untimed kernel calls before timing.
	Warmup = 256

	// Count is the number of timed kernel calls.
	Count = 256

	// Tolerance is the largest absolute difference from the gold result
	// accepted for any element.
	Tolerance = 1e-10

	// Seed seeds the input generator.
	Seed = 0

	// AbortStatus is the exit status after a correctness failure, the
	// status a shell reports for SIGABRT.
	AbortStatus = 134
)

// ErrInvalidOptions is returned (wrapped) by Options.Validate.
var ErrInvalidOptions = errors.New("harness: invalid options")

// Options controls a benchmark run.
type Options struct {
	Iterations int
	Warmup     int
	Count      int
	Tolerance  float64
	Seed       uint64
}

// DefaultOptions returns the build's run parameters.
func DefaultOptions() Options {
	return Options{
		Iterations: Iterations,
		Warmup:     Warmup,
		Count:      Count,
		Tolerance:  Tolerance,
		Seed:       Seed,
	}
}

// Validate reports every invalid field, joined into one error wrapping
// ErrInvalidOptions.
func (o Options) Validate() error {
	var errs []error
	if o.Iterations < 1 {
		errs = append(errs, fmt.Errorf("%w: iterations %d < 1", ErrInvalidOptions, o.Iterations))
	}
	if o.Warmup < 0 {
		errs = append(errs, fmt.Errorf("%w: warmup %d < 0", ErrInvalidOptions, o.Warmup))
	}
	if o.Count < 1 {
		errs = append(errs, fmt.Errorf("%w: count %d < 1", ErrInvalidOptions, o.Count))
	}
	if o.Tolerance < 0 || math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) {
		errs = append(errs, fmt.Errorf("%w: tolerance %v is not a finite non-negative number", ErrInvalidOptions, o.Tolerance))
	}
	return errors.Join(errs...)
}

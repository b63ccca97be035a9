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
	"fmt"
	"math"
)

// Mismatch is one output element that failed validation.
type Mismatch struct {
	Index    int
	Row, Col int
	Expected float64
	Observed float64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("index %d (row %d, col %d): expected %.17g, observed %.17g",
		m.Index, m.Row, m.Col, m.Expected, m.Observed)
}

// ValidationError reports a kernel whose output does not match the gold
// result.
type ValidationError struct {
	Kernel     string
	Tolerance  float64
	Mismatches []Mismatch
}

func (e *ValidationError) Error() string {
	first := e.Mismatches[0]
	return fmt.Sprintf("harness: kernel %s: %d elements outside tolerance %g, first at index %d",
		e.Kernel, len(e.Mismatches), e.Tolerance, first.Index)
}

// Validate compares fast against gold, both n×n, and returns every element
// that is NaN or infinite, whose gold value is not finite, or that differs
// from gold by more than tol. It returns nil when all elements pass.
func Validate(gold, fast []float64, n int, tol float64) []Mismatch {
	var bad []Mismatch
	for i, want := range gold[:n*n] {
		got := fast[i]
		if finite(want) && finite(got) && math.Abs(want-got) <= tol {
			continue
		}
		bad = append(bad, Mismatch{
			Index:    i,
			Row:      i / n,
			Col:      i % n,
			Expected: want,
			Observed: got,
		})
	}
	return bad
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

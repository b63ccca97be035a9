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

// lanegen generates the fixed-width float64 lane group types of package hwy
// and the unrolled tile kernels of package matmul.
//
// Usage:
//
//	go run ./cmd/lanegen -widths 2,4,8 -output hwy/z_lanes.go
//	go run ./cmd/lanegen -mode kernels -widths 2,4,8 -rows 2,4 -groups 2 -pkg matmul -output hwy/contrib/matmul/z_kernels.go
//
// In lanes mode each width W produces a type VecW [W]float64 implementing
// hwy.Group with fully unrolled lane operations.
//
// In kernels mode each tile shape the lane kernels use at those widths,
// register blocks and group counts becomes a concrete function whose tile of
// C lives in scalar locals, which the compiler keeps in registers. Generic
// kernels instantiated with a VecW cannot do that: array-typed values longer
// than one element are never register allocated.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	mode       = flag.String("mode", "lanes", "What to generate: lanes or kernels")
	widths     = flag.String("widths", "2,4,8", "Comma-separated lane counts to generate (powers of two)")
	outputFile = flag.String("output", "z_lanes.go", "Output Go source file")
	packageOut = flag.String("pkg", "hwy", "Output package name")
	rows       = flag.String("rows", "2,4", "Comma-separated register block heights (kernels mode)")
	groups     = flag.String("groups", "2", "Comma-separated lane groups per row (kernels mode)")
)

func main() {
	flag.Parse()

	widthList, err := parseWidths(*widths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	var gen interface{ Run() error }
	switch *mode {
	case "lanes":
		gen = &Generator{
			OutputFile: *outputFile,
			PackageOut: *packageOut,
			Widths:     widthList,
		}
	case "kernels":
		rowList, err := parseFactors(*rows)
		if err == nil {
			var groupList []int
			groupList, err = parseFactors(*groups)
			gen = &KernelGenerator{
				OutputFile: *outputFile,
				PackageOut: *packageOut,
				Widths:     widthList,
				Rows:       rowList,
				Groups:     groupList,
			}
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
			flag.Usage()
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n\n", *mode)
		flag.Usage()
		os.Exit(1)
	}

	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %s for widths: %s\n", *mode, *widths)
}

func parseWidths(s string) ([]int, error) {
	var result []int
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		w, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid width %q: %w", p, err)
		}
		if w < 2 || w&(w-1) != 0 {
			return nil, fmt.Errorf("width %d is not a power of two >= 2", w)
		}
		result = append(result, w)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no widths specified")
	}
	return result, nil
}

// parseFactors parses a comma-separated list of positive block factors. An
// empty list is allowed.
func parseFactors(s string) ([]int, error) {
	var result []int
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid block factor %q: %w", p, err)
		}
		if v < 1 {
			return nil, fmt.Errorf("block factor %d is not positive", v)
		}
		result = append(result, v)
	}
	return result, nil
}

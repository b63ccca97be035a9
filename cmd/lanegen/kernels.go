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

package main

import (
	"bytes"
	"cmp"
	"fmt"
	"os"
	"slices"
	"strings"

	"golang.org/x/tools/imports"
)

// KernelGenerator renders the unrolled matmul tile kernels that stand in for
// the generic lane kernels at each generated lane count.
type KernelGenerator struct {
	OutputFile string // Output Go source file
	PackageOut string // Output package name
	Widths     []int  // Lane counts, each a power of two >= 2
	Rows       []int  // Register block heights besides 1
	Groups     []int  // Lane groups per row besides 1
}

// tile is the rows x cols block of C one kernel keeps in scalar
// accumulators for the whole k loop.
type tile struct {
	rows, cols int
}

func (t tile) name() string {
	return fmt.Sprintf("tile%dx%d", t.rows, t.cols)
}

// tiles returns every shape the lane kernels map onto: W x 1 for vector-i
// and R x (W*G) for vector-j, blocked, multi and tiled, ordered by rows and
// then cols.
func (g *KernelGenerator) tiles() []tile {
	rows := append([]int{1}, g.Rows...)
	groups := append([]int{1}, g.Groups...)
	var out []tile
	for _, w := range g.Widths {
		out = append(out, tile{rows: w, cols: 1})
		for _, r := range rows {
			for _, per := range groups {
				out = append(out, tile{rows: r, cols: w * per})
			}
		}
	}
	slices.SortFunc(out, func(x, y tile) int {
		return cmp.Or(cmp.Compare(x.rows, y.rows), cmp.Compare(x.cols, y.cols))
	})
	return slices.Compact(out)
}

// Run generates the source and writes it to OutputFile.
func (g *KernelGenerator) Run() error {
	src, err := g.Generate()
	if err != nil {
		return err
	}
	if err := os.WriteFile(g.OutputFile, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", g.OutputFile, err)
	}
	return nil
}

// Generate returns the formatted Go source for all tile shapes.
func (g *KernelGenerator) Generate() ([]byte, error) {
	if len(g.Widths) == 0 {
		return nil, fmt.Errorf("no widths to generate")
	}
	for _, v := range slices.Concat(g.Rows, g.Groups) {
		if v < 1 {
			return nil, fmt.Errorf("block factor %d is not positive", v)
		}
	}
	pkg := g.PackageOut
	if pkg == "" {
		pkg = "matmul"
	}
	tiles := g.tiles()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by lanegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	fmt.Fprintf(&buf, "// unrolledTile returns the generated kernel for rows x cols tiles of C, or\n")
	fmt.Fprintf(&buf, "// nil if that shape was not generated.\n")
	fmt.Fprintf(&buf, "func unrolledTile(rows, cols int) func(c, a, b []float64, n int) {\n")
	fmt.Fprintf(&buf, "\tswitch {\n")
	for _, t := range tiles {
		fmt.Fprintf(&buf, "\tcase rows == %d && cols == %d:\n", t.rows, t.cols)
		fmt.Fprintf(&buf, "\t\treturn %s\n", t.name())
	}
	fmt.Fprintf(&buf, "\t}\n")
	fmt.Fprintf(&buf, "\treturn nil\n")
	fmt.Fprintf(&buf, "}\n")

	for _, t := range tiles {
		emitTile(&buf, t)
	}

	src, err := imports.Process(g.OutputFile, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

// rowOffset returns the offset of row i+r of an n x n matrix.
func rowOffset(r int) string {
	switch r {
	case 0:
		return "i*n"
	case 1:
		return "i*n+n"
	default:
		return fmt.Sprintf("i*n+%d*n", r)
	}
}

// step returns the header of a loop over 0..n-1 advancing by inc.
func step(v string, inc int) string {
	if inc == 1 {
		return fmt.Sprintf("for %s := range n {", v)
	}
	return fmt.Sprintf("for %[1]s := 0; %[1]s < n; %[1]s += %[2]d {", v, inc)
}

func emitTile(buf *bytes.Buffer, t tile) {
	name := t.name()
	acc := func(r, c int) string { return fmt.Sprintf("r%dc%d", r, c) }

	fmt.Fprintf(buf, "\n// %s computes C = A * B holding each %dx%d tile of C in scalar\n", name, t.rows, t.cols)
	fmt.Fprintf(buf, "// accumulators.\n")
	fmt.Fprintf(buf, "func %s(c, a, b []float64, n int) {\n", name)
	fmt.Fprintf(buf, "\tcheckDims(%q, c, a, b, n)\n", name)
	fmt.Fprintf(buf, "\tcheckTile(%q, n, %d, %d)\n", name, t.rows, t.cols)
	fmt.Fprintf(buf, "\t%s\n", step("i", t.rows))
	for r := range t.rows {
		fmt.Fprintf(buf, "\t\ta%d := a[%s : %s]\n", r, rowOffset(r), rowOffset(r+1))
	}
	fmt.Fprintf(buf, "\t\t%s\n", step("j", t.cols))
	for r := range t.rows {
		names := make([]string, t.cols)
		for c := range t.cols {
			names[c] = acc(r, c)
		}
		fmt.Fprintf(buf, "\t\t\tvar %s float64\n", strings.Join(names, ", "))
	}
	fmt.Fprintf(buf, "\t\t\tfor k := range n {\n")
	if t.cols == 1 {
		fmt.Fprintf(buf, "\t\t\t\tb0 := b[k*n+j]\n")
	} else {
		fmt.Fprintf(buf, "\t\t\t\tbk := b[k*n+j : k*n+j+%d]\n", t.cols)
		for c := range t.cols {
			fmt.Fprintf(buf, "\t\t\t\tb%d := bk[%d]\n", c, c)
		}
	}
	for r := range t.rows {
		fmt.Fprintf(buf, "\t\t\t\tx%d := a%d[k]\n", r, r)
		for c := range t.cols {
			fmt.Fprintf(buf, "\t\t\t\t%s += x%d * b%d\n", acc(r, c), r, c)
		}
	}
	fmt.Fprintf(buf, "\t\t\t}\n")
	for r := range t.rows {
		if t.cols == 1 {
			fmt.Fprintf(buf, "\t\t\tc[%s+j] = %s\n", rowOffset(r), acc(r, 0))
			continue
		}
		fmt.Fprintf(buf, "\t\t\tc%d := c[%s+j : %s+j+%d]\n", r, rowOffset(r), rowOffset(r), t.cols)
		for c := range t.cols {
			fmt.Fprintf(buf, "\t\t\tc%d[%d] = %s\n", r, c, acc(r, c))
		}
	}
	fmt.Fprintf(buf, "\t\t}\n")
	fmt.Fprintf(buf, "\t}\n")
	fmt.Fprintf(buf, "}\n")
}

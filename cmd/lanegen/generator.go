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
	"fmt"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// Generator renders lane group types for a set of widths.
type Generator struct {
	OutputFile string // Output Go source file
	PackageOut string // Output package name
	Widths     []int  // Lane counts, each a power of two >= 2
}

// binaryOp is a lane-wise operation of the form v OP o.
type binaryOp struct {
	name string // lower-case operation name; the method is its title-cased form
	verb string // doc comment verb
	op   string // Go operator
}

var binaryOps = []binaryOp{
	{name: "add", verb: "sum", op: "+"},
	{name: "mul", verb: "product", op: "*"},
}

// Run generates the source and writes it to OutputFile.
func (g *Generator) Run() error {
	src, err := g.Generate()
	if err != nil {
		return err
	}
	if err := os.WriteFile(g.OutputFile, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", g.OutputFile, err)
	}
	return nil
}

// Generate returns the formatted Go source for all widths.
func (g *Generator) Generate() ([]byte, error) {
	widths := slices.Clone(g.Widths)
	slices.Sort(widths)
	widths = slices.Compact(widths)
	if len(widths) == 0 {
		return nil, fmt.Errorf("no widths to generate")
	}
	pkg := g.PackageOut
	if pkg == "" {
		pkg = "hwy"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by lanegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	fmt.Fprintf(&buf, "const (\n")
	fmt.Fprintf(&buf, "\t// MinGroupLanes is the lane count of the narrowest generated lane group.\n")
	fmt.Fprintf(&buf, "\tMinGroupLanes = %d\n\n", widths[0])
	fmt.Fprintf(&buf, "\t// MaxGroupLanes is the lane count of the widest generated lane group.\n")
	fmt.Fprintf(&buf, "\tMaxGroupLanes = %d\n", widths[len(widths)-1])
	fmt.Fprintf(&buf, ")\n\n")

	fmt.Fprintf(&buf, "var (\n")
	for _, w := range widths {
		fmt.Fprintf(&buf, "\t_ Group[%[1]s] = %[1]s{}\n", typeName(w))
	}
	fmt.Fprintf(&buf, ")\n")

	for _, w := range widths {
		emitGroup(&buf, w)
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

func typeName(w int) string {
	return fmt.Sprintf("Vec%d", w)
}

// lanes joins f(i) for every lane i.
func lanes(w int, f func(i int) string) string {
	parts := make([]string, w)
	for i := range w {
		parts[i] = f(i)
	}
	return strings.Join(parts, ", ")
}

// series joins f(i) for every lane i with sep, eliding the middle lanes
// when there are more than two.
func series(w int, sep string, f func(i int) string) string {
	if w <= 2 {
		parts := make([]string, w)
		for i := range w {
			parts[i] = f(i)
		}
		return strings.Join(parts, sep)
	}
	return strings.Join([]string{f(0), f(1), "...", f(w - 1)}, sep)
}

// strided returns the index expression of lane i in a strided access.
func strided(i int) string {
	switch i {
	case 0:
		return "0"
	case 1:
		return "stride"
	default:
		return fmt.Sprintf("%d*stride", i)
	}
}

func emitGroup(buf *bytes.Buffer, w int) {
	name := typeName(w)
	last := w - 1
	title := cases.Title(language.English)

	fmt.Fprintf(buf, "\n// %s is a group of %d float64 lanes (%d bits).\n", name, w, w*64)
	fmt.Fprintf(buf, "type %s [%d]float64\n", name, w)

	fmt.Fprintf(buf, "\n// Lanes returns %d.\n", w)
	fmt.Fprintf(buf, "func (%s) Lanes() int { return %d }\n", name, w)

	fmt.Fprintf(buf, "\n// Broadcast returns a %s with every lane set to x.\n", name)
	fmt.Fprintf(buf, "func (%s) Broadcast(x float64) %s {\n", name, name)
	fmt.Fprintf(buf, "\treturn %s{%s}\n", name, lanes(w, func(int) string { return "x" }))
	fmt.Fprintf(buf, "}\n")

	fmt.Fprintf(buf, "\n// Load returns src[0:%d] as a %s.\n", w, name)
	fmt.Fprintf(buf, "func (%s) Load(src []float64) %s {\n", name, name)
	fmt.Fprintf(buf, "\t_ = src[%d]\n", last)
	fmt.Fprintf(buf, "\treturn %s{%s}\n", name, lanes(w, func(i int) string { return fmt.Sprintf("src[%d]", i) }))
	fmt.Fprintf(buf, "}\n")

	fmt.Fprintf(buf, "\n// LoadStrided returns %s as a %s.\n", series(w, ", ", func(i int) string { return "src[" + strided(i) + "]" }), name)
	fmt.Fprintf(buf, "func (%s) LoadStrided(src []float64, stride int) %s {\n", name, name)
	fmt.Fprintf(buf, "\t_ = src[%s]\n", strided(last))
	fmt.Fprintf(buf, "\treturn %s{%s}\n", name, lanes(w, func(i int) string { return "src[" + strided(i) + "]" }))
	fmt.Fprintf(buf, "}\n")

	for _, op := range binaryOps {
		method := title.String(op.name)
		fmt.Fprintf(buf, "\n// %s returns the lane-wise %s of v and o.\n", method, op.verb)
		fmt.Fprintf(buf, "func (v %s) %s(o %s) %s {\n", name, method, name, name)
		fmt.Fprintf(buf, "\treturn %s{%s}\n", name, lanes(w, func(i int) string {
			return fmt.Sprintf("v[%d] %s o[%d]", i, op.op, i)
		}))
		fmt.Fprintf(buf, "}\n")
	}

	fmt.Fprintf(buf, "\n// MulAdd returns a*b + v, lane-wise.\n")
	fmt.Fprintf(buf, "func (v %s) MulAdd(a, b %s) %s {\n", name, name, name)
	fmt.Fprintf(buf, "\treturn %s{%s}\n", name, lanes(w, func(i int) string {
		return fmt.Sprintf("a[%d]*b[%d] + v[%d]", i, i, i)
	}))
	fmt.Fprintf(buf, "}\n")

	fmt.Fprintf(buf, "\n// Store writes v to dst[0:%d].\n", w)
	fmt.Fprintf(buf, "func (v %s) Store(dst []float64) {\n", name)
	fmt.Fprintf(buf, "\t_ = dst[%d]\n", last)
	for i := range w {
		fmt.Fprintf(buf, "\tdst[%d] = v[%d]\n", i, i)
	}
	fmt.Fprintf(buf, "}\n")

	fmt.Fprintf(buf, "\n// StoreStrided writes lane i of v to dst[i*stride].\n")
	fmt.Fprintf(buf, "func (v %s) StoreStrided(dst []float64, stride int) {\n", name)
	fmt.Fprintf(buf, "\t_ = dst[%s]\n", strided(last))
	for i := range w {
		fmt.Fprintf(buf, "\tdst[%s] = v[%d]\n", strided(i), i)
	}
	fmt.Fprintf(buf, "}\n")

	fmt.Fprintf(buf, "\n// ReduceSum returns %s.\n", series(w, " + ", func(i int) string { return fmt.Sprintf("v[%d]", i) }))
	fmt.Fprintf(buf, "func (v %s) ReduceSum() float64 {\n", name)
	parts := make([]string, w)
	for i := range w {
		parts[i] = fmt.Sprintf("v[%d]", i)
	}
	fmt.Fprintf(buf, "\treturn %s\n", strings.Join(parts, " + "))
	fmt.Fprintf(buf, "}\n")
}

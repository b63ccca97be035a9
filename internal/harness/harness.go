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

// Package harness times matmul kernels and validates their output against
// the reference result.
//
// Each (iteration, kernel) pair goes through the same steps: the output
// buffer is poisoned with negative infinity, the kernel is called Warmup
// times untimed and Count times timed, throughput is computed as
// 2·n³·Count / seconds and printed, and the output is compared element by
// element with the gold result. A correctness failure prints every
// offending element to the diagnostic stream and aborts the process.
package harness

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/samber/lo"
	"k8s.io/klog/v2"

	"github.com/ajroetker/matbench/hwy/contrib/matmul"
)

// ErrMisaligned is returned when a kernel that needs aligned buffers is
// given misaligned ones.
var ErrMisaligned = errors.New("harness: buffers are not aligned")

// ErrSizeMismatch is returned when a kernel bound to one matrix size is
// run on inputs of another.
var ErrSizeMismatch = errors.New("harness: kernel bound to a different N")

// Result is the measurement of one kernel on one set of inputs.
type Result struct {
	Kernel  string
	Label   string
	N       int
	Count   int
	Elapsed time.Duration

	// FLOPS is the achieved throughput in floating-point operations per
	// second.
	FLOPS float64
}

// String formats the result as its output line: the label followed by the
// throughput.
func (r Result) String() string {
	return fmt.Sprintf("%s %g", r.Label, r.FLOPS)
}

// Throughput returns 2·n³·count / seconds. A non-positive elapsed time is
// treated as one nanosecond, so the result is always finite and, for
// n > 0 and count > 0, positive.
func Throughput(n, count int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		elapsed = time.Nanosecond
	}
	flops := 2 * float64(n) * float64(n) * float64(n) * float64(count)
	return flops / elapsed.Seconds()
}

// Driver evaluates kernels. It keeps no state between evaluations.
type Driver struct {
	Options Options

	// Alignment is the byte alignment required by kernels flagged Aligned.
	Alignment int

	// PinThread pins the running thread to one CPU for the duration of Run.
	PinThread bool

	// Stdout receives one result line per evaluation.
	Stdout io.Writer

	// Stderr receives the mismatch lines of a correctness failure.
	Stderr io.Writer

	abort func(code int)
}

// NewDriver returns a Driver writing to os.Stdout and os.Stderr that exits
// the process on a correctness failure.
func NewDriver(opts Options, alignment int) *Driver {
	return &Driver{
		Options:   opts,
		Alignment: alignment,
		PinThread: true,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		abort:     os.Exit,
	}
}

// Evaluate runs kernel k on in and checks its output against in.Gold.
//
// The returned Result is filled in whenever the kernel ran, including when
// the error is a *ValidationError.
func (d *Driver) Evaluate(k matmul.Kernel, in *Inputs) (Result, error) {
	if k.N != in.N {
		return Result{}, fmt.Errorf("%w: kernel %s is bound to N=%d, inputs have N=%d", ErrSizeMismatch, k.Name, k.N, in.N)
	}
	if k.Aligned && !in.Aligned(d.Alignment) {
		return Result{}, fmt.Errorf("%w: kernel %s needs %d-byte alignment", ErrMisaligned, k.Name, d.Alignment)
	}

	in.Poison()
	for range d.Options.Warmup {
		k.Fn(in.Fast, in.A, in.B)
	}

	start := time.Now()
	for range d.Options.Count {
		k.Fn(in.Fast, in.A, in.B)
	}
	elapsed := time.Since(start)

	res := Result{
		Kernel:  k.Name,
		Label:   k.Label,
		N:       in.N,
		Count:   d.Options.Count,
		Elapsed: elapsed,
		FLOPS:   Throughput(in.N, d.Options.Count, elapsed),
	}
	klog.V(2).InfoS("Evaluated kernel", "kernel", k.Name, "elapsed", elapsed, "flops", res.FLOPS)

	if bad := Validate(in.Gold, in.Fast, in.N, d.Options.Tolerance); len(bad) > 0 {
		return res, &ValidationError{Kernel: k.Name, Tolerance: d.Options.Tolerance, Mismatches: bad}
	}
	return res, nil
}

// MustEvaluate evaluates k, prints the result line and returns the result.
// Any error aborts the process: a correctness failure first prints one
// line per mismatching element to Stderr.
func (d *Driver) MustEvaluate(k matmul.Kernel, in *Inputs) Result {
	res, err := d.Evaluate(k, in)
	if res.Kernel != "" {
		fmt.Fprintln(d.Stdout, res)
	}
	if err != nil {
		d.fail(k, err)
	}
	return res
}

func (d *Driver) fail(k matmul.Kernel, err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		for _, m := range verr.Mismatches {
			fmt.Fprintf(d.Stderr, "%s %s\n", k.Label, m)
		}
	} else {
		fmt.Fprintln(d.Stderr, err)
	}
	klog.ErrorS(err, "Correctness check failed, aborting", "kernel", k.Name)
	klog.Flush()
	d.abort(AbortStatus)
}

// Run benchmarks kernels over Options.Iterations outer iterations. Each
// iteration regenerates the inputs from a generator seeded with
// Options.Seed, recomputes the gold result and evaluates every kernel in
// order with MustEvaluate.
//
// Run returns an error only for an invalid configuration or a kernel bound
// to a size other than cfg.N, before any kernel runs.
//
// GOMAXPROCS is 1 for the duration of Run, so a kernel backed by a library
// that fans out to goroutines is measured on one thread like the others.
func (d *Driver) Run(cfg matmul.Config, kernels []matmul.Kernel) ([]Result, error) {
	if err := errors.Join(d.Options.Validate(), cfg.Validate()); err != nil {
		return nil, err
	}
	if wrong := lo.Filter(kernels, func(k matmul.Kernel, _ int) bool { return k.N != cfg.N }); len(wrong) > 0 {
		return nil, fmt.Errorf("%w: kernels %v are not bound to N=%d", ErrSizeMismatch, matmul.Names(wrong), cfg.N)
	}

	defer runtime.GOMAXPROCS(runtime.GOMAXPROCS(1))

	if d.PinThread {
		release := pinThread()
		defer release()
	}

	in := NewInputs(cfg.N, cfg.Alignment)
	rng := rand.New(rand.NewPCG(d.Options.Seed, d.Options.Seed))
	results := make([]Result, 0, d.Options.Iterations*len(kernels))

	for iter := range d.Options.Iterations {
		in.Fill(rng)
		klog.V(1).InfoS("Starting iteration", "iteration", iter, "n", cfg.N, "kernels", len(kernels))
		for _, k := range kernels {
			results = append(results, d.MustEvaluate(k, in))
		}
	}
	return results, nil
}

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
	"bufio"
	"bytes"
	"math"
	"math/rand/v2"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/matbench/hwy"
	"github.com/ajroetker/matbench/hwy/contrib/matmul"
)

// abortCode is the panic value of the test abort hook.
type abortCode int

func quickOptions() Options {
	opts := DefaultOptions()
	opts.Warmup = 1
	opts.Count = 2
	return opts
}

// newTestDriver returns a driver writing to buffers whose abort hook
// panics with an abortCode instead of exiting.
func newTestDriver(opts Options) (d *Driver, stdout, stderr *bytes.Buffer) {
	stdout, stderr = new(bytes.Buffer), new(bytes.Buffer)
	d = NewDriver(opts, matmul.Alignment)
	d.PinThread = false
	d.Stdout, d.Stderr = stdout, stderr
	d.abort = func(code int) { panic(abortCode(code)) }
	return d, stdout, stderr
}

// recoverAbort runs fn and returns the status passed to the abort hook,
// or -1 if fn returned normally.
func recoverAbort(fn func()) (code int) {
	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(abortCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()
	fn()
	return -1
}

func filledInputs(t *testing.T, n int, seed uint64) *Inputs {
	t.Helper()
	in := NewInputs(n, matmul.Alignment)
	in.Fill(rand.New(rand.NewPCG(seed, seed)))
	return in
}

// corrupting returns a kernel computing the reference result with one
// element shifted by delta.
func corrupting(n, index int, delta float64) matmul.Kernel {
	return matmul.Kernel{
		Name:  "broken",
		Label: "Broken:",
		N:     n,
		Fn: func(c, a, b []float64) {
			matmul.Reference(c, a, b, n)
			c[index] += delta
		},
	}
}

func TestThroughput(t *testing.T) {
	got := Throughput(128, 256, time.Second)
	assert.Equal(t, 2*128.0*128*128*256, got)

	got = Throughput(4, 1, 500*time.Millisecond)
	assert.InDelta(t, 256.0, got, 1e-9)

	for _, elapsed := range []time.Duration{0, -time.Second} {
		got := Throughput(128, 256, elapsed)
		assert.False(t, math.IsInf(got, 0) || math.IsNaN(got), "elapsed %v: %v", elapsed, got)
		assert.Positive(t, got, "elapsed %v", elapsed)
	}
}

func TestResultString(t *testing.T) {
	r := Result{Label: "Vector J:", FLOPS: 1.5e9}
	assert.Equal(t, "Vector J: 1.5e+09", r.String())
}

func TestEvaluateAllKernels(t *testing.T) {
	cfg := matmul.DefaultConfig()
	kernels, err := matmul.Kernels(cfg)
	require.NoError(t, err)

	d, _, _ := newTestDriver(quickOptions())
	in := filledInputs(t, cfg.N, 0)

	for _, k := range kernels {
		t.Run(k.Name, func(t *testing.T) {
			res, err := d.Evaluate(k, in)
			require.NoError(t, err)
			assert.Equal(t, k.Name, res.Kernel)
			assert.Equal(t, k.Label, res.Label)
			assert.Equal(t, cfg.N, res.N)
			assert.Equal(t, 2, res.Count)
			assert.Positive(t, res.FLOPS)
			assert.False(t, math.IsInf(res.FLOPS, 0))
			for i, v := range in.Fast {
				require.False(t, math.IsInf(v, -1), "element %d still poisoned", i)
			}
		})
	}
}

func TestEvaluatePoisonDetected(t *testing.T) {
	n := 8
	in := filledInputs(t, n, 1)
	d, _, _ := newTestDriver(quickOptions())
	lazy := matmul.Kernel{Name: "lazy", Label: "Lazy:", N: n, Fn: func(c, a, b []float64) {}}

	res, err := d.Evaluate(lazy, in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "lazy", res.Kernel)
	assert.Len(t, verr.Mismatches, n*n)
	for _, m := range verr.Mismatches {
		assert.True(t, math.IsInf(m.Observed, -1))
	}
}

func TestEvaluateMisaligned(t *testing.T) {
	n := 8
	in := filledInputs(t, n, 2)
	shifted := hwy.AlignedFloat64s(n*n+1, matmul.Alignment)[1:]
	copy(shifted, in.A)
	in.A = shifted

	d, _, _ := newTestDriver(quickOptions())
	called := false
	k := matmul.Kernel{Name: "aligned", Label: "Aligned:", N: n, Aligned: true, Fn: func(c, a, b []float64) { called = true }}
	_, err := d.Evaluate(k, in)
	require.ErrorIs(t, err, ErrMisaligned)
	assert.False(t, called)

	// Kernels without the requirement run on the same buffers.
	k.Aligned = false
	k.Fn = func(c, a, b []float64) { matmul.Reference(c, a, b, n) }
	_, err = d.Evaluate(k, in)
	assert.NoError(t, err)
}

func TestEvaluateSizeMismatch(t *testing.T) {
	in := filledInputs(t, 8, 2)
	d, _, _ := newTestDriver(quickOptions())
	called := false
	k := matmul.Kernel{Name: "other", Label: "Other:", N: 16, Fn: func(c, a, b []float64) { called = true }}

	_, err := d.Evaluate(k, in)
	require.ErrorIs(t, err, ErrSizeMismatch)
	assert.False(t, called)
}

// TestMustEvaluateFailureInjection corrupts one output element: the driver
// must report it on the diagnostic stream and abort.
func TestMustEvaluateFailureInjection(t *testing.T) {
	n := 16
	in := filledInputs(t, n, 3)
	d, stdout, stderr := newTestDriver(quickOptions())
	k := corrupting(n, 2*n+5, 1e-6)

	code := recoverAbort(func() { d.MustEvaluate(k, in) })
	assert.Equal(t, AbortStatus, code)

	// The throughput line is printed before validation.
	assert.True(t, strings.HasPrefix(stdout.String(), "Broken: "), stdout.String())

	lines := strings.Split(strings.TrimSpace(stderr.String()), "\n")
	require.Len(t, lines, 1)
	want := Mismatch{Index: 2*n + 5, Row: 2, Col: 5, Expected: in.Gold[2*n+5], Observed: in.Fast[2*n+5]}
	assert.Equal(t, "Broken: "+want.String(), lines[0])
	assert.Contains(t, lines[0], "index 37 (row 2, col 5)")
	assert.Contains(t, lines[0], strconv.FormatFloat(want.Expected, 'g', 17, 64))
}

func TestMustEvaluateNaN(t *testing.T) {
	n := 4
	in := filledInputs(t, n, 4)
	d, _, stderr := newTestDriver(quickOptions())
	k := corrupting(n, 0, math.NaN())

	code := recoverAbort(func() { d.MustEvaluate(k, in) })
	assert.Equal(t, AbortStatus, code)
	assert.Contains(t, stderr.String(), "observed NaN")
}

func TestMustEvaluatePasses(t *testing.T) {
	n := 16
	in := filledInputs(t, n, 5)
	d, stdout, stderr := newTestDriver(quickOptions())
	k := corrupting(n, 0, 0)

	var res Result
	code := recoverAbort(func() { res = d.MustEvaluate(k, in) })
	assert.Equal(t, -1, code)
	assert.Empty(t, stderr.String())
	assert.Equal(t, res.String()+"\n", stdout.String())
}

func TestRun(t *testing.T) {
	cfg := matmul.DefaultConfig()
	cfg.N = 16
	cfg.VectorLength = 4
	kernels, err := matmul.Kernels(cfg)
	require.NoError(t, err)

	opts := quickOptions()
	opts.Iterations = 3
	d, stdout, stderr := newTestDriver(opts)
	d.PinThread = true

	results, err := d.Run(cfg, kernels)
	require.NoError(t, err)
	require.Len(t, results, opts.Iterations*len(kernels))
	assert.Empty(t, stderr.String())

	var lines []string
	sc := bufio.NewScanner(stdout)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	require.Len(t, lines, len(results))

	for i, line := range lines {
		k := kernels[i%len(kernels)]
		require.True(t, strings.HasPrefix(line, k.Label+" "), "line %d: %q", i, line)
		flops, err := strconv.ParseFloat(strings.TrimPrefix(line, k.Label+" "), 64)
		require.NoError(t, err, "line %d: %q", i, line)
		assert.Positive(t, flops)
	}
}

func TestRunAbortsOnFailure(t *testing.T) {
	cfg := matmul.DefaultConfig()
	cfg.N = 8
	cfg.VectorCount = 1
	good, err := matmul.Kernels(cfg)
	require.NoError(t, err)
	kernels := append(good[:2:2], corrupting(cfg.N, 63, 1))

	d, stdout, stderr := newTestDriver(quickOptions())
	code := recoverAbort(func() { _, _ = d.Run(cfg, kernels) })
	assert.Equal(t, AbortStatus, code)

	// Two good kernels and the broken one of the first iteration.
	assert.Equal(t, 3, strings.Count(stdout.String(), "\n"))
	assert.Contains(t, stderr.String(), "index 63 (row 7, col 7)")
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	d, stdout, _ := newTestDriver(quickOptions())

	cfg := matmul.DefaultConfig()
	cfg.RegisterBlock = 3
	_, err := d.Run(cfg, nil)
	assert.ErrorIs(t, err, matmul.ErrInvalidConfig)

	d.Options.Count = 0
	_, err = d.Run(matmul.DefaultConfig(), nil)
	assert.ErrorIs(t, err, ErrInvalidOptions)
	assert.Empty(t, stdout.String())
}

func TestRunRejectsMismatchedKernels(t *testing.T) {
	small := matmul.DefaultConfig()
	small.N = 8
	small.VectorCount = 1
	kernels, err := matmul.Kernels(small)
	require.NoError(t, err)

	cfg := small
	cfg.N = 16
	d, stdout, stderr := newTestDriver(quickOptions())
	_, err = d.Run(cfg, kernels)
	require.ErrorIs(t, err, ErrSizeMismatch)
	assert.Contains(t, err.Error(), "simple")
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunSingleThreaded(t *testing.T) {
	defer runtime.GOMAXPROCS(runtime.GOMAXPROCS(4))

	cfg := matmul.DefaultConfig()
	cfg.N = 8
	cfg.VectorCount = 1
	var procs []int
	k := matmul.Kernel{Name: "procs", Label: "Procs:", N: cfg.N, Fn: func(c, a, b []float64) {
		procs = append(procs, runtime.GOMAXPROCS(0))
		matmul.Reference(c, a, b, cfg.N)
	}}

	d, _, _ := newTestDriver(quickOptions())
	_, err := d.Run(cfg, []matmul.Kernel{k})
	require.NoError(t, err)
	require.NotEmpty(t, procs)
	for _, p := range procs {
		assert.Equal(t, 1, p)
	}
	assert.Equal(t, 4, runtime.GOMAXPROCS(0), "GOMAXPROCS not restored")
}

// TestAbortExitStatus runs the fatal path in a child process with the real
// exit hook.
func TestAbortExitStatus(t *testing.T) {
	const n = 8
	if os.Getenv("MATBENCH_ABORT_CHILD") == "1" {
		in := NewInputs(n, matmul.Alignment)
		in.Fill(rand.New(rand.NewPCG(0, 0)))
		d := NewDriver(quickOptions(), matmul.Alignment)
		d.MustEvaluate(corrupting(n, 3, 0.5), in)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestAbortExitStatus$")
	cmd.Env = append(os.Environ(), "MATBENCH_ABORT_CHILD=1")
	var stdout, stderr bytes.Buffer
	cmd.Stdout, cmd.Stderr = &stdout, &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr, "stdout: %s\nstderr: %s", stdout.String(), stderr.String())
	assert.Equal(t, AbortStatus, exitErr.ExitCode())
	assert.Contains(t, stderr.String(), "Broken: index 3 (row 0, col 3)")
	assert.Contains(t, stdout.String(), "Broken: ")
}

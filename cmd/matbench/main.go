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

// Command matbench benchmarks the matmul kernels against the reference
// result.
//
// Each outer iteration prints one "label throughput" line per kernel to
// stdout, throughput in floating-point operations per second. If any
// kernel's output differs from the reference beyond tolerance, the
// offending elements are printed to stderr and the process exits with
// status 134.
//
// Usage:
//
//	matbench [run] [--kernels simple,tiled] [--summary] [-v=1]
//	matbench list
//	matbench cpuinfo
package main

import (
	goflag "flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"k8s.io/klog/v2"

	"github.com/ajroetker/matbench/hwy"
	"github.com/ajroetker/matbench/hwy/contrib/matmul"
	"github.com/ajroetker/matbench/internal/cpuinfo"
	"github.com/ajroetker/matbench/internal/harness"
)

func main() {
	err := newRootCmd().Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

type runFlags struct {
	kernels []string
	summary bool
}

func newRootCmd() *cobra.Command {
	var flags runFlags
	root := &cobra.Command{
		Use:   "matbench",
		Short: "Correctness-checked dense float64 matrix multiplication benchmark",
		Long: fmt.Sprintf("matbench times every matmul kernel on %d×%d float64 matrices and\n"+
			"checks each result against the reference within %g.", matmul.N, matmul.N, harness.Tolerance),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmark(cmd.OutOrStdout(), cmd.ErrOrStderr(), flags)
		},
	}
	addRunFlags(root, &flags)

	goflags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(goflags)
	root.PersistentFlags().AddGoFlagSet(goflags)

	root.AddCommand(newRunCmd(), newListCmd(), newCPUInfoCmd())
	return root
}

func addRunFlags(cmd *cobra.Command, flags *runFlags) {
	cmd.Flags().StringSliceVar(&flags.kernels, "kernels", nil, "kernels to run, in registry order (default all)")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a per-kernel min/mean/max table after the run")
}

func newRunCmd() *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmark(cmd.OutOrStdout(), cmd.ErrOrStderr(), flags)
		},
	}
	addRunFlags(cmd, &flags)
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the kernels compiled into this build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := matmul.DefaultConfig()
			kernels, err := matmul.Kernels(cfg)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "N=%d lanes=%d register-block=%d vector-count=%d alignment=%d\n",
				cfg.N, cfg.Lanes(), cfg.RegisterBlock, cfg.VectorCount, cfg.Alignment)
			for _, k := range kernels {
				var flags []string
				if k.Aligned {
					flags = append(flags, "aligned")
				}
				if k.Fused {
					flags = append(flags, "fused")
				}
				fmt.Fprintf(w, "%-12s %-12s %s\n", k.Name, k.Label, strings.Join(flags, " "))
			}
			return nil
		},
	}
}

func newCPUInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpuinfo",
		Short: "Print the CPU features and lane dispatch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cpuinfo.Describe(cmd.OutOrStdout())
		},
	}
}

func runBenchmark(stdout, stderr io.Writer, flags runFlags) error {
	cfg := matmul.DefaultConfig()
	kernels, err := matmul.Kernels(cfg)
	if err != nil {
		return err
	}
	kernels, err = matmul.Select(kernels, flags.kernels)
	if err != nil {
		return err
	}
	klog.V(1).InfoS("Starting benchmark", "dispatch", hwy.CurrentName(), "lanes", cfg.Lanes(),
		"kernels", matmul.Names(kernels))

	d := harness.NewDriver(harness.DefaultOptions(), cfg.Alignment)
	d.Stdout, d.Stderr = stdout, stderr
	results, err := d.Run(cfg, kernels)
	if err != nil {
		return err
	}

	if flags.summary {
		fmt.Fprintln(stdout)
		return harness.WriteSummary(stdout, language.English, harness.Summarize(results))
	}
	return nil
}

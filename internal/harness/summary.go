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
	"io"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// KernelStats aggregates the throughput of one kernel over iterations.
type KernelStats struct {
	Kernel string
	Label  string
	Runs   int
	Min    float64
	Max    float64
	Sum    float64
}

// Mean returns the mean throughput.
func (s KernelStats) Mean() float64 {
	if s.Runs == 0 {
		return 0
	}
	return s.Sum / float64(s.Runs)
}

// Summarize groups results by kernel, in order of first appearance.
func Summarize(results []Result) []KernelStats {
	var stats []KernelStats
	index := make(map[string]int)
	for _, r := range results {
		i, ok := index[r.Kernel]
		if !ok {
			i = len(stats)
			index[r.Kernel] = i
			stats = append(stats, KernelStats{
				Kernel: r.Kernel,
				Label:  r.Label,
				Min:    math.Inf(1),
				Max:    math.Inf(-1),
			})
		}
		s := &stats[i]
		s.Runs++
		s.Sum += r.FLOPS
		s.Min = min(s.Min, r.FLOPS)
		s.Max = max(s.Max, r.FLOPS)
	}
	return stats
}

// WriteSummary prints a table of min, mean and max throughput in MFLOP/s,
// with digits grouped for the given language.
func WriteSummary(w io.Writer, tag language.Tag, stats []KernelStats) error {
	p := message.NewPrinter(tag)
	if _, err := p.Fprintf(w, "%-14s %5s %14s %14s %14s\n", "kernel", "runs", "min MFLOP/s", "mean MFLOP/s", "max MFLOP/s"); err != nil {
		return err
	}
	for _, s := range stats {
		_, err := p.Fprintf(w, "%-14s %5d %14.1f %14.1f %14.1f\n",
			s.Label, s.Runs, s.Min/1e6, s.Mean()/1e6, s.Max/1e6)
		if err != nil {
			return err
		}
	}
	return nil
}

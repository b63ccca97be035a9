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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestSummarize(t *testing.T) {
	results := []Result{
		{Kernel: "simple", Label: "Simple:", FLOPS: 1e9},
		{Kernel: "tiled", Label: "Tiled:", FLOPS: 4e9},
		{Kernel: "simple", Label: "Simple:", FLOPS: 3e9},
		{Kernel: "tiled", Label: "Tiled:", FLOPS: 2e9},
	}
	stats := Summarize(results)
	require.Len(t, stats, 2)

	assert.Equal(t, "simple", stats[0].Kernel)
	assert.Equal(t, 2, stats[0].Runs)
	assert.Equal(t, 1e9, stats[0].Min)
	assert.Equal(t, 3e9, stats[0].Max)
	assert.Equal(t, 2e9, stats[0].Mean())

	assert.Equal(t, "tiled", stats[1].Kernel)
	assert.Equal(t, 3e9, stats[1].Mean())

	assert.Empty(t, Summarize(nil))
	assert.Zero(t, KernelStats{}.Mean())
}

func TestWriteSummary(t *testing.T) {
	stats := Summarize([]Result{{Kernel: "gonum", Label: "Gonum:", FLOPS: 12345e6}})

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, language.English, stats))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "mean MFLOP/s")
	assert.True(t, strings.HasPrefix(lines[1], "Gonum:"))
	assert.Contains(t, lines[1], "12,345.0")
}

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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/matbench/hwy/contrib/matmul"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	kernels, err := matmul.Kernels(matmul.DefaultConfig())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(kernels)+1)
	assert.Contains(t, lines[0], "N=128")
	for i, k := range kernels {
		assert.True(t, strings.HasPrefix(lines[i+1], k.Name+" "), "line %q", lines[i+1])
		assert.Contains(t, lines[i+1], k.Label)
	}
}

func TestCPUInfo(t *testing.T) {
	out, err := execute(t, "cpuinfo")
	require.NoError(t, err)
	assert.Contains(t, out, "Dispatch level:")
}

func TestRunUnknownKernel(t *testing.T) {
	for _, args := range [][]string{
		{"--kernels", "simple,bogus"},
		{"run", "--kernels", "bogus"},
	} {
		out, err := execute(t, args...)
		require.Error(t, err, "args %v", args)
		assert.Contains(t, out, "bogus")
	}
}

func TestRejectsArguments(t *testing.T) {
	_, err := execute(t, "list", "extra")
	assert.Error(t, err)
}

func TestKlogFlags(t *testing.T) {
	cmd := newRootCmd()
	assert.NotNil(t, cmd.PersistentFlags().Lookup("v"), "klog -v flag not registered")
	assert.NotNil(t, cmd.Flags().Lookup("summary"))
}

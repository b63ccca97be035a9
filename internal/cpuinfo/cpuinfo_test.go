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

package cpuinfo

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/ajroetker/matbench/hwy"
)

func TestDescribe(t *testing.T) {
	var buf bytes.Buffer
	if err := Describe(&buf); err != nil {
		t.Fatalf("Describe: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"GOARCH: " + runtime.GOARCH,
		"Dispatch level: " + hwy.CurrentLevel().String(),
		"Native float64 lanes: ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	for _, f := range Features() {
		if !strings.Contains(out, f.Name+":") {
			t.Errorf("output missing feature %s", f.Name)
		}
	}
}

func TestFeaturesBaseline(t *testing.T) {
	var baseline string
	switch runtime.GOARCH {
	case "amd64":
		baseline = "HasSSE2"
	case "arm64":
		baseline = "HasASIMD"
	default:
		t.Skipf("no feature table for %s", runtime.GOARCH)
	}
	for _, f := range Features() {
		if f.Name == baseline {
			if !f.Has {
				t.Errorf("%s not reported on %s", baseline, runtime.GOARCH)
			}
			return
		}
	}
	t.Errorf("%s missing from feature table", baseline)
}

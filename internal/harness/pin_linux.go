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

//go:build linux

package harness

import (
	"runtime"

	"golang.org/x/sys/unix"
	"k8s.io/klog/v2"
)

// pinThread locks the calling goroutine to its OS thread and restricts that
// thread to the first CPU of its current affinity mask. The returned
// function restores the mask and unlocks the thread.
func pinThread() (release func()) {
	runtime.LockOSThread()

	var prev unix.CPUSet
	if err := unix.SchedGetaffinity(0, &prev); err != nil {
		klog.V(1).InfoS("Not pinning thread", "err", err)
		return runtime.UnlockOSThread
	}

	cpu := -1
	for i := range len(prev) * 64 {
		if prev.IsSet(i) {
			cpu = i
			break
		}
	}
	if cpu < 0 {
		return runtime.UnlockOSThread
	}

	var set unix.CPUSet
	set.Set(cpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		klog.V(1).InfoS("Not pinning thread", "cpu", cpu, "err", err)
		return runtime.UnlockOSThread
	}
	klog.V(1).InfoS("Pinned thread", "cpu", cpu)

	return func() {
		if err := unix.SchedSetaffinity(0, &prev); err != nil {
			klog.V(1).InfoS("Restoring CPU affinity failed", "err", err)
		}
		runtime.UnlockOSThread()
	}
}

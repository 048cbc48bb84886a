// Copyright 2025 go-sortutil Authors
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

package sortutil

import (
	"os"
	"strconv"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// cacheLineSize is the cache line size in bytes that x/sys/cpu pads to on
// this architecture.
var cacheLineSize = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// linearMax is the SORTUTIL_LINEAR_MAX override, or -1 when unset.
// Set by init().
var linearMax int

func init() {
	linearMax = linearMaxEnv()
}

// linearMaxEnv parses SORTUTIL_LINEAR_MAX. Unset, malformed and negative
// values all disable the override.
func linearMaxEnv() int {
	val := os.Getenv("SORTUTIL_LINEAR_MAX")
	if val == "" {
		return -1
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return -1
	}
	return n
}

// CacheLineSize returns the cache line size in bytes for the current
// architecture.
func CacheLineSize() int {
	return cacheLineSize
}

// LinearSearchMax returns the largest window, in elements of T, that a kernel
// should scan linearly rather than bisect. By default this is the number of
// elements that fit in one cache line (at least 1).
//
// For example, with a 64-byte cache line:
//   - int64: 8 elements
//   - int32: 16 elements
//   - string: 4 elements
func LinearSearchMax[T any]() int {
	if linearMax >= 0 {
		return linearMax
	}
	var dummy T
	size := int(unsafe.Sizeof(dummy))
	if size == 0 {
		return 1
	}
	return max(1, cacheLineSize/size)
}

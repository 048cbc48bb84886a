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

package merge

import (
	"cmp"

	"github.com/ajroetker/go-sortutil/sortutil"
	"github.com/ajroetker/go-sortutil/sortutil/op"
)

// Helper functions shared by both strategies.

// InsertionSort sorts s stably by binary insertion.
//
// Cost: O(n log n) comparisons, O(n²) moves.
func InsertionSort[T any](s []T, less func(a, b T) bool) {
	insertionSortFrom(s, 1, less)
}

// insertionSortFrom inserts s[sorted:] one by one into the sorted prefix
// s[:sorted]. Prefixes that fit in a cache line are scanned linearly.
func insertionSortFrom[T any](s []T, sorted int, less func(a, b T) bool) {
	window := sortutil.LinearSearchMax[T]()
	for i := max(sorted, 1); i < len(s); i++ {
		search := op.SearchRight[T]
		if i <= window {
			search = op.SearchRightLinear[T]
		}
		op.InsertLeft(s, i, i-search(s[:i], s[i], less))
	}
}

// IsSorted reports whether data is sorted in ascending order.
func IsSorted[T cmp.Ordered](data []T) bool {
	return IsSortedFunc(data, cmp.Compare[T])
}

// IsSortedFunc reports whether data is sorted by compare.
func IsSortedFunc[T any](data []T, compare func(a, b T) int) bool {
	for i := len(data) - 1; i > 0; i-- {
		if compare(data[i], data[i-1]) < 0 {
			return false
		}
	}
	return true
}

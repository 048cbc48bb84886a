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

package op

import "math/bits"

// Found is the result of SearchUnique: Index is where the value sits (or
// would be inserted), and Exists reports whether an element comparatively
// equal to the value is already there.
type Found struct {
	Exists bool
	Index  int
}

// Add returns f with its index shifted by off. Use it to translate a result
// found in a sub-slice back to the enclosing slice.
func (f Found) Add(off int) Found {
	return Found{Exists: f.Exists, Index: f.Index + off}
}

// Log2Ceil returns the ceiling of the binary logarithm of x, and 0 for
// x <= 1.
func Log2Ceil(x int) int {
	if x <= 1 {
		return 0
	}
	return bits.Len(uint(x - 1))
}

// LowerBound returns the least i in [0, n] for which pred(i) is false, or n
// if pred holds everywhere. pred must be true on a prefix [0, m) and false on
// [m, n); the result is unspecified otherwise.
//
// The search decides one bit of the answer per iteration, highest bit first,
// and keeps a bit when the probe just below it still satisfies pred. The
// number of iterations depends only on n, never on the data, which keeps the
// loop free of unpredictable branches.
//
// Cost: floor(log2(n))+1 iterations, at most that many calls to pred.
// pred is never called when n is 0.
func LowerBound(n int, pred func(i int) bool) int {
	i := 0
	for k := bits.Len(uint(n|1)) - 1; k >= 0; k-- {
		t := i | 1<<k
		if t <= n && pred(t-1) {
			i = t
		}
	}
	return i
}

// LowerBoundLinear has the same contract as LowerBound but scans from 0.
// It wins over LowerBound on windows that fit in a cache line.
//
// Cost: O(n) calls to pred.
func LowerBoundLinear(n int, pred func(i int) bool) int {
	for i := 0; i < n; i++ {
		if !pred(i) {
			return i
		}
	}
	return n
}

// Search returns the leftmost index at which val can be inserted into s while
// keeping s non-descending under less: the first i with !less(s[i], val).
// s must be sorted by less.
//
// Cost: O(log n) comparisons.
func Search[T any](s []T, val T, less func(a, b T) bool) int {
	return LowerBound(len(s), func(i int) bool { return less(s[i], val) })
}

// SearchRight returns the rightmost insertion index for val: the first i
// with less(val, s[i]). Inserting there places val after every element equal
// to it, which keeps insertion stable.
//
// Cost: O(log n) comparisons.
func SearchRight[T any](s []T, val T, less func(a, b T) bool) int {
	return LowerBound(len(s), func(i int) bool { return !less(val, s[i]) })
}

// SearchLinear is Search scanning from the front. Use it on slices short
// enough to fit in a cache line; see sortutil.LinearSearchMax.
//
// Cost: O(n) comparisons.
func SearchLinear[T any](s []T, val T, less func(a, b T) bool) int {
	return LowerBoundLinear(len(s), func(i int) bool { return less(s[i], val) })
}

// SearchRightLinear is SearchRight scanning from the front.
//
// Cost: O(n) comparisons.
func SearchRightLinear[T any](s []T, val T, less func(a, b T) bool) int {
	return LowerBoundLinear(len(s), func(i int) bool { return !less(val, s[i]) })
}

// SearchUnique searches s like Search and reports whether the element at the
// returned index is comparatively equal to val. With several equal elements
// the leftmost one is found.
//
// Cost: O(log n) comparisons.
func SearchUnique[T any](s []T, val T, less func(a, b T) bool) Found {
	i := Search(s, val, less)
	return Found{Exists: i < len(s) && !less(val, s[i]), Index: i}
}

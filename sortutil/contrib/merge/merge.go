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
	"slices"

	"github.com/eapache/queue"

	"github.com/ajroetker/go-sortutil/sortutil"
	"github.com/ajroetker/go-sortutil/sortutil/buffer"
	"github.com/ajroetker/go-sortutil/sortutil/op"
	"github.com/ajroetker/go-sortutil/sortutil/sorter"
)

// Thresholds for the two strategies.
const (
	// minRun: natural runs shorter than this are extended by insertion sort
	// before merging. Inputs this short are insertion sorted outright.
	minRun = 24

	// blockSize: the in-place strategy insertion sorts blocks of this length
	// before merging them.
	blockSize = 20
)

// Policies are the budgets of Kernel. The buffered strategy never uses more
// than half the input, so the maximum budget equals the default.
var Policies = sorter.Policies{
	Default: sorter.Half,
	Min:     sorter.None,
	Max:     sorter.Half,
}

// run is a sorted range v[start:end] waiting to be merged.
type run struct {
	start, end int
}

// Kernel sorts v stably with the buffered strategy when aux holds at least
// len(v)/2 elements, and in place otherwise. It always returns Done.
func Kernel[T any](v []T, aux *buffer.Buffer[T], less func(a, b T) bool) sortutil.Outcome {
	return Buffered(v, aux, less).Or(func() sortutil.Outcome {
		return InPlace(v, less)
	})
}

// Buffered sorts v stably using aux to park runs while merging. It returns
// Fail, without touching v, when aux holds fewer than len(v)/2 elements and
// v is too long to insertion sort.
//
// Elements are moved into and out of aux with aux.Transfer(), so a Borrowed
// buffer gets back a permutation of its own elements.
func Buffered[T any](v []T, aux *buffer.Buffer[T], less func(a, b T) bool) sortutil.Outcome {
	n := len(v)
	if n <= minRun {
		InsertionSort(v, less)
		return sortutil.Done
	}
	if aux.Cap() < n/2 {
		return sortutil.Fail
	}

	scratch, mode := aux.Slice(), aux.Transfer()
	mergeRuns(collectRuns(v, less), func(a, m, b int) {
		mergeBuffered(v[a:b], m-a, scratch, mode, less)
	})
	return sortutil.Done
}

// InPlace sorts v stably without an auxiliary buffer.
//
// Cost: O(n log² n) moves, O(n log n) comparisons.
func InPlace[T any](v []T, less func(a, b T) bool) sortutil.Outcome {
	n := len(v)
	runs := queue.New()
	for a := 0; a < n; a += blockSize {
		b := min(a+blockSize, n)
		InsertionSort(v[a:b], less)
		runs.Add(run{a, b})
	}
	mergeRuns(runs, func(a, m, b int) {
		symMerge(v[a:b], m-a, less)
	})
	return sortutil.Done
}

// collectRuns splits v into natural runs, reversing strictly descending ones
// and extending short ones to minRun, and queues them in order.
func collectRuns[T any](v []T, less func(a, b T) bool) *queue.Queue {
	n := len(v)
	runs := queue.New()
	for a := 0; a < n; {
		b := a + 1
		if b < n {
			if less(v[b], v[a]) {
				for b+1 < n && less(v[b+1], v[b]) {
					b++
				}
				b++
				// Strictly descending, so reversing cannot reorder equal elements.
				slices.Reverse(v[a:b])
			} else {
				for b+1 < n && !less(v[b+1], v[b]) {
					b++
				}
				b++
			}
		}
		if b-a < minRun {
			end := min(a+minRun, n)
			insertionSortFrom(v[a:end], b-a, less)
			b = end
		}
		runs.Add(run{a, b})
		a = b
	}
	return runs
}

// mergeRuns merges adjacent queued runs pairwise until one run is left.
// Each pass consumes exactly the runs queued before it, so the queue stays
// in sequence order and every merged pair is adjacent.
func mergeRuns(runs *queue.Queue, merge func(a, m, b int)) {
	for runs.Length() > 1 {
		pass := runs.Length()
		for ; pass >= 2; pass -= 2 {
			left := runs.Remove().(run)
			right := runs.Remove().(run)
			merge(left.start, left.end, right.end)
			runs.Add(run{left.start, right.end})
		}
		if pass == 1 {
			runs.Add(runs.Remove())
		}
	}
}

// mergeBuffered merges the sorted halves s[:m] and s[m:] by parking the
// shorter one in scratch. len(scratch) must be at least min(m, len(s)-m).
func mergeBuffered[T any](s []T, m int, scratch []T, mode op.Mode, less func(a, b T) bool) {
	if m == 0 || m == len(s) || !less(s[m], s[m-1]) {
		return
	}
	if m <= len(s)-m {
		mergeForward(s, m, scratch, mode, less)
	} else {
		mergeBackward(s, m, scratch, mode, less)
	}
}

// mergeForward parks s[:m] and fills s from the front. The slots still
// owed to the parked run are always s[k:j].
func mergeForward[T any](s []T, m int, scratch []T, mode op.Mode, less func(a, b T) bool) {
	parked := op.MoveSlice(mode, scratch, s[:m])
	i, j, k := 0, m, 0
	for i < len(parked) && j < len(s) {
		if less(s[j], parked[i]) {
			transfer(mode, &s[k], &s[j])
			j++
		} else {
			transfer(mode, &s[k], &parked[i])
			i++
		}
		k++
	}
	if i < len(parked) {
		op.Write(mode, s[k:], parked[i:])
	}
}

// mergeBackward parks s[m:] and fills s from the back. The slots still
// owed to the parked run are always s[i+1:k+1].
func mergeBackward[T any](s []T, m int, scratch []T, mode op.Mode, less func(a, b T) bool) {
	parked := op.MoveSlice(mode, scratch, s[m:])
	i, j, k := m-1, len(parked)-1, len(s)-1
	for i >= 0 && j >= 0 {
		if less(parked[j], s[i]) {
			transfer(mode, &s[k], &s[i])
			i--
		} else {
			transfer(mode, &s[k], &parked[j])
			j--
		}
		k--
	}
	if j >= 0 {
		op.Write(mode, s[:j+1], parked[:j+1])
	}
}

// transfer moves *src into *dst, swapping in Swap mode.
func transfer[T any](mode op.Mode, dst, src *T) {
	if mode == op.Swap {
		*dst, *src = *src, *dst
		return
	}
	*dst = *src
}

// symMerge merges the sorted halves s[:m] and s[m:] in place by rotating the
// middle into position and recursing on both sides.
func symMerge[T any](s []T, m int, less func(a, b T) bool) {
	n := len(s)
	if m == 0 || m == n || !less(s[m], s[m-1]) {
		return
	}

	// One element on either side: a single shifted insertion does it.
	if m == 1 {
		op.InsertRight(s, 0, op.Search(s[1:], s[0], less))
		return
	}
	if n-m == 1 {
		op.InsertLeft(s, m, m-op.SearchRight(s[:m], s[m], less))
		return
	}

	mid := n / 2
	k := mid + m
	lo, hi := 0, m
	if m > mid {
		lo, hi = k-n, mid
	}
	p := k - 1
	start := lo + op.LowerBound(hi-lo, func(c int) bool {
		c += lo
		return !less(s[p-c], s[c])
	})
	end := k - start

	if start < m && m < end {
		op.Rotate(s[start:end], m-start)
	}
	if 0 < start && start < mid {
		symMerge(s[:mid], start, less)
	}
	if mid < end && end < n {
		symMerge(s[mid:], end-mid, less)
	}
}

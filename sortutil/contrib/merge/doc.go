// Package merge provides a stable merge sort built on the sortutil
// primitives. It is a reference kernel: a complete, budget-aware sort that
// shows how the op, buffer and sorter packages fit together.
//
// # Algorithm
//
// The kernel tries two strategies in order:
//   - Buffered: natural runs (descending ones reversed) are extended to a
//     minimum length with binary insertion sort, then merged pairwise, pass
//     after pass. Each merge parks the shorter run in the auxiliary buffer,
//     so a buffer of half the input is always enough.
//   - In place: when the buffer is smaller than that, insertion-sorted
//     blocks are merged with a rotation-based symmetric merge. It needs no
//     buffer at all and runs in O(n log² n).
//
// Both strategies are stable.
//
// # Budgets
//
// The default and maximum budgets provision half the input length; the
// minimum budget provisions nothing and always takes the in-place path.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-sortutil/sortutil/contrib/merge"
//
//	func ProcessData(data []string) {
//	    merge.Sort(data)    // stable ascending sort, n/2 scratch
//	    merge.SortMin(data) // stable ascending sort, no scratch
//	}
//
// A borrowed buffer can be reused across calls:
//
//	scratch := buffer.BorrowUninit(make([]Record, 4096))
//	out := merge.SortWithFunc(records, scratch, compareRecords)
package merge

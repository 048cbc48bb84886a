// Package sortutil provides building blocks for comparison sorts that run
// under an explicit memory budget.
//
// The package does not sort anything by itself. It is the core of a small
// family of packages that kernel authors combine:
//
//   - [github.com/ajroetker/go-sortutil/sortutil/op]: index-level sequence
//     operations (rotate, shifted insertion, swap-or-copy block transfer) and
//     a branchless lower-bound search.
//   - [github.com/ajroetker/go-sortutil/sortutil/buffer]: an auxiliary
//     buffer over owned or borrowed storage.
//   - [github.com/ajroetker/go-sortutil/sortutil/sorter]: binds three budget
//     policies and a kernel into Sort, SortWith, SortMin and SortMax entry
//     points.
//
// This package itself holds the [Outcome] type kernels return, and a few
// runtime tuning values derived from the host CPU.
//
// # Outcomes
//
// A kernel reports [Done] when the sequence is sorted and [Fail] when the
// buffer it was given is too small for the strategy it tried. Strategies are
// chained lazily:
//
//	return buffered(v, aux, less).Or(func() sortutil.Outcome {
//	    return inPlace(v, less)
//	})
//
// # Environment
//
// SORTUTIL_LINEAR_MAX overrides [LinearSearchMax] for every element type.
package sortutil

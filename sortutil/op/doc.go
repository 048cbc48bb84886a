// Package op provides the index-level sequence operations sort kernels are
// built from.
//
// A sequence is a Go slice. Every operation works in place on the slice it is
// given and never reaches outside of it, so sub-sequences are expressed as
// re-slices of one backing array. Preconditions that would be undefined
// behavior in pointer-based code (out-of-range positions, overlapping
// transfer ranges) are checked and panic with an "op:" message.
//
// # Sequence operations
//
//   - [Rotate]: circular left rotation in O(n) moves
//   - [InsertLeft], [InsertRight]: move one element n slots, shifting the
//     elements in between by one
//   - [MoveSlice], [Write]: block transfer by copy or by swap
//
// # Searching
//
// [LowerBound] is a bitwise binary search with a data-independent number of
// iterations. [Search], [SearchRight] and [SearchUnique] apply it to sorted
// slices ordered by a less function.
package op

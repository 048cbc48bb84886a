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

import (
	"fmt"
	"unsafe"
)

// rotateBlock is the largest rotation side parked in a stack block rather
// than rotated by block swaps.
const rotateBlock = 16

// Mode selects how MoveSlice and Write transfer elements.
type Mode uint8

const (
	// Copy overwrites the destination and leaves the source moved-from:
	// its elements must not be used again as if they were still owned there.
	Copy Mode = iota

	// Swap exchanges source and destination element-wise, so both ranges
	// hold valid elements afterwards.
	Swap
)

// String returns "copy" or "swap".
func (m Mode) String() string {
	switch m {
	case Copy:
		return "copy"
	case Swap:
		return "swap"
	default:
		return "unknown"
	}
}

// Rotate rotates s to the left by offset mod len(s), so that s[offset]
// becomes s[0]. A negative offset rotates to the right.
//
// The rotation takes whichever path moves the fewest elements: a single
// shifted insertion when one side is one element long, a stack-parked copy
// of the shorter side when it is small, and block swaps otherwise.
//
// Cost: O(n) moves.
func Rotate[T any](s []T, offset int) {
	n := len(s)
	if n < 2 {
		return
	}
	k := offset % n
	if k < 0 {
		k += n
	}
	if k == 0 {
		return
	}

	switch {
	case k == 1:
		InsertRight(s, 0, n-1)
	case n-k == 1:
		InsertLeft(s, n-1, n-1)
	case min(k, n-k) <= rotateBlock:
		rotateBlocked(s, k)
	default:
		rotateSwapped(s, k)
	}
}

// rotateBlocked parks the shorter side of the rotation in a stack block,
// moves the longer side once, and writes the block back.
func rotateBlocked[T any](s []T, k int) {
	var block [rotateBlock]T
	n := len(s)
	if k <= n-k {
		tmp := block[:k]
		copy(tmp, s[:k])
		copy(s, s[k:])
		copy(s[n-k:], tmp)
		return
	}
	r := n - k
	tmp := block[:r]
	copy(tmp, s[k:])
	copy(s[r:], s[:k])
	copy(s, tmp)
}

// rotateSwapped rotates s left by k with repeated block swaps, each of which
// puts the shorter side in its final place.
func rotateSwapped[T any](s []T, k int) {
	i := k
	j := len(s) - k
	for i != j {
		if i > j {
			swapRange(s, k-i, k, j)
			i -= j
		} else {
			swapRange(s, k-i, k+j-i, i)
			j -= i
		}
	}
	swapRange(s, k-i, k, i)
}

// swapRange swaps s[a:a+n] with s[b:b+n]. The ranges must not overlap.
func swapRange[T any](s []T, a, b, n int) {
	for i := 0; i < n; i++ {
		s[a+i], s[b+i] = s[b+i], s[a+i]
	}
}

// InsertLeft moves the element at s[pos] to s[pos-n], shifting
// s[pos-n:pos] one slot to the right.
//
// The element is held in a local while the n intervening elements are
// moved by one overlapping copy, then written back once.
//
// Cost: O(n) writes.
func InsertLeft[T any](s []T, pos, n int) {
	if pos < 0 || pos >= len(s) || n < 0 || n > pos {
		panic(fmt.Sprintf("op: InsertLeft(pos=%d, n=%d) out of range for length %d", pos, n, len(s)))
	}
	if n == 0 {
		return
	}
	val := s[pos]
	copy(s[pos-n+1:pos+1], s[pos-n:pos])
	s[pos-n] = val
}

// InsertRight moves the element at s[pos] to s[pos+n], shifting
// s[pos+1:pos+n+1] one slot to the left.
//
// Cost: O(n) writes.
func InsertRight[T any](s []T, pos, n int) {
	if pos < 0 || pos >= len(s) || n < 0 || n >= len(s)-pos {
		panic(fmt.Sprintf("op: InsertRight(pos=%d, n=%d) out of range for length %d", pos, n, len(s)))
	}
	if n == 0 {
		return
	}
	val := s[pos]
	copy(s[pos:pos+n], s[pos+1:pos+n+1])
	s[pos+n] = val
}

// MoveSlice transfers src to the start of dst using mode and returns the
// view dst[:len(src)] holding the relocated elements.
//
// With Copy, dst is treated as disposable and src is moved-from afterwards.
// With Swap, the previous contents of dst end up in src. In both modes the
// ranges must be disjoint and dst must be at least as long as src.
//
// Cost: O(n) writes.
func MoveSlice[T any](mode Mode, dst, src []T) []T {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("op: MoveSlice destination length %d shorter than source %d", len(dst), len(src)))
	}
	dst = dst[:len(src)]
	Write(mode, dst, src)
	return dst
}

// Write copies or swaps src into dst element-wise. dst and src must have
// the same length and must not overlap.
func Write[T any](mode Mode, dst, src []T) {
	if len(dst) != len(src) {
		panic(fmt.Sprintf("op: Write length mismatch: dst %d, src %d", len(dst), len(src)))
	}
	if Overlaps(dst, src) {
		panic("op: Write ranges overlap")
	}
	if mode == Swap {
		for i := range src {
			dst[i], src[i] = src[i], dst[i]
		}
		return
	}
	copy(dst, src)
}

// Overlaps reports whether a and b share at least one element of memory.
// Empty slices and slices of zero-size elements never overlap.
func Overlaps[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	var dummy T
	size := unsafe.Sizeof(dummy)
	if size == 0 {
		return false
	}
	aStart := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	aEnd := aStart + uintptr(len(a))*size
	bEnd := bStart + uintptr(len(b))*size
	return aStart < bEnd && bStart < aEnd
}

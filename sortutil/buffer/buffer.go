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

// Package buffer provides the auxiliary scratch buffer sort kernels work in.
//
// A [Buffer] exposes exactly Cap() elements through Slice(), whatever
// storage backs it:
//
//   - [New]: an owned allocation that can be resized.
//   - [Borrow]: a caller's initialized slice. Kernels must leave a
//     permutation of its elements behind, so they transfer by swapping.
//   - [BorrowUninit]: a caller's slice whose contents are garbage. Kernels
//     may overwrite it freely but must write each slot before reading it.
//
// A Buffer tracks capacity only; which prefix holds live elements is the
// kernel's bookkeeping. Buffers are not safe for concurrent use. A nil
// *Buffer reads as an empty owned buffer but cannot be resized.
package buffer

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-sortutil/sortutil/op"
)

var (
	// ErrBorrowedResize is returned when a borrowed buffer is asked to grow
	// past the region its caller lent.
	ErrBorrowedResize = errors.New("buffer: cannot grow borrowed buffer past its region")

	// ErrNegativeCapacity is returned by Resize for a negative capacity.
	ErrNegativeCapacity = errors.New("buffer: negative capacity")
)

// Backing identifies the storage behind a Buffer.
type Backing uint8

const (
	// Owned storage is allocated and resized by the Buffer itself.
	Owned Backing = iota

	// Borrowed storage is an initialized caller slice.
	Borrowed

	// BorrowedUninit storage is a caller slice with disposable contents.
	BorrowedUninit
)

// String returns a human-readable name for the backing.
func (b Backing) String() string {
	switch b {
	case Owned:
		return "owned"
	case Borrowed:
		return "borrowed"
	case BorrowedUninit:
		return "borrowed-uninit"
	default:
		return "unknown"
	}
}

// Buffer is a mutable view of Cap() elements over owned or borrowed storage.
type Buffer[T any] struct {
	backing Backing

	// data is the exposed view. For owned buffers len(data) == cap(data).
	data []T

	// region is the full slice lent by the caller; nil for owned buffers.
	region []T
}

// New returns an owned buffer of the given capacity. A negative capacity is
// treated as zero.
func New[T any](capacity int) *Buffer[T] {
	return &Buffer[T]{backing: Owned, data: make([]T, max(capacity, 0))}
}

// Borrow returns a buffer over the initialized region. The caller keeps
// ownership; region must stay valid for as long as the buffer is used.
func Borrow[T any](region []T) *Buffer[T] {
	return &Buffer[T]{backing: Borrowed, data: region, region: region}
}

// BorrowUninit returns a buffer over a region whose current contents may be
// overwritten without regard for what they hold.
func BorrowUninit[T any](region []T) *Buffer[T] {
	return &Buffer[T]{backing: BorrowedUninit, data: region, region: region}
}

// Backing returns the kind of storage behind b. A nil buffer is Owned.
func (b *Buffer[T]) Backing() Backing {
	if b == nil {
		return Owned
	}
	return b.backing
}

// Cap returns the number of elements b exposes, zero for a nil buffer.
func (b *Buffer[T]) Cap() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Slice returns a mutable view of exactly Cap() elements.
func (b *Buffer[T]) Slice() []T {
	if b == nil {
		return nil
	}
	return b.data
}

// Transfer returns the mode kernels must use to move elements into and out
// of b. Initialized borrowed storage is swapped so the caller gets its
// elements back; everything else is copied.
func (b *Buffer[T]) Transfer() op.Mode {
	if b != nil && b.backing == Borrowed {
		return op.Swap
	}
	return op.Copy
}

// Resize changes the capacity of b to n.
//
// An owned buffer reallocates to exactly n elements, preserving the first
// min(Cap(), n) of them. A borrowed buffer narrows or widens its view within
// the caller's region and returns ErrBorrowedResize for anything larger.
func (b *Buffer[T]) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("resize to %d: %w", n, ErrNegativeCapacity)
	}
	if b.backing != Owned {
		if n > len(b.region) {
			return fmt.Errorf("resize %s buffer to %d, region holds %d: %w",
				b.backing, n, len(b.region), ErrBorrowedResize)
		}
		b.data = b.region[:n]
		return nil
	}
	if n == len(b.data) {
		return nil
	}
	data := make([]T, n)
	copy(data, b.data)
	b.data = data
	return nil
}

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
	"github.com/ajroetker/go-sortutil/sortutil/buffer"
	"github.com/ajroetker/go-sortutil/sortutil/sorter"
)

// New returns a Sorter running Kernel under Policies.
func New[T any](opts ...sorter.Option) *sorter.Sorter[T] {
	return sorter.New[T](Policies, Kernel[T], opts...)
}

// NewOrdered returns an ordered Sorter running Kernel under Policies.
func NewOrdered[T cmp.Ordered](opts ...sorter.Option) *sorter.Ordered[T] {
	return sorter.NewOrdered[T](Policies, Kernel[T], opts...)
}

// Sort sorts data stably in ascending order with a buffer of half its length.
func Sort[T cmp.Ordered](data []T) {
	NewOrdered[T]().Sort(data)
}

// SortFunc sorts data stably by compare with a buffer of half its length.
func SortFunc[T any](data []T, compare func(a, b T) int) {
	New[T]().SortBy(data, compare)
}

// SortWith sorts data stably in ascending order using aux as scratch space.
// Kernel falls back to the in-place strategy, so the result is always Done.
func SortWith[T cmp.Ordered](data []T, aux *buffer.Buffer[T]) sortutil.Outcome {
	return NewOrdered[T]().SortWith(data, aux)
}

// SortWithFunc sorts data stably by compare using aux as scratch space.
func SortWithFunc[T any](data []T, aux *buffer.Buffer[T], compare func(a, b T) int) sortutil.Outcome {
	return New[T]().SortWithBy(data, aux, compare)
}

// SortMin sorts data stably in ascending order without a buffer.
func SortMin[T cmp.Ordered](data []T) sortutil.Outcome {
	return NewOrdered[T]().SortMin(data)
}

// SortMinFunc sorts data stably by compare without a buffer.
func SortMinFunc[T any](data []T, compare func(a, b T) int) sortutil.Outcome {
	return New[T]().SortMinBy(data, compare)
}

// SortMax sorts data stably in ascending order with the largest buffer the
// kernel can use.
func SortMax[T cmp.Ordered](data []T) sortutil.Outcome {
	return NewOrdered[T]().SortMax(data)
}

// SortMaxFunc sorts data stably by compare with the largest buffer the
// kernel can use.
func SortMaxFunc[T any](data []T, compare func(a, b T) int) sortutil.Outcome {
	return New[T]().SortMaxBy(data, compare)
}

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

// Package sorter binds three memory-budget policies and a sort kernel into a
// family of sort entry points.
//
// A kernel is a function that sorts a slice given an auxiliary buffer and a
// less function, and reports [sortutil.Fail] when the buffer is too small for
// the strategy it chose. [New] wraps a kernel with its policies:
//
//	s := sorter.New(sorter.Policies{
//	    Default: sorter.Half,
//	    Min:     sorter.None,
//	    Max:     sorter.Full,
//	}, myKernel[T])
//
//	s.SortBy(v, strings.Compare)           // default budget, never fails
//	out := s.SortMinBy(v, strings.Compare) // minimum budget
//
// For cmp.Ordered element types, [NewOrdered] adds Sort, SortWith, SortMin and
// SortMax in natural order.
package sorter

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/ajroetker/go-sortutil/sortutil"
	"github.com/ajroetker/go-sortutil/sortutil/buffer"
)

// Kernel sorts v non-descending under less using aux as scratch space.
//
// It returns sortutil.Done once v is sorted, or sortutil.Fail if and only if
// aux is too small for the strategy it chose. A kernel that fails must leave
// v in its original order; wrap kernels that cannot promise this with
// WithRestoreOnFail.
type Kernel[T any] func(v []T, aux *buffer.Buffer[T], less func(a, b T) bool) sortutil.Outcome

type options struct {
	logger        zerolog.Logger
	restoreOnFail bool
	budget        Budget
}

// Option configures a Sorter.
type Option func(*options)

// WithLogger sets the logger a Sorter reports buffer provisioning and
// failed outcomes to. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRestoreOnFail makes the Sorter snapshot its input before calling the
// kernel and copy the snapshot back if the kernel fails. The snapshot costs
// one extra copy of the input per call.
func WithRestoreOnFail(enabled bool) Option {
	return func(o *options) {
		o.restoreOnFail = enabled
	}
}

// WithBudget sets the budget SortConfiguredBy provisions with. The default
// is Default.
func WithBudget(budget Budget) Option {
	return func(o *options) {
		o.budget = budget
	}
}

// Sorter is a kernel bound to its budget policies. A Sorter holds no mutable
// state and may be shared between goroutines; the buffers it uses may not.
type Sorter[T any] struct {
	policies Policies
	kernel   Kernel[T]
	opts     options
}

// New returns a Sorter that runs kernel with buffers sized by policies.
// The Default policy must give kernel enough room to always succeed.
func New[T any](policies Policies, kernel Kernel[T], opts ...Option) *Sorter[T] {
	if kernel == nil {
		panic("sorter: nil kernel")
	}
	if policies.Default == nil || policies.Min == nil || policies.Max == nil {
		panic("sorter: Policies must set Default, Min and Max")
	}
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.budget > Max {
		panic(fmt.Sprintf("sorter: unknown budget %d", o.budget))
	}
	return &Sorter[T]{policies: policies, kernel: kernel, opts: o}
}

// SortBy sorts v with the default budget, ordering elements by compare.
// It panics if the kernel reports Fail, which the default policy rules out.
func (s *Sorter[T]) SortBy(v []T, compare func(a, b T) int) {
	if s.sortBudget(v, Default, compare) == sortutil.Fail {
		s.opts.logger.Error().
			Int("len", len(v)).
			Msg("kernel failed under the default budget")
		panic(fmt.Sprintf("sorter: kernel failed under the default budget for length %d", len(v)))
	}
}

// SortWithBy sorts v using aux as scratch space, whatever its backing.
// A nil aux is an empty buffer.
func (s *Sorter[T]) SortWithBy(v []T, aux *buffer.Buffer[T], compare func(a, b T) int) sortutil.Outcome {
	return s.sortWith(v, aux, compare)
}

// SortMinBy sorts v with the minimum budget, trading time for space.
func (s *Sorter[T]) SortMinBy(v []T, compare func(a, b T) int) sortutil.Outcome {
	return s.sortBudget(v, Min, compare)
}

// SortMaxBy sorts v with the maximum budget, trading space for time.
func (s *Sorter[T]) SortMaxBy(v []T, compare func(a, b T) int) sortutil.Outcome {
	return s.sortBudget(v, Max, compare)
}

// SortBudgetBy sorts v with the given budget. The Default budget behaves like
// SortBy and always returns Done.
func (s *Sorter[T]) SortBudgetBy(v []T, budget Budget, compare func(a, b T) int) sortutil.Outcome {
	if budget == Default {
		s.SortBy(v, compare)
		return sortutil.Done
	}
	return s.sortBudget(v, budget, compare)
}

// SortConfiguredBy sorts v with the budget set by WithBudget.
func (s *Sorter[T]) SortConfiguredBy(v []T, compare func(a, b T) int) sortutil.Outcome {
	return s.SortBudgetBy(v, s.opts.budget, compare)
}

// Budget returns the budget SortConfiguredBy uses.
func (s *Sorter[T]) Budget() Budget {
	return s.opts.budget
}

// Capacity returns the buffer capacity the budget provisions for n elements.
func (s *Sorter[T]) Capacity(budget Budget, n int) int {
	return max(s.policy(budget)(n), 0)
}

func (s *Sorter[T]) policy(budget Budget) Policy {
	switch budget {
	case Default:
		return s.policies.Default
	case Min:
		return s.policies.Min
	case Max:
		return s.policies.Max
	default:
		panic(fmt.Sprintf("sorter: unknown budget %d", budget))
	}
}

// sortBudget provisions an owned buffer for budget and runs the kernel.
func (s *Sorter[T]) sortBudget(v []T, budget Budget, compare func(a, b T) int) sortutil.Outcome {
	if len(v) < 2 {
		return sortutil.Done
	}
	capacity := s.Capacity(budget, len(v))
	s.opts.logger.Debug().
		Stringer("budget", budget).
		Int("len", len(v)).
		Int("capacity", capacity).
		Msg("provisioning buffer")
	return s.sortWith(v, buffer.New[T](capacity), compare)
}

// sortWith normalizes compare into a less function and runs the kernel.
func (s *Sorter[T]) sortWith(v []T, aux *buffer.Buffer[T], compare func(a, b T) int) sortutil.Outcome {
	if len(v) < 2 {
		return sortutil.Done
	}
	less := func(a, b T) bool { return compare(a, b) < 0 }

	var snapshot []T
	if s.opts.restoreOnFail {
		snapshot = slices.Clone(v)
	}
	out := s.kernel(v, aux, less)
	if out == sortutil.Fail {
		if snapshot != nil {
			copy(v, snapshot)
		}
		s.opts.logger.Warn().
			Int("len", len(v)).
			Int("capacity", aux.Cap()).
			Stringer("backing", aux.Backing()).
			Bool("restored", snapshot != nil).
			Msg("kernel reported insufficient buffer")
	}
	return out
}

// Ordered is a Sorter for naturally ordered element types. It adds the
// natural-order entry points on top of the comparator-based ones.
type Ordered[T cmp.Ordered] struct {
	*Sorter[T]
}

// NewOrdered returns an Ordered sorter; see New.
func NewOrdered[T cmp.Ordered](policies Policies, kernel Kernel[T], opts ...Option) *Ordered[T] {
	return &Ordered[T]{Sorter: New(policies, kernel, opts...)}
}

// Sort sorts v in ascending order with the default budget.
func (s *Ordered[T]) Sort(v []T) {
	s.SortBy(v, cmp.Compare[T])
}

// SortWith sorts v in ascending order using aux as scratch space.
func (s *Ordered[T]) SortWith(v []T, aux *buffer.Buffer[T]) sortutil.Outcome {
	return s.SortWithBy(v, aux, cmp.Compare[T])
}

// SortConfigured sorts v in ascending order with the budget set by
// WithBudget.
func (s *Ordered[T]) SortConfigured(v []T) sortutil.Outcome {
	return s.SortConfiguredBy(v, cmp.Compare[T])
}

// SortMin sorts v in ascending order with the minimum budget.
func (s *Ordered[T]) SortMin(v []T) sortutil.Outcome {
	return s.SortMinBy(v, cmp.Compare[T])
}

// SortMax sorts v in ascending order with the maximum budget.
func (s *Ordered[T]) SortMax(v []T) sortutil.Outcome {
	return s.SortMaxBy(v, cmp.Compare[T])
}

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

package sortutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// counter returns a strategy that records how often it ran.
func counter(result Outcome, calls *int) func() Outcome {
	return func() Outcome {
		*calls++
		return result
	}
}

func TestOrDoneSkipsFallback(t *testing.T) {
	calls := 0
	got := Done.Or(counter(Fail, &calls))
	assert.Equal(t, Done, got)
	assert.Zero(t, calls, "fallback must not run after Done")
}

func TestOrFailRunsFallback(t *testing.T) {
	for _, want := range []Outcome{Done, Fail} {
		calls := 0
		got := Fail.Or(counter(want, &calls))
		assert.Equal(t, want, got)
		assert.Equal(t, 1, calls)
	}
}

func TestAndFailSkipsNext(t *testing.T) {
	calls := 0
	got := Fail.And(counter(Done, &calls))
	assert.Equal(t, Fail, got)
	assert.Zero(t, calls, "next must not run after Fail")
}

func TestAndDoneRunsNext(t *testing.T) {
	for _, want := range []Outcome{Done, Fail} {
		calls := 0
		got := Done.And(counter(want, &calls))
		assert.Equal(t, want, got)
		assert.Equal(t, 1, calls)
	}
}

// TestCombinatorAlgebra checks that grouping and operand order never change
// the aggregate value of Or and And over both outcomes.
func TestCombinatorAlgebra(t *testing.T) {
	all := []Outcome{Done, Fail}
	lift := func(o Outcome) func() Outcome { return func() Outcome { return o } }

	for _, a := range all {
		for _, b := range all {
			assert.Equal(t, a.Or(lift(b)), b.Or(lift(a)), "Or commutes: %v %v", a, b)
			assert.Equal(t, a.And(lift(b)), b.And(lift(a)), "And commutes: %v %v", a, b)
			assert.Equal(t, Of(a.OK() || b.OK()), a.Or(lift(b)))
			assert.Equal(t, Of(a.OK() && b.OK()), a.And(lift(b)))

			for _, c := range all {
				left := a.Or(lift(b)).Or(lift(c))
				right := a.Or(func() Outcome { return b.Or(lift(c)) })
				assert.Equal(t, left, right, "Or associates: %v %v %v", a, b, c)

				left = a.And(lift(b)).And(lift(c))
				right = a.And(func() Outcome { return b.And(lift(c)) })
				assert.Equal(t, left, right, "And associates: %v %v %v", a, b, c)
			}
		}
	}
}

func TestOrChainStopsAtFirstDone(t *testing.T) {
	var first, second, third int
	got := Fail.
		Or(counter(Fail, &first)).
		Or(counter(Done, &second)).
		Or(counter(Done, &third))
	assert.Equal(t, Done, got)
	assert.Equal(t, []int{1, 1, 0}, []int{first, second, third})
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "done", Done.String())
	assert.Equal(t, "fail", Fail.String())
	assert.Equal(t, "unknown", Outcome(7).String())
	assert.True(t, Of(true).OK())
	assert.False(t, Of(false).OK())
}

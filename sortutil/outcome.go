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

// Outcome is the result of a sorting strategy: the sequence is either sorted
// (Done) or the strategy could not run with the memory it was given (Fail).
type Outcome uint8

const (
	// Done indicates the sequence has been fully sorted.
	Done Outcome = iota

	// Fail indicates the auxiliary buffer was too small for the strategy.
	// The sequence is left in its original order.
	Fail
)

// Of returns Done if ok is true and Fail otherwise.
func Of(ok bool) Outcome {
	if ok {
		return Done
	}
	return Fail
}

// OK reports whether o is Done.
func (o Outcome) OK() bool {
	return o == Done
}

// Or returns o if it is Done, otherwise it runs fallback and returns its
// result. fallback is not called when o is Done.
func (o Outcome) Or(fallback func() Outcome) Outcome {
	if o == Done {
		return o
	}
	return fallback()
}

// And returns o if it is Fail, otherwise it runs next and returns its
// result. next is not called when o is Fail.
func (o Outcome) And(next func() Outcome) Outcome {
	if o == Fail {
		return o
	}
	return next()
}

// String returns "done" or "fail".
func (o Outcome) String() string {
	switch o {
	case Done:
		return "done"
	case Fail:
		return "fail"
	default:
		return "unknown"
	}
}

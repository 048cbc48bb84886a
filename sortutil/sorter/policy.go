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

package sorter

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ajroetker/go-sortutil/sortutil/op"
)

// ErrUnknownBudget is returned when a budget name cannot be parsed.
var ErrUnknownBudget = errors.New("sorter: unknown budget")

// Policy returns the auxiliary buffer capacity, in elements, for sorting n
// elements. Negative results are treated as zero.
type Policy func(n int) int

// Policies are the three budgets a Sorter provisions buffers for.
type Policies struct {
	// Default must be large enough for the kernel to always succeed.
	Default Policy

	// Min is the smallest budget the kernel can work with.
	Min Policy

	// Max is the budget beyond which the kernel gains nothing.
	Max Policy
}

// Budget selects one of a Sorter's policies.
type Budget uint8

const (
	// Default provisions with Policies.Default.
	Default Budget = iota

	// Min provisions with Policies.Min.
	Min

	// Max provisions with Policies.Max.
	Max
)

// String returns "default", "min" or "max".
func (b Budget) String() string {
	switch b {
	case Default:
		return "default"
	case Min:
		return "min"
	case Max:
		return "max"
	default:
		return "unknown"
	}
}

// ParseBudget parses a budget name. Matching ignores case and surrounding
// whitespace; "minimum" and "maximum" are accepted as well.
func ParseBudget(s string) (Budget, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "default", "":
		return Default, nil
	case "min", "minimum":
		return Min, nil
	case "max", "maximum":
		return Max, nil
	default:
		return Default, fmt.Errorf("%w %q", ErrUnknownBudget, s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Budget) UnmarshalText(text []byte) error {
	parsed, err := ParseBudget(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (b Budget) MarshalText() ([]byte, error) {
	if b > Max {
		return nil, fmt.Errorf("%w %d", ErrUnknownBudget, b)
	}
	return []byte(b.String()), nil
}

// None provisions no buffer at all.
func None(int) int { return 0 }

// Full provisions one slot per element.
func Full(n int) int { return n }

// Half provisions ceil(n/2) slots, enough to park the shorter of any two
// runs being merged.
func Half(n int) int { return n - n/2 }

// Sqrt provisions ceil(sqrt(n)) slots.
func Sqrt(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(math.Sqrt(float64(n))))
}

// Log2 provisions ceil(log2(n)) slots.
func Log2(n int) int { return op.Log2Ceil(n) }

// Fixed provisions k slots regardless of n.
func Fixed(k int) Policy {
	return func(int) int { return k }
}

// Clamp bounds p to [lo, hi].
func Clamp(p Policy, lo, hi int) Policy {
	return func(n int) int {
		return min(max(p(n), lo), hi)
	}
}

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
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-sortutil/sortutil"
	"github.com/ajroetker/go-sortutil/sortutil/buffer"
)

func TestPolicies(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
		in     []int
		want   []int
	}{
		{"None", None, []int{0, 1, 100}, []int{0, 0, 0}},
		{"Full", Full, []int{0, 1, 100}, []int{0, 1, 100}},
		{"Half", Half, []int{0, 1, 2, 5, 100}, []int{0, 1, 1, 3, 50}},
		{"Sqrt", Sqrt, []int{-1, 0, 1, 2, 16, 17}, []int{0, 0, 1, 2, 4, 5}},
		{"Log2", Log2, []int{0, 1, 2, 5, 1024}, []int{0, 0, 1, 3, 10}},
		{"Fixed", Fixed(7), []int{0, 100}, []int{7, 7}},
		{"Clamp", Clamp(Full, 2, 10), []int{0, 5, 50}, []int{2, 5, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, n := range tt.in {
				assert.Equal(t, tt.want[i], tt.policy(n), "%s(%d)", tt.name, n)
			}
		})
	}
}

func TestParseBudget(t *testing.T) {
	tests := []struct {
		in   string
		want Budget
	}{
		{"", Default},
		{"default", Default},
		{" MIN ", Min},
		{"minimum", Min},
		{"max", Max},
		{"Maximum", Max},
	}
	for _, tt := range tests {
		got, err := ParseBudget(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseBudget("huge")
	require.ErrorIs(t, err, ErrUnknownBudget)
	assert.Contains(t, err.Error(), `"huge"`)
}

func TestBudgetText(t *testing.T) {
	for _, b := range []Budget{Default, Min, Max} {
		text, err := b.MarshalText()
		require.NoError(t, err)
		var got Budget
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, b, got)
	}
	_, err := Budget(5).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownBudget)
	assert.Equal(t, "unknown", Budget(5).String())
}

func TestDecodeConfig(t *testing.T) {
	t.Setenv("SORTUTIL_BUDGET", "")

	cfg, err := DecodeConfig(`
budget = "max"
restore_on_fail = true
log_level = "debug"
`)
	require.NoError(t, err)
	assert.Equal(t, Config{Budget: Max, RestoreOnFail: true, LogLevel: zerolog.DebugLevel}, cfg)

	cfg, err = DecodeConfig(``)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestDecodeConfigErrors(t *testing.T) {
	t.Setenv("SORTUTIL_BUDGET", "")

	_, err := DecodeConfig(`budget = "enormous"`)
	require.ErrorIs(t, err, ErrUnknownBudget)
	assert.Contains(t, err.Error(), "parse budget")

	_, err = DecodeConfig(`log_level = "chatty"`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log_level")

	_, err = DecodeConfig(`budget = `)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode sorter config")
}

func TestConfigEnvOverride(t *testing.T) {
	t.Setenv("SORTUTIL_BUDGET", "min")
	cfg, err := DecodeConfig(`budget = "max"`)
	require.NoError(t, err)
	assert.Equal(t, Min, cfg.Budget)

	t.Setenv("SORTUTIL_BUDGET", "bogus")
	_, err = DecodeConfig(``)
	require.ErrorIs(t, err, ErrUnknownBudget)
	assert.Contains(t, err.Error(), "SORTUTIL_BUDGET")
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("SORTUTIL_BUDGET", "")

	path := filepath.Join(t.TempDir(), "sorter.toml")
	require.NoError(t, os.WriteFile(path, []byte("budget = \"min\"\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Min, cfg.Budget)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load sorter config")
}

func TestConfigOptions(t *testing.T) {
	cfg := Config{Budget: Min, RestoreOnFail: true, LogLevel: zerolog.WarnLevel}
	var o options
	for _, opt := range cfg.Options(zerolog.Nop()) {
		opt(&o)
	}
	assert.True(t, o.restoreOnFail)
	assert.Equal(t, zerolog.WarnLevel, o.logger.GetLevel())
	assert.Equal(t, Min, o.budget)
}

func TestConfiguredBudgetProvisions(t *testing.T) {
	t.Setenv("SORTUTIL_BUDGET", "")

	var provisioned []int
	kernel := func(v []int, aux *buffer.Buffer[int], less func(a, b int) bool) sortutil.Outcome {
		provisioned = append(provisioned, aux.Cap())
		return copyKernel(v, aux, less)
	}
	policies := Policies{Default: Full, Min: None, Max: Full}

	cfg, err := DecodeConfig(`budget = "min"`)
	require.NoError(t, err)
	s := NewOrdered(policies, kernel, cfg.Options(zerolog.Nop())...)
	assert.Equal(t, Min, s.Budget())

	v := []int{3, 1, 2}
	assert.Equal(t, sortutil.Fail, s.SortConfigured(v))
	assert.Equal(t, []int{0}, provisioned)
	assert.Equal(t, []int{3, 1, 2}, v)

	t.Setenv("SORTUTIL_BUDGET", "max")
	cfg, err = DecodeConfig(`budget = "min"`)
	require.NoError(t, err)
	s = NewOrdered(policies, kernel, cfg.Options(zerolog.Nop())...)
	assert.Equal(t, sortutil.Done, s.SortConfigured(v))
	assert.Equal(t, []int{0, 3}, provisioned)
	assert.Equal(t, []int{1, 2, 3}, v)

	// Without WithBudget the configured sort uses the default budget.
	d := NewOrdered(policies, kernel)
	v = []int{2, 1}
	assert.Equal(t, sortutil.Done, d.SortConfigured(v))
	assert.Equal(t, []int{0, 3, 2}, provisioned)
}

func TestWithBudgetRejectsUnknown(t *testing.T) {
	assert.PanicsWithValue(t, "sorter: unknown budget 9", func() {
		New(fullPolicies, copyKernel[int], WithBudget(Budget(9)))
	})
}

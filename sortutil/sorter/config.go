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
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// Config selects a budget and Sorter options from a TOML file:
//
//	budget = "min"
//	restore_on_fail = true
//	log_level = "debug"
//
// SORTUTIL_BUDGET, when set, overrides budget.
type Config struct {
	Budget        Budget
	RestoreOnFail bool
	LogLevel      zerolog.Level
}

type fileConfig struct {
	Budget        string `toml:"budget"`
	RestoreOnFail bool   `toml:"restore_on_fail"`
	LogLevel      string `toml:"log_level"`
}

// DefaultConfig returns the configuration used when no file sets a key.
func DefaultConfig() Config {
	return Config{
		Budget:   Default,
		LogLevel: zerolog.InfoLevel,
	}
}

// LoadConfig reads a Config from the TOML file at path.
func LoadConfig(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load sorter config: %w", err)
	}
	return fromFile(raw, meta)
}

// DecodeConfig reads a Config from TOML data.
func DecodeConfig(data string) (Config, error) {
	var raw fileConfig
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("decode sorter config: %w", err)
	}
	return fromFile(raw, meta)
}

func fromFile(raw fileConfig, meta toml.MetaData) (Config, error) {
	cfg := DefaultConfig()

	if meta.IsDefined("budget") {
		b, err := ParseBudget(raw.Budget)
		if err != nil {
			return Config{}, fmt.Errorf("parse budget: %w", err)
		}
		cfg.Budget = b
	}

	if meta.IsDefined("restore_on_fail") {
		cfg.RestoreOnFail = raw.RestoreOnFail
	}

	if meta.IsDefined("log_level") {
		lvl, err := zerolog.ParseLevel(strings.TrimSpace(raw.LogLevel))
		if err != nil {
			return Config{}, fmt.Errorf("parse log_level: %w", err)
		}
		cfg.LogLevel = lvl
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv applies SORTUTIL_BUDGET on top of the file settings.
func (c *Config) applyEnv() error {
	val := os.Getenv("SORTUTIL_BUDGET")
	if val == "" {
		return nil
	}
	b, err := ParseBudget(val)
	if err != nil {
		return fmt.Errorf("parse SORTUTIL_BUDGET: %w", err)
	}
	c.Budget = b
	return nil
}

// Options returns the Sorter options c describes, logging to logger at
// c.LogLevel. The budget applies to SortConfiguredBy.
func (c Config) Options(logger zerolog.Logger) []Option {
	return []Option{
		WithLogger(logger.Level(c.LogLevel)),
		WithRestoreOnFail(c.RestoreOnFail),
		WithBudget(c.Budget),
	}
}

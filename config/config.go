/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config loads parser configuration from YAML files.
//
// Example file:
//
//	measurement: events
//	parseArray: true
//	dateFormats: [ISO8601, "02.01.2006"]
//	whitelist: [startTime, author, private]
//	castParams:
//	  startTime: date
//	exprCasters:
//	  cents: float(value) * 100
//	keys:
//	  limit: top
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rulego/influxqs/caster"
	"github.com/rulego/influxqs/types"
)

// Environment variables applied by LoadWithEnvOverrides.
const (
	EnvMeasurement  = "INFLUXQS_MEASUREMENT"
	EnvParseBoolean = "INFLUXQS_PARSE_BOOLEAN"
	EnvParseArray   = "INFLUXQS_PARSE_ARRAY"
)

// Load reads the YAML file at path, applies defaults and validates it.
func Load(path string) (*types.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("configuration file %q: %w", path, err)
	}
	return cfg, nil
}

// LoadWithEnvOverrides is Load followed by environment overrides, which
// take precedence over the file.
func LoadWithEnvOverrides(path string) (*types.Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := ApplyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}
	return cfg, nil
}

// Parse decodes YAML data, applies defaults and validates the result.
func Parse(data []byte) (*types.Config, error) {
	cfg := types.NewConfig()
	cfg.DateFormats = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	ApplyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// ApplyDefaults fills unset fields.
func ApplyDefaults(cfg *types.Config) {
	if len(cfg.DateFormats) == 0 {
		cfg.DateFormats = []string{types.ISO8601}
	}
}

// ApplyEnvOverrides applies INFLUXQS_* environment variables to cfg.
func ApplyEnvOverrides(cfg *types.Config) error {
	if val := os.Getenv(EnvMeasurement); val != "" {
		cfg.Measurement = val
	}
	for env, target := range map[string]*bool{
		EnvParseBoolean: &cfg.ParseBoolean,
		EnvParseArray:   &cfg.ParseArray,
	} {
		val := os.Getenv(env)
		if val == "" {
			continue
		}
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, val, err)
		}
		*target = b
	}
	return nil
}

// Validate checks that clause keys are distinct, cast params name a caster
// and expression casters compile.
func Validate(cfg *types.Config) error {
	var errs []error

	seen := make(map[string]types.Clause, len(types.Clauses))
	for _, c := range types.Clauses {
		key := cfg.Keys.Key(c)
		if key == "" {
			errs = append(errs, fmt.Errorf("key of clause %s is empty", c))
			continue
		}
		if strings.TrimSpace(key) != key {
			errs = append(errs, fmt.Errorf("key of clause %s has surrounding spaces: %q", c, key))
		}
		if other, ok := seen[key]; ok {
			errs = append(errs, fmt.Errorf("clauses %s and %s share the key %q", other, c, key))
		}
		seen[key] = c
	}

	for field, name := range cfg.CastParams {
		if field == "" || name == "" {
			errs = append(errs, fmt.Errorf("castParams entry %q: %q must name a field and a caster", field, name))
		}
	}

	if _, err := caster.CompileExprCasters(cfg.ExprCasters); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

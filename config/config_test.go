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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/influxqs/types"
)

const sampleYAML = `
measurement: events
parseArray: true
dateFormats: [ISO8601, "02.01.2006"]
whitelist: [startTime, author, private]
blacklist: [password]
castParams:
  startTime: date
exprCasters:
  cents: float(value) * 100
keys:
  limit: top
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "events", cfg.Measurement)
	assert.True(t, cfg.ParseArray)
	assert.False(t, cfg.ParseBoolean)
	assert.Equal(t, []string{types.ISO8601, "02.01.2006"}, cfg.DateFormats)
	assert.Equal(t, []string{"startTime", "author", "private"}, cfg.Whitelist)
	assert.Equal(t, []string{"password"}, cfg.Blacklist)
	assert.Equal(t, map[string]string{"startTime": "date"}, cfg.CastParams)
	assert.Equal(t, map[string]string{"cents": "float(value) * 100"}, cfg.ExprCasters)
	assert.Equal(t, "top", cfg.Keys.Key(types.ClauseLimit))
	assert.Equal(t, "sort", cfg.Keys.Key(types.ClauseSort))
}

// TestParseDefaults 空配置使用默认值
func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("measurement: m\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{types.ISO8601}, cfg.DateFormats)
	assert.Nil(t, cfg.Whitelist)

	cfg, err = Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{types.ISO8601}, cfg.DateFormats)
}

func TestParseEmptyWhitelist(t *testing.T) {
	cfg, err := Parse([]byte("whitelist: []\n"))
	require.NoError(t, err)
	assert.NotNil(t, cfg.Whitelist)
	assert.Empty(t, cfg.Whitelist)
}

func TestParseInvalid(t *testing.T) {
	tests := map[string]string{
		"syntax":           "measurement: [",
		"shared key":       "keys:\n  limit: sort\n",
		"padded key":       "keys:\n  fill: ' gaps'\n",
		"blank caster":     "castParams:\n  startTime: ''\n",
		"bad expression":   "exprCasters:\n  broken: 'value +'\n",
		"clause key clash": "keys:\n  fields: limit\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := types.NewConfig()
	cfg.Keys.Set(types.ClauseLimit, "sort")
	cfg.CastParams = map[string]string{"": "date"}
	cfg.ExprCasters = map[string]string{"broken": "value +"}

	err := Validate(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "share the key")
	assert.Contains(t, err.Error(), "castParams")
	assert.Contains(t, err.Error(), "caster broken")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "influxqs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "events", cfg.Measurement)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// TestLoadWithEnvOverrides 环境变量优先于配置文件
func TestLoadWithEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "influxqs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	t.Setenv(EnvMeasurement, "metrics")
	t.Setenv(EnvParseArray, "false")
	t.Setenv(EnvParseBoolean, "1")

	cfg, err := LoadWithEnvOverrides(path)
	require.NoError(t, err)
	assert.Equal(t, "metrics", cfg.Measurement)
	assert.False(t, cfg.ParseArray)
	assert.True(t, cfg.ParseBoolean)
}

func TestApplyEnvOverridesInvalid(t *testing.T) {
	t.Setenv(EnvParseBoolean, "maybe")
	cfg := types.NewConfig()
	err := ApplyEnvOverrides(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvParseBoolean)
}

func TestApplyEnvOverridesUnset(t *testing.T) {
	t.Setenv(EnvMeasurement, "")
	cfg := types.NewConfig()
	cfg.Measurement = "kept"
	require.NoError(t, ApplyEnvOverrides(&cfg))
	assert.Equal(t, "kept", cfg.Measurement)
}

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

package metrics

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/influxqs/types"
)

func TestRecordParse(t *testing.T) {
	c := NewCollector("", nil)

	c.RecordParse(nil)
	c.RecordParse(nil)
	c.RecordParse(fmt.Errorf("wrapped: %w", types.NewCastError("number", "x", nil)))
	c.RecordParse(errors.New("plain"))

	assert.Equal(t, 2.0, testutil.ToFloat64(c.parsesTotal.WithLabelValues(ResultOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.parsesTotal.WithLabelValues(ResultError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.errorsTotal.WithLabelValues("CAST_ERROR")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.errorsTotal.WithLabelValues("UNKNOWN_ERROR")))
}

func TestRecordDropped(t *testing.T) {
	c := NewCollector("", nil)
	c.RecordDropped(types.ClauseSort, "unsafe identifier")
	c.RecordDropped(types.ClauseSort, "unsafe identifier")
	c.RecordDropped(types.ClauseFill, "malformed token")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.DroppedTotal().WithLabelValues("sort", "unsafe identifier")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.DroppedTotal().WithLabelValues("fill", "malformed token")))
}

// TestNilCollector nil 收集器上的调用是空操作
func TestNilCollector(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.RecordParse(nil)
		c.RecordParse(errors.New("x"))
		c.RecordDropped(types.ClauseLimit, "malformed token")
	})
}

func TestRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector("qs", reg)
	c.RecordParse(nil)
	c.RecordDropped(types.ClauseFields, "field not allowed")

	expected := `
# HELP qs_parses_total Total number of parsed query strings
# TYPE qs_parses_total counter
qs_parses_total{result="ok"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "qs_parses_total"))

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.Panics(t, func() { NewCollector("qs", reg) }, "duplicate registration")
}

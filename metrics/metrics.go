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

// Package metrics exposes Prometheus counters for query parsing.
//
// Metrics:
//   - <ns>_parses_total{result}: parse calls by result (ok, error)
//   - <ns>_errors_total{type}: parse errors by error type
//   - <ns>_dropped_tokens_total{clause,reason}: tokens ignored by clause parsers
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rulego/influxqs/types"
)

// DefaultNamespace is used when NewCollector receives an empty namespace.
const DefaultNamespace = "influxqs"

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Collector records parse outcomes. All methods are safe for concurrent use.
type Collector struct {
	parsesTotal  *prometheus.CounterVec
	errorsTotal  *prometheus.CounterVec
	droppedTotal *prometheus.CounterVec
}

// NewCollector creates and registers the counters with registry.
// A nil registry leaves them unregistered, which is convenient in tests.
func NewCollector(namespace string, registry prometheus.Registerer) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	c := &Collector{
		parsesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "parses_total",
				Help:      "Total number of parsed query strings",
			},
			[]string{"result"},
		),
		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_total",
				Help:      "Total number of parse errors by type",
			},
			[]string{"type"},
		),
		droppedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dropped_tokens_total",
				Help:      "Total number of query tokens ignored by clause parsers",
			},
			[]string{"clause", "reason"},
		),
	}
	if registry != nil {
		registry.MustRegister(c.parsesTotal, c.errorsTotal, c.droppedTotal)
	}
	return c
}

// RecordParse counts one parse call and, on failure, its error type.
func (c *Collector) RecordParse(err error) {
	if c == nil {
		return
	}
	if err == nil {
		c.parsesTotal.WithLabelValues(ResultOK).Inc()
		return
	}
	c.parsesTotal.WithLabelValues(ResultError).Inc()
	label := "UNKNOWN_ERROR"
	if t, ok := types.ErrorTypeOf(err); ok {
		label = t.String()
	}
	c.errorsTotal.WithLabelValues(label).Inc()
}

// RecordDropped counts one ignored token.
func (c *Collector) RecordDropped(clause types.Clause, reason string) {
	if c == nil {
		return
	}
	c.droppedTotal.WithLabelValues(string(clause), reason).Inc()
}

// ParsesTotal returns the parses_total counter vector.
func (c *Collector) ParsesTotal() *prometheus.CounterVec { return c.parsesTotal }

// ErrorsTotal returns the errors_total counter vector.
func (c *Collector) ErrorsTotal() *prometheus.CounterVec { return c.errorsTotal }

// DroppedTotal returns the dropped_tokens_total counter vector.
func (c *Collector) DroppedTotal() *prometheus.CounterVec { return c.droppedTotal }

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

package influxqs

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/rulego/influxqs/caster"
	"github.com/rulego/influxqs/clause"
	"github.com/rulego/influxqs/logger"
	"github.com/rulego/influxqs/metrics"
	"github.com/rulego/influxqs/render"
	"github.com/rulego/influxqs/types"
)

// Parser translates query strings into InfluxQL.
//
// 使用示例:
//
//	p, err := influxqs.New(influxqs.WithMeasurement("events"))
//	q, err := p.ParseQuery("startTime>2020-06-16&private=false&limit=10")
//	// SELECT * FROM events WHERE startTime > '2020-06-16' AND private = 'false' LIMIT 10
//
// A Parser is immutable after New and safe for concurrent use.
type Parser struct {
	cfg      types.Config
	casters  map[string]caster.Caster
	escape   render.Escaper
	now      func() time.Time
	log      logger.Logger
	logLevel *logger.Level
	metrics  *metrics.Collector

	registry *caster.Registry
	policy   types.FieldPolicy
	clauses  *clause.Parser
}

// New creates a Parser. It fails only when an expression caster does not compile.
func New(options ...Option) (*Parser, error) {
	p := &Parser{cfg: types.NewConfig()}
	for _, option := range options {
		option(p)
	}
	// 选项中的可变集合已复制，之后不再修改
	p.cfg = p.cfg.Clone()

	// 调用方提供的日志器保持原级别
	if p.log == nil {
		if p.logLevel != nil {
			p.log = logger.NewLogger(*p.logLevel, os.Stderr)
		} else {
			p.log = logger.GetDefault()
		}
	}
	if p.now == nil {
		p.now = time.Now
	}
	if p.escape == nil {
		p.escape = render.StringLiteral
	}

	exprCasters, err := caster.CompileExprCasters(p.cfg.ExprCasters)
	if err != nil {
		return nil, fmt.Errorf("influxqs: %w", err)
	}
	p.registry = caster.NewRegistry(
		caster.BuiltinCasters(p.cfg.Layouts(), p.now),
		exprCasters,
		p.casters,
	)
	p.policy = types.NewFieldPolicy(p.cfg.Whitelist, p.cfg.Blacklist, p.cfg.Keys)
	p.clauses = clause.New(clause.Options{
		Registry:     p.registry,
		CastParams:   p.cfg.CastParams,
		Policy:       p.policy,
		ParseBoolean: p.cfg.ParseBoolean,
		ParseArray:   p.cfg.ParseArray,
		Escape:       p.escape,
		Recorder:     dropRecorder{log: p.log, metrics: p.metrics},
	})
	return p, nil
}

// MustNew is New that panics on error.
func MustNew(options ...Option) *Parser {
	p, err := New(options...)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse parses a raw query string such as "a>1&sort=-a&limit=10".
func (p *Parser) Parse(query string) (types.QueryOptions, error) {
	return p.parse(types.ParseParams(query), nil)
}

// ParseValues parses already decoded parameters. Keys are processed in
// sorted order because url.Values carries no order.
func (p *Parser) ParseValues(values url.Values) (types.QueryOptions, error) {
	return p.parse(types.ParamsFromValues(values), nil)
}

// ParseParams parses ordered parameters.
func (p *Parser) ParseParams(params types.Params) (types.QueryOptions, error) {
	return p.parse(params, nil)
}

// ParseWithFilter parses params with seed as the start of the WHERE
// fragment instead of decoding the filter parameter. seed is trusted text.
func (p *Parser) ParseWithFilter(params types.Params, seed types.FilterClause) (types.QueryOptions, error) {
	return p.parse(params, &seed)
}

// ParseQuery parses query and renders it.
func (p *Parser) ParseQuery(query string) (string, error) {
	qo, err := p.Parse(query)
	if err != nil {
		return "", err
	}
	return p.CreateQuery(qo), nil
}

// CreateQuery renders qo against the configured measurement.
func (p *Parser) CreateQuery(qo types.QueryOptions) string {
	return render.CreateQuery(p.cfg.Measurement, qo)
}

// Config returns a copy of the effective configuration.
func (p *Parser) Config() types.Config {
	return p.cfg.Clone()
}

// Blacklist returns the effective blacklist including clause keys.
func (p *Parser) Blacklist() []string {
	return p.policy.Blacklist()
}

// Casters returns the registered caster names.
func (p *Parser) Casters() []string {
	return p.registry.Names()
}

func (p *Parser) parse(params types.Params, seed *types.FilterClause) (qo types.QueryOptions, err error) {
	defer func() {
		p.metrics.RecordParse(err)
		if err != nil {
			p.log.Warn("parse query failed: %v", err)
		}
	}()

	qo = types.NewQueryOptions()
	for _, c := range types.Clauses {
		param, _ := params.Get(p.cfg.Keys.Key(c))
		value := param.Value()
		if value == "" && c != types.ClauseFilter {
			continue
		}
		switch c {
		case types.ClauseFields:
			qo.Fields = p.clauses.Fields(value)
		case types.ClauseSort:
			qo.Sort = p.clauses.Sort(param.Values)
		case types.ClauseLimit:
			qo.Limit = p.clauses.Limit(value)
		case types.ClauseFilter:
			var start types.FilterClause
			if seed != nil {
				start = *seed
			} else if value != "" {
				if start, err = clause.ParseFilterSeed(value); err != nil {
					return types.QueryOptions{}, err
				}
			}
			if qo.Filter, err = p.clauses.Filter(params, start); err != nil {
				return types.QueryOptions{}, err
			}
		case types.ClauseAggregate:
			qo.Aggregate = p.clauses.Aggregate(value)
		case types.ClauseFill:
			qo.Fill = p.clauses.Fill(value)
		}
	}
	return qo, nil
}

// dropRecorder logs and counts tokens the clause parsers ignore.
type dropRecorder struct {
	log     logger.Logger
	metrics *metrics.Collector
}

func (r dropRecorder) Dropped(c types.Clause, token, reason string) {
	r.log.Debug("%s: ignored %q (%s)", c, token, reason)
	r.metrics.RecordDropped(c, reason)
}

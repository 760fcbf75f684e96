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
	"time"

	"github.com/rulego/influxqs/caster"
	"github.com/rulego/influxqs/logger"
	"github.com/rulego/influxqs/metrics"
	"github.com/rulego/influxqs/render"
	"github.com/rulego/influxqs/types"
)

// Option 表示对解析器默认行为的修改配置。
// Options only run inside New; a constructed Parser never changes.
type Option func(*Parser)

// WithConfig replaces the whole configuration, typically one loaded with
// config.Load. Options given after it refine it.
//
//	cfg, _ := config.Load("influxqs.yaml")
//	p, _ := influxqs.New(influxqs.WithConfig(*cfg), influxqs.WithParseArray(true))
func WithConfig(cfg types.Config) Option {
	return func(p *Parser) {
		p.cfg = cfg.Clone()
	}
}

// WithMeasurement sets the measurement used in the FROM clause.
func WithMeasurement(measurement string) Option {
	return func(p *Parser) {
		p.cfg.Measurement = measurement
	}
}

// WithDateFormats sets the Go layouts tried for date literals, in order.
// Use types.ISO8601 to include the default ISO-8601 layouts.
func WithDateFormats(formats ...string) Option {
	return func(p *Parser) {
		p.cfg.DateFormats = append([]string(nil), formats...)
	}
}

// WithWhitelist restricts every clause to the given fields.
func WithWhitelist(fields ...string) Option {
	return func(p *Parser) {
		p.cfg.Whitelist = append(make([]string, 0, len(fields)), fields...)
	}
}

// WithBlacklist excludes fields from every clause. Clause keys are always
// blacklisted in addition.
func WithBlacklist(fields ...string) Option {
	return func(p *Parser) {
		p.cfg.Blacklist = append([]string(nil), fields...)
	}
}

// WithCaster registers a caster, overriding a built-in of the same name.
//
//	influxqs.WithCaster("cents", func(text string) (types.Value, error) {
//		f, err := strconv.ParseFloat(text, 64)
//		return types.NumberValue(f * 100), err
//	})
func WithCaster(name string, c caster.Caster) Option {
	return func(p *Parser) {
		if p.casters == nil {
			p.casters = make(map[string]caster.Caster)
		}
		p.casters[name] = c
	}
}

// WithExprCaster registers a caster defined by an expr-lang expression over
// the variable value.
func WithExprCaster(name, expression string) Option {
	return func(p *Parser) {
		if p.cfg.ExprCasters == nil {
			p.cfg.ExprCasters = make(map[string]string)
		}
		p.cfg.ExprCasters[name] = expression
	}
}

// WithCastParams forces the caster named by the map value for the field
// named by the map key.
func WithCastParams(params map[string]string) Option {
	return func(p *Parser) {
		if p.cfg.CastParams == nil {
			p.cfg.CastParams = make(map[string]string, len(params))
		}
		for field, name := range params {
			p.cfg.CastParams[field] = name
		}
	}
}

// WithClauseKey reads clause c from the query parameter key.
func WithClauseKey(c types.Clause, key string) Option {
	return func(p *Parser) {
		p.cfg.Keys.Set(c, key)
	}
}

func WithFieldsKey(key string) Option    { return WithClauseKey(types.ClauseFields, key) }
func WithSortKey(key string) Option      { return WithClauseKey(types.ClauseSort, key) }
func WithLimitKey(key string) Option     { return WithClauseKey(types.ClauseLimit, key) }
func WithFilterKey(key string) Option    { return WithClauseKey(types.ClauseFilter, key) }
func WithAggregateKey(key string) Option { return WithClauseKey(types.ClauseAggregate, key) }
func WithFillKey(key string) Option      { return WithClauseKey(types.ClauseFill, key) }

// WithParseBoolean turns "true"/"false" filter values into booleans.
func WithParseBoolean(enabled bool) Option {
	return func(p *Parser) {
		p.cfg.ParseBoolean = enabled
	}
}

// WithParseArray splits comma separated filter values into arrays.
func WithParseArray(enabled bool) Option {
	return func(p *Parser) {
		p.cfg.ParseArray = enabled
	}
}

// WithEscaper replaces the string literal escaper. The default is
// render.StringLiteral.
func WithEscaper(escape render.Escaper) Option {
	return func(p *Parser) {
		p.escape = escape
	}
}

// WithClock sets the reference instant for date shortcuts.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		p.now = now
	}
}

// WithLogger 设置自定义日志记录器
func WithLogger(log logger.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// WithLogLevel creates a stderr logger at level for the parser. It has no
// effect together with WithLogger or WithDiscardLog; the supplied logger
// keeps its own level.
func WithLogLevel(level logger.Level) Option {
	return func(p *Parser) {
		p.logLevel = &level
	}
}

// WithDiscardLog 禁用日志输出
func WithDiscardLog() Option {
	return func(p *Parser) {
		p.log = logger.NewDiscardLogger()
	}
}

// WithMetrics records parse outcomes and dropped tokens in c.
func WithMetrics(c *metrics.Collector) Option {
	return func(p *Parser) {
		p.metrics = c
	}
}

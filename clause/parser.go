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

package clause

import (
	"regexp"

	"github.com/rulego/influxqs/caster"
	"github.com/rulego/influxqs/render"
	"github.com/rulego/influxqs/types"
)

// safeField is the identifier check shared by sort and aggregate.
var safeField = regexp.MustCompile(`^[a-zA-Z0-9_]*$`)

// Drop reasons reported to the Recorder.
const (
	ReasonNotAllowed = "field not allowed"
	ReasonMalformed  = "malformed token"
	ReasonUnsafe     = "unsafe identifier"
	ReasonUnknownAgg = "unknown aggregation"
)

// Recorder is told about every token a clause parser silently ignores.
type Recorder interface {
	Dropped(clause types.Clause, token, reason string)
}

type nopRecorder struct{}

func (nopRecorder) Dropped(types.Clause, string, string) {}

// Options 子句解析器配置
type Options struct {
	Registry     *caster.Registry
	CastParams   map[string]string
	Policy       types.FieldPolicy
	ParseBoolean bool
	ParseArray   bool
	// Escape quotes string literals, render.StringLiteral when nil
	Escape   render.Escaper
	Recorder Recorder
}

// Parser converts raw clause values into rendered fragments.
// It holds no per-call state and is safe for concurrent use.
type Parser struct {
	values   *ValueParser
	policy   types.FieldPolicy
	escape   render.Escaper
	recorder Recorder
}

// New 创建子句解析器
func New(opts Options) *Parser {
	p := &Parser{
		values:   NewValueParser(opts.Registry, opts.CastParams, opts.ParseBoolean, opts.ParseArray),
		policy:   opts.Policy,
		escape:   opts.Escape,
		recorder: opts.Recorder,
	}
	if p.escape == nil {
		p.escape = render.StringLiteral
	}
	if p.recorder == nil {
		p.recorder = nopRecorder{}
	}
	return p
}

// Values returns the value parser used for filter values.
func (p *Parser) Values() *ValueParser {
	return p.values
}

func (p *Parser) drop(c types.Clause, token, reason string) {
	p.recorder.Dropped(c, token, reason)
}

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
	"encoding/json"
	"regexp"
	"strings"

	"github.com/rulego/influxqs/render"
	"github.com/rulego/influxqs/types"
)

// filterToken splits "!key>=value" into negation, key, operator and value.
var filterToken = regexp.MustCompile(`(?s)^(!?)([^><!=]+)([><=]=?|!?=|)(.*)$`)

// Comparison operators accepted in filter tokens.
const (
	OpEqual        = "="
	OpNotEqual     = "!="
	OpGreater      = ">"
	OpGreaterEqual = ">="
	OpLess         = "<"
	OpLessEqual    = "<="
	// OpAbsent is the operator of a bare key with no comparison
	OpAbsent = "!"
)

// ParseOperator maps the operator text of a filter token. An empty operator
// becomes OpAbsent.
func ParseOperator(op string) string {
	switch op {
	case OpEqual, "==":
		return OpEqual
	case OpNotEqual, OpGreater, OpGreaterEqual, OpLess, OpLessEqual:
		return op
	case "":
		return OpAbsent
	}
	return op
}

// ParseFilterSeed decodes a JSON filter payload such as {"filters":"WHERE a = 1"}.
func ParseFilterSeed(raw string) (types.FilterClause, error) {
	var seed types.FilterClause
	if err := json.Unmarshal([]byte(raw), &seed); err != nil {
		return types.FilterClause{}, types.NewInvalidFilterError(raw, err)
	}
	return seed, nil
}

// Filter builds the WHERE fragment from every parameter that is not a clause
// key and passes the field policy. Conditions are appended to seed in input
// order and joined with AND.
func (p *Parser) Filter(params types.Params, seed types.FilterClause) (types.FilterClause, error) {
	result := seed
	for _, param := range params {
		token := param.Key
		if v := param.Value(); v != "" {
			token += "=" + v
		}
		m := filterToken.FindStringSubmatch(token)
		if m == nil || strings.TrimSpace(m[2]) == "" {
			p.drop(types.ClauseFilter, token, ReasonMalformed)
			continue
		}
		negated, key, op, raw := m[1] == "!", strings.TrimSpace(m[2]), ParseOperator(m[3]), m[4]

		// 先检查字段策略，被过滤的字段不会触发转换错误
		if !p.policy.Allowed(key) {
			if !p.policy.IsClauseKey(key) {
				p.drop(types.ClauseFilter, key, ReasonNotAllowed)
			}
			continue
		}

		var condition string
		if op == OpAbsent {
			condition = p.presence(key, negated)
		} else {
			value, err := p.values.Parse(raw, key)
			if err != nil {
				return types.FilterClause{}, err
			}
			if value.Kind() == types.KindArray && len(value.Items()) == 0 {
				p.drop(types.ClauseFilter, key, ReasonMalformed)
				continue
			}
			condition = p.comparison(key, op, value)
		}

		if result.Filters == "" {
			result.Filters = "WHERE " + condition
		} else {
			result.Filters += " AND " + condition
		}
	}
	return result, nil
}

// presence renders a bare key. "key" requires the field to be empty or
// absent, "!key" requires it to be present.
func (p *Parser) presence(key string, negated bool) string {
	op := OpEqual
	if negated {
		op = OpNotEqual
	}
	return render.Ident(key) + " " + op + " " + p.escape("")
}

func (p *Parser) comparison(key, op string, v types.Value) string {
	ident := render.Ident(key)
	switch v.Kind() {
	case types.KindArray:
		itemOp, joiner := OpEqual, " OR "
		if op == OpNotEqual {
			itemOp, joiner = OpNotEqual, " AND "
		}
		items := v.Items()
		parts := make([]string, 0, len(items))
		for _, item := range items {
			parts = append(parts, p.comparison(key, itemOp, item))
		}
		return "(" + strings.Join(parts, joiner) + ")"
	case types.KindRegex:
		regexOp := "=~"
		if op == OpNotEqual {
			regexOp = "!~"
		}
		return ident + " " + regexOp + " " + render.RegexLiteral(v.Regex())
	case types.KindNumber, types.KindBool:
		return ident + " " + op + " " + v.Text()
	case types.KindNull:
		// InfluxQL 没有 NULL，空字符串匹配不存在的 tag
		return ident + " " + op + " " + p.escape("")
	default:
		return ident + " " + op + " " + p.escape(v.Str())
	}
}

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
	"strings"

	"github.com/influxdata/influxql"

	"github.com/rulego/influxqs/render"
	"github.com/rulego/influxqs/types"
)

var (
	sortEntry    = regexp.MustCompile(`^([+-])?(.*)$`)
	limitPattern = regexp.MustCompile(`^(\d*),?(\d*)$`)
	fillPattern  = regexp.MustCompile(`^[a-z0-9]*$`)
	aliasPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
)

// aggregateTypes InfluxQL 聚合函数白名单
var aggregateTypes = map[string]struct{}{
	"sum": {}, "count": {}, "mean": {}, "median": {}, "mode": {}, "spread": {},
	"stddev": {}, "bottom": {}, "first": {}, "last": {}, "max": {}, "min": {},
	"percentile": {}, "sample": {}, "top": {}, "integral": {}, "distinct": {},
}

// Fields renders the field list, e.g. "email,phone". Fields rejected by the
// policy are dropped; an empty result means the renderer selects '*'.
func (p *Parser) Fields(raw string) string {
	var kept []string
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if field == types.DefaultFields {
			kept = append(kept, field)
			continue
		}
		if !p.policy.Allowed(field) {
			p.drop(types.ClauseFields, field, ReasonNotAllowed)
			continue
		}
		kept = append(kept, render.Ident(field))
	}
	return strings.Join(kept, ",")
}

// Sort renders "ORDER BY a, b DESC" from entries such as "a,-b". A '-'
// prefix sorts descending; '+', a leading space (a decoded '+') or nothing
// sorts ascending.
func (p *Parser) Sort(values []string) string {
	var b strings.Builder
	for _, value := range values {
		for _, entry := range strings.Split(value, ",") {
			m := sortEntry.FindStringSubmatch(strings.TrimLeft(entry, " "))
			dir, key := m[1], strings.TrimSpace(m[2])
			if key == "" {
				continue
			}
			if !safeField.MatchString(key) {
				p.drop(types.ClauseSort, entry, ReasonUnsafe)
				continue
			}
			if b.Len() == 0 {
				b.WriteString("ORDER BY ")
			} else {
				b.WriteString(", ")
			}
			b.WriteString(key)
			if dir == "-" {
				b.WriteString(" DESC")
			}
		}
	}
	return b.String()
}

// Limit renders "n,m" as "LIMIT n OFFSET m". Either part may be omitted;
// anything else renders nothing.
func (p *Parser) Limit(raw string) string {
	m := limitPattern.FindStringSubmatch(raw)
	if m == nil {
		p.drop(types.ClauseLimit, raw, ReasonMalformed)
		return ""
	}
	var parts []string
	if m[1] != "" {
		parts = append(parts, "LIMIT "+m[1])
	}
	if m[2] != "" {
		parts = append(parts, "OFFSET "+m[2])
	}
	return strings.Join(parts, " ")
}

// Aggregate parses "groupFields:aggregations", for example
//
//	owner,status:total sum price,avg mean price
//	time 5m,total sum price
//
// Each aggregation is "alias type field"; an alias of time adds a time
// bucket to GROUP BY instead.
func (p *Parser) Aggregate(raw string) types.AggregateClause {
	parts := strings.SplitN(raw, ":", 2)
	groupFields, aggregations := parts[0], ""
	if len(parts) == 2 {
		aggregations = parts[1]
	}
	if groupFields == "" && aggregations == "" {
		return types.AggregateClause{}
	}
	if aggregations == "" {
		aggregations, groupFields = groupFields, ""
	}

	var groupBy, agg []string
	for _, field := range strings.Split(groupFields, ",") {
		if field == "" {
			continue
		}
		if !safeField.MatchString(field) {
			p.drop(types.ClauseAggregate, field, ReasonUnsafe)
			continue
		}
		if !p.policy.Allowed(field) {
			p.drop(types.ClauseAggregate, field, ReasonNotAllowed)
			continue
		}
		groupBy = append(groupBy, field)
	}

	for _, token := range strings.Split(aggregations, ",") {
		words := strings.Split(token, " ")
		alias, typ, field := word(words, 0), word(words, 1), word(words, 2)
		if alias == "time" {
			if !isInterval(typ) {
				p.drop(types.ClauseAggregate, token, ReasonMalformed)
				continue
			}
			groupBy = append(groupBy, "time("+typ+")")
			continue
		}
		if alias == "" || typ == "" || field == "" {
			if token != "" {
				p.drop(types.ClauseAggregate, token, ReasonMalformed)
			}
			continue
		}
		if _, ok := aggregateTypes[typ]; !ok {
			p.drop(types.ClauseAggregate, token, ReasonUnknownAgg)
			continue
		}
		if !safeField.MatchString(field) || !aliasPattern.MatchString(alias) {
			p.drop(types.ClauseAggregate, token, ReasonUnsafe)
			continue
		}
		if !p.policy.Allowed(field) {
			p.drop(types.ClauseAggregate, field, ReasonNotAllowed)
			continue
		}
		agg = append(agg, strings.ToUpper(typ)+"("+field+") AS "+alias)
	}

	var result types.AggregateClause
	if len(groupBy) > 0 {
		result.GroupBy = "GROUP BY " + strings.Join(groupBy, ", ")
	}
	result.Agg = strings.Join(agg, ", ")
	return result
}

// Fill renders fill(value) for lowercase alphanumeric values such as
// previous, linear, none, null or 0.
func (p *Parser) Fill(raw string) string {
	if !fillPattern.MatchString(raw) {
		p.drop(types.ClauseFill, raw, ReasonMalformed)
		return ""
	}
	return "fill(" + raw + ")"
}

func word(words []string, i int) string {
	if i < len(words) {
		return words[i]
	}
	return ""
}

// isInterval 校验 GROUP BY time() 的间隔，支持 1h30m 这类复合时长
func isInterval(s string) bool {
	d, err := influxql.ParseDuration(s)
	return err == nil && d > 0
}

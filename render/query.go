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

// Package render assembles parsed clause fragments into one InfluxQL query.
package render

import (
	"strings"

	"github.com/rulego/influxqs/types"
)

// CreateQuery concatenates the non-empty fragments of qo in fixed order:
// SELECT, FROM, WHERE, GROUP BY, fill, ORDER BY, LIMIT/OFFSET.
func CreateQuery(measurement string, qo types.QueryOptions) string {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(selection(qo))
	b.WriteString(" FROM ")
	b.WriteString(measurement)
	for _, fragment := range []string{
		qo.Filter.Filters,
		qo.Aggregate.GroupBy,
		qo.Fill,
		qo.Sort,
		qo.Limit,
	} {
		if fragment == "" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(fragment)
	}
	return b.String()
}

func selection(qo types.QueryOptions) string {
	switch {
	case qo.Aggregate.Agg != "":
		return qo.Aggregate.Agg
	case qo.Fields != "":
		return qo.Fields
	default:
		return types.DefaultFields
	}
}

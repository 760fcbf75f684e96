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

package types

// DefaultFields is rendered when no field list survives parsing.
const DefaultFields = "*"

// QueryOptions 解析结果，每个子句一个已渲染的片段
type QueryOptions struct {
	Fields    string          `json:"fields"`
	Filter    FilterClause    `json:"filter"`
	Sort      string          `json:"sort,omitempty"`
	Limit     string          `json:"limit,omitempty"`
	Aggregate AggregateClause `json:"aggregate"`
	Fill      string          `json:"fill,omitempty"`
}

// FilterClause carries the accumulated WHERE fragment.
type FilterClause struct {
	Filters string `json:"filters,omitempty"`
}

// AggregateClause carries the GROUP BY fragment and the aggregation list.
type AggregateClause struct {
	GroupBy string `json:"groupBy,omitempty"`
	Agg     string `json:"agg,omitempty"`
}

// NewQueryOptions returns an empty result with the default field list.
func NewQueryOptions() QueryOptions {
	return QueryOptions{Fields: DefaultFields}
}

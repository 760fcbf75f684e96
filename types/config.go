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

// Clause 查询子句
type Clause string

const (
	ClauseFields    Clause = "fields"
	ClauseSort      Clause = "sort"
	ClauseLimit     Clause = "limit"
	ClauseFilter    Clause = "filter"
	ClauseAggregate Clause = "aggregate"
	ClauseFill      Clause = "fill"
)

// Clauses lists every clause in the order the parser evaluates them.
var Clauses = []Clause{ClauseFields, ClauseSort, ClauseLimit, ClauseFilter, ClauseAggregate, ClauseFill}

// ISO8601 is the date format token that expands to DefaultDateLayouts.
const ISO8601 = "ISO8601"

// DefaultDateLayouts are the layouts tried for ISO-8601 date strings, most specific first.
var DefaultDateLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02T15",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01",
	"2006",
	"20060102T150405Z07:00",
	"20060102T150405",
	"20060102",
}

// Config 解析器配置
type Config struct {
	// DateFormats 日期格式（Go layout），按顺序匹配，ISO8601 展开为默认格式
	DateFormats []string `json:"dateFormats,omitempty" yaml:"dateFormats"`
	// Whitelist 允许出现在查询中的字段，为空表示全部允许
	Whitelist []string `json:"whitelist,omitempty" yaml:"whitelist"`
	// Blacklist 禁止出现在查询中的字段
	Blacklist []string `json:"blacklist,omitempty" yaml:"blacklist"`
	// CastParams 字段名 -> 强制使用的转换器名称
	CastParams map[string]string `json:"castParams,omitempty" yaml:"castParams"`
	// ExprCasters 转换器名称 -> expr 表达式，value 为原始文本
	ExprCasters map[string]string `json:"exprCasters,omitempty" yaml:"exprCasters"`
	// Measurement FROM 子句使用的表名
	Measurement string `json:"measurement,omitempty" yaml:"measurement"`
	// Keys 子句参数重命名
	Keys ClauseKeys `json:"keys,omitempty" yaml:"keys"`
	// ParseBoolean 是否自动识别 true/false
	ParseBoolean bool `json:"parseBoolean,omitempty" yaml:"parseBoolean"`
	// ParseArray 是否按逗号拆分数组
	ParseArray bool `json:"parseArray,omitempty" yaml:"parseArray"`
}

// ClauseKeys renames the query parameter each clause is read from.
// An empty entry means the clause name itself.
type ClauseKeys struct {
	Fields    string `json:"fields,omitempty" yaml:"fields"`
	Sort      string `json:"sort,omitempty" yaml:"sort"`
	Limit     string `json:"limit,omitempty" yaml:"limit"`
	Filter    string `json:"filter,omitempty" yaml:"filter"`
	Aggregate string `json:"aggregate,omitempty" yaml:"aggregate"`
	Fill      string `json:"fill,omitempty" yaml:"fill"`
}

// Key returns the effective parameter name of clause c: the configured key,
// or the clause name itself when none is set.
func (k ClauseKeys) Key(c Clause) string {
	var key string
	switch c {
	case ClauseFields:
		key = k.Fields
	case ClauseSort:
		key = k.Sort
	case ClauseLimit:
		key = k.Limit
	case ClauseFilter:
		key = k.Filter
	case ClauseAggregate:
		key = k.Aggregate
	case ClauseFill:
		key = k.Fill
	}
	if key == "" {
		return string(c)
	}
	return key
}

// Set renames clause c. Unknown clauses are ignored.
func (k *ClauseKeys) Set(c Clause, key string) {
	switch c {
	case ClauseFields:
		k.Fields = key
	case ClauseSort:
		k.Sort = key
	case ClauseLimit:
		k.Limit = key
	case ClauseFilter:
		k.Filter = key
	case ClauseAggregate:
		k.Aggregate = key
	case ClauseFill:
		k.Fill = key
	}
}

// NewConfig 创建默认配置
func NewConfig() Config {
	return Config{DateFormats: []string{ISO8601}}
}

// Layouts expands the configured date formats into Go layouts.
func (c Config) Layouts() []string {
	formats := c.DateFormats
	if len(formats) == 0 {
		formats = []string{ISO8601}
	}
	layouts := make([]string, 0, len(formats)+len(DefaultDateLayouts))
	for _, f := range formats {
		if f == ISO8601 {
			layouts = append(layouts, DefaultDateLayouts...)
			continue
		}
		layouts = append(layouts, f)
	}
	return layouts
}

// Clone returns a deep copy so callers can keep mutating their own Config.
func (c Config) Clone() Config {
	out := c
	out.DateFormats = append([]string(nil), c.DateFormats...)
	out.Blacklist = append([]string(nil), c.Blacklist...)
	// nil 与空白名单语义不同：空白名单拒绝所有字段
	if c.Whitelist != nil {
		out.Whitelist = append(make([]string, 0, len(c.Whitelist)), c.Whitelist...)
	}
	out.CastParams = cloneMap(c.CastParams)
	out.ExprCasters = cloneMap(c.ExprCasters)
	return out
}

func cloneMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

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

import (
	"net/url"
	"sort"
	"strings"
)

// Param is one query parameter with every value given for its key.
type Param struct {
	Key    string
	Values []string
}

// Value returns the parameter as a single string. Repeated values are
// joined with commas, the way a query-string array is coerced to text.
func (p Param) Value() string {
	return strings.Join(p.Values, ",")
}

// Params is an ordered set of query parameters. Order is the order of first
// appearance in the raw query string, and it drives the order of filter clauses.
type Params []Param

// ParseParams splits a raw query string into Params.
// A leading '?' is ignored, '+' decodes to a space and malformed escapes are
// kept verbatim.
func ParseParams(raw string) Params {
	raw = strings.TrimPrefix(raw, "?")
	var params Params
	index := make(map[string]int)
	for _, part := range strings.Split(raw, "&") {
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		key = unescape(key)
		value = unescape(value)
		if i, ok := index[key]; ok {
			params[i].Values = append(params[i].Values, value)
			continue
		}
		index[key] = len(params)
		params = append(params, Param{Key: key, Values: []string{value}})
	}
	return params
}

// ParamsFromValues converts url.Values. Map iteration order is random, so
// keys are sorted to keep the rendered query deterministic.
func ParamsFromValues(values url.Values) Params {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	params := make(Params, 0, len(keys))
	for _, k := range keys {
		params = append(params, Param{Key: k, Values: append([]string(nil), values[k]...)})
	}
	return params
}

// Get returns the parameter named key.
func (ps Params) Get(key string) (Param, bool) {
	for _, p := range ps {
		if p.Key == key {
			return p, true
		}
	}
	return Param{}, false
}

// Value returns the joined value of key, or "" when absent.
func (ps Params) Value(key string) string {
	p, ok := ps.Get(key)
	if !ok {
		return ""
	}
	return p.Value()
}

func unescape(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}
	return strings.ReplaceAll(s, "+", " ")
}

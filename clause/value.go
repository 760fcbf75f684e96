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
	"strconv"
	"strings"

	"github.com/rulego/influxqs/caster"
	"github.com/rulego/influxqs/types"
)

var (
	// casterCall matches name(arg), e.g. string(true), _caster(123), $(x)
	casterCall = regexp.MustCompile(`^([a-zA-Z_$][0-9a-zA-Z_$]*)\((.*)\)$`)
	// regexLiteral matches /pattern/ and /pattern/i
	regexLiteral = regexp.MustCompile(`^/(.*)/(i?)$`)
	// decimal numbers only; hex or Inf spellings stay strings
	numberLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	// zip codes and phone numbers keep their leading zeros
	zeroPadded = regexp.MustCompile(`^0[0-9]+`)
)

// ValueParser applies automatic type detection and casters to raw values.
type ValueParser struct {
	registry     *caster.Registry
	castParams   map[string]string
	parseBoolean bool
	parseArray   bool
}

// NewValueParser 创建值解析器
func NewValueParser(registry *caster.Registry, castParams map[string]string, parseBoolean, parseArray bool) *ValueParser {
	if registry == nil {
		registry = caster.NewRegistry()
	}
	params := make(map[string]string, len(castParams))
	for k, v := range castParams {
		params[k] = v
	}
	return &ValueParser{
		registry:     registry,
		castParams:   params,
		parseBoolean: parseBoolean,
		parseArray:   parseArray,
	}
}

// Parse converts value into a typed value. key is the field the value
// belongs to and selects a forced caster; it may be empty.
//
// The first matching rule wins: inline caster call, forced field caster,
// comma separated array, regex literal, boolean, null, number, string.
func (vp *ValueParser) Parse(value, key string) (types.Value, error) {
	// 内联转换器的参数按原始文本传入，不做二次解析
	if m := casterCall.FindStringSubmatch(value); m != nil {
		if c, ok := vp.registry.Get(m[1]); ok {
			return c(m[2])
		}
	}

	if key != "" {
		if name, ok := vp.castParams[key]; ok {
			if c, ok := vp.registry.Get(name); ok {
				return c(value)
			}
		}
	}

	if vp.parseArray && strings.Contains(value, ",") {
		parts := strings.Split(value, ",")
		items := make([]types.Value, 0, len(parts))
		for _, part := range parts {
			item, err := vp.Parse(part, key)
			if err != nil {
				return types.Value{}, err
			}
			items = append(items, item)
		}
		return types.ArrayValue(items...), nil
	}

	if m := regexLiteral.FindStringSubmatch(value); m != nil {
		pattern := m[1]
		if m[2] == "i" {
			pattern = "(?i)" + pattern
		}
		if re, err := regexp.Compile(pattern); err == nil {
			return types.RegexValue(re), nil
		}
	}

	if vp.parseBoolean {
		switch value {
		case "true":
			return types.BoolValue(true), nil
		case "false":
			return types.BoolValue(false), nil
		}
	}

	if value == "null" {
		return types.NullValue(), nil
	}

	if numberLiteral.MatchString(value) && !zeroPadded.MatchString(value) {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return types.NumberValue(f), nil
		}
	}

	return types.StringValue(value), nil
}

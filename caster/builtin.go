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

package caster

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/rulego/influxqs/types"
)

// BuiltinCasters returns a fresh table of the built-in casters. The date
// caster parses literals with layouts and resolves shortcuts against now.
func BuiltinCasters(layouts []string, now func() time.Time) map[string]Caster {
	date := &DateCaster{Layouts: layouts, Now: now}
	return map[string]Caster{
		string(BuiltinString):  castString,
		string(BuiltinNumber):  castNumber,
		string(BuiltinBoolean): castBoolean,
		string(BuiltinDate):    date.Cast,
	}
}

func castString(text string) (types.Value, error) {
	return types.StringValue(text), nil
}

// castNumber 数值转换，无法解析时报错而不是返回 0
func castNumber(text string) (types.Value, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return types.Value{}, types.NewCastError(string(BuiltinNumber), text, fmt.Errorf("empty input"))
	}
	f, err := cast.ToFloat64E(trimmed)
	if err != nil {
		return types.Value{}, types.NewCastError(string(BuiltinNumber), text, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return types.Value{}, types.NewCastError(string(BuiltinNumber), text, fmt.Errorf("not a finite number"))
	}
	return types.NumberValue(f), nil
}

func castBoolean(text string) (types.Value, error) {
	return types.BoolValue(strings.ToLower(text) == "true"), nil
}

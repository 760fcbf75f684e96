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
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/spf13/cast"
)

// Kind 值类型
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindNull
	KindRegex
	KindArray
)

// String returns string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	case KindRegex:
		return "regex"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a typed query value. Exactly one payload matches Kind.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	re   *regexp.Regexp
	arr  []Value
}

func StringValue(s string) Value { return Value{kind: KindString, str: s} }

func NumberValue(f float64) Value { return Value{kind: KindNumber, num: f} }

func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

func NullValue() Value { return Value{kind: KindNull} }

func RegexValue(re *regexp.Regexp) Value { return Value{kind: KindRegex, re: re} }

func ArrayValue(items ...Value) Value {
	return Value{kind: KindArray, arr: append([]Value(nil), items...)}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// Str returns the string payload.
func (v Value) Str() string { return v.str }

// Num returns the number payload.
func (v Value) Num() float64 { return v.num }

// Bool returns the boolean payload.
func (v Value) Bool() bool { return v.b }

// Regex returns the regular expression payload.
func (v Value) Regex() *regexp.Regexp { return v.re }

// Items returns a copy of the array payload.
func (v Value) Items() []Value { return append([]Value(nil), v.arr...) }

// Text renders the value the way it appears unquoted in a query.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNull:
		return "null"
	case KindRegex:
		return v.re.String()
	case KindArray:
		s := ""
		for i, item := range v.arr {
			if i > 0 {
				s += ","
			}
			s += item.Text()
		}
		return s
	}
	return ""
}

// Interface converts v back to a plain Go value.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	case KindRegex:
		return v.re
	case KindArray:
		out := make([]any, len(v.arr))
		for i, item := range v.arr {
			out[i] = item.Interface()
		}
		return out
	}
	return nil
}

// ValueOf converts a loosely typed result, such as the output of an
// expression, into a Value.
func ValueOf(x any) (Value, error) {
	switch x := x.(type) {
	case nil:
		return NullValue(), nil
	case Value:
		return x, nil
	case string:
		return StringValue(x), nil
	case bool:
		return BoolValue(x), nil
	case *regexp.Regexp:
		return RegexValue(x), nil
	case time.Time:
		return StringValue(x.UTC().Format(DateOutputLayout)), nil
	case []any:
		items := make([]Value, 0, len(x))
		for _, item := range x {
			v, err := ValueOf(item)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return ArrayValue(items...), nil
	case []string:
		items := make([]Value, 0, len(x))
		for _, item := range x {
			items = append(items, StringValue(item))
		}
		return ArrayValue(items...), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		f, err := cast.ToFloat64E(x)
		if err != nil {
			return Value{}, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Value{}, fmt.Errorf("not a finite number: %v", f)
		}
		return NumberValue(f), nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", x)
	}
}

// DateOutputLayout is the normalized ISO-8601 instant every date caster emits.
const DateOutputLayout = "2006-01-02T15:04:05.000Z"

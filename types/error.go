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
	"errors"
	"fmt"
	"strings"
)

// ErrorType 定义错误类型
type ErrorType int

const (
	// ErrorTypeInvalidFilter 过滤器种子不是合法 JSON
	ErrorTypeInvalidFilter ErrorType = iota
	// ErrorTypeUnknownDateShortcut 未知的日期快捷方式
	ErrorTypeUnknownDateShortcut
	// ErrorTypeInvalidDate 日期无法解析
	ErrorTypeInvalidDate
	// ErrorTypeCast 转换器无法转换输入
	ErrorTypeCast
)

// Sentinel errors matched by errors.Is against *Error.
var (
	ErrInvalidFilter       = errors.New("invalid filter")
	ErrUnknownDateShortcut = errors.New("unknown date shortcut")
	ErrInvalidDate         = errors.New("invalid date")
	ErrCast                = errors.New("cast failed")
)

// Error is raised synchronously while parsing a query.
type Error struct {
	Type    ErrorType
	Message string
	// Value is the offending input text
	Value string
	// Err is the underlying cause, if any
	Err error
}

// Error 实现 error 接口
func (e *Error) Error() string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("[%s] %s", e.Type, e.Message))
	if e.Value != "" {
		builder.WriteString(fmt.Sprintf(": %s", e.Value))
	}
	if e.Err != nil {
		builder.WriteString(fmt.Sprintf(" (%v)", e.Err))
	}
	return builder.String()
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error of e.Type.
func (e *Error) Is(target error) bool {
	return target == e.Type.sentinel()
}

// String returns the name used in messages and metric labels.
func (t ErrorType) String() string {
	switch t {
	case ErrorTypeInvalidFilter:
		return "INVALID_FILTER"
	case ErrorTypeUnknownDateShortcut:
		return "UNKNOWN_DATE_SHORTCUT"
	case ErrorTypeInvalidDate:
		return "INVALID_DATE"
	case ErrorTypeCast:
		return "CAST_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

func (t ErrorType) sentinel() error {
	switch t {
	case ErrorTypeInvalidFilter:
		return ErrInvalidFilter
	case ErrorTypeUnknownDateShortcut:
		return ErrUnknownDateShortcut
	case ErrorTypeInvalidDate:
		return ErrInvalidDate
	case ErrorTypeCast:
		return ErrCast
	}
	return nil
}

// NewInvalidFilterError 创建过滤器错误
func NewInvalidFilterError(value string, cause error) *Error {
	return &Error{Type: ErrorTypeInvalidFilter, Message: "Invalid JSON string", Value: value, Err: cause}
}

// NewUnknownDateShortcutError 创建日期快捷方式错误
func NewUnknownDateShortcutError(name string) *Error {
	return &Error{Type: ErrorTypeUnknownDateShortcut, Message: "Unknown date shortcut", Value: name}
}

// NewInvalidDateError 创建日期错误
func NewInvalidDateError(value string, cause error) *Error {
	return &Error{Type: ErrorTypeInvalidDate, Message: "Invalid date string", Value: value, Err: cause}
}

// NewCastError 创建转换错误
func NewCastError(caster, value string, cause error) *Error {
	return &Error{Type: ErrorTypeCast, Message: fmt.Sprintf("Caster %q cannot convert value", caster), Value: value, Err: cause}
}

// ErrorTypeOf returns the type of err if it is (or wraps) an *Error.
func ErrorTypeOf(err error) (ErrorType, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Type, true
	}
	return 0, false
}

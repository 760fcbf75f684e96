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

package render

import (
	"regexp"

	"github.com/influxdata/influxql"
)

// Escaper turns arbitrary text into a quoted, injection-safe string literal.
type Escaper func(value string) string

// StringLiteral is the default Escaper: a single-quoted InfluxQL string.
func StringLiteral(value string) string {
	return influxql.QuoteString(value)
}

// RegexLiteral renders re as an InfluxQL regex literal with '/' escaped.
func RegexLiteral(re *regexp.Regexp) string {
	return (&influxql.RegexLiteral{Val: re}).String()
}

var plainIdent = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*(\.[a-zA-Z_][a-zA-Z0-9_]*)*$`)

// Ident renders a field key. Plain and dotted identifiers are emitted as-is;
// anything else is double-quoted so it cannot break out of the clause.
func Ident(key string) string {
	if plainIdent.MatchString(key) {
		return key
	}
	return influxql.QuoteIdent(key)
}

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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Params
	}{
		{
			name: "empty",
			raw:  "",
			want: nil,
		},
		{
			name: "leading question mark",
			raw:  "?a=1&b=2",
			want: Params{{Key: "a", Values: []string{"1"}}, {Key: "b", Values: []string{"2"}}},
		},
		{
			name: "operators stay in the key",
			raw:  "startTime>2020-06-16&n>=3&!private&x!=y",
			want: Params{
				{Key: "startTime>2020-06-16", Values: []string{""}},
				{Key: "n>", Values: []string{"3"}},
				{Key: "!private", Values: []string{""}},
				{Key: "x!", Values: []string{"y"}},
			},
		},
		{
			name: "repeated keys keep first position",
			raw:  "a=1&b=2&a=3",
			want: Params{{Key: "a", Values: []string{"1", "3"}}, {Key: "b", Values: []string{"2"}}},
		},
		{
			name: "decoding",
			raw:  "name=John+Doe&q=%2Fx%2F&sort=+a",
			want: Params{
				{Key: "name", Values: []string{"John Doe"}},
				{Key: "q", Values: []string{"/x/"}},
				{Key: "sort", Values: []string{" a"}},
			},
		},
		{
			name: "malformed escape kept verbatim",
			raw:  "a=100%&b=%zz",
			want: Params{{Key: "a", Values: []string{"100%"}}, {Key: "b", Values: []string{"%zz"}}},
		},
		{
			name: "empty segments skipped",
			raw:  "a=1&&b=2&",
			want: Params{{Key: "a", Values: []string{"1"}}, {Key: "b", Values: []string{"2"}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseParams(tt.raw))
		})
	}
}

func TestParamsFromValuesSortsKeys(t *testing.T) {
	params := ParamsFromValues(url.Values{
		"z":     {"1"},
		"a":     {"2", "3"},
		"limit": {"10"},
	})
	assert.Equal(t, Params{
		{Key: "a", Values: []string{"2", "3"}},
		{Key: "limit", Values: []string{"10"}},
		{Key: "z", Values: []string{"1"}},
	}, params)
}

func TestParamsLookup(t *testing.T) {
	params := ParseParams("a=1&a=2&b=")

	p, ok := params.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1,2", p.Value())
	assert.Equal(t, "1,2", params.Value("a"))
	assert.Equal(t, "", params.Value("b"))

	_, ok = params.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, "", params.Value("missing"))
}

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
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFieldPolicyClauseKeys 子句参数名总是在黑名单中
func TestFieldPolicyClauseKeys(t *testing.T) {
	p := NewFieldPolicy(nil, []string{"password"}, ClauseKeys{})

	assert.Equal(t, []string{"password", "fields", "sort", "limit", "filter", "aggregate", "fill"}, p.Blacklist())
	assert.False(t, p.HasWhitelist())
	for _, c := range Clauses {
		assert.False(t, p.Allowed(string(c)))
		assert.True(t, p.IsClauseKey(string(c)))
	}
	assert.False(t, p.IsClauseKey("password"))
	assert.True(t, p.Allowed("firstName"))
	assert.False(t, p.Allowed("password"))
}

func TestFieldPolicyRenamedKeys(t *testing.T) {
	p := NewFieldPolicy(nil, nil, ClauseKeys{Limit: "top"})
	assert.False(t, p.Allowed("top"))
	assert.True(t, p.IsClauseKey("top"))
	assert.True(t, p.Allowed("limit"), "the old name is an ordinary field once renamed")
}

func TestFieldPolicyWhitelist(t *testing.T) {
	p := NewFieldPolicy([]string{"firstName", "lastName", "sort"}, []string{"lastName"}, ClauseKeys{})

	assert.True(t, p.HasWhitelist())
	assert.True(t, p.Allowed("firstName"))
	assert.False(t, p.Allowed("middleName"))
	assert.False(t, p.Allowed("lastName"), "blacklist wins over whitelist")
	assert.False(t, p.Allowed("sort"), "clause keys can never be whitelisted")
}

func TestFieldPolicyEmptyWhitelistDeniesAll(t *testing.T) {
	p := NewFieldPolicy([]string{}, nil, ClauseKeys{})
	assert.True(t, p.HasWhitelist())
	assert.False(t, p.Allowed("anything"))
}

func TestFieldPolicyDeduplicatesBlacklist(t *testing.T) {
	p := NewFieldPolicy(nil, []string{"a", "limit", "a"}, ClauseKeys{})
	assert.Equal(t, []string{"a", "limit", "fields", "sort", "filter", "aggregate", "fill"}, p.Blacklist())

	// 返回的是副本
	bl := p.Blacklist()
	bl[0] = "changed"
	assert.Equal(t, "a", p.Blacklist()[0])
}

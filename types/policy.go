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

// FieldPolicy is the resolved whitelist/blacklist applied to every clause.
// It is immutable once built.
type FieldPolicy struct {
	whitelist  map[string]struct{}
	blacklist  map[string]struct{}
	clauseKeys map[string]struct{}
	ordered    []string
}

// NewFieldPolicy builds the effective policy. The blacklist always contains
// the effective key of every clause, whatever the user supplied.
func NewFieldPolicy(whitelist, blacklist []string, keys ClauseKeys) FieldPolicy {
	p := FieldPolicy{
		blacklist:  make(map[string]struct{}, len(blacklist)+len(Clauses)),
		clauseKeys: make(map[string]struct{}, len(Clauses)),
	}
	if whitelist != nil {
		p.whitelist = make(map[string]struct{}, len(whitelist))
		for _, f := range whitelist {
			p.whitelist[f] = struct{}{}
		}
	}
	add := func(f string) {
		if _, ok := p.blacklist[f]; ok {
			return
		}
		p.blacklist[f] = struct{}{}
		p.ordered = append(p.ordered, f)
	}
	for _, f := range blacklist {
		add(f)
	}
	for _, c := range Clauses {
		key := keys.Key(c)
		p.clauseKeys[key] = struct{}{}
		add(key)
	}
	return p
}

// Allowed reports whether field may appear in a rendered clause.
// The whitelist is checked first, then the blacklist, which always wins.
func (p FieldPolicy) Allowed(field string) bool {
	if p.whitelist != nil {
		if _, ok := p.whitelist[field]; !ok {
			return false
		}
	}
	_, denied := p.blacklist[field]
	return !denied
}

// IsClauseKey reports whether field is the parameter name of a clause.
func (p FieldPolicy) IsClauseKey(field string) bool {
	_, ok := p.clauseKeys[field]
	return ok
}

// Blacklist returns the effective blacklist in insertion order.
func (p FieldPolicy) Blacklist() []string {
	return append([]string(nil), p.ordered...)
}

// HasWhitelist reports whether a whitelist is configured.
func (p FieldPolicy) HasWhitelist() bool {
	return p.whitelist != nil
}

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
	"errors"
	"fmt"
	"sort"

	"github.com/rulego/influxqs/types"
)

// Caster converts raw parameter text into a typed value.
type Caster func(text string) (types.Value, error)

// Builtin 内置转换器名称
type Builtin string

const (
	BuiltinString  Builtin = "string"
	BuiltinNumber  Builtin = "number"
	BuiltinBoolean Builtin = "boolean"
	BuiltinDate    Builtin = "date"
)

// Builtins lists the built-in caster kinds.
var Builtins = []Builtin{BuiltinString, BuiltinNumber, BuiltinBoolean, BuiltinDate}

// Registry is an immutable name -> Caster table. Lookups need no locking
// because nothing writes to it after NewRegistry returns.
type Registry struct {
	casters map[string]Caster
}

// NewRegistry merges the given sets into a fresh table. Later sets override
// earlier ones by name, so user casters passed after the built-ins win.
func NewRegistry(sets ...map[string]Caster) *Registry {
	r := &Registry{casters: make(map[string]Caster)}
	for _, set := range sets {
		for name, c := range set {
			if c == nil {
				continue
			}
			r.casters[name] = wrap(name, c)
		}
	}
	return r
}

// Get 获取转换器
func (r *Registry) Get(name string) (Caster, bool) {
	c, ok := r.casters[name]
	return c, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.casters[name]
	return ok
}

// Names returns the registered caster names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.casters))
	for name := range r.casters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Cast runs the caster called name on text.
func (r *Registry) Cast(name, text string) (types.Value, error) {
	c, ok := r.casters[name]
	if !ok {
		return types.Value{}, types.NewCastError(name, text, fmt.Errorf("caster %s not found", name))
	}
	return c(text)
}

// wrap turns plain errors from user casters into cast errors so callers
// only ever see *types.Error.
func wrap(name string, c Caster) Caster {
	return func(text string) (types.Value, error) {
		v, err := c(text)
		if err == nil {
			return v, nil
		}
		var typed *types.Error
		if errors.As(err, &typed) {
			return types.Value{}, err
		}
		return types.Value{}, types.NewCastError(name, text, err)
	}
}

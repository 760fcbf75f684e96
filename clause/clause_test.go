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
	"sync"
	"time"

	"github.com/rulego/influxqs/caster"
	"github.com/rulego/influxqs/types"
)

type drop struct {
	clause types.Clause
	token  string
	reason string
}

// recorder 记录被忽略的 token
type recorder struct {
	mu    sync.Mutex
	drops []drop
}

func (r *recorder) Dropped(c types.Clause, token, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drops = append(r.drops, drop{c, token, reason})
}

func fixedNow() time.Time {
	return time.Date(2020, 9, 15, 13, 45, 30, 0, time.UTC)
}

func testRegistry() *caster.Registry {
	return caster.NewRegistry(caster.BuiltinCasters(types.DefaultDateLayouts, fixedNow))
}

// newTestParser builds a parser with the built-in casters. Policy defaults
// to blacklisting only the clause keys.
func newTestParser(opts Options) (*Parser, *recorder) {
	rec := &recorder{}
	if opts.Registry == nil {
		opts.Registry = testRegistry()
	}
	if len(opts.Policy.Blacklist()) == 0 {
		opts.Policy = types.NewFieldPolicy(nil, nil, types.ClauseKeys{})
	}
	opts.Recorder = rec
	return New(opts), rec
}

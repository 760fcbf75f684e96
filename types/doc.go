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

/*
Package types provides the shared data model of influxqs.

It defines the parser configuration, the resolved field access policy, the
ordered raw input, the typed values produced by casters and the
QueryOptions record handed from the clause parsers to the renderer.

# Configuration

	cfg := types.NewConfig()
	cfg.Measurement = "events"
	cfg.Whitelist = []string{"startTime", "private"}
	cfg.Keys.Limit = "top"   // read the limit clause from ?top=

Every clause key is blacklisted automatically, so a control parameter such
as limit=10 is never mistaken for a filter on a field named limit:

	policy := types.NewFieldPolicy(cfg.Whitelist, cfg.Blacklist, cfg.Keys)
	policy.Allowed("limit") // false

# Typed Values

Value is a tagged union with one variant per Kind: string, number, boolean,
null, regular expression and array. Renderers switch on Kind instead of
inspecting dynamic types.

# Errors

Parse failures are *Error values whose Type selects the sentinel matched by
errors.Is:

	if errors.Is(err, types.ErrInvalidDate) {
		// reject the request
	}
*/
package types

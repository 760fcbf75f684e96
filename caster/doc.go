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
Package caster provides the named value casters used by influxqs.

A caster turns the raw text of a query parameter into a typed value. Casters
are invoked inline with call syntax (key=number(42)) or forced per field
through the castParams configuration.

# Built-in Casters

	string(10)           -> '10'
	number(42.5)         -> 42.5, number(abc) fails with types.ErrCast
	boolean(TRUE)        -> true
	date(2017-10-01)     -> '2017-10-01T00:00:00.000Z'
	date(startOfMonth:-1)

# Date Shortcuts

A shortcut has the form name[:modifier[:base]]. The name aligns the reference
instant (startOfYear, endOfQuarter, startOfWeek, ...) or only shifts it
(year, quarter, month, week, day); modifier shifts by that many units; base
replaces "now" with an explicit date:

	date(endOfMonth:1:2020-01-15) -> '2020-02-29T23:59:59.999Z'

# Expression Casters

Casters can also be declared as expr-lang expressions over the variable
value, which makes them configurable from a file:

	c, err := caster.NewExprCaster("float(value) * 100")

# Registry

NewRegistry merges caster tables into a fresh immutable Registry; built-ins
are passed first so user casters override them by name.
*/
package caster

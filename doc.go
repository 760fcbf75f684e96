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
Package influxqs translates URL query strings into InfluxQL queries.

API consumers filter, sort, paginate and aggregate time series through plain
query parameters; influxqs parses them into clause fragments (QueryOptions)
and renders one SELECT statement. The measurement always comes from
configuration, never from the query.

# Basic Usage

	p, err := influxqs.New(
		influxqs.WithMeasurement("events"),
		influxqs.WithParseArray(true),
	)
	if err != nil {
		return err
	}
	q, err := p.ParseQuery("startTime>2020-06-16&type=note,task&sort=-startTime&limit=50,100")
	// SELECT * FROM events WHERE startTime > '2020-06-16' AND (type = 'note' OR type = 'task')
	//   ORDER BY startTime DESC LIMIT 50 OFFSET 100

# Filters

Every parameter that is not a clause key becomes a condition, joined with AND
in input order:

	key=value      key = value
	key!=value     key != value
	key>value      key > value (also >=, <, <=)
	key            key = ''   (field empty or absent)
	!key           key != ''  (field present)
	key=/re/i      key =~ /(?i)re/
	key=a,b        (key = 'a' OR key = 'b')          with WithParseArray
	key!=a,b       (key != 'a' AND key != 'b')       with WithParseArray

Values are typed automatically: numbers (zero padded values such as 0123 stay
strings), null, regular expressions and, with WithParseBoolean, booleans.
Casters can be called inline (key=date(startOfMonth:-1), key=string(10)) or
forced per field with WithCastParams.

# Clauses

	fields=a,b                        SELECT a,b
	sort=a,-b                         ORDER BY a, b DESC
	limit=50,100                      LIMIT 50 OFFSET 100
	aggregate=owner:time 5m,t sum p   SELECT SUM(p) AS t ... GROUP BY owner, time(5m)
	fill=previous                     fill(previous)

Malformed sort, limit, aggregate, fill and field tokens are ignored rather
than reported. Filter parsing fails only for an invalid JSON filter seed,
unknown date shortcuts, unparsable dates and failed casts; see types.Error.

# Access Policy

WithWhitelist and WithBlacklist apply to filters, selected fields and
aggregations alike. Clause keys are always blacklisted.
*/
package influxqs

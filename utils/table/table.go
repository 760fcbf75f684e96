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

// Package table prints rows as a bordered text table.
package table

import (
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"
)

// minWidth is the narrowest column, header included
const minWidth = 4

// Print writes rows as a table. Columns follow columns first; columns present
// in rows but not listed are appended in sorted order.
//
//	+------+--------------+
//	| name | value        |
//	+------+--------------+
//	| sort | ORDER BY a   |
//	+------+--------------+
//	(1 rows)
func Print(w io.Writer, rows []map[string]string, columns []string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "(0 rows)")
		return err
	}
	columns = Columns(rows, columns)

	tw := tablewriter.NewWriter(w)
	// 最小宽度需在表头之前设置，否则会覆盖表头宽度
	for i := range columns {
		tw.SetColMinWidth(i, minWidth)
	}
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetHeader(columns)
	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = row[col]
		}
		tw.Append(cells)
	}
	tw.Render()

	_, err := fmt.Fprintf(w, "(%d rows)\n", len(rows))
	return err
}

// Columns resolves the column order used by Print. Listed columns missing
// from every row are skipped.
func Columns(rows []map[string]string, order []string) []string {
	seen := make(map[string]bool)
	for _, row := range rows {
		for col := range row {
			seen[col] = true
		}
	}
	columns := make([]string, 0, len(seen))
	for _, col := range order {
		if seen[col] {
			columns = append(columns, col)
			delete(seen, col)
		}
	}
	rest := make([]string, 0, len(seen))
	for col := range seen {
		rest = append(rest, col)
	}
	sort.Strings(rest)
	return append(columns, rest...)
}

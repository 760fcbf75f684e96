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
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/rulego/influxqs/types"
)

// shortcutPattern matches name[:modifier[:base]]
var shortcutPattern = regexp.MustCompile(`^([a-zA-Z]+):?([0-9.-]*):?([0-9.-]*)$`)

// dateUnit 日期快捷方式的时间单位
type dateUnit int

const (
	unitYear dateUnit = iota
	unitQuarter
	unitMonth
	unitWeek
	unitDay
)

// anchor 快捷方式先对齐到单位的开始或结束
type anchor int

const (
	anchorNone anchor = iota
	anchorStart
	anchorEnd
)

type shortcut struct {
	anchor anchor
	unit   dateUnit
}

// shortcuts is the fixed date shortcut table. Weeks are ISO weeks starting on Monday.
var shortcuts = map[string]shortcut{
	"startOfYear":    {anchorStart, unitYear},
	"endOfYear":      {anchorEnd, unitYear},
	"startOfQuarter": {anchorStart, unitQuarter},
	"endOfQuarter":   {anchorEnd, unitQuarter},
	"startOfMonth":   {anchorStart, unitMonth},
	"endOfMonth":     {anchorEnd, unitMonth},
	"startOfWeek":    {anchorStart, unitWeek},
	"endOfWeek":      {anchorEnd, unitWeek},
	"year":           {anchorNone, unitYear},
	"quarter":        {anchorNone, unitQuarter},
	"month":          {anchorNone, unitMonth},
	"week":           {anchorNone, unitWeek},
	"day":            {anchorNone, unitDay},
}

// ShortcutNames returns the names accepted by the date caster.
func ShortcutNames() []string {
	return []string{
		"startOfYear", "endOfYear", "startOfQuarter", "endOfQuarter",
		"startOfMonth", "endOfMonth", "startOfWeek", "endOfWeek",
		"year", "quarter", "month", "week", "day",
	}
}

// DateCaster resolves date shortcuts and parses date literals.
type DateCaster struct {
	// Layouts are tried in order; the first that parses wins
	Layouts []string
	// Now supplies the reference instant for shortcuts, time.Now when nil
	Now func() time.Time
}

// Cast returns a normalized ISO-8601 instant string.
func (d *DateCaster) Cast(text string) (types.Value, error) {
	if m := shortcutPattern.FindStringSubmatch(text); m != nil {
		t, err := d.resolveShortcut(m[1], m[2], m[3])
		if err != nil {
			return types.Value{}, err
		}
		return types.StringValue(format(t)), nil
	}
	t, err := d.parse(text)
	if err != nil {
		return types.Value{}, types.NewInvalidDateError(text, err)
	}
	return types.StringValue(format(t)), nil
}

func (d *DateCaster) resolveShortcut(name, mod, base string) (time.Time, error) {
	sc, ok := shortcuts[name]
	if !ok {
		return time.Time{}, types.NewUnknownDateShortcutError(name)
	}
	n := 0
	if mod != "" {
		var err error
		if n, err = strconv.Atoi(mod); err != nil {
			return time.Time{}, types.NewInvalidDateError(name+":"+mod, fmt.Errorf("modifier must be an integer"))
		}
	}
	t := d.now()
	if base != "" {
		// 基准日期无法解析时退回到当前时间
		if parsed, err := d.parse(base); err == nil {
			t = parsed
		}
	}
	switch sc.anchor {
	case anchorStart:
		t = startOf(t, sc.unit)
	case anchorEnd:
		t = endOf(t, sc.unit)
	}
	return add(t, n, sc.unit), nil
}

func (d *DateCaster) now() time.Time {
	if d.Now != nil {
		return d.Now().UTC()
	}
	return time.Now().UTC()
}

func (d *DateCaster) parse(text string) (time.Time, error) {
	layouts := d.Layouts
	if len(layouts) == 0 {
		layouts = types.DefaultDateLayouts
	}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, text, time.UTC)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func format(t time.Time) string {
	return t.UTC().Format(types.DateOutputLayout)
}

func startOf(t time.Time, unit dateUnit) time.Time {
	y, m, d := t.Date()
	switch unit {
	case unitYear:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	case unitQuarter:
		return time.Date(y, time.Month((int(m)-1)/3*3+1), 1, 0, 0, 0, 0, time.UTC)
	case unitMonth:
		return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	case unitWeek:
		offset := (int(t.Weekday()) + 6) % 7
		return time.Date(y, m, d-offset, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
}

// endOf is the last millisecond of the unit containing t.
func endOf(t time.Time, unit dateUnit) time.Time {
	start := startOf(t, unit)
	var next time.Time
	switch unit {
	case unitYear:
		next = start.AddDate(1, 0, 0)
	case unitQuarter:
		next = start.AddDate(0, 3, 0)
	case unitMonth:
		next = start.AddDate(0, 1, 0)
	case unitWeek:
		next = start.AddDate(0, 0, 7)
	default:
		next = start.AddDate(0, 0, 1)
	}
	return next.Add(-time.Millisecond)
}

func add(t time.Time, n int, unit dateUnit) time.Time {
	if n == 0 {
		return t
	}
	switch unit {
	case unitYear:
		return addMonths(t, 12*n)
	case unitQuarter:
		return addMonths(t, 3*n)
	case unitMonth:
		return addMonths(t, n)
	case unitWeek:
		return t.AddDate(0, 0, 7*n)
	default:
		return t.AddDate(0, 0, n)
	}
}

// addMonths clamps the day to the length of the target month, so
// Jan 31 + 1 month is the last day of February rather than early March.
func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	total := int(m) - 1 + n
	year := y + floorDiv(total, 12)
	month := time.Month(total - floorDiv(total, 12)*12 + 1)
	if last := daysIn(year, month); d > last {
		d = last
	}
	return time.Date(year, month, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bsdate

import (
	"strings"
	"time"
)

// Constraints represents constraints on date values such as weekends or
// holidays to exclude. In Nepal the weekend is Saturday and optionally
// Sunday. Holidays are evaluated before weekdays and weekends.
type Constraints struct {
	Weekdays        bool     // If true, include weekdays
	Weekends        bool     // If true, include weekends
	SundayIsWeekend bool     // If true, Sunday is treated as part of the weekend
	Holidays        DateList // If non-empty, exclude these dates
}

func (dc Constraints) String() string {
	var out strings.Builder
	if len(dc.Holidays) > 0 {
		out.WriteString("excluding holidays: ")
		out.WriteString(dc.Holidays.String())
		out.WriteString(": ")
	}
	switch {
	case dc.Weekdays && dc.Weekends:
		out.WriteString("everyday")
	case dc.Weekdays:
		out.WriteString("weekdays only")
	case dc.Weekends:
		out.WriteString("weekends only")
	}
	return out.String()
}

// IsWeekend returns true if d falls on the weekend.
func (dc Constraints) IsWeekend(d Date) bool {
	switch d.Weekday() {
	case time.Saturday:
		return true
	case time.Sunday:
		return dc.SundayIsWeekend
	}
	return false
}

// Include returns true if the given date satisfies the constraints.
// An empty Constraints will return true, ie. include all dates.
func (dc Constraints) Include(d Date) bool {
	if dc.Holidays.Contains(d) {
		return false
	}
	switch {
	case dc.Weekdays && dc.Weekends:
		return true
	case dc.Weekdays:
		return !dc.IsWeekend(d)
	case dc.Weekends:
		return dc.IsWeekend(d)
	}
	return true
}

// Empty returns true if no constraints are set.
func (dc Constraints) Empty() bool {
	return !dc.Weekdays && !dc.Weekends && len(dc.Holidays) == 0
}

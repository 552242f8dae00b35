// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bsdate

import (
	"fmt"
	"iter"
	"strings"
)

// Range represents an inclusive range of dates. A range whose start is
// after its end, or that has a zero start or end, is empty. Ranges are
// values and all operations on them return new ranges.
type Range struct {
	start, end Date
}

// NewRange returns the range from start to end inclusive. It never fails,
// if start is after end the range is empty.
func NewRange(start, end Date) Range {
	return Range{start: start, end: end}
}

// SingleDay returns a range containing only d.
func SingleDay(d Date) Range {
	return Range{start: d, end: d}
}

// FromDayCount returns a range of days days starting at start.
func FromDayCount(start Date, days int) (Range, error) {
	if days < 1 {
		return Range{}, fmt.Errorf("day count must be at least 1, not %d: %w", days, ErrInvalidRange)
	}
	end, err := start.AddDays(days - 1)
	if err != nil {
		return Range{}, err
	}
	return Range{start: start, end: end}, nil
}

// ForMonth returns the range for the specified month.
func ForMonth(year int, month Month) (Range, error) {
	start, err := New(year, month, 1)
	if err != nil {
		return Range{}, err
	}
	return Range{start: start, end: start.MonthEndDate()}, nil
}

// ForFiscalYear returns the range for the specified fiscal year, ie.
// from the 1st of Shrawan of fiscalYear to the end of Ashad of the
// following year.
func ForFiscalYear(fiscalYear int) (Range, error) {
	start, err := FiscalYearStart(fiscalYear)
	if err != nil {
		return Range{}, err
	}
	end, err := FiscalYearEnd(fiscalYear)
	if err != nil {
		return Range{}, err
	}
	return Range{start: start, end: end}, nil
}

// ForCalendarYear returns the range from the 1st of Baishakh to the
// end of Chaitra of the specified year.
func ForCalendarYear(year int) (Range, error) {
	start, err := New(year, Baishakh, 1)
	if err != nil {
		return Range{}, err
	}
	end, err := monthEnd(year, Chaitra)
	if err != nil {
		return Range{}, err
	}
	return Range{start: start, end: end}, nil
}

// CurrentMonth returns the range for the current month.
func CurrentMonth() (Range, error) {
	today, err := Today()
	if err != nil {
		return Range{}, err
	}
	return ForMonth(today.Year(), today.Month())
}

// CurrentFiscalYear returns the range for the current fiscal year.
func CurrentFiscalYear() (Range, error) {
	today, err := Today()
	if err != nil {
		return Range{}, err
	}
	return ForFiscalYear(today.FiscalYear())
}

// CurrentCalendarYear returns the range for the current year.
func CurrentCalendarYear() (Range, error) {
	today, err := Today()
	if err != nil {
		return Range{}, err
	}
	return ForCalendarYear(today.Year())
}

// Start returns the first date in the range.
func (r Range) Start() Date {
	return r.start
}

// End returns the last date in the range.
func (r Range) End() Date {
	return r.end
}

// Empty returns true if the range contains no dates.
func (r Range) Empty() bool {
	return r.start == 0 || r.end == 0 || r.start > r.end
}

// Len returns the number of days in the range.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.end.Sub(r.start) + 1
}

// Equal returns true if r and o contain the same dates, all empty
// ranges are equal.
func (r Range) Equal(o Range) bool {
	if r.Empty() || o.Empty() {
		return r.Empty() && o.Empty()
	}
	return r == o
}

func (r Range) String() string {
	if r.Empty() {
		return "Empty Range"
	}
	return fmt.Sprintf("%s - %s", r.start, r.end)
}

// Parse parses a range in the format '<from>:<to>' where from and to
// are in any format accepted by Parse.
func (r *Range) Parse(val string) error {
	parts := strings.Split(val, ":")
	if len(parts) != 2 {
		return fmt.Errorf("%q expected '<from>:<to>': %w", val, ErrInvalidFormat)
	}
	from, err := Parse(strings.TrimSpace(parts[0]))
	if err != nil {
		return fmt.Errorf("invalid from: %s: %w", parts[0], err)
	}
	to, err := Parse(strings.TrimSpace(parts[1]))
	if err != nil {
		return fmt.Errorf("invalid to: %s: %w", parts[1], err)
	}
	if to < from {
		return fmt.Errorf("from is later than to: %s %s: %w", from, to, ErrInvalidRange)
	}
	*r = Range{start: from, end: to}
	return nil
}

// Contains returns true if d is in the range.
func (r Range) Contains(d Date) bool {
	return !r.Empty() && d >= r.start && d <= r.end
}

// ContainsRange returns true if all of o's dates are in r. An empty
// range is contained by any non-empty range.
func (r Range) ContainsRange(o Range) bool {
	if r.Empty() {
		return false
	}
	if o.Empty() {
		return true
	}
	return o.start >= r.start && o.end <= r.end
}

// Overlaps returns true if r and o have any dates in common.
func (r Range) Overlaps(o Range) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.start <= o.end && r.end >= o.start
}

// IsAdjacentTo returns true if o starts on the day after r ends or
// ends on the day before r starts.
func (r Range) IsAdjacentTo(o Range) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.end.Tomorrow() == o.start || o.end.Tomorrow() == r.start
}

// Intersect returns the dates common to r and o.
func (r Range) Intersect(o Range) Range {
	if !r.Overlaps(o) {
		return Range{}
	}
	return Range{start: max(r.start, o.start), end: min(r.end, o.end)}
}

// Union returns the smallest range that contains both r and o. Note
// that for disjoint ranges this includes the dates between them.
func (r Range) Union(o Range) Range {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return Range{start: min(r.start, o.start), end: max(r.end, o.end)}
}

// Except returns the dates in r that are not in o as zero, one or
// two ranges.
func (r Range) Except(o Range) []Range {
	if r.Empty() || !r.Overlaps(o) {
		return []Range{r}
	}
	if o.ContainsRange(r) {
		return nil
	}
	out := make([]Range, 0, 2)
	if o.start > r.start {
		out = append(out, Range{start: r.start, end: o.start.Yesterday()})
	}
	if o.end < r.end {
		out = append(out, Range{start: o.end.Tomorrow(), end: r.end})
	}
	return out
}

// SplitByMonth returns r split into one range per month.
func (r Range) SplitByMonth() []Range {
	return r.split(func(d Date) Date {
		return d.MonthEndDate()
	})
}

// SplitByFiscalQuarter returns r split into one range per fiscal
// quarter. Quarters end in Ashad, Ashoj, Poush and Chaitra.
func (r Range) SplitByFiscalQuarter() []Range {
	return r.split(func(d Date) Date {
		m := (int(d.Month())-1)/3*3 + 3
		return newDate(d.Year(), Month(m), 1).MonthEndDate()
	})
}

func (r Range) split(periodEnd func(Date) Date) []Range {
	if r.Empty() {
		return nil
	}
	var out []Range
	for cursor := r.start; cursor != 0 && cursor <= r.end; {
		end := min(periodEnd(cursor), r.end)
		out = append(out, Range{start: cursor, end: end})
		cursor = end.Tomorrow()
	}
	return out
}

// Dates returns an iterator that yields each date in the range. Note
// that multi-year ranges contain many dates.
func (r Range) Dates() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		if r.Empty() {
			return
		}
		for td := r.start; td != 0 && td <= r.end; td = td.Tomorrow() {
			if !yield(td) {
				return
			}
		}
	}
}

// DatesWithInterval returns an iterator that yields every interval'th
// date in the range starting with the first.
func (r Range) DatesWithInterval(interval int) (iter.Seq[Date], error) {
	if interval < 1 {
		return nil, fmt.Errorf("interval must be at least 1, not %d: %w", interval, ErrInvalidRange)
	}
	return func(yield func(Date) bool) {
		if r.Empty() {
			return
		}
		for td := r.start; td <= r.end; {
			if !yield(td) {
				return
			}
			next, err := td.AddDays(interval)
			if err != nil {
				return
			}
			td = next
		}
	}, nil
}

// DatesConstrained returns an iterator that yields each date in the
// range that satisfies the supplied constraints.
func (r Range) DatesConstrained(dc Constraints) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for td := range r.Dates() {
			if !dc.Include(td) {
				continue
			}
			if !yield(td) {
				return
			}
		}
	}
}

// RangesConstrained returns an iterator that yields each contiguous
// sub-range of dates that satisfy the supplied constraints.
func (r Range) RangesConstrained(dc Constraints) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		var start, stop Date
		inrange := false
		for td := range r.Dates() {
			if !dc.Include(td) {
				if inrange {
					if !yield(Range{start: start, end: stop}) {
						return
					}
				}
				inrange = false
				continue
			}
			if !inrange {
				start = td
				inrange = true
			}
			stop = td
		}
		if inrange {
			yield(Range{start: start, end: stop})
		}
	}
}

// WorkingDays returns an iterator over the working days in the range.
// Saturdays are always excluded and Sundays are excluded if
// excludeSunday is true.
func (r Range) WorkingDays(excludeSunday bool) iter.Seq[Date] {
	return r.DatesConstrained(Constraints{Weekdays: true, SundayIsWeekend: excludeSunday})
}

// WeekendDays returns an iterator over the Saturdays, and if
// includeSunday is true, Sundays, in the range.
func (r Range) WeekendDays(includeSunday bool) iter.Seq[Date] {
	return r.DatesConstrained(Constraints{Weekends: true, SundayIsWeekend: includeSunday})
}

// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bsdate

import (
	"cmp"
	"fmt"
	"math"
	"time"

	"cloudeng.io/bsdate/calendar"
)

// averageMonthLength is used to approximate fractional months as days.
const averageMonthLength = 30.41666666666667

// AddDays returns the date n days after d, n may be negative. The
// arithmetic is performed on the equivalent Gregorian date.
func (d Date) AddDays(n int) (Date, error) {
	if d == 0 {
		return 0, fmt.Errorf("zero date: %w", ErrInvalidDate)
	}
	return FromTime(d.Gregorian().AddDate(0, 0, n))
}

// Add returns the date obtained by adding dur to midnight of d. Any
// sub-day component of the result is dropped, so that adding -1 hour
// yields the previous day.
func (d Date) Add(dur time.Duration) (Date, error) {
	if d == 0 {
		return 0, fmt.Errorf("zero date: %w", ErrInvalidDate)
	}
	return FromTime(d.Gregorian().Add(dur))
}

// Tomorrow returns the day after d, or the zero Date if that day is
// not covered by the conversion table.
func (d Date) Tomorrow() Date {
	if d.Day() < d.MonthEndDay() {
		return d + 1
	}
	year, month := d.Year(), d.Month()+1
	if month > Chaitra {
		year, month = year+1, Baishakh
	}
	if _, err := calendar.MonthLength(year, int(month)); err != nil {
		return 0
	}
	return newDate(year, month, 1)
}

// Yesterday returns the day before d, or the zero Date if that day is
// not covered by the conversion table.
func (d Date) Yesterday() Date {
	if d.Day() > 1 {
		return d - 1
	}
	year, month := d.Year(), d.Month()-1
	if month < Baishakh {
		year, month = year-1, Chaitra
	}
	length, err := calendar.MonthLength(year, int(month))
	if err != nil {
		return 0
	}
	return newDate(year, month, length)
}

// maxMonths is the number of months in the supported range of years.
const maxMonths = (calendar.MaxYear - calendar.MinYear + 1) * 12

func monthsOutOfRange(d Date, n int) error {
	return fmt.Errorf("%v: %d months is outside of the supported range: %w", d, n, ErrOutOfRange)
}

// AddMonths returns the date n months after d, n may be negative. If d's
// day does not exist in the target month then it is either clamped to
// the last day of the target month or, if awayFromMonthEnd is true, the
// excess days overflow into the following month. For example, 2081/04/32
// plus 5 months is 2081/09/29 when clamped and 2081/10/03 otherwise.
func (d Date) AddMonths(n int, awayFromMonthEnd bool) (Date, error) {
	if n < -maxMonths || n > maxMonths {
		return 0, monthsOutOfRange(d, n)
	}
	total := d.Year()*12 + int(d.Month()) - 1 + n
	if total < 0 {
		return 0, monthsOutOfRange(d, n)
	}
	return d.withDayIn(total/12, Month(total%12+1), awayFromMonthEnd)
}

// SubtractMonths returns the date n months before d. The end of month
// policy is the same as for AddMonths, in particular, overflowing days
// are always carried forward into the month following the target month.
func (d Date) SubtractMonths(n int, awayFromMonthEnd bool) (Date, error) {
	if n < -maxMonths || n > maxMonths {
		return 0, monthsOutOfRange(d, n)
	}
	return d.AddMonths(-n, awayFromMonthEnd)
}

func (d Date) withDayIn(year int, month Month, awayFromMonthEnd bool) (Date, error) {
	target, err := New(year, month, 1)
	if err != nil {
		return 0, err
	}
	day, length := d.Day(), target.MonthEndDay()
	if day <= length {
		return New(year, month, day)
	}
	if !awayFromMonthEnd {
		return New(year, month, length)
	}
	month++
	if month > Chaitra {
		year, month = year+1, Baishakh
	}
	return New(year, month, day-length)
}

// AddFractionalMonths is like AddMonths for integral values of months.
// Fractional values are approximated using an average month length of
// 30.41666666666667 days, rounded to the nearest day with ties rounded
// away from zero.
func (d Date) AddFractionalMonths(months float64, awayFromMonthEnd bool) (Date, error) {
	if math.IsNaN(months) || math.Abs(months) > maxMonths {
		return 0, fmt.Errorf("%v: %v months is outside of the supported range: %w", d, months, ErrOutOfRange)
	}
	if months == math.Trunc(months) {
		return d.AddMonths(int(months), awayFromMonthEnd)
	}
	return d.AddDays(int(math.Round(months * averageMonthLength)))
}

// Sub returns the number of days between d and other, ie. d - other.
func (d Date) Sub(other Date) int {
	return int(d.Gregorian().Sub(other.Gregorian()) / (24 * time.Hour))
}

// Compare returns -1, 0 or +1 depending on whether d is before,
// equal to or after other.
func (d Date) Compare(other Date) int {
	return cmp.Compare(d, other)
}

// Before returns true if d is before other.
func (d Date) Before(other Date) bool {
	return d < other
}

// After returns true if d is after other.
func (d Date) After(other Date) bool {
	return d > other
}

// Equal returns true if d and other are the same date.
func (d Date) Equal(other Date) bool {
	return d == other
}

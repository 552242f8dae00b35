// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"time"
)

func (t *Table) nepaliIndex(year, month int) (int, bool) {
	if month < 1 || month > 12 || year < t.first || year > t.last {
		return 0, false
	}
	return (year-t.first)*12 + month - 1, true
}

func (t *Table) gregorianIndex(year int, month time.Month) (int, bool) {
	if month < time.January || month > time.December {
		return 0, false
	}
	idx := (year-t.gfirst)*12 + int(month) - 1
	if idx < 0 || idx >= len(t.gregorian) || t.gregorian[idx].length == 0 {
		return 0, false
	}
	return idx, true
}

// MonthLength returns the number of days in the specified Nepali month.
func (t *Table) MonthLength(year, month int) (int, error) {
	idx, ok := t.nepaliIndex(year, month)
	if !ok {
		return 0, fmt.Errorf("%04d/%02d: %w", year, month, ErrOutOfRange)
	}
	return t.nepali[idx].length, nil
}

// YearLength returns the number of days in the specified Nepali year.
func (t *Table) YearLength(year int) (int, error) {
	if !t.Contains(year) {
		return 0, fmt.Errorf("%04d: %w", year, ErrOutOfRange)
	}
	n := 0
	for m := range 12 {
		n += t.nepali[(year-t.first)*12+m].length
	}
	return n, nil
}

// NepaliToGregorian returns the Gregorian date, as midnight UTC, for the
// specified Nepali date. The anchor for the month is its last day so
// the result is obtained by subtracting the number of days remaining
// in the month from the anchor.
func (t *Table) NepaliToGregorian(year, month, day int) (time.Time, error) {
	idx, ok := t.nepaliIndex(year, month)
	if !ok {
		return time.Time{}, fmt.Errorf("%v: %w", YMD{year, month, day}, ErrOutOfRange)
	}
	a := t.nepali[idx]
	if day < 1 || day > a.length {
		return time.Time{}, fmt.Errorf("%v: day must be in the range 1-%d: %w", YMD{year, month, day}, a.length, ErrInvalidDate)
	}
	return a.gregorian.AddDate(0, 0, day-a.length), nil
}

// GregorianToNepali returns the Nepali date for the specified Gregorian
// date. Gregorian months that are not covered by the table result
// in ErrOutOfRange.
func (t *Table) GregorianToNepali(year int, month time.Month, day int) (YMD, error) {
	idx, ok := t.gregorianIndex(year, month)
	if !ok {
		return YMD{}, fmt.Errorf("%04d-%02d-%02d: %w", year, month, day, ErrOutOfRange)
	}
	a := t.gregorian[idx]
	if day < 1 || day > a.length {
		return YMD{}, fmt.Errorf("%04d-%02d-%02d: %w", year, month, day, ErrInvalidDate)
	}
	ymd, err := t.SubtractNepaliDays(a.nepali, a.length-day)
	if err != nil {
		return YMD{}, err
	}
	if !t.Contains(ymd.Year) {
		return YMD{}, fmt.Errorf("%04d-%02d-%02d: %w", year, month, day, ErrOutOfRange)
	}
	return ymd, nil
}

// FromTime is like GregorianToNepali but for a time.Time, it uses the
// calendar date of when in its own location.
func (t *Table) FromTime(when time.Time) (YMD, error) {
	y, m, d := when.Date()
	return t.GregorianToNepali(y, m, d)
}

// SubtractNepaliDays subtracts n (>= 0) days from the specified date.
// Whenever the subtraction would move before the start of the current
// month the previous month's length is looked up and added in, so
// that variable month lengths are handled without a formula.
func (t *Table) SubtractNepaliDays(date YMD, n int) (YMD, error) {
	if n < 0 {
		return YMD{}, fmt.Errorf("negative day count %d: %w", n, ErrInvalidDate)
	}
	for date.Day-n <= 0 {
		date.Month--
		if date.Month < 1 {
			date.Month = 12
			date.Year--
		}
		length, err := t.MonthLength(date.Year, date.Month)
		if err != nil {
			return YMD{}, err
		}
		date.Day += length
	}
	date.Day -= n
	return date, nil
}

// MonthLength calls Default().MonthLength.
func MonthLength(year, month int) (int, error) {
	return Default().MonthLength(year, month)
}

// NepaliToGregorian calls Default().NepaliToGregorian.
func NepaliToGregorian(year, month, day int) (time.Time, error) {
	return Default().NepaliToGregorian(year, month, day)
}

// GregorianToNepali calls Default().GregorianToNepali.
func GregorianToNepali(year int, month time.Month, day int) (YMD, error) {
	return Default().GregorianToNepali(year, month, day)
}

// SubtractNepaliDays calls Default().SubtractNepaliDays.
func SubtractNepaliDays(date YMD, n int) (YMD, error) {
	return Default().SubtractNepaliDays(date, n)
}

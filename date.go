// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bsdate provides a Bikram Sambat (Nepali) calendar date type,
// conversion to and from the Gregorian calendar, date arithmetic that
// includes the Nepali fiscal year, and ranges of dates with set
// operations and iterators.
//
// All conversions are performed using the tables in the calendar package.
package bsdate

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/bsdate/calendar"
)

// Date represents a Bikram Sambat date packed as year<<16 | month<<8 | day
// so that Date values can be compared directly using ==, < etc, the
// ordering being that of the (year, month, day) triple. The zero
// value is not a valid date and is returned, along with an error,
// by all of the constructors on failure.
type Date uint32

const (
	// MinValue is the earliest date that can be represented. Only dates
	// covered by the current conversion table, see calendar.Default, can
	// be constructed or converted, and the bundled table starts at 2000.
	MinValue = Date(calendar.MinYear<<16 | 1<<8 | 1)
	// MaxValue is the latest date that can be represented. The bundled
	// conversion table ends with 2083, use calendar.SetDefault with a
	// larger table to work with later dates.
	MaxValue = Date(calendar.MaxYear<<16 | 12<<8 | 30)
)

func newDate(year int, month Month, day int) Date {
	return Date(uint32(year)<<16 | uint32(month)<<8 | uint32(day))
}

func errorf(year int, month Month, day int, format string, args ...any) error {
	return fmt.Errorf("%04d/%02d/%02d: "+format, append([]any{year, int(month), day}, args...)...)
}

// New returns the Date for the specified year, month and day.
func New(year int, month Month, day int) (Date, error) {
	if year < calendar.MinYear || year > calendar.MaxYear {
		return 0, errorf(year, month, day, "year must be in the range %d-%d: %w", calendar.MinYear, calendar.MaxYear, ErrOutOfRange)
	}
	if !month.valid() {
		return 0, errorf(year, month, day, "month must be in the range 1-12: %w", ErrInvalidDate)
	}
	length, err := calendar.MonthLength(year, int(month))
	if err != nil {
		return 0, err
	}
	if day < 1 || day > length {
		return 0, errorf(year, month, day, "day must be in the range 1-%d: %w", length, ErrInvalidDate)
	}
	return newDate(year, month, day), nil
}

// MustNew is like New but panics on error.
func MustNew(year int, month Month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime returns the Date for the calendar date of t in t's location.
func FromTime(t time.Time) (Date, error) {
	ymd, err := calendar.Default().FromTime(t)
	if err != nil {
		return 0, err
	}
	return newDate(ymd.Year, Month(ymd.Month), ymd.Day), nil
}

// Today returns the current date in the local time zone. It returns
// an error wrapping ErrOutOfRange once the current date is no longer
// covered by the conversion table.
func Today() (Date, error) {
	return FromTime(time.Now())
}

// IsToday returns true if d is today's date.
func (d Date) IsToday() bool {
	return d.offsetFromToday(0)
}

// IsYesterday returns true if d is yesterday's date.
func (d Date) IsYesterday() bool {
	return d.offsetFromToday(-1)
}

// IsTomorrow returns true if d is tomorrow's date.
func (d Date) IsTomorrow() bool {
	return d.offsetFromToday(1)
}

func (d Date) offsetFromToday(days int) bool {
	today, err := FromTime(time.Now().AddDate(0, 0, days))
	return err == nil && today == d
}

const separators = "-/._\\ "

func isSeparator(r rune) bool {
	return strings.ContainsRune(separators, r)
}

func parseFields(val string) (year, month, day int, err error) {
	parts := strings.FieldsFunc(val, isSeparator)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%q: expected year, month and day: %w", val, ErrInvalidFormat)
	}
	var n [3]int
	for i, p := range parts {
		if n[i], err = strconv.Atoi(p); err != nil {
			return 0, 0, 0, fmt.Errorf("%q: non-numeric component %q: %w", val, p, ErrInvalidFormat)
		}
	}
	return n[0], n[1], n[2], nil
}

// Parse parses a date of the form year, month and day separated by
// any of '-', '/', '.', '_', '\' or space, eg. 2080/05/15 or 2080-5-15.
func Parse(val string) (Date, error) {
	year, month, day, err := parseFields(val)
	if err != nil {
		return 0, err
	}
	return New(year, Month(month), day)
}

// Parse is like the package level Parse function.
func (d *Date) Parse(val string) error {
	nd, err := Parse(val)
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// ParseAutoAdjust parses a date with three numeric components in an
// unknown order. The following adjustments are applied in turn:
//
//  1. if the last component has three or more digits, or is greater
//     than 32, it is taken to be the year and swapped with the first.
//  2. if monthInMiddle is false, the month and day are swapped.
//  3. if the month is greater than 12 and the day less than 12 they are
//     swapped.
//  4. a year of three or fewer digits is assumed to be in the current
//     millennium, ie. 80 is read as 2080. This is a heuristic, years
//     such as 1999 cannot be written in short form.
func ParseAutoAdjust(val string, monthInMiddle bool) (Date, error) {
	year, month, day, err := parseFields(val)
	if err != nil {
		return 0, err
	}
	if day > 32 || len(strconv.Itoa(day)) >= 3 {
		year, day = day, year
	}
	if !monthInMiddle {
		month, day = day, month
	}
	if month > 12 && day < 12 {
		month, day = day, month
	}
	if year >= 0 && year <= 999 {
		year += 2000
	}
	return New(year, Month(month), day)
}

// TryParse is like Parse but returns false rather than an error.
func TryParse(val string) (Date, bool) {
	d, err := Parse(val)
	return d, err == nil
}

// Year returns the year.
func (d Date) Year() int {
	return int(d >> 16)
}

// Month returns the month.
func (d Date) Month() Month {
	return Month(d >> 8 & 0xff)
}

// Day returns the day of the month.
func (d Date) Day() int {
	return int(d & 0xff)
}

// IsZero returns true for the zero value.
func (d Date) IsZero() bool {
	return d == 0
}

// Gregorian returns the equivalent Gregorian date as midnight UTC. The zero
// time.Time is returned for the zero Date.
func (d Date) Gregorian() time.Time {
	g, err := d.ToGregorian()
	if err != nil {
		return time.Time{}
	}
	return g
}

// ToGregorian is like Gregorian but returns an error for the zero Date
// or for a date no longer covered by the default table.
func (d Date) ToGregorian() (time.Time, error) {
	if d.IsZero() {
		return time.Time{}, fmt.Errorf("zero date: %w", ErrInvalidDate)
	}
	return calendar.NepaliToGregorian(d.Year(), int(d.Month()), d.Day())
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.Gregorian().Weekday()
}

// DayOfYear returns the day of the year, 1 for the 1st of Baishakh.
func (d Date) DayOfYear() int {
	first := newDate(d.Year(), Baishakh, 1)
	return d.Sub(first) + 1
}

// MonthEndDay returns the number of days in d's month.
func (d Date) MonthEndDay() int {
	n, _ := calendar.MonthLength(d.Year(), int(d.Month()))
	return n
}

// MonthEndDate returns the last day of d's month.
func (d Date) MonthEndDate() Date {
	return newDate(d.Year(), d.Month(), d.MonthEndDay())
}

// MonthStartDate returns the first day of d's month.
func (d Date) MonthStartDate() Date {
	return newDate(d.Year(), d.Month(), 1)
}

// IsLeapYear applies the Gregorian leap year rule to d's year.
func (d Date) IsLeapYear() bool {
	y := d.Year()
	return y%4 == 0 && y%100 != 0 || y%400 == 0
}

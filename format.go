// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bsdate

import (
	"fmt"
	"strconv"
	"strings"
)

// Layout specifies the order of the year, month and day when formatting
// a date.
type Layout int

const (
	YearMonthDay Layout = iota
	YearDayMonth
	MonthYearDay
	MonthDayYear
	DayYearMonth
	DayMonthYear
)

var layoutNames = []string{"ymd", "ydm", "myd", "mdy", "dym", "dmy"}

func (l Layout) String() string {
	if l < YearMonthDay || l > DayMonthYear {
		return fmt.Sprintf("Layout(%d)", int(l))
	}
	return layoutNames[l]
}

// Parse parses a layout name such as "ymd" or "dmy".
func (l *Layout) Parse(val string) error {
	for i, n := range layoutNames {
		if strings.EqualFold(val, n) {
			*l = Layout(i)
			return nil
		}
	}
	return fmt.Errorf("unknown layout %q, expected one of %s", val, strings.Join(layoutNames, ", "))
}

// Separator is the character used to separate the year, month and day.
type Separator rune

const (
	ForwardSlash  Separator = '/'
	BackwardSlash Separator = '\\'
	Dot           Separator = '.'
	Underscore    Separator = '_'
	Dash          Separator = '-'
	Space         Separator = ' '
)

// Valid returns true for the supported separators.
func (s Separator) Valid() bool {
	return strings.ContainsRune(separators, rune(s))
}

type formatOptions struct {
	noLeadingZeros bool
	monthName      bool
	devanagari     bool
	dayName        bool
	noYear         bool
}

// FormatOption represents an option to Format and LongDate.
type FormatOption func(*formatOptions)

// WithoutLeadingZeros suppresses the zero padding of the year, month
// and day.
func WithoutLeadingZeros() FormatOption {
	return func(o *formatOptions) {
		o.noLeadingZeros = true
	}
}

// WithMonthName displays the month by name rather than number.
func WithMonthName() FormatOption {
	return func(o *formatOptions) {
		o.monthName = true
	}
}

// WithDevanagari displays digits, month names and day names in
// Devanagari script.
func WithDevanagari() FormatOption {
	return func(o *formatOptions) {
		o.devanagari = true
	}
}

// WithDayName includes the name of the weekday, it applies only to
// LongDate.
func WithDayName() FormatOption {
	return func(o *formatOptions) {
		o.dayName = true
	}
}

// WithoutYear omits the year, it applies only to LongDate.
func WithoutYear() FormatOption {
	return func(o *formatOptions) {
		o.noYear = true
	}
}

// String returns the date in YYYY/MM/DD format.
func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year(), int(d.Month()), d.Day())
}

// Devanagari returns the date in YYYY/MM/DD format using Devanagari digits.
func (d Date) Devanagari() string {
	return ToDevanagariDigits(d.String())
}

func (d Date) components(o formatOptions) (year, month, day string) {
	if o.noLeadingZeros {
		year, month, day = strconv.Itoa(d.Year()), strconv.Itoa(int(d.Month())), strconv.Itoa(d.Day())
	} else {
		year, month, day = fmt.Sprintf("%04d", d.Year()), fmt.Sprintf("%02d", int(d.Month())), fmt.Sprintf("%02d", d.Day())
	}
	if o.monthName {
		month = d.Month().String()
		if o.devanagari {
			month = d.Month().Devanagari()
		}
	}
	if o.devanagari {
		year, month, day = ToDevanagariDigits(year), ToDevanagariDigits(month), ToDevanagariDigits(day)
	}
	return
}

// Format returns d formatted according to the specified layout and
// separator. Invalid layouts are treated as YearMonthDay and invalid
// separators as ForwardSlash.
func (d Date) Format(layout Layout, sep Separator, opts ...FormatOption) string {
	var o formatOptions
	for _, fn := range opts {
		fn(&o)
	}
	if !sep.Valid() {
		sep = ForwardSlash
	}
	y, m, dd := d.components(o)
	var parts [3]string
	switch layout {
	case YearDayMonth:
		parts = [3]string{y, dd, m}
	case MonthYearDay:
		parts = [3]string{m, y, dd}
	case MonthDayYear:
		parts = [3]string{m, dd, y}
	case DayYearMonth:
		parts = [3]string{dd, y, m}
	case DayMonthYear:
		parts = [3]string{dd, m, y}
	default:
		parts = [3]string{y, m, dd}
	}
	return strings.Join(parts[:], string(sep))
}

// LongDate returns d in the form "Bhadra 15, 2080", optionally
// prefixed by the weekday name, eg. "Friday, Bhadra 15, 2080".
func (d Date) LongDate(opts ...FormatOption) string {
	o := formatOptions{monthName: true}
	for _, fn := range opts {
		fn(&o)
	}
	o.monthName = true
	y, m, dd := d.components(o)
	var out strings.Builder
	if o.dayName {
		if o.devanagari {
			out.WriteString(WeekdayName(d.Weekday()))
		} else {
			out.WriteString(d.Weekday().String())
		}
		out.WriteString(", ")
	}
	out.WriteString(m)
	out.WriteByte(' ')
	out.WriteString(dd)
	if !o.noYear {
		out.WriteString(", ")
		out.WriteString(y)
	}
	return out.String()
}

const devanagariZero = '०'

// ToDevanagariDigits replaces the ASCII digits in val with their
// Devanagari equivalents.
func ToDevanagariDigits(val string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return devanagariZero + (r - '0')
		}
		return r
	}, val)
}

// FromDevanagariDigits replaces the Devanagari digits in val with their
// ASCII equivalents.
func FromDevanagariDigits(val string) string {
	return strings.Map(func(r rune) rune {
		if r >= devanagariZero && r <= devanagariZero+9 {
			return '0' + (r - devanagariZero)
		}
		return r
	}, val)
}

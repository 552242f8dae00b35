// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides the Bikram Sambat conversion tables and the
// anchor based engine used to convert dates between the Bikram Sambat
// and Gregorian calendars.
//
// Bikram Sambat month lengths (29 to 32 days) follow no closed form rule
// and are driven entirely by a table of per-year month lengths. Two
// direction specific anchor tables are derived from that data, each keyed
// by (year, month) and recording the date, in the other calendar, of the
// last day of that month. Conversion is a single lookup plus an offset,
// never a day by day walk.
package calendar

import (
	_ "embed"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"cloudeng.io/cmdutil"
)

const (
	// MinYear is the earliest Bikram Sambat year that can be supported.
	MinYear = 1901
	// MaxYear is the latest Bikram Sambat year that can be supported.
	MaxYear = 2199

	minMonthLength = 29
	maxMonthLength = 32
)

var (
	// ErrOutOfRange is returned for dates that are outside of the supported
	// range of years or are not present in the conversion table.
	ErrOutOfRange = errors.New("date out of supported range")
	// ErrInvalidDate is returned for well formed dates whose month or day
	// are not valid.
	ErrInvalidDate = errors.New("invalid date")
)

// YMD represents a Bikram Sambat year, month and day.
type YMD struct {
	Year, Month, Day int
}

func (d YMD) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// YearSpec is the number of days in each month of a single year.
type YearSpec struct {
	Year   int   `yaml:"year"`
	Months []int `yaml:"months"`
}

// Spec is the serialized form of a conversion table. Epoch is the
// Gregorian date, in YYYY-MM-DD format, of the first day of the first
// listed year. Years must be contiguous.
type Spec struct {
	Epoch string     `yaml:"epoch"`
	Years []YearSpec `yaml:"years"`
}

type nepaliAnchor struct {
	length    int
	gregorian time.Time // last day of the Nepali month.
}

type gregorianAnchor struct {
	length int
	nepali YMD // last day of the Gregorian month.
}

// Table contains the Nepali and Gregorian keyed anchor tables. A Table is
// immutable once created and is safe for concurrent use.
type Table struct {
	epoch       time.Time
	end         time.Time
	first, last int
	nepali      []nepaliAnchor
	gfirst      int
	gregorian   []gregorianAnchor
}

//go:embed data/bs.yaml
var bsTable []byte

var defaultTable atomic.Pointer[Table]

func init() {
	t, err := ParseTable(bsTable)
	if err != nil {
		panic(fmt.Sprintf("calendar: failed to parse embedded table: %v", err))
	}
	defaultTable.Store(t)
}

// Default returns the process wide default table.
func Default() *Table {
	return defaultTable.Load()
}

// SetDefault replaces the process wide default table. It is intended
// to be called once, typically from main, before any conversions are
// performed.
func SetDefault(t *Table) {
	if t != nil {
		defaultTable.Store(t)
	}
}

// ParseTable parses a YAML table specification.
func ParseTable(data []byte) (*Table, error) {
	var spec Spec
	if err := cmdutil.ParseYAMLConfig(data, &spec); err != nil {
		return nil, err
	}
	return NewTable(spec)
}

// LoadTable reads a YAML table specification from filename.
func LoadTable(filename string) (*Table, error) {
	var spec Spec
	if err := cmdutil.ParseYAMLConfigFile(filename, &spec); err != nil {
		return nil, err
	}
	t, err := NewTable(spec)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	return t, nil
}

// NewTable validates spec and builds both anchor tables from it.
func NewTable(spec Spec) (*Table, error) {
	epoch, err := time.Parse(time.DateOnly, spec.Epoch)
	if err != nil {
		return nil, fmt.Errorf("invalid epoch %q: %w", spec.Epoch, err)
	}
	if len(spec.Years) == 0 {
		return nil, fmt.Errorf("no years specified")
	}
	t := &Table{
		epoch: epoch,
		first: spec.Years[0].Year,
		last:  spec.Years[len(spec.Years)-1].Year,
	}
	if t.first < MinYear || t.last > MaxYear {
		return nil, fmt.Errorf("years %d-%d outside of %d-%d", t.first, t.last, MinYear, MaxYear)
	}
	t.nepali = make([]nepaliAnchor, 0, len(spec.Years)*12)
	cursor := epoch
	for i, ys := range spec.Years {
		if ys.Year != t.first+i {
			return nil, fmt.Errorf("years are not contiguous: expected %d, got %d", t.first+i, ys.Year)
		}
		if len(ys.Months) != 12 {
			return nil, fmt.Errorf("year %d: expected 12 months, got %d", ys.Year, len(ys.Months))
		}
		for m, length := range ys.Months {
			if length < minMonthLength || length > maxMonthLength {
				return nil, fmt.Errorf("year %d, month %d: invalid length %d", ys.Year, m+1, length)
			}
			lastDay := cursor.AddDate(0, 0, length-1)
			t.nepali = append(t.nepali, nepaliAnchor{length: length, gregorian: lastDay})
			cursor = lastDay.AddDate(0, 0, 1)
		}
	}
	t.end = cursor.AddDate(0, 0, -1)
	t.deriveGregorian()
	return t, nil
}

// deriveGregorian builds the Gregorian keyed anchors. Every Gregorian month
// that overlaps the table gets an anchor. For the final, partially covered,
// month the anchor is expressed as a day count past the end of the table so
// that the subtraction in GregorianToNepali still lands on the correct date.
func (t *Table) deriveGregorian() {
	t.gfirst = t.epoch.Year()
	glast := t.end.Year()
	t.gregorian = make([]gregorianAnchor, (glast-t.gfirst+1)*12)
	i := 0
	for g := monthEnd(t.epoch.Year(), t.epoch.Month()); ; g = monthEnd(g.Year(), g.Month()+1) {
		idx := (g.Year()-t.gfirst)*12 + int(g.Month()) - 1
		if g.After(t.end) {
			if firstOfMonth(g).After(t.end) {
				return
			}
			t.gregorian[idx] = gregorianAnchor{
				length: g.Day(),
				nepali: YMD{Year: t.last + 1, Month: 1, Day: daysBetween(t.end, g)},
			}
			return
		}
		for t.nepali[i].gregorian.Before(g) {
			i++
		}
		a := t.nepali[i]
		t.gregorian[idx] = gregorianAnchor{
			length: g.Day(),
			nepali: YMD{
				Year:  t.first + i/12,
				Month: i%12 + 1,
				Day:   a.length - daysBetween(g, a.gregorian),
			},
		}
	}
}

func monthEnd(year int, month time.Month) time.Time {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}

// Years returns the first and last Bikram Sambat years in the table.
func (t *Table) Years() (first, last int) {
	return t.first, t.last
}

// Contains returns true if year is present in the table.
func (t *Table) Contains(year int) bool {
	return year >= t.first && year <= t.last
}

// GregorianRange returns the first and last Gregorian dates covered
// by the table.
func (t *Table) GregorianRange() (first, last time.Time) {
	return t.epoch, t.end
}

// Spec returns the serializable form of the table.
func (t *Table) Spec() Spec {
	spec := Spec{Epoch: t.epoch.Format(time.DateOnly)}
	for y := t.first; y <= t.last; y++ {
		ys := YearSpec{Year: y, Months: make([]int, 12)}
		for m := range 12 {
			ys.Months[m] = t.nepali[(y-t.first)*12+m].length
		}
		spec.Years = append(spec.Years, ys)
	}
	return spec
}

// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bsdate

import "fmt"

// The Nepali fiscal year starts on the 1st of Shrawan and ends on the
// last day of Ashad in the following year.
const fiscalYearStartMonth = Shrawan

// Quarter is a quarter of the fiscal year. Its value is the first month
// of the quarter.
type Quarter int

const (
	// CurrentQuarter refers to the quarter containing a given date.
	CurrentQuarter Quarter = 0
	FirstQuarter   Quarter = Quarter(Shrawan)
	SecondQuarter  Quarter = Quarter(Kartik)
	ThirdQuarter   Quarter = Quarter(Magh)
	FourthQuarter  Quarter = Quarter(Baishakh)
)

func (q Quarter) String() string {
	switch q {
	case CurrentQuarter:
		return "Current"
	case FirstQuarter:
		return "Q1"
	case SecondQuarter:
		return "Q2"
	case ThirdQuarter:
		return "Q3"
	case FourthQuarter:
		return "Q4"
	}
	return fmt.Sprintf("Quarter(%d)", int(q))
}

// QuarterOf returns the fiscal quarter that month falls in.
func QuarterOf(month Month) (Quarter, error) {
	switch month {
	case Shrawan, Bhadra, Ashoj:
		return FirstQuarter, nil
	case Kartik, Mangsir, Poush:
		return SecondQuarter, nil
	case Magh, Falgun, Chaitra:
		return ThirdQuarter, nil
	case Baishakh, Jestha, Ashad:
		return FourthQuarter, nil
	}
	return CurrentQuarter, fmt.Errorf("month %d: %w", int(month), ErrInvalidDate)
}

// FiscalYearQuarter returns the fiscal quarter containing d.
func (d Date) FiscalYearQuarter() (Quarter, error) {
	return QuarterOf(d.Month())
}

// FiscalYear returns the year in which the fiscal year containing d
// started, eg. 2080 for 2081/02/01.
func (d Date) FiscalYear() int {
	if d.Month() < fiscalYearStartMonth {
		return d.Year() - 1
	}
	return d.Year()
}

// FiscalYearStartDate returns the first day of the fiscal year containing
// d, offset by yearOffset fiscal years.
func (d Date) FiscalYearStartDate(yearOffset int) (Date, error) {
	return FiscalYearStart(d.FiscalYear() + yearOffset)
}

// FiscalYearEndDate returns the last day of the fiscal year containing
// d, offset by yearOffset fiscal years.
func (d Date) FiscalYearEndDate(yearOffset int) (Date, error) {
	return FiscalYearEnd(d.FiscalYear() + yearOffset)
}

// FiscalYearStartAndEndDate returns both FiscalYearStartDate and
// FiscalYearEndDate.
func (d Date) FiscalYearStartAndEndDate(yearOffset int) (start, end Date, err error) {
	if start, err = d.FiscalYearStartDate(yearOffset); err != nil {
		return
	}
	end, err = d.FiscalYearEndDate(yearOffset)
	return
}

func (d Date) quarterYear(q Quarter, yearOffset int) (int, Quarter, error) {
	if q == CurrentQuarter {
		cq, err := d.FiscalYearQuarter()
		if err != nil {
			return 0, q, err
		}
		q = cq
	}
	return quarterYear(d.FiscalYear()+yearOffset, q)
}

// quarterYear returns the calendar year in which quarter q of the fiscal
// year fiscalYear falls.
func quarterYear(fiscalYear int, q Quarter) (int, Quarter, error) {
	switch q {
	case FirstQuarter, SecondQuarter, ThirdQuarter:
		return fiscalYear, q, nil
	case FourthQuarter:
		return fiscalYear + 1, q, nil
	}
	return 0, q, fmt.Errorf("%v: %w", q, ErrInvalidDate)
}

// FiscalYearQuarterStartDate returns the first day of the quarter q of
// the fiscal year containing d, offset by yearOffset fiscal years.
// CurrentQuarter refers to the quarter containing d.
func (d Date) FiscalYearQuarterStartDate(q Quarter, yearOffset int) (Date, error) {
	year, q, err := d.quarterYear(q, yearOffset)
	if err != nil {
		return 0, err
	}
	return New(year, Month(q), 1)
}

// FiscalYearQuarterEndDate returns the last day of the quarter q of
// the fiscal year containing d, offset by yearOffset fiscal years.
func (d Date) FiscalYearQuarterEndDate(q Quarter, yearOffset int) (Date, error) {
	year, q, err := d.quarterYear(q, yearOffset)
	if err != nil {
		return 0, err
	}
	return monthEnd(year, Month(q)+2)
}

// FiscalYearQuarterStartAndEndDate returns both FiscalYearQuarterStartDate
// and FiscalYearQuarterEndDate.
func (d Date) FiscalYearQuarterStartAndEndDate(q Quarter, yearOffset int) (start, end Date, err error) {
	if start, err = d.FiscalYearQuarterStartDate(q, yearOffset); err != nil {
		return
	}
	end, err = d.FiscalYearQuarterEndDate(q, yearOffset)
	return
}

func monthEnd(year int, month Month) (Date, error) {
	first, err := New(year, month, 1)
	if err != nil {
		return 0, err
	}
	return first.MonthEndDate(), nil
}

// FiscalYearStart returns the first day of the specified fiscal year.
func FiscalYearStart(fiscalYear int) (Date, error) {
	return New(fiscalYear, fiscalYearStartMonth, 1)
}

// FiscalYearEnd returns the last day of the specified fiscal year.
func FiscalYearEnd(fiscalYear int) (Date, error) {
	return monthEnd(fiscalYear+1, fiscalYearStartMonth-1)
}

// FiscalQuarterStart returns the first day of the quarter, within
// the specified fiscal year, that contains month.
func FiscalQuarterStart(fiscalYear int, month Month) (Date, error) {
	q, err := QuarterOf(month)
	if err != nil {
		return 0, err
	}
	year, _, _ := quarterYear(fiscalYear, q)
	return New(year, Month(q), 1)
}

// FiscalQuarterEnd returns the last day of the quarter, within
// the specified fiscal year, that contains month.
func FiscalQuarterEnd(fiscalYear int, month Month) (Date, error) {
	q, err := QuarterOf(month)
	if err != nil {
		return 0, err
	}
	year, _, _ := quarterYear(fiscalYear, q)
	return monthEnd(year, Month(q)+2)
}

// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bsdate_test

import (
	"testing"

	"cloudeng.io/bsdate"
)

func TestFiscalYear(t *testing.T) {
	for _, tc := range []struct {
		d          bsdate.Date
		offset     int
		fy         int
		start, end bsdate.Date
	}{
		{newDate(2080, 5, 15), 0, 2080, newDate(2080, 4, 1), newDate(2081, 3, 32)},
		{newDate(2080, 4, 1), 0, 2080, newDate(2080, 4, 1), newDate(2081, 3, 32)},
		{newDate(2081, 3, 32), 0, 2080, newDate(2080, 4, 1), newDate(2081, 3, 32)},
		{newDate(2081, 2, 10), 0, 2080, newDate(2080, 4, 1), newDate(2081, 3, 32)},
		{newDate(2080, 5, 15), 1, 2080, newDate(2081, 4, 1), newDate(2082, 3, 32)},
		{newDate(2080, 5, 15), -1, 2080, newDate(2079, 4, 1), newDate(2080, 3, 31)},
	} {
		if got, want := tc.d.FiscalYear(), tc.fy; got != want {
			t.Errorf("%v: got %v, want %v", tc.d, got, want)
		}
		start, end, err := tc.d.FiscalYearStartAndEndDate(tc.offset)
		if err != nil {
			t.Errorf("%v: %v", tc.d, err)
			continue
		}
		if start != tc.start || end != tc.end {
			t.Errorf("%v (%v): got %v - %v, want %v - %v", tc.d, tc.offset, start, end, tc.start, tc.end)
		}
	}

	start, err := bsdate.FiscalYearStart(2080)
	if err != nil {
		t.Fatal(err)
	}
	end, err := bsdate.FiscalYearEnd(2080)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := bsdate.NewRange(start, end), newRange(2080, 4, 1, 2081, 3, 32); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFiscalQuarters(t *testing.T) {
	for _, tc := range []struct {
		month bsdate.Month
		q     bsdate.Quarter
	}{
		{bsdate.Baishakh, bsdate.FourthQuarter},
		{bsdate.Ashad, bsdate.FourthQuarter},
		{bsdate.Shrawan, bsdate.FirstQuarter},
		{bsdate.Ashoj, bsdate.FirstQuarter},
		{bsdate.Kartik, bsdate.SecondQuarter},
		{bsdate.Poush, bsdate.SecondQuarter},
		{bsdate.Magh, bsdate.ThirdQuarter},
		{bsdate.Chaitra, bsdate.ThirdQuarter},
	} {
		q, err := newDate(2080, int(tc.month), 1).FiscalYearQuarter()
		if err != nil {
			t.Errorf("%v: %v", tc.month, err)
			continue
		}
		if got, want := q, tc.q; got != want {
			t.Errorf("%v: got %v, want %v", tc.month, got, want)
		}
	}
	if _, err := bsdate.QuarterOf(13); err == nil {
		t.Errorf("expected an error")
	}

	d := newDate(2080, 5, 15)
	for _, tc := range []struct {
		q          bsdate.Quarter
		offset     int
		start, end bsdate.Date
	}{
		{bsdate.CurrentQuarter, 0, newDate(2080, 4, 1), newDate(2080, 6, 30)},
		{bsdate.FirstQuarter, 0, newDate(2080, 4, 1), newDate(2080, 6, 30)},
		{bsdate.SecondQuarter, 0, newDate(2080, 7, 1), newDate(2080, 9, 29)},
		{bsdate.ThirdQuarter, 0, newDate(2080, 10, 1), newDate(2080, 12, 30)},
		{bsdate.FourthQuarter, 0, newDate(2081, 1, 1), newDate(2081, 3, 32)},
		{bsdate.CurrentQuarter, 1, newDate(2081, 4, 1), newDate(2081, 6, 30)},
	} {
		start, end, err := d.FiscalYearQuarterStartAndEndDate(tc.q, tc.offset)
		if err != nil {
			t.Errorf("%v: %v", tc.q, err)
			continue
		}
		if start != tc.start || end != tc.end {
			t.Errorf("%v (%v): got %v - %v, want %v - %v", tc.q, tc.offset, start, end, tc.start, tc.end)
		}
	}

	// A date in the fourth quarter belongs to the fiscal year that
	// started in the previous calendar year.
	start, err := newDate(2081, 2, 10).FiscalYearQuarterStartDate(bsdate.CurrentQuarter, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := start, newDate(2081, 1, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	start, err = bsdate.FiscalQuarterStart(2080, bsdate.Jestha)
	if err != nil {
		t.Fatal(err)
	}
	end, err := bsdate.FiscalQuarterEnd(2080, bsdate.Jestha)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := bsdate.NewRange(start, end), newRange(2081, 1, 1, 2081, 3, 32); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

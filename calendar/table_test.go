// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"cloudeng.io/bsdate/calendar"
	"gopkg.in/yaml.v3"
)

const smallTable = `epoch: "2023-04-14"
years:
  - {year: 2080, months: [31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30]}
  - {year: 2081, months: [31, 31, 32, 32, 31, 30, 30, 30, 29, 30, 30, 30]}
`

func TestParseTable(t *testing.T) {
	tbl, err := calendar.ParseTable([]byte(smallTable))
	if err != nil {
		t.Fatal(err)
	}
	first, last := tbl.Years()
	if got, want := []int{first, last}, []int{2080, 2081}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	g, err := tbl.NepaliToGregorian(2080, 5, 15)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := g, gdate(2023, 9, 1); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if tbl.Contains(2079) || !tbl.Contains(2081) {
		t.Errorf("incorrect year coverage")
	}

	// The default table must agree with the smaller one where they overlap.
	for y := 2080; y <= 2081; y++ {
		for m := 1; m <= 12; m++ {
			a, _ := tbl.MonthLength(y, m)
			b, _ := calendar.MonthLength(y, m)
			if a != b {
				t.Errorf("%v/%v: got %v, want %v", y, m, a, b)
			}
		}
	}

	var spec calendar.Spec
	if err := yaml.Unmarshal([]byte(smallTable), &spec); err != nil {
		t.Fatal(err)
	}
	if got, want := tbl.Spec(), spec; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTableValidation(t *testing.T) {
	for _, tc := range []struct {
		spec string
		msg  string
	}{
		{`epoch: "2023-14-14"`, "invalid epoch"},
		{`epoch: "2023-04-14"`, "no years"},
		{`epoch: "2023-04-14"
years:
  - {year: 2080, months: [31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30]}`, "expected 12 months"},
		{`epoch: "2023-04-14"
years:
  - {year: 2080, months: [31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 33]}`, "invalid length"},
		{`epoch: "2023-04-14"
years:
  - {year: 2080, months: [31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30]}
  - {year: 2082, months: [31, 31, 32, 31, 31, 30, 30, 30, 29, 30, 30, 30]}`, "not contiguous"},
		{`epoch: "1843-04-14"
years:
  - {year: 1900, months: [31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30]}`, "outside of"},
	} {
		_, err := calendar.ParseTable([]byte(tc.spec))
		if err == nil || !strings.Contains(err.Error(), tc.msg) {
			t.Errorf("%q: got %v, want error containing %q", tc.spec, err, tc.msg)
		}
	}
}

func TestLoadTable(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "table.yaml")
	if err := os.WriteFile(filename, []byte(smallTable), 0600); err != nil {
		t.Fatal(err)
	}
	tbl, err := calendar.LoadTable(filename)
	if err != nil {
		t.Fatal(err)
	}
	_, last := tbl.GregorianRange()
	if got, want := last, gdate(2025, 4, 13); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := calendar.LoadTable(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestPartialGregorianMonths(t *testing.T) {
	tbl, err := calendar.ParseTable([]byte(smallTable))
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		when time.Time
		ok   bool
	}{
		{gdate(2023, 4, 13), false},
		{gdate(2023, 4, 14), true},
		{gdate(2025, 4, 13), true},
		{gdate(2025, 4, 14), false},
		{gdate(2025, 4, 30), false},
	} {
		_, err := tbl.FromTime(tc.when)
		if got, want := err == nil, tc.ok; got != want {
			t.Errorf("%v: got %v, want %v: %v", tc.when, got, want, err)
		}
	}
}

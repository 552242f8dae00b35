// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cloudeng.io/bsdate"
	"cloudeng.io/bsdate/calendar"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out := &strings.Builder{}
	cmdSet := newCommandSet(out, strings.NewReader(stdin))
	err := cmdSet.DispatchWithArgs(context.Background(), os.Args[0], args...)
	return out.String(), err
}

func TestConvert(t *testing.T) {
	for _, tc := range []struct {
		args  []string
		stdin string
		want  string
	}{
		{[]string{"convert", "to-bs", "2023-09-01"}, "", "2023-09-01\t2080/05/15\n"},
		{[]string{"convert", "to-bs", "2023-09-01", "2023-09-02"}, "", "2023-09-01\t2080/05/15\n2023-09-02\t2080/05/16\n"},
		{[]string{"convert", "to-bs", "--long", "2023-09-01"}, "", "2023-09-01\tFriday, Bhadra 15, 2080\n"},
		{[]string{"convert", "to-bs", "-"}, "2023-09-01\n\n2023-09-02\n", "2080/05/15\n2080/05/16\n"},
		{[]string{"convert", "to-ad", "15 Bhadra 2080"}, "", "2080/05/15\t2023-09-01\n"},
		{[]string{"convert", "to-ad", "--devanagari", "2080/05/15"}, "", "२०८०/०५/१५\t2023-09-01\n"},
		{[]string{"convert", "to-ad", "--long", "2080-05-15"}, "", "2080/05/15\tFriday, September 1, 2023\n"},
		{[]string{"convert", "to-ad", "-"}, "2080/05/15\n१६ भदौ २०८०\n", "2080/05/15\t2023-09-01\n2080/05/16\t2023-09-02\n"},
	} {
		got, err := run(t, tc.stdin, tc.args...)
		if err != nil {
			t.Errorf("%v: %v", tc.args, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%v: got %q, want %q", tc.args, got, tc.want)
		}
	}

	if _, err := run(t, "", "convert", "to-bs", "01/09/2023"); !errors.Is(err, bsdate.ErrInvalidFormat) {
		t.Errorf("got %v, want %v", err, bsdate.ErrInvalidFormat)
	}
	if _, err := run(t, "", "convert", "to-bs", "2099-01-01"); !errors.Is(err, bsdate.ErrOutOfRange) {
		t.Errorf("got %v, want %v", err, bsdate.ErrOutOfRange)
	}
	if _, err := run(t, "2023-09-01\nnot-a-date\n", "convert", "to-bs", "-"); !errors.Is(err, bsdate.ErrInvalidFormat) {
		t.Errorf("got %v, want %v", err, bsdate.ErrInvalidFormat)
	}
	if _, err := run(t, "", "convert", "to-bs"); err == nil {
		t.Errorf("expected an error for missing arguments")
	}
}

func TestParse(t *testing.T) {
	got, err := run(t, "", "parse", "15 Shrawan 2080", "२०८०/०४/१५", "2080/04/15")
	if err != nil {
		t.Fatal(err)
	}
	want := "15 Shrawan 2080\t2080/04/15\tmonth-name\n" +
		"२०८०/०४/१५\t2080/04/15\tdevanagari-digits\n" +
		"2080/04/15\t2080/04/15\tstrict\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	got, err = run(t, "", "parse", "nonsense", "15-04-2080")
	if !errors.Is(err, bsdate.ErrInvalidFormat) {
		t.Errorf("got %v, want %v", err, bsdate.ErrInvalidFormat)
	}
	if want := "15-04-2080\t2080/04/15\tnumeric\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRange(t *testing.T) {
	for _, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"range", "split", "2080/04/20", "2080/06/05"},
			"2080/04/20 - 2080/04/32\t13\n2080/05/01 - 2080/05/31\t31\n2080/06/01 - 2080/06/05\t5\n"},
		{[]string{"range", "split", "--by=quarter", "2080/03/15", "2080/05/10"},
			"2080/03/15 - 2080/03/31\t17\n2080/04/01 - 2080/05/10\t42\n"},
		{[]string{"range", "dates", "2080/05/15", "2080/05/17"},
			"2080/05/15\n2080/05/16\n2080/05/17\n"},
		{[]string{"range", "dates", "--working-days", "2080/05/15", "2080/05/18"},
			"2080/05/15\n2080/05/17\n2080/05/18\n"},
		{[]string{"range", "dates", "--working-days", "--exclude-sunday", "--holidays=2080/05/19", "2080/05/15", "2080/05/21"},
			"2080/05/15\n2080/05/18\n2080/05/20\n2080/05/21\n"},
		{[]string{"range", "dates", "--working-days", "--exclude-sunday", "--ranges", "2080/05/15", "2080/05/21"},
			"2080/05/15 - 2080/05/15\t1\n2080/05/18 - 2080/05/21\t4\n"},
		{[]string{"range", "dates", "--interval=3", "--gregorian", "2080/05/15", "2080/05/21"},
			"2080/05/15\t2023-09-01\n2080/05/18\t2023-09-04\n2080/05/21\t2023-09-07\n"},
	} {
		got, err := run(t, "", tc.args...)
		if err != nil {
			t.Errorf("%v: %v", tc.args, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%v: got %q, want %q", tc.args, got, tc.want)
		}
	}

	if _, err := run(t, "", "range", "split", "2080/06/05", "2080/04/20"); !errors.Is(err, bsdate.ErrInvalidRange) {
		t.Errorf("got %v, want %v", err, bsdate.ErrInvalidRange)
	}
	if _, err := run(t, "", "range", "split", "--by=week", "2080/04/20", "2080/06/05"); err == nil || !strings.Contains(err.Error(), "week") {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if _, err := run(t, "", "range", "dates", "--interval=0", "2080/04/20", "2080/06/05"); !errors.Is(err, bsdate.ErrInvalidRange) {
		t.Errorf("got %v, want %v", err, bsdate.ErrInvalidRange)
	}
}

func TestFiscal(t *testing.T) {
	got, err := run(t, "", "fiscal", "2081/02/10")
	if err != nil {
		t.Fatal(err)
	}
	want := `date:          2081/02/10
fiscal year:   2080/81
year:          2080/04/01 - 2081/03/32
quarter:       Q4
quarter dates: 2081/01/01 - 2081/03/32
`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if _, err := run(t, "", "fiscal"); err != nil {
		t.Errorf("today: %v", err)
	}
}

const smallTable = `epoch: "2023-04-14"
years:
  - {year: 2080, months: [31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30]}
  - {year: 2081, months: [31, 31, 32, 32, 31, 30, 30, 30, 29, 30, 30, 30]}
`

func TestTableCheck(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "table.yaml")
	if err := os.WriteFile(filename, []byte(smallTable), 0600); err != nil {
		t.Fatal(err)
	}
	got, err := run(t, "", "table", "check", filename)
	if err != nil {
		t.Fatal(err)
	}
	want := filename + `: ok
years:     2080 - 2081
gregorian: 2023-04-14 - 2025-04-13
note: the current table covers 2000 - 2083
`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte(`epoch: "2023-04-14"`), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "", "table", "check", bad); err == nil {
		t.Errorf("expected an error")
	}
}

func TestConfig(t *testing.T) {
	got, err := run(t, "", "config")
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"logging:", "table:", "output:", "separator:", "batch_size:"} {
		if !strings.Contains(got, field) {
			t.Errorf("%v not found in %v", field, got)
		}
	}

	orig := calendar.Default()
	t.Cleanup(func() { calendar.SetDefault(orig) })
	dir := t.TempDir()
	table := filepath.Join(dir, "table.yaml")
	logfile := filepath.Join(dir, "log.json")
	config := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(table, []byte(smallTable), 0600); err != nil {
		t.Fatal(err)
	}
	cfg := `logging:
  level: 3
  format: json
  file: ` + logfile + `
table: ` + table + `
output:
  layout: dmy
  separator: "-"
bulk:
  batch_size: 10
  parallel: true
`
	if err := os.WriteFile(config, []byte(cfg), 0600); err != nil {
		t.Fatal(err)
	}
	got, err = run(t, "", "convert", "to-bs", "--config="+config, "2023-09-01")
	if err != nil {
		t.Fatal(err)
	}
	if want := "2023-09-01\t15-05-2080\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	// 2026 is not covered by the configured table.
	if _, err := run(t, "", "convert", "to-bs", "--config="+config, "2026-01-01"); !errors.Is(err, bsdate.ErrOutOfRange) {
		t.Errorf("got %v, want %v", err, bsdate.ErrOutOfRange)
	}
	logs, err := os.ReadFile(logfile)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(logs), `"msg":"conversion table"`; !strings.Contains(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if err := os.WriteFile(config, []byte("output:\n  separator: \"+\"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "", "parse", "--config="+config, "2080/01/01"); err == nil || !strings.Contains(err.Error(), "invalid separator") {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"iter"
	"slices"
	"time"

	"cloudeng.io/bsdate"
	"cloudeng.io/bsdate/bulk"
	"cloudeng.io/bsdate/smartparse"
	"cloudeng.io/cmdutil/flags"
)

type splitFlags struct {
	CommonFlags
	By string `subcmd:"by,month,'split by month or quarter, quarters are fiscal quarters'"`
}

type datesFlags struct {
	CommonFlags
	WorkingDays   bool   `subcmd:"working-days,false,'only include working days, Saturdays are always excluded'"`
	ExcludeSunday bool   `subcmd:"exclude-sunday,false,'treat Sunday as part of the weekend'"`
	Holidays      string `subcmd:"holidays,,'comma separated list of holidays to exclude, eg. 2080/06/24,2080/07/12'"`
	Interval      int    `subcmd:"interval,1,'display every n-th date'"`
	Ranges        bool   `subcmd:"ranges,false,'display contiguous ranges of dates rather than individual dates'"`
	Gregorian     bool   `subcmd:"gregorian,false,'also display the Gregorian date'"`
}

type ranges struct {
	out io.Writer
}

func parseRange(ctx context.Context, from, to string) (bsdate.Range, error) {
	start, err := smartparse.Parse(ctx, from)
	if err != nil {
		return bsdate.Range{}, err
	}
	end, err := smartparse.Parse(ctx, to)
	if err != nil {
		return bsdate.Range{}, err
	}
	r := bsdate.NewRange(start, end)
	if r.Empty() {
		return r, fmt.Errorf("%v is after %v: %w", start, end, bsdate.ErrInvalidRange)
	}
	return r, nil
}

func (r *ranges) split(ctx context.Context, values interface{}, args []string) error {
	fl := values.(*splitFlags)
	if err := flags.OneOf(fl.By).Validate("month", "quarter"); err != nil {
		return err
	}
	ctx, s, err := newSession(ctx, &fl.CommonFlags)
	if err != nil {
		return err
	}
	defer s.close()
	rg, err := parseRange(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	parts := rg.SplitByMonth()
	if fl.By == "quarter" {
		parts = rg.SplitByFiscalQuarter()
	}
	for _, p := range parts {
		fmt.Fprintf(r.out, "%s - %s\t%d\n", s.format(p.Start()), s.format(p.End()), p.Len())
	}
	return nil
}

func (fl *datesFlags) constraints() (bsdate.Constraints, error) {
	var dc bsdate.Constraints
	if err := dc.Holidays.Parse(fl.Holidays); err != nil {
		return dc, err
	}
	if fl.WorkingDays {
		dc.Weekdays = true
		dc.SundayIsWeekend = fl.ExcludeSunday
	}
	return dc, nil
}

func (r *ranges) dates(ctx context.Context, values interface{}, args []string) error {
	fl := values.(*datesFlags)
	ctx, s, err := newSession(ctx, &fl.CommonFlags)
	if err != nil {
		return err
	}
	defer s.close()
	rg, err := parseRange(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	dc, err := fl.constraints()
	if err != nil {
		return err
	}
	if fl.Ranges {
		for sub := range rg.RangesConstrained(dc) {
			fmt.Fprintf(r.out, "%s - %s\t%d\n", s.format(sub.Start()), s.format(sub.End()), sub.Len())
		}
		return nil
	}
	seq, err := rg.DatesWithInterval(fl.Interval)
	if err != nil {
		return err
	}
	dates := slices.Collect(filter(seq, dc.Include))
	if !fl.Gregorian {
		for _, d := range dates {
			fmt.Fprintln(r.out, s.format(d))
		}
		return nil
	}
	times, err := bulk.ToGregorian(ctx, dates, s.cfg.Bulk.Parallel)
	if err != nil {
		return err
	}
	for i, d := range dates {
		fmt.Fprintf(r.out, "%s\t%s\n", s.format(d), times[i].Format(time.DateOnly))
	}
	return nil
}

func filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

func (r *ranges) fiscal(ctx context.Context, values interface{}, args []string) error {
	fl := values.(*CommonFlags)
	ctx, s, err := newSession(ctx, fl)
	if err != nil {
		return err
	}
	defer s.close()
	var d bsdate.Date
	if len(args) == 1 {
		d, err = smartparse.Parse(ctx, args[0])
	} else {
		d, err = bsdate.Today()
	}
	if err != nil {
		return err
	}
	start, end, err := d.FiscalYearStartAndEndDate(0)
	if err != nil {
		return err
	}
	q, err := d.FiscalYearQuarter()
	if err != nil {
		return err
	}
	qstart, qend, err := d.FiscalYearQuarterStartAndEndDate(bsdate.CurrentQuarter, 0)
	if err != nil {
		return err
	}
	fy := d.FiscalYear()
	fmt.Fprintf(r.out, "date:          %s\n", s.format(d))
	fmt.Fprintf(r.out, "fiscal year:   %d/%02d\n", fy, (fy+1)%100)
	fmt.Fprintf(r.out, "year:          %s - %s\n", s.format(start), s.format(end))
	fmt.Fprintf(r.out, "quarter:       %v\n", q)
	fmt.Fprintf(r.out, "quarter dates: %s - %s\n", s.format(qstart), s.format(qend))
	return nil
}

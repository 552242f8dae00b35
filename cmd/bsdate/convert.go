// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"strings"
	"time"

	"cloudeng.io/bsdate"
	"cloudeng.io/bsdate/bulk"
	"cloudeng.io/bsdate/smartparse"
	"cloudeng.io/errors"
)

type convertFlags struct {
	CommonFlags
	Long bool `subcmd:"long,false,'display dates in long form, eg. Friday, Bhadra 15, 2080'"`
}

type converter struct {
	out io.Writer
	in  io.Reader
}

// lines returns an iterator over the non-empty lines read from rd.
// Any read error is stored in errp.
func lines(rd io.Reader, errp *error) iter.Seq[string] {
	return func(yield func(string) bool) {
		sc := bufio.NewScanner(rd)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if len(line) == 0 {
				continue
			}
			if !yield(line) {
				return
			}
		}
		*errp = sc.Err()
	}
}

func parseGregorian(val string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, val)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: expected a Gregorian date in YYYY-MM-DD format: %w", val, bsdate.ErrInvalidFormat)
	}
	return t, nil
}

func (s *session) display(d bsdate.Date, long bool) string {
	if long {
		return d.LongDate(append([]bsdate.FormatOption{bsdate.WithDayName()}, s.opts...)...)
	}
	return s.format(d)
}

func (c *converter) toBS(ctx context.Context, values interface{}, args []string) error {
	fl := values.(*convertFlags)
	ctx, s, err := newSession(ctx, &fl.CommonFlags)
	if err != nil {
		return err
	}
	defer s.close()
	if len(args) == 1 && args[0] == "-" {
		return c.toBSStream(ctx, s, fl.Long)
	}
	times := make([]time.Time, len(args))
	for i, a := range args {
		if times[i], err = parseGregorian(a); err != nil {
			return err
		}
	}
	dates, err := bulk.ToDates(ctx, times, s.cfg.Bulk.Parallel)
	if err != nil {
		return err
	}
	for i, d := range dates {
		fmt.Fprintf(c.out, "%s\t%s\n", args[i], s.display(d, fl.Long))
	}
	return nil
}

// toBSStream converts the dates read from stdin in batches.
func (c *converter) toBSStream(ctx context.Context, s *session, long bool) error {
	var readErr, parseErr error
	times := func(yield func(time.Time) bool) {
		for line := range lines(c.in, &readErr) {
			t, err := parseGregorian(line)
			if err != nil {
				parseErr = err
				return
			}
			if !yield(t) {
				return
			}
		}
	}
	for batch, err := range bulk.BatchProcess(ctx, times, s.cfg.Bulk.BatchSize) {
		if err != nil {
			return err
		}
		for _, d := range batch {
			fmt.Fprintln(c.out, s.display(d, long))
		}
	}
	if parseErr != nil {
		return parseErr
	}
	return readErr
}

func (c *converter) toAD(ctx context.Context, values interface{}, args []string) error {
	fl := values.(*convertFlags)
	ctx, s, err := newSession(ctx, &fl.CommonFlags)
	if err != nil {
		return err
	}
	defer s.close()
	if len(args) == 1 && args[0] == "-" {
		var readErr error
		args = nil
		for line := range lines(c.in, &readErr) {
			args = append(args, line)
		}
		if readErr != nil {
			return readErr
		}
	}
	dates, err := bulk.ParseAll(ctx, args, s.cfg.Bulk.Parallel)
	if err != nil {
		return err
	}
	times, err := bulk.ToGregorian(ctx, dates, s.cfg.Bulk.Parallel)
	if err != nil {
		return err
	}
	for i, t := range times {
		g := t.Format(time.DateOnly)
		if fl.Long {
			g = t.Format("Monday, January 2, 2006")
		}
		fmt.Fprintf(c.out, "%s\t%s\n", s.format(dates[i]), g)
	}
	return nil
}

func (c *converter) parse(ctx context.Context, values interface{}, args []string) error {
	fl := values.(*CommonFlags)
	ctx, s, err := newSession(ctx, fl)
	if err != nil {
		return err
	}
	defer s.close()
	var errs errors.M
	for _, a := range args {
		r, err := smartparse.Resolve(ctx, a)
		if err != nil {
			errs.Append(err)
			continue
		}
		fmt.Fprintf(c.out, "%s\t%s\t%s\n", a, s.format(r.Date), r.Strategy)
	}
	return errs.Err()
}

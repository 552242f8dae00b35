// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloudeng.io/bsdate/calendar"
	"cloudeng.io/logging/ctxlog"
)

type tables struct {
	out io.Writer
}

func (t *tables) check(ctx context.Context, values interface{}, args []string) error {
	fl := values.(*CommonFlags)
	ctx, s, err := newSession(ctx, fl)
	if err != nil {
		return err
	}
	defer s.close()
	table, err := calendar.LoadTable(args[0])
	if err != nil {
		return err
	}
	first, last := table.Years()
	gfirst, glast := table.GregorianRange()
	ctxlog.Logger(ctx).Info("table check", "file", args[0], "first", first, "last", last)
	fmt.Fprintf(t.out, "%s: ok\n", args[0])
	fmt.Fprintf(t.out, "years:     %d - %d\n", first, last)
	fmt.Fprintf(t.out, "gregorian: %s - %s\n", gfirst.Format(time.DateOnly), glast.Format(time.DateOnly))
	dfirst, dlast := calendar.Default().Years()
	if first != dfirst || last != dlast {
		fmt.Fprintf(t.out, "note: the current table covers %d - %d\n", dfirst, dlast)
	}
	return nil
}

func (t *tables) config(_ context.Context, _ interface{}, _ []string) error {
	desc, err := describeConfigFile()
	if err != nil {
		return err
	}
	fmt.Fprint(t.out, desc)
	return nil
}

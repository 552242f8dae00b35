// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command bsdate converts, parses and manipulates Bikram Sambat dates.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: bsdate
summary: convert, parse and manipulate Bikram Sambat (Nepali) dates
commands:
  - name: convert
    summary: convert dates between the Gregorian and Bikram Sambat calendars
    commands:
      - name: to-bs
        summary: convert Gregorian dates, in YYYY-MM-DD format, to Bikram Sambat. A single argument of - reads dates from stdin, one per line.
        arguments:
          - <date>
          - ...
      - name: to-ad
        summary: convert Bikram Sambat dates, in any format accepted by the parse command, to Gregorian
        arguments:
          - <date>
          - ...
  - name: parse
    summary: parse dates written in a variety of formats and display the strategy that succeeded
    arguments:
      - <text>
      - ...
  - name: range
    summary: operations on ranges of dates
    commands:
      - name: split
        summary: split a range of dates into calendar months or fiscal quarters
        arguments:
          - <from>
          - <to>
      - name: dates
        summary: list the dates in a range, optionally restricted to working days
        arguments:
          - <from>
          - <to>
  - name: fiscal
    summary: display the fiscal year and quarter for a date, today if none is specified
    arguments:
      - "[date]"
  - name: table
    summary: operations on conversion tables
    commands:
      - name: check
        summary: validate a YAML conversion table and display its coverage
        arguments:
          - <file.yaml>
  - name: config
    summary: describe the YAML configuration file
`

func newCommandSet(out io.Writer, in io.Reader) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	c := &converter{out: out, in: in}
	cmdSet.Set("convert", "to-bs").MustRunner(c.toBS, &convertFlags{})
	cmdSet.Set("convert", "to-ad").MustRunner(c.toAD, &convertFlags{})
	cmdSet.Set("parse").MustRunner(c.parse, &CommonFlags{})

	r := &ranges{out: out}
	cmdSet.Set("range", "split").MustRunner(r.split, &splitFlags{})
	cmdSet.Set("range", "dates").MustRunner(r.dates, &datesFlags{})
	cmdSet.Set("fiscal").MustRunner(r.fiscal, &CommonFlags{})

	t := &tables{out: out}
	cmdSet.Set("table", "check").MustRunner(t.check, &CommonFlags{})
	cmdSet.Set("config").MustRunner(t.config, &CommonFlags{})
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), newCommandSet(os.Stdout, os.Stdin))
}

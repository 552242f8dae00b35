// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package smartparse provides a tolerant parser for Bikram Sambat dates
// written in a variety of formats, eg. "2080/04/15", "15-04-2080",
// "15 Shrawan 2080", "Shrawan 15, 2080 B.S.", "१५ साउन २०८०" or
// "२०८०/०४/१५". The parser tries a fixed sequence of strategies, from
// the most specific to the most permissive, and the first to succeed
// determines the result. The order matters since many inputs can be
// interpreted in more than one way.
package smartparse

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/bsdate"
	"cloudeng.io/logging/ctxlog"
)

// StrictStrategy is the name reported when the input is accepted
// by bsdate.Parse without any normalization.
const StrictStrategy = "strict"

// Strategy is a single parsing strategy applied to normalized input.
// Parse returns false if the strategy cannot interpret the input.
type Strategy struct {
	Name  string
	Parse func(p *Parser, input string) (bsdate.Date, bool)
}

// Parser is a smart date parser, it is safe for concurrent use.
type Parser struct {
	strategies []Strategy
	aliases    []Alias
}

// Result is the outcome of a successful parse.
type Result struct {
	Date     bsdate.Date
	Strategy string
}

// Option represents an option to New.
type Option func(*Parser)

// WithStrategies replaces the default strategies.
func WithStrategies(strategies ...Strategy) Option {
	return func(p *Parser) {
		p.strategies = strategies
	}
}

// WithAliases replaces the default month alias table.
func WithAliases(aliases []Alias) Option {
	return func(p *Parser) {
		p.aliases = aliases
	}
}

// DefaultStrategies returns the default strategies in the order in
// which they are tried.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{Name: "numeric", Parse: (*Parser).numeric},
		{Name: "devanagari-digits", Parse: (*Parser).devanagariDigits},
		{Name: "month-name", Parse: (*Parser).monthName},
		{Name: "ambiguous", Parse: (*Parser).ambiguous},
	}
}

// New returns a new Parser.
func New(opts ...Option) *Parser {
	p := &Parser{
		strategies: DefaultStrategies(),
		aliases:    defaultAliases,
	}
	for _, fn := range opts {
		fn(p)
	}
	return p
}

// Strategies returns the names of the strategies used by p, in order.
func (p *Parser) Strategies() []string {
	names := []string{StrictStrategy}
	for _, s := range p.strategies {
		names = append(names, s.Name)
	}
	return names
}

// Resolve parses input and reports the strategy that succeeded.
func (p *Parser) Resolve(ctx context.Context, input string) (Result, error) {
	logger := ctxlog.Logger(ctx)
	if len(strings.TrimSpace(input)) == 0 {
		return Result{}, fmt.Errorf("empty input: %w", bsdate.ErrInvalidFormat)
	}
	d, strategy, ok := p.resolve(input)
	if !ok {
		logger.Debug("smartparse: no strategy succeeded", "input", input)
		return Result{}, fmt.Errorf("could not parse %q as a date: %w", input, bsdate.ErrInvalidFormat)
	}
	logger.Debug("smartparse", "input", input, "strategy", strategy, "date", d.String())
	return Result{Date: d, Strategy: strategy}, nil
}

func (p *Parser) resolve(input string) (bsdate.Date, string, bool) {
	if d, err := bsdate.Parse(input); err == nil {
		return d, StrictStrategy, true
	}
	normalized := normalize(input)
	for _, s := range p.strategies {
		if d, ok := s.Parse(p, normalized); ok {
			return d, s.Name, true
		}
	}
	return 0, "", false
}

// Parse parses input using the first strategy that succeeds.
func (p *Parser) Parse(ctx context.Context, input string) (bsdate.Date, error) {
	r, err := p.Resolve(ctx, input)
	return r.Date, err
}

// TryParse is like Parse but returns false rather than an error.
func (p *Parser) TryParse(ctx context.Context, input string) (bsdate.Date, bool) {
	r, err := p.Resolve(ctx, input)
	return r.Date, err == nil
}

var defaultParser *Parser

// Parse parses input using the default Parser.
func Parse(ctx context.Context, input string) (bsdate.Date, error) {
	return defaultParser.Parse(ctx, input)
}

// TryParse parses input using the default Parser.
func TryParse(ctx context.Context, input string) (bsdate.Date, bool) {
	return defaultParser.TryParse(ctx, input)
}

// Resolve parses input using the default Parser.
func Resolve(ctx context.Context, input string) (Result, error) {
	return defaultParser.Resolve(ctx, input)
}

// construct validates the month and day ranges before creating the date.
func construct(year, month, day int) (bsdate.Date, bool) {
	if month < 1 || month > 12 || day < 1 || day > 32 {
		return 0, false
	}
	d, err := bsdate.New(year, bsdate.Month(month), day)
	return d, err == nil
}

var numericSeparators = []string{"/", "-", ".", " ", ",", "_"}

// numeric splits the input on each of the supported separators in turn
// and tries the year-month-day, day-month-year and month-day-year orders.
func (p *Parser) numeric(input string) (bsdate.Date, bool) {
	for _, sep := range numericSeparators {
		var tokens []string
		for _, t := range strings.Split(input, sep) {
			if t = strings.TrimSpace(t); len(t) > 0 {
				tokens = append(tokens, t)
			}
		}
		if len(tokens) != 3 {
			continue
		}
		var v [3]int
		valid := true
		for i, t := range tokens {
			n, err := strconv.Atoi(t)
			if err != nil {
				valid = false
				break
			}
			v[i] = n
		}
		if !valid {
			continue
		}
		for _, order := range [][3]int{{0, 1, 2}, {2, 1, 0}, {2, 0, 1}} {
			if d, ok := construct(expandYear(v[order[0]]), v[order[1]], v[order[2]]); ok {
				return d, true
			}
		}
	}
	return 0, false
}

// devanagariDigits converts Devanagari digits to ASCII and, if any were
// found, parses the result from scratch.
func (p *Parser) devanagariDigits(input string) (bsdate.Date, bool) {
	converted := bsdate.FromDevanagariDigits(input)
	if converted == input {
		return 0, false
	}
	d, _, ok := p.resolve(converted)
	return d, ok
}

// monthName looks for a month name, longest alias first, and treats
// the remaining numbers as the year and day.
func (p *Parser) monthName(input string) (bsdate.Date, bool) {
	folded := fold(input)
	for _, alias := range matchAliases(p.aliases, folded) {
		remaining := strings.ReplaceAll(folded, alias.Name, " ")
		n, ok := numbers(remaining)
		if !ok || len(n) < 2 {
			continue
		}
		var year, day int
		switch {
		case n[0] > 1900:
			year, day = n[0], n[1]
		case n[1] > 1900:
			year, day = n[1], n[0]
		default:
			year, day = largestTwo(n)
			switch {
			case year < 100:
				year += 2000
			case year >= 100 && year < 999:
				year += 1000
			}
		}
		if d, ok := construct(year, int(alias.Month), day); ok {
			return d, true
		}
	}
	return 0, false
}

func largestTwo(n []int) (first, second int) {
	first, second = n[0], n[1]
	if second > first {
		first, second = second, first
	}
	for _, v := range n[2:] {
		switch {
		case v > first:
			first, second = v, first
		case v > second:
			second = v
		}
	}
	return
}

var permutations = [][3]int{
	{0, 1, 2}, // YMD
	{2, 1, 0}, // DMY
	{2, 0, 1}, // MDY
	{1, 0, 2}, // MYD
	{0, 2, 1}, // YDM
	{1, 2, 0}, // DYM
}

// ambiguous extracts the first three numbers from the input, ignoring
// any separators, and tries every ordering of year, month and day.
func (p *Parser) ambiguous(input string) (bsdate.Date, bool) {
	n, ok := numbers(input)
	if !ok || len(n) < 3 {
		return 0, false
	}
	for _, perm := range permutations {
		if d, ok := construct(expandYear(n[perm[0]]), n[perm[1]], n[perm[2]]); ok {
			return d, true
		}
	}
	return 0, false
}

// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"cloudeng.io/bsdate"
	"cloudeng.io/bsdate/calendar"
	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/structdoc"
	"cloudeng.io/logging/ctxlog"
)

// CommonFlags are shared by all commands.
type CommonFlags struct {
	Config     string `subcmd:"config,,'YAML configuration file, see the config command for its format'"`
	Devanagari bool   `subcmd:"devanagari,false,'display dates using Devanagari digits and month names'"`
	cmdutil.LoggingFlags
}

// Config represents the YAML configuration file.
type Config struct {
	Logging cmdutil.LoggingConfig `yaml:"logging" cmd:"logging configuration, command line flags take precedence"`
	Table   string                `yaml:"table" cmd:"a YAML conversion table to use instead of the built-in one"`
	Output  OutputConfig          `yaml:"output" cmd:"output formatting"`
	Bulk    BulkConfig            `yaml:"bulk" cmd:"conversion of multiple dates"`
}

// OutputConfig controls how dates are displayed.
type OutputConfig struct {
	Devanagari bool   `yaml:"devanagari" cmd:"display dates using Devanagari digits and month names"`
	Separator  string `yaml:"separator" cmd:"separator between the year, month and day, one of / \\ . _ - or space"`
	Layout     string `yaml:"layout" cmd:"order of the year, month and day, one of ymd, ydm, myd, mdy, dym or dmy"`
	MonthName  bool   `yaml:"month_name" cmd:"display the month name rather than its number"`
}

// BulkConfig controls the conversion of multiple dates.
type BulkConfig struct {
	BatchSize int  `yaml:"batch_size" cmd:"number of dates read from stdin that are converted together"`
	Parallel  bool `yaml:"parallel" cmd:"convert large numbers of dates concurrently"`
}

func describeConfigFile() (string, error) {
	out := &strings.Builder{}
	desc, err := structdoc.Describe(&Config{}, "cmd", "YAML configuration file options\n")
	if err != nil {
		return "", err
	}
	out.WriteString(desc.Detail)
	out.WriteString(structdoc.FormatFields(0, 2, desc.Fields))
	return out.String(), nil
}

func loadConfig(file string) (Config, error) {
	var cfg Config
	if len(file) == 0 {
		return cfg, nil
	}
	if err := cmdutil.ParseYAMLConfigFile(file, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loggingConfig merges the configured logging options with those
// set on the command line.
func loggingConfig(cfg cmdutil.LoggingConfig, fl cmdutil.LoggingFlags) cmdutil.LoggingConfig {
	if fl.Level != 0 {
		cfg.Level = fl.Level
	}
	if len(fl.File) > 0 {
		cfg.File = fl.File
	}
	if fl.SourceCode {
		cfg.SourceCode = true
	}
	if len(cfg.Format) == 0 {
		cfg.Format = fl.Format
	}
	return cfg
}

// session holds the state shared by a single invocation of a command.
type session struct {
	cfg    Config
	logger *cmdutil.Logger
	layout bsdate.Layout
	sep    bsdate.Separator
	opts   []bsdate.FormatOption
}

func (s *session) format(d bsdate.Date) string {
	return d.Format(s.layout, s.sep, s.opts...)
}

func (s *session) close() {
	s.logger.Close()
}

// newSession reads the configuration file, if any, creates a logger
// and installs the configured conversion table. The returned context
// carries the logger.
func newSession(ctx context.Context, fl *CommonFlags) (context.Context, *session, error) {
	cfg, err := loadConfig(fl.Config)
	if err != nil {
		return ctx, nil, err
	}
	s := &session{cfg: cfg, sep: bsdate.ForwardSlash}
	if l := cfg.Output.Layout; len(l) > 0 {
		if err := s.layout.Parse(l); err != nil {
			return ctx, nil, err
		}
	}
	if sep := cfg.Output.Separator; len(sep) > 0 {
		r, _ := utf8.DecodeRuneInString(sep)
		if utf8.RuneCountInString(sep) != 1 || !bsdate.Separator(r).Valid() {
			return ctx, nil, fmt.Errorf("invalid separator %q", sep)
		}
		s.sep = bsdate.Separator(r)
	}
	if cfg.Output.MonthName {
		s.opts = append(s.opts, bsdate.WithMonthName())
	}
	if fl.Devanagari || cfg.Output.Devanagari {
		s.opts = append(s.opts, bsdate.WithDevanagari())
	}
	s.logger, err = loggingConfig(cfg.Logging, fl.LoggingFlags).NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	ctx = ctxlog.Context(ctx, s.logger.Logger)
	if len(cfg.Table) > 0 {
		table, err := calendar.LoadTable(cfg.Table)
		if err != nil {
			s.close()
			return ctx, nil, err
		}
		calendar.SetDefault(table)
		first, last := table.Years()
		s.logger.Info("conversion table", "file", cfg.Table, "first", first, "last", last)
	}
	return ctx, s, nil
}

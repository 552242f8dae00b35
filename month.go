// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bsdate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month is a Bikram Sambat month, 1 (Baishakh) to 12 (Chaitra).
type Month int

const (
	Baishakh Month = iota + 1
	Jestha
	Ashad
	Shrawan
	Bhadra
	Ashoj
	Kartik
	Mangsir
	Poush
	Magh
	Falgun
	Chaitra
)

var (
	monthNames = []string{"Baishakh", "Jestha", "Ashad", "Shrawan", "Bhadra", "Ashoj", "Kartik", "Mangsir", "Poush", "Magh", "Falgun", "Chaitra"}

	devanagariMonthNames = []string{"बैशाख", "जेठ", "असाद", "श्रावण", "भाद्र", "अशोक", "कार्तिक", "मङ्गसिर", "पुस", "माघ", "फाल्गुन", "चैत्र"}

	devanagariWeekdays = []string{"आइतबार", "सोमबार", "मंगलबार", "बुधबार", "बिहीबार", "शुक्रबार", "शनिबार"}
)

func (m Month) valid() bool {
	return m >= Baishakh && m <= Chaitra
}

// String returns the English transliteration of the month name.
func (m Month) String() string {
	if !m.valid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m-1]
}

// Devanagari returns the month name in Devanagari script.
func (m Month) Devanagari() string {
	if !m.valid() {
		return ToDevanagariDigits(strconv.Itoa(int(m)))
	}
	return devanagariMonthNames[m-1]
}

// WeekdayName returns the name of the weekday in Devanagari script.
func WeekdayName(wd time.Weekday) string {
	return devanagariWeekdays[wd%7]
}

// ParseMonth parses a numeric month or a month name. Names are matched
// case insensitively against any prefix of at least three letters
// of the English transliterations, or exactly against the Devanagari names.
func ParseMonth(val string) (Month, error) {
	if n, err := strconv.Atoi(val); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("invalid month: %d: %w", n, ErrInvalidDate)
		}
		return Month(n), nil
	}
	lc := strings.ToLower(strings.TrimSpace(val))
	if len(lc) >= 3 {
		for i, name := range monthNames {
			if strings.HasPrefix(strings.ToLower(name), lc) {
				return Month(i + 1), nil
			}
		}
	}
	for i, name := range devanagariMonthNames {
		if val == name {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid month: %q: %w", val, ErrInvalidFormat)
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}

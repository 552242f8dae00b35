// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bsdate

import (
	"errors"

	"cloudeng.io/bsdate/calendar"
)

var (
	// ErrInvalidFormat is returned for input strings that cannot be
	// parsed as a date.
	ErrInvalidFormat = errors.New("invalid date format")

	// ErrInvalidDate is returned for a well formed date whose month or
	// day is not valid.
	ErrInvalidDate = calendar.ErrInvalidDate

	// ErrOutOfRange is returned for dates, or the results of arithmetic,
	// that fall outside of the supported range.
	ErrOutOfRange = calendar.ErrOutOfRange

	// ErrInvalidRange is returned when a range cannot be constructed
	// from the supplied arguments.
	ErrInvalidRange = errors.New("invalid range")
)

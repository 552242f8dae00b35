// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bsdate_test

import (
	"time"

	"cloudeng.io/bsdate"
)

func newDate(y, m, d int) bsdate.Date {
	return bsdate.MustNew(y, bsdate.Month(m), d)
}

func newRange(fy, fm, fd, ty, tm, td int) bsdate.Range {
	return bsdate.NewRange(newDate(fy, fm, fd), newDate(ty, tm, td))
}

func gdate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

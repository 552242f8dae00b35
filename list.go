// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bsdate

import (
	"slices"
	"strings"
)

// DateList is a list of dates.
type DateList []Date

// Parse a comma separated list of dates. The parsed list is sorted
// and without duplicates.
func (dl *DateList) Parse(val string) error {
	if len(val) == 0 {
		return nil
	}
	parts := strings.Split(val, ",")
	d := make(DateList, 0, len(parts))
	for _, part := range parts {
		date, err := Parse(strings.TrimSpace(part))
		if err != nil {
			return err
		}
		d = append(d, date)
	}
	slices.Sort(d)
	*dl = slices.Compact(d)
	return nil
}

func (dl DateList) String() string {
	var out strings.Builder
	for i, d := range dl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

// Contains returns true if d is in the list. The list must be sorted,
// as it is by Parse.
func (dl DateList) Contains(d Date) bool {
	_, found := slices.BinarySearch(dl, d)
	return found
}

// Merge returns a new list of ranges that merges consecutive dates
// into ranges. The date list is assumed to be sorted.
func (dl DateList) Merge() RangeList {
	if len(dl) == 0 {
		return nil
	}
	var rl RangeList
	from, to := dl[0], dl[0]
	for _, cur := range dl[1:] {
		if cur == to {
			continue
		}
		if cur == to.Tomorrow() {
			to = cur
			continue
		}
		rl = append(rl, NewRange(from, to))
		from, to = cur, cur
	}
	return slices.Clip(append(rl, NewRange(from, to)))
}

// RangeList is a list of ranges.
type RangeList []Range

// Sort sorts the list by start date and then by end date.
func (rl RangeList) Sort() {
	slices.SortFunc(rl, func(a, b Range) int {
		if c := a.start.Compare(b.start); c != 0 {
			return c
		}
		return a.end.Compare(b.end)
	})
}

// Merge returns a new list of ranges with overlapping and adjacent ranges
// merged. Empty ranges are dropped. The list is assumed to be sorted.
func (rl RangeList) Merge() RangeList {
	var merged RangeList
	for _, r := range rl {
		if r.Empty() {
			continue
		}
		if n := len(merged); n > 0 {
			last := merged[n-1]
			if last.Overlaps(r) || last.IsAdjacentTo(r) {
				merged[n-1] = last.Union(r)
				continue
			}
		}
		merged = append(merged, r)
	}
	return slices.Clip(merged)
}

// Len returns the total number of days in the list, dates in
// overlapping ranges are counted more than once.
func (rl RangeList) Len() int {
	n := 0
	for _, r := range rl {
		n += r.Len()
	}
	return n
}

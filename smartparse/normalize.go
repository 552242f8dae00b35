// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package smartparse

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var (
	eraMarker  = regexp.MustCompile(`(?i)\b(?:B\.?S|V\.?S)\b\.?`)
	whitespace = regexp.MustCompile(`\s+`)
	digitRuns  = regexp.MustCompile(`\d+`)

	fillerWords = []string{"gate", "miti", "गते", "मिति"}
)

// fold returns the NFC normalized, case folded form of val. A Caser
// is stateful so a new one is created for every call.
func fold(val string) string {
	return cases.Fold().String(norm.NFC.String(val))
}

// normalize removes era markers (B.S., V.S.) and the filler words
// 'gate' and 'miti' in either script, and collapses whitespace.
func normalize(input string) string {
	s := norm.NFC.String(strings.TrimSpace(input))
	s = eraMarker.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, " ")
	words := strings.Split(s, " ")
	words = slices.DeleteFunc(words, func(w string) bool {
		w = fold(strings.TrimFunc(w, unicode.IsPunct))
		return slices.Contains(fillerWords, w)
	})
	return strings.TrimSpace(strings.Join(words, " "))
}

// numbers returns the integer values of all runs of ASCII digits in val.
func numbers(val string) ([]int, bool) {
	runs := digitRuns.FindAllString(val, -1)
	out := make([]int, 0, len(runs))
	for _, r := range runs {
		n, err := strconv.Atoi(r)
		if err != nil {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

// expandYear adds 2000 to years below 100 and 1000 to three digit
// years, eg. 80 and 080 become 2080 and 981 becomes 1981.
func expandYear(y int) int {
	switch {
	case y < 100:
		return y + 2000
	case y > 100 && y < 1000:
		return y + 1000
	}
	return y
}

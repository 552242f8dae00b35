// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package smartparse

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"cloudeng.io/bsdate"
	"gopkg.in/yaml.v3"
)

//go:embed data/months.yaml
var monthsYAML []byte

// Alias is an alternative spelling of a month name.
type Alias struct {
	Name  string
	Month bsdate.Month
}

// AliasSpec is the YAML representation of the aliases for a single month.
type AliasSpec struct {
	Month int      `yaml:"month"`
	Names []string `yaml:"names"`
}

type aliasFile struct {
	Aliases []AliasSpec `yaml:"aliases"`
}

// ParseAliases parses a YAML alias table of the form:
//
//	aliases:
//	  - {month: 1, names: [baisakh, baishakh]}
//
// Names are folded and NFC normalized, and the order of the file is
// preserved.
func ParseAliases(data []byte) ([]Alias, error) {
	var af aliasFile
	if err := yaml.Unmarshal(data, &af); err != nil {
		return nil, err
	}
	if len(af.Aliases) == 0 {
		return nil, fmt.Errorf("no month aliases specified")
	}
	var aliases []Alias
	seen := map[string]bool{}
	for _, spec := range af.Aliases {
		if spec.Month < 1 || spec.Month > 12 {
			return nil, fmt.Errorf("invalid month %d", spec.Month)
		}
		for _, name := range spec.Names {
			folded := fold(strings.TrimSpace(name))
			if len(folded) == 0 {
				return nil, fmt.Errorf("month %d: empty alias", spec.Month)
			}
			if seen[folded] {
				return nil, fmt.Errorf("month %d: duplicate alias %q", spec.Month, name)
			}
			seen[folded] = true
			aliases = append(aliases, Alias{Name: folded, Month: bsdate.Month(spec.Month)})
		}
	}
	return aliases, nil
}

// DefaultAliases returns a copy of the built-in alias table.
func DefaultAliases() []Alias {
	return slices.Clone(defaultAliases)
}

var defaultAliases []Alias

func init() {
	var err error
	if defaultAliases, err = ParseAliases(monthsYAML); err != nil {
		panic(fmt.Sprintf("failed to parse embedded month aliases: %v", err))
	}
	defaultParser = New()
}

// matchAliases returns the aliases contained in folded, longest first.
func matchAliases(aliases []Alias, folded string) []Alias {
	var matched []Alias
	for _, a := range aliases {
		if strings.Contains(folded, a.Name) {
			matched = append(matched, a)
		}
	}
	slices.SortStableFunc(matched, func(a, b Alias) int {
		return utf8.RuneCountInString(b.Name) - utf8.RuneCountInString(a.Name)
	})
	return matched
}

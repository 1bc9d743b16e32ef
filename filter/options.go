package filter

import (
	"sort"
	"strings"

	"github.com/poster-atlas/site/config"
	"github.com/poster-atlas/site/poster"
)

// Options are the choices offered by the company and element dropdowns.
type Options struct {
	Companies []string `json:"companies"`
	Elements  []string `json:"elements"`
}

// BuildOptions scans the dataset once and returns the sorted, distinct
// company values and element/object tokens.
func BuildOptions(posters []poster.Poster) Options {
	companies := make(map[string]struct{})
	elements := make(map[string]struct{})

	for _, p := range posters {
		if c := strings.TrimSpace(p.Company); usable(c) {
			companies[c] = struct{}{}
		}
		for _, tag := range p.Tags() {
			if usable(tag) {
				elements[tag] = struct{}{}
			}
		}
	}

	return Options{
		Companies: sortedKeys(companies),
		Elements:  sortedKeys(elements),
	}
}

func usable(v string) bool {
	return v != "" && v != config.NotApplicable
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

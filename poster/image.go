package poster

import (
	"strings"

	"github.com/poster-atlas/site/config"
)

// SelectImage picks the first candidate whose URL mentions "large", then the
// first candidate, then the placeholder.
func SelectImage(candidates []string) string {
	var first string
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if strings.Contains(strings.ToLower(c), "large") {
			return c
		}
		if first == "" {
			first = c
		}
	}
	if first != "" {
		return first
	}
	return config.PlaceholderImageURL
}

// HasImage reports whether the poster has at least one image link.
func (p Poster) HasImage() bool {
	return len(SplitList(p.ImageLinks)) > 0
}

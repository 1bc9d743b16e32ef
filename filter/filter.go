package filter

import (
	"strings"

	"github.com/poster-atlas/site/poster"
)

// State is the value of every filter control for one request. It is built
// from the request each time and never stored.
type State struct {
	Query   string `json:"q,omitempty"`
	Company string `json:"company,omitempty"`
	Element string `json:"element,omitempty"`
	Train   bool   `json:"train,omitempty"`
	Seaside bool   `json:"seaside,omitempty"`
	Sports  bool   `json:"sports,omitempty"`
	Page    int    `json:"page,omitempty"`
}

// IsZero reports whether no control narrows the result set.
func (s State) IsZero() bool {
	return strings.TrimSpace(s.Query) == "" && s.Company == "" && s.Element == "" &&
		!s.Train && !s.Seaside && !s.Sports
}

// Apply returns the posters matching every active control, in input order.
func Apply(posters []poster.Poster, s State) []poster.Poster {
	query := strings.ToLower(strings.TrimSpace(s.Query))

	out := make([]poster.Poster, 0, len(posters))
	for _, p := range posters {
		if Match(p, s, query) {
			out = append(out, p)
		}
	}
	return out
}

// Match evaluates the conjunction of all predicates for one poster. query
// must already be trimmed and lower-cased.
func Match(p poster.Poster, s State, query string) bool {
	if query != "" && !matchText(p, query) {
		return false
	}
	if s.Company != "" && p.Company != s.Company {
		return false
	}
	// Substring containment, not tag membership: "Bus" matches "Bus Station".
	if s.Element != "" && !strings.Contains(p.Elements, s.Element) && !strings.Contains(p.Objects, s.Element) {
		return false
	}
	if s.Train && !poster.IsYes(p.Train) {
		return false
	}
	if s.Seaside && !poster.IsYes(p.Seaside) {
		return false
	}
	if s.Sports && !poster.IsYes(p.Sports) {
		return false
	}
	return true
}

func matchText(p poster.Poster, query string) bool {
	for _, field := range []string{
		p.Title, p.Location, p.Description, p.Transcription, p.Elements, p.Objects, p.UID,
	} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

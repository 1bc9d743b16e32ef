package filter

import (
	"github.com/poster-atlas/site/poster"
)

// Dedupe keeps the first poster of every UID, preserving order. Posters
// without a UID cannot be related to anything and are all kept.
func Dedupe(posters []poster.Poster) []poster.Poster {
	seen := make(map[string]struct{}, len(posters))
	out := make([]poster.Poster, 0, len(posters))
	for _, p := range posters {
		if p.UID != "" {
			if _, dup := seen[p.UID]; dup {
				continue
			}
			seen[p.UID] = struct{}{}
		}
		out = append(out, p)
	}
	return out
}

// Group returns every poster sharing uid, in dataset order.
func Group(posters []poster.Poster, uid string) []poster.Poster {
	if uid == "" {
		return nil
	}
	var out []poster.Poster
	for _, p := range posters {
		if p.UID == uid {
			out = append(out, p)
		}
	}
	return out
}

// Marker is a plottable poster with its map selection state.
type Marker struct {
	Poster   poster.Poster
	Lat      float64
	Lon      float64
	Selected bool
}

// Markers returns one marker per plottable poster. A marker is selected
// when its UID equals selectedUID; every other marker is in the default
// state, so each call describes the complete marker set.
func Markers(posters []poster.Poster, selectedUID string) []Marker {
	markers := make([]Marker, 0, len(posters))
	for _, p := range posters {
		if !p.Plottable() {
			continue
		}
		markers = append(markers, Marker{
			Poster:   p,
			Lat:      *p.Latitude,
			Lon:      *p.Longitude,
			Selected: selectedUID != "" && p.UID == selectedUID,
		})
	}
	return markers
}

// CountSelected returns how many markers are highlighted.
func CountSelected(markers []Marker) int {
	n := 0
	for _, m := range markers {
		if m.Selected {
			n++
		}
	}
	return n
}

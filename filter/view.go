package filter

import "github.com/poster-atlas/site/poster"

// GalleryResult is everything the gallery needs to render one page.
type GalleryResult struct {
	Cards      []poster.Poster
	Pagination Pagination
	Matches    int // filtered records before de-duplication
}

// Gallery filters, de-duplicates by UID and slices out the requested page.
func Gallery(all []poster.Poster, s State, size int) GalleryResult {
	filtered := Apply(all, s)
	cards, pg := PageOf(Dedupe(filtered), s.Page, size)
	return GalleryResult{
		Cards:      cards,
		Pagination: pg,
		Matches:    len(filtered),
	}
}

// MapResult is everything the map needs to render its marker layer.
type MapResult struct {
	Markers  []Marker
	Selected []poster.Poster // full group for the selected UID
}

// Map filters the dataset and marks every marker sharing selectedUID.
func Map(all []poster.Poster, s State, selectedUID string) MapResult {
	return MapResult{
		Markers:  Markers(Apply(all, s), selectedUID),
		Selected: Group(all, selectedUID),
	}
}

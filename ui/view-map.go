package ui

import (
	"encoding/json"
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/poster-atlas/site/config"
	"github.com/poster-atlas/site/filter"
	"github.com/poster-atlas/site/poster"
)

type mapOptions struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Zoom        int     `json:"zoom"`
	TileURL     string  `json:"tileURL"`
	Attribution string  `json:"attribution"`
	Placeholder string  `json:"placeholder"`
}

// MapPage renders the full map view. results is the initial content of the
// results container, either MapResults or LoadErrorMessage.
func MapPage(s filter.State, opts filter.Options, results g.Node) g.Node {
	return Page(
		"Railway Poster Map",
		"/map",
		[]g.Node{
			pageHeader("Poster Map"),
			filterForm("/map/results", "#map-results", s, opts),
			mapNode(),
			Div(ID("map-results"), Class("mt-4"), results),
		},
	)
}

func mapNode() g.Node {
	opts, _ := json.Marshal(mapOptions{
		Lat:         config.MapCenterLat,
		Lon:         config.MapCenterLon,
		Zoom:        config.MapZoom,
		TileURL:     config.TileURL,
		Attribution: config.TileAttribution,
		Placeholder: config.PlaceholderImageURL,
	})
	initScript := fmt.Sprintf("document.addEventListener('DOMContentLoaded', function() { initMap(%s); });", opts)

	return Div(
		ID("map-view"),
		Class("w-full grid grid-cols-1 lg:grid-cols-3 gap-4"),
		// Map container with explicit styling
		Div(
			Class("lg:col-span-2 h-96 w-full rounded border bg-gray-50"),
			Style("min-height: 600px;"),
			Div(
				ID("map-container"),
				Class("h-full w-full"),
				Style("border-radius: inherit; overflow: hidden; min-height: 600px;"),
			),
		),
		// Details of the selected poster group
		Div(
			ID("map-selection"),
			Class("text-sm"),
			selectionHint(),
		),
		Script(
			Type("text/javascript"),
			g.Raw(initScript),
		),
	)
}

// MapResults renders the marker data for the filtered set and the location
// count.
func MapResults(res filter.MapResult) g.Node {
	return g.Group([]g.Node{
		markerCount(len(res.Markers)),
		MapData(res.Markers, false),
	})
}

// MapResultsUpdate is MapResults for an htmx swap. Filtering drops the
// selection, so the side panel is reset out of band.
func MapResultsUpdate(res filter.MapResult) g.Node {
	return g.Group([]g.Node{
		MapResults(res),
		Div(
			ID("map-selection"),
			g.Attr("hx-swap-oob", "true"),
			Class("text-sm"),
			selectionHint(),
		),
	})
}

// MapSelection renders the side panel for a selected UID plus an out of
// band replacement of the marker data carrying the new selection flags.
func MapSelection(res filter.MapResult) g.Node {
	var panel g.Node = P(Class("text-gray-500"), g.Text("No poster found for this marker."))
	if len(res.Selected) > 0 {
		records := make([]g.Node, 0, len(res.Selected))
		for _, p := range res.Selected {
			records = append(records, selectionRecord(p))
		}
		panel = Div(
			H2(Class("text-xl font-bold mb-2"), g.Text(res.Selected[0].DisplayTitle())),
			P(Class("text-gray-500 mb-2"), g.Text(fmt.Sprintf("%d records, %d highlighted", len(res.Selected), filter.CountSelected(res.Markers)))),
			g.Group(records),
		)
	}
	return g.Group([]g.Node{
		panel,
		MapData(res.Markers, true),
	})
}

func selectionRecord(p poster.Poster) g.Node {
	return Div(
		Class("border-t pt-2 mt-2 flex flex-col gap-1"),
		posterImage(posterImageSrc(p, "480w"), "Poster image: "+p.DisplayTitle()),
		labelValue("Location", p.Location),
		labelValue("Company", p.DisplayCompany()),
		labelValue("ID", p.ID),
		g.If(p.Keywords() != "", labelValue("Keywords", p.Keywords())),
	)
}

func selectionHint() g.Node {
	return P(Class("text-gray-500"), g.Text("Select a marker to see the poster details."))
}

func markerCount(n int) g.Node {
	return Span(
		ID("marker-count"),
		Class("text-sm text-gray-600"),
		Role("status"),
		g.Text(fmt.Sprintf("Showing: %d locations", n)),
	)
}

// MapData returns the hidden marker data container read by map.js.
func MapData(markers []filter.Marker, oob bool) g.Node {
	return Div(
		ID("map-data"),
		Class("hidden"),
		g.If(oob, g.Attr("hx-swap-oob", "true")),
		g.Group(markerDataElements(markers)),
	)
}

// markerDataElements creates hidden data elements for each plottable poster
func markerDataElements(markers []filter.Marker) []g.Node {
	nodes := make([]g.Node, 0, len(markers))
	for _, m := range markers {
		p := m.Poster
		nodes = append(nodes,
			Div(
				g.Attr("data-uid", p.UID),
				g.Attr("data-id", p.ID),
				g.Attr("data-lat", strconv.FormatFloat(m.Lat, 'f', -1, 64)),
				g.Attr("data-lon", strconv.FormatFloat(m.Lon, 'f', -1, 64)),
				g.Attr("data-title", p.DisplayTitle()),
				g.Attr("data-location", p.Location),
				g.Attr("data-company", p.Company),
				g.Attr("data-image", p.ImageURL()),
				g.Attr("data-selected", strconv.FormatBool(m.Selected)),
			),
		)
	}
	return nodes
}

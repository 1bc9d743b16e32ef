package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/poster-atlas/site/filter"
	"github.com/poster-atlas/site/poster"
)

// GalleryPage renders the full gallery. results is the initial content of
// the results container, either GalleryResults or LoadErrorMessage.
func GalleryPage(s filter.State, opts filter.Options, results g.Node) g.Node {
	return Page(
		"Railway Poster Gallery",
		"/",
		[]g.Node{
			pageHeader("Poster Gallery"),
			filterForm("/gallery/results", "#results", s, opts),
			Div(ID("results"), results),
			Div(ID("poster-detail")),
		},
	)
}

// GalleryResults renders one page of cards with its pagination controls.
func GalleryResults(res filter.GalleryResult) g.Node {
	var content = NoSearchResultsMessage()

	if len(res.Cards) > 0 {
		cards := make([]g.Node, 0, len(res.Cards))
		for _, p := range res.Cards {
			cards = append(cards, PosterCard(p))
		}
		content = Div(
			ID("grid-view"),
			Class("grid grid-cols-1 sm:grid-cols-2 md:grid-cols-3 gap-4"),
			g.Group(cards),
		)
	}

	return g.Group([]g.Node{
		resultsStatus(res),
		content,
		paginationControls(res.Pagination),
	})
}

func resultsStatus(res filter.GalleryResult) g.Node {
	return Div(
		ID("results-status"),
		Class("flex justify-between text-sm text-gray-600 mb-4"),
		Role("status"),
		Span(g.Text(fmt.Sprintf("%d posters", res.Pagination.Total))),
		g.If(res.Matches != res.Pagination.Total,
			Span(g.Text(fmt.Sprintf("%d records", res.Matches))),
		),
	)
}

func pageButton(text string, page int, enabled bool, id string) g.Node {
	opts := []buttonOption{
		withType("button"),
		withAttributes(ID(id)),
	}
	if enabled {
		opts = append(opts, withAttributes(
			hx.Get(fmt.Sprintf("/gallery/results?page=%d", page)),
			hx.Include("#filters"),
			hx.Target("#results"),
			hx.Swap("innerHTML"),
		))
	} else {
		opts = append(opts, withDisabled())
	}
	return button(text, opts...)
}

func paginationControls(pg filter.Pagination) g.Node {
	return Div(
		ID("pagination"),
		Class("flex justify-center items-center gap-4 mt-6"),
		pageButton("Previous", pg.Page-1, pg.HasPrev, "prev-page"),
		Span(ID("page-info"), Class("text-sm text-gray-600"), g.Text(fmt.Sprintf("Page %d of %d", pg.Page, pg.TotalPages))),
		pageButton("Next", pg.Page+1, pg.HasNext, "next-page"),
	)
}

// PosterDetail renders the modal listing every record that shares a UID.
func PosterDetail(group []poster.Poster) g.Node {
	if len(group) == 0 {
		return nil
	}
	records := make([]g.Node, 0, len(group))
	for _, p := range group {
		records = append(records, posterRecord(p))
	}

	return Div(
		ID("poster-modal"),
		Class("fixed inset-0 bg-black bg-opacity-50 flex items-center justify-center z-50"),
		Div(
			Class("bg-white rounded-lg shadow-lg max-w-3xl w-full max-h-screen overflow-y-auto p-6"),
			Div(
				Class("flex justify-between items-center mb-4"),
				H2(Class("text-2xl font-bold"), g.Text(group[0].DisplayTitle())),
				buttonSecondary("Close",
					withType("button"),
					withAttributes(hx.On("click", "document.getElementById('poster-modal').remove()")),
				),
			),
			P(Class("text-sm text-gray-500 mb-4"), g.Text(fmt.Sprintf("%s: %d records", group[0].UID, len(group)))),
			g.Group(records),
		),
	)
}

func posterRecord(p poster.Poster) g.Node {
	return Div(
		Class("border-t pt-4 mt-4 grid grid-cols-1 md:grid-cols-2 gap-4"),
		posterImage(p.ImageURL(), "Poster image: "+p.DisplayTitle()),
		Div(
			Class("flex flex-col gap-1"),
			labelValue("ID", p.ID),
			labelValue("Company", p.DisplayCompany()),
			labelValue("Location", p.Location),
			g.If(p.Description != "", labelValue("Description", p.Description)),
			g.If(p.Keywords() != "", labelValue("Keywords", p.Keywords())),
			g.If(p.Objects != "", labelValue("Objects", p.Objects)),
			g.If(p.Transcription != "", P(Class("text-sm whitespace-pre-line mt-2"), g.Text(p.Transcription))),
		),
	)
}

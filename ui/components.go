package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Layout Components ----

func contentContainer(content ...g.Node) g.Node {
	return Div(
		Class("max-w-2xl mx-auto"),
		g.Group(content),
	)
}

func labelValue(label, value string) g.Node {
	return P(
		Class("text-sm text-gray-700"),
		Strong(g.Text(label+": ")),
		g.Text(value),
	)
}

// ---- Message Components ----

// LoadErrorMessage replaces a results area when the dataset failed to load.
func LoadErrorMessage() g.Node {
	return Div(
		ID("load-error"),
		Class("bg-red-100 border-red-500 text-red-700 px-4 py-3 rounded"),
		Role("alert"),
		g.Text("Error loading data. Please check the dataset source and try again later."),
	)
}

func NoSearchResultsMessage() g.Node {
	return P(
		Class("text-gray-500 py-8 text-center"),
		g.Text("Found no results"),
	)
}

func ValidationError(message string) g.Node {
	return Div(
		Class("bg-red-100 border-red-500 text-red-700 px-4 py-3 rounded"),
		g.Text(message),
	)
}

func ErrorPage(code int, message string) g.Node {
	return Page(
		fmt.Sprintf("Error %d", code),
		"", // no current path
		[]g.Node{
			contentContainer(
				pageHeader(fmt.Sprintf("Error %d", code)),
				P(g.Text(message)),
				actionButtons(
					button("Back to gallery", withHref("/")),
					buttonSecondary("Open map", withHref("/map")),
				),
			),
		},
	)
}

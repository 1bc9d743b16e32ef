package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func indicator() g.Node {
	return Div(
		ID("indicator"),
		Class("htmx-indicator flex items-center gap-2 text-blue-600"),
		Div(
			Class("w-4 h-4 border-2 border-blue-600 border-t-transparent rounded-full animate-spin"),
		),
		g.Text("Loading..."),
	)
}

func navLink(text, href, currentPath string) g.Node {
	class := "text-blue-500 hover:underline"
	if href == currentPath {
		class = "font-semibold text-gray-900"
	}
	return A(Href(href), Class(class), g.Text(text))
}

func navigation(currentPath string) g.Node {
	return Nav(
		Class("mb-8 border-b pb-4 flex items-center justify-between w-full"),
		A(Href("/"), Class("text-xl font-bold"), g.Text("Railway Poster Atlas")),
		indicator(),
		Div(
			Class("flex items-center space-x-4"),
			navLink("Gallery", "/", currentPath),
			navLink("Map", "/map", currentPath),
		),
	)
}

package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/poster-atlas/site/filter"
)

// filterForm renders every filter control. Any change re-requests endpoint
// with the whole form, without a page number, so results restart at page 1.
func filterForm(endpoint, target string, s filter.State, opts filter.Options) g.Node {
	return Form(
		ID("filters"),
		Class("mb-6"),
		hx.Get(endpoint),
		hx.Target(target),
		hx.Swap("innerHTML"),
		hx.Trigger("submit, change, keyup changed delay:300ms from:#search"),
		hx.Indicator("#indicator"),
		Div(
			Class("grid grid-cols-1 md:grid-cols-3 gap-4"),
			searchFilter(s.Query),
			companyFilter(s.Company, opts.Companies),
			elementFilter(s.Element, opts.Elements),
		),
		Div(
			Class("flex flex-wrap items-center gap-6 mt-4"),
			checkboxFilter("train", "Train", s.Train),
			checkboxFilter("seaside", "Seaside", s.Seaside),
			checkboxFilter("sports", "Sports", s.Sports),
			resetFilters(),
		),
	)
}

func searchFilter(value string) g.Node {
	return Div(
		Label(Class("block text-sm font-medium mb-1"), For("search"), g.Text("Search")),
		Input(
			Type("text"),
			Name("q"),
			ID("search"),
			Class("w-full p-2 border rounded-md"),
			Placeholder("Title, location, transcription..."),
			AutoComplete("off"),
			Value(value),
		),
	)
}

func selectOptions(value, allLabel string, values []string) []g.Node {
	nodes := []g.Node{Option(Value(""), g.Text(allLabel), g.If(value == "", Selected()))}
	for _, v := range values {
		nodes = append(nodes, Option(Value(v), g.Text(v), g.If(v == value, Selected())))
	}
	return nodes
}

func companyFilter(value string, companies []string) g.Node {
	return Div(
		Label(Class("block text-sm font-medium mb-1"), For("companyFilter"), g.Text("Railway company")),
		Select(
			Name("company"),
			ID("companyFilter"),
			Class("w-full p-2 border rounded-md"),
			g.Group(selectOptions(value, "All companies", companies)),
		),
	)
}

func elementFilter(value string, elements []string) g.Node {
	return Div(
		Label(Class("block text-sm font-medium mb-1"), For("elementFilter"), g.Text("Visual element")),
		Select(
			Name("element"),
			ID("elementFilter"),
			Class("w-full p-2 border rounded-md"),
			g.Group(selectOptions(value, "All elements", elements)),
		),
	)
}

func checkboxFilter(name, label string, checked bool) g.Node {
	return Label(
		Class("inline-flex items-center gap-2 text-sm"),
		Input(
			Type("checkbox"),
			Name(name),
			ID(name+"Filter"),
			Value("true"),
			g.If(checked, Checked()),
		),
		g.Text(label),
	)
}

func resetFilters() g.Node {
	return buttonSecondary("Reset",
		withType("button"),
		withClass("ml-auto"),
		withAttributes(
			ID("resetFilters"),
			hx.On("click", "var f = this.closest('form'); f.querySelectorAll('input[type=text], select').forEach(function(e) { e.value = '' }); f.querySelectorAll('input[type=checkbox]').forEach(function(e) { e.checked = false }); htmx.trigger(f, 'submit')"),
		),
	)
}

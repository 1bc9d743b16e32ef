package handlers

import (
	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"

	"github.com/poster-atlas/site/catalog"
	"github.com/poster-atlas/site/filter"
	"github.com/poster-atlas/site/poster"
	"github.com/poster-atlas/site/ui"
)

// View interface defines the contract for the gallery and map renderers
type View interface {
	// Results renders the initial content of the results container
	Results(all []poster.Poster, s filter.State) g.Node

	// Update renders the htmx fragment swapped in after a control change
	Update(all []poster.Poster, s filter.State) g.Node

	// Page wraps results in the full page with its filter controls
	Page(s filter.State, opts filter.Options, results g.Node) g.Node
}

// handlePage renders the full page for a view. Until the catalog is ready
// the results container holds the load error message and nothing else.
func handlePage(c *fiber.Ctx, v View) error {
	cat := catalog.Get()
	s := filterStateFromQuery(c)

	results := ui.LoadErrorMessage()
	if cat.Status() == catalog.StatusReady {
		results = v.Results(cat.Posters(), s)
	}
	return render(c, v.Page(s, cat.Options(), results))
}

// handleResults re-runs the filter for a view and renders the fragment.
func handleResults(c *fiber.Ctx, v View) error {
	cat := catalog.Get()
	if cat.Status() != catalog.StatusReady {
		return render(c, ui.LoadErrorMessage())
	}
	return render(c, v.Update(cat.Posters(), filterStateFromQuery(c)))
}

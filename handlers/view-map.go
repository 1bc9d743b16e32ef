package handlers

import (
	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"

	"github.com/poster-atlas/site/catalog"
	"github.com/poster-atlas/site/filter"
	"github.com/poster-atlas/site/metrics"
	"github.com/poster-atlas/site/poster"
	"github.com/poster-atlas/site/ui"
)

// MapView implements the View interface for the marker map
type MapView struct{}

func (MapView) result(all []poster.Poster, s filter.State, selectedUID string) filter.MapResult {
	res := filter.Map(all, s, selectedUID)
	metrics.FilterResults.WithLabelValues("map").Observe(float64(len(res.Markers)))
	return res
}

func (v MapView) Results(all []poster.Poster, s filter.State) g.Node {
	return ui.MapResults(v.result(all, s, ""))
}

func (v MapView) Update(all []poster.Poster, s filter.State) g.Node {
	return ui.MapResultsUpdate(v.result(all, s, ""))
}

func (MapView) Page(s filter.State, opts filter.Options, results g.Node) g.Node {
	return ui.MapPage(s, opts, results)
}

func HandleMap(c *fiber.Ctx) error {
	return handlePage(c, MapView{})
}

func HandleMapResults(c *fiber.Ctx) error {
	return handleResults(c, MapView{})
}

// HandleMapSelect renders the side panel for the selected UID and resends
// the whole marker set with that UID's markers flagged.
func HandleMapSelect(c *fiber.Ctx) error {
	cat := catalog.Get()
	if cat.Status() != catalog.StatusReady {
		return render(c, ui.LoadErrorMessage())
	}

	uid := c.Query("uid")
	if uid == "" {
		return fiber.NewError(fiber.StatusBadRequest, "uid is required")
	}
	res := MapView{}.result(cat.Posters(), filterStateFromQuery(c), uid)
	return render(c, ui.MapSelection(res))
}

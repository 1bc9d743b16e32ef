package handlers

import (
	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"

	"github.com/poster-atlas/site/catalog"
	"github.com/poster-atlas/site/config"
	"github.com/poster-atlas/site/filter"
	"github.com/poster-atlas/site/metrics"
	"github.com/poster-atlas/site/poster"
	"github.com/poster-atlas/site/ui"
)

// GalleryView implements the View interface for the paginated gallery
type GalleryView struct{}

func (GalleryView) Results(all []poster.Poster, s filter.State) g.Node {
	res := filter.Gallery(all, s, config.PostersPerPage)
	metrics.FilterResults.WithLabelValues("gallery").Observe(float64(res.Matches))
	return ui.GalleryResults(res)
}

func (v GalleryView) Update(all []poster.Poster, s filter.State) g.Node {
	return v.Results(all, s)
}

func (GalleryView) Page(s filter.State, opts filter.Options, results g.Node) g.Node {
	return ui.GalleryPage(s, opts, results)
}

func HandleGallery(c *fiber.Ctx) error {
	return handlePage(c, GalleryView{})
}

func HandleGalleryResults(c *fiber.Ctx) error {
	return handleResults(c, GalleryView{})
}

// HandlePosterDetail renders every record sharing the UID in a modal.
func HandlePosterDetail(c *fiber.Ctx) error {
	cat := catalog.Get()
	if cat.Status() != catalog.StatusReady {
		return render(c, ui.LoadErrorMessage())
	}

	uid, err := uidParam(c)
	if err != nil {
		return err
	}
	group := filter.Group(cat.Posters(), uid)
	if len(group) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Poster not found")
	}
	return render(c, ui.PosterDetail(group))
}

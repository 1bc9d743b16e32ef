package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/poster-atlas/site/catalog"
	"github.com/poster-atlas/site/filter"
	"github.com/poster-atlas/site/metrics"
	"github.com/poster-atlas/site/poster"
)

type postersResponse struct {
	Total   int             `json:"total"`
	State   filter.State    `json:"state"`
	Posters []poster.Poster `json:"posters"`
}

func catalogUnavailable(c *fiber.Ctx, cat *catalog.Catalog) error {
	body := fiber.Map{"status": cat.Status().String()}
	if err := cat.Err(); err != nil {
		body["error"] = err.Error()
	}
	return c.Status(fiber.StatusServiceUnavailable).JSON(body)
}

// HandlePostersAPI returns the canonical posters matching the filter
// parameters, in dataset order and without de-duplication.
func HandlePostersAPI(c *fiber.Ctx) error {
	cat := catalog.Get()
	if cat.Status() != catalog.StatusReady {
		return catalogUnavailable(c, cat)
	}

	s := filterStateFromQuery(c)
	s.Page = 0
	posters := filter.Apply(cat.Posters(), s)
	metrics.FilterResults.WithLabelValues("api").Observe(float64(len(posters)))

	return c.JSON(postersResponse{
		Total:   len(posters),
		State:   s,
		Posters: posters,
	})
}

// HandleOptionsAPI returns the dropdown choices.
func HandleOptionsAPI(c *fiber.Ctx) error {
	cat := catalog.Get()
	if cat.Status() != catalog.StatusReady {
		return catalogUnavailable(c, cat)
	}
	return c.JSON(cat.Options())
}

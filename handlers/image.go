package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/poster-atlas/site/catalog"
	"github.com/poster-atlas/site/filter"
	"github.com/poster-atlas/site/metrics"
	"github.com/poster-atlas/site/thumb"
)

// HandlePosterImage serves a webp thumbnail of the poster with the UID,
// picking the record named by the id query parameter when present. Posters without an image, and remote images that cannot be
// processed, redirect to the image URL instead.
func HandlePosterImage(c *fiber.Ctx) error {
	size := c.Params("size")
	if _, ok := thumb.Sizes[size]; !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid image size")
	}

	cat := catalog.Get()
	if cat.Status() != catalog.StatusReady {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Catalog not loaded")
	}

	uid, err := uidParam(c)
	if err != nil {
		return err
	}
	group := filter.Group(cat.Posters(), uid)
	if len(group) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Poster not found")
	}
	p := group[0]
	if id := c.Query("id"); id != "" {
		for _, member := range group {
			if member.ID == id {
				p = member
				break
			}
		}
	}
	if !p.HasImage() {
		metrics.ThumbnailsTotal.WithLabelValues(size, "direct").Inc()
		return c.Redirect(p.ImageURL(), fiber.StatusFound)
	}

	data, err := thumb.Get(p.ImageURL(), size)
	if err != nil {
		if errors.Is(err, thumb.ErrUnknownSize) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid image size")
		}
		zap.S().Warnf("[handlers] thumbnail for %s failed: %v", p.UID, err)
		metrics.ThumbnailsTotal.WithLabelValues(size, "error").Inc()
		return c.Redirect(p.ImageURL(), fiber.StatusFound)
	}

	metrics.ThumbnailsTotal.WithLabelValues(size, "ok").Inc()
	c.Set(fiber.HeaderContentType, "image/webp")
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Send(data)
}

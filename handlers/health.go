package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/poster-atlas/site/catalog"
	"github.com/poster-atlas/site/thumb"
)

// HandleHealth returns the health status of the application
func HandleHealth(c *fiber.Ctx) error {
	cat := catalog.Get()
	health := fiber.Map{
		"status":  "ok",
		"catalog": cat.Status().String(),
		"posters": len(cat.Posters()),
		"cache":   thumb.Stats(),
	}

	// Only a loaded catalog can serve pages
	if cat.Status() != catalog.StatusReady {
		health["status"] = "unhealthy"
		if err := cat.Err(); err != nil {
			health["error"] = err.Error()
		}
		c.Status(fiber.StatusServiceUnavailable)
	}

	return c.JSON(health)
}

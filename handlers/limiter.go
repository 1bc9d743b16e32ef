package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/poster-atlas/site/config"
)

// GlobalRateLimiter is the global rate limiter middleware
var GlobalRateLimiter = limiter.New(limiter.Config{
	Max:        config.ServerRateLimitMax,
	Expiration: config.ServerRateLimitExp,
})

// ImageRateLimiter is a stricter per IP limit for the thumbnail proxy,
// which fetches and re-encodes remote images.
var ImageRateLimiter = limiter.New(limiter.Config{
	Max:        config.ImageRateLimitMax,
	Expiration: config.ImageRateLimitExp,
	KeyGenerator: func(c *fiber.Ctx) string {
		// Rate limit per IP address
		return c.IP()
	},
	LimitReached: func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusTooManyRequests).
			SendString("Too many image requests. Please try again later.")
	},
})

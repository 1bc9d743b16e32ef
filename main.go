package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/poster-atlas/site/catalog"
	"github.com/poster-atlas/site/config"
	h "github.com/poster-atlas/site/handlers"
	"github.com/poster-atlas/site/metrics"
	"github.com/poster-atlas/site/thumb"
	"github.com/poster-atlas/site/ui"
)

func main() {
	settings, err := config.Load(os.Getenv("POSTERS_CONFIG"))
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	zl, err := settings.NewLogger()
	if err != nil {
		log.Fatalf("error initializing logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()
	zap.ReplaceGlobals(zl)

	// Load the dataset once. A failed load keeps serving so every page can
	// show the error message.
	if err := catalog.Init(context.Background(), settings.DataSource); err != nil {
		zap.S().Errorf("[main] dataset unavailable: %v", err)
	}
	cat := catalog.Get()
	metrics.SetCatalog(cat.Status().String(), len(cat.Posters()))

	// Initialize thumbnail cache
	if settings.ImageProxy {
		if err := thumb.Init(); err != nil {
			zap.S().Fatalf("Failed to initialize thumbnail cache: %v", err)
		}
	}
	ui.UseImageProxy(settings.ImageProxy)

	app := fiber.New(fiber.Config{
		ErrorHandler: h.CustomErrorHandler,
		ReadTimeout:  config.ServerReadTimeout,  // Prevent long-running requests
		WriteTimeout: config.ServerWriteTimeout, // Prevent long-running responses
	})

	app.Use(recover.New())
	app.Use(metrics.Middleware())

	// Add rate limiter
	app.Use(h.GlobalRateLimiter)

	// Add logger middleware
	app.Use(logger.New())

	// Static files and utility
	app.Static("/", settings.StaticDir)
	app.Get("/.well-known/appspecific/com.chrome.devtools.json", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	// Gallery
	app.Get("/", h.HandleGallery)
	app.Get("/gallery/results", h.HandleGalleryResults)
	app.Get("/poster/:uid", h.HandlePosterDetail)

	// Map
	app.Get("/map", h.HandleMap)
	app.Get("/map/results", h.HandleMapResults)
	app.Get("/map/select", h.HandleMapSelect)

	// Thumbnails
	if settings.ImageProxy {
		app.Get("/image/:uid/:size", h.ImageRateLimiter, h.HandlePosterImage)
	}

	// API group
	api := app.Group("/api")
	api.Get("/posters", h.HandlePostersAPI)
	api.Get("/options", h.HandleOptionsAPI)

	// Health check and metrics
	app.Get("/health", h.HandleHealth)
	app.Get("/metrics", metrics.Handler())

	zap.S().Infof("Starting server on %s (env=%s, data=%s)", settings.Addr(), settings.Env, settings.DataSource)
	if err := app.Listen(settings.Addr()); err != nil {
		zap.S().Fatalf("server stopped: %v", err)
	}
}

package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(Middleware())
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/poster/:uid", func(c *fiber.Ctx) error { return c.SendString(c.Params("uid")) })
	app.Get("/missing", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusNotFound, "nope") })
	app.Get("/metrics", Handler())
	return app
}

func TestMiddlewareRecordsRequests(t *testing.T) {
	app := newApp()

	tests := []struct {
		target string
		path   string
		status string
	}{
		{target: "/ok", path: "/ok", status: "200"},
		{target: "/poster/X12", path: "/poster/:uid", status: "200"},
		{target: "/missing", path: "/missing", status: "404"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", tt.path, tt.status))

			resp, err := app.Test(httptest.NewRequest("GET", tt.target, nil))
			require.NoError(t, err)
			resp.Body.Close()

			after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", tt.path, tt.status))
			assert.Equal(t, before+1, after)
		})
	}

	assert.Positive(t, testutil.CollectAndCount(httpRequestDuration))
}

func TestSetCatalog(t *testing.T) {
	SetCatalog("ready", 20)

	assert.Equal(t, 20.0, testutil.ToFloat64(PostersLoaded))
	assert.Equal(t, 1.0, testutil.ToFloat64(CatalogStatus.WithLabelValues("ready")))
	assert.Equal(t, 0.0, testutil.ToFloat64(CatalogStatus.WithLabelValues("load_error")))

	SetCatalog("load_error", 0)
	assert.Equal(t, 0.0, testutil.ToFloat64(CatalogStatus.WithLabelValues("ready")))
	assert.Equal(t, 1.0, testutil.ToFloat64(CatalogStatus.WithLabelValues("load_error")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	app := newApp()
	FilterResults.WithLabelValues("gallery").Observe(18)

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "posters_filter_results"))
	assert.True(t, strings.Contains(string(body), "posters_catalog_records"))
}

package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

var (
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "posters",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "posters",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// PostersLoaded is the number of records in the loaded catalog.
	PostersLoaded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "posters",
			Name:      "catalog_records",
			Help:      "Number of poster records loaded",
		},
	)

	// CatalogStatus is 1 for the catalog's current status and 0 for the rest.
	CatalogStatus = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "posters",
			Name:      "catalog_status",
			Help:      "Catalog load status",
		},
		[]string{"status"},
	)

	// FilterResults observes how many posters each filter request matched.
	FilterResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "posters",
			Name:      "filter_results",
			Help:      "Number of posters matched per filter request",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"view"}, // "gallery" / "map" / "api"
	)

	// ThumbnailsTotal counts image proxy outcomes.
	ThumbnailsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "posters",
			Name:      "thumbnails_total",
			Help:      "Thumbnail proxy requests by outcome",
		},
		[]string{"size", "result"}, // "ok" / "error" / "direct"
	)
)

func init() {
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(PostersLoaded)
	prometheus.MustRegister(CatalogStatus)
	prometheus.MustRegister(FilterResults)
	prometheus.MustRegister(ThumbnailsTotal)
}

// Middleware records HTTP request duration and count.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		path := normalizePath(c.Route().Path)
		method := c.Method()
		code := strconv.Itoa(status)

		httpRequestDuration.WithLabelValues(method, path, code).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(method, path, code).Inc()
		return err
	}
}

// SetCatalog publishes the catalog status and record count.
func SetCatalog(status string, records int) {
	for _, s := range []string{"idle", "loading", "ready", "load_error"} {
		v := 0.0
		if s == status {
			v = 1
		}
		CatalogStatus.WithLabelValues(s).Set(v)
	}
	PostersLoaded.Set(float64(records))
}

// Handler serves the prometheus registry.
func Handler() fiber.Handler {
	h := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c *fiber.Ctx) error {
		h(c.Context())
		return nil
	}
}

// normalizePath keeps route patterns as labels so path params do not
// blow up cardinality.
func normalizePath(path string) string {
	if path == "" {
		return "unknown"
	}
	return path
}

package config

import "time"

const (
	// PostersPerPage is the number of gallery cards on one page.
	PostersPerPage = 9

	// SnippetLength is the number of transcription characters shown on a card.
	SnippetLength = 80

	// NotApplicable is the sentinel value the dataset uses for empty answers.
	NotApplicable = "N/A"

	// PlaceholderImageURL is used when a poster has no usable image link.
	PlaceholderImageURL = "https://via.placeholder.com/200x150?text=Preview+Not+Available"
)

// Map defaults. Centred on the UK; zoom 6 shows the whole country.
const (
	MapCenterLat = 54.5
	MapCenterLon = -2.5
	MapZoom      = 6

	TileURL         = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	TileAttribution = "© OpenStreetMap contributors"
)

// Frontend assets
const (
	TailwindCSSURL = "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css"
	HTMXURL        = "https://unpkg.com/htmx.org@1.9.12"
	LeafletCSSURL  = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"
	LeafletJSURL   = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"
)

// Server
const (
	ServerReadTimeout  = 30 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerRateLimitMax = 120
	ServerRateLimitExp = 1 * time.Minute
	ImageRateLimitMax  = 60
	ImageRateLimitExp  = 1 * time.Minute
)

// Thumbnails
const (
	ImageFetchTimeout = 10 * time.Second
	ImageMaxBytes     = 20 << 20
	ImageCacheTTL     = 6 * time.Hour
)

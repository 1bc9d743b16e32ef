package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poster-atlas/site/fetch"
)

const sampleJSON = `[
	{"uid": "X12", "title": "Scarborough", "Q5_RailwayCompany": "LNER", "Q6_ElementsChecklist": "Beach; Sea", "Latitude": 54.28, "Longitude": -0.4},
	{"uid": "X12", "title": "Scarborough", "Q5_RailwayCompany": "LNER", "Latitude": "53.96", "Longitude": "-1.08"},
	{"id": 3, "title": "Bath", "Q5_RailwayCompany": "N/A", "Q6_ElementsChecklist": "Abbey", "Latitude": null},
	null
]`

func writeData(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	c := New(writeData(t, sampleJSON))
	assert.Equal(t, StatusIdle, c.Status())

	require.NoError(t, c.Load(context.Background()))

	assert.Equal(t, StatusReady, c.Status())
	assert.NoError(t, c.Err())
	posters := c.Posters()
	require.Len(t, posters, 4)
	assert.Equal(t, "X12", posters[0].UID)
	assert.Equal(t, "3", posters[2].UID)
	assert.True(t, posters[1].Plottable())
	assert.False(t, posters[2].Plottable())
	assert.Equal(t, "", posters[3].UID, "null record degrades to an empty poster")

	opts := c.Options()
	assert.Equal(t, []string{"LNER"}, opts.Companies)
	assert.Equal(t, []string{"Abbey", "Beach", "Sea"}, opts.Elements)
}

func TestLoadFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleJSON))
	}))
	defer srv.Close()

	c := New(srv.URL + "/data.json")
	require.NoError(t, c.Load(context.Background()))
	assert.Len(t, c.Posters(), 4)
}

func TestLoadFailures(t *testing.T) {
	missing := httptest.NewServer(http.NotFoundHandler())
	defer missing.Close()

	refused := httptest.NewServer(http.NotFoundHandler())
	refusedURL := refused.URL
	refused.Close()

	tests := []struct {
		name   string
		source string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "missing file",
			source: filepath.Join(t.TempDir(), "absent.json"),
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, os.ErrNotExist))
			},
		},
		{
			name:   "non 2xx response",
			source: missing.URL + "/data.json",
			check: func(t *testing.T, err error) {
				var statusErr *fetch.StatusError
				require.True(t, errors.As(err, &statusErr))
				assert.Equal(t, http.StatusNotFound, statusErr.Code)
			},
		},
		{
			name:   "network error",
			source: refusedURL + "/data.json",
		},
		{
			name:   "invalid json",
			source: writeData(t, `[{"uid": "X12",`),
		},
		{
			name:   "not an array",
			source: writeData(t, `{"uid": "X12"}`),
		},
		{
			name:   "null document",
			source: writeData(t, `null`),
		},
		{
			name:   "trailing data",
			source: writeData(t, `[{"uid": "A"}] {"garbage": true}`),
		},
		{
			name:   "scalar element",
			source: writeData(t, `[{"uid": "A"}, 42]`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.source)
			err := c.Load(context.Background())
			require.Error(t, err)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, tt.source, loadErr.Source)
			assert.Equal(t, StatusLoadError, c.Status())
			assert.Equal(t, err, c.Err())
			assert.Empty(t, c.Posters())
			assert.Empty(t, c.Options().Companies)
			if tt.check != nil {
				tt.check(t, err)
			}
		})
	}
}

func TestLoadOnlyOnce(t *testing.T) {
	c := New(writeData(t, sampleJSON))
	require.NoError(t, c.Load(context.Background()))
	assert.Error(t, c.Load(context.Background()))
	assert.Equal(t, StatusReady, c.Status())
}

func TestLoadCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(writeData(t, sampleJSON))
	err := c.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StatusLoadError, c.Status())
}

func TestNewFromPosters(t *testing.T) {
	posters, err := Decode([]byte(sampleJSON))
	require.NoError(t, err)

	c := NewFromPosters(posters)
	assert.Equal(t, StatusReady, c.Status())
	assert.Equal(t, []string{"LNER"}, c.Options().Companies)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "loading", StatusLoading.String())
	assert.Equal(t, "ready", StatusReady.String())
	assert.Equal(t, "load_error", StatusLoadError.String())
}

func TestGlobal(t *testing.T) {
	c := NewFromPosters(nil)
	SetForTesting(c)
	assert.Same(t, c, Get())
}

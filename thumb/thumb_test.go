package thumb

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poster-atlas/site/fetch"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestRender(t *testing.T) {
	tests := []struct {
		name         string
		srcW, srcH   int
		size         Size
		wantW, wantH int
	}{
		{name: "downscale keeps aspect", srcW: 800, srcH: 1200, size: Sizes["480w"], wantW: 480, wantH: 720},
		{name: "no upscale", srcW: 100, srcH: 150, size: Sizes["480w"], wantW: 100, wantH: 150},
		{name: "small variant", srcW: 640, srcH: 320, size: Sizes["160w"], wantW: 160, wantH: 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Render(pngBytes(t, tt.srcW, tt.srcH), tt.size)
			require.NoError(t, err)

			cfg, err := webp.DecodeConfig(bytes.NewReader(out))
			require.NoError(t, err)
			assert.Equal(t, tt.wantW, cfg.Width)
			assert.Equal(t, tt.wantH, cfg.Height)
		})
	}
}

func TestRenderRejectsGarbage(t *testing.T) {
	_, err := Render([]byte("not an image"), Sizes["160w"])
	assert.Error(t, err)
}

func TestGet(t *testing.T) {
	require.NoError(t, Init())

	var hits atomic.Int32
	img := pngBytes(t, 300, 200)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/poster_large.png" {
			http.NotFound(w, r)
			return
		}
		hits.Add(1)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(img)
	}))
	defer srv.Close()

	src := srv.URL + "/poster_large.png"

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := Get(src, "160w")
			assert.NoError(t, err)
			assert.NotEmpty(t, out)
		}()
	}
	wg.Wait()
	thumbCache.Wait()

	out, err := Get(src, "160w")
	require.NoError(t, err)
	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 160, cfg.Width)
	assert.LessOrEqual(t, hits.Load(), int32(8))
	assert.GreaterOrEqual(t, Stats().Hits, uint64(1))

	t.Run("unknown size", func(t *testing.T) {
		_, err := Get(src, "9000w")
		assert.True(t, errors.Is(err, ErrUnknownSize))
	})

	t.Run("remote 404", func(t *testing.T) {
		_, err := Get(srv.URL+"/missing.png", "160w")
		var statusErr *fetch.StatusError
		assert.True(t, errors.As(err, &statusErr))
	})
}

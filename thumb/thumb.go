package thumb

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
	"golang.org/x/sync/singleflight"

	"github.com/poster-atlas/site/cache"
	"github.com/poster-atlas/site/config"
	"github.com/poster-atlas/site/fetch"
)

// Size is one thumbnail variant.
type Size struct {
	Width   int
	Quality float32
}

// Sizes are the variants served by the image proxy, keyed by URL suffix.
var Sizes = map[string]Size{
	"160w":  {Width: 160, Quality: 60},
	"480w":  {Width: 480, Quality: 70},
	"1200w": {Width: 1200, Quality: 80},
}

// ErrUnknownSize is returned for a size suffix not in Sizes.
var ErrUnknownSize = errors.New("unknown thumbnail size")

var (
	thumbCache *cache.Cache[[]byte]
	inflight   singleflight.Group
)

// Init creates the thumbnail cache. It must be called before Get.
func Init() error {
	var err error
	thumbCache, err = cache.New("Thumbnail Cache", 64<<20, config.ImageCacheTTL, func(v []byte) int64 {
		return int64(len(v))
	})
	if err != nil {
		return fmt.Errorf("failed to initialize thumbnail cache: %w", err)
	}
	zap.S().Infof("[thumb] cache initialized")
	return nil
}

// Get returns the webp thumbnail of src at the named size. Concurrent
// requests for the same variant share one fetch.
func Get(src, size string) ([]byte, error) {
	variant, ok := Sizes[size]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSize, size)
	}
	if thumbCache == nil {
		return nil, errors.New("thumbnail cache not initialized")
	}

	key := size + "|" + src
	if b, found := thumbCache.Get(key); found {
		return b, nil
	}

	v, err, _ := inflight.Do(key, func() (any, error) {
		data, err := fetch.Get(src, config.ImageFetchTimeout)
		if err != nil {
			return nil, err
		}
		if len(data) > config.ImageMaxBytes {
			return nil, fmt.Errorf("image %s is %d bytes, over the %d byte limit", src, len(data), config.ImageMaxBytes)
		}
		out, err := Render(data, variant)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", src, err)
		}
		thumbCache.Set(key, out, 0)
		zap.S().Debugf("[thumb] rendered %s at %s: %d bytes", src, size, len(out))
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Render decodes an image, scales it to the size's width keeping the aspect
// ratio, and encodes it as webp. Images narrower than the target are not
// upscaled.
func Render(data []byte, size Size) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, errors.New("empty image")
	}

	w := size.Width
	if w > bounds.Dx() {
		w = bounds.Dx()
	}
	h := bounds.Dy() * w / bounds.Dx()
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Lossless: false, Quality: size.Quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// Stats returns thumbnail cache metrics.
func Stats() cache.Stats {
	if thumbCache == nil {
		return cache.Stats{Name: "Thumbnail Cache"}
	}
	return thumbCache.Stats()
}

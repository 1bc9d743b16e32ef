package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/poster-atlas/site/fetch"
	"github.com/poster-atlas/site/filter"
	"github.com/poster-atlas/site/poster"
)

// Status is the lifecycle state of the dataset.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusLoadError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusLoadError:
		return "load_error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// LoadError reports why the dataset could not be loaded.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load posters from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Catalog holds the poster dataset. It is written once by Load and read-only
// afterwards.
type Catalog struct {
	mu      sync.RWMutex
	source  string
	status  Status
	err     error
	posters []poster.Poster
	options filter.Options
}

// New returns an idle catalog for source, a file path or an http(s) URL.
func New(source string) *Catalog {
	return &Catalog{source: source}
}

// NewFromPosters returns a ready catalog over already normalized posters.
func NewFromPosters(posters []poster.Poster) *Catalog {
	return &Catalog{
		source:  "memory",
		status:  StatusReady,
		posters: posters,
		options: filter.BuildOptions(posters),
	}
}

// Load reads the dataset once. Any failure leaves the catalog empty in the
// LoadError state; there is no retry and no partial load.
func (c *Catalog) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.status != StatusIdle {
		defer c.mu.Unlock()
		return fmt.Errorf("catalog already %s", c.status)
	}
	c.status = StatusLoading
	c.mu.Unlock()

	posters, err := read(ctx, c.source)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.status = StatusLoadError
		c.err = &LoadError{Source: c.source, Err: err}
		zap.S().Errorf("[catalog] %v", c.err)
		return c.err
	}

	c.posters = posters
	c.options = filter.BuildOptions(posters)
	c.status = StatusReady
	zap.S().Infof("[catalog] loaded %d posters from %s (%d companies, %d elements)",
		len(posters), c.source, len(c.options.Companies), len(c.options.Elements))
	return nil
}

// Status returns the current lifecycle state.
func (c *Catalog) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// Err returns the load failure, if any.
func (c *Catalog) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

// Source returns where the dataset is read from.
func (c *Catalog) Source() string {
	return c.source
}

// Posters returns the dataset. Callers must not modify the returned slice.
func (c *Catalog) Posters() []poster.Poster {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.posters
}

// Options returns the dropdown choices computed at load time.
func (c *Catalog) Options() filter.Options {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.options
}

func read(ctx context.Context, source string) ([]poster.Poster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var data []byte
	var err error
	if fetch.IsURL(source) {
		data, err = fetch.Get(source, 0)
	} else {
		data, err = os.ReadFile(filepath.Clean(source))
	}
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode parses a JSON array of poster records and normalizes each one.
func Decode(data []byte) ([]poster.Poster, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode posters: %w", err)
	}
	if raw == nil {
		return nil, errors.New("decode posters: top-level value is not an array")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("decode posters: trailing data after array")
	}

	posters := make([]poster.Poster, 0, len(raw))
	for _, r := range raw {
		posters = append(posters, poster.Normalize(r))
	}
	return posters, nil
}

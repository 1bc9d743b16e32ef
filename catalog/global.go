package catalog

import (
	"context"
	"sync"
)

var (
	current *Catalog
	once    sync.Once
)

// Init creates the process-wide catalog and loads it. The catalog is kept
// even when loading fails so pages can report the LoadError state.
func Init(ctx context.Context, source string) error {
	var err error
	once.Do(func() {
		current = New(source)
		err = current.Load(ctx)
	})
	return err
}

// Get returns the process-wide catalog.
func Get() *Catalog {
	if current == nil {
		panic("Catalog not initialized. Call catalog.Init() first.")
	}
	return current
}

// SetForTesting replaces the process-wide catalog.
func SetForTesting(c *Catalog) {
	current = c
}

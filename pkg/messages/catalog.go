package messages

import (
	"context"
	"maps"
	"slices"
)

// Catalog maps rule keys (e.g. "required", "range:$1:$2") to message templates.
type Catalog map[string]string

// Merge returns a new catalog holding c and then others; later entries win.
func (c Catalog) Merge(others ...Catalog) Catalog {
	out := maps.Clone(c)
	if out == nil {
		out = make(Catalog)
	}
	for _, o := range others {
		maps.Copy(out, o)
	}
	return out
}

// Keys returns the rule keys, sorted.
func (c Catalog) Keys() []string {
	return slices.Sorted(maps.Keys(c))
}

// Source produces a catalog.
type Source interface {
	Load(ctx context.Context) (Catalog, error)
}

// Load loads every source in order and merges the results; later sources win.
func Load(ctx context.Context, sources ...Source) (Catalog, error) {
	out := make(Catalog)
	for _, src := range sources {
		c, err := src.Load(ctx)
		if err != nil {
			return nil, err
		}
		maps.Copy(out, c)
	}
	return out, nil
}

package messages

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Parser decodes a message file.
type Parser interface {
	// Parse decodes content into a catalog. Every value must be a string.
	Parse(ctx context.Context, content string) (Catalog, error)

	// SupportsFileExtension reports whether the parser handles ext. The
	// extension may or may not include a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// toCatalog checks that every decoded value is a string.
func toCatalog(data map[string]any) (Catalog, error) {
	c := make(Catalog, len(data))
	for key, val := range data {
		s, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("%w: key %q has %T", ErrInvalidTemplate, key, val)
		}
		c[key] = s
	}
	return c, nil
}

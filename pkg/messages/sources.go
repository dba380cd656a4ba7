package messages

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
)

// MapSource is an in-memory catalog.
type MapSource struct {
	Data Catalog
}

// Load implements Source. The returned catalog is a copy.
func (s *MapSource) Load(_ context.Context) (Catalog, error) {
	if s.Data == nil {
		return make(Catalog), nil
	}
	return maps.Clone(s.Data), nil
}

// FileSource reads a single message file from disk.
type FileSource struct {
	parser Parser
	path   string
}

// NewFileSource creates a FileSource. Use NewParserForFile to pick the
// parser from the extension.
func NewFileSource(parser Parser, path string) *FileSource {
	return &FileSource{parser: parser, path: path}
}

// Load implements Source.
func (s *FileSource) Load(ctx context.Context) (Catalog, error) {
	if s.parser == nil || s.path == "" {
		return nil, fmt.Errorf("%w: file source needs a parser and a path", ErrInvalidSource)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return parseFile(ctx, s.parser, s.path, content)
}

// FSSource reads every .json, .yaml and .yml file directly under dir of an
// fs.FS, such as an embed.FS. Files are merged in lexical order, so a later
// file overrides keys of an earlier one. Subdirectories are ignored.
type FSSource struct {
	fsys fs.FS
	dir  string
}

// NewFSSource creates an FSSource. An empty dir means ".".
func NewFSSource(fsys fs.FS, dir string) *FSSource {
	if dir == "" {
		dir = "."
	}
	return &FSSource{fsys: fsys, dir: dir}
}

// NewDirectorySource is NewFSSource over a directory on disk.
func NewDirectorySource(dir string) *FSSource {
	return NewFSSource(os.DirFS(dir), ".")
}

// Load implements Source.
func (s *FSSource) Load(ctx context.Context) (Catalog, error) {
	if s.fsys == nil {
		return nil, fmt.Errorf("%w: fs source needs a file system", ErrInvalidSource)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingDirectoryCancelled, err)
	}

	entries, err := fs.ReadDir(s.fsys, s.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	out := make(Catalog)
	found := false
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parser := NewParserForFile(entry.Name())
		if parser == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingDirectoryCancelled, err)
		}

		name := path.Join(s.dir, entry.Name())
		content, err := fs.ReadFile(s.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		c, err := parseFile(ctx, parser, name, content)
		if err != nil {
			return nil, err
		}
		maps.Copy(out, c)
		found = true
	}

	if !found {
		return nil, fmt.Errorf("%w in %q", ErrNoCatalogFiles, s.dir)
	}
	return out, nil
}

func parseFile(ctx context.Context, parser Parser, name string, content []byte) (Catalog, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, name)
	}
	c, err := parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", name, err))
	}
	return c, nil
}

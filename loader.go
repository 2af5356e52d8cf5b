package blitgen

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	sourceloader "github.com/goliatone/go-blitmask/internal/source/loader"
	"github.com/goliatone/go-blitmask/pkg/source"
)

// NewLoader constructs a template loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...source.LoaderOption) source.Loader {
	cfg := source.NewLoaderOptions(options...)
	return sourceloader.New(cfg)
}

// LoadFS loads every template at the root of fsys in lexical order.
func LoadFS(ctx context.Context, fsys fs.FS, options ...source.LoaderOption) ([]source.Template, error) {
	sources, err := source.Discover(fsys)
	if err != nil {
		return nil, fmt.Errorf("blitgen: discover templates: %w", err)
	}
	loader := NewLoader(append([]source.LoaderOption{source.WithFileSystem(fsys)}, options...)...)

	out := make([]source.Template, 0, len(sources))
	for _, src := range sources {
		tmpl, err := loader.Load(ctx, src)
		if err != nil {
			return nil, err
		}
		out = append(out, tmpl)
	}
	return out, nil
}

// LoadDir loads every template in dir.
func LoadDir(ctx context.Context, dir string, options ...source.LoaderOption) ([]source.Template, error) {
	return LoadFS(ctx, os.DirFS(dir), options...)
}

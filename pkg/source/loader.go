package source

import (
	"context"
	"io/fs"
)

// Loader reads templates from files or fs.FS entries. Implementations live
// under internal/source but satisfy this contract.
type Loader interface {
	Load(ctx context.Context, src Source) (Template, error)
}

// LoaderOptions configures how a Loader resolves sources.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS sources. Nil disables them.
	FileSystem fs.FS

	// Kinds overrides the file-name inference for the named templates.
	Kinds map[string]Kind
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for SourceKindFS sources.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithKind forces the kind of the template with the given canonical name.
func WithKind(name string, kind Kind) LoaderOption {
	return func(opts *LoaderOptions) {
		if opts.Kinds == nil {
			opts.Kinds = make(map[string]Kind)
		}
		opts.Kinds[name] = kind
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// Discover lists the template files at the root of fsys, sorted by name.
func Discover(fsys fs.FS) ([]Source, error) {
	matches, err := fs.Glob(fsys, "*"+Extension)
	if err != nil {
		return nil, err
	}
	sources := make([]Source, 0, len(matches))
	for _, name := range matches {
		sources = append(sources, SourceFromFS(name))
	}
	return sources, nil
}

package loader

import (
	"context"
	"errors"
	"io/fs"

	"github.com/goliatone/go-blitmask/pkg/source"
)

// Loader implements source.Loader by delegating to file or fs.FS strategies.
// Construction helpers live in the top-level blitgen package.
type Loader struct {
	fs    fs.FS
	kinds map[string]source.Kind
}

// Ensure the implementation satisfies the public interface.
var _ source.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options source.LoaderOptions) source.Loader {
	kinds := make(map[string]source.Kind, len(options.Kinds))
	for name, kind := range options.Kinds {
		kinds[name] = kind
	}
	return &Loader{
		fs:    options.FileSystem,
		kinds: kinds,
	}
}

// Load reads the template behind src and wraps it in a Template.
func (l *Loader) Load(ctx context.Context, src source.Source) (source.Template, error) {
	if src == nil {
		return source.Template{}, errors.New("template loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case source.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case source.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	default:
		err = errors.New("template loader: unsupported source kind")
	}
	if err != nil {
		return source.Template{}, err
	}

	tmpl, err := source.NewTemplate(src, data)
	if err != nil {
		return source.Template{}, err
	}
	if kind, ok := l.kinds[tmpl.Name]; ok {
		tmpl.Kind = kind
	}
	return tmpl, nil
}

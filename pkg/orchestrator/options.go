package orchestrator

import (
	"io/fs"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-blitmask/pkg/render/template"
	"github.com/goliatone/go-blitmask/pkg/rewrite"
	"github.com/goliatone/go-blitmask/pkg/source"
	"github.com/goliatone/go-blitmask/pkg/widths"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom template loader.
func WithLoader(loader source.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithTemplatesFS sets the filesystem templates are discovered in when a
// request names neither templates nor sources. Defaults to the embedded
// templates.
func WithTemplatesFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.templatesFS = fsys
	}
}

// WithWidths sets the ordered width list. Defaults to every supported width.
func WithWidths(list ...widths.Width) Option {
	return func(o *Orchestrator) {
		o.widths = append([]widths.Width(nil), list...)
	}
}

// WithNames adds canonical renames. A name whose Canonical matches a default
// replaces it.
func WithNames(names ...rewrite.Name) Option {
	return func(o *Orchestrator) {
		o.extraNames = append(o.extraNames, names...)
	}
}

// WithTestBuild selects the test build context: only test-only templates are
// instantiated. The default is a production build.
func WithTestBuild(test bool) Option {
	return func(o *Orchestrator) {
		o.testBuild = test
	}
}

// WithLogger injects a zap logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithHeaderRenderer overrides the renderer producing the generated-file
// banner.
func WithHeaderRenderer(renderer template.HeaderRenderer) Option {
	return func(o *Orchestrator) {
		o.header = renderer
	}
}

// WithConcurrency bounds how many (template, width) pairs are rewritten at
// once. Values below one mean one.
func WithConcurrency(n int) Option {
	return func(o *Orchestrator) {
		o.concurrency = n
	}
}

// WithPackageName renames the package clause of every artifact.
func WithPackageName(name string) Option {
	return func(o *Orchestrator) {
		o.packageName = strings.TrimSpace(name)
	}
}

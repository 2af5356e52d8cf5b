// Package blitgen instantiates the BlitMask container templates for a list
// of storage widths. Most callers only need Generate; the orchestrator,
// loader and emitters are exposed for finer control.
package blitgen

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-blitmask/pkg/emit"
	"github.com/goliatone/go-blitmask/pkg/orchestrator"
	"github.com/goliatone/go-blitmask/pkg/source"
	"github.com/goliatone/go-blitmask/pkg/widths"
	"github.com/goliatone/go-blitmask/templates"
)

// Batch aliases orchestrator.Batch for callers of the top-level helpers.
type Batch = orchestrator.Batch

// Artifact aliases orchestrator.Artifact.
type Artifact = orchestrator.Artifact

// Width aliases widths.Width.
type Width = widths.Width

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate instantiates every template matching the build context for every
// width. A nil template list means the embedded templates and a nil width
// list means every supported width.
func Generate(ctx context.Context, tmpls []source.Template, list []Width, testBuild bool, options ...orchestrator.Option) (Batch, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Templates: tmpls,
		Widths:    list,
		TestBuild: &testBuild,
	})
}

// GenerateFS discovers the *.tmpl.go templates at the root of fsys and
// instantiates them.
func GenerateFS(ctx context.Context, fsys fs.FS, list []Width, testBuild bool, options ...orchestrator.Option) (Batch, error) {
	tmpls, err := LoadFS(ctx, fsys)
	if err != nil {
		return Batch{}, err
	}
	return Generate(ctx, tmpls, list, testBuild, options...)
}

// GenerateTo runs Generate and hands the batch to emitter. Nothing is emitted
// when generation fails.
func GenerateTo(ctx context.Context, emitter emit.Emitter, tmpls []source.Template, list []Width, testBuild bool, options ...orchestrator.Option) (Batch, error) {
	batch, err := Generate(ctx, tmpls, list, testBuild, options...)
	if err != nil {
		return Batch{}, err
	}
	if err := emitter.Emit(ctx, batch); err != nil {
		return Batch{}, err
	}
	return batch, nil
}

// EmbeddedTemplates exposes the built-in templates so callers can read or
// extend them.
func EmbeddedTemplates() fs.FS {
	return templates.FS()
}

package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	sourceloader "github.com/goliatone/go-blitmask/internal/source/loader"
	"github.com/goliatone/go-blitmask/pkg/render/template"
	"github.com/goliatone/go-blitmask/pkg/render/template/gotemplate"
	"github.com/goliatone/go-blitmask/pkg/rewrite"
	"github.com/goliatone/go-blitmask/pkg/source"
	"github.com/goliatone/go-blitmask/pkg/widths"
	"github.com/goliatone/go-blitmask/templates"
)

const defaultConcurrency = 4

// Orchestrator coordinates the pipeline from templates to generated source.
// It applies defaults (embedded templates, every supported width, production
// build, pongo2 header) while remaining open to dependency injection.
type Orchestrator struct {
	loader      source.Loader
	templatesFS fs.FS
	widths      []widths.Width
	extraNames  []rewrite.Name
	names       []rewrite.Name
	testBuild   bool
	logger      *zap.Logger
	header      template.HeaderRenderer
	concurrency int
	packageName string

	initialiseErr error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		concurrency: defaultConcurrency,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one generation run. Zero values fall back to the
// orchestrator configuration.
type Request struct {
	// Templates are instantiated as given, bypassing the loader.
	Templates []source.Template

	// Sources are loaded through the configured loader when Templates is
	// empty. With neither set, templates are discovered in the templates FS.
	Sources []source.Source

	// Widths overrides the configured width list.
	Widths []widths.Width

	// TestBuild overrides the configured build context when non-nil.
	TestBuild *bool
}

// Generate validates the width list, selects the templates matching the build
// context and instantiates every (template, width) pair. Pairs run
// concurrently; the batch is ordered by template then width and returned only
// if every pair succeeded and all artifact paths are distinct.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Batch, error) {
	if ctx == nil {
		return Batch{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Batch{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Batch{}, err
	}

	list := req.Widths
	if len(list) == 0 {
		list = o.widths
	}
	if err := validateWidths(list); err != nil {
		return Batch{}, err
	}

	testBuild := o.testBuild
	if req.TestBuild != nil {
		testBuild = *req.TestBuild
	}

	all, err := o.resolveTemplates(ctx, req)
	if err != nil {
		return Batch{}, err
	}
	selected := selectTemplates(all, testBuild)
	if len(selected) == 0 {
		o.logger.Warn("no templates match build context",
			zap.Bool("test", testBuild),
			zap.Int("available", len(all)),
		)
		return Batch{}, nil
	}

	start := time.Now()
	artifacts := make([]Artifact, len(selected)*len(list))

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(o.concurrency)
	for ti, tmpl := range selected {
		for wi, w := range list {
			index := ti*len(list) + wi
			group.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				artifact, err := o.instantiate(tmpl, w)
				if err != nil {
					return &GenerateError{Template: tmpl.Name, Width: w, Err: err}
				}
				artifacts[index] = artifact
				return nil
			})
		}
	}
	if err := group.Wait(); err != nil {
		o.logger.Error("generation failed", zap.Error(err))
		return Batch{}, err
	}

	if err := checkDuplicates(artifacts); err != nil {
		o.logger.Error("generation failed", zap.Error(err))
		return Batch{}, err
	}

	o.logger.Info("generated batch",
		zap.Int("templates", len(selected)),
		zap.Int("widths", len(list)),
		zap.Int("artifacts", len(artifacts)),
		zap.Bool("test", testBuild),
		zap.Duration("elapsed", time.Since(start)),
	)
	return Batch{Artifacts: artifacts}, nil
}

func (o *Orchestrator) resolveTemplates(ctx context.Context, req Request) ([]source.Template, error) {
	if len(req.Templates) > 0 {
		return req.Templates, nil
	}

	sources := req.Sources
	if len(sources) == 0 {
		if o.templatesFS == nil {
			return nil, errors.New("orchestrator: templates, sources or a templates FS are required")
		}
		discovered, err := source.Discover(o.templatesFS)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: discover templates: %w", err)
		}
		sources = discovered
	}

	out := make([]source.Template, 0, len(sources))
	for _, src := range sources {
		tmpl, err := o.loader.Load(ctx, src)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: load template: %w", err)
		}
		out = append(out, tmpl)
	}
	return out, nil
}

// selectTemplates keeps test-only templates in a test build and production
// templates otherwise, preserving discovery order.
func selectTemplates(all []source.Template, testBuild bool) []source.Template {
	want := source.KindProduction
	if testBuild {
		want = source.KindTest
	}
	out := make([]source.Template, 0, len(all))
	for _, tmpl := range all {
		if tmpl.Kind == want {
			out = append(out, tmpl)
		}
	}
	return out
}

func validateWidths(list []widths.Width) error {
	if err := widths.ValidateList(list); err != nil {
		return fmt.Errorf("orchestrator: %w", err)
	}
	return nil
}

// checkDuplicates runs once every artifact exists so the outcome does not
// depend on scheduling.
func checkDuplicates(artifacts []Artifact) error {
	seen := make(map[string]Artifact, len(artifacts))
	for _, a := range artifacts {
		if prior, ok := seen[a.Path]; ok {
			return fmt.Errorf("%w: %s derived from %s (%d-bit) and %s (%d-bit)",
				ErrDuplicateOutput, a.Path, prior.Template, int(prior.Width), a.Template, int(a.Width))
		}
		seen[a.Path] = a
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.templatesFS == nil {
		o.templatesFS = templates.FS()
	}
	if o.loader == nil {
		o.loader = sourceloader.New(source.NewLoaderOptions(source.WithFileSystem(o.templatesFS)))
	}
	if len(o.widths) == 0 {
		o.widths = widths.Supported()
	}
	if o.concurrency < 1 {
		o.concurrency = 1
	}
	o.names = mergeNames(rewrite.DefaultNames(), o.extraNames)
	if o.header == nil {
		engine, err := gotemplate.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default header engine: %w", err)
			return
		}
		o.header = template.EngineHeader{Engine: engine, Name: template.DefaultHeaderTemplate}
	}
}

func mergeNames(defaults, extra []rewrite.Name) []rewrite.Name {
	out := append([]rewrite.Name(nil), defaults...)
	for _, name := range extra {
		replaced := false
		for i := range out {
			if out[i].Canonical == name.Canonical {
				out[i] = name
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, name)
		}
	}
	return out
}

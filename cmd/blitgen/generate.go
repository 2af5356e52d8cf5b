package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	blitgen "github.com/goliatone/go-blitmask"
	"github.com/goliatone/go-blitmask/pkg/config"
	"github.com/goliatone/go-blitmask/pkg/emit"
	"github.com/goliatone/go-blitmask/pkg/orchestrator"
	"github.com/goliatone/go-blitmask/pkg/render/template"
	"github.com/goliatone/go-blitmask/pkg/render/template/gotemplate"
	"github.com/goliatone/go-blitmask/pkg/source"
	"github.com/goliatone/go-blitmask/pkg/widths"
)

// generateFlags are the overrides shared by generate, check and watch.
type generateFlags struct {
	widths    string
	test      bool
	out       string
	templates string
	emitter   string
	pkg       string
}

func (f *generateFlags) register(cmd *cobra.Command, withEmitter bool) {
	flags := cmd.Flags()
	flags.StringVar(&f.widths, "widths", "", "comma-separated storage widths, e.g. 8,16,32,64")
	flags.BoolVar(&f.test, "test", false, "instantiate the test-only templates instead of the production ones")
	flags.StringVarP(&f.out, "out", "o", "", "output directory")
	flags.StringVar(&f.templates, "templates", "", "directory of *.tmpl.go templates (default: built-in templates)")
	flags.StringVar(&f.pkg, "package", "", "package clause for generated files")
	if withEmitter {
		flags.StringVar(&f.emitter, "emitter", "", "where artifacts go: dir or stdout")
	}
}

// apply overlays the flags the user set on cfg.
func (f *generateFlags) apply(cmd *cobra.Command, cfg config.Config) (config.Config, error) {
	flags := cmd.Flags()
	if flags.Changed("widths") {
		list, err := widths.ParseList(f.widths)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Widths = list
	}
	if flags.Changed("test") {
		cfg.Test = f.test
	}
	if flags.Changed("out") {
		cfg.Output = f.out
	}
	if flags.Changed("templates") {
		cfg.Templates = f.templates
	}
	if flags.Changed("package") {
		cfg.Package = strings.TrimSpace(f.pkg)
	}
	if flags.Lookup("emitter") != nil && flags.Changed("emitter") {
		cfg.Emitter = strings.ToLower(strings.TrimSpace(f.emitter))
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newGenerateCmd(a *app) *cobra.Command {
	var flags generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Instantiate the templates for every configured width",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.apply(cmd, a.cfg)
			if err != nil {
				return err
			}
			_, err = a.generate(cmd.Context(), cfg)
			return err
		},
	}
	flags.register(cmd, true)
	return cmd
}

// generate runs one batch and hands it to the configured emitter.
func (a *app) generate(ctx context.Context, cfg config.Config) (orchestrator.Batch, error) {
	batch, err := a.build(ctx, cfg)
	if err != nil {
		return orchestrator.Batch{}, err
	}

	registry := emit.NewDefaultRegistry(cfg.Output, a.stdout, a.logger)
	emitter, err := registry.Get(cfg.Emitter)
	if err != nil {
		return orchestrator.Batch{}, err
	}
	if err := emitter.Emit(ctx, batch); err != nil {
		return orchestrator.Batch{}, err
	}
	if cfg.Emitter == config.EmitterDir {
		fmt.Fprintf(a.stderr, "generated %d files in %s\n", batch.Len(), cfg.Output)
	}
	return batch, nil
}

// build generates a batch from cfg without emitting it.
func (a *app) build(ctx context.Context, cfg config.Config) (orchestrator.Batch, error) {
	options, err := a.orchestratorOptions(cfg)
	if err != nil {
		return orchestrator.Batch{}, err
	}

	var tmpls []source.Template
	if cfg.Templates != "" {
		tmpls, err = blitgen.LoadDir(ctx, cfg.Templates)
		if err != nil {
			return orchestrator.Batch{}, err
		}
		if len(tmpls) == 0 {
			return orchestrator.Batch{}, fmt.Errorf("no %s templates in %s", source.Extension, cfg.Templates)
		}
	}
	return blitgen.Generate(ctx, tmpls, cfg.Widths, cfg.Test, options...)
}

func (a *app) orchestratorOptions(cfg config.Config) ([]orchestrator.Option, error) {
	options := []orchestrator.Option{
		orchestrator.WithLogger(a.logger),
		orchestrator.WithConcurrency(cfg.Concurrency),
		orchestrator.WithPackageName(cfg.Package),
		orchestrator.WithNames(cfg.Names...),
	}
	if cfg.Header != "" {
		engine, err := gotemplate.New()
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithHeaderRenderer(template.EngineHeader{Engine: engine, Name: cfg.Header}))
		a.logger.Debug("custom header", zap.String("header", cfg.Header))
	}
	return options, nil
}

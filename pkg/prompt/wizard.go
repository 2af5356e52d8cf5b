package prompt

import (
	"context"
	"fmt"
	"go/token"
	"strconv"
	"strings"

	"github.com/goliatone/go-blitmask/pkg/config"
	"github.com/goliatone/go-blitmask/pkg/widths"
)

var emitterOptions = []string{config.EmitterDir, config.EmitterStdout}

// InitWizard walks the user through the fields of a config file, starting
// from base. The returned config has been validated.
func InitWizard(ctx context.Context, driver Driver, base config.Config) (config.Config, error) {
	cfg := base

	supported := widths.Supported()
	options := make([]string, len(supported))
	for i, w := range supported {
		options[i] = w.String() + "-bit"
	}
	defaults := make([]int, 0, len(cfg.Widths))
	for _, w := range cfg.Widths {
		if idx := indexOf(options, w.String()+"-bit"); idx >= 0 {
			defaults = append(defaults, idx)
		}
	}

	picked, err := driver.MultiSelect(ctx, SelectConfig{
		Message:  "Which widths should be generated?",
		Options:  options,
		Defaults: defaults,
		Help:     "One container type is produced per template and width.",
	})
	if err != nil {
		return config.Config{}, err
	}
	if len(picked) == 0 {
		return config.Config{}, fmt.Errorf("prompt: at least one width is required")
	}
	cfg.Widths = cfg.Widths[:0:0]
	for _, idx := range picked {
		cfg.Widths = append(cfg.Widths, supported[idx])
	}

	if cfg.Templates, err = driver.Input(ctx, InputConfig{
		Message: "Templates directory (blank for the built-in templates):",
		Default: cfg.Templates,
	}); err != nil {
		return config.Config{}, err
	}
	cfg.Templates = strings.TrimSpace(cfg.Templates)

	if cfg.Package, err = driver.Input(ctx, InputConfig{
		Message:   "Package name for generated files (blank keeps the template's):",
		Default:   cfg.Package,
		Validator: validPackage,
	}); err != nil {
		return config.Config{}, err
	}

	if cfg.Output, err = driver.Input(ctx, InputConfig{
		Message: "Output directory:",
		Default: cfg.Output,
		Validator: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("output directory is required")
			}
			return nil
		},
	}); err != nil {
		return config.Config{}, err
	}

	emitter, err := driver.Select(ctx, SelectConfig{
		Message:      "Where should generated files go?",
		Options:      emitterOptions,
		DefaultIndex: max(indexOf(emitterOptions, cfg.Emitter), 0),
	})
	if err != nil {
		return config.Config{}, err
	}
	cfg.Emitter = emitterOptions[emitter]

	if cfg.Test, err = driver.Confirm(ctx, ConfirmConfig{
		Message: "Generate the test build by default?",
		Default: cfg.Test,
	}); err != nil {
		return config.Config{}, err
	}

	concurrency, err := driver.Input(ctx, InputConfig{
		Message:   "Concurrent instantiations:",
		Default:   strconv.Itoa(cfg.Concurrency),
		Validator: positiveInt,
	})
	if err != nil {
		return config.Config{}, err
	}
	cfg.Concurrency, _ = strconv.Atoi(strings.TrimSpace(concurrency))

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func validPackage(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if !token.IsIdentifier(s) {
		return fmt.Errorf("%q is not a valid package name", s)
	}
	return nil
}

func positiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return fmt.Errorf("%q is not a positive number", s)
	}
	return nil
}

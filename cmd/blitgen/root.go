package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-blitmask/pkg/config"
	"github.com/goliatone/go-blitmask/pkg/prompt"
)

// app carries what every subcommand shares. Tests swap the writers, the
// prompt driver and the logger factory.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	verbose    bool

	driver    prompt.Driver
	newLogger func(verbose bool, out io.Writer) (*zap.Logger, error)
	getwd     func() (string, error)

	logger *zap.Logger
	cfg    config.Config
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:    stdout,
		stderr:    stderr,
		driver:    prompt.NewSurvey(),
		newLogger: productionLogger,
		getwd:     os.Getwd,
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "blitgen",
		Short:         "Generate fixed-width BlitMask bit-flag containers",
		Long:          "blitgen rewrites the BlitMask templates once per storage width, producing one concrete container type per template and width.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (default: blitgen.yaml in the working directory, if present)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newGenerateCmd(a),
		newCheckCmd(a),
		newInitCmd(a),
		newWatchCmd(a),
	)
	return root
}

// setup builds the logger and loads the config. init tolerates a broken or
// missing file since it is about to write one.
func (a *app) setup(cmd *cobra.Command) error {
	logger, err := a.newLogger(a.verbose, a.stderr)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	a.logger = logger

	cfg, err := a.loadConfig()
	if err != nil {
		if cmd.Name() != "init" {
			return err
		}
		a.logger.Debug("ignoring unreadable config", zap.Error(err))
		cfg = config.Default()
	}
	a.cfg = cfg
	return nil
}

func (a *app) loadConfig() (config.Config, error) {
	if a.configPath != "" {
		return config.Load(a.configPath)
	}
	wd, err := a.getwd()
	if err != nil {
		return config.Config{}, err
	}
	path, err := config.Find(wd)
	if errors.Is(err, config.ErrNotFound) {
		return config.Default(), nil
	}
	if err != nil {
		return config.Config{}, err
	}
	a.logger.Debug("loaded config", zap.String("path", path))
	return config.Load(path)
}

func productionLogger(verbose bool, out io.Writer) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = !verbose
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	if out == os.Stderr {
		return cfg.Build()
	}
	encoder := zapcore.NewConsoleEncoder(cfg.EncoderConfig)
	core := zapcore.NewCore(encoder, zapcore.AddSync(out), cfg.Level)
	return zap.New(core), nil
}

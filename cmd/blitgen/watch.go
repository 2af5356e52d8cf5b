package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-blitmask/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	var flags generateFlags
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate whenever a template in the templates directory changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.apply(cmd, a.cfg)
			if err != nil {
				return err
			}
			if cfg.Templates == "" {
				return errors.New("watch needs a templates directory (--templates or templates: in the config)")
			}

			ctx := cmd.Context()
			if _, err := a.generate(ctx, cfg); err != nil {
				return err
			}

			w, err := watch.New(cfg.Templates, func(ctx context.Context, changed []string) error {
				batch, err := a.generate(ctx, cfg)
				if err != nil {
					fmt.Fprintf(a.stderr, "regenerate failed: %v\n", err)
					return err
				}
				a.logger.Info("regenerated", zap.Strings("changed", changed), zap.Int("artifacts", batch.Len()))
				return nil
			}, watch.WithLogger(a.logger))
			if err != nil {
				return err
			}
			if err := w.Start(ctx); err != nil {
				return err
			}
			fmt.Fprintf(a.stderr, "watching %s\n", cfg.Templates)

			<-w.Done()
			return w.Stop()
		},
	}
	flags.register(cmd, true)
	return cmd
}

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-blitmask/pkg/config"
	"github.com/goliatone/go-blitmask/pkg/prompt"
)

func newInitCmd(a *app) *cobra.Command {
	var (
		yes   bool
		force bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a blitgen config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.configPath
			if path == "" {
				wd, err := a.getwd()
				if err != nil {
					return err
				}
				path = filepath.Join(wd, config.DefaultFileName)
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists; use --force to overwrite", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			cfg := a.cfg
			if !yes {
				var err error
				cfg, err = prompt.InitWizard(cmd.Context(), a.driver, cfg)
				if err != nil {
					return err
				}
			}
			// Paths are written as entered; Load resolves them against the
			// file's directory.
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return err
			}
			a.logger.Info("wrote config", zap.String("path", path))
			fmt.Fprintf(a.stdout, "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "accept the defaults without prompting")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	return cmd
}

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
)

// errDrift is returned when committed files differ from a fresh generation.
// main exits non-zero without repeating the report.
var errDrift = errors.New("generated files are out of date")

func newCheckCmd(a *app) *cobra.Command {
	var flags generateFlags
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Fail when generated files on disk differ from a fresh generation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.apply(cmd, a.cfg)
			if err != nil {
				return err
			}
			batch, err := a.build(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			stale := 0
			for _, artifact := range batch.Artifacts {
				path := filepath.Join(cfg.Output, artifact.Path)
				existing, err := os.ReadFile(path)
				switch {
				case errors.Is(err, os.ErrNotExist):
					fmt.Fprintf(a.stdout, "missing %s\n", path)
					stale++
				case err != nil:
					return err
				case !bytes.Equal(existing, artifact.Code):
					fmt.Fprintf(a.stdout, "stale %s (-disk +generated):\n%s\n", path, cmp.Diff(string(existing), string(artifact.Code)))
					stale++
				}
			}
			if stale > 0 {
				fmt.Fprintf(a.stderr, "%d of %d files out of date; run blitgen generate\n", stale, batch.Len())
				return errDrift
			}
			fmt.Fprintf(a.stdout, "%d files up to date\n", batch.Len())
			return nil
		},
	}
	flags.register(cmd, false)
	return cmd
}

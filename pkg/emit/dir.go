package emit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-blitmask/pkg/orchestrator"
)

// DirName identifies the directory emitter.
const DirName = "dir"

// DirOption customises a Dir emitter.
type DirOption func(*Dir)

// WithFileMode sets the permissions of written files. Defaults to 0644.
func WithFileMode(mode fs.FileMode) DirOption {
	return func(d *Dir) {
		d.mode = mode
	}
}

// WithDirLogger injects a zap logger. Defaults to a no-op logger.
func WithDirLogger(logger *zap.Logger) DirOption {
	return func(d *Dir) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// Dir writes a batch into a directory. Every artifact is first written to a
// temporary file next to its destination; only when all of them are on disk
// are they renamed into place. If a rename fails, files already installed
// are restored to their previous content or removed. Files whose content is
// unchanged are left alone.
type Dir struct {
	root   string
	mode   fs.FileMode
	logger *zap.Logger
}

// NewDir returns an emitter writing into root.
func NewDir(root string, options ...DirOption) *Dir {
	d := &Dir{
		root:   filepath.Clean(root),
		mode:   0o644,
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}
	return d
}

func (d *Dir) Name() string {
	return DirName
}

// Root returns the output directory.
func (d *Dir) Root() string {
	return d.root
}

type staged struct {
	temp string
	dest string
	// prev is the content dest held before the batch, if existed.
	prev    []byte
	existed bool
}

func (d *Dir) Emit(ctx context.Context, batch orchestrator.Batch) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(d.root, 0o755); err != nil {
		return fmt.Errorf("emit: create %s: %w", d.root, err)
	}

	var pending []staged
	cleanup := func() {
		for _, s := range pending {
			_ = os.Remove(s.temp)
		}
	}

	unchanged := 0
	for _, a := range batch.Artifacts {
		dest, err := d.destination(a.Path)
		if err != nil {
			cleanup()
			return err
		}
		existing, err := os.ReadFile(dest)
		existed := err == nil
		if existed && bytes.Equal(existing, a.Code) {
			unchanged++
			continue
		}
		temp, err := d.stage(dest, a.Code)
		if err != nil {
			cleanup()
			return err
		}
		pending = append(pending, staged{temp: temp, dest: dest, prev: existing, existed: existed})
	}

	if err := ctx.Err(); err != nil {
		cleanup()
		return err
	}

	for i, s := range pending {
		if err := os.Rename(s.temp, s.dest); err != nil {
			for _, rest := range pending[i:] {
				_ = os.Remove(rest.temp)
			}
			if rerr := d.rollback(pending[:i]); rerr != nil {
				return errors.Join(fmt.Errorf("emit: install %s: %w", s.dest, err), rerr)
			}
			return fmt.Errorf("emit: install %s: %w", s.dest, err)
		}
	}

	d.logger.Info("emitted batch",
		zap.String("dir", d.root),
		zap.Int("written", len(pending)),
		zap.Int("unchanged", unchanged),
	)
	return nil
}

// rollback undoes installed renames, newest first.
func (d *Dir) rollback(installed []staged) error {
	var errs []error
	for i := len(installed) - 1; i >= 0; i-- {
		s := installed[i]
		if !s.existed {
			if err := os.Remove(s.dest); err != nil && !errors.Is(err, fs.ErrNotExist) {
				errs = append(errs, fmt.Errorf("emit: roll back %s: %w", s.dest, err))
			}
			continue
		}
		temp, err := d.stage(s.dest, s.prev)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := os.Rename(temp, s.dest); err != nil {
			_ = os.Remove(temp)
			errs = append(errs, fmt.Errorf("emit: roll back %s: %w", s.dest, err))
		}
	}
	if len(errs) > 0 {
		d.logger.Error("rollback incomplete", zap.Errors("errors", errs))
	}
	return errors.Join(errs...)
}

func (d *Dir) destination(path string) (string, error) {
	if path == "" || filepath.IsAbs(path) || strings.Contains(filepath.ToSlash(path), "/") {
		return "", fmt.Errorf("emit: artifact path %q must be a plain file name", path)
	}
	return filepath.Join(d.root, path), nil
}

func (d *Dir) stage(dest string, code []byte) (string, error) {
	f, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("emit: stage %s: %w", dest, err)
	}
	name := f.Name()
	_, werr := f.Write(code)
	cerr := f.Close()
	if err := errors.Join(werr, cerr); err != nil {
		_ = os.Remove(name)
		return "", fmt.Errorf("emit: stage %s: %w", dest, err)
	}
	if err := os.Chmod(name, d.mode); err != nil {
		_ = os.Remove(name)
		return "", fmt.Errorf("emit: stage %s: %w", dest, err)
	}
	return name, nil
}

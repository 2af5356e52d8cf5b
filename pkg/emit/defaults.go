package emit

import (
	"io"

	"go.uber.org/zap"
)

// NewDefaultRegistry registers the built-in emitters: dir writing into root,
// stdout writing to out, and memory.
func NewDefaultRegistry(root string, out io.Writer, logger *zap.Logger) *Registry {
	registry := NewRegistry()
	registry.MustRegister(NewDir(root, WithDirLogger(logger)))
	registry.MustRegister(NewStream(out))
	registry.MustRegister(NewMemory())
	return registry
}

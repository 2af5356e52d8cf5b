package emit

import (
	"context"

	"github.com/goliatone/go-blitmask/pkg/orchestrator"
)

// Emitter delivers a batch of artifacts.
type Emitter interface {
	Name() string
	Emit(ctx context.Context, batch orchestrator.Batch) error
}

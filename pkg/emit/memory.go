package emit

import (
	"context"
	"sync"

	"github.com/goliatone/go-blitmask/pkg/orchestrator"
)

// MemoryName identifies the in-memory emitter.
const MemoryName = "memory"

// Memory keeps the last batch it received. Library callers and tests use it
// to inspect output without touching the filesystem.
type Memory struct {
	mu    sync.RWMutex
	batch orchestrator.Batch
	count int
}

// NewMemory returns an empty in-memory emitter.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Name() string {
	return MemoryName
}

func (m *Memory) Emit(ctx context.Context, batch orchestrator.Batch) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	artifacts := make([]orchestrator.Artifact, len(batch.Artifacts))
	for i, a := range batch.Artifacts {
		a.Code = append([]byte(nil), a.Code...)
		artifacts[i] = a
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.batch = orchestrator.Batch{Artifacts: artifacts}
	m.count++
	return nil
}

// Batch returns the most recent batch.
func (m *Memory) Batch() orchestrator.Batch {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.batch
}

// Emits returns how many batches were received.
func (m *Memory) Emits() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.count
}

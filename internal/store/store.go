// Package store persists completed experiment batches.
// Both stores implement experiment.BatchSink.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/hampath/experiment"
)

// ErrNotFound is returned by Load for an unknown batch id.
var ErrNotFound = errors.New("store: batch not found")

// Memory keeps batches in process memory, in save order. Safe for
// concurrent use.
type Memory struct {
	mu      sync.RWMutex
	batches []*experiment.Batch
}

var (
	_ experiment.BatchSink = (*Memory)(nil)
	_ experiment.BatchSink = (*Redis)(nil)
)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// SaveBatch appends b. A batch with an id already stored replaces it.
func (m *Memory) SaveBatch(_ context.Context, b *experiment.Batch) error {
	if b == nil {
		return fmt.Errorf("store: SaveBatch: nil batch")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, old := range m.batches {
		if old.ID == b.ID {
			m.batches[i] = b
			return nil
		}
	}
	m.batches = append(m.batches, b)

	return nil
}

// Load returns the batch with the given id.
func (m *Memory) Load(_ context.Context, id uuid.UUID) (*experiment.Batch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, b := range m.batches {
		if b.ID == id {
			return b, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// List returns the stored ids in save order.
func (m *Memory) List(_ context.Context) ([]uuid.UUID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]uuid.UUID, len(m.batches))
	for i, b := range m.batches {
		ids[i] = b.ID
	}

	return ids, nil
}

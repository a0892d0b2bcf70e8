package memory

import (
	"context"
	"sync"
)

// TxManager serializes multi-step mutations against the in-memory stores.
// There is no rollback: fn either completes or leaves whatever it already
// applied, matching the all-in-one-process model. Nested RunInTx calls are
// not supported.
type TxManager struct {
	mu sync.Mutex
}

// NewTxManager creates a TxManager.
func NewTxManager() *TxManager {
	return &TxManager{}
}

// RunInTx runs fn while holding the transaction lock, so read-modify-write
// sequences (count, evict, insert) never interleave.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

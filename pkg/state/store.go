package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/verdant-network/verdant-api/pkg/chain"
	"github.com/verdant-network/verdant-api/pkg/db"
)

// systemStateKey is where the consensus layer commits the current state.
var systemStateKey = []byte("system/state")

// StoreProvider reads the system state from a key-value store shared with
// the node's commit path.
type StoreProvider struct {
	store db.Store
}

// NewStoreProvider wraps a store. The store must outlive the provider.
func NewStoreProvider(store db.Store) *StoreProvider {
	return &StoreProvider{store: store}
}

// SystemState loads and decodes the current state. It returns
// ErrNotInitialized when nothing has been committed yet and wraps every
// other failure in ErrReadFailure.
func (p *StoreProvider) SystemState(ctx context.Context) (*chain.SystemState, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailure, err)
	}

	b, err := p.store.Get(systemStateKey)
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrNotInitialized
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailure, err)
	}

	s, err := chain.DecodeState(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailure, err)
	}
	return s, nil
}

// Commit encodes and durably stores a new system state. It is used by seed
// tooling and tests; in production the consensus layer owns the write path.
func (p *StoreProvider) Commit(s *chain.SystemState) error {
	b, err := chain.EncodeState(s)
	if err != nil {
		return err
	}
	return p.store.Set(systemStateKey, b)
}

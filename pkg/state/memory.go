package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/jinzhu/copier"

	"github.com/verdant-network/verdant-api/pkg/chain"
)

// MemoryProvider holds a system state in memory. Snapshots are deep copies,
// so callers never observe later SetState calls through a state they already
// hold.
type MemoryProvider struct {
	mu    sync.RWMutex
	state *chain.SystemState
}

// NewMemoryProvider returns an empty provider. SystemState reports
// ErrNotInitialized until SetState is called.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{}
}

// SetState replaces the held state with a deep copy of s. Passing nil resets
// the provider to uninitialized.
func (p *MemoryProvider) SetState(s *chain.SystemState) error {
	if s == nil {
		p.mu.Lock()
		p.state = nil
		p.mu.Unlock()
		return nil
	}

	clone, err := cloneState(s)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.state = clone
	p.mu.Unlock()
	return nil
}

// SystemState returns a deep copy of the held state.
func (p *MemoryProvider) SystemState(ctx context.Context) (*chain.SystemState, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailure, err)
	}

	p.mu.RLock()
	s := p.state
	p.mu.RUnlock()

	if s == nil {
		return nil, ErrNotInitialized
	}
	return cloneState(s)
}

func cloneState(s *chain.SystemState) (*chain.SystemState, error) {
	var out chain.SystemState
	if err := copier.CopyWithOption(&out, s, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("clone system state: %w", err)
	}
	return &out, nil
}

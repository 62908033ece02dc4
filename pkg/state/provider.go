// Package state defines where the read API gets its system state from. A
// Provider hands out the latest committed state; the store-backed
// implementation is used in production and the in-memory one in tests and
// tooling.
package state

import (
	"context"
	"errors"

	"github.com/verdant-network/verdant-api/pkg/chain"
)

var (
	// ErrNotInitialized is returned while the backing store holds no system
	// state yet, for example before the node has synced genesis.
	ErrNotInitialized = errors.New("system state not initialized")

	// ErrReadFailure wraps any storage or decoding failure while loading
	// state that does exist.
	ErrReadFailure = errors.New("system state read failure")
)

// Provider returns the latest committed system state. Callers own the
// returned value; implementations must not retain or mutate it afterwards.
type Provider interface {
	SystemState(ctx context.Context) (*chain.SystemState, error)
}

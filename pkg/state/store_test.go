package state_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/verdant-network/verdant-api/pkg/chain"
	"github.com/verdant-network/verdant-api/pkg/chain/chaintest"
	"github.com/verdant-network/verdant-api/pkg/db"
	"github.com/verdant-network/verdant-api/pkg/state"
)

func newStoreProvider(t *testing.T) (*state.StoreProvider, db.Store) {
	t.Helper()
	store, err := db.NewPebbleStore(t.TempDir(), zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return state.NewStoreProvider(store), store
}

func TestStoreProviderNotInitialized(t *testing.T) {
	p, _ := newStoreProvider(t)

	_, err := p.SystemState(context.Background())
	assert.ErrorIs(t, err, state.ErrNotInitialized)
}

func TestStoreProviderRoundTrip(t *testing.T) {
	p, _ := newStoreProvider(t)

	want := chaintest.State()
	require.NoError(t, p.Commit(want))

	got, err := p.SystemState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStoreProviderCorruptState(t *testing.T) {
	p, store := newStoreProvider(t)

	require.NoError(t, store.Set([]byte("system/state"), []byte{0xde, 0xad}))

	_, err := p.SystemState(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, state.ErrReadFailure)
	assert.NotErrorIs(t, err, state.ErrNotInitialized)
}

func TestStoreProviderUnsupportedVersion(t *testing.T) {
	p, _ := newStoreProvider(t)

	s := chaintest.State()
	s.Version = chain.SupportedStateVersion + 5
	require.NoError(t, p.Commit(s))

	_, err := p.SystemState(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, state.ErrReadFailure)
	assert.ErrorIs(t, err, chain.ErrUnsupportedVersion)
}

func TestStoreProviderStoreFailure(t *testing.T) {
	boom := errors.New("disk on fire")
	p := state.NewStoreProvider(failingStore{err: boom})

	_, err := p.SystemState(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, state.ErrReadFailure)
	assert.ErrorIs(t, err, boom)
}

func TestStoreProviderCanceledContext(t *testing.T) {
	p, _ := newStoreProvider(t)
	require.NoError(t, p.Commit(chaintest.State()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.SystemState(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, state.ErrReadFailure)
	assert.ErrorIs(t, err, context.Canceled)
}

// failingStore errors on every operation.
type failingStore struct {
	err error
}

func (f failingStore) Get([]byte) ([]byte, error) { return nil, f.err }
func (f failingStore) Set([]byte, []byte) error   { return f.err }
func (f failingStore) Delete([]byte) error        { return f.err }
func (f failingStore) Close() error               { return nil }

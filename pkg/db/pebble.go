package db

import (
	"sync"

	"github.com/cockroachdb/pebble"
	"go.uber.org/zap"
)

const (
	cacheSize    = 64 << 20
	memTableSize = 32 << 20
)

// PebbleStore is a Store backed by a Pebble database on disk.
type PebbleStore struct {
	db     *pebble.DB
	closed bool
	mu     sync.RWMutex
}

// NewPebbleStore opens or creates a Pebble database at path.
func NewPebbleStore(path string, logger *zap.Logger) (*PebbleStore, error) {
	return openPebble(path, logger, false)
}

// NewReadOnlyPebbleStore opens an existing Pebble database at path without
// write access. Set and Delete fail on the returned store.
func NewReadOnlyPebbleStore(path string, logger *zap.Logger) (*PebbleStore, error) {
	return openPebble(path, logger, true)
}

func openPebble(path string, logger *zap.Logger, readOnly bool) (*PebbleStore, error) {
	cache := pebble.NewCache(cacheSize)
	defer cache.Unref()

	opts := &pebble.Options{
		Cache:        cache,
		MemTableSize: memTableSize,
		ReadOnly:     readOnly,
		Logger:       logger.Sugar(),
	}

	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, err
	}
	return &PebbleStore{db: db}, nil
}

func (p *PebbleStore) Get(key []byte) ([]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return nil, ErrClosed
	}

	value, closer, err := p.db.Get(key)
	if err == pebble.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	// Pebble owns the returned slice until the closer is released.
	result := make([]byte, len(value))
	copy(result, value)
	return result, nil
}

func (p *PebbleStore) Set(key, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	return p.db.Set(key, value, pebble.Sync)
}

func (p *PebbleStore) Delete(key []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	return p.db.Delete(key, pebble.Sync)
}

func (p *PebbleStore) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	return p.db.Close()
}

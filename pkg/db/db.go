// Package db provides the key-value storage layer backing the read API. The
// only production implementation wraps Pebble; the Store interface exists so
// higher layers can be tested against lightweight substitutes.
package db

import "errors"

var (
	// ErrNotFound is returned by Get when no value exists under the key.
	ErrNotFound = errors.New("key not found")
	// ErrClosed is returned by any operation on a closed store.
	ErrClosed = errors.New("store is closed")
)

// Store is a byte-oriented key-value store. Implementations must be safe for
// concurrent use.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key []byte) ([]byte, error)
	// Set stores value under key, overwriting any previous value.
	Set(key, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key []byte) error
	// Close releases the store. Further calls return ErrClosed.
	Close() error
}

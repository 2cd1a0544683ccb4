package storage

import "errors"

// ErrKeyNotFound is returned by Gateway.Get when the key has never been written.
var ErrKeyNotFound = errors.New("key not found")

// Gateway is byte-level key-value persistence. Implementations own the
// underlying medium (JSON file, SQLite, Postgres); callers own the encoding.
// Writes are atomic from the caller's perspective: a Put either lands fully
// or the previous value stays visible.
type Gateway interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	Get(key string) ([]byte, error)
	Put(key string, value []byte) error

	ConfigPath() string
}

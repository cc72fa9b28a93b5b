package storage

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by Get when the key has never been written.
	ErrNotFound = errors.New("key not found")
	// ErrNotInitialized is returned by Load when the backing store does not
	// exist yet and Init has to run first.
	ErrNotInitialized = errors.New("storage not initialized, run 'smartpack init' first")
)

// Provider is a string key-value store. Values are opaque JSON documents.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Key-value access
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error

	// GetConfigPath returns a printable, non-sensitive location of the store.
	GetConfigPath() string
}

// Pinger is implemented by stores with a remote connection worth checking.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Versioned is implemented by SQL stores that track a schema version.
type Versioned interface {
	SchemaVersion(ctx context.Context) (current, latest int, err error)
}

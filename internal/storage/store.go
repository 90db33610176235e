// Package storage defines the key-value persistence used for caches and checkpoints.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("storage: key not found")

// Store persists opaque values by key. Put replaces any previous value as a whole.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// Prefixed scopes every key of an underlying store with a fixed prefix.
type Prefixed struct {
	store  Store
	prefix string
}

// WithPrefix returns a view of store where keys are namespaced by prefix.
func WithPrefix(store Store, prefix string) *Prefixed {
	return &Prefixed{store: store, prefix: prefix}
}

// Get returns the value stored under prefix+key.
func (p *Prefixed) Get(ctx context.Context, key string) ([]byte, error) {
	return p.store.Get(ctx, p.prefix+key)
}

// Put stores value under prefix+key.
func (p *Prefixed) Put(ctx context.Context, key string, value []byte) error {
	return p.store.Put(ctx, p.prefix+key, value)
}

// Close is a no-op; the underlying store is owned by the caller.
func (p *Prefixed) Close() error {
	return nil
}

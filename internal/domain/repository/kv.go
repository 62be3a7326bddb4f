// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KV.Get when a key has never been written
// or has been deleted.
var ErrKeyNotFound = errors.New("key not found")

// KV is the durable key-value service every persistence adapter writes
// through: string keys, string values, no further structure. Calls may
// suspend (disk, bucket backend) and are attempted exactly once; there are
// no retries or timeouts beyond what ctx carries.
type KV interface {
	// Get retrieves the value stored under key.
	// Returns ErrKeyNotFound if the key doesn't exist.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any existing value.
	Set(ctx context.Context, key, value string) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Package kv implements the durable key-value service the persistence
// adapters write through. The production backend is a gocloud.dev blob
// bucket (a local file bucket by default), so every call crosses an
// asynchronous storage boundary just like the contract demands.
package kv

import (
	"context"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"

	"barista/config"
	"barista/internal/domain/repository"
)

// Bucket adapts a blob bucket to the repository.KV contract. One value per
// key, whole-value reads and writes, no per-key write serialization: two
// racing writes to the same key land in completion order.
type Bucket struct {
	bucket *blob.Bucket
}

// NewBucket wraps an already opened blob bucket.
func NewBucket(bucket *blob.Bucket) *Bucket {
	return &Bucket{bucket: bucket}
}

// Open opens the file-backed bucket configured under storage.path and
// returns it as the durable KV service.
func Open(cfg *config.Config) (repository.KV, error) {
	bucket, err := fileblob.OpenBucket(cfg.Storage.Path, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrapf(err, "open storage bucket at %s", cfg.Storage.Path)
	}

	return NewBucket(bucket), nil
}

// Get retrieves the value stored under key.
func (b *Bucket) Get(ctx context.Context, key string) (string, error) {
	data, err := b.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", repository.ErrKeyNotFound
		}

		return "", errors.Wrapf(err, "read key %q", key)
	}

	return string(data), nil
}

// Set stores value under key, overwriting any existing value.
func (b *Bucket) Set(ctx context.Context, key, value string) error {
	if err := b.bucket.WriteAll(ctx, key, []byte(value), nil); err != nil {
		return errors.Wrapf(err, "write key %q", key)
	}

	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (b *Bucket) Delete(ctx context.Context, key string) error {
	if err := b.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "delete key %q", key)
	}

	return nil
}

// Close releases the underlying bucket.
func (b *Bucket) Close() error {
	return b.bucket.Close()
}

package kvstore

import (
	"context"

	"github.com/pkg/errors"

	"barista/internal/domain/repository"
)

// photoKey is the storage key of the profile photo URI.
const photoKey = "profilePhoto.v1"

// photoRepository persists the profile photo URI. Unlike the other
// adapters the value is the raw string, not JSON.
type photoRepository struct {
	kv repository.KV
}

// NewProfilePhotoRepository is the constructor for photoRepository.
func NewProfilePhotoRepository(kv repository.KV) repository.ProfilePhotoRepository {
	return &photoRepository{kv: kv}
}

// Load returns the stored URI, or "" when no photo is set.
func (r *photoRepository) Load(ctx context.Context) (string, error) {
	raw, err := r.kv.Get(ctx, photoKey)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return "", nil
		}

		return "", errors.Wrap(err, "load profile photo")
	}

	return raw, nil
}

// Save stores the URI.
func (r *photoRepository) Save(ctx context.Context, uri string) error {
	if err := r.kv.Set(ctx, photoKey, uri); err != nil {
		return errors.Wrap(err, "save profile photo")
	}

	return nil
}

// Clear deletes the persisted key entirely; an unset photo must not be
// persisted as an empty string.
func (r *photoRepository) Clear(ctx context.Context) error {
	if err := r.kv.Delete(ctx, photoKey); err != nil {
		return errors.Wrap(err, "clear profile photo")
	}

	return nil
}

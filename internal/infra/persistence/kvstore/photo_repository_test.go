package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barista/internal/domain/repository"
	"barista/internal/infra/persistence/kv"
)

func TestPhotoRepository_LoadAbsentIsEmpty(t *testing.T) {
	repo := NewProfilePhotoRepository(kv.NewMemory())

	uri, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, uri)
}

func TestPhotoRepository_SaveLoadRawValue(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	repo := NewProfilePhotoRepository(store)

	require.NoError(t, repo.Save(ctx, "file:///photos/me.jpg"))

	// Stored as the raw URI string, not JSON.
	raw, err := store.Get(ctx, "profilePhoto.v1")
	require.NoError(t, err)
	assert.Equal(t, "file:///photos/me.jpg", raw)

	uri, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "file:///photos/me.jpg", uri)
}

func TestPhotoRepository_ClearDeletesKey(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	repo := NewProfilePhotoRepository(store)

	require.NoError(t, repo.Save(ctx, "file:///photos/me.jpg"))
	require.NoError(t, repo.Clear(ctx))

	_, err := store.Get(ctx, "profilePhoto.v1")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)

	// Clearing an unset photo is not an error.
	assert.NoError(t, repo.Clear(ctx))
}

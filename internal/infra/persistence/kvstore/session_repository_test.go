package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barista/internal/domain/entity"
	"barista/internal/domain/repository"
	"barista/internal/infra/persistence/kv"
)

func TestSessionRepository_LoadAbsent(t *testing.T) {
	repo := NewSessionRepository(kv.NewMemory(), testLogger())

	session, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionRepository_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(kv.NewMemory(), testLogger())

	require.NoError(t, repo.Save(ctx, &entity.Session{
		ID:    "u-1",
		Email: "a@x.com",
		Name:  "Alice",
	}))

	session, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "u-1", session.ID)
	assert.Equal(t, "a@x.com", session.Email)
	assert.Equal(t, "Alice", session.Name)
}

func TestSessionRepository_SaveNilDeletesRecord(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	repo := NewSessionRepository(store, testLogger())

	require.NoError(t, repo.Save(ctx, &entity.Session{ID: "u-1", Email: "a@x.com", Name: "Alice"}))
	require.NoError(t, repo.Save(ctx, nil))

	_, err := store.Get(ctx, "currentUser.v1")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)

	session, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionRepository_CorruptPayloadIsAbsent(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.Set(ctx, "currentUser.v1", "not json at all"))

	repo := NewSessionRepository(store, testLogger())

	session, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

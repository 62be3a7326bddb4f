package kvstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barista/internal/domain/entity"
	"barista/internal/infra/persistence/kv"
)

func TestUserRepository_FindAllAbsentIsEmpty(t *testing.T) {
	repo := NewUserRepository(kv.NewMemory(), testLogger())

	users, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserRepository_SaveAllFindAllRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(kv.NewMemory(), testLogger())

	created := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	in := []entity.UserAccount{
		{ID: "u-1", Email: "a@x.com", Name: "Alice", PasswordHash: "$2a$hash", CreatedAt: created},
		{ID: "u-2", Email: "b@x.com", Name: "Bob", PasswordHash: "$2a$other", CreatedAt: created},
	}
	require.NoError(t, repo.SaveAll(ctx, in))

	out, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, in, out)
}

func TestUserRepository_SaveAllOverwritesTable(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(kv.NewMemory(), testLogger())

	require.NoError(t, repo.SaveAll(ctx, []entity.UserAccount{{ID: "u-1", Email: "a@x.com"}}))
	require.NoError(t, repo.SaveAll(ctx, nil))

	out, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestUserRepository_CorruptTableIsEmpty(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.Set(ctx, "users.v1", `{"oops": true}`))

	repo := NewUserRepository(store, testLogger())

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

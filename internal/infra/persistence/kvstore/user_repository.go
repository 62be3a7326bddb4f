// Package kvstore contains the persistence adapters: each adapter owns one
// JSON-serialized record type under a fixed storage key of the durable
// key-value service. A payload that fails to parse is treated as absent,
// never surfaced as an error.
package kvstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/pkg/errors"

	"barista/internal/domain/entity"
	"barista/internal/domain/repository"
)

// usersKey is the storage key of the account table.
const usersKey = "users.v1"

// userRepository persists the account table as a single JSON array.
type userRepository struct {
	kv     repository.KV
	logger *slog.Logger
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(kv repository.KV, logger *slog.Logger) repository.UserRepository {
	return &userRepository{kv: kv, logger: logger}
}

// FindAll returns every registered account. A missing or corrupt table
// yields an empty slice.
func (r *userRepository) FindAll(ctx context.Context) ([]entity.UserAccount, error) {
	raw, err := r.kv.Get(ctx, usersKey)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "load user table")
	}

	var users []entity.UserAccount
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		// Corrupt table, recover as empty.
		r.logger.Warn("Discarding unparsable user table", "key", usersKey, "error", err)

		return nil, nil
	}

	return users, nil
}

// SaveAll overwrites the whole account table.
func (r *userRepository) SaveAll(ctx context.Context, users []entity.UserAccount) error {
	if users == nil {
		users = []entity.UserAccount{}
	}

	payload, err := json.Marshal(users)
	if err != nil {
		return errors.Wrap(err, "encode user table")
	}

	if err := r.kv.Set(ctx, usersKey, string(payload)); err != nil {
		return errors.Wrap(err, "save user table")
	}

	return nil
}

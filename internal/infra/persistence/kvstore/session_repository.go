package kvstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/pkg/errors"

	"barista/internal/domain/entity"
	"barista/internal/domain/repository"
)

// sessionKey is the storage key of the current-session record.
const sessionKey = "currentUser.v1"

// sessionRepository persists the single active session.
type sessionRepository struct {
	kv     repository.KV
	logger *slog.Logger
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(kv repository.KV, logger *slog.Logger) repository.SessionRepository {
	return &sessionRepository{kv: kv, logger: logger}
}

// Save stores the session; a nil session deletes the persisted record.
func (r *sessionRepository) Save(ctx context.Context, session *entity.Session) error {
	if session == nil {
		if err := r.kv.Delete(ctx, sessionKey); err != nil {
			return errors.Wrap(err, "delete session record")
		}

		return nil
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "encode session record")
	}

	if err := r.kv.Set(ctx, sessionKey, string(payload)); err != nil {
		return errors.Wrap(err, "save session record")
	}

	return nil
}

// Load returns the persisted session, or nil when absent or corrupt.
func (r *sessionRepository) Load(ctx context.Context) (*entity.Session, error) {
	raw, err := r.kv.Get(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "load session record")
	}

	var session entity.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		r.logger.Warn("Discarding unparsable session record", "key", sessionKey, "error", err)

		return nil, nil
	}

	return &session, nil
}

// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"barista/internal/domain/entity"
)

// UserRepository persists the local account table as one record. The table
// is small (single-device install base), so reads and writes are whole-table:
// callers load, modify, and save back.
type UserRepository interface {
	// FindAll returns every registered account. A missing or corrupt table
	// yields an empty slice, never an error about the payload itself.
	FindAll(ctx context.Context) ([]entity.UserAccount, error)

	// SaveAll overwrites the whole account table.
	SaveAll(ctx context.Context, users []entity.UserAccount) error
}

// SessionRepository persists the single active session record.
type SessionRepository interface {
	// Save stores the session; a nil session deletes the persisted record.
	Save(ctx context.Context, session *entity.Session) error

	// Load returns the persisted session, or nil when absent or corrupt.
	Load(ctx context.Context) (*entity.Session, error)
}

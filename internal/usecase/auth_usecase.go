// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"barista/internal/domain/entity"
)

// AuthUsecase is the consumer-facing surface of the authentication state
// machine. The access pattern is uniform: read the state snapshot, call an
// action, await its boolean or void result. Login, Register and UpdateName
// never return a Go error; failures land in the snapshot's error field as a
// user-facing message and the machine always leaves its loading state.
type AuthUsecase interface {
	// Initialize restores the persisted session, if any. Any failure is
	// treated as "not logged in"; it never propagates.
	Initialize(ctx context.Context)

	// Login verifies the credentials against the local account table
	// (case-insensitive email, exact password) and persists the session on
	// success.
	Login(ctx context.Context, email, password string) bool

	// Register creates a new account unless the email is already taken
	// case-insensitively, then logs it in.
	Register(ctx context.Context, email, name, password string) bool

	// UpdateName renames the active session's account in both the account
	// table and the persisted session record.
	UpdateName(ctx context.Context, name string) bool

	// Logout deletes the persisted session and clears the in-memory user.
	// It does not clear a pending error.
	Logout(ctx context.Context)

	// ClearError resets the error field; no other state changes.
	ClearError()

	// State returns the current snapshot.
	State() entity.AuthState

	// Subscribe registers an observer to run after every state change and
	// returns its cancel function.
	Subscribe(fn func()) (cancel func())
}

// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"barista/internal/domain/entity"
	domainerrors "barista/internal/domain/errors"
	"barista/internal/domain/repository"
	"barista/internal/domain/service"
	"barista/internal/store"
	"barista/internal/usecase"
)

// authService implements the AuthUsecase interface. It is the single state
// container backing the auth machine; consumers only see the interface.
type authService struct {
	users     repository.UserRepository
	sessions  repository.SessionRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
	observers *store.Observers

	mu    sync.Mutex
	state entity.AuthState
}

// NewAuthService is the constructor for authService. It receives all
// dependencies as interfaces. The machine starts in its loading state until
// Initialize has run.
func NewAuthService(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		users:     users,
		sessions:  sessions,
		hasher:    hasher,
		logger:    logger,
		observers: store.NewObservers(),
		state:     entity.AuthState{IsLoading: true},
	}
}

// State returns the current snapshot.
func (srv *authService) State() entity.AuthState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.state
}

// Subscribe registers an observer to run after every state change.
func (srv *authService) Subscribe(fn func()) (cancel func()) {
	return srv.observers.Subscribe(fn)
}

// Initialize restores the persisted session. Any failure degrades to the
// unauthenticated state; it never propagates to the caller.
func (srv *authService) Initialize(ctx context.Context) {
	srv.setState(func(st *entity.AuthState) {
		st.IsLoading = true
	})

	session, err := srv.sessions.Load(ctx)
	if err != nil {
		srv.logger.Warn("Session restore failed, treating as logged out", "error", err)
		session = nil
	}

	srv.setState(func(st *entity.AuthState) {
		st.User = session
		st.IsLoading = false
	})
}

// Login verifies credentials and persists the session on success.
func (srv *authService) Login(ctx context.Context, email, password string) bool {
	srv.logger.Debug("Starting login", "email", email)
	srv.setState(func(st *entity.AuthState) {
		st.IsLoading = true
		st.Err = ""
	})

	users, err := srv.users.FindAll(ctx)
	if err != nil {
		return srv.fail("login", err, domainerrors.ErrInternal)
	}

	account, ok := srv.findAccount(users, email)
	if !ok || !srv.hasher.Check(password, account.PasswordHash) {
		return srv.fail("login", domainerrors.ErrInvalidCredentials, domainerrors.ErrInvalidCredentials)
	}

	session := &entity.Session{ID: account.ID, Email: account.Email, Name: account.Name}
	if err := srv.sessions.Save(ctx, session); err != nil {
		return srv.fail("login", err, domainerrors.ErrInternal)
	}

	srv.setState(func(st *entity.AuthState) {
		st.User = session
		st.IsLoading = false
	})
	srv.logger.Debug("Logged in", "userID", session.ID)

	return true
}

// Register creates a new account and logs it in. The email must be unique
// case-insensitively across the account table.
func (srv *authService) Register(ctx context.Context, email, name, password string) bool {
	srv.logger.Debug("Starting registration", "email", email)
	srv.setState(func(st *entity.AuthState) {
		st.IsLoading = true
		st.Err = ""
	})

	users, err := srv.users.FindAll(ctx)
	if err != nil {
		return srv.fail("register", err, domainerrors.ErrInternal)
	}

	if _, exists := srv.findAccount(users, email); exists {
		return srv.fail("register", domainerrors.ErrUserAlreadyExists, domainerrors.ErrUserAlreadyExists)
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return srv.fail("register", errors.Wrap(err, "hash password"), domainerrors.ErrInternal)
	}

	account := entity.UserAccount{
		ID:           uuid.NewString(),
		Email:        normalizeEmail(email),
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := srv.users.SaveAll(ctx, append(users, account)); err != nil {
		return srv.fail("register", err, domainerrors.ErrInternal)
	}

	session := &entity.Session{ID: account.ID, Email: account.Email, Name: account.Name}
	if err := srv.sessions.Save(ctx, session); err != nil {
		return srv.fail("register", err, domainerrors.ErrInternal)
	}

	srv.setState(func(st *entity.AuthState) {
		st.User = session
		st.IsLoading = false
	})
	srv.logger.Debug("Registered", "userID", account.ID)

	return true
}

// UpdateName renames the active account in the table and the persisted
// session; both must reflect the new name.
func (srv *authService) UpdateName(ctx context.Context, name string) bool {
	srv.setState(func(st *entity.AuthState) {
		st.IsLoading = true
		st.Err = ""
	})

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return srv.fail("update name", domainerrors.ErrNameRequired, domainerrors.ErrNameRequired)
	}

	current := srv.State().User
	if current == nil {
		return srv.fail("update name", domainerrors.ErrNotAuthenticated, domainerrors.ErrNotAuthenticated)
	}

	users, err := srv.users.FindAll(ctx)
	if err != nil {
		return srv.fail("update name", err, domainerrors.ErrInternal)
	}

	for i := range users {
		if strings.EqualFold(users[i].Email, current.Email) {
			users[i].Name = trimmed
		}
	}
	if err := srv.users.SaveAll(ctx, users); err != nil {
		return srv.fail("update name", err, domainerrors.ErrInternal)
	}

	updated := &entity.Session{ID: current.ID, Email: current.Email, Name: trimmed}
	if err := srv.sessions.Save(ctx, updated); err != nil {
		return srv.fail("update name", err, domainerrors.ErrInternal)
	}

	srv.setState(func(st *entity.AuthState) {
		st.User = updated
		st.IsLoading = false
	})

	return true
}

// Logout deletes the persisted session and clears the in-memory user. A
// pending error is left in place for the UI to dismiss.
func (srv *authService) Logout(ctx context.Context) {
	if err := srv.sessions.Save(ctx, nil); err != nil {
		// The in-memory logout proceeds regardless.
		srv.logger.Warn("Deleting persisted session failed", "error", err)
	}

	srv.setState(func(st *entity.AuthState) {
		st.User = nil
		st.IsLoading = false
	})
}

// ClearError resets the error field; no other state change.
func (srv *authService) ClearError() {
	srv.setState(func(st *entity.AuthState) {
		st.Err = ""
	})
}

// setState applies fn to the state under the lock and notifies observers
// after releasing it.
func (srv *authService) setState(fn func(*entity.AuthState)) {
	srv.mu.Lock()
	fn(&srv.state)
	srv.mu.Unlock()

	srv.observers.Notify()
}

// fail logs cause, records the user-facing message of appErr, leaves the
// loading state, and returns false.
func (srv *authService) fail(op string, cause error, appErr domainerrors.AppError) bool {
	srv.logger.Warn("Auth operation failed", "op", op, "error", cause)

	srv.setState(func(st *entity.AuthState) {
		st.Err = appErr.Message()
		st.IsLoading = false
	})

	return false
}

// findAccount looks up an account by case-insensitive email.
func (srv *authService) findAccount(users []entity.UserAccount, email string) (entity.UserAccount, bool) {
	needle := normalizeEmail(email)
	for _, u := range users {
		if strings.ToLower(u.Email) == needle {
			return u, true
		}
	}

	return entity.UserAccount{}, false
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"barista/internal/domain/repository"
	"barista/internal/infra/auth"
	"barista/internal/infra/persistence/kv"
	"barista/internal/infra/persistence/kvstore"
	"barista/internal/usecase"
)

// authFixtures holds all test dependencies for auth service tests.
type authFixtures struct {
	service  usecase.AuthUsecase
	backing  *kv.Memory
	sessions repository.SessionRepository
	users    repository.UserRepository
}

func createTestAuthService(t *testing.T) authFixtures {
	t.Helper()
	backing := kv.NewMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := kvstore.NewUserRepository(backing, logger)
	sessions := kvstore.NewSessionRepository(backing, logger)
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)

	return authFixtures{
		service:  NewAuthService(users, sessions, hasher, logger),
		backing:  backing,
		sessions: sessions,
		users:    users,
	}
}

func TestAuthService_StartsLoadingAndUnauthenticated(t *testing.T) {
	fx := createTestAuthService(t)

	state := fx.service.State()
	assert.True(t, state.IsLoading)
	assert.False(t, state.IsAuthenticated())
	assert.Nil(t, state.User)
}

func TestAuthService_InitializeWithoutSession(t *testing.T) {
	fx := createTestAuthService(t)

	fx.service.Initialize(context.Background())

	state := fx.service.State()
	assert.False(t, state.IsLoading)
	assert.False(t, state.IsAuthenticated())
}

func TestAuthService_RegisterAndLoginFlow(t *testing.T) {
	ctx := context.Background()
	fx := createTestAuthService(t)

	ok := fx.service.Register(ctx, " A@X.com ", "  Alice  ", "pw123")
	require.True(t, ok)

	state := fx.service.State()
	require.True(t, state.IsAuthenticated())
	assert.Equal(t, "a@x.com", state.User.Email, "email lowercased and trimmed")
	assert.Equal(t, "Alice", state.User.Name, "name trimmed")
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.Err)

	// The account table stores a hash, never the plaintext.
	accounts, err := fx.users.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.NotEmpty(t, accounts[0].ID)
	assert.NotEqual(t, "pw123", accounts[0].PasswordHash)
	assert.NotContains(t, accounts[0].PasswordHash, "pw123")

	fx.service.Logout(ctx)
	assert.False(t, fx.service.State().IsAuthenticated())

	assert.True(t, fx.service.Login(ctx, "A@x.COM", "pw123"))
	assert.True(t, fx.service.State().IsAuthenticated())
}

func TestAuthService_RegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	fx := createTestAuthService(t)

	require.True(t, fx.service.Register(ctx, "a@x.com", "Alice", "pw123"))

	ok := fx.service.Register(ctx, "A@X.com", "Bob", "pw456")
	assert.False(t, ok)

	state := fx.service.State()
	assert.Equal(t, "User with this email already exists", state.Err)
	assert.False(t, state.IsLoading)
	// The first registration's session is untouched.
	assert.Equal(t, "Alice", state.User.Name)

	accounts, err := fx.users.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestAuthService_RegisterGeneratesUniqueIDs(t *testing.T) {
	ctx := context.Background()
	fx := createTestAuthService(t)

	require.True(t, fx.service.Register(ctx, "a@x.com", "Alice", "pw123"))
	fx.service.Logout(ctx)
	require.True(t, fx.service.Register(ctx, "b@x.com", "Bob", "pw456"))

	accounts, err := fx.users.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.NotEqual(t, accounts[0].ID, accounts[1].ID)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	fx := createTestAuthService(t)

	require.True(t, fx.service.Register(ctx, "a@x.com", "Alice", "pw123"))
	fx.service.Logout(ctx)

	ok := fx.service.Login(ctx, "a@x.com", "wrong")
	assert.False(t, ok)

	state := fx.service.State()
	assert.Equal(t, "Invalid email or password", state.Err)
	assert.False(t, state.IsAuthenticated())
	assert.False(t, state.IsLoading)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ok := fx.service.Login(context.Background(), "ghost@x.com", "pw123")
	assert.False(t, ok)
	assert.Equal(t, "Invalid email or password", fx.service.State().Err)
}

func TestAuthService_UpdateNameBlankFailsWithoutMutation(t *testing.T) {
	ctx := context.Background()
	fx := createTestAuthService(t)

	require.True(t, fx.service.Register(ctx, "a@x.com", "Alice", "pw123"))

	ok := fx.service.UpdateName(ctx, "   ")
	assert.False(t, ok)

	state := fx.service.State()
	assert.Equal(t, "Name is required", state.Err)
	assert.Equal(t, "Alice", state.User.Name)

	accounts, err := fx.users.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Alice", accounts[0].Name)

	session, err := fx.sessions.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "Alice", session.Name)
}

func TestAuthService_UpdateNameNotAuthenticated(t *testing.T) {
	fx := createTestAuthService(t)
	fx.service.Initialize(context.Background())

	ok := fx.service.UpdateName(context.Background(), "Mallory")
	assert.False(t, ok)
	assert.Equal(t, "Not authenticated", fx.service.State().Err)
}

func TestAuthService_UpdateNameUpdatesTableAndSession(t *testing.T) {
	ctx := context.Background()
	fx := createTestAuthService(t)

	require.True(t, fx.service.Register(ctx, "a@x.com", "Alice", "pw123"))
	require.True(t, fx.service.UpdateName(ctx, "  Alicia  "))

	state := fx.service.State()
	assert.Equal(t, "Alicia", state.User.Name)

	accounts, err := fx.users.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Alicia", accounts[0].Name)

	session, err := fx.sessions.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "Alicia", session.Name)
}

func TestAuthService_LogoutClearsSessionButKeepsError(t *testing.T) {
	ctx := context.Background()
	fx := createTestAuthService(t)

	require.True(t, fx.service.Register(ctx, "a@x.com", "Alice", "pw123"))

	// Provoke an error, then log out.
	assert.False(t, fx.service.Register(ctx, "a@x.com", "Bob", "pw456"))
	fx.service.Logout(ctx)

	state := fx.service.State()
	assert.False(t, state.IsAuthenticated())
	assert.Equal(t, "User with this email already exists", state.Err, "logout does not clear the error")

	session, err := fx.sessions.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, session, "persisted session deleted")

	// A fresh initialize after logout stays unauthenticated.
	fx.service.Initialize(ctx)
	assert.False(t, fx.service.State().IsAuthenticated())

	fx.service.ClearError()
	assert.Empty(t, fx.service.State().Err)
}

func TestAuthService_InitializeRestoresPersistedSession(t *testing.T) {
	ctx := context.Background()
	backing := kv.NewMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := kvstore.NewUserRepository(backing, logger)
	sessions := kvstore.NewSessionRepository(backing, logger)
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)

	first := NewAuthService(users, sessions, hasher, logger)
	require.True(t, first.Register(ctx, "a@x.com", "Alice", "pw123"))

	// A second machine over the same backing restores the session.
	second := NewAuthService(users, sessions, hasher, logger)
	second.Initialize(ctx)

	state := second.State()
	require.True(t, state.IsAuthenticated())
	assert.Equal(t, "a@x.com", state.User.Email)
	assert.False(t, state.IsLoading)
}

// failingKV rejects every operation, standing in for unavailable storage.
type failingKV struct{}

func (failingKV) Get(context.Context, string) (string, error) {
	return "", errors.New("storage unavailable")
}

func (failingKV) Set(context.Context, string, string) error {
	return errors.New("storage unavailable")
}

func (failingKV) Delete(context.Context, string) error {
	return errors.New("storage unavailable")
}

func TestAuthService_StorageFailureDegradesToGenericError(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := kvstore.NewUserRepository(failingKV{}, logger)
	sessions := kvstore.NewSessionRepository(failingKV{}, logger)
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)

	service := NewAuthService(users, sessions, hasher, logger)

	assert.False(t, service.Login(ctx, "a@x.com", "pw123"))
	state := service.State()
	assert.Equal(t, "An error occurred", state.Err)
	assert.False(t, state.IsLoading, "machine always leaves the loading state")

	assert.False(t, service.Register(ctx, "a@x.com", "Alice", "pw123"))
	assert.Equal(t, "An error occurred", service.State().Err)

	// Initialize never surfaces the failure.
	service.Initialize(ctx)
	state = service.State()
	assert.False(t, state.IsAuthenticated())
	assert.False(t, state.IsLoading)
}

func TestAuthService_StateChangesNotifyObservers(t *testing.T) {
	ctx := context.Background()
	fx := createTestAuthService(t)

	var calls int
	cancel := fx.service.Subscribe(func() { calls++ })
	defer cancel()

	// Register notifies at least twice: entering and leaving loading.
	require.True(t, fx.service.Register(ctx, "a@x.com", "Alice", "pw123"))
	assert.GreaterOrEqual(t, calls, 2)

	before := calls
	fx.service.ClearError()
	assert.Equal(t, before+1, calls)

	cancel()
	fx.service.Logout(ctx)
	assert.Equal(t, before+1, calls, "cancelled observer no longer invoked")
}

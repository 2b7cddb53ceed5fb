package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flogin/flogin-api/internal/domain/entity"
	repo "github.com/flogin/flogin-api/internal/domain/repository"
	"github.com/flogin/flogin-api/pkg/helpers"
)

// fakeUserRepo is an in-memory credential store with the same uniqueness
// guarantee the database provides.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]entity.User
	next  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]entity.User{}}
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[username]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.users[username]
	return ok, nil
}

func (f *fakeUserRepo) Save(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.Username]; ok {
		return repo.ErrDuplicate
	}
	f.next++
	u.ID = f.next
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.users[u.Username] = *u
	return nil
}

func (f *fakeUserRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
}

func newTestAuthService() (*AuthService, *fakeUserRepo) {
	r := newFakeUserRepo()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(r, jwt, nil), r
}

func TestRegisterThenLogin(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, "Alice Doe", "alice", "password1")
	require.NoError(t, err)
	assert.Equal(t, "Alice Doe", reg.FullName)
	assert.Equal(t, "alice", reg.Username)

	res, err := svc.Login(ctx, "alice", "password1")
	require.NoError(t, err)
	assert.Equal(t, BearerHeader, res.Header)
	require.NotEmpty(t, res.AccessToken)

	claims, err := svc.JWT.ParseAccessToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username())
}

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	svc, store := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice Doe", "alice", "password1")
	require.NoError(t, err)

	u, err := store.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "password1", u.PasswordHash)
	assert.True(t, helpers.CompareHashAndPassword(u.PasswordHash, "password1"))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, store := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice Doe", "alice", "password1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Another Alice", "alice", "password2")
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.Equal(t, 1, store.count(), "duplicate registration must not create a second record")
}

func TestRegisterLostRaceMapsDuplicate(t *testing.T) {
	svc, store := newTestAuthService()
	ctx := context.Background()

	// Simulate the advisory check passing while another request wins the
	// insert: seed the record directly after constructing the service.
	require.NoError(t, store.Save(ctx, &entity.User{FullName: "First", Username: "bob", PasswordHash: "x"}))

	_, err := svc.Register(ctx, "Second", "bob", "password1")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Login(context.Background(), "ghost", "password1")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice Doe", "alice", "password1")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice", "password2")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestGetUserByUsername(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice Doe", "alice", "password1")
	require.NoError(t, err)

	u, err := svc.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice Doe", u.FullName)

	_, err = svc.GetUserByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestEnsureAdminIdempotent(t *testing.T) {
	svc, store := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "Admin", "admin123", "admin123"))
	require.NoError(t, svc.EnsureAdmin(ctx, "Admin", "admin123", "admin123"))
	assert.Equal(t, 1, store.count())

	res, err := svc.Login(ctx, "admin123", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
}

func TestUsernamesCaseSensitive(t *testing.T) {
	svc, store := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice Doe", "Alice", "password1")
	require.NoError(t, err)

	// A differently-cased username is a different account.
	_, err = svc.Login(ctx, "alice", "password1")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Register(ctx, "Other", "alice", "password1")
	require.NoError(t, err)
	assert.Equal(t, 2, store.count())
}

package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"taskhive/internal/database"
	"taskhive/internal/domain"
	"taskhive/internal/pkg/token"
	"taskhive/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticVerifier accepts exactly one credential pair.
type staticVerifier struct {
	email    string
	password string
	user     *domain.User
}

func (v *staticVerifier) Verify(ctx context.Context, email, password string) (*domain.User, error) {
	if email == v.email && password == v.password {
		return v.user, nil
	}
	return nil, ErrInvalidCredentials
}

func newSQLiteFixture(t *testing.T) (*Manager, *repository.TokenRecordRepository) {
	t.Helper()

	db, err := database.Connect(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.TokenRecord{}))

	store := repository.NewTokenRecordRepository(db)
	codec := token.NewCodec("scenario-secret", 15*time.Minute, 7*24*time.Hour)
	verifier := &staticVerifier{email: "u1@example.com", password: "s1", user: &domain.User{UID: "u1"}}
	cookie := CookieOptions{Path: "/api/auth/refresh", Secure: true, SameSite: "Strict"}

	return NewManager(verifier, codec, store, cookie, 7*24*time.Hour), store
}

// Full rotation scenario against a real store: login, rotate, replay
// the rotated-away token, continue on the new one.
func TestManager_RotationScenario(t *testing.T) {
	manager, _ := newSQLiteFixture(t)
	ctx := context.Background()

	first, err := manager.Authenticate(ctx, "u1@example.com", "s1")
	require.NoError(t, err)
	a1, r1 := first.AccessToken, first.RefreshCookie.Value

	second, err := manager.Refresh(ctx, r1)
	require.NoError(t, err)
	a2, r2 := second.AccessToken, second.RefreshCookie.Value
	assert.NotEqual(t, r1, r2)
	assert.NotEqual(t, a1, a2)

	// r1 was rotated away: replaying it is reuse and must fail.
	_, err = manager.Refresh(ctx, r1)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// The current chain keeps working.
	third, err := manager.Refresh(ctx, r2)
	require.NoError(t, err)
	assert.NotEqual(t, r2, third.RefreshCookie.Value)
}

func TestManager_SecondLoginLeavesOneLiveRecord(t *testing.T) {
	manager, store := newSQLiteFixture(t)
	ctx := context.Background()

	first, err := manager.Authenticate(ctx, "u1@example.com", "s1")
	require.NoError(t, err)

	second, err := manager.Authenticate(ctx, "u1@example.com", "s1")
	require.NoError(t, err)

	records, err := store.FindAllValidByPrincipal(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, second.RefreshCookie.Value, records[0].Token)

	// The first login's refresh token is dead.
	_, err = manager.Refresh(ctx, first.RefreshCookie.Value)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_LogoutKillsTheChain(t *testing.T) {
	manager, store := newSQLiteFixture(t)
	ctx := context.Background()

	tokens, err := manager.Authenticate(ctx, "u1@example.com", "s1")
	require.NoError(t, err)

	require.NoError(t, manager.Logout(ctx, "u1"))

	records, err := store.FindAllValidByPrincipal(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = manager.Refresh(ctx, tokens.RefreshCookie.Value)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Second logout finds nothing to revoke and still succeeds.
	assert.NoError(t, manager.Logout(ctx, "u1"))
}

package session

import (
	"context"
	"errors"
	"testing"

	"taskhive/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockUserReader struct {
	mock.Mock
}

func (m *mockUserReader) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestBcryptVerifier_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s1"), bcrypt.MinCost)
	require.NoError(t, err)

	users := new(mockUserReader)
	users.On("GetByEmail", mock.Anything, "u1@example.com").
		Return(&domain.User{UID: "u1", PasswordHash: string(hash)}, nil)

	user, err := NewBcryptVerifier(users).Verify(context.Background(), "u1@example.com", "s1")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.UID)
}

func TestBcryptVerifier_UnknownEmailAndWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s1"), bcrypt.MinCost)
	require.NoError(t, err)

	users := new(mockUserReader)
	users.On("GetByEmail", mock.Anything, "nobody@example.com").
		Return(nil, gorm.ErrRecordNotFound)
	users.On("GetByEmail", mock.Anything, "u1@example.com").
		Return(&domain.User{UID: "u1", PasswordHash: string(hash)}, nil)

	verifier := NewBcryptVerifier(users)

	_, err = verifier.Verify(context.Background(), "nobody@example.com", "s1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = verifier.Verify(context.Background(), "u1@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// A lookup failure is a store problem and must not be mistaken for a
// bad credential.
func TestBcryptVerifier_LookupFailure(t *testing.T) {
	users := new(mockUserReader)
	users.On("GetByEmail", mock.Anything, "u1@example.com").
		Return(nil, errors.New("connection reset"))

	_, err := NewBcryptVerifier(users).Verify(context.Background(), "u1@example.com", "s1")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

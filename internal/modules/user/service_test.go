package user

import (
	"context"
	"testing"

	"taskhive/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func TestService_Register_Success(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("ExistsByEmail", mock.Anything, "Test@Example.com").Return(false, nil)

	// The service blanks the hash on the same struct after Create, so
	// capture it at call time.
	var storedHash string
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		storedHash = args.Get(1).(*domain.User).PasswordHash
	}).Return(nil)

	service := NewService(repo)

	u, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Test User",
		Email:    "Test@Example.com",
		Password: "securepass123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, u.UID)
	assert.Equal(t, "test@example.com", u.Email)
	assert.Empty(t, u.PasswordHash, "hash must not leak out of the service")

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("securepass123")))

	repo.AssertExpectations(t)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("ExistsByEmail", mock.Anything, "test@example.com").Return(true, nil)

	service := NewService(repo)

	_, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "securepass123",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

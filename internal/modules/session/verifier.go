package session

import (
	"context"
	"errors"
	"fmt"

	"taskhive/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserReader is the slice of the identity store the verifier needs.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// BcryptVerifier checks a credential pair against stored bcrypt
// hashes. Unknown email and wrong password both come back as
// ErrInvalidCredentials.
type BcryptVerifier struct {
	users UserReader
}

func NewBcryptVerifier(users UserReader) *BcryptVerifier {
	return &BcryptVerifier{users: users}
}

func (v *BcryptVerifier) Verify(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := v.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		// Lookup failures are a store problem, not a credential one.
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

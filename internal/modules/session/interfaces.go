package session

import (
	"context"

	"taskhive/internal/domain"
)

// TokenStore is the persistent record of issued refresh tokens.
// "Valid" here means not revoked; expiry is checked cryptographically
// by the codec and the manager enforces both.
type TokenStore interface {
	Save(ctx context.Context, t *domain.TokenRecord) error
	FindValid(ctx context.Context, token string) (*domain.TokenRecord, error)
	FindAllValidByPrincipal(ctx context.Context, principalUID string) ([]domain.TokenRecord, error)
	RevokeAll(ctx context.Context, records []domain.TokenRecord) error
	// RevokeByToken atomically revokes the record if it is still
	// unrevoked and reports whether this caller won the write.
	RevokeByToken(ctx context.Context, token string) (bool, error)
}

// CredentialVerifier checks an identifier/secret pair against the
// identity store. Implementations return ErrInvalidCredentials for
// any mismatch, unknown identifiers included.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (*domain.User, error)
}

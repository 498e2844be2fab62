package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskhive/internal/domain"
	"taskhive/internal/pkg/token"

	"gorm.io/gorm"
)

const cookieName = "refresh_token"

type tokenCodec interface {
	IssueAccessToken(principalUID string) (string, error)
	IssueRefreshToken(principalUID string) (string, time.Time, error)
	Verify(raw string) (*token.Claims, error)
}

// CookieOptions fixes the transport attributes stamped on every
// refresh cookie descriptor.
type CookieOptions struct {
	Path     string
	Secure   bool
	SameSite string
}

// Manager orchestrates authentication, refresh with rotation, and
// logout. It keeps no mutable state of its own: everything lives in
// the token store, so any number of instances can run side by side.
//
// Invariant: a principal has at most one live refresh-token chain.
// Every successful authenticate or refresh revokes all previously
// issued refresh tokens for that principal before persisting the new
// one.
type Manager struct {
	verifier   CredentialVerifier
	codec      tokenCodec
	store      TokenStore
	cookie     CookieOptions
	refreshTTL time.Duration
}

func NewManager(verifier CredentialVerifier, codec tokenCodec, store TokenStore, cookie CookieOptions, refreshTTL time.Duration) *Manager {
	return &Manager{
		verifier:   verifier,
		codec:      codec,
		store:      store,
		cookie:     cookie,
		refreshTTL: refreshTTL,
	}
}

// Authenticate verifies the credential pair, revokes every live
// refresh token for the principal, and issues a fresh pair. A failed
// verification has no side effects.
func (m *Manager) Authenticate(ctx context.Context, email, password string) (*SessionTokens, error) {
	user, err := m.verifier.Verify(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := m.revokeAllFor(ctx, user.UID); err != nil {
		return nil, err
	}

	return m.issue(ctx, user.UID)
}

// Refresh rotates the presented token: signature and expiry are
// checked first, then the store must still hold the record unrevoked.
// A token that fails the store check was never issued, already rotated
// away, or lost a concurrent race; all of these are reported as
// ErrInvalidToken, treating reuse as a stale-session signal rather
// than silently accepting it.
func (m *Manager) Refresh(ctx context.Context, raw string) (*SessionTokens, error) {
	claims, err := m.codec.Verify(raw)
	if err != nil {
		return nil, ErrInvalidToken
	}

	record, err := m.store.FindValid(ctx, raw)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, m.storeErr(err)
	}
	if record.PrincipalUID != claims.PrincipalUID {
		return nil, ErrInvalidToken
	}

	// Conditional update in the store arbitrates concurrent refreshes
	// of the same token: exactly one caller wins the row, the loser
	// sees it already revoked.
	won, err := m.store.RevokeByToken(ctx, raw)
	if err != nil {
		return nil, m.storeErr(err)
	}
	if !won {
		return nil, ErrInvalidToken
	}

	// A legitimate refresh supersedes the whole prior session line,
	// mirroring Authenticate's revoke-all.
	if err := m.revokeAllFor(ctx, claims.PrincipalUID); err != nil {
		return nil, err
	}

	return m.issue(ctx, claims.PrincipalUID)
}

// Logout revokes every live refresh token for the principal. Calling
// it again finds nothing unrevoked and performs zero writes.
func (m *Manager) Logout(ctx context.Context, principalUID string) error {
	if principalUID == "" {
		return ErrUnauthenticated
	}
	return m.revokeAllFor(ctx, principalUID)
}

func (m *Manager) revokeAllFor(ctx context.Context, principalUID string) error {
	records, err := m.store.FindAllValidByPrincipal(ctx, principalUID)
	if err != nil {
		return m.storeErr(err)
	}
	if err := m.store.RevokeAll(ctx, records); err != nil {
		return m.storeErr(err)
	}
	return nil
}

func (m *Manager) issue(ctx context.Context, principalUID string) (*SessionTokens, error) {
	access, err := m.codec.IssueAccessToken(principalUID)
	if err != nil {
		return nil, err
	}

	raw, expiresAt, err := m.codec.IssueRefreshToken(principalUID)
	if err != nil {
		return nil, err
	}

	if err := m.store.Save(ctx, &domain.TokenRecord{
		Token:        raw,
		PrincipalUID: principalUID,
		ExpiresAt:    expiresAt,
	}); err != nil {
		return nil, m.storeErr(err)
	}

	return &SessionTokens{
		AccessToken: access,
		RefreshCookie: RefreshCookie{
			Name:          cookieName,
			Value:         raw,
			Path:          m.cookie.Path,
			MaxAgeSeconds: int(m.refreshTTL.Seconds()),
			HTTPOnly:      true,
			Secure:        m.cookie.Secure,
			SameSite:      m.cookie.SameSite,
		},
	}, nil
}

// storeErr surfaces persistence failures as one kind without
// retrying; retry policy belongs to the caller. The raw token never
// appears in the wrapped message.
func (m *Manager) storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

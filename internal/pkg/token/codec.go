package token

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidSignature covers every verification failure that is
	// not an expiry: bad signature, malformed token, wrong algorithm.
	ErrInvalidSignature = errors.New("invalid token signature")
	// ErrExpired means the token verified but its expiry is in the
	// past. Clock skew is not compensated; all comparisons use this
	// process's clock.
	ErrExpired = errors.New("token expired")
)

// Claims is the signed payload shared by access and refresh tokens.
// Every token carries a unique ID (RegisteredClaims.ID), so two
// issuances are never byte-identical even within the same second and
// a raw refresh string can serve as the server-side tracking key.
type Claims struct {
	PrincipalUID string `json:"principal_uid"`
	jwtlib.RegisteredClaims
}

// Codec signs and verifies tokens. It is stateless: the secret and
// TTLs are fixed at construction and never mutated.
type Codec struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewCodec(secret string, accessTTL, refreshTTL time.Duration) *Codec {
	return &Codec{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssueAccessToken signs a short-lived bearer token for principalUID.
func (c *Codec) IssueAccessToken(principalUID string) (string, error) {
	return c.sign(principalUID, c.accessTTL)
}

// IssueRefreshToken signs a long-lived token for principalUID and
// returns the raw string together with its expiry, which the caller
// persists alongside the string.
func (c *Codec) IssueRefreshToken(principalUID string) (raw string, expiresAt time.Time, err error) {
	now := time.Now()
	expiresAt = now.Add(c.refreshTTL)
	raw, err = c.sign(principalUID, c.refreshTTL)
	return raw, expiresAt, err
}

// Verify parses and validates raw, failing closed: any signature or
// structural problem yields ErrInvalidSignature and an elapsed expiry
// yields ErrExpired. A token is never partially trusted.
func (c *Codec) Verify(raw string) (*Claims, error) {
	parsed, err := jwtlib.ParseWithClaims(raw, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return c.secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalidSignature
	}
	if !parsed.Valid {
		return nil, ErrInvalidSignature
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.PrincipalUID == "" {
		return nil, ErrInvalidSignature
	}

	return claims, nil
}

// sign stamps a fresh uuid into RegisteredClaims.ID. Timestamps alone
// cannot distinguish tokens: iat/exp serialize at second granularity.
func (c *Codec) sign(principalUID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		PrincipalUID: principalUID,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
		},
	}

	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

package session

import "errors"

// One sentinel per error kind the HTTP layer maps to a status.
// InvalidCredentials and InvalidToken are worded identically on the
// wire so a caller cannot tell which part of a credential pair failed.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrStoreUnavailable   = errors.New("token store unavailable")
)

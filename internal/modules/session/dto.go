package session

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshCookie describes the Set-Cookie the HTTP layer must emit for
// a refresh token. The manager decides content and attributes; wire
// delivery belongs to the handler.
type RefreshCookie struct {
	Name          string
	Value         string
	Path          string
	MaxAgeSeconds int
	HTTPOnly      bool
	Secure        bool
	SameSite      string
}

// SessionTokens is what every successful authenticate/refresh returns:
// the access token goes in the response body, the refresh token goes
// out as a cookie.
type SessionTokens struct {
	AccessToken   string
	RefreshCookie RefreshCookie
}

package session

import (
	"errors"
	"log"
	"net/http"

	"taskhive/internal/middleware"
	"taskhive/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler owns the session endpoints. It only serializes cookie
// descriptors produced by the manager; all decisions about cookie
// content and attributes are made there.
type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/authenticate", h.Authenticate)
		authGroup.POST("/refresh", h.Refresh)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	authGroup := protected.Group("/auth")
	{
		authGroup.GET("/validateToken", h.ValidateToken)
		authGroup.POST("/logout", h.Logout)
	}
}

func (h *Handler) Authenticate(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	tokens, err := h.manager.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email or password is incorrect")
			return
		}
		log.Printf("authenticate failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		return
	}

	setRefreshCookie(c, tokens.RefreshCookie)
	response.Success(c, http.StatusOK, gin.H{"token": tokens.AccessToken})
}

func (h *Handler) Refresh(c *gin.Context) {
	raw, err := c.Cookie(cookieName)
	if err != nil || raw == "" {
		response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Refresh token is invalid")
		return
	}

	tokens, err := h.manager.Refresh(c.Request.Context(), raw)
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Refresh token is invalid")
			return
		}
		log.Printf("refresh failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "REFRESH_FAILED", "Failed to refresh session")
		return
	}

	setRefreshCookie(c, tokens.RefreshCookie)
	response.Success(c, http.StatusOK, gin.H{"token": tokens.AccessToken})
}

// ValidateToken exists for clients that want to probe an access token
// without hitting a business endpoint. Reaching it at all means the
// bearer middleware accepted the token.
func (h *Handler) ValidateToken(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"status": "valid"})
}

func (h *Handler) Logout(c *gin.Context) {
	principalUID := middleware.PrincipalUID(c)

	if err := h.manager.Logout(c.Request.Context(), principalUID); err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}
		log.Printf("logout failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "LOGOUT_FAILED", "Failed to logout")
		return
	}

	clearRefreshCookie(c, h.manager.cookie)
	response.Success(c, http.StatusOK, gin.H{"status": "logout successful"})
}

func setRefreshCookie(c *gin.Context, cookie RefreshCookie) {
	c.SetSameSite(sameSiteMode(cookie.SameSite))
	c.SetCookie(cookie.Name, cookie.Value, cookie.MaxAgeSeconds, cookie.Path, "", cookie.Secure, cookie.HTTPOnly)
}

func clearRefreshCookie(c *gin.Context, opts CookieOptions) {
	c.SetSameSite(sameSiteMode(opts.SameSite))
	c.SetCookie(cookieName, "", -1, opts.Path, "", opts.Secure, true)
}

func sameSiteMode(v string) http.SameSite {
	switch v {
	case "Strict", "strict":
		return http.SameSiteStrictMode
	case "None", "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

package middleware

import (
	"net/http"
	"strings"

	"aquashop/internal/domain/entity"
	"aquashop/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyClaims   = "claims"
	ContextKeyUserID   = "userID"
	ContextKeyUsername = "username"
	ContextKeyRole     = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// BearerToken extracts the token from an Authorization header value.
// The second return value is false when the header is absent or not a
// Bearer scheme.
func BearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader || token == "" {
		return "", false
	}

	return token, true
}

// Authenticate is the core middleware function that validates the JWT access token.
// Attaching claims is its only side effect; it is safe to run repeatedly.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := BearerToken(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization token required."})
		}

		claims, err := m.tokenSvc.Validate(token)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token."})
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyClaims, claims)
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUsername, claims.Username)
		c.Set(ContextKeyRole, claims.Role)

		return next(c)
	}
}

// RequireRoles is a middleware factory that admits only the given roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRoles(allowedRoles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(allowedRoles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(entity.Role)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Access denied: role information missing."})
			}

			if !allowed.Contains(role) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Access denied: insufficient role."})
			}

			return next(c)
		}
	}
}

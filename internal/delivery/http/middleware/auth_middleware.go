package middleware

import (
	"strings"

	"gatekeeper/config"
	"gatekeeper/internal/delivery/http/response"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/infra/auth"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyAccountID = "accountID"
	ContextKeyClaims    = "claims"
	ContextKeyRole      = "role"
)

// AuthMiddleware provides middleware for access-token authentication and authorization.
type AuthMiddleware struct {
	cfg *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// Authenticate validates the bearer access token by signature, issuer,
// audience, and expiry. No store lookup is involved.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_MISSING", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_MALFORMED", "Invalid token format, must be Bearer token")
		}

		claims, err := auth.ParseAccessToken(tokenString, m.cfg.JWT)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		accountID, err := claims.AccountID()
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid account ID in token")
		}

		// Set identity on the context for handlers to use
		c.Set(ContextKeyAccountID, accountID)
		c.Set(ContextKeyClaims, claims)
		c.Set(ContextKeyRole, claims.Role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the authenticated role claim.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(string)
			if !ok {
				return domainerrors.ErrForbidden.WithDetails("role information missing")
			}

			if role != requiredRole {
				return domainerrors.ErrForbidden.WithDetails("require '" + requiredRole + "' role")
			}

			return next(c)
		}
	}
}

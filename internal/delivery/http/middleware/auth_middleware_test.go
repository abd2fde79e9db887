package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-key-for-middleware"
	cfg.JWT.Issuer = "gatekeeper-test"
	cfg.JWT.Audience = "gatekeeper-clients"

	return cfg
}

func issueTestToken(t *testing.T, cfg *config.Config, accountID uuid.UUID, role string) string {
	t.Helper()

	issuer, err := auth.NewJWTIssuer(cfg)
	require.NoError(t, err)

	token, err := issuer.IssueAccessToken(accountID, "Ada Lovelace", "ada@example.com", role)
	require.NoError(t, err)

	return token
}

func runMiddleware(t *testing.T, authHeader string, mws ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, bool, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/account/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	next := func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	}

	handler := next
	for i := len(mws) - 1; i >= 0; i-- {
		handler = mws[i](handler)
	}

	return rec, reached, handler(c)
}

func TestAuthMiddleware_Authenticate_ValidToken(t *testing.T) {
	cfg := newAuthTestConfig()
	m := NewAuthMiddleware(cfg)
	accountID := uuid.New()
	token := issueTestToken(t, cfg, accountID, entity.RoleUser)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/account/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.Authenticate(func(c echo.Context) error {
		assert.Equal(t, accountID, c.Get(ContextKeyAccountID))
		assert.Equal(t, entity.RoleUser, c.Get(ContextKeyRole))

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	cfg := newAuthTestConfig()
	m := NewAuthMiddleware(cfg)

	rec, reached, err := runMiddleware(t, "", m.Authenticate)

	require.NoError(t, err)
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_MISSING")
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	cfg := newAuthTestConfig()
	m := NewAuthMiddleware(cfg)

	rec, reached, err := runMiddleware(t, "Basic dXNlcjpwYXNz", m.Authenticate)

	require.NoError(t, err)
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_MALFORMED")
}

func TestAuthMiddleware_Authenticate_WrongKey(t *testing.T) {
	cfg := newAuthTestConfig()

	otherCfg := newAuthTestConfig()
	otherCfg.JWT.Secret = "a-completely-different-key"
	token := issueTestToken(t, otherCfg, uuid.New(), entity.RoleUser)

	m := NewAuthMiddleware(cfg)
	rec, reached, err := runMiddleware(t, "Bearer "+token, m.Authenticate)

	require.NoError(t, err)
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_INVALID")
}

func TestAuthMiddleware_RequireRole_Allowed(t *testing.T) {
	cfg := newAuthTestConfig()
	m := NewAuthMiddleware(cfg)
	token := issueTestToken(t, cfg, uuid.New(), entity.RoleAdmin)

	rec, reached, err := runMiddleware(t, "Bearer "+token,
		m.Authenticate, m.RequireRole(entity.RoleAdmin))

	require.NoError(t, err)
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RequireRole_Forbidden(t *testing.T) {
	cfg := newAuthTestConfig()
	m := NewAuthMiddleware(cfg)
	token := issueTestToken(t, cfg, uuid.New(), entity.RoleUser)

	_, reached, err := runMiddleware(t, "Bearer "+token,
		m.Authenticate, m.RequireRole(entity.RoleAdmin))

	assert.False(t, reached)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
	assert.Contains(t, appErr.Details(), entity.RoleAdmin)
}

func TestAuthMiddleware_RequireRole_NoRoleOnContext(t *testing.T) {
	cfg := newAuthTestConfig()
	m := NewAuthMiddleware(cfg)

	// RequireRole without Authenticate in front: no role claim was set.
	_, reached, err := runMiddleware(t, "", m.RequireRole(entity.RoleAdmin))

	assert.False(t, reached)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
}

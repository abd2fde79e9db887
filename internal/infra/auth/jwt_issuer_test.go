package auth

import (
	"testing"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT = config.JWTConfig{
		Secret:   "test_secret_key_very_long_for_testing",
		Issuer:   "gatekeeper-test",
		Audience: "gatekeeper-test-web",
	}

	return cfg
}

func TestJWTIssuer_AccessTokenRoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	issuer, err := NewJWTIssuer(cfg)
	require.NoError(t, err)

	accountID := uuid.New()
	token, err := issuer.IssueAccessToken(accountID, "Ada Lovelace", "ada@x.com", entity.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// A consumer holding the same key, issuer, and audience decodes the claims.
	claims, err := ParseAccessToken(token, cfg.JWT)
	require.NoError(t, err)
	assert.Equal(t, accountID.String(), claims.Subject)
	assert.Equal(t, "Ada Lovelace", claims.FullName)
	assert.Equal(t, "ada@x.com", claims.Email)
	assert.Equal(t, entity.RoleAdmin, claims.Role)

	parsedID, err := claims.AccountID()
	require.NoError(t, err)
	assert.Equal(t, accountID, parsedID)

	// Fixed 24 hour validity window.
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, 24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTIssuer_RejectsWrongKeyIssuerAudience(t *testing.T) {
	cfg := testJWTConfig()
	issuer, err := NewJWTIssuer(cfg)
	require.NoError(t, err)

	token, err := issuer.IssueAccessToken(uuid.New(), "Ada", "ada@x.com", entity.RoleUser)
	require.NoError(t, err)

	wrongKey := cfg.JWT
	wrongKey.Secret = "a_completely_different_secret"
	_, err = ParseAccessToken(token, wrongKey)
	assert.Error(t, err)

	wrongIssuer := cfg.JWT
	wrongIssuer.Issuer = "someone-else"
	_, err = ParseAccessToken(token, wrongIssuer)
	assert.Error(t, err)

	wrongAudience := cfg.JWT
	wrongAudience.Audience = "another-app"
	_, err = ParseAccessToken(token, wrongAudience)
	assert.Error(t, err)
}

func TestJWTIssuer_RejectsMalformedToken(t *testing.T) {
	cfg := testJWTConfig()

	_, err := ParseAccessToken("clearly-not-a-jwt-token", cfg.JWT)
	assert.Error(t, err)
}

func TestJWTIssuer_RefreshTokenEntropy(t *testing.T) {
	issuer, err := NewJWTIssuer(testJWTConfig())
	require.NoError(t, err)

	first, err := issuer.IssueRefreshToken()
	require.NoError(t, err)
	second, err := issuer.IssueRefreshToken()
	require.NoError(t, err)

	// 46 bytes of entropy, base64-encoded, and never repeated.
	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second)
}

func TestJWTIssuer_HashTokenIsDeterministic(t *testing.T) {
	issuer, err := NewJWTIssuer(testJWTConfig())
	require.NoError(t, err)

	token, err := issuer.IssueRefreshToken()
	require.NoError(t, err)

	assert.Equal(t, issuer.HashToken(token), issuer.HashToken(token))
	assert.NotEqual(t, issuer.HashToken(token), issuer.HashToken(token+"x"))
	assert.Len(t, issuer.HashToken(token), 64)
}

func TestJWTIssuer_EmptySecret(t *testing.T) {
	cfg := &config.Config{}

	issuer, err := NewJWTIssuer(cfg)
	assert.Error(t, err)
	assert.Nil(t, issuer)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"gatekeeper/config"
	"gatekeeper/internal/domain/service"
)

// accessTokenTTL is the fixed validity window of an access token.
const accessTokenTTL = 24 * time.Hour

// refreshTokenBytes is the entropy of a refresh token before base64 encoding.
// 46 random bytes make brute-force guessing infeasible.
const refreshTokenBytes = 46

// jwtIssuer is a concrete implementation of the TokenIssuer interface using the
// JWT standard with a symmetric HS256 key.
type jwtIssuer struct {
	secret   []byte
	issuer   string
	audience string
}

// NewJWTIssuer is the constructor for jwtIssuer.
// It takes configuration values to create a new token issuer instance.
func NewJWTIssuer(cfg *config.Config) (service.TokenIssuer, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtIssuer{
		secret:   []byte(cfg.JWT.Secret),
		issuer:   cfg.JWT.Issuer,
		audience: cfg.JWT.Audience,
	}, nil
}

// IssueAccessToken creates a signed assertion of the account's identity and
// role, valid for 24 hours from issuance.
func (s *jwtIssuer) IssueAccessToken(accountID uuid.UUID, fullName, email, role string) (string, error) {
	now := time.Now()
	claims := &service.AccessClaims{
		FullName: fullName,
		Email:    email,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// IssueRefreshToken generates an opaque refresh handle from crypto/rand.
func (s *jwtIssuer) IssueRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes for refresh token")
	}

	return base64.StdEncoding.EncodeToString(buf), nil
}

// HashToken returns the hex-encoded SHA-256 fingerprint of a token value.
func (s *jwtIssuer) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// ParseAccessToken verifies a token's signature, issuer, audience, and expiry,
// and decodes it into typed claims. It is a pure transform: any consumer
// holding the same key and identifiers can validate tokens independently.
func ParseAccessToken(tokenString string, cfg config.JWTConfig) (*service.AccessClaims, error) {
	claims := &service.AccessClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(cfg.Secret), nil
	},
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse access token")
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return claims, nil
}

package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessClaims is the typed claim set carried by an access token: subject
// identity plus the single role asserted at issuance time.
type AccessClaims struct {
	FullName string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AccountID parses the subject claim back into the account's UUID.
func (c *AccessClaims) AccountID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenIssuer defines the interface for minting bearer credentials.
// This abstracts the details of token creation from the use cases.
type TokenIssuer interface {
	// IssueAccessToken creates a signed, self-contained assertion of identity
	// and role with the configured issuer, audience, and validity window.
	IssueAccessToken(accountID uuid.UUID, fullName, email, role string) (string, error)

	// IssueRefreshToken generates an opaque, unguessable refresh handle from a
	// cryptographically secure random source. It carries no claims; it is a
	// pure capability looked up in the store.
	IssueRefreshToken() (string, error)

	// HashToken produces the deterministic fingerprint under which a refresh
	// token is stored, so the raw value never touches the database.
	HashToken(token string) string
}

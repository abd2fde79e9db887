// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Account is the core entity in the system, representing a registered identity.
// It is created once at registration and, aside from the password hash, never mutated.
type Account struct {
	ID           uuid.UUID // The unique identifier for the account.
	FullName     string    // The account holder's display name.
	Email        string    // The login identifier, stored lower-cased. Unique across the system.
	PasswordHash string    // The bcrypt hash of the account's password. Never the raw password.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// NormalizeEmail canonicalizes an email address for case-insensitive matching.
// Every email passed to the store goes through this, so the unique index on the
// column enforces case-insensitive uniqueness.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

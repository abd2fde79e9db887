// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is an account's single live refresh-token record. A sign-in or a
// refresh either creates the first record for the account or overwrites the
// stored token hash in place: rotation, never accumulation.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this refresh token record.
	AccountID uuid.UUID // The account this token belongs to. One live record per account.
	TokenHash string    // SHA-256 hash of the opaque token value. The raw value is never stored.
	CreatedAt time.Time // Timestamp of when the record was first created.
	UpdatedAt time.Time // Timestamp of the last rotation.
}

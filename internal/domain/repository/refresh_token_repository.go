// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRefreshTokenNotFound is returned when no refresh token record matches.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the operations for refresh-token persistence.
// Each account owns at most one live record; rotation overwrites it in place.
type RefreshTokenRepository interface {
	// Upsert stores the account's current token hash. It inserts the first
	// record for the account or overwrites the existing one; the unique index
	// on the account column guarantees a single row even under concurrent
	// sign-ins (last writer wins).
	Upsert(ctx context.Context, accountID uuid.UUID, tokenHash string) error

	// FindByHash retrieves the record whose stored hash matches.
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)
}

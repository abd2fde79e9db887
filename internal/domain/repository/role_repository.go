// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for role persistence.
var (
	// ErrRoleNotFound is returned when a role cannot be resolved by name or ID.
	ErrRoleNotFound = errors.New("role not found")
	// ErrRoleAssignmentNotFound is returned when an account has no role assignment.
	ErrRoleAssignmentNotFound = errors.New("role assignment not found")
	// ErrRoleAlreadyAssigned is returned when an insert collides with the
	// one-assignment-per-account unique index.
	ErrRoleAlreadyAssigned = errors.New("account already has a role assignment")
)

// RoleRepository defines the operations for role and role-assignment persistence.
type RoleRepository interface {
	// Ensure inserts the named role if it does not exist yet and returns it.
	// The returned flag reports whether this call actually created the row.
	// The insert is idempotent (ON CONFLICT DO NOTHING on the unique name
	// index), so concurrent callers serialize on the index: exactly one of
	// them observes created == true.
	Ensure(ctx context.Context, name string) (*entity.Role, bool, error)

	// Assign links an account to a role. The store's unique index on the
	// account column enforces at most one assignment per account.
	Assign(ctx context.Context, accountID, roleID uuid.UUID) error

	// FindNameByAccountID resolves the role name currently assigned to an
	// account. Returns ErrRoleAssignmentNotFound when the account has none.
	FindNameByAccountID(ctx context.Context, accountID uuid.UUID) (string, error)
}

// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Well-known role names. "Admin" is created exactly once, by the first successful
// registration in the system's lifetime; "User" is created lazily on the second.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// Role is a named authorization label. Roles are created lazily on first use and
// never deleted.
type Role struct {
	ID        uuid.UUID // The unique identifier for the role.
	Name      string    // The role's name, e.g. "Admin" or "User". Unique.
	CreatedAt time.Time // Timestamp of when this role was first created.
}

// RoleAssignment links an account to exactly one role. It is created at
// registration time and never mutated; the store enforces at most one
// assignment per account.
type RoleAssignment struct {
	ID        uuid.UUID // The unique identifier for this assignment record.
	AccountID uuid.UUID // The account this assignment belongs to.
	RoleID    uuid.UUID // The role granted to the account.
	CreatedAt time.Time // Timestamp of when the assignment was created.
}

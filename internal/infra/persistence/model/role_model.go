package model

import (
	"time"

	"github.com/google/uuid"
)

// RoleModel mirrors the 'system_roles' table. The unique name index doubles as
// the serialization point for the first-registration admin bootstrap.
type RoleModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(50);unique;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "system_roles"
}

// RoleAssignmentModel mirrors the 'account_roles' table. The unique index on
// the account column enforces at most one assignment per account by
// constraint, not by construction.
type RoleAssignmentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_account_roles_account_id"`
	RoleID    uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoleAssignmentModel) TableName() string {
	return "account_roles"
}

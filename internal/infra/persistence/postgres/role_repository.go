// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// roleRepository implements the domain.RoleRepository interface using GORM.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

// Ensure inserts the named role if absent and reports whether this call
// created it. ON CONFLICT DO NOTHING on the unique name index makes the insert
// idempotent; concurrent callers block on the index until the winning insert
// commits, so exactly one caller ever observes created == true for a name.
func (repo *roleRepository) Ensure(ctx context.Context, name string) (*entity.Role, bool, error) {
	roleM := &model.RoleModel{Name: name}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(roleM)
	if result.Error != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to ensure role")
	}

	created := result.RowsAffected > 0

	// On conflict the insert returns no row, so fetch the existing one.
	if !created {
		if err := repo.db.WithContext(ctx).
			Where("name = ?", name).
			First(roleM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, false, repository.ErrRoleNotFound
			}

			return nil, false, errors.Wrap(err, "failed to find role by name")
		}
	}

	return toRoleDomain(roleM), created, nil
}

// Assign links an account to a role. The unique index on the account column
// rejects a second assignment for the same account.
func (repo *roleRepository) Assign(ctx context.Context, accountID, roleID uuid.UUID) error {
	assignmentM := &model.RoleAssignmentModel{
		AccountID: accountID,
		RoleID:    roleID,
	}

	if err := repo.db.WithContext(ctx).Create(assignmentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrRoleAlreadyAssigned
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("invalid account or role reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to assign role")
	}

	return nil
}

// FindNameByAccountID resolves the role name assigned to an account with a
// single join through the assignment table.
func (repo *roleRepository) FindNameByAccountID(ctx context.Context, accountID uuid.UUID) (string, error) {
	var name string
	err := repo.db.WithContext(ctx).
		Model(&model.RoleAssignmentModel{}).
		Select("system_roles.name").
		Joins("JOIN system_roles ON system_roles.id = account_roles.role_id").
		Where("account_roles.account_id = ?", accountID).
		Take(&name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrRoleAssignmentNotFound
		}

		return "", errors.Wrap(err, "failed to find role by account id")
	}

	return name, nil
}

// --- Mapper Functions ---

// toRoleDomain converts a GORM RoleModel to a domain Role entity.
func toRoleDomain(data *model.RoleModel) *entity.Role {
	if data == nil {
		return nil
	}

	return &entity.Role{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
	}
}

package impl

import (
	"context"
	"testing"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	mockRepo "gatekeeper/internal/mocks/repository"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("S3cret!pass").Return("$2a$12$hash", nil)

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAccountRepo := mockRepo.NewMockAccountRepository(t)
		mockRoleRepo := mockRepo.NewMockRoleRepository(t)

		factory.EXPECT().AccountRepo().Return(mockAccountRepo)
		factory.EXPECT().RoleRepo().Return(mockRoleRepo)

		mockAccountRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Account")).
			Return(repository.ErrEmailTaken)
	})

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "S3cret!pass",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("S3cret!pass").Return("", errors.New("bcrypt cost out of range"))

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "S3cret!pass",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAccountService_Register_AssignFailureAbortsTransaction(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()
	adminRole := &entity.Role{ID: uuid.New(), Name: entity.RoleAdmin}

	fx.hasher.EXPECT().Hash("S3cret!pass").Return("$2a$12$hash", nil)

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAccountRepo := mockRepo.NewMockAccountRepository(t)
		mockRoleRepo := mockRepo.NewMockRoleRepository(t)

		factory.EXPECT().AccountRepo().Return(mockAccountRepo)
		factory.EXPECT().RoleRepo().Return(mockRoleRepo)

		mockAccountRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Account")).
			RunAndReturn(func(ctx context.Context, account *entity.Account) error {
				account.ID = accountID

				return nil
			})

		mockRoleRepo.EXPECT().Ensure(ctx, entity.RoleAdmin).Return(adminRole, true, nil)
		mockRoleRepo.EXPECT().
			Assign(ctx, accountID, adminRole.ID).
			Return(errors.New("connection reset"))
	})

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "S3cret!pass",
	})

	assert.Nil(t, output)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to assign admin role")
}

func TestAccountService_SignIn_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_SignIn_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "ada@example.com",
		PasswordHash: "$2a$12$hash",
	}

	fx.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(account, nil)
	fx.hasher.EXPECT().Check("wrong-password", "$2a$12$hash").Return(false)

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{
		Email:    "ada@example.com",
		Password: "wrong-password",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_SignIn_RoleLookupStoreFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{
		ID:           accountID,
		FullName:     "Ada Lovelace",
		Email:        "ada@example.com",
		PasswordHash: "$2a$12$hash",
	}

	fx.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(account, nil)
	fx.hasher.EXPECT().Check("S3cret!pass", "$2a$12$hash").Return(true)
	// A store fault is not a missing assignment: no token may be minted with a
	// guessed role claim.
	fx.roleRepo.EXPECT().
		FindNameByAccountID(ctx, accountID).
		Return("", errors.New("connection refused"))

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{
		Email:    "ada@example.com",
		Password: "S3cret!pass",
	})

	assert.Nil(t, output)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve role")
}

func TestAccountService_Refresh_RoleLookupStoreFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Email: "ada@example.com"}
	record := &entity.RefreshToken{ID: uuid.New(), AccountID: accountID, TokenHash: "old-hash"}

	fx.tokenIssuer.EXPECT().HashToken("old-refresh-token").Return("old-hash")
	fx.roleRepo.EXPECT().
		FindNameByAccountID(ctx, accountID).
		Return("", errors.New("connection refused"))

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAccountRepo := mockRepo.NewMockAccountRepository(t)
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

		factory.EXPECT().AccountRepo().Return(mockAccountRepo)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockRefreshRepo.EXPECT().FindByHash(ctx, "old-hash").Return(record, nil)
		mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
	})

	output, err := fx.service.Refresh(ctx, &usecase.RefreshInput{Token: "old-refresh-token"})

	assert.Nil(t, output)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve role")
}

func TestAccountService_Refresh_EmptyToken(t *testing.T) {
	fx := createTestAccountService(t)

	output, err := fx.service.Refresh(context.Background(), &usecase.RefreshInput{Token: ""})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenMissing)
}

func TestAccountService_Refresh_UnknownToken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.tokenIssuer.EXPECT().HashToken("stale-token").Return("stale-hash")

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAccountRepo := mockRepo.NewMockAccountRepository(t)
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

		factory.EXPECT().AccountRepo().Return(mockAccountRepo)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockRefreshRepo.EXPECT().
			FindByHash(ctx, "stale-hash").
			Return(nil, repository.ErrRefreshTokenNotFound)
	})

	output, err := fx.service.Refresh(ctx, &usecase.RefreshInput{Token: "stale-token"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenNotFound)
}

func TestAccountService_Refresh_AccountDeleted(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()
	record := &entity.RefreshToken{ID: uuid.New(), AccountID: accountID, TokenHash: "old-hash"}

	fx.tokenIssuer.EXPECT().HashToken("orphaned-token").Return("old-hash")

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAccountRepo := mockRepo.NewMockAccountRepository(t)
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

		factory.EXPECT().AccountRepo().Return(mockAccountRepo)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockRefreshRepo.EXPECT().FindByHash(ctx, "old-hash").Return(record, nil)
		mockAccountRepo.EXPECT().
			FindByID(ctx, accountID).
			Return(nil, repository.ErrAccountNotFound)
	})

	output, err := fx.service.Refresh(ctx, &usecase.RefreshInput{Token: "orphaned-token"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenAccountGone)
}

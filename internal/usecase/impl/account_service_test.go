package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/repository"
	mockRepo "gatekeeper/internal/mocks/repository"
	mockService "gatekeeper/internal/mocks/service"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service          usecase.AccountUsecase
	txManager        *mockRepo.MockTransactionManager
	accountRepo      *mockRepo.MockAccountRepository
	roleRepo         *mockRepo.MockRoleRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockService.MockPasswordHasher
	tokenIssuer      *mockService.MockTokenIssuer
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	roleRepo := mockRepo.NewMockRoleRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenIssuer := mockService.NewMockTokenIssuer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		TxManager:        txManager,
		AccountRepo:      accountRepo,
		RoleRepo:         roleRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenIssuer:      tokenIssuer,
		Logger:           logger,
	})

	return accountServiceFixtures{
		service:          service,
		txManager:        txManager,
		accountRepo:      accountRepo,
		roleRepo:         roleRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenIssuer:      tokenIssuer,
	}
}

// onExecute stubs the transaction manager so the transactional closure runs
// against a factory whose repositories are configured by setup. The closure's
// error is propagated as the transaction result, matching commit/rollback
// semantics.
func (fx accountServiceFixtures) onExecute(t *testing.T, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}

func TestAccountService_Register_FirstAccountBecomesAdmin(t *testing.T) {
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
				assert.Equal(t, "ada@example.com", account.Email)
				assert.Equal(t, "Ada Lovelace", account.FullName)
				assert.Equal(t, "$2a$12$hash", account.PasswordHash)
				account.ID = accountID

				return nil
			})

		mockRoleRepo.EXPECT().Ensure(ctx, entity.RoleAdmin).Return(adminRole, true, nil)
		mockRoleRepo.EXPECT().Assign(ctx, accountID, adminRole.ID).Return(nil)
	})

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		FullName: "Ada Lovelace",
		Email:    "Ada@Example.com",
		Password: "S3cret!pass",
	})

	require.NoError(t, err)
	assert.Equal(t, "User created successfully", output.Message)
}

func TestAccountService_Register_LaterAccountsGetUserRole(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()
	adminRole := &entity.Role{ID: uuid.New(), Name: entity.RoleAdmin}
	userRole := &entity.Role{ID: uuid.New(), Name: entity.RoleUser}

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

		// Admin role already exists, so this registration is not the first.
		mockRoleRepo.EXPECT().Ensure(ctx, entity.RoleAdmin).Return(adminRole, false, nil)
		mockRoleRepo.EXPECT().Ensure(ctx, entity.RoleUser).Return(userRole, false, nil)
		mockRoleRepo.EXPECT().Assign(ctx, accountID, userRole.ID).Return(nil)
	})

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		FullName: "Grace Hopper",
		Email:    "grace@example.com",
		Password: "S3cret!pass",
	})

	require.NoError(t, err)
	assert.Equal(t, "User created successfully", output.Message)
}

func TestAccountService_SignIn_Success(t *testing.T) {
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
	fx.roleRepo.EXPECT().FindNameByAccountID(ctx, accountID).Return(entity.RoleAdmin, nil)
	fx.tokenIssuer.EXPECT().
		IssueAccessToken(accountID, "Ada Lovelace", "ada@example.com", entity.RoleAdmin).
		Return("signed-access-token", nil)
	fx.tokenIssuer.EXPECT().IssueRefreshToken().Return("opaque-refresh-token", nil)
	fx.tokenIssuer.EXPECT().HashToken("opaque-refresh-token").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().Upsert(ctx, accountID, "refresh-hash").Return(nil)

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{
		Email:    " Ada@Example.com ",
		Password: "S3cret!pass",
	})

	require.NoError(t, err)
	assert.Equal(t, "Login successfully", output.Message)
	assert.Equal(t, "signed-access-token", output.AccessToken)
	assert.Equal(t, "opaque-refresh-token", output.RefreshToken)
}

func TestAccountService_SignIn_MissingRoleFallsBackToUser(t *testing.T) {
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
	fx.roleRepo.EXPECT().
		FindNameByAccountID(ctx, accountID).
		Return("", repository.ErrRoleAssignmentNotFound)
	fx.tokenIssuer.EXPECT().
		IssueAccessToken(accountID, "Ada Lovelace", "ada@example.com", entity.RoleUser).
		Return("signed-access-token", nil)
	fx.tokenIssuer.EXPECT().IssueRefreshToken().Return("opaque-refresh-token", nil)
	fx.tokenIssuer.EXPECT().HashToken("opaque-refresh-token").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().Upsert(ctx, accountID, "refresh-hash").Return(nil)

	_, err := fx.service.SignIn(ctx, &usecase.SignInInput{
		Email:    "ada@example.com",
		Password: "S3cret!pass",
	})

	require.NoError(t, err)
}

func TestAccountService_Refresh_RotatesToken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{
		ID:           accountID,
		FullName:     "Ada Lovelace",
		Email:        "ada@example.com",
		PasswordHash: "$2a$12$hash",
	}
	record := &entity.RefreshToken{ID: uuid.New(), AccountID: accountID, TokenHash: "old-hash"}

	fx.tokenIssuer.EXPECT().HashToken("old-refresh-token").Return("old-hash")

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAccountRepo := mockRepo.NewMockAccountRepository(t)
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

		factory.EXPECT().AccountRepo().Return(mockAccountRepo)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockRefreshRepo.EXPECT().FindByHash(ctx, "old-hash").Return(record, nil)
		mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
		// The new hash overwrites the old record, invalidating the presented token.
		mockRefreshRepo.EXPECT().Upsert(ctx, accountID, "new-hash").Return(nil)
	})

	fx.roleRepo.EXPECT().FindNameByAccountID(ctx, accountID).Return(entity.RoleUser, nil)
	fx.tokenIssuer.EXPECT().
		IssueAccessToken(accountID, "Ada Lovelace", "ada@example.com", entity.RoleUser).
		Return("new-access-token", nil)
	fx.tokenIssuer.EXPECT().IssueRefreshToken().Return("new-refresh-token", nil)
	fx.tokenIssuer.EXPECT().HashToken("new-refresh-token").Return("new-hash")

	output, err := fx.service.Refresh(ctx, &usecase.RefreshInput{Token: "old-refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, "Token refreshed successfully", output.Message)
	assert.Equal(t, "new-access-token", output.AccessToken)
	assert.Equal(t, "new-refresh-token", output.RefreshToken)
}

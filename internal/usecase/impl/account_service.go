// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Result messages returned to the boundary layer.
const (
	msgRegistered = "User created successfully"
	msgSignedIn   = "Login successfully"
	msgRefreshed  = "Token refreshed successfully"
)

// accountService implements the AccountUsecase interface. It owns the entire
// write path for accounts, roles, role assignments, and refresh tokens; it is
// stateless aside from its injected dependencies.
type accountService struct {
	txManager        repository.TransactionManager
	accountRepo      repository.AccountRepository
	roleRepo         repository.RoleRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenIssuer      service.TokenIssuer
	logger           *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	AccountRepo      repository.AccountRepository
	RoleRepo         repository.RoleRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenIssuer      service.TokenIssuer
	Logger           *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:        params.TxManager,
		accountRepo:      params.AccountRepo,
		roleRepo:         params.RoleRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenIssuer:      params.TokenIssuer,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration process: account creation and
// role bootstrap in one transaction. The very first successful registration in
// the system's lifetime becomes the administrator.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	// Hash outside the transaction (bcrypt is CPU-bound).
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	account := &entity.Account{
		FullName:     input.FullName,
		Email:        email,
		PasswordHash: passwordHash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		roleRepo := repoFactory.RoleRepo()

		if err := accountRepo.Create(ctx, account); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return domainerrors.ErrAccountAlreadyExists.WrapMessage("email already registered")
			}

			return errors.Wrap(err, "failed to create account during registration")
		}

		return srv.bootstrapRole(ctx, roleRepo, account.ID)
	})

	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", account.ID))

	return &usecase.RegisterOutput{Message: msgRegistered}, nil
}

// bootstrapRole assigns the new account its role. The transaction that actually
// inserts the "Admin" role row is, by construction, the first registration:
// concurrent registrations serialize on the role name's unique index, so
// exactly one of them observes created == true.
func (srv *accountService) bootstrapRole(ctx context.Context, roleRepo repository.RoleRepository, accountID uuid.UUID) error {
	adminRole, created, err := roleRepo.Ensure(ctx, entity.RoleAdmin)
	if err != nil {
		return errors.Wrap(err, "failed to ensure admin role")
	}

	if created {
		srv.log(ctx).Info("First registration, bootstrapping administrator", slog.Any("accountID", accountID))

		if err := roleRepo.Assign(ctx, accountID, adminRole.ID); err != nil {
			return errors.Wrap(err, "failed to assign admin role")
		}

		return nil
	}

	userRole, _, err := roleRepo.Ensure(ctx, entity.RoleUser)
	if err != nil {
		return errors.Wrap(err, "failed to ensure user role")
	}

	if err := roleRepo.Assign(ctx, accountID, userRole.ID); err != nil {
		return errors.Wrap(err, "failed to assign user role")
	}

	return nil
}

// SignIn verifies the presented credentials and, when they hold, issues a fresh
// access token and rotates the account's refresh token record.
func (srv *accountService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.CredentialOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting sign-in", slog.String("email", email))

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Sign-in failed, unknown email", slog.String("email", email))

			return nil, domainerrors.ErrAccountNotFound.WrapMessage("sign-in failed")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Sign-in failed, password mismatch", slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("sign-in failed")
	}

	output, err := srv.issueCredentials(ctx, account, msgSignedIn)
	if err != nil {
		srv.log(ctx).Error("Sign-in failed", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Signed in successfully", slog.Any("accountID", account.ID))

	return output, nil
}

// Refresh rotates a refresh token: the presented value is looked up, a brand
// new access token and refresh token are issued, and the stored record is
// overwritten so the old value is immediately invalidated.
func (srv *accountService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.CredentialOutput, error) {
	if input.Token == "" {
		return nil, domainerrors.ErrRefreshTokenMissing.WrapMessage("refresh called without a token")
	}

	srv.log(ctx).Debug("Attempting to rotate refresh token")

	var output *usecase.CredentialOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		refreshRepo := repoFactory.RefreshTokenRepo()

		record, err := refreshRepo.FindByHash(ctx, srv.tokenIssuer.HashToken(input.Token))
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return domainerrors.ErrRefreshTokenNotFound.WrapMessage("presented token is not the current one")
			}

			return errors.Wrap(err, "failed to find refresh token")
		}

		account, err := accountRepo.FindByID(ctx, record.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrRefreshTokenAccountGone.WrapMessage("account behind this token no longer exists")
			}

			return errors.Wrap(err, "failed to find account for refresh token")
		}

		output, err = srv.issueCredentialsTx(ctx, refreshRepo, account, msgRefreshed)

		return err
	})

	if err != nil {
		srv.log(ctx).Warn("Refresh failed", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Refresh token rotated")

	return output, nil
}

// issueCredentials mints the token pair and persists the rotated refresh record
// through the service's direct repository. The upsert is a single statement, so
// no surrounding transaction is needed.
func (srv *accountService) issueCredentials(ctx context.Context, account *entity.Account, message string) (*usecase.CredentialOutput, error) {
	return srv.issueCredentialsTx(ctx, srv.refreshTokenRepo, account, message)
}

// issueCredentialsTx is the shared issuance path for sign-in and refresh. The
// caller chooses which refresh-token repository binding performs the rotation.
func (srv *accountService) issueCredentialsTx(ctx context.Context, refreshRepo repository.RefreshTokenRepository, account *entity.Account, message string) (*usecase.CredentialOutput, error) {
	role, err := srv.resolveRole(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	accessToken, err := srv.tokenIssuer.IssueAccessToken(account.ID, account.FullName, account.Email, role)
	if err != nil {
		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage("failed to sign access token")
	}

	refreshToken, err := srv.tokenIssuer.IssueRefreshToken()
	if err != nil {
		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage("failed to generate refresh token")
	}

	if err := refreshRepo.Upsert(ctx, account.ID, srv.tokenIssuer.HashToken(refreshToken)); err != nil {
		return nil, errors.Wrap(err, "failed to rotate refresh token record")
	}

	return &usecase.CredentialOutput{
		Message:      message,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// resolveRole looks up the account's assigned role. A missing assignment is
// degraded but non-fatal: the account is treated as a plain user. Any other
// store failure is fatal; issuing a token with a guessed role claim is worse
// than failing the request.
func (srv *accountService) resolveRole(ctx context.Context, accountID uuid.UUID) (string, error) {
	role, err := srv.roleRepo.FindNameByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrRoleAssignmentNotFound) {
			srv.log(ctx).Warn("Account has no role assignment, falling back to user role", slog.Any("accountID", accountID))

			return entity.RoleUser, nil
		}

		return "", errors.Wrap(err, "failed to resolve role")
	}

	return role, nil
}

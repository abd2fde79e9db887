// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
}

// SignInInput defines the data required to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// RefreshInput carries the opaque refresh token presented for rotation.
type RefreshInput struct {
	Token string
}

// --- Output DTOs ---

// RegisterOutput confirms a successful registration. Registration does not log
// the account in, so no credentials are returned.
type RegisterOutput struct {
	Message string
}

// CredentialOutput returns the issued credentials after a successful sign-in or refresh.
type CredentialOutput struct {
	Message      string
	AccessToken  string
	RefreshToken string
}

// AccountUsecase defines the interface for account and credential operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	SignIn(ctx context.Context, input *SignInInput) (*CredentialOutput, error)
	Refresh(ctx context.Context, input *RefreshInput) (*CredentialOutput, error)
}

// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"gatekeeper/internal/delivery/http/middleware"
	"gatekeeper/internal/delivery/http/response"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// --- Request DTOs ---
// Validation tags express the boundary's null/shape rules; anything deeper is
// the account service's business.

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	FullName        string `json:"fullName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// SignInRequest is the sign-in payload.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries the refresh token being rotated.
type RefreshRequest struct {
	Token string `json:"token" validate:"required"`
}

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// Registration does not sign the account in; no credentials are returned.
	return response.Success(c, http.StatusCreated, output.Message, nil)
}

// SignIn handles the credential verification request.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.SignIn(c.Request().Context(), &usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Credentials(c, output.Message, output.AccessToken, output.RefreshToken)
}

// Refresh handles the refresh-token rotation request.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Refresh(c.Request().Context(), &usecase.RefreshInput{
		Token: req.Token,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Credentials(c, output.Message, output.AccessToken, output.RefreshToken)
}

// Me returns the identity asserted by the presented access token. It exists to
// exercise the stateless verification path: no store lookup happens here.
func (h *AuthHandler) Me(c echo.Context) error {
	claims, ok := c.Get(middleware.ContextKeyClaims).(*service.AccessClaims)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid claims in token")
	}

	return response.Success(c, http.StatusOK, "Profile retrieved successfully", map[string]string{
		"id":       claims.Subject,
		"fullName": claims.FullName,
		"email":    claims.Email,
		"role":     claims.Role,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, "Service is healthy", map[string]string{"status": "ok"})
}

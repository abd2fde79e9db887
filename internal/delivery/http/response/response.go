package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the unified API envelope. Every operation reports a success flag
// and a human-readable message; credential-issuing operations add the token pair.
type Response struct {
	Success      bool       `json:"success"`
	Message      string     `json:"message"` // User-friendly message
	Token        string     `json:"token,omitempty"`
	RefreshToken string     `json:"refreshToken,omitempty"`
	Data         any        `json:"data,omitempty"`
	Error        *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "ACCOUNT_NOT_FOUND"
	Details string `json:"details"` // Detailed error description
}

// Success successful response
func Success(c echo.Context, statusCode int, message string, data any) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Credentials successful response carrying an issued token pair
func Credentials(c echo.Context, message, token, refreshToken string) error {
	return c.JSON(http.StatusOK, Response{
		Success:      true,
		Message:      message,
		Token:        token,
		RefreshToken: refreshToken,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

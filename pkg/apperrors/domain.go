package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and friends)
// into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrInvalidOperation is the generic 400 for business-rule violations.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// Predeclared auth-domain errors. Domain-rule failures surface as 400 so the
// frontend can show the message verbatim; only a missing/invalid bearer token
// yields 401.

// ErrEmailAlreadyExists is returned on registration with an email that is already taken.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already registered",
	http.StatusBadRequest,
)

// ErrInvalidCredentials covers both a wrong password and an unknown email,
// with one message for both so accounts cannot be enumerated.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusBadRequest,
)

// ErrInvalidRefreshToken covers an unknown, revoked or expired refresh token.
var ErrInvalidRefreshToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid refresh token",
	http.StatusBadRequest,
)

// ErrInvalidVerificationToken means no user matches the verification token.
var ErrInvalidVerificationToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid verification token",
	http.StatusBadRequest,
)

// ErrVerificationTokenExpired means the verification token is past its expiry.
var ErrVerificationTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Verification token has expired",
	http.StatusBadRequest,
)

// ErrInvalidResetToken means no user matches the reset token.
var ErrInvalidResetToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid reset token",
	http.StatusBadRequest,
)

// ErrResetTokenExpired means the reset token is past its expiry.
var ErrResetTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Reset token has expired",
	http.StatusBadRequest,
)

// ErrUserNotFound is returned when a password reset names an unknown email.
var ErrUserNotFound = New(
	CodeNotFound,
	"auth",
	"User not found",
	http.StatusBadRequest,
)

// ErrCurrentPasswordIncorrect is returned on a password change with a wrong current password.
var ErrCurrentPasswordIncorrect = New(
	CodeInvalidCredentials,
	"user",
	"Current password is incorrect",
	http.StatusBadRequest,
)

package apperrors

import (
	"fmt"
	"net/http"
	"strings"
)

// Предопределенные ошибки домена аккаунтов и проектов.

// ErrInvalidCredentials - неверный email или пароль.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

// ErrUserPending - аккаунт еще не одобрен администратором.
var ErrUserPending = New(
	CodeUnauthorized,
	"auth",
	"Your account is awaiting approval from the Vraee admin team.",
	http.StatusUnauthorized,
)

// ErrUserBlocked - аккаунт заблокирован.
var ErrUserBlocked = New(
	CodeUnauthorized,
	"auth",
	"Your account has been blocked. Please contact support.",
	http.StatusUnauthorized,
)

// ErrEmailRequired - не передан email при регистрации.
var ErrEmailRequired = New(
	CodeConflict,
	"auth",
	"Email is required",
	http.StatusConflict,
)

// ErrWeakPassword - пароль короче шести символов.
var ErrWeakPassword = New(
	CodeConflict,
	"validation",
	"Password must be at least 6 characters long",
	http.StatusConflict,
)

// ErrEmailAlreadyExists - email уже зарегистрирован.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"User with this email already exists",
	http.StatusConflict,
)

// ErrInvalidToken - неверный или просроченный JWT.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrInsufficientPermissions - роль не входит в разрешенный набор.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrInvalidEnumValue - фабрика для неверного значения перечисления.
// Сообщение называет поле и переданные значения, как того требует
// фронтенд формы регистрации.
func ErrInvalidEnumValue(field string, values ...string) *AppError {
	return New(
		CodeConflict,
		"validation",
		fmt.Sprintf("Invalid %s: %s", field, strings.Join(values, ", ")),
		http.StatusConflict,
	)
}

// ErrUserNotFound - пользователь не найден.
var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

// ErrProjectNotFound - проект не найден.
var ErrProjectNotFound = New(
	CodeNotFound,
	"project",
	"Project not found",
	http.StatusNotFound,
)

// ErrInvalidStatusValue - фабрика для неверного статуса (400)
func ErrInvalidStatusValue(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

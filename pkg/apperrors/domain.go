package apperrors

import (
	"fmt"
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для общих ошибок бизнес-логики и домена.
*/

// =========================================================================
// Фабричные ФУНКЦИИ (Используются для оборачивания ошибок, напр. из репозитория)
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Фабрики доменных ошибок
// =========================================================================

// ErrInsufficientCredits - у пользователя недостаточно кредитов для публикации.
// В сообщении ОБЯЗАТЕЛЬНО указываем сколько нужно и сколько есть.
func ErrInsufficientCredits(required, available int) *AppError {
	return New(
		CodeInsufficientCredits,
		"credits",
		fmt.Sprintf("Insufficient credits: required %d, available %d", required, available),
		http.StatusPaymentRequired, // 402
	).WithDetails(map[string]int{
		"required":  required,
		"available": available,
	})
}

// ErrPostNotFound - объявление не найдено.
func ErrPostNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "post", "Post not found", http.StatusNotFound)
}

// ErrUserNotFound - пользователь не найден.
func ErrUserNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "user", "User not found", http.StatusNotFound)
}

// ErrMissingPaymentDetail - фабрика для отсутствующего реквизита платежа.
// Поле в сообщении называем явно, чтобы клиент знал, что дослать.
func ErrMissingPaymentDetail(field string) *AppError {
	return New(
		CodeValidationFailed,
		"payment",
		fmt.Sprintf("Missing required payment detail: %s", field),
		http.StatusBadRequest,
	).WithDetails(map[string]string{"missing_field": field})
}

// =========================================================================
// Предопределенные ПЕРЕМЕННЫЕ (Для частых, статичных ошибок)
// =========================================================================

// --- Auth & User ---

// ErrWeakPassword - пароль слишком слабый.
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 6 characters required.",
	http.StatusBadRequest, // 400
)

// ErrEmailAlreadyExists - email уже используется.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict, // 409
)

// ErrInvalidCredentials - неверный email или пароль.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized, // 401
)

// ErrInvalidToken - неверный или просроченный токен (access, refresh).
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized, // 401
)

// --- Posts ---

// ErrNotPostOwner - операция разрешена только владельцу объявления.
var ErrNotPostOwner = New(
	CodeForbidden,
	"post",
	"Only the post owner can perform this operation",
	http.StatusForbidden, // 403
)

// --- Payments ---

// ErrInvalidPaymentMethod - способ оплаты не входит в список поддерживаемых.
var ErrInvalidPaymentMethod = New(
	CodeValidationFailed,
	"payment",
	"Unsupported payment method",
	http.StatusBadRequest, // 400
)

// ErrDuplicateTransaction - такой transaction_id уже зарегистрирован.
var ErrDuplicateTransaction = New(
	CodeConflict,
	"payment",
	"Duplicate transaction id",
	http.StatusConflict, // 409
)

// ErrPaymentGatewayError - общая ошибка платежного шлюза.
var ErrPaymentGatewayError = New(
	CodeExternalServiceError,
	"payment",
	"Payment provider error",
	http.StatusServiceUnavailable, // 503
)

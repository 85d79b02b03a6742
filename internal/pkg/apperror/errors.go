package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrCodeUnauthorized  ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden     ErrorCode = "FORBIDDEN"
	ErrCodeBadRequest    ErrorCode = "BAD_REQUEST"
	ErrCodeConflict      ErrorCode = "CONFLICT"
	ErrCodeNotAllowed    ErrorCode = "ACTION_NOT_ALLOWED"
	ErrCodeInternal      ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeDatabaseError ErrorCode = "DATABASE_ERROR"
)

type AppError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Cause:      err,
	}
}

func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeBadRequest, ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeConflict, ErrCodeNotAllowed:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeNotFound
}

// IsConflict выделяет конфликт устаревшего состояния: авторитетный статус на
// сервере уже сдвинулся, клиенту нужно перечитать документ перед повтором.
func IsConflict(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeConflict
}

func IsNotAllowed(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeNotAllowed
}

func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeValidation
}

var (
	ErrDocumentNotFound   = New(ErrCodeNotFound, "документ не найден")
	ErrContractNotFound   = New(ErrCodeNotFound, "договор не найден")
	ErrTemplateNotFound   = New(ErrCodeNotFound, "шаблон пункта не найден")
	ErrUserNotFound       = New(ErrCodeNotFound, "пользователь не найден")
	ErrUnauthorized       = New(ErrCodeUnauthorized, "требуется авторизация")
	ErrForbidden          = New(ErrCodeForbidden, "недостаточно прав")
	ErrInvalidCredentials = New(ErrCodeUnauthorized, "неверные учетные данные")

	// Действие не входит в допустимый набор для текущего статуса.
	ErrActionNotAllowed = New(ErrCodeNotAllowed, "действие недоступно в текущем статусе документа")

	// Состояние документа на сервере уже изменилось другим оператором.
	ErrStaleDocument = New(ErrCodeConflict, "документ был изменён, обновите его и повторите действие")
)

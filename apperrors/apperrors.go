package apperrors

import (
	"errors"
	"net/http"
)

// AppError is the error shape the core operations return. Handlers map
// it onto the HTTP response; nothing below the handler layer touches
// status codes directly.
type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeConflict     = "DUPLICATE_ENTRY"
	CodeInternal     = "INTERNAL_ERROR"
)

func ValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message, StatusCode: http.StatusBadRequest}
}

func NotFoundError(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message, StatusCode: http.StatusNotFound}
}

func UnauthorizedError(message string) *AppError {
	return &AppError{Code: CodeUnauthorized, Message: message, StatusCode: http.StatusUnauthorized}
}

func ConflictError(message string) *AppError {
	return &AppError{Code: CodeConflict, Message: message, StatusCode: http.StatusConflict}
}

func InternalError(message string, err error) *AppError {
	return &AppError{Code: CodeInternal, Message: message, StatusCode: http.StatusInternalServerError, Err: err}
}

func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

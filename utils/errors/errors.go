// Package errors provides structured application errors carrying a code, a
// message, an optional cause and logging context.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

type ErrorCode string

const (
	ErrCodeDatabase     ErrorCode = "DATABASE_ERROR"
	ErrCodeValidation   ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND_ERROR"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN_ERROR"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED_ERROR"
	ErrCodeRateLimit    ErrorCode = "RATE_LIMIT_ERROR"
	ErrCodeExternalAPI  ErrorCode = "EXTERNAL_API_ERROR"
	ErrCodeRender       ErrorCode = "RENDER_ERROR"
	ErrCodeUnknown      ErrorCode = "UNKNOWN_ERROR"
)

type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
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

// HTTPStatusCode maps the error code onto the response status.
func (e *AppError) HTTPStatusCode() int {
	switch e.Code {
	case ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeRateLimit:
		return http.StatusTooManyRequests
	case ErrCodeExternalAPI:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func newAppError(code ErrorCode, message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause, Context: context}
}

func DatabaseError(message string, cause error, context map[string]interface{}) *AppError {
	return newAppError(ErrCodeDatabase, message, cause, context)
}

func ValidationError(message string, context map[string]interface{}) *AppError {
	return newAppError(ErrCodeValidation, message, nil, context)
}

func NotFoundError(message string, cause error, context map[string]interface{}) *AppError {
	return newAppError(ErrCodeNotFound, message, cause, context)
}

func ForbiddenError(message string, cause error, context map[string]interface{}) *AppError {
	return newAppError(ErrCodeForbidden, message, cause, context)
}

func UnauthorizedError(message string, cause error, context map[string]interface{}) *AppError {
	return newAppError(ErrCodeUnauthorized, message, cause, context)
}

func RateLimitError(message string, cause error, context map[string]interface{}) *AppError {
	return newAppError(ErrCodeRateLimit, message, cause, context)
}

func ExternalAPIError(message string, cause error, context map[string]interface{}) *AppError {
	return newAppError(ErrCodeExternalAPI, message, cause, context)
}

func RenderError(message string, cause error, context map[string]interface{}) *AppError {
	return newAppError(ErrCodeRender, message, cause, context)
}

func UnknownError(message string, cause error, context map[string]interface{}) *AppError {
	return newAppError(ErrCodeUnknown, message, cause, context)
}

// AsAppError unwraps err to the first AppError in its chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// LogError logs err with its code and context fields when it is an AppError.
func LogError(logger *slog.Logger, err error, operation string) {
	if logger == nil || err == nil {
		return
	}

	appErr, ok := AsAppError(err)
	if !ok {
		logger.Error("unknown error occurred",
			"operation", operation,
			"error", err.Error(),
		)
		return
	}

	args := []interface{}{
		"operation", operation,
		"error_code", string(appErr.Code),
		"error_message", appErr.Message,
	}
	for key, value := range appErr.Context {
		args = append(args, key, value)
	}
	if appErr.Cause != nil {
		args = append(args, "cause", appErr.Cause.Error())
	}
	logger.Error("application error occurred", args...)
}

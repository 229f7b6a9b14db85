// Package errors provides application-level error types and utilities.
// It defines the triage error taxonomy: validation, auth, not found,
// classification, transient, and configuration errors.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation     ErrorType = "validation_error"
	ErrorTypeNotFound       ErrorType = "not_found"
	ErrorTypeConflict       ErrorType = "conflict"
	ErrorTypeUnauthorized   ErrorType = "unauthorized"
	ErrorTypeForbidden      ErrorType = "forbidden"
	ErrorTypeInternal       ErrorType = "internal_error"
	ErrorTypeBadRequest     ErrorType = "bad_request"
	ErrorTypeClassification ErrorType = "classification_error"
	ErrorTypeTransient      ErrorType = "transient_error"
	ErrorTypeConfiguration  ErrorType = "configuration_error"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(errType ErrorType, code int, message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    errType,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details...)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details...)
}

// NewConflictError creates a new conflict error
func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details...)
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details...)
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, message, details...)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details...)
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeBadRequest, http.StatusBadRequest, message, details...)
}

// NewClassificationError reports an unusable or malformed reply from the
// classifier. Not retried automatically.
func NewClassificationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeClassification, http.StatusBadGateway, message, details...)
}

// NewTransientError reports an upstream rate limit or timeout. Callers may
// retry.
func NewTransientError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeTransient, http.StatusServiceUnavailable, message, details...)
}

// NewConfigurationError reports missing or rejected service credentials.
// Fatal to the request; should alert operators.
func NewConfigurationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConfiguration, http.StatusInternalServerError, message, details...)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func isErrorOfType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return isErrorOfType(err, ErrorTypeNotFound)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return isErrorOfType(err, ErrorTypeValidation)
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	return isErrorOfType(err, ErrorTypeConflict)
}

// IsClassificationError checks if the error is a classification error
func IsClassificationError(err error) bool {
	return isErrorOfType(err, ErrorTypeClassification)
}

// IsTransientError checks if the error is retryable
func IsTransientError(err error) bool {
	return isErrorOfType(err, ErrorTypeTransient)
}

// IsConfigurationError checks if the error is a configuration error
func IsConfigurationError(err error) bool {
	return isErrorOfType(err, ErrorTypeConfiguration)
}

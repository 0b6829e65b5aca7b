package errors

import (
	"errors"
	"fmt"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewStoreUnavailableError creates an error for a backing file that cannot be opened
func NewStoreUnavailableError(path string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStoreUnavailable,
		Message: fmt.Sprintf("task store unavailable: %s", path),
		Code:    "STORE_UNAVAILABLE",
		Cause:   cause,
		Context: map[string]interface{}{
			"path": path,
		},
	}
}

// NewSchemaError creates an error for a failed table creation or migration
func NewSchemaError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeSchema,
		Message: fmt.Sprintf("schema operation failed: %s", operation),
		Code:    "SCHEMA_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewQueryError creates an error for a failed select
func NewQueryError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeQuery,
		Message: fmt.Sprintf("query failed: %s", operation),
		Code:    "QUERY_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewWriteError creates an error for a failed insert, update or delete
func NewWriteError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeWrite,
		Message: fmt.Sprintf("write failed: %s", operation),
		Code:    "WRITE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation:
			return appErr.Message
		case ErrorTypeStoreUnavailable:
			return "The task database could not be opened. Changes this session will not be saved."
		case ErrorTypeSchema, ErrorTypeQuery, ErrorTypeWrite:
			return "A database error occurred. Your tasks remain available in memory."
		default:
			return "An unexpected error occurred."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation:
			return false // User input problem, not a system error
		case ErrorTypeStoreUnavailable, ErrorTypeSchema, ErrorTypeQuery, ErrorTypeWrite:
			return true
		default:
			return true
		}
	}
	return true
}

package errors

import (
	"errors"
	"fmt"
)

// NewMissingCredentialError creates an error for a required credential that
// was not configured. This is fatal at startup; no request is attempted.
func NewMissingCredentialError(envVar string) *AppError {
	return &AppError{
		Type:    ErrorTypeMissingCredential,
		Message: fmt.Sprintf("required environment variable %s is not set", envVar),
		Code:    "MISSING_CREDENTIAL",
	}
}

// NewInvalidRequestError creates an error for a request that could not be
// constructed (malformed URL, unencodable resource identifiers).
func NewInvalidRequestError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidRequest,
		Message: fmt.Sprintf("could not build request: %s", operation),
		Code:    "INVALID_REQUEST",
		Cause:   cause,
	}
}

// NewInvalidResponseError creates an error for a transport failure or a
// response that never reached HTTP semantics.
func NewInvalidResponseError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidResponse,
		Message: fmt.Sprintf("request failed: %s", operation),
		Code:    "INVALID_RESPONSE",
		Cause:   cause,
	}
}

// NewAPIError creates an error for an HTTP status outside the success range.
// The body is the raw response text, kept as a diagnostic.
func NewAPIError(statusCode int, body string) *AppError {
	return &AppError{
		Type:       ErrorTypeAPI,
		Message:    fmt.Sprintf("service rejected the request with status %d", statusCode),
		Code:       "API_ERROR",
		StatusCode: statusCode,
		Body:       body,
	}
}

// NewDecodeError creates an error for a response body that did not match the
// expected shape after a successful HTTP status. The cause is propagated
// unchanged.
func NewDecodeError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeDecode,
		Message: fmt.Sprintf("could not decode response: %s", operation),
		Code:    "DECODE_ERROR",
		Cause:   cause,
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value string, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s %q: %s", field, value, reason),
		Code:    "INVALID_INPUT",
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
		case ErrorTypeMissingCredential, ErrorTypeInvalidInput:
			return appErr.Message
		case ErrorTypeAPI:
			return fmt.Sprintf("the service rejected the request (status %d): %s", appErr.StatusCode, appErr.Body)
		case ErrorTypeInvalidResponse:
			return "could not reach the service. Check your network connection and try again."
		case ErrorTypeInvalidRequest, ErrorTypeDecode:
			return appErr.Message
		default:
			return "An unexpected error occurred. Please try again."
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

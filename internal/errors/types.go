package errors

import (
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	ErrorTypeMissingCredential ErrorType = iota
	ErrorTypeInvalidRequest
	ErrorTypeInvalidResponse
	ErrorTypeAPI
	ErrorTypeDecode
	ErrorTypeInvalidInput
)

// String returns the string representation of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeMissingCredential:
		return "missing_credential"
	case ErrorTypeInvalidRequest:
		return "invalid_request"
	case ErrorTypeInvalidResponse:
		return "invalid_response"
	case ErrorTypeAPI:
		return "api"
	case ErrorTypeDecode:
		return "decode"
	case ErrorTypeInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error

	// StatusCode and Body are populated for ErrorTypeAPI only. Body is the
	// raw response text kept as a best-effort diagnostic.
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Type == ErrorTypeAPI {
		return fmt.Sprintf("%s: status %d: %s", e.Type.String(), e.StatusCode, e.Body)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error type
func (e *AppError) Is(target error) bool {
	if appErr, ok := target.(*AppError); ok {
		return e.Type == appErr.Type && e.Code == appErr.Code
	}
	return false
}

// IsType checks if this error is of the specified type
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

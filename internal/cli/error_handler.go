package cli

import (
	"fmt"

	"clockifish/internal/errors"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for classified errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// IsAPIError checks if an error is a service rejection
func (eh *ErrorHandler) IsAPIError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeAPI)
}

// IsMissingCredential checks if an error is a startup credential failure
func (eh *ErrorHandler) IsMissingCredential(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeMissingCredential)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}

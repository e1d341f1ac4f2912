package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMissingCredentialError(t *testing.T) {
	err := NewMissingCredentialError("CLOCKIFY_API_KEY")

	assert.Equal(t, ErrorTypeMissingCredential, err.Type)
	assert.Equal(t, "MISSING_CREDENTIAL", err.Code)
	assert.Contains(t, err.Error(), "CLOCKIFY_API_KEY")
	assert.Nil(t, err.Cause)
}

func TestNewAPIError(t *testing.T) {
	err := NewAPIError(401, "Api key does not exist")

	assert.Equal(t, ErrorTypeAPI, err.Type)
	assert.Equal(t, 401, err.StatusCode)
	assert.Equal(t, "Api key does not exist", err.Body)
	assert.Contains(t, err.Error(), "status 401")
	assert.Contains(t, err.Error(), "Api key does not exist")
}

func TestNewInvalidResponseError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInvalidResponseError("get user", cause)

	assert.Equal(t, ErrorTypeInvalidResponse, err.Type)
	assert.ErrorIs(t, err, cause)
}

func TestNewDecodeError_PropagatesCause(t *testing.T) {
	cause := fmt.Errorf("unexpected EOF")
	err := NewDecodeError("get time entries", cause)

	assert.Equal(t, ErrorTypeDecode, err.Type)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestIsErrorType(t *testing.T) {
	apiErr := NewAPIError(500, "boom")
	wrapped := fmt.Errorf("fetch entries: %w", apiErr)

	assert.True(t, IsErrorType(wrapped, ErrorTypeAPI))
	assert.False(t, IsErrorType(wrapped, ErrorTypeDecode))
	assert.False(t, IsErrorType(errors.New("plain"), ErrorTypeAPI))
}

func TestAsAppError(t *testing.T) {
	apiErr := NewAPIError(403, "forbidden")
	wrapped := fmt.Errorf("stop timer: %w", apiErr)

	got, ok := AsAppError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, 403, got.StatusCode)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestGetUserMessage(t *testing.T) {
	t.Run("api error includes status and body", func(t *testing.T) {
		msg := GetUserMessage(NewAPIError(401, "Api key does not exist"))
		assert.Contains(t, msg, "401")
		assert.Contains(t, msg, "Api key does not exist")
	})

	t.Run("transport error hides internals", func(t *testing.T) {
		msg := GetUserMessage(NewInvalidResponseError("get user", errors.New("dial tcp: timeout")))
		assert.Contains(t, msg, "could not reach the service")
	})

	t.Run("plain error passes through", func(t *testing.T) {
		msg := GetUserMessage(errors.New("something else"))
		assert.Equal(t, "something else", msg)
	})
}

func TestErrorType_String(t *testing.T) {
	assert.Equal(t, "missing_credential", ErrorTypeMissingCredential.String())
	assert.Equal(t, "invalid_request", ErrorTypeInvalidRequest.String())
	assert.Equal(t, "invalid_response", ErrorTypeInvalidResponse.String())
	assert.Equal(t, "api", ErrorTypeAPI.String())
	assert.Equal(t, "decode", ErrorTypeDecode.String())
	assert.Equal(t, "unknown", ErrorType(99).String())
}

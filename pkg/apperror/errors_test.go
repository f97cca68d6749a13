package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("LED_002", "Insufficient balance", http.StatusPaymentRequired),
			expected: "[LED_002] Insufficient balance",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "Store error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] Store error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("LED_002", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestHasCode(t *testing.T) {
	wrapped := fmt.Errorf("check-in: %w", ErrAlreadyCheckedIn())

	assert.True(t, HasCode(wrapped, CodeAlreadyCheckedIn))
	assert.False(t, HasCode(wrapped, CodeCooldownActive))
	assert.False(t, HasCode(errors.New("plain"), CodeUnknown))
	assert.False(t, HasCode(nil, CodeUnknown))
}

func TestLedgerErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"UserRejected", ErrUserRejected(), CodeUserRejected, 403},
		{"ProviderUnavailable", ErrProviderUnavailable(), CodeProviderUnavailable, 503},
		{"SessionRequired", ErrSessionRequired(), CodeSessionRequired, 412},
		{"InsufficientFunds", ErrInsufficientFunds(), CodeInsufficientFunds, 402},
		{"InsufficientBalance", ErrInsufficientBalance(), CodeInsufficientBalance, 402},
		{"AlreadyCheckedIn", ErrAlreadyCheckedIn(), CodeAlreadyCheckedIn, 409},
		{"CooldownActive", ErrCooldownActive(), CodeCooldownActive, 429},
		{"AlreadyMinted", ErrAlreadyMinted(), CodeAlreadyMinted, 409},
		{"ConfirmationTimeout", ErrConfirmationTimeout("0xabc"), CodeConfirmationTimeout, 504},
		{"InvalidAmount", ErrInvalidAmount(), CodeInvalidAmount, 400},
		{"NotFound", ErrNotFound("product"), CodeNotFound, 404},
		{"NotInitialized", ErrNotInitialized(), CodeNotInitialized, 412},
		{"OperationInProgress", ErrOperationInProgress(), CodeOperationInProgress, 409},
		{"ConfigurationMissing", ErrConfigurationMissing("Campus Token"), CodeConfigurationMissing, 503},
		{"Unknown", ErrUnknown("boom"), CodeUnknown, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestConfirmationTimeout_MessageSaysMaySucceed(t *testing.T) {
	err := ErrConfirmationTimeout("0xfeed")

	assert.Contains(t, err.Message, "0xfeed")
	assert.Contains(t, err.Message, "may have succeeded")
	assert.NotContains(t, err.Message, "failed")
}

func TestErrUnknown_KeepsMessage(t *testing.T) {
	err := ErrUnknown("contract exploded")
	assert.Equal(t, "contract exploded", err.Message)
}

func TestInternalError(t *testing.T) {
	inner := fmt.Errorf("something broke")
	err := InternalError(inner)

	assert.Equal(t, CodeInternal, err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.True(t, errors.Is(err, inner))
}

func TestValidation(t *testing.T) {
	err := Validation("student name is required")
	assert.Equal(t, CodeValidation, err.Code)
	assert.Equal(t, "student name is required", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
}

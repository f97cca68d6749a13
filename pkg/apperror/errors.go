package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err is (or wraps) an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Error codes shared by both ledger backends.
const (
	CodeUserRejected         = "WAL_001"
	CodeProviderUnavailable  = "WAL_002"
	CodeSessionRequired      = "WAL_003"
	CodeInsufficientFunds    = "LED_001"
	CodeInsufficientBalance  = "LED_002"
	CodeAlreadyCheckedIn     = "LED_003"
	CodeCooldownActive       = "LED_004"
	CodeAlreadyMinted        = "LED_005"
	CodeConfirmationTimeout  = "LED_006"
	CodeInvalidAmount        = "LED_007"
	CodeNotFound             = "LED_008"
	CodeValidation           = "VAL_001"
	CodeUnknown              = "SYS_000"
	CodeInternal             = "SYS_001"
	CodeNotInitialized       = "SYS_002"
	CodeOperationInProgress  = "SYS_003"
	CodeConfigurationMissing = "CFG_001"
)

// ---- Wallet & Session (WAL) ----

func ErrUserRejected() *AppError {
	return New(CodeUserRejected, "Request was rejected in the wallet", http.StatusForbidden)
}

func ErrProviderUnavailable() *AppError {
	return New(CodeProviderUnavailable, "No wallet provider available. Please install a StarkNet wallet", http.StatusServiceUnavailable)
}

func ErrSessionRequired() *AppError {
	return New(CodeSessionRequired, "Connect a wallet before using live mode", http.StatusPreconditionFailed)
}

// ---- Ledger Business Logic (LED) ----

// ErrInsufficientFunds reports that the account cannot pay network fees.
func ErrInsufficientFunds() *AppError {
	return New(CodeInsufficientFunds, "Insufficient funds to pay the network fee", http.StatusPaymentRequired)
}

// ErrInsufficientBalance reports that the points balance is below the amount.
func ErrInsufficientBalance() *AppError {
	return New(CodeInsufficientBalance, "Insufficient balance", http.StatusPaymentRequired)
}

func ErrAlreadyCheckedIn() *AppError {
	return New(CodeAlreadyCheckedIn, "Already checked in today", http.StatusConflict)
}

func ErrCooldownActive() *AppError {
	return New(CodeCooldownActive, "Check-in cooldown is still active, try again later", http.StatusTooManyRequests)
}

func ErrAlreadyMinted() *AppError {
	return New(CodeAlreadyMinted, "Student identity has already been minted", http.StatusConflict)
}

// ErrConfirmationTimeout is returned when a submitted transaction was not
// confirmed within the polling budget. The transaction may still succeed.
func ErrConfirmationTimeout(txHash string) *AppError {
	return New(
		CodeConfirmationTimeout,
		fmt.Sprintf("Transaction %s was submitted but is not confirmed yet. It may have succeeded, check again later", txHash),
		http.StatusGatewayTimeout,
	)
}

func ErrInvalidAmount() *AppError {
	return New(CodeInvalidAmount, "Invalid amount", http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- System & Infrastructure (SYS / CFG) ----

func ErrNotInitialized() *AppError {
	return New(CodeNotInitialized, "Ledger backend is not initialized with a wallet session", http.StatusPreconditionFailed)
}

func ErrOperationInProgress() *AppError {
	return New(CodeOperationInProgress, "Another ledger operation is still in progress", http.StatusConflict)
}

func ErrConfigurationMissing(what string) *AppError {
	return New(
		CodeConfigurationMissing,
		fmt.Sprintf("%s contract address not configured. Please deploy contracts and update the configuration", what),
		http.StatusServiceUnavailable,
	)
}

// ErrUnknown carries an unclassified failure message to the caller.
func ErrUnknown(message string) *AppError {
	return New(CodeUnknown, message, http.StatusInternalServerError)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

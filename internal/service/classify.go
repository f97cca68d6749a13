package service

import (
	"errors"
	"strings"

	"campus-ledger/pkg/apperror"
)

// classifyConnectError maps a wallet connection failure to the connection
// error kinds.
func classifyConnectError(err error) *apperror.AppError {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "user rejected"):
		return apperror.ErrUserRejected()
	case strings.Contains(msg, "not installed"), strings.Contains(msg, "no wallet"):
		return apperror.ErrProviderUnavailable()
	}
	return apperror.ErrUnknown(err.Error())
}

// classifyLedgerError maps a remote submission or revert to the ledger error
// kinds. AlreadyMinted is only recognized for mints.
func classifyLedgerError(err error, mint bool) *apperror.AppError {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, "user rejected", "user abort"):
		return apperror.ErrUserRejected()
	case containsAny(msg, "insufficient funds", "insufficient max fee", "exceeds balance"):
		return apperror.ErrInsufficientFunds()
	case strings.Contains(msg, "already checked in"):
		return apperror.ErrAlreadyCheckedIn()
	case containsAny(msg, "cooldown", "too early"):
		return apperror.ErrCooldownActive()
	case mint && containsAny(msg, "already minted", "already has nft"):
		return apperror.ErrAlreadyMinted()
	}
	return apperror.ErrUnknown(err.Error())
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

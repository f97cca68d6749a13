package ports

import (
	"context"

	"campus-ledger/internal/core/domain"
)

// Call is a single contract entry-point invocation. Calldata elements are
// hex-encoded felts.
type Call struct {
	ContractAddress string
	Entrypoint      string
	Calldata        []string
}

// Account is the capability handle of a connected wallet session.
type Account interface {
	Address() string
	// Call performs a read-only view call and returns the raw result felts.
	Call(ctx context.Context, call Call) ([]string, error)
	// Invoke signs and submits the calls as one transaction and returns its hash.
	Invoke(ctx context.Context, calls ...Call) (string, error)
	// WaitForTransaction polls until the transaction settles or the wait budget
	// runs out. A revert yields ConfirmationRejected with the revert reason as
	// the error.
	WaitForTransaction(ctx context.Context, txHash string) (domain.ConfirmationState, error)
}

// Session is an authenticated remote identity. At most one is live at a time.
type Session struct {
	Address string
	Account Account
}

// WalletProvider connects to the user's signing wallet.
type WalletProvider interface {
	// Connect requests account access. With silent set it must never prompt
	// and returns (nil, nil) when no account is pre-authorized.
	Connect(ctx context.Context, silent bool) (Account, error)
	Disconnect(ctx context.Context) error
}

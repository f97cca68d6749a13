package ports

import (
	"context"

	"campus-ledger/internal/core/domain"
)

// LedgerBackend is one ledger implementation (local simulation or remote contracts).
// Read methods swallow backend failures to safe defaults; the returned error
// only reports precondition failures such as NotInitialized.
type LedgerBackend interface {
	Initialize(session *Session) error
	GetBalance(ctx context.Context, address string) (string, error)
	CheckIn(ctx context.Context) (string, error)
	Purchase(ctx context.Context, store string, amount domain.Amount) (string, error)
	Transfer(ctx context.Context, recipient string, amount domain.Amount) (string, error)
	MintIdentity(ctx context.Context, meta domain.IdentityMetadata) (*domain.MintResult, error)
	HasIdentity(ctx context.Context, address string) (bool, error)
	GetIdentityInfo(ctx context.Context, tokenID string) (*domain.IdentityMetadata, error)
}

// --- Service Ports (Business Logic) ---

// LedgerService is the uniform ledger surface used by the API and CLI.
// An empty address means the address of the initialized session.
type LedgerService interface {
	Initialize(session *Session) error
	Mode() domain.Mode
	GetBalance(ctx context.Context, address string) (string, error)
	CheckIn(ctx context.Context) (string, error)
	Purchase(ctx context.Context, amount string) (string, error)
	PurchaseProduct(ctx context.Context, productID string) (string, error)
	Transfer(ctx context.Context, recipient, amount string) (string, error)
	MintIdentity(ctx context.Context, meta domain.IdentityMetadata) (*domain.MintResult, error)
	HasIdentity(ctx context.Context, address string) (bool, error)
	GetIdentityInfo(ctx context.Context, tokenID string) (*domain.IdentityMetadata, error)
	History(ctx context.Context, kind domain.TransactionKind) ([]domain.TransactionEntry, error)
	Products() []domain.Product
	ExplorerTxURL(txHash string) string
}

// ConnectionService owns the wallet session lifecycle.
type ConnectionService interface {
	Connect(ctx context.Context, silent bool) (*Session, error)
	// Disconnect always clears the session; teardown failures are only logged.
	Disconnect(ctx context.Context)
	AutoReconnect(ctx context.Context)
	Session() *Session
}

// ModeService owns the process-wide backend selection.
type ModeService interface {
	Mode() domain.Mode
	SetMode(ctx context.Context, mode domain.Mode) error
}

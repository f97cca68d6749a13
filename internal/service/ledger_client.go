package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"campus-ledger/internal/core/domain"
	"campus-ledger/internal/core/ports"
	"campus-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// LedgerClientConfig holds the facade settings shared by both backends.
type LedgerClientConfig struct {
	// StoreAddress receives purchase payments on the remote ledger.
	StoreAddress string
	ExplorerURL  string
	// Reward is the check-in amount shown in the activity log.
	Reward     domain.Amount
	HistoryCap int
	Products   []domain.Product
}

// RemoteFactory builds the remote backend on first use.
type RemoteFactory func() ports.LedgerBackend

// LedgerClient implements ports.LedgerService. It dispatches every call to
// the backend selected by the current mode and keeps the activity log.
type LedgerClient struct {
	mu            sync.Mutex
	remote        ports.LedgerBackend
	remoteFactory RemoteFactory

	local    ports.LedgerBackend
	modes    ports.ModeService
	notifier ports.Notifier
	activity *historyLog
	cfg      LedgerClientConfig
	now      func() time.Time
	log      zerolog.Logger
}

var _ ports.LedgerService = (*LedgerClient)(nil)

// NewLedgerClient creates a new LedgerClient.
func NewLedgerClient(
	modes ports.ModeService,
	local ports.LedgerBackend,
	remoteFactory RemoteFactory,
	store ports.StateStore,
	notifier ports.Notifier,
	cfg LedgerClientConfig,
	log zerolog.Logger,
) *LedgerClient {
	if len(cfg.Products) == 0 {
		cfg.Products = domain.DefaultProducts
	}
	return &LedgerClient{
		remoteFactory: remoteFactory,
		local:         local,
		modes:         modes,
		notifier:      notifier,
		activity:      newHistoryLog(store, domain.KeyTxHistory, cfg.HistoryCap, log),
		cfg:           cfg,
		now:           time.Now,
		log:           log,
	}
}

// Initialize attaches session to both backends. The local backend ignores
// it; the remote backend validates its contract configuration.
func (c *LedgerClient) Initialize(session *ports.Session) error {
	if err := c.local.Initialize(session); err != nil {
		return normalize(err)
	}
	return normalize(c.remoteBackend().Initialize(session))
}

func (c *LedgerClient) Mode() domain.Mode {
	return c.modes.Mode()
}

func (c *LedgerClient) GetBalance(ctx context.Context, address string) (string, error) {
	balance, err := c.backend().GetBalance(ctx, address)
	if err != nil {
		return "", normalize(err)
	}
	return balance, nil
}

func (c *LedgerClient) CheckIn(ctx context.Context) (string, error) {
	txHash, err := c.backend().CheckIn(ctx)
	if err != nil {
		return "", c.fail(ctx, "check-in", err)
	}
	c.recordActivity(ctx, domain.TransactionKindReward, c.cfg.Reward, txHash, "Daily check-in reward")
	c.notifier.Notify(ctx, domain.SeveritySuccess, fmt.Sprintf("Checked in! +%s CPT", c.cfg.Reward))
	return txHash, nil
}

// Purchase pays amount to the campus store.
func (c *LedgerClient) Purchase(ctx context.Context, amount string) (string, error) {
	amt, err := positiveAmount(amount)
	if err != nil {
		return "", err
	}
	return c.purchase(ctx, amt, "Purchase")
}

// PurchaseProduct buys one catalog item at its list price.
func (c *LedgerClient) PurchaseProduct(ctx context.Context, productID string) (string, error) {
	product, ok := domain.FindProduct(c.cfg.Products, productID)
	if !ok {
		return "", apperror.ErrNotFound("product")
	}
	return c.purchase(ctx, product.Price, "Purchased "+product.Name)
}

func (c *LedgerClient) purchase(ctx context.Context, amount domain.Amount, description string) (string, error) {
	txHash, err := c.backend().Purchase(ctx, c.cfg.StoreAddress, amount)
	if err != nil {
		return "", c.fail(ctx, "purchase", err)
	}
	c.recordActivity(ctx, domain.TransactionKindSpend, amount, txHash, description)
	c.notifier.Notify(ctx, domain.SeveritySuccess, fmt.Sprintf("%s: -%s CPT", description, amount))
	return txHash, nil
}

func (c *LedgerClient) Transfer(ctx context.Context, recipient, amount string) (string, error) {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return "", apperror.Validation("recipient is required")
	}
	amt, err := positiveAmount(amount)
	if err != nil {
		return "", err
	}

	txHash, err := c.backend().Transfer(ctx, recipient, amt)
	if err != nil {
		return "", c.fail(ctx, "transfer", err)
	}
	description := "Transfer to " + domain.ShortAddress(recipient)
	c.recordActivity(ctx, domain.TransactionKindSpend, amt, txHash, description)
	c.notifier.Notify(ctx, domain.SeveritySuccess, fmt.Sprintf("Sent %s CPT to %s", amt, domain.ShortAddress(recipient)))
	return txHash, nil
}

func (c *LedgerClient) MintIdentity(ctx context.Context, meta domain.IdentityMetadata) (*domain.MintResult, error) {
	meta.StudentName = strings.TrimSpace(meta.StudentName)
	meta.StudentID = strings.TrimSpace(meta.StudentID)
	if meta.StudentName == "" {
		return nil, apperror.Validation("student name is required")
	}
	if meta.StudentID == "" {
		return nil, apperror.Validation("student id is required")
	}

	res, err := c.backend().MintIdentity(ctx, meta)
	if err != nil {
		return nil, c.fail(ctx, "identity mint", err)
	}
	c.notifier.Notify(ctx, domain.SeveritySuccess, "Student identity minted!")
	return res, nil
}

func (c *LedgerClient) HasIdentity(ctx context.Context, address string) (bool, error) {
	has, err := c.backend().HasIdentity(ctx, address)
	if err != nil {
		return false, normalize(err)
	}
	return has, nil
}

// GetIdentityInfo reads identity metadata. An empty token id means the
// default token.
func (c *LedgerClient) GetIdentityInfo(ctx context.Context, tokenID string) (*domain.IdentityMetadata, error) {
	if tokenID == "" {
		tokenID = domain.DefaultTokenID
	}
	meta, err := c.backend().GetIdentityInfo(ctx, tokenID)
	if err != nil {
		return nil, normalize(err)
	}
	return meta, nil
}

// History returns the activity log filtered by kind. An empty kind returns all.
func (c *LedgerClient) History(ctx context.Context, kind domain.TransactionKind) ([]domain.TransactionEntry, error) {
	entries, err := c.activity.List(ctx)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return domain.FilterByKind(entries, kind), nil
}

func (c *LedgerClient) Products() []domain.Product {
	return c.cfg.Products
}

func (c *LedgerClient) ExplorerTxURL(txHash string) string {
	return domain.ExplorerTxURL(c.cfg.ExplorerURL, txHash)
}

func (c *LedgerClient) backend() ports.LedgerBackend {
	if c.modes.Mode().IsSimulated() {
		return c.local
	}
	return c.remoteBackend()
}

func (c *LedgerClient) remoteBackend() ports.LedgerBackend {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.remote == nil {
		c.remote = c.remoteFactory()
	}
	return c.remote
}

func (c *LedgerClient) recordActivity(ctx context.Context, kind domain.TransactionKind, amount domain.Amount, txHash, description string) {
	entry := domain.NewTransactionEntry(kind, amount, txHash, description, c.now())
	if err := c.activity.Append(ctx, entry); err != nil {
		c.log.Warn().Err(err).Str("tx_hash", txHash).Msg("failed to record activity")
	}
}

// fail normalizes a write failure and reports it to the notifier. A
// confirmation timeout is a warning since the transaction may still land.
func (c *LedgerClient) fail(ctx context.Context, op string, err error) error {
	appErr := asAppError(err)
	if appErr.Code == apperror.CodeConfirmationTimeout {
		c.log.Warn().Str("op", op).Msg(appErr.Message)
		c.notifier.Notify(ctx, domain.SeverityWarning, appErr.Message)
		return appErr
	}
	c.log.Error().Err(err).Str("op", op).Str("code", appErr.Code).Msg("ledger operation failed")
	c.notifier.Notify(ctx, domain.SeverityError, appErr.Message)
	return appErr
}

// normalize maps anything outside the error taxonomy to Unknown.
func normalize(err error) error {
	if err == nil {
		return nil
	}
	return asAppError(err)
}

func asAppError(err error) *apperror.AppError {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.ErrUnknown(err.Error())
}

func positiveAmount(s string) (domain.Amount, error) {
	amt, err := domain.ParseAmount(s)
	if err != nil || amt.IsZero() {
		return domain.Amount{}, apperror.ErrInvalidAmount()
	}
	return amt, nil
}

package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"campus-ledger/internal/core/domain"
	"campus-ledger/internal/core/ports"
	"campus-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// LocalLedgerConfig tunes the simulated ledger.
type LocalLedgerConfig struct {
	Reward      domain.Amount
	Latency     time.Duration
	MintLatency time.Duration
	HistoryCap  int
}

// LocalLedger is the simulated ledger backend. Balance, identity and the
// demo transaction log live in the state store under the demo_* keys.
type LocalLedger struct {
	mu      sync.Mutex
	store   ports.StateStore
	history *historyLog
	cfg     LocalLedgerConfig
	now     func() time.Time
	log     zerolog.Logger
}

var _ ports.LedgerBackend = (*LocalLedger)(nil)

// NewLocalLedger creates a new LocalLedger.
func NewLocalLedger(store ports.StateStore, cfg LocalLedgerConfig, log zerolog.Logger) *LocalLedger {
	log = log.With().Str("backend", "local").Logger()
	return &LocalLedger{
		store:   store,
		history: newHistoryLog(store, domain.KeyDemoHistory, cfg.HistoryCap, log),
		cfg:     cfg,
		now:     time.Now,
		log:     log,
	}
}

// Initialize is a no-op; the simulated ledger needs no session.
func (l *LocalLedger) Initialize(_ *ports.Session) error { return nil }

func (l *LocalLedger) GetBalance(ctx context.Context, _ string) (string, error) {
	if err := sleepCtx(ctx, l.cfg.Latency); err != nil {
		return "", err
	}
	return l.balance(ctx).String(), nil
}

// CheckIn credits the reward unconditionally. There is no cooldown.
func (l *LocalLedger) CheckIn(ctx context.Context) (string, error) {
	if err := sleepCtx(ctx, l.cfg.Latency); err != nil {
		return "", err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	balance := l.balance(ctx).Add(l.cfg.Reward)
	txHash, err := syntheticTxHash()
	if err != nil {
		return "", apperror.InternalError(err)
	}
	if err := l.store.Set(ctx, domain.KeyDemoBalance, balance.String()); err != nil {
		return "", apperror.InternalError(fmt.Errorf("writing balance: %w", err))
	}
	l.record(ctx, domain.TransactionKindReward, l.cfg.Reward, txHash, "Daily check-in reward")

	l.log.Info().Str("tx_hash", txHash).Str("balance", balance.String()).Msg("simulated check-in")
	return txHash, nil
}

func (l *LocalLedger) Purchase(ctx context.Context, _ string, amount domain.Amount) (string, error) {
	return l.debit(ctx, amount, "Purchase")
}

// Transfer debits like a purchase; the recipient only shows up in the log.
func (l *LocalLedger) Transfer(ctx context.Context, recipient string, amount domain.Amount) (string, error) {
	return l.debit(ctx, amount, "Transfer to "+domain.ShortAddress(recipient))
}

// MintIdentity stores the metadata and sets the identity flag. Re-minting
// overwrites the metadata.
func (l *LocalLedger) MintIdentity(ctx context.Context, meta domain.IdentityMetadata) (*domain.MintResult, error) {
	if err := sleepCtx(ctx, l.cfg.MintLatency); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	raw, err := json.Marshal(meta)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshaling identity: %w", err))
	}
	txHash, err := syntheticTxHash()
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if err := l.store.Set(ctx, domain.KeyDemoStudentInfo, string(raw)); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("writing identity: %w", err))
	}
	if err := l.store.Set(ctx, domain.KeyDemoHasNFT, "true"); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("writing identity flag: %w", err))
	}

	l.log.Info().Str("tx_hash", txHash).Str("student_id", meta.StudentID).Msg("simulated identity mint")
	return &domain.MintResult{TokenID: domain.DefaultTokenID, TxHash: txHash}, nil
}

func (l *LocalLedger) HasIdentity(ctx context.Context, _ string) (bool, error) {
	if err := sleepCtx(ctx, l.cfg.Latency); err != nil {
		return false, err
	}
	return l.hasIdentity(ctx), nil
}

// GetIdentityInfo returns the stored metadata, or empty metadata when no
// identity was minted.
func (l *LocalLedger) GetIdentityInfo(ctx context.Context, _ string) (*domain.IdentityMetadata, error) {
	if err := sleepCtx(ctx, l.cfg.Latency); err != nil {
		return nil, err
	}
	meta := &domain.IdentityMetadata{}
	if !l.hasIdentity(ctx) {
		return meta, nil
	}
	raw, ok, err := l.store.Get(ctx, domain.KeyDemoStudentInfo)
	if err != nil || !ok {
		if err != nil {
			l.log.Warn().Err(err).Msg("failed to read identity metadata")
		}
		return meta, nil
	}
	if err := json.Unmarshal([]byte(raw), meta); err != nil {
		l.log.Warn().Err(err).Msg("discarding corrupt identity metadata")
		return &domain.IdentityMetadata{}, nil
	}
	return meta, nil
}

// Record returns the full simulated state.
func (l *LocalLedger) Record(ctx context.Context) (domain.LedgerRecord, error) {
	rec := domain.LedgerRecord{
		Balance:     l.balance(ctx),
		HasIdentity: l.hasIdentity(ctx),
	}
	if rec.HasIdentity {
		meta, err := l.GetIdentityInfo(ctx, domain.DefaultTokenID)
		if err != nil {
			return domain.LedgerRecord{}, err
		}
		rec.Identity = meta
	}
	return rec, nil
}

// History returns the simulated ledger's own transaction log.
func (l *LocalLedger) History(ctx context.Context) ([]domain.TransactionEntry, error) {
	return l.history.List(ctx)
}

func (l *LocalLedger) debit(ctx context.Context, amount domain.Amount, description string) (string, error) {
	if err := sleepCtx(ctx, l.cfg.Latency); err != nil {
		return "", err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	balance := l.balance(ctx)
	if balance.LessThan(amount) {
		return "", apperror.ErrInsufficientBalance()
	}
	txHash, err := syntheticTxHash()
	if err != nil {
		return "", apperror.InternalError(err)
	}
	balance = balance.Sub(amount)
	if err := l.store.Set(ctx, domain.KeyDemoBalance, balance.String()); err != nil {
		return "", apperror.InternalError(fmt.Errorf("writing balance: %w", err))
	}
	l.record(ctx, domain.TransactionKindSpend, amount, txHash, description)

	l.log.Info().Str("tx_hash", txHash).Str("amount", amount.String()).Str("balance", balance.String()).Msg("simulated debit")
	return txHash, nil
}

func (l *LocalLedger) balance(ctx context.Context) domain.Amount {
	raw, ok, err := l.store.Get(ctx, domain.KeyDemoBalance)
	if err != nil {
		l.log.Warn().Err(err).Msg("failed to read balance, using 0")
		return domain.Amount{}
	}
	if !ok {
		return domain.Amount{}
	}
	a, err := domain.ParseAmount(raw)
	if err != nil {
		l.log.Warn().Err(err).Str("value", raw).Msg("corrupt balance, using 0")
		return domain.Amount{}
	}
	return a
}

func (l *LocalLedger) hasIdentity(ctx context.Context) bool {
	raw, ok, err := l.store.Get(ctx, domain.KeyDemoHasNFT)
	if err != nil {
		l.log.Warn().Err(err).Msg("failed to read identity flag")
		return false
	}
	if !ok {
		return false
	}
	v, _ := strconv.ParseBool(raw)
	return v
}

func (l *LocalLedger) record(ctx context.Context, kind domain.TransactionKind, amount domain.Amount, txHash, description string) {
	entry := domain.NewTransactionEntry(kind, amount, txHash, description, l.now())
	if err := l.history.Append(ctx, entry); err != nil {
		l.log.Warn().Err(err).Msg("failed to append simulated transaction")
	}
}

// syntheticTxHash returns "0x" followed by 64 random hex digits.
func syntheticTxHash() (string, error) {
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("generating tx hash: %w", err)
	}
	return "0x" + hex.EncodeToString(b[:]), nil
}

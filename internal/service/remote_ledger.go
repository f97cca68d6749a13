package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"campus-ledger/internal/core/domain"
	"campus-ledger/internal/core/ports"
	"campus-ledger/pkg/apperror"
	"campus-ledger/pkg/cairo"

	"github.com/rs/zerolog"
)

// Contract entry points.
const (
	entryBalanceOf      = "balance_of"
	entryCheckIn        = "check_in"
	entryPurchase       = "purchase"
	entryTransfer       = "transfer"
	entryMintStudentNFT = "mint_student_nft"
	entryHasNFT         = "has_nft"
	entryGetStudentInfo = "get_student_info"
)

var errNotConfirmed = errors.New("transaction not confirmed yet")

// RemoteLedgerConfig holds the contract addresses and retry budgets of the
// remote backend.
type RemoteLedgerConfig struct {
	PointsAddress   string
	IdentityAddress string
	// ConfirmPolicy governs confirmation polling for check-in and mint.
	ConfirmPolicy Backoff
	// ReadPolicy governs the identity possession view call.
	ReadPolicy Backoff
}

// RemoteLedger talks to the points and identity contracts through the
// account of the attached wallet session.
type RemoteLedger struct {
	mu    sync.RWMutex
	bound *binding
	cfg   RemoteLedgerConfig
	log   zerolog.Logger
}

// binding is an initialized session with its resolved contract addresses.
type binding struct {
	*ports.Session
	points   string
	identity string
}

var _ ports.LedgerBackend = (*RemoteLedger)(nil)

// NewRemoteLedger creates a new RemoteLedger. It is unusable until
// Initialize attaches a session.
func NewRemoteLedger(cfg RemoteLedgerConfig, log zerolog.Logger) *RemoteLedger {
	return &RemoteLedger{
		cfg: cfg,
		log: log.With().Str("backend", "remote").Logger(),
	}
}

// Initialize attaches session after checking that both contracts are
// configured. A nil session detaches.
func (r *RemoteLedger) Initialize(session *ports.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bound = nil
	if session == nil || session.Account == nil {
		return apperror.ErrSessionRequired()
	}

	points, err := contractAddress(r.cfg.PointsAddress, "Campus Token")
	if err != nil {
		return err
	}
	identity, err := contractAddress(r.cfg.IdentityAddress, "Student NFT")
	if err != nil {
		return err
	}

	r.bound = &binding{Session: session, points: points, identity: identity}
	r.log.Info().Str("address", domain.ShortAddress(session.Address)).Msg("remote ledger initialized")
	return nil
}

func contractAddress(addr, what string) (string, error) {
	if domain.IsZeroAddress(addr) {
		return "", apperror.ErrConfigurationMissing(what)
	}
	norm, err := cairo.NormalizeAddress(addr)
	if err != nil {
		return "", apperror.ErrConfigurationMissing(what)
	}
	return norm, nil
}

// GetBalance reads the points balance. Failures read as "0".
func (r *RemoteLedger) GetBalance(ctx context.Context, address string) (string, error) {
	b, err := r.attached()
	if err != nil {
		return "", err
	}
	owner, err := r.owner(b, address)
	if err != nil {
		r.log.Warn().Err(err).Msg("invalid balance owner, using 0")
		return "0", nil
	}

	felts, err := b.Account.Call(ctx, ports.Call{
		ContractAddress: b.points,
		Entrypoint:      entryBalanceOf,
		Calldata:        []string{owner},
	})
	if err != nil {
		r.log.Warn().Err(err).Str("address", domain.ShortAddress(owner)).Msg("balance view call failed, using 0")
		return "0", nil
	}
	raw, err := cairo.DecodeU256(felts)
	if err != nil {
		r.log.Warn().Err(err).Msg("undecodable balance, using 0")
		return "0", nil
	}
	return domain.AmountFromBaseUnits(raw).String(), nil
}

// CheckIn claims the daily reward. Confirmation follows the confirm policy.
func (r *RemoteLedger) CheckIn(ctx context.Context) (string, error) {
	b, err := r.attached()
	if err != nil {
		return "", err
	}
	return r.submit(ctx, b.Account, ports.Call{
		ContractAddress: b.points,
		Entrypoint:      entryCheckIn,
	}, r.cfg.ConfirmPolicy, false)
}

// Purchase pays amount to store. It waits for a single confirmation only.
func (r *RemoteLedger) Purchase(ctx context.Context, store string, amount domain.Amount) (string, error) {
	return r.pay(ctx, entryPurchase, store, amount)
}

// Transfer sends amount to recipient. It waits for a single confirmation only.
func (r *RemoteLedger) Transfer(ctx context.Context, recipient string, amount domain.Amount) (string, error) {
	return r.pay(ctx, entryTransfer, recipient, amount)
}

func (r *RemoteLedger) pay(ctx context.Context, entrypoint, to string, amount domain.Amount) (string, error) {
	b, err := r.attached()
	if err != nil {
		return "", err
	}
	target, err := cairo.NormalizeAddress(to)
	if err != nil {
		return "", apperror.Validation(err.Error())
	}
	units, err := amount.BaseUnits()
	if err != nil {
		return "", apperror.ErrInvalidAmount()
	}

	calldata := append([]string{target}, cairo.EncodeU256(units)...)
	return r.submit(ctx, b.Account, ports.Call{
		ContractAddress: b.points,
		Entrypoint:      entrypoint,
		Calldata:        calldata,
	}, SingleAttempt, false)
}

// MintIdentity mints the student identity token. The token id is not read
// back from events; the contract issues one token per student.
func (r *RemoteLedger) MintIdentity(ctx context.Context, meta domain.IdentityMetadata) (*domain.MintResult, error) {
	b, err := r.attached()
	if err != nil {
		return nil, err
	}

	var calldata []string
	calldata = append(calldata, cairo.EncodeByteArray(meta.AvatarURI)...)
	calldata = append(calldata, cairo.EncodeByteArray(meta.StudentName)...)
	calldata = append(calldata, cairo.EncodeByteArray(meta.StudentID)...)

	txHash, err := r.submit(ctx, b.Account, ports.Call{
		ContractAddress: b.identity,
		Entrypoint:      entryMintStudentNFT,
		Calldata:        calldata,
	}, r.cfg.ConfirmPolicy, true)
	if err != nil {
		return nil, err
	}
	return &domain.MintResult{TokenID: domain.DefaultTokenID, TxHash: txHash}, nil
}

// HasIdentity reports identity possession, retrying with the read policy.
// Exhausted retries read as false.
func (r *RemoteLedger) HasIdentity(ctx context.Context, address string) (bool, error) {
	b, err := r.attached()
	if err != nil {
		return false, err
	}
	owner, err := r.owner(b, address)
	if err != nil {
		r.log.Warn().Err(err).Msg("invalid identity owner, reporting false")
		return false, nil
	}

	var has bool
	err = retry(ctx, r.cfg.ReadPolicy, func(ctx context.Context) error {
		felts, err := b.Account.Call(ctx, ports.Call{
			ContractAddress: b.identity,
			Entrypoint:      entryHasNFT,
			Calldata:        []string{owner},
		})
		if err != nil {
			r.log.Debug().Err(err).Msg("identity view call failed")
			return err
		}
		has, err = cairo.DecodeBool(felts)
		return err
	})
	if err != nil {
		r.log.Warn().Err(err).Str("address", domain.ShortAddress(owner)).Msg("identity check failed, reporting false")
		return false, nil
	}
	return has, nil
}

// GetIdentityInfo reads the metadata of tokenID. Failures propagate.
func (r *RemoteLedger) GetIdentityInfo(ctx context.Context, tokenID string) (*domain.IdentityMetadata, error) {
	b, err := r.attached()
	if err != nil {
		return nil, err
	}
	id, err := cairo.ParseFelt(tokenID)
	if err != nil {
		return nil, apperror.Validation(fmt.Sprintf("invalid token id %q", tokenID))
	}

	felts, err := b.Account.Call(ctx, ports.Call{
		ContractAddress: b.identity,
		Entrypoint:      entryGetStudentInfo,
		Calldata:        cairo.EncodeU256(id),
	})
	if err != nil {
		return nil, apperror.ErrUnknown(err.Error())
	}

	fields := make([]string, 0, 3)
	for range 3 {
		s, n, err := cairo.DecodeByteArray(felts)
		if err != nil {
			return nil, apperror.ErrUnknown(fmt.Sprintf("decoding student info: %v", err))
		}
		fields = append(fields, s)
		felts = felts[n:]
	}
	return &domain.IdentityMetadata{
		AvatarURI:   fields[0],
		StudentName: fields[1],
		StudentID:   fields[2],
	}, nil
}

// submit invokes call and polls for confirmation under policy. A revert is
// classified and never retried; running out of attempts yields
// ConfirmationTimeout since the transaction may still land.
func (r *RemoteLedger) submit(ctx context.Context, acct ports.Account, call ports.Call, policy Backoff, mint bool) (string, error) {
	txHash, err := acct.Invoke(ctx, call)
	if err != nil {
		r.log.Warn().Err(err).Str("entrypoint", call.Entrypoint).Msg("transaction submission failed")
		return "", classifyLedgerError(err, mint)
	}
	log := r.log.With().Str("entrypoint", call.Entrypoint).Str("tx_hash", txHash).Logger()
	log.Info().Msg("transaction submitted")

	attempt := 0
	err = retry(ctx, policy, func(ctx context.Context) error {
		attempt++
		state, werr := acct.WaitForTransaction(ctx, txHash)
		switch state {
		case domain.ConfirmationConfirmed:
			return nil
		case domain.ConfirmationRejected:
			if werr == nil {
				werr = fmt.Errorf("transaction %s reverted", txHash)
			}
			return permanent(classifyLedgerError(werr, mint))
		}
		if werr == nil {
			werr = errNotConfirmed
		}
		log.Debug().Err(werr).Int("attempt", attempt).Msg("transaction not confirmed")
		return werr
	})
	if err == nil {
		log.Info().Int("attempts", attempt).Msg("transaction confirmed")
		return txHash, nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		log.Warn().Str("code", appErr.Code).Msg("transaction reverted")
		return "", appErr
	}
	log.Warn().Err(err).Int("attempts", attempt).Msg("transaction confirmation timed out")
	return "", apperror.ErrConfirmationTimeout(txHash)
}

func (r *RemoteLedger) attached() (*binding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.bound == nil {
		return nil, apperror.ErrNotInitialized()
	}
	return r.bound, nil
}

func (r *RemoteLedger) owner(b *binding, address string) (string, error) {
	if address == "" {
		address = b.Address
	}
	return cairo.NormalizeAddress(address)
}

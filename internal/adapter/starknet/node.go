package starknet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campus-ledger/internal/core/domain"
	"campus-ledger/internal/core/ports"
	"campus-ledger/pkg/cairo"

	"github.com/rs/zerolog"
)

// codeTxHashNotFound is the StarkNet RPC error for an unknown transaction hash.
const codeTxHashNotFound = 29

// Receipt statuses reported by starknet_getTransactionReceipt.
const (
	finalityAcceptedOnL2 = "ACCEPTED_ON_L2"
	finalityAcceptedOnL1 = "ACCEPTED_ON_L1"
	executionSucceeded   = "SUCCEEDED"
	executionReverted    = "REVERTED"
)

// ErrWaitTimeout is returned when a transaction does not settle within the wait budget.
var ErrWaitTimeout = errors.New("transaction not settled within wait timeout")

type functionCall struct {
	ContractAddress    string   `json:"contract_address"`
	EntryPointSelector string   `json:"entry_point_selector"`
	Calldata           []string `json:"calldata"`
}

type callParams struct {
	Request functionCall `json:"request"`
	BlockID string       `json:"block_id"`
}

type receiptParams struct {
	TransactionHash string `json:"transaction_hash"`
}

type receipt struct {
	TransactionHash string `json:"transaction_hash"`
	FinalityStatus  string `json:"finality_status"`
	ExecutionStatus string `json:"execution_status"`
	RevertReason    string `json:"revert_reason,omitempty"`
}

// Node reads chain state from a StarkNet JSON-RPC endpoint.
type Node struct {
	rpc          *RPCClient
	pollInterval time.Duration
	waitTimeout  time.Duration
	log          zerolog.Logger
}

func NewNode(rpc *RPCClient, pollInterval, waitTimeout time.Duration, log zerolog.Logger) *Node {
	if pollInterval <= 0 {
		pollInterval = 2 * time.Second
	}
	return &Node{
		rpc:          rpc,
		pollInterval: pollInterval,
		waitTimeout:  waitTimeout,
		log:          log,
	}
}

// Call performs a starknet_call against the latest block.
func (n *Node) Call(ctx context.Context, call ports.Call) ([]string, error) {
	params := callParams{
		Request: functionCall{
			ContractAddress:    call.ContractAddress,
			EntryPointSelector: cairo.Selector(call.Entrypoint),
			Calldata:           nonNil(call.Calldata),
		},
		BlockID: "latest",
	}

	var result []string
	if err := n.rpc.cli.CallResult(ctx, "starknet_call", params, &result); err != nil {
		return nil, describe(call.Entrypoint, err)
	}
	return result, nil
}

// TransactionState fetches the receipt once and maps it to a confirmation state.
// An unknown hash is reported as submitted.
func (n *Node) TransactionState(ctx context.Context, txHash string) (domain.ConfirmationState, string, error) {
	var r receipt
	err := n.rpc.cli.CallResult(ctx, "starknet_getTransactionReceipt", receiptParams{TransactionHash: txHash}, &r)
	if err != nil {
		if code, ok := rpcErrorCode(err); ok && code == codeTxHashNotFound {
			return domain.ConfirmationSubmitted, "", nil
		}
		return domain.ConfirmationSubmitted, "", describe("starknet_getTransactionReceipt", err)
	}

	if r.ExecutionStatus == executionReverted {
		return domain.ConfirmationRejected, r.RevertReason, nil
	}
	if r.ExecutionStatus == executionSucceeded &&
		(r.FinalityStatus == finalityAcceptedOnL2 || r.FinalityStatus == finalityAcceptedOnL1) {
		return domain.ConfirmationConfirmed, "", nil
	}
	return domain.ConfirmationSubmitted, "", nil
}

// WaitForTransaction polls the receipt until the transaction settles, the
// wait timeout elapses, or ctx is done. Transport errors are retried on the
// next tick.
func (n *Node) WaitForTransaction(ctx context.Context, txHash string) (domain.ConfirmationState, error) {
	if n.waitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.waitTimeout)
		defer cancel()
	}

	ticker := time.NewTicker(n.pollInterval)
	defer ticker.Stop()

	var lastErr error
	for {
		state, reason, err := n.TransactionState(ctx, txHash)
		switch {
		case err != nil:
			lastErr = err
			n.log.Debug().Err(err).Str("tx_hash", txHash).Msg("receipt poll failed")
		case state == domain.ConfirmationConfirmed:
			return state, nil
		case state == domain.ConfirmationRejected:
			return state, fmt.Errorf("transaction %s reverted: %s", txHash, reason)
		}

		select {
		case <-ctx.Done():
			if lastErr != nil {
				return domain.ConfirmationTimedOut, fmt.Errorf("%w: %w", ErrWaitTimeout, lastErr)
			}
			return domain.ConfirmationTimedOut, fmt.Errorf("%w: %w", ErrWaitTimeout, ctx.Err())
		case <-ticker.C:
		}
	}
}

// ChainID returns the network chain id.
func (n *Node) ChainID(ctx context.Context) (string, error) {
	var id string
	if err := n.rpc.cli.CallResult(ctx, "starknet_chainId", nil, &id); err != nil {
		return "", describe("starknet_chainId", err)
	}
	return id, nil
}

// Ping implements ports.HealthChecker.
func (n *Node) Ping(ctx context.Context) error {
	_, err := n.ChainID(ctx)
	return err
}

func (n *Node) Name() string { return "starknet" }

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

package starknet

import (
	"context"
	"errors"
	"fmt"

	"campus-ledger/internal/core/domain"
	"campus-ledger/internal/core/ports"
	"campus-ledger/pkg/cairo"

	"github.com/rs/zerolog"
)

var errNoAccounts = errors.New("no wallet account available")

type requestAccountsParams struct {
	SilentMode bool   `json:"silent_mode"`
	AppName    string `json:"app_name,omitempty"`
}

type invokeCall struct {
	ContractAddress string   `json:"contract_address"`
	EntryPoint      string   `json:"entry_point"`
	Calldata        []string `json:"calldata"`
}

type addInvokeParams struct {
	Calls []invokeCall `json:"calls"`
}

type addInvokeResult struct {
	TransactionHash string `json:"transaction_hash"`
}

// Bridge is a ports.WalletProvider backed by a wallet bridge daemon that holds
// the user's keys and prompts for approval.
type Bridge struct {
	rpc     *RPCClient
	node    *Node
	appName string
	log     zerolog.Logger
}

var _ ports.WalletProvider = (*Bridge)(nil)

func NewBridge(rpc *RPCClient, node *Node, appName string, log zerolog.Logger) *Bridge {
	return &Bridge{
		rpc:     rpc,
		node:    node,
		appName: appName,
		log:     log,
	}
}

// Connect requests the wallet's accounts. Silent requests never prompt; an
// empty account list then means nothing is pre-authorized.
func (b *Bridge) Connect(ctx context.Context, silent bool) (ports.Account, error) {
	var accounts []string
	params := requestAccountsParams{SilentMode: silent, AppName: b.appName}
	if err := b.rpc.cli.CallResult(ctx, "wallet_requestAccounts", params, &accounts); err != nil {
		return nil, describe("wallet_requestAccounts", err)
	}

	if len(accounts) == 0 {
		if silent {
			return nil, nil
		}
		return nil, errNoAccounts
	}

	address, err := cairo.NormalizeAddress(accounts[0])
	if err != nil {
		return nil, err
	}

	b.log.Debug().Str("address", domain.ShortAddress(address)).Bool("silent", silent).Msg("wallet account authorized")
	return &account{address: address, bridge: b}, nil
}

func (b *Bridge) Disconnect(ctx context.Context) error {
	if _, err := b.rpc.cli.Call(ctx, "wallet_disconnect", nil); err != nil {
		return describe("wallet_disconnect", err)
	}
	return nil
}

// Ping implements ports.HealthChecker by asking for accounts silently.
func (b *Bridge) Ping(ctx context.Context) error {
	var accounts []string
	return b.rpc.cli.CallResult(ctx, "wallet_requestAccounts", requestAccountsParams{SilentMode: true}, &accounts)
}

func (b *Bridge) Name() string { return "wallet-bridge" }

// account is the ports.Account handed out by Connect. Reads go straight to
// the node; invokes are signed by the bridge.
type account struct {
	address string
	bridge  *Bridge
}

func (a *account) Address() string { return a.address }

func (a *account) Call(ctx context.Context, call ports.Call) ([]string, error) {
	return a.bridge.node.Call(ctx, call)
}

func (a *account) Invoke(ctx context.Context, calls ...ports.Call) (string, error) {
	params := addInvokeParams{Calls: make([]invokeCall, 0, len(calls))}
	for _, c := range calls {
		params.Calls = append(params.Calls, invokeCall{
			ContractAddress: c.ContractAddress,
			EntryPoint:      c.Entrypoint,
			Calldata:        nonNil(c.Calldata),
		})
	}

	var res addInvokeResult
	if err := a.bridge.rpc.cli.CallResult(ctx, "wallet_addInvokeTransaction", params, &res); err != nil {
		return "", describe("wallet_addInvokeTransaction", err)
	}
	if res.TransactionHash == "" {
		return "", fmt.Errorf("wallet_addInvokeTransaction: empty transaction hash")
	}
	return res.TransactionHash, nil
}

func (a *account) WaitForTransaction(ctx context.Context, txHash string) (domain.ConfirmationState, error) {
	return a.bridge.node.WaitForTransaction(ctx, txHash)
}

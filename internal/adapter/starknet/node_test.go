package starknet

import (
	"context"
	"testing"
	"time"

	"campus-ledger/internal/core/domain"
	"campus-ledger/internal/core/ports"
	"campus-ledger/pkg/cairo"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNode(t *testing.T, f *fakeChain, waitTimeout time.Duration) *Node {
	t.Helper()
	srv := f.serve(t)
	rpc := NewRPCClient(srv.URL, nil)
	t.Cleanup(func() { rpc.Close() })
	return NewNode(rpc, 5*time.Millisecond, waitTimeout, zerolog.Nop())
}

func TestNode_Call(t *testing.T) {
	f := newFakeChain()
	f.callResults[cairo.Selector("balance_of")] = []string{"0x8ac7230489e80000", "0x0"}
	node := newTestNode(t, f, time.Second)

	res, err := node.Call(context.Background(), ports.Call{
		ContractAddress: "0x123",
		Entrypoint:      "balance_of",
		Calldata:        []string{"0xabc"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"0x8ac7230489e80000", "0x0"}, res)

	calls := f.recordedCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "0x123", calls[0].Request.ContractAddress)
	assert.Equal(t, cairo.Selector("balance_of"), calls[0].Request.EntryPointSelector)
	assert.Equal(t, "latest", calls[0].BlockID)
}

func TestNode_Call_ContractError(t *testing.T) {
	f := newFakeChain()
	node := newTestNode(t, f, time.Second)

	_, err := node.Call(context.Background(), ports.Call{ContractAddress: "0x123", Entrypoint: "missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENTRYPOINT_NOT_FOUND")
}

func TestNode_TransactionState(t *testing.T) {
	tests := []struct {
		name   string
		r      receipt
		want   domain.ConfirmationState
		reason string
	}{
		{"accepted on L2", receipt{FinalityStatus: "ACCEPTED_ON_L2", ExecutionStatus: "SUCCEEDED"}, domain.ConfirmationConfirmed, ""},
		{"accepted on L1", receipt{FinalityStatus: "ACCEPTED_ON_L1", ExecutionStatus: "SUCCEEDED"}, domain.ConfirmationConfirmed, ""},
		{"pre-confirmed", receipt{FinalityStatus: "PRE_CONFIRMED", ExecutionStatus: "SUCCEEDED"}, domain.ConfirmationSubmitted, ""},
		{"reverted", receipt{FinalityStatus: "ACCEPTED_ON_L2", ExecutionStatus: "REVERTED", RevertReason: "Already checked in today"}, domain.ConfirmationRejected, "Already checked in today"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeChain()
			f.receipts["0x1"] = []receipt{tt.r}
			node := newTestNode(t, f, time.Second)

			state, reason, err := node.TransactionState(context.Background(), "0x1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, state)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestNode_TransactionState_UnknownHashIsPending(t *testing.T) {
	f := newFakeChain()
	node := newTestNode(t, f, time.Second)

	state, _, err := node.TransactionState(context.Background(), "0xdead")
	require.NoError(t, err)
	assert.Equal(t, domain.ConfirmationSubmitted, state)
}

func TestNode_WaitForTransaction_Confirms(t *testing.T) {
	f := newFakeChain()
	f.receipts["0x1"] = []receipt{
		{FinalityStatus: "RECEIVED", ExecutionStatus: "SUCCEEDED"},
		{FinalityStatus: "ACCEPTED_ON_L2", ExecutionStatus: "SUCCEEDED"},
	}
	node := newTestNode(t, f, time.Second)

	state, err := node.WaitForTransaction(context.Background(), "0x1")
	require.NoError(t, err)
	assert.Equal(t, domain.ConfirmationConfirmed, state)
}

func TestNode_WaitForTransaction_Reverted(t *testing.T) {
	f := newFakeChain()
	f.receipts["0x1"] = []receipt{{FinalityStatus: "ACCEPTED_ON_L2", ExecutionStatus: "REVERTED", RevertReason: "Cooldown active"}}
	node := newTestNode(t, f, time.Second)

	state, err := node.WaitForTransaction(context.Background(), "0x1")
	assert.Equal(t, domain.ConfirmationRejected, state)
	assert.ErrorContains(t, err, "Cooldown active")
}

func TestNode_WaitForTransaction_Timeout(t *testing.T) {
	f := newFakeChain()
	node := newTestNode(t, f, 30*time.Millisecond)

	state, err := node.WaitForTransaction(context.Background(), "0xnever")
	assert.Equal(t, domain.ConfirmationTimedOut, state)
	assert.ErrorIs(t, err, ErrWaitTimeout)
}

func TestNode_Ping(t *testing.T) {
	f := newFakeChain()
	node := newTestNode(t, f, time.Second)

	assert.NoError(t, node.Ping(context.Background()))
	assert.Equal(t, "starknet", node.Name())
}

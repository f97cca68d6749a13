package starknet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/handler"
	"github.com/creachadair/jrpc2/jhttp"
)

// fakeChain is an in-process StarkNet node plus wallet bridge.
type fakeChain struct {
	mu sync.Mutex

	accounts    []string
	rejectNext  string // wallet error message for the next invoke
	invokes     []addInvokeParams
	receipts    map[string][]receipt // consumed one per poll; last one repeats
	callResults map[string][]string  // by selector
	calls       []callParams
	authHeaders []string
	disconnects int
}

func newFakeChain() *fakeChain {
	return &fakeChain{
		receipts:    make(map[string][]receipt),
		callResults: make(map[string][]string),
	}
}

func (f *fakeChain) methods() handler.Map {
	return handler.Map{
		"starknet_chainId": handler.New(func(ctx context.Context) (string, error) {
			return "0x534e5f5345504f4c4941", nil
		}),
		"starknet_call": handler.New(func(ctx context.Context, p callParams) ([]string, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.calls = append(f.calls, p)
			res, ok := f.callResults[p.Request.EntryPointSelector]
			if !ok {
				return nil, &jrpc2.Error{Code: 40, Message: "Contract error", Data: []byte(`"ENTRYPOINT_NOT_FOUND"`)}
			}
			return res, nil
		}),
		"starknet_getTransactionReceipt": handler.New(func(ctx context.Context, p receiptParams) (*receipt, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			queue := f.receipts[p.TransactionHash]
			if len(queue) == 0 {
				return nil, &jrpc2.Error{Code: codeTxHashNotFound, Message: "Transaction hash not found"}
			}
			r := queue[0]
			if len(queue) > 1 {
				f.receipts[p.TransactionHash] = queue[1:]
			}
			return &r, nil
		}),
		"wallet_requestAccounts": handler.New(func(ctx context.Context, p requestAccountsParams) ([]string, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if !p.SilentMode && len(f.accounts) == 0 {
				return nil, &jrpc2.Error{Code: 113, Message: "User rejected request"}
			}
			return f.accounts, nil
		}),
		"wallet_addInvokeTransaction": handler.New(func(ctx context.Context, p addInvokeParams) (*addInvokeResult, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.rejectNext != "" {
				msg := f.rejectNext
				f.rejectNext = ""
				return nil, &jrpc2.Error{Code: 113, Message: msg}
			}
			f.invokes = append(f.invokes, p)
			return &addInvokeResult{TransactionHash: "0x7e57"}, nil
		}),
		"wallet_disconnect": handler.New(func(ctx context.Context) (bool, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.disconnects++
			return true, nil
		}),
	}
}

func (f *fakeChain) serve(t *testing.T) *httptest.Server {
	t.Helper()
	jh := jhttp.NewBridge(f.methods(), nil)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.authHeaders = append(f.authHeaders, r.Header.Get("Authorization"))
		f.mu.Unlock()
		jh.ServeHTTP(w, r)
	}))
	t.Cleanup(func() {
		srv.Close()
		jh.Close()
	})
	return srv
}

func (f *fakeChain) lastAuth() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.authHeaders) == 0 {
		return ""
	}
	return strings.TrimPrefix(f.authHeaders[len(f.authHeaders)-1], "Bearer ")
}

func (f *fakeChain) recordedCalls() []callParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]callParams(nil), f.calls...)
}

func (f *fakeChain) recordedInvokes() []addInvokeParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]addInvokeParams(nil), f.invokes...)
}

func (f *fakeChain) disconnectCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.disconnects
}

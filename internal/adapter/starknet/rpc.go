package starknet

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/jhttp"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RPCClient is a JSON-RPC 2.0 client over HTTP POST.
type RPCClient struct {
	cli *jrpc2.Client
	url string
}

// NewRPCClient creates a JSON-RPC client for url. A nil httpClient uses http.DefaultClient.
func NewRPCClient(url string, httpClient HTTPClient) *RPCClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	ch := jhttp.NewChannel(url, &jhttp.ChannelOptions{Client: httpClient})
	return &RPCClient{
		cli: jrpc2.NewClient(ch, nil),
		url: url,
	}
}

// Close releases the underlying client.
func (c *RPCClient) Close() error {
	return c.cli.Close()
}

// rpcErrorCode returns the JSON-RPC error code carried by err, if any.
func rpcErrorCode(err error) (jrpc2.Code, bool) {
	var rpcErr *jrpc2.Error
	if errors.As(err, &rpcErr) {
		return rpcErr.Code, true
	}
	return 0, false
}

// describe flattens a JSON-RPC error so the message and any error data
// (revert reasons, wallet messages) end up in the error text.
func describe(method string, err error) error {
	var rpcErr *jrpc2.Error
	if errors.As(err, &rpcErr) && len(rpcErr.Data) > 0 {
		return fmt.Errorf("%s: %w (%s)", method, err, string(rpcErr.Data))
	}
	return fmt.Errorf("%s: %w", method, err)
}

// bearerClient signs every outgoing request with a short-lived bridge token.
type bearerClient struct {
	next   HTTPClient
	tokens *BridgeTokens
}

// WithBearer wraps next so each request carries "Authorization: Bearer <jwt>".
func WithBearer(next HTTPClient, tokens *BridgeTokens) HTTPClient {
	if next == nil {
		next = http.DefaultClient
	}
	return &bearerClient{next: next, tokens: tokens}
}

func (c *bearerClient) Do(req *http.Request) (*http.Response, error) {
	token, _, err := c.tokens.Generate()
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return c.next.Do(req)
}

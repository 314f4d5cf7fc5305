// Package bitcoin implements a minimal JSON-RPC 1.0 client for bitcoind
// nodes. Every call is a single HTTP POST with basic auth; there are no
// retries and no connection state beyond the shared http.Client.
package bitcoin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/btcsuite/btcd/btcjson"
)

const (
	// requestID is the constant JSON-RPC request id; bitcoind echoes it back
	// but nothing correlates on it.
	requestID = "exporter"

	defaultTimeout = 10 * time.Second
)

// ErrEmptyResult is returned when the RPC envelope decodes cleanly but
// carries no result value.
var ErrEmptyResult = errors.New("rpc response has no result")

// Config carries the connection parameters shared by all calls.
type Config struct {
	// Host is the default target when a call does not name one.
	Host     string
	Port     int
	User     string
	Password string
	Timeout  time.Duration
}

// Client issues JSON-RPC calls to bitcoind pods with metrics instrumentation.
type Client struct {
	cfg        Config
	httpClient *http.Client
	rpcMetrics RPCMetrics
}

// NewClient constructs an instrumented RPC client.
func NewClient(cfg Config, rpcMetrics RPCMetrics) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		rpcMetrics: rpcMetrics,
	}
}

// GetBlockchainInfo returns the chain state of the node at host.
func (c *Client) GetBlockchainInfo(ctx context.Context, host string) (info *btcjson.GetBlockChainInfoResult, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("getblockchaininfo", err, started)
	}()

	raw, err := c.call(ctx, host, "getblockchaininfo")
	if err != nil {
		return nil, err
	}
	info = &btcjson.GetBlockChainInfoResult{}
	if err = json.Unmarshal(raw, info); err != nil {
		return nil, fmt.Errorf("decode getblockchaininfo result: %w", err)
	}
	return info, nil
}

// GetPeerInfo returns one entry per peer connected to the node at host.
func (c *Client) GetPeerInfo(ctx context.Context, host string) (peers []btcjson.GetPeerInfoResult, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("getpeerinfo", err, started)
	}()

	raw, err := c.call(ctx, host, "getpeerinfo")
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(raw, &peers); err != nil {
		return nil, fmt.Errorf("decode getpeerinfo result: %w", err)
	}
	return peers, nil
}

// GetNetworkInfo returns the p2p network state of the node at host.
func (c *Client) GetNetworkInfo(ctx context.Context, host string) (info *btcjson.GetNetworkInfoResult, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("getnetworkinfo", err, started)
	}()

	raw, err := c.call(ctx, host, "getnetworkinfo")
	if err != nil {
		return nil, err
	}
	info = &btcjson.GetNetworkInfoResult{}
	if err = json.Unmarshal(raw, info); err != nil {
		return nil, fmt.Errorf("decode getnetworkinfo result: %w", err)
	}
	return info, nil
}

// call performs one JSON-RPC 1.0 round trip and returns the raw result.
// Transport errors, non-2xx statuses, undecodable bodies, RPC-level errors
// and missing results all surface as a plain error; the caller decides what
// a failed call means.
func (c *Client) call(ctx context.Context, host, method string) (json.RawMessage, error) {
	if host == "" {
		host = c.cfg.Host
	}

	rpcReq := btcjson.Request{
		Jsonrpc: btcjson.RpcVersion1,
		ID:      requestID,
		Method:  method,
		Params:  []json.RawMessage{},
	}
	body, err := json.Marshal(rpcReq)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", method, err)
	}

	url := fmt.Sprintf("http://%s:%d", host, c.cfg.Port)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build %s http request: %w", method, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(c.cfg.User, c.cfg.Password)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("post %s to %s: %w", method, host, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%s to %s: unexpected status %s", method, host, resp.Status)
	}

	var envelope btcjson.Response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", method, err)
	}
	if envelope.Error != nil {
		return nil, fmt.Errorf("%s to %s: %w", method, host, envelope.Error)
	}
	if len(envelope.Result) == 0 || bytes.Equal(envelope.Result, []byte("null")) {
		return nil, ErrEmptyResult
	}
	return envelope.Result, nil
}

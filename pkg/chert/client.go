package chert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chert-network/chert-go/pkg/log"
	"github.com/chert-network/chert-go/pkg/sign"
)

// Client is the single point of contact with a Chert node. It owns one
// long-lived HTTP session, performs authenticated HTTP calls and JSON-RPC
// envelope calls, and guarantees callers see either a validated typed result
// or a taxonomy error - never a raw transport failure or malformed JSON.
//
// The Client is safe for concurrent use; independent calls multiplex over the
// shared session. Domain operations are exposed through the manager fields:
//
//	client, err := chert.NewClient(chert.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	account, err := client.Wallet.CreateAccount()
type Client struct {
	config   Config
	logger   log.Logger
	metrics  *Metrics
	provider sign.Provider

	mu      sync.Mutex
	session *http.Client

	// Wallet handles accounts, balances and transactions.
	Wallet *WalletManager
	// Privacy handles stealth addresses and private transactions.
	Privacy *PrivacyManager
	// Staking handles validators, delegations and rewards.
	Staking *StakingManager
	// Governance handles proposals and voting.
	Governance *GovernanceManager
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithLogger injects a logger. The default is a noop logger.
func WithLogger(logger log.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithMetrics injects a metrics recorder. The default records nothing.
func WithMetrics(metrics *Metrics) Option {
	return func(c *Client) { c.metrics = metrics }
}

// WithProvider injects a cryptographic provider. The default is the
// secp256k1 provider.
func WithProvider(provider sign.Provider) Option {
	return func(c *Client) { c.provider = provider }
}

// NewClient creates a client for the given configuration. The underlying
// session is opened lazily on first use; call Start to open it eagerly.
func NewClient(config Config, opts ...Option) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config:   config,
		logger:   log.NewNoopLogger(),
		provider: sign.NewSecp256k1Provider(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.WithName("chert")

	c.Wallet = &WalletManager{client: c}
	c.Privacy = &PrivacyManager{client: c}
	c.Staking = &StakingManager{client: c}
	c.Governance = &GovernanceManager{client: c}

	return c, nil
}

// Config returns a copy of the client configuration.
func (c *Client) Config() Config {
	return c.config
}

// Start opens the underlying session. It is idempotent and safe to call
// concurrently; the session is also opened lazily by the first call.
func (c *Client) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		c.session = &http.Client{Timeout: c.config.Timeout}
	}
}

// Close releases the underlying session's idle connections and clears the
// handle. A call issued after Close transparently re-opens the session; the
// client does not fail closed.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != nil {
		c.session.CloseIdleConnections()
		c.session = nil
	}
}

// httpSession returns the current session, opening it if needed.
func (c *Client) httpSession() *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		c.session = &http.Client{Timeout: c.config.Timeout}
	}
	return c.session
}

// Request performs a generic HTTP call against the configured endpoint and
// returns the envelope's data payload. The response body must be an API
// envelope ({"success": ..., "data": ..., "error": ...}); a non-2xx status or
// an unsuccessful envelope yields an API error, a malformed body yields a
// validation error tagged "response".
func (c *Client) Request(ctx context.Context, method, path string, body any, query url.Values) (json.RawMessage, error) {
	start := time.Now()
	data, err := c.doRequest(ctx, method, path, body, query)
	elapsed := time.Since(start)

	c.metrics.observe(path, outcomeLabel(err), elapsed)
	c.logger.Debug("http request", "method", method, "path", path, "duration", elapsed, "error", err)
	return data, err
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, query url.Values) (json.RawMessage, error) {
	endpoint := strings.TrimRight(c.config.Endpoint, "/") + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, NewValidationError("body", fmt.Sprintf("request body is not JSON-serializable: %v", err))
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, NewValidationError("path", fmt.Sprintf("invalid request target: %v", err))
	}
	c.setHeaders(req)

	status, respBody, err := c.send(req)
	if err != nil {
		return nil, err
	}

	if status < 200 || status > 299 {
		return nil, apiErrorFromBody(status, respBody)
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, NewValidationError("response", fmt.Sprintf("invalid response format: %v", err))
	}
	if !envelope.Success {
		if envelope.Error != nil {
			return nil, NewAPIError(
				defaultString(envelope.Error.Message, "API request failed"),
				envelope.Error.Code,
				0,
				map[string]any{"message": envelope.Error.Message, "code": envelope.Error.Code},
			)
		}
		return nil, NewAPIError("API request failed", "API_ERROR", 0, nil)
	}

	return envelope.Data, nil
}

// Call performs a JSON-RPC 2.0 call against the configured endpoint and
// returns the raw result. A response carrying an error descriptor yields an
// API error with the descriptor's code, regardless of any result field; a
// response carrying neither result nor error is a protocol violation and
// yields a validation error tagged "rpc_response".
func (c *Client) Call(ctx context.Context, method string, params []any) (json.RawMessage, error) {
	start := time.Now()
	result, err := c.doCall(ctx, method, params)
	elapsed := time.Since(start)

	c.metrics.observe(method, outcomeLabel(err), elapsed)
	c.logger.Debug("rpc call", "method", method, "duration", elapsed, "error", err)
	return result, err
}

// CallInto performs a JSON-RPC call and coerces the result into out, which
// must be a pointer. Coercion failure yields a validation error tagged
// "rpc_response" rather than a silent pass-through.
func (c *Client) CallInto(ctx context.Context, method string, params []any, out any) error {
	result, err := c.Call(ctx, method, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(result, out); err != nil {
		return NewValidationError("rpc_response", fmt.Sprintf("invalid RPC result shape: %v", err))
	}
	return nil
}

func (c *Client) doCall(ctx context.Context, method string, params []any) (json.RawMessage, error) {
	request := rpcRequest{
		Version: rpcVersion,
		Method:  method,
		Params:  params,
		ID:      uint64(uuid.New().ID()),
	}
	encoded, err := json.Marshal(request)
	if err != nil {
		return nil, NewValidationError("params", fmt.Sprintf("request params are not JSON-serializable: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint, bytes.NewReader(encoded))
	if err != nil {
		return nil, NewValidationError("endpoint", fmt.Sprintf("invalid endpoint: %v", err))
	}
	c.setHeaders(req)

	status, respBody, err := c.send(req)
	if err != nil {
		return nil, err
	}

	// The RPC envelope is not guaranteed well-formed on transport failure,
	// so the body is not parsed here.
	if status < 200 || status > 299 {
		return nil, NewAPIError(fmt.Sprintf("HTTP %d: RPC call failed", status), "RPC_ERROR", status, nil)
	}

	var response rpcResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, NewValidationError("rpc_response", fmt.Sprintf("invalid RPC response format: %v", err))
	}

	if response.Error != nil {
		return nil, NewAPIError(
			defaultString(response.Error.Message, "RPC call failed"),
			response.Error.CodeString(),
			0,
			response.Error.asMap(),
		)
	}

	if len(response.Result) == 0 || string(response.Result) == "null" {
		return nil, NewValidationError("rpc_response", "response carries neither result nor error")
	}

	return response.Result, nil
}

// send executes the request over the shared session and normalizes every
// connection-level failure into a network error.
func (c *Client) send(req *http.Request) (int, []byte, error) {
	resp, err := c.httpSession().Do(req)
	if err != nil {
		return 0, nil, NewNetworkError(fmt.Sprintf("request to %s failed", req.URL.Host), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, NewNetworkError("failed to read response body", err)
	}
	return resp.StatusCode, body, nil
}

// setHeaders attaches the JSON content headers, the bearer credential when an
// API key is configured, and any configured extra headers. Extra headers are
// applied last so they override built-ins on collision.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}
	for name, value := range c.config.Headers {
		req.Header.Set(name, value)
	}
}

// NetworkStatus returns the current network status.
func (c *Client) NetworkStatus(ctx context.Context) (*NetworkStatus, error) {
	var status NetworkStatus
	if err := c.CallInto(ctx, "getNetworkStatus", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// LatestBlock returns the most recent block.
func (c *Client) LatestBlock(ctx context.Context) (*Block, error) {
	var block Block
	if err := c.CallInto(ctx, "getLatestBlock", nil, &block); err != nil {
		return nil, err
	}
	return &block, nil
}

// BlockByHeight returns the block at the given height.
func (c *Client) BlockByHeight(ctx context.Context, height uint64) (*Block, error) {
	var block Block
	if err := c.CallInto(ctx, "getBlock", []any{height}, &block); err != nil {
		return nil, err
	}
	return &block, nil
}

// TransactionByHash returns the transaction with the given hash.
func (c *Client) TransactionByHash(ctx context.Context, txHash string) (*Transaction, error) {
	if txHash == "" {
		return nil, NewValidationError("tx_hash", "transaction hash cannot be empty")
	}
	var tx Transaction
	if err := c.CallInto(ctx, "getTransaction", []any{txHash}, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// Connected reports whether the node answers a status query.
func (c *Client) Connected(ctx context.Context) bool {
	_, err := c.NetworkStatus(ctx)
	return err == nil
}

// apiErrorFromBody builds the API error for a non-success HTTP status,
// extracting the server's error descriptor from the body when one is present.
func apiErrorFromBody(status int, body []byte) *Error {
	message := "Unknown API error"
	code := "API_ERROR"

	var probe errorProbe
	if err := json.Unmarshal(body, &probe); err == nil && probe.Error != nil {
		message = defaultString(probe.Error.Message, message)
		code = defaultString(probe.Error.Code, code)
	}

	data := map[string]any{}
	var payload any
	if err := json.Unmarshal(body, &payload); err == nil {
		data["response"] = payload
	}
	return NewAPIError(message, code, status, data)
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

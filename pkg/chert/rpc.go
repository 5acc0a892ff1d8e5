package chert

import (
	"encoding/json"
	"fmt"
)

// rpcVersion is the protocol tag carried by every JSON-RPC request.
const rpcVersion = "2.0"

// rpcRequest is the JSON-RPC 2.0 request envelope:
// {"jsonrpc": "2.0", "method": ..., "params": [...], "id": ...}
type rpcRequest struct {
	Version string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params,omitempty"`
	ID      uint64 `json:"id"`
}

// rpcResponse is the JSON-RPC 2.0 response envelope. Exactly one of Result
// and Error is meaningful; a response carrying neither is a protocol
// violation and is rejected by the transport.
type rpcResponse struct {
	Version string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
	ID      json.RawMessage `json:"id"`
}

// rpcError is the error descriptor inside an rpcResponse. Code may arrive as
// a JSON number or string; it is kept raw and stringified on demand.
type rpcError struct {
	Code    json.RawMessage `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// CodeString returns the error code as a string regardless of its wire type.
func (e *rpcError) CodeString() string {
	if len(e.Code) == 0 {
		return "RPC_ERROR"
	}
	var s string
	if err := json.Unmarshal(e.Code, &s); err == nil {
		return s
	}
	var n int64
	if err := json.Unmarshal(e.Code, &n); err == nil {
		return fmt.Sprintf("%d", n)
	}
	return string(e.Code)
}

// asMap converts the descriptor into the structured Data payload attached to
// the resulting API error.
func (e *rpcError) asMap() map[string]any {
	m := map[string]any{
		"code":    e.CodeString(),
		"message": e.Message,
	}
	if len(e.Data) > 0 {
		var data any
		if err := json.Unmarshal(e.Data, &data); err == nil {
			m["data"] = data
		}
	}
	return m
}

// apiEnvelope is the generic HTTP response wrapper used by non-RPC calls:
// {"success": bool, "data": ..., "error": {"message": ..., "code": ...}}.
// Distinct from the JSON-RPC envelope; both are supported by the transport.
type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *apiErrorBody   `json:"error,omitempty"`
}

// apiErrorBody is the error descriptor inside an apiEnvelope or a non-2xx
// response body.
type apiErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// errorProbe matches `{"error": {...}}` bodies on non-success HTTP responses.
type errorProbe struct {
	Error *apiErrorBody `json:"error,omitempty"`
}

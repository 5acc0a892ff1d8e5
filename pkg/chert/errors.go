package chert

import (
	"errors"
	"fmt"
	"time"
)

// Kind identifies the category of an SDK error. Every failure surfaced by the
// SDK is one of these kinds, carrying a stable machine-readable code that is
// suitable for programmatic branching.
type Kind uint8

const (
	KindNetwork Kind = iota
	KindAPI
	KindValidation
	KindTransaction
	KindWallet
	KindPrivacy
	KindStaking
	KindGovernance
	KindTimeout
	KindConfig
	KindCrypto
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindAPI:
		return "api"
	case KindValidation:
		return "validation"
	case KindTransaction:
		return "transaction"
	case KindWallet:
		return "wallet"
	case KindPrivacy:
		return "privacy"
	case KindStaking:
		return "staking"
	case KindGovernance:
		return "governance"
	case KindTimeout:
		return "timeout"
	case KindConfig:
		return "config"
	case KindCrypto:
		return "crypto"
	default:
		return "unknown"
	}
}

// Error is the single error type surfaced by the SDK. The transport never
// lets a raw network or decoding error escape; everything is normalized into
// an *Error before crossing into caller code.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	// Data carries optional structured context, e.g. the raw error payload
	// returned by the server.
	Data map[string]any

	// Status is the HTTP status code for API errors, zero otherwise.
	Status int
	// Field names the offending input or response field for validation errors.
	Field string
	// TxHash identifies the transaction for transaction errors, when known.
	TxHash string

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error of the same kind and code.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Kind == other.Kind && (other.Code == "" || e.Code == other.Code)
}

// AsError extracts an *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var ce *Error
	ok := errors.As(err, &ce)
	return ce, ok
}

// IsKind reports whether err is an SDK error of the given kind.
func IsKind(err error, kind Kind) bool {
	ce, ok := AsError(err)
	return ok && ce.Kind == kind
}

// NewNetworkError wraps a connection-level failure (DNS, timeout, reset).
func NewNetworkError(message string, cause error) *Error {
	return &Error{Kind: KindNetwork, Code: "NETWORK_ERROR", Message: message, cause: cause}
}

// NewAPIError reports a non-success result at the HTTP or RPC-envelope level.
// code is the server-supplied error code, or RPC_ERROR/API_ERROR when the
// server did not supply one. status is the HTTP status code, zero if the
// failure was reported inside a 2xx envelope.
func NewAPIError(message, code string, status int, data map[string]any) *Error {
	if code == "" {
		code = "API_ERROR"
	}
	return &Error{Kind: KindAPI, Code: code, Message: message, Status: status, Data: data}
}

// NewValidationError reports malformed caller input or a malformed server response.
func NewValidationError(field, message string) *Error {
	return &Error{
		Kind:    KindValidation,
		Code:    "VALIDATION_ERROR",
		Message: fmt.Sprintf("validation error in %s: %s", field, message),
		Field:   field,
		Data:    map[string]any{"field": field},
	}
}

// NewTransactionError reports an invalid transaction response or a terminal
// failure status. txHash may be empty when the hash is not known yet.
func NewTransactionError(message, txHash string) *Error {
	e := &Error{Kind: KindTransaction, Code: "TRANSACTION_ERROR", Message: message, TxHash: txHash}
	if txHash != "" {
		e.Data = map[string]any{"tx_hash": txHash}
	}
	return e
}

// NewWalletError reports a key derivation or account construction failure.
func NewWalletError(message string, cause error) *Error {
	return &Error{Kind: KindWallet, Code: "WALLET_ERROR", Message: message, cause: cause}
}

// NewPrivacyError reports a stealth-key or private-transaction failure.
func NewPrivacyError(message string, cause error) *Error {
	return &Error{Kind: KindPrivacy, Code: "PRIVACY_ERROR", Message: message, cause: cause}
}

// NewStakingError reports a malformed response from a staking call.
func NewStakingError(message string) *Error {
	return &Error{Kind: KindStaking, Code: "STAKING_ERROR", Message: message}
}

// NewGovernanceError reports a malformed response from a governance call.
func NewGovernanceError(message string) *Error {
	return &Error{Kind: KindGovernance, Code: "GOVERNANCE_ERROR", Message: message}
}

// NewTimeoutError reports an exhausted wait budget for a named operation.
func NewTimeoutError(operation string, budget time.Duration) *Error {
	return &Error{
		Kind:    KindTimeout,
		Code:    "TIMEOUT_ERROR",
		Message: fmt.Sprintf("operation %q timed out after %s", operation, budget),
		Data:    map[string]any{"operation": operation, "timeout": budget.String()},
	}
}

// NewConfigError reports an invalid client configuration.
func NewConfigError(message string, cause error) *Error {
	return &Error{Kind: KindConfig, Code: "CONFIG_ERROR", Message: message, cause: cause}
}

// NewCryptoError reports a cryptographic provider failure.
func NewCryptoError(message string, cause error) *Error {
	return &Error{Kind: KindCrypto, Code: "CRYPTO_ERROR", Message: message, cause: cause}
}

package chert

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// privateKeyHexLen is the required length of a hex-encoded private key
	// (32 bytes).
	privateKeyHexLen = 64
	// publicKeyHexLen is the required length of a hex-encoded compressed
	// public key (33 bytes).
	publicKeyHexLen = 66

	defaultWaitTimeout  = 60 * time.Second
	defaultWaitInterval = 2 * time.Second
)

// WalletManager handles accounts, balances and transactions. It is a
// stateless facade over the client's transport; all chain state is fetched
// fresh on every call.
type WalletManager struct {
	client *Client
}

// CreateAccount creates a new account with a freshly generated key pair.
func (m *WalletManager) CreateAccount() (*Account, error) {
	privateKey, publicKey, err := m.client.provider.GenerateKeyPair()
	if err != nil {
		return nil, NewWalletError("failed to create account", err)
	}

	address, err := GenerateAddress(publicKey)
	if err != nil {
		return nil, NewWalletError("failed to derive address", err)
	}

	return &Account{
		Address:    address,
		PublicKey:  publicKey,
		PrivateKey: privateKey,
	}, nil
}

// ImportAccount derives an account from a hex-encoded private key. The key
// must be exactly 64 hex characters; anything else is rejected before any
// derivation is attempted.
func (m *WalletManager) ImportAccount(privateKey string) (*Account, error) {
	if len(privateKey) != privateKeyHexLen {
		return nil, NewValidationError("private_key", "private key must be 64 hex characters")
	}
	if _, err := hex.DecodeString(privateKey); err != nil {
		return nil, NewValidationError("private_key", "invalid hex format")
	}

	publicKey, err := m.client.provider.DerivePublicKey(privateKey)
	if err != nil {
		return nil, NewWalletError("failed to import account", err)
	}

	address, err := GenerateAddress(publicKey)
	if err != nil {
		return nil, NewWalletError("failed to derive address", err)
	}

	return &Account{
		Address:    address,
		PublicKey:  publicKey,
		PrivateKey: privateKey,
	}, nil
}

// WatchOnlyAccount creates an account from a public key alone. The account
// can be queried but is rejected by every operation requiring a signature.
func (m *WalletManager) WatchOnlyAccount(publicKey string) (*Account, error) {
	if len(publicKey) != publicKeyHexLen {
		return nil, NewValidationError("public_key", "public key must be 66 hex characters")
	}
	if _, err := hex.DecodeString(publicKey); err != nil {
		return nil, NewValidationError("public_key", "invalid hex format")
	}

	address, err := GenerateAddress(publicKey)
	if err != nil {
		return nil, err
	}

	return &Account{
		Address:   address,
		PublicKey: publicKey,
	}, nil
}

// Balance returns the balance for an address.
func (m *WalletManager) Balance(ctx context.Context, address string) (*Balance, error) {
	if address == "" {
		return nil, NewValidationError("address", "address cannot be empty")
	}

	var balance Balance
	if err := m.client.CallInto(ctx, "getBalance", []any{address}, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

// SendTransaction signs and submits a transaction from the given account and
// returns the transaction hash. Watch-only accounts are rejected.
func (m *WalletManager) SendTransaction(ctx context.Context, req TransactionRequest, account Account) (string, error) {
	if account.WatchOnly() {
		return "", NewWalletError("account does not have a private key", nil)
	}
	if err := validateTransactionRequest(req); err != nil {
		return "", err
	}

	signature, err := m.client.provider.Sign(signingPayload(req), account.PrivateKey)
	if err != nil {
		return "", NewCryptoError("failed to sign transaction", err)
	}

	txData := map[string]any{
		"sender":    account.Address,
		"recipient": req.To,
		"amount":    req.Amount,
		"fee":       req.Fee,
		"nonce":     req.Nonce,
		"signature": signature,
	}
	if req.Memo != "" {
		txData["memo"] = req.Memo
	}

	var result struct {
		Hash string `json:"hash"`
	}
	if err := m.client.CallInto(ctx, "sendTransaction", []any{txData}, &result); err != nil {
		return "", err
	}
	if result.Hash == "" {
		return "", NewTransactionError("invalid transaction response: missing hash", "")
	}
	return result.Hash, nil
}

// EstimateFee returns a fee estimate for the request.
func (m *WalletManager) EstimateFee(ctx context.Context, req TransactionRequest) (*Fee, error) {
	if err := validateTransactionRequest(req); err != nil {
		return nil, err
	}

	var fee Fee
	if err := m.client.CallInto(ctx, "estimateFee", []any{req}, &fee); err != nil {
		return nil, err
	}
	return &fee, nil
}

// WaitForTransaction polls for the transaction at a fixed interval until it
// reaches a terminal state or the timeout elapses. A confirmed transaction is
// returned; a failed or rejected one yields a transaction error. When the
// budget is exhausted without the transaction reaching a terminal state the
// method returns (nil, nil): absence, not an error, so the caller can
// re-check later. Zero timeout and interval fall back to 60s and 2s.
func (m *WalletManager) WaitForTransaction(ctx context.Context, txHash string, timeout, interval time.Duration) (*Transaction, error) {
	if txHash == "" {
		return nil, NewValidationError("tx_hash", "transaction hash cannot be empty")
	}
	if timeout <= 0 {
		timeout = defaultWaitTimeout
	}
	if interval <= 0 {
		interval = defaultWaitInterval
	}

	start := time.Now()
	for time.Since(start) < timeout {
		tx, err := m.client.TransactionByHash(ctx, txHash)
		if err == nil {
			switch tx.Status {
			case TxStatusConfirmed:
				return tx, nil
			case TxStatusFailed, TxStatusRejected:
				return nil, NewTransactionError(fmt.Sprintf("transaction %s", tx.Status), txHash)
			}
		}
		// Not found yet or still pending: keep polling.

		select {
		case <-ctx.Done():
			return nil, NewNetworkError("transaction wait cancelled", ctx.Err())
		case <-time.After(interval):
		}
	}

	return nil, nil
}

// signingPayload builds the canonical byte string covered by a transaction
// signature: recipient, amount, fee, nonce, and memo, in that order.
func signingPayload(req TransactionRequest) []byte {
	payload := fmt.Sprintf("%s%s%s%d", req.To, req.Amount, req.Fee, req.Nonce)
	if req.Memo != "" {
		payload += req.Memo
	}
	return []byte(payload)
}

// validateTransactionRequest fails fast on malformed requests before any
// network call. Amounts and fees must be parseable decimal strings; they stay
// strings at every boundary to avoid floating-point precision loss.
func validateTransactionRequest(req TransactionRequest) error {
	if req.To == "" {
		return NewValidationError("to", "recipient address cannot be empty")
	}
	if err := validateDecimal("amount", req.Amount); err != nil {
		return err
	}
	return validateDecimal("fee", req.Fee)
}

// validateDecimal checks that value is a non-empty, parseable decimal string.
func validateDecimal(field, value string) error {
	if value == "" {
		return NewValidationError(field, field+" cannot be empty")
	}
	if _, err := decimal.NewFromString(value); err != nil {
		return NewValidationError(field, "invalid decimal amount")
	}
	return nil
}

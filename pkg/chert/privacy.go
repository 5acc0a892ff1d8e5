package chert

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
)

// PrivacyManager handles stealth addresses and private transactions.
// Memo encryption and shared-secret derivation are delegated to the
// cryptographic provider; this manager never touches primitives itself.
type PrivacyManager struct {
	client *Client
}

// GenerateStealthKeys creates the two independent key pairs (view, spend)
// backing a stealth account.
func (m *PrivacyManager) GenerateStealthKeys() (*StealthKeys, error) {
	viewSecret, viewPublic, err := m.client.provider.GenerateKeyPair()
	if err != nil {
		return nil, NewPrivacyError("failed to generate view key pair", err)
	}
	spendSecret, spendPublic, err := m.client.provider.GenerateKeyPair()
	if err != nil {
		return nil, NewPrivacyError("failed to generate spend key pair", err)
	}

	return &StealthKeys{
		ViewKeyPair:  KeyPair{Public: viewPublic, Secret: viewSecret},
		SpendKeyPair: KeyPair{Public: spendPublic, Secret: spendSecret},
	}, nil
}

// CreateStealthAccount builds a stealth account from a view key and a spend
// public key. The address is a deterministic hash of the two keys: deriving
// it twice from the same pair yields identical output.
func (m *PrivacyManager) CreateStealthAccount(viewKey, spendPublicKey string, keys *StealthKeys) (*StealthAccount, error) {
	if viewKey == "" || spendPublicKey == "" {
		return nil, NewValidationError("keys", "view key and spend public key are required")
	}

	digest := sha256.Sum256([]byte(viewKey + spendPublicKey))
	address := stealthAddressPrefix + hex.EncodeToString(digest[:])[:addressHashLen]

	return &StealthAccount{
		Address:        address,
		ViewKey:        viewKey,
		SpendPublicKey: spendPublicKey,
		Keys:           keys,
	}, nil
}

// DeriveSharedSecret derives the symmetric secret shared between a local view
// private key and a recipient's view public key. Both parties derive the same
// secret from their own half of the exchange.
func (m *PrivacyManager) DeriveSharedSecret(viewPrivateKey, recipientViewPublicKey string) ([]byte, error) {
	if viewPrivateKey == "" || recipientViewPublicKey == "" {
		return nil, NewValidationError("keys", "view keys are required")
	}

	secret, err := m.client.provider.DeriveSharedSecret(viewPrivateKey, recipientViewPublicKey)
	if err != nil {
		return nil, NewCryptoError("failed to derive shared secret", err)
	}
	return secret, nil
}

// EncryptMemo seals a memo with the shared secret using the provider's
// authenticated cipher and returns the ciphertext hex-encoded.
func (m *PrivacyManager) EncryptMemo(memo string, sharedSecret []byte) (string, error) {
	sealed, err := m.client.provider.Encrypt([]byte(memo), sharedSecret)
	if err != nil {
		return "", NewCryptoError("failed to encrypt memo", err)
	}
	return hex.EncodeToString(sealed), nil
}

// DecryptMemo opens a hex-encoded memo ciphertext produced by EncryptMemo.
// Tampered ciphertexts fail authentication.
func (m *PrivacyManager) DecryptMemo(encryptedMemo string, sharedSecret []byte) (string, error) {
	sealed, err := hex.DecodeString(encryptedMemo)
	if err != nil {
		return "", NewValidationError("encrypted_memo", "invalid hex format")
	}

	plaintext, err := m.client.provider.Decrypt(sealed, sharedSecret)
	if err != nil {
		return "", NewCryptoError("failed to decrypt memo", err)
	}
	return string(plaintext), nil
}

// SendPrivateTransaction submits a private transaction and returns its
// transaction ID. Ephemeral keys are generated per transaction and the memo,
// when present, is encrypted under the sender/recipient shared secret.
func (m *PrivacyManager) SendPrivateTransaction(ctx context.Context, req PrivateTransactionRequest, recipientViewKey, recipientSpendKey string) (string, error) {
	if recipientViewKey == "" || recipientSpendKey == "" {
		return "", NewValidationError("recipient_keys", "recipient view and spend keys are required")
	}
	if err := validateAmounts(req.Amount, req.Fee); err != nil {
		return "", err
	}

	ephemeralKeys, err := m.GenerateStealthKeys()
	if err != nil {
		return "", err
	}

	sharedSecret, err := m.DeriveSharedSecret(req.SenderKeys.ViewKeyPair.Secret, recipientViewKey)
	if err != nil {
		return "", err
	}

	txData := map[string]any{
		"sender_keys":         req.SenderKeys,
		"recipient_view_key":  recipientViewKey,
		"recipient_spend_key": recipientSpendKey,
		"ephemeral_keys":      ephemeralKeys,
		"amount":              req.Amount,
		"fee":                 req.Fee,
		"privacy_level":       req.PrivacyLevel,
		"nonce":               req.Nonce,
	}
	if req.Memo != "" {
		encryptedMemo, err := m.EncryptMemo(req.Memo, sharedSecret)
		if err != nil {
			return "", err
		}
		txData["encrypted_memo"] = encryptedMemo
	}

	var result struct {
		TxID string `json:"tx_id"`
	}
	if err := m.client.CallInto(ctx, "sendPrivateTransaction", []any{txData}, &result); err != nil {
		return "", err
	}
	if result.TxID == "" {
		return "", NewPrivacyError("invalid private transaction response: missing tx_id", nil)
	}
	return result.TxID, nil
}

// validateAmounts checks that amount and fee are parseable decimal strings.
func validateAmounts(amount, fee string) error {
	if err := validateDecimal("amount", amount); err != nil {
		return err
	}
	return validateDecimal("fee", fee)
}

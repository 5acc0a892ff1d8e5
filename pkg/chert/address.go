package chert

import (
	"encoding/hex"
	"fmt"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

const (
	// addressPrefix tags standard account addresses.
	addressPrefix = "chert_"
	// stealthAddressPrefix tags stealth account addresses.
	stealthAddressPrefix = "stealth_"
	// addressHashLen is the number of hash hex characters kept in an address.
	addressHashLen = 40
)

// GenerateAddress derives the account address for a hex-encoded public key.
// The address is a pure function of the public key: the same key always
// yields the same address.
func GenerateAddress(publicKey string) (string, error) {
	keyBytes, err := hex.DecodeString(publicKey)
	if err != nil {
		return "", NewValidationError("public_key", fmt.Sprintf("invalid hex format: %v", err))
	}
	digest := hex.EncodeToString(ethcrypto.Keccak256(keyBytes))
	return addressPrefix + digest[:addressHashLen], nil
}

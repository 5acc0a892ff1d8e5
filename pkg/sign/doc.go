// Package sign supplies the cryptographic primitives consumed by the SDK.
//
// The Provider interface is the narrow contract the rest of the SDK depends on:
// key generation, public key derivation, payload signing, shared-secret
// derivation, and authenticated memo encryption. The SDK never implements
// these primitives anywhere else.
//
// Secp256k1Provider is the production implementation. Keys are secp256k1
// ECDSA keys (go-ethereum crypto), signatures are 65-byte recoverable
// signatures over the Keccak256 hash of the payload, shared secrets are
// derived via ECDH, and memo encryption uses ChaCha20-Poly1305.
//
// Example:
//
//	provider := sign.NewSecp256k1Provider()
//	priv, pub, err := provider.GenerateKeyPair()
//	if err != nil {
//		return err
//	}
//	sig, err := provider.Sign([]byte("payload"), priv)
package sign

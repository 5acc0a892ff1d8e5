package sign

import (
	"encoding/hex"
	"encoding/json"
)

// Provider is the narrow cryptographic contract consumed by the SDK.
// Private and public keys cross this boundary as hex-encoded strings,
// matching how the chain represents key material on the wire.
type Provider interface {
	// GenerateKeyPair creates a fresh key pair and returns both halves hex-encoded.
	GenerateKeyPair() (privateKey, publicKey string, err error)
	// DerivePublicKey derives the public key for a hex-encoded private key.
	// The derivation is deterministic.
	DerivePublicKey(privateKey string) (string, error)
	// Sign produces a signature over the given payload with the private key.
	Sign(payload []byte, privateKey string) (Signature, error)
	// DeriveSharedSecret derives a symmetric secret from a local private key
	// and a peer public key. Both sides of an exchange derive the same secret.
	DeriveSharedSecret(privateKey, peerPublicKey string) ([]byte, error)
	// Encrypt seals the plaintext with an authenticated cipher keyed by secret.
	Encrypt(plaintext, secret []byte) ([]byte, error)
	// Decrypt opens a ciphertext produced by Encrypt. Tampered or truncated
	// ciphertexts fail authentication and return an error.
	Decrypt(ciphertext, secret []byte) ([]byte, error)
}

// Signature is a raw cryptographic signature.
type Signature []byte

// String implements the fmt.Stringer interface, encoding the signature as hex.
func (s Signature) String() string {
	return hex.EncodeToString(s)
}

// MarshalJSON implements the json.Marshaler interface, encoding the signature
// as a hex string.
func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (s *Signature) UnmarshalJSON(data []byte) error {
	var hexStr string
	if err := json.Unmarshal(data, &hexStr); err != nil {
		return err
	}
	decoded, err := hex.DecodeString(hexStr)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

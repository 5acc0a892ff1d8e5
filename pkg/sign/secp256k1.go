package sign

import (
	"crypto/ecdsa"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/chacha20poly1305"
)

var _ Provider = (*Secp256k1Provider)(nil)

// Secp256k1Provider implements Provider with secp256k1 ECDSA keys,
// Keccak256-prehashed recoverable signatures, ECDH shared secrets,
// and ChaCha20-Poly1305 authenticated encryption.
//
// Public keys are 33-byte compressed points, hex-encoded (66 characters).
// Private keys are 32-byte scalars, hex-encoded (64 characters).
type Secp256k1Provider struct{}

// NewSecp256k1Provider creates the production cryptographic provider.
func NewSecp256k1Provider() *Secp256k1Provider {
	return &Secp256k1Provider{}
}

// GenerateKeyPair creates a fresh secp256k1 key pair.
func (p *Secp256k1Provider) GenerateKeyPair() (string, string, error) {
	key, err := ethcrypto.GenerateKey()
	if err != nil {
		return "", "", fmt.Errorf("could not generate secp256k1 key: %w", err)
	}

	privateKey := hex.EncodeToString(ethcrypto.FromECDSA(key))
	publicKey := hex.EncodeToString(ethcrypto.CompressPubkey(&key.PublicKey))
	return privateKey, publicKey, nil
}

// DerivePublicKey derives the compressed public key for a hex-encoded private key.
func (p *Secp256k1Provider) DerivePublicKey(privateKey string) (string, error) {
	key, err := parsePrivateKey(privateKey)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(ethcrypto.CompressPubkey(&key.PublicKey)), nil
}

// Sign hashes the payload with Keccak256 and produces a 65-byte recoverable
// signature. V is adjusted from 0/1 to 27/28 for chain compatibility.
func (p *Secp256k1Provider) Sign(payload []byte, privateKey string) (Signature, error) {
	key, err := parsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	hash := ethcrypto.Keccak256(payload)
	sig, err := ethcrypto.Sign(hash, key)
	if err != nil {
		return nil, fmt.Errorf("could not sign payload: %w", err)
	}
	if sig[64] < 27 {
		sig[64] += 27
	}
	return Signature(sig), nil
}

// DeriveSharedSecret performs ECDH between the local private key and the peer
// public key, then hashes the shared point's X coordinate down to a 32-byte
// symmetric secret. The derivation is symmetric: secret(aPriv, bPub) equals
// secret(bPriv, aPub).
func (p *Secp256k1Provider) DeriveSharedSecret(privateKey, peerPublicKey string) ([]byte, error) {
	key, err := parsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	pubBytes, err := hex.DecodeString(strings.TrimPrefix(peerPublicKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("could not decode peer public key: %w", err)
	}
	peer, err := ethcrypto.DecompressPubkey(pubBytes)
	if err != nil {
		return nil, fmt.Errorf("could not parse peer public key: %w", err)
	}

	sx, _ := ethcrypto.S256().ScalarMult(peer.X, peer.Y, key.D.Bytes())
	return ethcrypto.Keccak256(sx.FillBytes(make([]byte, 32))), nil
}

// Encrypt seals the plaintext with ChaCha20-Poly1305. The random nonce is
// prepended to the returned ciphertext.
func (p *Secp256k1Provider) Encrypt(plaintext, secret []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(secret)
	if err != nil {
		return nil, fmt.Errorf("could not build cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("could not generate nonce: %w", err)
	}
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt opens a ciphertext produced by Encrypt.
func (p *Secp256k1Provider) Decrypt(ciphertext, secret []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(secret)
	if err != nil {
		return nil, fmt.Errorf("could not build cipher: %w", err)
	}
	if len(ciphertext) < aead.NonceSize() {
		return nil, fmt.Errorf("ciphertext shorter than nonce")
	}

	nonce, sealed := ciphertext[:aead.NonceSize()], ciphertext[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("could not authenticate ciphertext: %w", err)
	}
	return plaintext, nil
}

func parsePrivateKey(privateKey string) (*ecdsa.PrivateKey, error) {
	key, err := ethcrypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("could not parse private key: %w", err)
	}
	return key, nil
}

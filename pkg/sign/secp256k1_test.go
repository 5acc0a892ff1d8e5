package sign

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrivateKey = "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"

func TestGenerateKeyPair(t *testing.T) {
	provider := NewSecp256k1Provider()

	privateKey, publicKey, err := provider.GenerateKeyPair()
	require.NoError(t, err)

	assert.Len(t, privateKey, 64)
	assert.Len(t, publicKey, 66)

	_, err = hex.DecodeString(privateKey)
	assert.NoError(t, err)
	raw, err := hex.DecodeString(publicKey)
	require.NoError(t, err)
	// Compressed point prefix is 0x02 or 0x03.
	assert.Contains(t, []byte{0x02, 0x03}, raw[0])
}

func TestDerivePublicKey(t *testing.T) {
	provider := NewSecp256k1Provider()

	privateKey, publicKey, err := provider.GenerateKeyPair()
	require.NoError(t, err)

	derived, err := provider.DerivePublicKey(privateKey)
	require.NoError(t, err)
	assert.Equal(t, publicKey, derived)

	again, err := provider.DerivePublicKey(privateKey)
	require.NoError(t, err)
	assert.Equal(t, derived, again)
}

func TestDerivePublicKeyRejectsBadInput(t *testing.T) {
	provider := NewSecp256k1Provider()

	for _, key := range []string{"", "abc", "zz71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"} {
		_, err := provider.DerivePublicKey(key)
		assert.Error(t, err)
	}
}

func TestSignProducesRecoverableSignature(t *testing.T) {
	provider := NewSecp256k1Provider()
	payload := []byte("chert_recipient1.250.013")

	sig, err := provider.Sign(payload, testPrivateKey)
	require.NoError(t, err)
	require.Len(t, sig, 65)
	assert.Contains(t, []byte{27, 28}, sig[64])

	// Recovering the signer's public key must yield the key pair's public key.
	recovery := make([]byte, 65)
	copy(recovery, sig)
	recovery[64] -= 27

	hash := ethcrypto.Keccak256(payload)
	recovered, err := ethcrypto.SigToPub(hash, recovery)
	require.NoError(t, err)

	expected, err := provider.DerivePublicKey(testPrivateKey)
	require.NoError(t, err)
	assert.Equal(t, expected, hex.EncodeToString(ethcrypto.CompressPubkey(recovered)))
}

func TestSignIsDeterministicPerPayload(t *testing.T) {
	provider := NewSecp256k1Provider()

	first, err := provider.Sign([]byte("payload"), testPrivateKey)
	require.NoError(t, err)
	second, err := provider.Sign([]byte("payload"), testPrivateKey)
	require.NoError(t, err)
	other, err := provider.Sign([]byte("different"), testPrivateKey)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
}

func TestSignatureJSONRoundTrip(t *testing.T) {
	provider := NewSecp256k1Provider()

	sig, err := provider.Sign([]byte("payload"), testPrivateKey)
	require.NoError(t, err)

	encoded, err := json.Marshal(sig)
	require.NoError(t, err)
	assert.JSONEq(t, `"`+sig.String()+`"`, string(encoded))

	var decoded Signature
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, sig, decoded)
}

func TestDeriveSharedSecretSymmetry(t *testing.T) {
	provider := NewSecp256k1Provider()

	alicePriv, alicePub, err := provider.GenerateKeyPair()
	require.NoError(t, err)
	bobPriv, bobPub, err := provider.GenerateKeyPair()
	require.NoError(t, err)

	fromAlice, err := provider.DeriveSharedSecret(alicePriv, bobPub)
	require.NoError(t, err)
	fromBob, err := provider.DeriveSharedSecret(bobPriv, alicePub)
	require.NoError(t, err)

	assert.Equal(t, fromAlice, fromBob)
	assert.Len(t, fromAlice, 32)

	// A third party derives a different secret.
	evePriv, _, err := provider.GenerateKeyPair()
	require.NoError(t, err)
	fromEve, err := provider.DeriveSharedSecret(evePriv, bobPub)
	require.NoError(t, err)
	assert.NotEqual(t, fromAlice, fromEve)
}

func TestDeriveSharedSecretRejectsBadPeerKey(t *testing.T) {
	provider := NewSecp256k1Provider()

	_, err := provider.DeriveSharedSecret(testPrivateKey, "not-hex")
	assert.Error(t, err)

	_, err = provider.DeriveSharedSecret(testPrivateKey, "02")
	assert.Error(t, err)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	provider := NewSecp256k1Provider()

	alicePriv, _, err := provider.GenerateKeyPair()
	require.NoError(t, err)
	_, bobPub, err := provider.GenerateKeyPair()
	require.NoError(t, err)
	secret, err := provider.DeriveSharedSecret(alicePriv, bobPub)
	require.NoError(t, err)

	sealed, err := provider.Encrypt([]byte("the memo"), secret)
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "the memo")

	plaintext, err := provider.Decrypt(sealed, secret)
	require.NoError(t, err)
	assert.Equal(t, []byte("the memo"), plaintext)
}

func TestEncryptUsesFreshNonces(t *testing.T) {
	provider := NewSecp256k1Provider()
	secret := make([]byte, 32)

	first, err := provider.Encrypt([]byte("same plaintext"), secret)
	require.NoError(t, err)
	second, err := provider.Encrypt([]byte("same plaintext"), secret)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDecryptRejectsTampering(t *testing.T) {
	provider := NewSecp256k1Provider()
	secret := make([]byte, 32)

	sealed, err := provider.Encrypt([]byte("original"), secret)
	require.NoError(t, err)

	sealed[len(sealed)-1] ^= 0xff
	_, err = provider.Decrypt(sealed, secret)
	assert.Error(t, err)

	// A truncated ciphertext cannot even carry a nonce.
	_, err = provider.Decrypt(sealed[:4], secret)
	assert.Error(t, err)

	// A wrong-size key is rejected by the cipher.
	_, err = provider.Encrypt([]byte("x"), secret[:16])
	assert.Error(t, err)
}

func TestPrivateKeyPrefixTolerance(t *testing.T) {
	provider := NewSecp256k1Provider()

	plain, err := provider.DerivePublicKey(testPrivateKey)
	require.NoError(t, err)
	prefixed, err := provider.DerivePublicKey("0x" + testPrivateKey)
	require.NoError(t, err)

	assert.Equal(t, plain, prefixed)
}

package chert

import (
	"errors"
	"fmt"
	"testing"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := NewAPIError("rate limited", "RATE_LIMITED", 429, nil)
	assert.Equal(t, "RATE_LIMITED: rate limited", err.Error())

	bare := &Error{Kind: KindNetwork, Message: "no route"}
	assert.Equal(t, "no route", bare.Error())
}

func TestErrorUnwrapsCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewNetworkError("request failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, err.Unwrap())
}

func TestAsErrorThroughWrapping(t *testing.T) {
	inner := NewValidationError("amount", "invalid decimal amount")
	wrapped := pkgerrors.Wrap(inner, "while building transaction")

	ce, ok := AsError(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindValidation, ce.Kind)
	assert.Equal(t, "amount", ce.Field)

	assert.True(t, IsKind(wrapped, KindValidation))
	assert.False(t, IsKind(wrapped, KindNetwork))
}

func TestAsErrorOnForeignError(t *testing.T) {
	_, ok := AsError(fmt.Errorf("plain"))
	assert.False(t, ok)
	assert.False(t, IsKind(fmt.Errorf("plain"), KindAPI))
	assert.False(t, IsKind(nil, KindAPI))
}

func TestErrorIsMatchesKindAndCode(t *testing.T) {
	err := NewAPIError("not found", "NOT_FOUND", 404, nil)

	assert.True(t, errors.Is(err, &Error{Kind: KindAPI, Code: "NOT_FOUND"}))
	// An empty code in the target matches any code of the same kind.
	assert.True(t, errors.Is(err, &Error{Kind: KindAPI}))
	assert.False(t, errors.Is(err, &Error{Kind: KindAPI, Code: "RATE_LIMITED"}))
	assert.False(t, errors.Is(err, &Error{Kind: KindNetwork}))
}

func TestValidationErrorShape(t *testing.T) {
	err := NewValidationError("private_key", "invalid hex format")

	assert.Equal(t, "VALIDATION_ERROR", err.Code)
	assert.Equal(t, "private_key", err.Field)
	assert.Equal(t, "validation error in private_key: invalid hex format", err.Message)
	assert.Equal(t, "private_key", err.Data["field"])
}

func TestAPIErrorDefaultsCode(t *testing.T) {
	err := NewAPIError("something broke", "", 500, nil)
	assert.Equal(t, "API_ERROR", err.Code)
}

func TestTransactionErrorCarriesHash(t *testing.T) {
	err := NewTransactionError("transaction failed", "0xabc")
	assert.Equal(t, "0xabc", err.TxHash)
	assert.Equal(t, "0xabc", err.Data["tx_hash"])

	noHash := NewTransactionError("invalid response", "")
	assert.Empty(t, noHash.TxHash)
	assert.Nil(t, noHash.Data)
}

func TestTimeoutErrorShape(t *testing.T) {
	err := NewTimeoutError("wait_for_transaction", 30*time.Second)

	assert.Equal(t, KindTimeout, err.Kind)
	assert.Contains(t, err.Message, "wait_for_transaction")
	assert.Contains(t, err.Message, "30s")
	assert.Equal(t, "30s", err.Data["timeout"])
}

func TestKindString(t *testing.T) {
	known := map[Kind]string{
		KindNetwork:     "network",
		KindAPI:         "api",
		KindValidation:  "validation",
		KindTransaction: "transaction",
		KindWallet:      "wallet",
		KindPrivacy:     "privacy",
		KindStaking:     "staking",
		KindGovernance:  "governance",
		KindTimeout:     "timeout",
		KindConfig:      "config",
		KindCrypto:      "crypto",
	}
	for kind, want := range known {
		assert.Equal(t, want, kind.String())
	}
	assert.Equal(t, "unknown", Kind(200).String())
}

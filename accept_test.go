package wshandshake

import (
	"crypto"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAcceptKey_RFCVector(t *testing.T) {
	got, err := ComputeAcceptKey("dGhlIHNhbXBsZSBub25jZQ==")
	require.NoError(t, err)
	assert.Equal(t, "s3pPLMBiTxaQ9kYGzzhZRbK+xOo=", got)
}

func TestComputeAcceptKey_Deterministic(t *testing.T) {
	gen := NewNonceGenerator(nil)
	seen := make(map[string]string)

	for i := 0; i < 100; i++ {
		nonce, err := gen.Generate()
		require.NoError(t, err)

		a, err := ComputeAcceptKey(nonce)
		require.NoError(t, err)
		b, err := ComputeAcceptKey(nonce)
		require.NoError(t, err)
		assert.Equal(t, a, b)

		raw, err := base64.StdEncoding.DecodeString(a)
		require.NoError(t, err)
		assert.Len(t, raw, 20)

		if prev, ok := seen[a]; ok {
			t.Fatalf("nonces %q and %q produced the same accept key", prev, nonce)
		}
		seen[a] = nonce
	}
}

func TestComputeAcceptKey_UsesNonceVerbatim(t *testing.T) {
	padded, err := ComputeAcceptKey("dGhlIHNhbXBsZSBub25jZQ==")
	require.NoError(t, err)
	unpadded, err := ComputeAcceptKey("dGhlIHNhbXBsZSBub25jZQ")
	require.NoError(t, err)
	assert.NotEqual(t, padded, unpadded)
}

func TestComputeAcceptKey_DigestUnavailable(t *testing.T) {
	// MD4 is never linked into this binary.
	_, err := computeAcceptKey(crypto.MD4, "dGhlIHNhbXBsZSBub25jZQ==")
	assert.ErrorIs(t, err, ErrDigestUnavailable)
}

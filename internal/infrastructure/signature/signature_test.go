package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestVerify(t *testing.T) {
	body := []byte(`{"event":"pix.paid","transaction_id":"tx-1","status":"approved"}`)
	secret := "top-secret"

	t.Run("valid signature", func(t *testing.T) {
		require.True(t, Verify(body, sign(body, secret), secret))
	})

	t.Run("empty signature fails closed", func(t *testing.T) {
		require.False(t, Verify(body, "", secret))
	})

	t.Run("empty secret fails closed", func(t *testing.T) {
		require.False(t, Verify(body, sign(body, secret), ""))
	})

	t.Run("tampered body", func(t *testing.T) {
		sig := sign(body, secret)
		tampered := []byte(`{"event":"pix.paid","transaction_id":"tx-2","status":"approved"}`)
		require.False(t, Verify(tampered, sig, secret))
	})

	t.Run("wrong secret", func(t *testing.T) {
		require.False(t, Verify(body, sign(body, "other"), secret))
	})

	t.Run("missing prefix", func(t *testing.T) {
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write(body)
		require.False(t, Verify(body, hex.EncodeToString(mac.Sum(nil)), secret))
	})

	// The scheme signs exact bytes: a semantically identical payload
	// with different whitespace or key order does not verify. That is a
	// property of the gateway's contract, not a bug here.
	t.Run("re-serialization breaks verification", func(t *testing.T) {
		sig := sign(body, secret)
		reordered := []byte(`{"status":"approved","event":"pix.paid","transaction_id":"tx-1"}`)
		require.False(t, Verify(reordered, sig, secret))

		spaced := []byte(`{"event": "pix.paid", "transaction_id": "tx-1", "status": "approved"}`)
		require.False(t, Verify(spaced, sig, secret))
	})
}

func TestSignMatchesVerify(t *testing.T) {
	body := []byte(`{"any":"payload"}`)
	require.True(t, Verify(body, Sign(body, "s3cr3t"), "s3cr3t"))
}

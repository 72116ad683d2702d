package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

const prefix = "sha256="

// Verify checks a webhook signature against the raw request body. It
// fails closed: an empty signature or secret is never valid. The
// comparison is constant-time.
//
// The signature covers the exact bytes the gateway sent. Hashing a
// re-serialized form of the payload would break on any key-order or
// whitespace difference, so callers must pass the body as received.
func Verify(rawBody []byte, signatureHeader, secret string) bool {
	if signatureHeader == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(rawBody)
	expected := prefix + hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signatureHeader))
}

// Sign computes the signature header value for a payload. Used by tests
// and by anything replaying gateway deliveries.
func Sign(rawBody []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(rawBody)
	return prefix + hex.EncodeToString(mac.Sum(nil))
}

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifyWebhookSignature checks that a webhook body genuinely came from
// the payment gateway: HMAC-SHA256 over the exact raw bytes received,
// hex-encoded, compared in constant time against the signature header.
//
// It must always run on the untouched byte stream. Re-serializing a
// parsed body can reorder keys or change whitespace and break valid
// signatures, so callers capture the raw body before any JSON parsing.
func VerifyWebhookSignature(rawBody []byte, signature, secret string) bool {
	if signature == "" || secret == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// SignWebhookBody produces the signature the gateway would send for a
// body. Used by tests and local tooling.
func SignWebhookBody(rawBody []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(rawBody)
	return hex.EncodeToString(mac.Sum(nil))
}

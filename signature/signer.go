// Package signature provides HMAC-SHA256 webhook signing and verification
// primitives: header encoding and decoding, signature computation, and
// constant-time comparison.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Sign generates the HMAC-SHA256 signature for the given payload.
// The content to sign is "{timestamp}.{payload}".
// Returns the lowercase hex digest (64 characters).
func Sign(payload []byte, secret string, timestamp int64) string {
	content := fmt.Sprintf("%d.%s", timestamp, payload)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(content))
	return hex.EncodeToString(mac.Sum(nil))
}

// BuildHeader assembles a signature header carrying the given timestamp and
// one or more v1 signatures:
//
//	t=<unix-seconds>,v1=<hex>[,v1=<hex>...]
//
// Passing signatures computed from both the old and the new secret keeps
// receivers on either side of a rotation working.
func BuildHeader(timestamp int64, sigs ...string) string {
	parts := make([]string, 0, len(sigs)+1)
	parts = append(parts, "t="+strconv.FormatInt(timestamp, 10))
	for _, sig := range sigs {
		parts = append(parts, string(SchemeV1)+"="+sig)
	}
	return strings.Join(parts, ",")
}

// Package hookproof authenticates inbound webhook deliveries.
//
// Given a raw payload, a signature header, and a shared secret, hookproof
// proves the payload was produced by the holder of the secret within a
// recent time window, and rejects forged, replayed, or stale deliveries.
//
// Key features:
//   - HMAC-SHA256 signatures over "{timestamp}.{payload}" with v1 scheme tags
//   - Constant-time signature comparison
//   - Timestamp freshness enforcement with a configurable tolerance window
//   - Multiple concurrently valid signatures per header for secret rotation
//   - Optional replay guard with memory and Redis backends
//   - net/http middleware for drop-in request authentication
//
// Quick start:
//
//	if err := hookproof.Verify(payload, r.Header.Get("X-Webhook-Signature"), secret); err != nil {
//	    http.Error(w, "unauthorized", http.StatusUnauthorized)
//	    return
//	}
//
// Senders construct the header with the signature package:
//
//	ts := time.Now().Unix()
//	header := signature.BuildHeader(ts, signature.Sign(payload, secret, ts))
package hookproof

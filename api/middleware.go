// Package api provides the net/http surface for webhook authentication:
// a middleware that verifies each inbound request's signature header
// before the wrapped handler ever sees the body.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hookproof/hookproof"
	"github.com/hookproof/hookproof/id"
)

// DefaultSignatureHeader is the request header carrying the signed timestamp
// and candidate signatures.
const DefaultSignatureHeader = "X-Webhook-Signature"

// ReceiptHeader echoes the verification receipt ID on every response.
const ReceiptHeader = "X-Webhook-Receipt"

// DefaultMaxBody caps how much of a request body is read for verification.
const DefaultMaxBody = 1 << 20 // 1MB

// SecretFunc resolves the shared secret for a request, e.g. per tenant or
// per route. It must not cache or log the secret.
type SecretFunc func(r *http.Request) string

// StaticSecret returns a SecretFunc that always resolves the same secret.
func StaticSecret(secret string) SecretFunc {
	return func(*http.Request) string { return secret }
}

// Authenticator rejects inbound webhook requests whose signature header does
// not authenticate the request body.
type Authenticator struct {
	verifier *hookproof.Verifier
	secret   SecretFunc
	header   string
	maxBody  int64
	logger   *slog.Logger
}

// Option configures an Authenticator.
type Option func(*Authenticator)

// WithSignatureHeader sets the request header the signature is read from.
func WithSignatureHeader(name string) Option {
	return func(a *Authenticator) { a.header = name }
}

// WithMaxBody sets the maximum request body size read for verification.
func WithMaxBody(n int64) Option {
	return func(a *Authenticator) { a.maxBody = n }
}

// WithLogger sets the structured logger for the Authenticator.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Authenticator) { a.logger = logger }
}

// NewAuthenticator creates an Authenticator around the given verifier and
// secret resolver.
func NewAuthenticator(v *hookproof.Verifier, secret SecretFunc, opts ...Option) *Authenticator {
	a := &Authenticator{
		verifier: v,
		secret:   secret,
		header:   DefaultSignatureHeader,
		maxBody:  DefaultMaxBody,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Wrap returns a handler that authenticates each request before invoking
// next. On success the body is rewound so next reads it from the start.
func (a *Authenticator) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receipt := id.NewReceiptID()
		w.Header().Set(ReceiptHeader, receipt.String())

		body, err := io.ReadAll(io.LimitReader(r.Body, a.maxBody))
		if err != nil {
			a.logger.WarnContext(r.Context(), "webhook body unreadable",
				"receipt", receipt.String(),
				"path", r.URL.Path,
			)
			a.reject(w, receipt, http.StatusBadRequest, "unreadable request body")
			return
		}
		r.Body.Close()

		start := time.Now()
		verifyErr := a.verifier.Verify(r.Context(), body, r.Header.Get(a.header), a.secret(r))
		if verifyErr != nil {
			status := statusFor(verifyErr)
			a.logger.WarnContext(r.Context(), "webhook rejected",
				"receipt", receipt.String(),
				"path", r.URL.Path,
				"status", status,
				"payload_bytes", len(body),
			)
			a.reject(w, receipt, status, messageFor(status))
			return
		}

		a.logger.DebugContext(r.Context(), "webhook authenticated",
			"receipt", receipt.String(),
			"path", r.URL.Path,
			"payload_bytes", len(body),
			"latency_ms", time.Since(start).Milliseconds(),
		)

		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}

// statusFor maps verification failures to HTTP status codes: malformed
// credentials are the sender's formatting problem (400), failed
// authentication is 401, anything else is internal.
func statusFor(err error) int {
	switch {
	case errors.Is(err, hookproof.ErrMissingTimestamp),
		errors.Is(err, hookproof.ErrNoSignatures):
		return http.StatusBadRequest
	case errors.Is(err, hookproof.ErrSignatureMismatch),
		errors.Is(err, hookproof.ErrStaleTimestamp),
		errors.Is(err, hookproof.ErrReplay):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// messageFor keeps response bodies generic; the receipt ID is what a sender
// quotes when asking the receiver's operators to check their logs.
func messageFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "invalid signature header"
	case http.StatusUnauthorized:
		return "verification failed"
	default:
		return "internal error"
	}
}

type errorResponse struct {
	Receipt id.ID  `json:"receipt"`
	Error   string `json:"error"`
}

func (a *Authenticator) reject(w http.ResponseWriter, receipt id.ID, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Receipt: receipt, Error: msg})
}

package hookproof

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/hookproof/hookproof/observability"
	"github.com/hookproof/hookproof/signature"
	"github.com/hookproof/hookproof/store"
)

// Verifier authenticates inbound webhook deliveries against a shared secret.
//
// A Verifier is stateless apart from its configuration and optional replay
// guard; it is safe for concurrent use from any number of goroutines.
type Verifier struct {
	config  Config
	logger  *slog.Logger
	now     func() time.Time
	guard   store.Store
	metrics *observability.Metrics
	tracer  *observability.Tracer
}

// New creates a new Verifier with the given options.
func New(opts ...Option) (*Verifier, error) {
	v := &Verifier{
		config: DefaultConfig(),
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}
	if !v.config.Scheme.Supported() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, v.config.Scheme)
	}
	return v, nil
}

// Verify authenticates a single webhook delivery.
//
// The critical path:
//  1. Decode the signature header for the configured scheme.
//  2. Reject headers without a timestamp or without candidate signatures.
//  3. Recompute the expected signature from the payload and timestamp.
//  4. Accept if any candidate matches, comparing in constant time.
//  5. Reject timestamps older than the tolerance window.
//  6. If a replay guard is configured, reject exact resubmissions.
//
// A nil return means the delivery is authentic and fresh. Failures are
// identified by sentinel errors via errors.Is; see errors.go.
func (v *Verifier) Verify(ctx context.Context, payload []byte, header, secret string) error {
	var span trace.Span
	if v.tracer != nil {
		ctx, span = v.tracer.StartVerifySpan(ctx, v.config.Scheme.String(), len(payload))
	}

	start := time.Now()
	err := v.verify(ctx, payload, header, secret)
	outcome := outcomeLabel(err)

	if v.metrics != nil {
		v.metrics.RecordVerification(outcome, time.Since(start).Seconds())
		if errors.Is(err, ErrReplay) {
			v.metrics.ReplaysBlocked.Inc()
		}
	}
	if span != nil {
		v.tracer.EndVerifySpan(span, outcome)
	}
	if err != nil {
		// Never log the secret or payload content; the outcome kind and
		// sizes are all an operator needs.
		v.logger.DebugContext(ctx, "webhook verification failed",
			"outcome", outcome,
			"scheme", v.config.Scheme.String(),
			"payload_bytes", len(payload),
		)
	}

	return err
}

func (v *Verifier) verify(ctx context.Context, payload []byte, header, secret string) error {
	sh, err := signature.ParseHeader(header, v.config.Scheme)
	if err != nil {
		return err
	}
	if !sh.HasTimestamp {
		return ErrMissingTimestamp
	}
	if len(sh.Signatures) == 0 {
		return fmt.Errorf("%w %q", ErrNoSignatures, v.config.Scheme)
	}

	expected := signature.Sign(payload, secret, sh.Timestamp)
	matched := false
	for _, candidate := range sh.Signatures {
		if signature.ConstantTimeEqual(candidate, expected) {
			matched = true
		}
	}
	if !matched {
		return ErrSignatureMismatch
	}

	// Tolerance <= 0 is an explicit opt-out of the freshness check, and
	// with it the replay guard: the guard's retention is the tolerance.
	if v.config.Tolerance <= 0 {
		return nil
	}

	age := v.now().Unix() - sh.Timestamp
	if age > int64(v.config.Tolerance/time.Second) {
		return fmt.Errorf("%w: signed %ds ago", ErrStaleTimestamp, age)
	}

	if v.guard != nil {
		seen, guardErr := v.guard.MarkSeen(ctx, expected, v.config.Tolerance)
		if guardErr != nil {
			// Fail closed: an unreachable guard must not admit replays.
			return fmt.Errorf("hookproof: replay guard: %w", guardErr)
		}
		if seen {
			return ErrReplay
		}
	}

	return nil
}

// Verify authenticates a single webhook delivery using the default
// configuration: v1 scheme, 5 minute tolerance, no replay guard.
func Verify(payload []byte, header, secret string) error {
	v := &Verifier{
		config: DefaultConfig(),
		logger: slog.Default(),
		now:    time.Now,
	}
	return v.verify(context.Background(), payload, header, secret)
}

// outcomeLabel maps a verification result to its metric and trace label.
func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUnsupportedScheme):
		return "unsupported_scheme"
	case errors.Is(err, ErrMissingTimestamp):
		return "missing_timestamp"
	case errors.Is(err, ErrNoSignatures):
		return "no_signatures"
	case errors.Is(err, ErrSignatureMismatch):
		return "signature_mismatch"
	case errors.Is(err, ErrStaleTimestamp):
		return "stale_timestamp"
	case errors.Is(err, ErrReplay):
		return "replay"
	default:
		return "error"
	}
}

package hookproof

import (
	"log/slog"
	"time"

	"github.com/hookproof/hookproof/observability"
	"github.com/hookproof/hookproof/signature"
	"github.com/hookproof/hookproof/store"
)

// Option configures a Verifier instance.
type Option func(*Verifier) error

// WithTolerance sets the maximum accepted age of a signed timestamp.
// Zero or negative disables the freshness check entirely.
func WithTolerance(d time.Duration) Option {
	return func(v *Verifier) error {
		v.config.Tolerance = d
		return nil
	}
}

// WithScheme sets the signing scheme expected in signature headers.
func WithScheme(s signature.Scheme) Option {
	return func(v *Verifier) error {
		v.config.Scheme = s
		return nil
	}
}

// WithClock sets the time source used for the freshness check.
// Tests inject a fixed clock here to make the tolerance boundary deterministic.
func WithClock(now func() time.Time) Option {
	return func(v *Verifier) error {
		v.now = now
		return nil
	}
}

// WithLogger sets the structured logger for the Verifier instance.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Verifier) error {
		v.logger = logger
		return nil
	}
}

// WithReplayGuard sets the store used to reject exact resubmissions of
// already-accepted deliveries. The guard only applies while the freshness
// check is enabled; its retention window is the tolerance.
func WithReplayGuard(s store.Store) Option {
	return func(v *Verifier) error {
		v.guard = s
		return nil
	}
}

// WithMetrics sets the metric instruments recorded per verification.
func WithMetrics(m *observability.Metrics) Option {
	return func(v *Verifier) error {
		v.metrics = m
		return nil
	}
}

// WithTracer sets the tracer used to span each verification.
func WithTracer(t *observability.Tracer) Option {
	return func(v *Verifier) error {
		v.tracer = t
		return nil
	}
}

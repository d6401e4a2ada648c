package observability

import (
	gu "github.com/xraph/go-utils/metrics"
)

// Metrics holds metric instruments for hookproof, backed by any go-utils
// MetricFactory (e.g. metrics.NewMetricsCollector() for standalone usage).
type Metrics struct {
	VerificationsTotal gu.Counter
	VerifyDuration     gu.Histogram
	ReplaysBlocked     gu.Counter
}

// NewMetrics creates hookproof metric instruments using the supplied factory.
func NewMetrics(factory gu.MetricFactory) *Metrics {
	return &Metrics{
		VerificationsTotal: factory.Counter("hookproof_verifications_total"),
		VerifyDuration:     factory.Histogram("hookproof_verify_duration_seconds"),
		ReplaysBlocked:     factory.Counter("hookproof_replays_blocked_total"),
	}
}

// RecordVerification records a verification attempt with its outcome and duration.
func (m *Metrics) RecordVerification(outcome string, latencySeconds float64) {
	m.VerificationsTotal.WithLabels(map[string]string{"outcome": outcome}).Inc()
	m.VerifyDuration.Observe(latencySeconds)
}

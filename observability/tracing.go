package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/hookproof/hookproof"

// Tracer provides OpenTelemetry tracing for webhook verification.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer creates a new hookproof tracer.
func NewTracer() *Tracer {
	return &Tracer{
		tracer: otel.Tracer(tracerName),
	}
}

// StartVerifySpan starts a new span for a verification attempt.
func (t *Tracer) StartVerifySpan(ctx context.Context, scheme string, payloadBytes int) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "hookproof.verify",
		trace.WithAttributes(
			attribute.String("hookproof.scheme", scheme),
			attribute.Int("hookproof.payload_bytes", payloadBytes),
		),
	)
}

// EndVerifySpan ends a verification span with its outcome.
func (t *Tracer) EndVerifySpan(span trace.Span, outcome string) {
	span.SetAttributes(attribute.String("hookproof.outcome", outcome))
	span.End()
}

package obs

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// InitPropagation installs the W3C trace context propagator. No tracer SDK
// is wired, so spans are no-ops, but trace headers still cross the
// payment to inventory hop.
func InitPropagation() {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
}

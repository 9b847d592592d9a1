package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeonmind/internal/fsm"
)

// SpanObserver is an fsm.Observer that records each transition attempt
// as a short span, so mode changes and rejected requests show up in
// Honeycomb alongside the rest of the session trace.
type SpanObserver struct {
	tracer trace.Tracer
}

// NewSpanObserver creates an observer emitting spans on the given
// tracer. Pass Tracer("session") in production or NoopTracer() when
// telemetry is disabled.
func NewSpanObserver(tracer trace.Tracer) *SpanObserver {
	return &SpanObserver{tracer: tracer}
}

// StateChanged records an applied transition.
func (o *SpanObserver) StateChanged(ev fsm.Event) {
	_, span := o.tracer.Start(context.Background(), "fsm.transition",
		trace.WithTimestamp(ev.At))
	span.SetAttributes(
		attribute.String("fsm.from", string(ev.From)),
		attribute.String("fsm.to", string(ev.To)),
		attribute.String("fsm.reason", ev.Reason),
	)
	span.End()
}

// TransitionRejected records a rejected request, including how many
// alternatives were legal at the time.
func (o *SpanObserver) TransitionRejected(ev fsm.Event) {
	_, span := o.tracer.Start(context.Background(), "fsm.rejected",
		trace.WithTimestamp(ev.At))
	span.SetAttributes(
		attribute.String("fsm.from", string(ev.From)),
		attribute.String("fsm.to", string(ev.To)),
		attribute.String("fsm.reason", ev.Reason),
		attribute.Int("fsm.allowed_count", len(ev.Allowed)),
	)
	span.End()
}

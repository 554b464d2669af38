// Package tracesink records telemetry events on the active OpenTelemetry span.
package tracesink

import (
	"context"
	"maps"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"edenlog/pkg/platform/telemetry"
)

// Sink adds a span event named after the event type to the span carried by
// ctx. Events logged outside a recording span are dropped.
type Sink struct{}

// New returns a span event Sink.
func New() *Sink {
	return &Sink{}
}

// Log adds event to the span in ctx when that span is recording.
func (s *Sink) Log(ctx context.Context, eventType string, event *telemetry.DynamicEvent) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.AddEvent(eventType, trace.WithAttributes(Attributes(event)...))
}

// Attributes converts the event into span attributes, sorted by name within
// each kind.
func Attributes(event *telemetry.DynamicEvent) []attribute.KeyValue {
	ints, doubles, strs := event.Ints(), event.Doubles(), event.Strings()
	kvs := make([]attribute.KeyValue, 0, event.Len())
	for _, k := range slices.Sorted(maps.Keys(ints)) {
		kvs = append(kvs, attribute.Int64(k, ints[k]))
	}
	for _, k := range slices.Sorted(maps.Keys(doubles)) {
		kvs = append(kvs, attribute.Float64(k, doubles[k]))
	}
	for _, k := range slices.Sorted(maps.Keys(strs)) {
		kvs = append(kvs, attribute.String(k, strs[k]))
	}
	return kvs
}

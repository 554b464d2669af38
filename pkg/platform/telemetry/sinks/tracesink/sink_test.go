package tracesink

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"edenlog/pkg/platform/telemetry"
)

func TestSink_AddsSpanEvent(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx, span := tp.Tracer("edenlog-test").Start(context.Background(), "mount")

	e := telemetry.NewDynamicEvent()
	telemetry.FinishedMount{RepoType: "hg", RepoSource: "fbsource", Duration: 0.75, Success: true}.Populate(e)
	New().Log(ctx, telemetry.TypeFinishedMount, e)
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	events := spans[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "mount", events[0].Name)
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.Int64("clean", 0),
		attribute.Int64("is_takeover", 0),
		attribute.Int64("success", 1),
		attribute.Float64("duration", 0.75),
		attribute.String("repo_source", "fbsource"),
		attribute.String("repo_type", "hg"),
	}, events[0].Attributes)
}

func TestSink_NoSpanIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		New().Log(context.Background(), "mount", telemetry.NewDynamicEvent())
	})
}

func TestAttributes_Order(t *testing.T) {
	e := telemetry.NewDynamicEvent()
	e.AddString("a", "s")
	e.AddDouble("b", 1)
	e.AddInt("c", 2)

	assert.Equal(t, []attribute.KeyValue{
		attribute.Int64("c", 2),
		attribute.Float64("b", 1),
		attribute.String("a", "s"),
	}, Attributes(e))
}

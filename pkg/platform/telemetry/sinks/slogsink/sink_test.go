package slogsink

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edenlog/pkg/platform/telemetry"
)

func newJSONLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: level}))
}

func TestSink_Log(t *testing.T) {
	var buf bytes.Buffer
	sink := New(newJSONLogger(&buf, slog.LevelInfo))

	e := telemetry.NewDynamicEvent()
	telemetry.FinishedCheckout{Mode: "full", Duration: 1.5, Success: true, FetchedTrees: 10, FetchedBlobs: 42}.Populate(e)
	sink.Log(context.Background(), telemetry.TypeFinishedCheckout, e)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "checkout", line["msg"])
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, "telemetry", line["log_type"])
	assert.Equal(t, map[string]any{
		"success":       float64(1),
		"fetched_trees": float64(10),
		"fetched_blobs": float64(42),
		"duration":      1.5,
		"mode":          "full",
	}, line[FieldsKey])
}

func TestSink_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	sink := New(newJSONLogger(&buf, slog.LevelWarn))

	sink.Log(context.Background(), "checkout", telemetry.NewDynamicEvent())
	assert.Zero(t, buf.Len(), "info events are filtered by a warn logger")

	sink = New(newJSONLogger(&buf, slog.LevelWarn), WithLevel(slog.LevelWarn))
	sink.Log(context.Background(), "checkout", telemetry.NewDynamicEvent())
	assert.NotZero(t, buf.Len())
}

func TestAttrs(t *testing.T) {
	e := telemetry.NewDynamicEvent()
	e.AddString("b", "x")
	e.AddInt("z", 1)
	e.AddInt("a", 2)
	e.AddDouble("m", 0.5)

	attrs := Attrs(e)
	require.Len(t, attrs, 4)
	assert.Equal(t, "a", attrs[0].Key)
	assert.Equal(t, slog.KindInt64, attrs[0].Value.Kind())
	assert.Equal(t, "z", attrs[1].Key)
	assert.Equal(t, "m", attrs[2].Key)
	assert.Equal(t, slog.KindFloat64, attrs[2].Value.Kind())
	assert.Equal(t, "b", attrs[3].Key)
	assert.Equal(t, slog.KindString, attrs[3].Value.Kind())
}

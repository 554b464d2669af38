// Package slogsink writes telemetry events as log/slog records.
package slogsink

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"edenlog/pkg/platform/telemetry"
)

// FieldsKey is the group holding the event fields on each record.
const FieldsKey = "fields"

// Sink emits one slog record per event. The message is the event type.
type Sink struct {
	logger *slog.Logger
	level  slog.Level
}

// Option configures the Sink.
type Option func(*Sink)

// WithLevel sets the level events are logged at. Defaults to Info.
func WithLevel(level slog.Level) Option {
	return func(s *Sink) {
		s.level = level
	}
}

// New returns a Sink writing to logger, or to slog.Default when logger is nil.
func New(logger *slog.Logger, opts ...Option) *Sink {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Sink{logger: logger, level: slog.LevelInfo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Log emits event as one record whose message is eventType.
func (s *Sink) Log(ctx context.Context, eventType string, event *telemetry.DynamicEvent) {
	if !s.logger.Enabled(ctx, s.level) {
		return
	}
	s.logger.LogAttrs(ctx, s.level, eventType,
		slog.String("log_type", "telemetry"),
		slog.Attr{Key: FieldsKey, Value: slog.GroupValue(Attrs(event)...)},
	)
}

// Attrs converts the event into slog attributes, sorted by name within each
// kind: ints, then doubles, then strings.
func Attrs(event *telemetry.DynamicEvent) []slog.Attr {
	ints, doubles, strs := event.Ints(), event.Doubles(), event.Strings()
	attrs := make([]slog.Attr, 0, event.Len())
	for _, k := range slices.Sorted(maps.Keys(ints)) {
		attrs = append(attrs, slog.Int64(k, ints[k]))
	}
	for _, k := range slices.Sorted(maps.Keys(doubles)) {
		attrs = append(attrs, slog.Float64(k, doubles[k]))
	}
	for _, k := range slices.Sorted(maps.Keys(strs)) {
		attrs = append(attrs, slog.String(k, strs[k]))
	}
	return attrs
}

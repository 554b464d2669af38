// Package zapsink writes telemetry events through a zap logger.
package zapsink

import (
	"context"
	"maps"
	"slices"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"edenlog/pkg/platform/telemetry"
)

// Sink emits one zap entry per event, with the event type as the message.
type Sink struct {
	logger *zap.Logger
	level  zapcore.Level
}

// Option configures the Sink.
type Option func(*Sink)

// WithLevel sets the level events are logged at. Defaults to Info.
func WithLevel(level zapcore.Level) Option {
	return func(s *Sink) {
		s.level = level
	}
}

// New returns a Sink writing to logger. A nil logger discards events.
func New(logger *zap.Logger, opts ...Option) *Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Sink{logger: logger, level: zapcore.InfoLevel}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Log emits event as one entry whose message is eventType.
func (s *Sink) Log(_ context.Context, eventType string, event *telemetry.DynamicEvent) {
	ce := s.logger.Check(s.level, eventType)
	if ce == nil {
		return
	}
	fields := append([]zap.Field{zap.String("log_type", "telemetry")}, Fields(event)...)
	ce.Write(fields...)
}

// Fields converts the event into zap fields, sorted by name within each kind.
func Fields(event *telemetry.DynamicEvent) []zap.Field {
	ints, doubles, strs := event.Ints(), event.Doubles(), event.Strings()
	fields := make([]zap.Field, 0, event.Len())
	for _, k := range slices.Sorted(maps.Keys(ints)) {
		fields = append(fields, zap.Int64(k, ints[k]))
	}
	for _, k := range slices.Sorted(maps.Keys(doubles)) {
		fields = append(fields, zap.Float64(k, doubles[k]))
	}
	for _, k := range slices.Sorted(maps.Keys(strs)) {
		fields = append(fields, zap.String(k, strs[k]))
	}
	return fields
}

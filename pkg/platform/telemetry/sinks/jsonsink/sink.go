// Package jsonsink writes telemetry events as JSON lines in the shape read by
// the external telemetry logger: {"int":{...},"normal":{...},"double":{...}}.
package jsonsink

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"

	"edenlog/pkg/platform/telemetry"
)

// Sink encodes one JSON object per line to w. The event type is always
// present as normal.type.
type Sink struct {
	mu     sync.Mutex
	enc    *json.Encoder
	logger *slog.Logger
}

// Option configures the Sink.
type Option func(*Sink)

// WithLogger sets a logger for reporting write failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sink) {
		s.logger = logger
	}
}

// New returns a Sink writing JSON lines to w.
func New(w io.Writer, opts ...Option) *Sink {
	s := &Sink{enc: json.NewEncoder(w)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Log writes event as one JSON line with normal.type set to eventType. A nil
// event is written with only the type field.
func (s *Sink) Log(ctx context.Context, eventType string, event *telemetry.DynamicEvent) {
	out := event.Clone()
	out.AddString(telemetry.FieldType, eventType)

	s.mu.Lock()
	err := s.enc.Encode(out)
	s.mu.Unlock()

	if err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "failed to write telemetry event",
			"type", eventType,
			"error", err,
		)
	}
}

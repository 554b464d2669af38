package telemetry

//go:generate mockgen -source=logger.go -destination=mocks/mocks.go -package=mocks Sink

import (
	"context"
	"log/slog"
)

// Sink receives populated events. Implementations own delivery, batching and
// retry; they must not mutate the event and must not block the caller for long.
type Sink interface {
	Log(ctx context.Context, eventType string, event *DynamicEvent)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, eventType string, event *DynamicEvent)

// Log calls f.
func (f SinkFunc) Log(ctx context.Context, eventType string, event *DynamicEvent) {
	f(ctx, eventType, event)
}

// Discard is a Sink that drops every event.
var Discard Sink = SinkFunc(func(context.Context, string, *DynamicEvent) {})

// Tee returns a Sink that hands each event to every sink in order. Each sink
// gets its own copy so one cannot observe another's mutations. A panicking
// sink does not stop the rest: after every sink has run, the first panic is
// raised again so the caller can report it.
func Tee(sinks ...Sink) Sink {
	switch len(sinks) {
	case 0:
		return Discard
	case 1:
		return sinks[0]
	}
	return SinkFunc(func(ctx context.Context, eventType string, event *DynamicEvent) {
		var first any
		for _, s := range sinks {
			if r := safeLog(ctx, s, eventType, event.Clone()); r != nil && first == nil {
				first = r
			}
		}
		if first != nil {
			panic(first)
		}
	})
}

// safeLog calls s.Log and returns the recovered panic value, if any.
func safeLog(ctx context.Context, s Sink, eventType string, event *DynamicEvent) (recovered any) {
	defer func() {
		recovered = recover()
	}()
	s.Log(ctx, eventType, event)
	return nil
}

// StructuredLogger turns typed events into DynamicEvents and hands them to a
// Sink. It is safe for concurrent use: every call builds its own container.
type StructuredLogger struct {
	sink    Sink
	session *SessionInfo
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures the StructuredLogger.
type Option func(*StructuredLogger)

// WithSession attaches session default fields to every event.
func WithSession(info SessionInfo) Option {
	return func(l *StructuredLogger) {
		l.session = &info
	}
}

// WithLogger sets a logger for reporting sink failures.
func WithLogger(logger *slog.Logger) Option {
	return func(l *StructuredLogger) {
		l.logger = logger
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *Metrics) Option {
	return func(l *StructuredLogger) {
		l.metrics = m
	}
}

// New creates a StructuredLogger writing to sink. A nil sink discards events.
func New(sink Sink, opts ...Option) *StructuredLogger {
	if sink == nil {
		sink = Discard
	}
	l := &StructuredLogger{sink: sink}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LogEvent populates a fresh container from event and hands it to the sink.
func (l *StructuredLogger) LogEvent(ctx context.Context, event Event) {
	eventType := event.Type()
	de := l.defaults(eventType)
	event.Populate(de)
	l.dispatch(ctx, eventType, de)
}

// LogDynamicEvent hands a pre-built container to the sink. Session defaults
// are added underneath the caller's fields; event itself is not modified.
func (l *StructuredLogger) LogDynamicEvent(ctx context.Context, eventType string, event *DynamicEvent) {
	de := l.defaults(eventType)
	if event != nil {
		de.merge(event)
	}
	l.dispatch(ctx, eventType, de)
}

func (l *StructuredLogger) defaults(eventType string) *DynamicEvent {
	de := NewDynamicEvent()
	if l.session != nil {
		l.session.Populate(eventType, de)
	}
	return de
}

func (l *StructuredLogger) dispatch(ctx context.Context, eventType string, de *DynamicEvent) {
	defer func() {
		if r := recover(); r != nil {
			if l.metrics != nil {
				l.metrics.IncSinkPanics()
			}
			if l.logger != nil {
				l.logger.ErrorContext(ctx, "telemetry sink panicked",
					"type", eventType,
					"panic", r,
				)
			}
		}
	}()

	l.sink.Log(ctx, eventType, de)

	if l.metrics != nil {
		l.metrics.IncEventsLogged(eventType)
	}
}

package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for event emission.
type Metrics struct {
	EventsLogged *prometheus.CounterVec
	SinkPanics   prometheus.Counter
}

// NewMetrics creates the emission metrics and registers them with reg.
// Pass prometheus.DefaultRegisterer to expose them on the default handler.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		EventsLogged: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "edenlog_events_logged_total",
			Help: "Total number of structured events handed to the sink, by event type",
		}, []string{"type"}),
		SinkPanics: factory.NewCounter(prometheus.CounterOpts{
			Name: "edenlog_sink_panics_total",
			Help: "Total number of sink panics recovered while logging an event",
		}),
	}
}

// IncEventsLogged increments the logged counter for eventType.
func (m *Metrics) IncEventsLogged(eventType string) {
	m.EventsLogged.WithLabelValues(eventType).Inc()
}

// IncSinkPanics increments the recovered panic counter.
func (m *Metrics) IncSinkPanics() {
	m.SinkPanics.Inc()
}

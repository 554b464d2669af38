package memory

import (
	"context"
	"sync"

	"edenlog/pkg/platform/telemetry"
)

// Record is one event captured by the Sink.
type Record struct {
	Type  string
	Event *telemetry.DynamicEvent
}

// Sink keeps every event in memory. Events are cloned on arrival so later
// mutation by the caller does not leak in.
type Sink struct {
	mu      sync.RWMutex
	records []Record
}

// NewSink returns an empty in-memory Sink.
func NewSink() *Sink {
	return &Sink{}
}

// Log records a copy of event under eventType. A nil event is stored as an
// empty container.
func (s *Sink) Log(_ context.Context, eventType string, event *telemetry.DynamicEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, Record{Type: eventType, Event: event.Clone()})
}

// Events returns all captured records in arrival order.
func (s *Sink) Events() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Record{}, s.records...)
}

// ByType returns the captured events with the given tag, in arrival order.
func (s *Sink) ByType(eventType string) []*telemetry.DynamicEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*telemetry.DynamicEvent
	for _, r := range s.records {
		if r.Type == eventType {
			out = append(out, r.Event)
		}
	}
	return out
}

// Len returns the number of captured records.
func (s *Sink) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Clear drops every captured record.
func (s *Sink) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
}

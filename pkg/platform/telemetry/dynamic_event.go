// Package telemetry defines the structured event schema: typed event records
// that project themselves into a DynamicEvent, and the logger that hands the
// populated container to a Sink.
package telemetry

import (
	"encoding/json"
	"maps"
	"math"
)

// DynamicEvent is a bag of named fields limited to the column types the log
// backend understands: int64, float64 and string. Booleans are stored as 0/1
// integers. The zero value is ready to use.
//
// A DynamicEvent is built by one goroutine and then handed to a sink, which
// must treat it as read-only.
type DynamicEvent struct {
	ints    map[string]int64
	strings map[string]string
	doubles map[string]float64
}

// NewDynamicEvent returns an empty container.
func NewDynamicEvent() *DynamicEvent {
	return &DynamicEvent{}
}

// AddInt sets name in the integer mapping. Last write wins.
func (e *DynamicEvent) AddInt(name string, value int64) {
	if e.ints == nil {
		e.ints = make(map[string]int64)
	}
	e.ints[name] = value
}

// AddString sets name in the string mapping. Last write wins.
func (e *DynamicEvent) AddString(name string, value string) {
	if e.strings == nil {
		e.strings = make(map[string]string)
	}
	e.strings[name] = value
}

// AddDouble sets name in the double mapping. Last write wins.
func (e *DynamicEvent) AddDouble(name string, value float64) {
	if e.doubles == nil {
		e.doubles = make(map[string]float64)
	}
	e.doubles[name] = value
}

// AddBool stores value as integer 1 or 0.
func (e *DynamicEvent) AddBool(name string, value bool) {
	var v int64
	if value {
		v = 1
	}
	e.AddInt(name, v)
}

// Ints returns a copy of the integer mapping. Read accessors, Len and Clone
// treat a nil *DynamicEvent as empty.
func (e *DynamicEvent) Ints() map[string]int64 {
	if e == nil {
		return map[string]int64{}
	}
	return cloneOrEmpty(e.ints)
}

// Strings returns a copy of the string mapping.
func (e *DynamicEvent) Strings() map[string]string {
	if e == nil {
		return map[string]string{}
	}
	return cloneOrEmpty(e.strings)
}

// Doubles returns a copy of the double mapping.
func (e *DynamicEvent) Doubles() map[string]float64 {
	if e == nil {
		return map[string]float64{}
	}
	return cloneOrEmpty(e.doubles)
}

// Len returns the number of entries across all three mappings.
func (e *DynamicEvent) Len() int {
	if e == nil {
		return 0
	}
	return len(e.ints) + len(e.strings) + len(e.doubles)
}

// Clone returns a deep copy.
func (e *DynamicEvent) Clone() *DynamicEvent {
	if e == nil {
		return NewDynamicEvent()
	}
	return &DynamicEvent{
		ints:    maps.Clone(e.ints),
		strings: maps.Clone(e.strings),
		doubles: maps.Clone(e.doubles),
	}
}

// merge copies every field of other into e, overwriting on name collisions.
func (e *DynamicEvent) merge(other *DynamicEvent) {
	for k, v := range other.ints {
		e.AddInt(k, v)
	}
	for k, v := range other.strings {
		e.AddString(k, v)
	}
	for k, v := range other.doubles {
		e.AddDouble(k, v)
	}
}

// JSON spellings for doubles encoding/json cannot represent as numbers.
const (
	jsonNaN         = "NaN"
	jsonPosInfinity = "Infinity"
	jsonNegInfinity = "-Infinity"
)

// wireEvent is the JSON shape consumed by the external telemetry logger.
// String fields live under "normal". Doubles are numbers, except NaN and
// infinities which are written as the strings "NaN", "Infinity" and
// "-Infinity" so the rest of the event is not lost.
type wireEvent struct {
	Ints    map[string]int64  `json:"int"`
	Strings map[string]string `json:"normal"`
	Doubles map[string]any    `json:"double"`
}

// MarshalJSON encodes the container as {"int":{},"normal":{},"double":{}}.
func (e *DynamicEvent) MarshalJSON() ([]byte, error) {
	doubles := e.Doubles()
	wire := make(map[string]any, len(doubles))
	for k, v := range doubles {
		wire[k] = jsonDouble(v)
	}
	return json.Marshal(wireEvent{
		Ints:    e.Ints(),
		Strings: e.Strings(),
		Doubles: wire,
	})
}

func jsonDouble(v float64) any {
	switch {
	case math.IsNaN(v):
		return jsonNaN
	case math.IsInf(v, 1):
		return jsonPosInfinity
	case math.IsInf(v, -1):
		return jsonNegInfinity
	}
	return v
}

func cloneOrEmpty[V any](m map[string]V) map[string]V {
	if m == nil {
		return map[string]V{}
	}
	return maps.Clone(m)
}

package telemetry

import (
	"slices"
	"strings"
)

// Kind is a backend column type.
type Kind string

const (
	KindInt    Kind = "int"
	KindDouble Kind = "double"
	KindString Kind = "string"
)

// Column is one field of an event schema.
type Column struct {
	Name string `json:"name" yaml:"name"`
	Kind Kind   `json:"kind" yaml:"kind"`
}

// Schema describes the columns an event type writes.
type Schema struct {
	Type    string   `json:"type" yaml:"type"`
	Columns []Column `json:"columns" yaml:"columns"`
}

// Describe derives the schema of e by populating a scratch container.
// Columns are sorted by name.
func Describe(e Event) Schema {
	scratch := NewDynamicEvent()
	e.Populate(scratch)

	columns := make([]Column, 0, scratch.Len())
	for name := range scratch.ints {
		columns = append(columns, Column{Name: name, Kind: KindInt})
	}
	for name := range scratch.doubles {
		columns = append(columns, Column{Name: name, Kind: KindDouble})
	}
	for name := range scratch.strings {
		columns = append(columns, Column{Name: name, Kind: KindString})
	}
	slices.SortFunc(columns, func(a, b Column) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(string(a.Kind), string(b.Kind))
	})

	return Schema{Type: e.Type(), Columns: columns}
}

// Known returns a zero value of every built-in event type, ordered by tag.
func Known() []Event {
	events := []Event{
		ParentMismatch{},
		DaemonStart{},
		DaemonStop{},
		FinishedCheckout{},
		FinishedMount{},
		FuseError{},
		RocksDbAutomaticGc{},
		ThriftError{},
		ThriftAuthFailure{},
	}
	slices.SortFunc(events, func(a, b Event) int {
		return strings.Compare(a.Type(), b.Type())
	})
	return events
}

// Lookup returns the built-in event type with the given tag.
func Lookup(eventType string) (Event, bool) {
	for _, e := range Known() {
		if e.Type() == eventType {
			return e, true
		}
	}
	return nil, false
}

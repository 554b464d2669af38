package telemetry

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestProperty_LastWriteWins(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("AddInt keeps one entry holding the last value", prop.ForAll(
		func(name string, values []int64) bool {
			if len(values) == 0 {
				return true
			}
			e := NewDynamicEvent()
			for _, v := range values {
				e.AddInt(name, v)
			}
			ints := e.Ints()
			return len(ints) == 1 && ints[name] == values[len(values)-1]
		},
		gen.AnyString(),
		gen.SliceOf(gen.Int64()),
	))

	properties.Property("AddString keeps one entry holding the last value", prop.ForAll(
		func(name, first, last string) bool {
			e := NewDynamicEvent()
			e.AddString(name, first)
			e.AddString(name, last)
			strs := e.Strings()
			return len(strs) == 1 && strs[name] == last
		},
		gen.AnyString(),
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.Property("AddBool stores 1 for true and 0 for false", prop.ForAll(
		func(name string, value bool) bool {
			e := NewDynamicEvent()
			e.AddBool(name, value)
			want := int64(0)
			if value {
				want = 1
			}
			return e.Ints()[name] == want && len(e.Strings()) == 0 && len(e.Doubles()) == 0
		},
		gen.AnyString(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestProperty_MappingIsolation(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	// Names are prefixed per kind so they are disjoint.
	properties.Property("each mapping holds exactly what its method added", prop.ForAll(
		func(ints map[string]int64, strs map[string]string, doubles map[string]float64) bool {
			e := NewDynamicEvent()
			for k, v := range ints {
				e.AddInt("i_"+k, v)
			}
			for k, v := range strs {
				e.AddString("s_"+k, v)
			}
			for k, v := range doubles {
				e.AddDouble("d_"+k, v)
			}

			gotInts, gotStrs, gotDoubles := e.Ints(), e.Strings(), e.Doubles()
			if len(gotInts) != len(ints) || len(gotStrs) != len(strs) || len(gotDoubles) != len(doubles) {
				return false
			}
			for k, v := range ints {
				if gotInts["i_"+k] != v {
					return false
				}
			}
			for k, v := range strs {
				if gotStrs["s_"+k] != v {
					return false
				}
			}
			for k, v := range doubles {
				if gotDoubles["d_"+k] != v {
					return false
				}
			}
			return e.Len() == len(ints)+len(strs)+len(doubles)
		},
		gen.MapOf(gen.AlphaString(), gen.Int64()),
		gen.MapOf(gen.AlphaString(), gen.AnyString()),
		gen.MapOf(gen.AlphaString(), gen.Float64Range(-1e9, 1e9)),
	))

	properties.TestingRun(t)
}

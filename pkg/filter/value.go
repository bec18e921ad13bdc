// Package filter builds the bracketed query-parameter representation the
// host-inventory API expects from nested workload selection state.
package filter

import (
	"reflect"
	"time"
)

type Kind int

const (
	KindBool Kind = iota
	KindString
	KindStringList
	KindMap
)

// Value is one node of a nested filter object. Only the four kinds above
// exist; anything else cannot be represented and never reaches the wire.
type Value struct {
	kind Kind
	b    bool
	s    string
	list []string
	m    Map
}

// Map is a nested filter object keyed by filter field name.
type Map map[string]Value

func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func String(s string) Value {
	return Value{kind: KindString, s: s}
}

func StringList(items ...string) Value {
	return Value{kind: KindStringList, list: items}
}

func Nested(m Map) Value {
	return Value{kind: KindMap, m: m}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) Bool() bool {
	return v.b
}

func (v Value) String() string {
	return v.s
}

func (v Value) StringList() []string {
	return v.list
}

func (v Value) Nested() Map {
	return v.m
}

// Equal compares two values structurally.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == other.b
	case KindString:
		return v.s == other.s
	case KindStringList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != other.list[i] {
				return false
			}
		}
		return true
	case KindMap:
		return v.m.Equal(other.m)
	}
	return false
}

func (m Map) Equal(other Map) bool {
	if len(m) != len(other) {
		return false
	}
	for k, v := range m {
		o, ok := other[k]
		if !ok || !v.Equal(o) {
			return false
		}
	}
	return true
}

// FromAny converts loosely shaped input, such as a decoded JSON document,
// into a Map. Leaves with no filter semantics (functions, channels,
// timestamps) are dropped without diagnostics, as are unsupported scalar
// kinds. String slices keep only their string elements.
func FromAny(in map[string]any) Map {
	out := Map{}
	for key, raw := range in {
		if v, ok := fromAnyValue(raw); ok {
			out[key] = v
		}
	}
	return out
}

func fromAnyValue(raw any) (Value, bool) {
	switch val := raw.(type) {
	case nil:
		return Value{}, false
	case bool:
		return Bool(val), true
	case string:
		return String(val), true
	case []string:
		return StringList(val...), true
	case []any:
		items := []string{}
		for _, item := range val {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
		return StringList(items...), true
	case time.Time, *time.Time:
		return Value{}, false
	case map[string]any:
		return Nested(FromAny(val)), true
	}

	switch reflect.ValueOf(raw).Kind() {
	case reflect.Func, reflect.Chan:
		return Value{}, false
	}
	return Value{}, false
}

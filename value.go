// value.go — the brace runtime value model.
//
// Values form a small tagged sum: Nil, Int, Float, Bool, Str, List, Map and
// Func. The tag determines which Go type lives in Value.Data (see ValueTag).
// Lists, maps and closures are reference values: copying a Value copies the
// pointer, so every alias observes in-place mutation. Maps preserve key
// insertion order via MapObject.Keys; order-sensitive operations must iterate
// Keys, never Entries.
package brace

import (
	"strconv"
	"strings"
)

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VTNil   ValueTag = iota // no payload
	VTInt                   // int64
	VTFloat                 // float64
	VTBool                  // bool
	VTStr                   // string
	VTList                  // *ListObject
	VTMap                   // *MapObject
	VTFunc                  // *Fun
)

// Value is the universal runtime carrier used by the evaluator.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// Nil is the singleton nil Value.
var Nil = Value{Tag: VTNil}

// Primitive constructors.
func Int(n int64) Value     { return Value{Tag: VTInt, Data: n} }
func Float(f float64) Value { return Value{Tag: VTFloat, Data: f} }
func Bool(b bool) Value     { return Value{Tag: VTBool, Data: b} }
func Str(s string) Value    { return Value{Tag: VTStr, Data: s} }

// ListObject is the shared backing store of a list value. Two Values holding
// the same *ListObject alias the same elements.
type ListObject struct {
	Elems []Value
}

// List wraps elems into a fresh list value. The slice is owned by the list
// afterwards.
func List(elems []Value) Value {
	return Value{Tag: VTList, Data: &ListObject{Elems: elems}}
}

// MapObject is an insertion-ordered map. Entries holds the key/value storage;
// Keys records first-insertion order and is the iteration order.
type MapObject struct {
	Entries map[string]Value
	Keys    []string
}

// NewMapObject returns an empty ordered map.
func NewMapObject() *MapObject {
	return &MapObject{Entries: make(map[string]Value)}
}

// Set inserts or updates key. A new key is appended to the insertion order.
func (m *MapObject) Set(key string, v Value) {
	if _, ok := m.Entries[key]; !ok {
		m.Keys = append(m.Keys, key)
	}
	m.Entries[key] = v
}

// Get returns the value for key and whether it was present.
func (m *MapObject) Get(key string) (Value, bool) {
	v, ok := m.Entries[key]
	return v, ok
}

// Delete removes key, keeping the order of the remaining keys.
func (m *MapObject) Delete(key string) bool {
	if _, ok := m.Entries[key]; !ok {
		return false
	}
	delete(m.Entries, key)
	for i, k := range m.Keys {
		if k == key {
			m.Keys = append(m.Keys[:i], m.Keys[i+1:]...)
			break
		}
	}
	return true
}

// MapVal wraps an existing MapObject into a Value.
func MapVal(m *MapObject) Value { return Value{Tag: VTMap, Data: m} }

// Fun is a user-defined function: parameter names, an unevaluated body and the
// environment captured at definition time. The captured Env shares identity
// with the defining frames, so later rebinding of a captured name is visible
// to subsequent calls.
type Fun struct {
	Name   string
	Params []string
	Body   []Node
	Env    *Env
}

// FunVal wraps *Fun into a Value.
func FunVal(f *Fun) Value { return Value{Tag: VTFunc, Data: f} }

// KindName returns the user-facing name of the value's kind, as reported by
// the type builtin.
func (v Value) KindName() string {
	switch v.Tag {
	case VTNil:
		return "nil"
	case VTInt:
		return "int"
	case VTFloat:
		return "float"
	case VTBool:
		return "bool"
	case VTStr:
		return "str"
	case VTList:
		return "list"
	case VTMap:
		return "map"
	case VTFunc:
		return "func"
	default:
		return "unknown"
	}
}

// Render produces the textual form used for output and string coercion.
// Nil renders empty; containers and functions render as opaque markers.
func (v Value) Render() string {
	switch v.Tag {
	case VTNil:
		return ""
	case VTInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTFloat:
		return formatFloat(v.Data.(float64))
	case VTBool:
		if v.Data.(bool) {
			return "true"
		}
		return "false"
	case VTStr:
		return v.Data.(string)
	case VTList:
		return "<List>"
	case VTMap:
		return "<Map>"
	case VTFunc:
		return "<Function>"
	default:
		return ""
	}
}

// formatFloat renders the shortest decimal string that round-trips to f.
// Whole floats keep no trailing ".0", matching integer rendering.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Truthy reports the boolean reading of a value: numbers are true when
// non-zero, strings when non-empty and neither "0" nor "false", containers
// when non-empty, functions always, Nil never.
func (v Value) Truthy() bool {
	switch v.Tag {
	case VTNil:
		return false
	case VTInt:
		return v.Data.(int64) != 0
	case VTFloat:
		return v.Data.(float64) != 0
	case VTBool:
		return v.Data.(bool)
	case VTStr:
		s := v.Data.(string)
		return s != "" && s != "0" && s != "false"
	case VTList:
		return len(v.Data.(*ListObject).Elems) > 0
	case VTMap:
		return len(v.Data.(*MapObject).Keys) > 0
	case VTFunc:
		return true
	default:
		return false
	}
}

// parseNumber recognizes the exact numeric forms a literal string argument may
// take: base-10 integers, 0x/0b prefixed integers, and floats. It returns an
// Int or Float value.
func parseNumber(s string) (Value, bool) {
	if s == "" {
		return Nil, false
	}
	body, neg := s, false
	if body[0] == '+' || body[0] == '-' {
		neg = body[0] == '-'
		body = body[1:]
	}
	if strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X") {
		n, err := strconv.ParseInt(body[2:], 16, 64)
		if err != nil {
			return Nil, false
		}
		if neg {
			n = -n
		}
		return Int(n), true
	}
	if strings.HasPrefix(body, "0b") || strings.HasPrefix(body, "0B") {
		n, err := strconv.ParseInt(body[2:], 2, 64)
		if err != nil {
			return Nil, false
		}
		if neg {
			n = -n
		}
		return Int(n), true
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(n), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f), true
	}
	return Nil, false
}

// AsNumber coerces v to Int or Float. Literal string arguments that parse
// exactly as a number coerce; everything else fails.
func AsNumber(v Value) (Value, bool) {
	switch v.Tag {
	case VTInt, VTFloat:
		return v, true
	case VTStr:
		return parseNumber(v.Data.(string))
	default:
		return Nil, false
	}
}

// numFloat widens a numeric value to float64.
func numFloat(v Value) float64 {
	if v.Tag == VTInt {
		return float64(v.Data.(int64))
	}
	return v.Data.(float64)
}

// Equal implements the language's eq contract: numeric kinds (and numeric
// strings) compare by value after promotion, strings compare by contents,
// lists and maps compare structurally, functions by identity. Values of
// unrelated kinds are unequal.
func Equal(a, b Value) bool {
	if na, ok := AsNumber(a); ok {
		if nb, ok := AsNumber(b); ok {
			if na.Tag == VTFloat || nb.Tag == VTFloat {
				return numFloat(na) == numFloat(nb)
			}
			return na.Data.(int64) == nb.Data.(int64)
		}
	}
	if a.Tag != b.Tag {
		// Nil compares equal to the empty string, as in the original
		// comparison rules.
		if a.Tag == VTNil && b.Tag == VTStr {
			return b.Data.(string) == ""
		}
		if a.Tag == VTStr && b.Tag == VTNil {
			return a.Data.(string) == ""
		}
		return false
	}
	switch a.Tag {
	case VTNil:
		return true
	case VTBool:
		return a.Data.(bool) == b.Data.(bool)
	case VTStr:
		return a.Data.(string) == b.Data.(string)
	case VTList:
		la, lb := a.Data.(*ListObject), b.Data.(*ListObject)
		if la == lb {
			return true
		}
		if len(la.Elems) != len(lb.Elems) {
			return false
		}
		for i := range la.Elems {
			if !Equal(la.Elems[i], lb.Elems[i]) {
				return false
			}
		}
		return true
	case VTMap:
		ma, mb := a.Data.(*MapObject), b.Data.(*MapObject)
		if ma == mb {
			return true
		}
		if len(ma.Keys) != len(mb.Keys) {
			return false
		}
		for k, av := range ma.Entries {
			bv, ok := mb.Entries[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	case VTFunc:
		return a.Data.(*Fun) == b.Data.(*Fun)
	default:
		return false
	}
}

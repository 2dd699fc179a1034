// Package rawjson decodes untyped JSON into a tree that keeps object keys in
// the order they were written. Hospital data files group wards by floor
// labels and the order of those sections is the order results are returned in,
// which map[string]any cannot preserve.
package rawjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the JSON type held by a Value
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "null"
	}
}

// Member is a single key/value pair of an object
type Member struct {
	Key   string
	Value Value
}

// Value is a decoded JSON value. The zero Value is JSON null.
type Value struct {
	kind    Kind
	boolean bool
	number  json.Number
	text    string
	elems   []Value
	members []Member
	index   map[string]int
}

// NewBool returns a boolean value
func NewBool(b bool) Value {
	return Value{kind: Bool, boolean: b}
}

// NewNumber returns a numeric value
func NewNumber(f float64) Value {
	return Value{kind: Number, number: json.Number(strconv.FormatFloat(f, 'g', -1, 64))}
}

// NewString returns a string value
func NewString(s string) Value {
	return Value{kind: String, text: s}
}

// NewArray returns an array holding elems in order
func NewArray(elems ...Value) Value {
	out := make([]Value, len(elems))
	copy(out, elems)
	return Value{kind: Array, elems: out}
}

// NewObject returns an object holding members in order. A repeated key
// keeps its first position and its last value, as JSON.parse does.
func NewObject(members ...Member) Value {
	v := Value{kind: Object, members: []Member{}, index: map[string]int{}}
	for _, m := range members {
		v.set(m.Key, m.Value)
	}
	return v
}

func (v *Value) set(key string, val Value) {
	if i, ok := v.index[key]; ok {
		v.members[i].Value = val
		return
	}
	v.index[key] = len(v.members)
	v.members = append(v.members, Member{Key: key, Value: val})
}

// Kind returns the JSON type of v
func (v Value) Kind() Kind { return v.kind }

// IsArray reports whether v is a JSON array
func (v Value) IsArray() bool { return v.kind == Array }

// IsObject reports whether v is a JSON object
func (v Value) IsObject() bool { return v.kind == Object }

// Elements returns the elements of an array, or nil for any other kind
func (v Value) Elements() []Value {
	if v.kind != Array {
		return nil
	}
	return v.elems
}

// Members returns the members of an object in insertion order, or nil for any other kind
func (v Value) Members() []Member {
	if v.kind != Object {
		return nil
	}
	return v.members
}

// Get returns the value stored under key when v is an object
func (v Value) Get(key string) (Value, bool) {
	if v.kind != Object {
		return Value{}, false
	}
	i, ok := v.index[key]
	if !ok {
		return Value{}, false
	}
	return v.members[i].Value, true
}

// Float returns the numeric value of a number, or 0 for any other kind.
// Literals beyond float64 range become ±Inf, as in JavaScript.
func (v Value) Float() float64 {
	if v.kind != Number {
		return 0
	}
	f, err := strconv.ParseFloat(string(v.number), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return f
}

// Truthy follows JavaScript truthiness: null, false, 0 and "" are falsy,
// every array and object is truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case Bool:
		return v.boolean
	case Number:
		f := v.Float()
		return f != 0 && !math.IsNaN(f)
	case String:
		return v.text != ""
	case Array, Object:
		return true
	default:
		return false
	}
}

// String renders v the way JavaScript's String() would.
func (v Value) String() string {
	switch v.kind {
	case Bool:
		return strconv.FormatBool(v.boolean)
	case Number:
		return formatNumber(v.Float())
	case String:
		return v.text
	case Array:
		parts := make([]string, len(v.elems))
		for i, e := range v.elems {
			if e.kind != Null {
				parts[i] = e.String()
			}
		}
		return strings.Join(parts, ",")
	case Object:
		return "[object Object]"
	default:
		return "null"
	}
}

func formatNumber(f float64) string {
	switch {
	case f == 0:
		return "0"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'g', -1, 64)
		s = strings.Replace(s, "e-0", "e-", 1)
		return strings.Replace(s, "e+0", "e+", 1)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// MarshalJSON encodes v with object keys in insertion order
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case Bool:
		buf.WriteString(strconv.FormatBool(v.boolean))
	case Number:
		buf.WriteString(v.number.String())
	case String:
		b, err := json.Marshal(v.text)
		if err != nil {
			return err
		}
		buf.Write(b)
	case Array:
		buf.WriteByte('[')
		for i, e := range v.elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := e.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case Object:
		buf.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(m.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := m.Value.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		buf.WriteString("null")
	}
	return nil
}

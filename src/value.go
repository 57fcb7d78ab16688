package numo

import (
	"strconv"
	"strings"
)

// Kind is the type tag of a value. The numeric tag matches the digit that
// creates a variable of that kind.
type Kind int

const (
	KindInt   Kind = 3
	KindText  Kind = 4
	KindBool  Kind = 5
	KindFloat Kind = 6
	KindArray Kind = 7
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindText:
		return "string"
	case KindBool:
		return "bool"
	case KindFloat:
		return "float"
	case KindArray:
		return "array"
	}
	return "unknown"
}

// KindForDigit maps a variable-creating digit to its kind
func KindForDigit(d byte) (Kind, bool) {
	if d < '3' || d > '7' {
		return 0, false
	}
	return Kind(d - '0'), true
}

// Value is the closed set of runtime values. Only the types in this file
// implement it.
type Value interface {
	Kind() Kind
	String() string
	numoValue()
}

// Int is a signed integer value
type Int int64

// Text is a bounded string value; build it with NewText
type Text string

// Bool is a boolean value
type Bool bool

// Float is a double-precision value
type Float float64

// Array is a bounded sequence of Int
type Array struct {
	items []Int
}

func (Int) numoValue()   {}
func (Text) numoValue()  {}
func (Bool) numoValue()  {}
func (Float) numoValue() {}
func (Array) numoValue() {}

func (Int) Kind() Kind   { return KindInt }
func (Text) Kind() Kind  { return KindText }
func (Bool) Kind() Kind  { return KindBool }
func (Float) Kind() Kind { return KindFloat }
func (Array) Kind() Kind { return KindArray }

func (v Int) String() string { return strconv.FormatInt(int64(v), 10) }
func (v Text) String() string { return string(v) }
func (v Bool) String() string { return strconv.FormatBool(bool(v)) }
func (v Float) String() string {
	return strconv.FormatFloat(float64(v), 'f', 2, 64)
}

func (a Array) String() string {
	parts := make([]string, len(a.items))
	for i, item := range a.items {
		parts[i] = item.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// NewText validates the length of s
func NewText(s string) (Text, error) {
	if len(s) > MaxStringLen {
		return "", ErrTextTooLong
	}
	return Text(s), nil
}

// NewArray creates an array holding a copy of items
func NewArray(items []Int) (Array, error) {
	if len(items) > MaxArrayCapacity {
		return Array{}, ErrArrayTooLarge
	}
	buf := make([]Int, len(items), MaxArrayCapacity)
	copy(buf, items)
	return Array{items: buf}, nil
}

// Len returns the number of elements in use
func (a Array) Len() int {
	return len(a.items)
}

// Cap returns the fixed capacity
func (a Array) Cap() int {
	return MaxArrayCapacity
}

// Items returns a copy of the elements
func (a Array) Items() []Int {
	out := make([]Int, len(a.items))
	copy(out, a.items)
	return out
}

// Append returns a new array with v appended
func (a Array) Append(v Int) (Array, error) {
	if len(a.items) >= MaxArrayCapacity {
		return a, ErrArrayTooLarge
	}
	return NewArray(append(a.Items(), v))
}

// IsNumeric reports whether v takes part in math operations
func IsNumeric(v Value) bool {
	switch v.(type) {
	case Int, Float:
		return true
	}
	return false
}

// AsFloat converts a numeric value to float64
func AsFloat(v Value) (float64, bool) {
	switch n := v.(type) {
	case Int:
		return float64(n), true
	case Float:
		return float64(n), true
	}
	return 0, false
}

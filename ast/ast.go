// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines the value model for decoded JSON, and a parser that
// constructs values from JSON source.
package ast

import (
	"fmt"
	"maps"
	"slices"
)

// Kind denotes the kind of a JSON value.
type Kind byte

// Constants defining the valid Kind values.
const (
	Null   Kind = iota // the null constant
	Bool               // a Boolean constant, true or false
	Number             // a number
	String             // a string
	Array              // an array of values
	Object             // a collection of key-value members
)

var kindStr = [...]string{
	Null:   "null",
	Bool:   "boolean",
	Number: "number",
	String: "string",
	Array:  "array",
	Object: "object",
}

func (k Kind) String() string {
	if int(k) < len(kindStr) {
		return kindStr[k]
	}
	return "invalid"
}

// A Value is a single JSON datum: a closed union over the six JSON kinds.
// The zero Value is the null constant.
//
// A Value exclusively owns its children. Trees built by the parser contain no
// sharing or back-references, so a Value can never be cyclic.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	arr  []Value
	obj  map[string]Value
}

// NewBool constructs a Boolean value.
func NewBool(v bool) Value { return Value{kind: Bool, b: v} }

// NewNumber constructs a number value. Numbers are 64-bit floating-point; the
// integer-vs-float distinction of the source text is not preserved.
func NewNumber(v float64) Value { return Value{kind: Number, num: v} }

// NewString constructs a string value.
func NewString(s string) Value { return Value{kind: String, str: s} }

// NewArray constructs an array value with the given elements. The slice is
// retained by the result.
func NewArray(elems ...Value) Value { return Value{kind: Array, arr: elems} }

// NewObject constructs an object value with the given members. The map is
// retained by the result; a nil map is treated as empty.
func NewObject(members map[string]Value) Value {
	if members == nil {
		members = make(map[string]Value)
	}
	return Value{kind: Object, obj: members}
}

// Kind reports the kind of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null constant.
func (v Value) IsNull() bool { return v.kind == Null }

// Bool reports the truth value of v if it is a Boolean, or false otherwise.
func (v Value) Bool() bool { return v.b }

// Float reports the value of v as a float64 if it is a number, or 0.
func (v Value) Float() float64 { return v.num }

// Text reports the content of v if it is a string, or "".
func (v Value) Text() string { return v.str }

// Len reports the number of elements of an array or members of an object.
// It is 0 for values of any other kind.
func (v Value) Len() int {
	if v.kind == Object {
		return len(v.obj)
	}
	return len(v.arr)
}

// At returns the element of an array value at offset i.
// It panics if v is not an array or i is out of range.
func (v Value) At(i int) Value {
	if v.kind != Array {
		panic(fmt.Sprintf("cannot index %v value", v.kind))
	}
	return v.arr[i]
}

// Find reports whether an object value has a member with the given key, and
// if so returns its value. For values of any other kind it reports a zero
// Value and false.
func (v Value) Find(key string) (Value, bool) {
	m, ok := v.obj[key]
	return m, ok
}

// Keys returns the member keys of an object value in sorted order.
// It is nil for values of any other kind.
func (v Value) Keys() []string {
	if v.obj == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(v.obj))
}

// Equal reports whether v and w are structurally equal: the same kind with
// equal contents, recursively.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case Bool:
		return v.b == w.b
	case Number:
		return v.num == w.num
	case String:
		return v.str == w.str
	case Array:
		return slices.EqualFunc(v.arr, w.arr, Value.Equal)
	case Object:
		if len(v.obj) != len(w.obj) {
			return false
		}
		for key, m := range v.obj {
			o, ok := w.obj[key]
			if !ok || !m.Equal(o) {
				return false
			}
		}
		return true
	default:
		return true // null
	}
}

// ToValue converts a plain Go value into a Value. The input must be nil, a
// bool, string, float64, int, int64, a []any of such values, a map[string]any
// of such values, or a Value, which is returned unmodified. ToValue panics if
// v does not have one of these types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Value{}
	case Value:
		return t
	case bool:
		return NewBool(t)
	case float64:
		return NewNumber(t)
	case int:
		return NewNumber(float64(t))
	case int64:
		return NewNumber(float64(t))
	case string:
		return NewString(t)
	case []any:
		elems := make([]Value, len(t))
		for i, e := range t {
			elems[i] = ToValue(e)
		}
		return NewArray(elems...)
	case map[string]any:
		members := make(map[string]Value, len(t))
		for key, m := range t {
			members[key] = ToValue(m)
		}
		return NewObject(members)
	}
	panic(fmt.Sprintf("invalid value %T", v))
}

// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package jsonvalue

import (
	"strconv"

	"github.com/goccy/go-json"
)

// Kind identifies the JSON kind of the value held by a [ReadOnly] view.
type Kind int

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String implements the [fmt.Stringer] interface.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// ReadOnly is a deeply read-only view over a structural value. The
// value is copied once when the view is created, so later mutation of
// the source never shows through, and nothing handed out by the view
// allows mutating what it holds.
//
// The zero ReadOnly views null.
type ReadOnly struct {
	v any
}

// Wrap creates a read-only view of v.
func Wrap(v any) ReadOnly {
	return ReadOnly{v: Clone(v)}
}

// child wraps an already normalized value without re-copying it.
func child(v any) ReadOnly {
	return ReadOnly{v: v}
}

// Kind reports the JSON kind of the viewed value.
func (r ReadOnly) Kind() Kind {
	switch r.v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case string:
		return KindString
	case Object:
		return KindObject
	case Array:
		return KindArray
	default:
		if _, ok := numberOf(r.v); ok {
			return KindNumber
		}
		return KindInvalid
	}
}

// IsNull reports whether the viewed value is JSON null.
func (r ReadOnly) IsNull() bool {
	return r.v == nil
}

// AsBool returns the viewed value as a bool.
func (r ReadOnly) AsBool() (bool, bool) {
	b, ok := r.v.(bool)
	return b, ok
}

// AsString returns the viewed value as a string.
func (r ReadOnly) AsString() (string, bool) {
	s, ok := r.v.(string)
	return s, ok
}

// AsNumber returns the viewed value as a [json.Number].
func (r ReadOnly) AsNumber() (json.Number, bool) {
	return numberOf(r.v)
}

// AsInt returns the viewed value as an int64, if it is a number
// representable as one.
func (r ReadOnly) AsInt() (int64, bool) {
	n, ok := numberOf(r.v)
	if !ok {
		return 0, false
	}
	i, err := n.Int64()
	if err != nil {
		return 0, false
	}
	return i, true
}

// AsFloat returns the viewed value as a float64, if it is a number.
func (r ReadOnly) AsFloat() (float64, bool) {
	n, ok := numberOf(r.v)
	if !ok {
		return 0, false
	}
	f, err := n.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}

// Len returns the number of entries of an object or elements of an
// array, and zero for every other kind.
func (r ReadOnly) Len() int {
	switch x := r.v.(type) {
	case Object:
		return len(x)
	case Array:
		return len(x)
	default:
		return 0
	}
}

// Key returns a view of the value under the named key of an object.
func (r ReadOnly) Key(name string) (ReadOnly, bool) {
	o, ok := r.v.(Object)
	if !ok {
		return ReadOnly{}, false
	}
	v, ok := o[name]
	if !ok {
		return ReadOnly{}, false
	}
	return child(v), true
}

// Index returns a view of the i-th element of an array.
func (r ReadOnly) Index(i int) (ReadOnly, bool) {
	a, ok := r.v.(Array)
	if !ok || i < 0 || i >= len(a) {
		return ReadOnly{}, false
	}
	return child(a[i]), true
}

// Keys returns the sorted keys of an object, and nil for every other
// kind.
func (r ReadOnly) Keys() []string {
	o, ok := r.v.(Object)
	if !ok {
		return nil
	}
	return Keys(o)
}

// Each visits every entry of an object in sorted key order, or every
// element of an array in order. Returning false from fn stops the
// walk early.
func (r ReadOnly) Each(fn func(key string, v ReadOnly) bool) {
	switch x := r.v.(type) {
	case Object:
		for _, k := range Keys(x) {
			if !fn(k, child(x[k])) {
				return
			}
		}
	case Array:
		for i, ev := range x {
			if !fn(strconv.Itoa(i), child(ev)) {
				return
			}
		}
	}
}

// Interface returns a deep copy of the viewed value, so mutating the
// result cannot reach back into the view.
func (r ReadOnly) Interface() any {
	return Clone(r.v)
}

// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package shape

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Nullable represents a value that is optionally null. The zero
// Nullable is null.
//
// Unlike a pointer, a Nullable keeps its value inline and survives
// copying without aliasing. It round-trips through JSON with null
// encoding the absent state.
type Nullable[T any] struct {
	value T
	set   bool
}

// NullableOf returns a non null [Nullable] holding v.
func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{
		value: v,
		set:   true,
	}
}

// Null returns the null [Nullable] for type T.
func Null[T any]() Nullable[T] {
	return Nullable[T]{}
}

// Value returns the held value and whether one is held at all.
func (n Nullable[T]) Value() (T, bool) {
	return n.value, n.set
}

// Or returns the held value, or def if n is null.
func (n Nullable[T]) Or(def T) T {
	if !n.set {
		return def
	}
	return n.value
}

// IsNull reports whether n holds no value.
func (n Nullable[T]) IsNull() bool {
	return !n.set
}

var jsonNull = []byte("null")

// MarshalJSON implements the [json.Marshaler] interface.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.set {
		return jsonNull, nil
	}
	return json.Marshal(n.value)
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, jsonNull) {
		*n = Nullable[T]{}
		return nil
	}

	var v T
	err := json.Unmarshal(b, &v)
	if err != nil {
		return err
	}
	*n = NullableOf(v)
	return nil
}

// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package shape

import (
	"cmp"
	"slices"
)

// Integer is a constraint over every built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is a constraint over the built-in floating point types.
type Float interface {
	~float32 | ~float64
}

// Primitive is a constraint over the types a JSON scalar can decode
// onto.
type Primitive interface {
	~bool | ~string | Integer | Float
}

// Dictionary is a string keyed mapping with values of a single type,
// the shape of a homogeneous JSON object.
type Dictionary[V any] map[string]V

// Keys returns the keys of m in sorted order.
func Keys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Values returns the values of m, ordered by their sorted keys.
func Values[M ~map[K]V, K cmp.Ordered, V any](m M) []V {
	vals := make([]V, 0, len(m))
	for _, k := range Keys(m) {
		vals = append(vals, m[k])
	}
	return vals
}

// MapValues applies fn to every value of m, preserving keys.
func MapValues[M ~map[K]V, K comparable, V, U any](m M, fn func(V) U) map[K]U {
	out := make(map[K]U, len(m))
	for k, v := range m {
		out[k] = fn(v)
	}
	return out
}

// Ref returns a reference of the given value.
func Ref[T any](t T) *T {
	return &t
}

// Deref returns either the zero value for type T or the dereferenced
// value of t.
func Deref[T any](t *T) T {
	var zero T
	if t == nil {
		return zero
	}
	return *t
}

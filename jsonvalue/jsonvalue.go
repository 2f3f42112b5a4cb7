// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package jsonvalue models JSON structural values.
//
// A structural value is a JSON shaped runtime value with no behavior
// attached: nil, bool, string, [json.Number], [Array] or [Object].
// [Unmarshal] produces normalized trees built from exactly those types,
// and the helpers in this package ([Equal], [Clone], [Pick], [Merge],
// [ReadOnly]) operate over them.
package jsonvalue

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"strconv"

	"github.com/goccy/go-json"
)

// Object is a JSON object: a mapping from string keys to arbitrary
// structural values.
type Object = map[string]any

// Array is a JSON array: an ordered list of arbitrary structural
// values.
type Array = []any

// ErrTrailingData occurs when syntactically valid JSON is followed by
// further non whitespace input.
var ErrTrailingData = errors.New("jsonvalue: trailing data after top-level value")

// Unmarshal parses b into a normalized structural tree. Numbers are
// preserved as [json.Number] rather than converted to float64, so no
// precision is lost for large integers.
func Unmarshal(b []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var v any
	err := dec.Decode(&v)
	if err != nil {
		return nil, err
	}

	// Anything left beyond whitespace, parseable or not, is trailing data.
	err = dec.Decode(new(any))
	if !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	return normalize(v), nil
}

// normalize deep copies containers. Scalars are immutable and shared.
func normalize(v any) any {
	switch x := v.(type) {
	case Object:
		o := make(Object, len(x))
		for k, ev := range x {
			o[k] = normalize(ev)
		}
		return o
	case Array:
		a := make(Array, len(x))
		for i, ev := range x {
			a[i] = normalize(ev)
		}
		return a
	default:
		return v
	}
}

// Clone returns a deep copy of the structural value v. Mutating v
// afterwards never shows through the copy, and vice versa.
func Clone(v any) any {
	return normalize(v)
}

// Equal reports whether a and b are JSON deep equal: objects must hold
// equal values under the same keys, arrays must hold equal values in
// the same order and numbers are compared numerically, so 1, 1.0 and
// json.Number("1") are all equal.
func Equal(a, b any) bool {
	switch av := a.(type) {
	case Object:
		bv, ok := b.(Object)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, ev := range av {
			bev, ok := bv[k]
			if !ok || !Equal(ev, bev) {
				return false
			}
		}
		return true
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i, ev := range av {
			if !Equal(ev, bv[i]) {
				return false
			}
		}
		return true
	case nil:
		return b == nil
	default:
		return equalScalar(a, b)
	}
}

func equalScalar(a, b any) bool {
	an, aok := numberOf(a)
	bn, bok := numberOf(b)
	if aok != bok {
		return false
	}
	if aok {
		af, aerr := an.Float64()
		bf, berr := bn.Float64()
		if aerr != nil || berr != nil {
			return an.String() == bn.String()
		}
		return af == bf
	}
	return a == b
}

func numberOf(v any) (json.Number, bool) {
	switch n := v.(type) {
	case json.Number:
		return n, true
	case float64:
		return json.Number(strconv.FormatFloat(n, 'g', -1, 64)), true
	case float32:
		return json.Number(strconv.FormatFloat(float64(n), 'g', -1, 32)), true
	case int:
		return json.Number(strconv.FormatInt(int64(n), 10)), true
	case int32:
		return json.Number(strconv.FormatInt(int64(n), 10)), true
	case int64:
		return json.Number(strconv.FormatInt(n, 10)), true
	case uint64:
		return json.Number(strconv.FormatUint(n, 10)), true
	default:
		return "", false
	}
}

// Keys returns the keys of o in sorted order.
func Keys(o Object) []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Values returns the values of o, ordered by their sorted keys.
func Values(o Object) []any {
	vals := make([]any, 0, len(o))
	for _, k := range Keys(o) {
		vals = append(vals, o[k])
	}
	return vals
}

// Pick returns a new object holding deep copies of the named entries
// of o. Keys absent from o are skipped.
func Pick(o Object, keys ...string) Object {
	out := make(Object, len(keys))
	for _, k := range keys {
		v, ok := o[k]
		if !ok {
			continue
		}
		out[k] = Clone(v)
	}
	return out
}

// Omit returns a deep copy of o without the named entries.
func Omit(o Object, keys ...string) Object {
	out := make(Object, len(o))
	for k, v := range o {
		if slices.Contains(keys, k) {
			continue
		}
		out[k] = Clone(v)
	}
	return out
}

// Merge deep merges src over dst into a freshly allocated object.
// Entries of src win over entries of dst, except that two objects
// under the same key are merged recursively. Neither argument is
// mutated.
func Merge(dst, src Object) Object {
	out := make(Object, len(dst)+len(src))
	for k, v := range dst {
		out[k] = Clone(v)
	}
	for k, sv := range src {
		do, dok := out[k].(Object)
		so, sok := sv.(Object)
		if dok && sok {
			out[k] = Merge(do, so)
			continue
		}
		out[k] = Clone(sv)
	}
	return out
}

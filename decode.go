// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package typedjson

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/goccy/go-json"
)

// Decode coerces an untyped structural value, such as a
// [github.com/z5labs/typedjson/jsonvalue.Object] produced by loading
// into any, onto dst. Field names are matched via json struct tags.
//
// A handful of coercions beyond plain assignment are supported:
// [json.Number] values decode onto numeric fields, strings decode onto
// [time.Duration] fields and onto any field whose type implements
// [encoding.TextUnmarshaler].
func Decode(src, dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  dst,
		DecodeHook: composeDecodeHooks(
			jsonNumberHookFunc(),
			textUnmarshalerHookFunc(),
			timeDurationHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(src)
}

// As is the generic form of [Decode].
func As[T any](src any) (T, error) {
	var v T
	err := Decode(src, &v)
	return v, err
}

var errInvalidDecodeCondition = errors.New("invalid decode condition")

// TypeCoercionError occurs when attempting to decode a structural
// value onto a field whose type does not match the value type, up to,
// coercion.
type TypeCoercionError struct {
	from  reflect.Value
	to    reflect.Value
	Cause error
}

// Error implements the error interface.
func (e TypeCoercionError) Error() string {
	return fmt.Sprintf("failed to coerce value from %s to %s: %s", e.from.Type().Name(), e.to.Type().Name(), e.Cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e TypeCoercionError) Unwrap() error {
	return e.Cause
}

func composeDecodeHooks(hs ...mapstructure.DecodeHookFunc) mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (any, error) {
		for _, h := range hs {
			v, err := mapstructure.DecodeHookExec(h, f, t)
			if err == nil {
				return v, nil
			}
			if err == errInvalidDecodeCondition {
				continue
			}
			return nil, TypeCoercionError{
				from:  f,
				to:    t,
				Cause: err,
			}
		}
		return f.Interface(), nil
	}
}

func textUnmarshalerHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		s, ok := data.(string)
		if !ok || f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}
		result := reflect.New(t).Interface()
		u, ok := result.(encoding.TextUnmarshaler)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		err := u.UnmarshalText([]byte(s))
		if err != nil {
			return nil, err
		}
		return result, nil
	}
}

func timeDurationHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeOf(time.Duration(0)) {
			return nil, errInvalidDecodeCondition
		}

		switch d := data.(type) {
		case string:
			return time.ParseDuration(d)
		case int:
			return time.Duration(int64(d)), nil
		default:
			return nil, errInvalidDecodeCondition
		}
	}
}

// jsonNumberHookFunc handles the [json.Number] values which normalized
// structural trees carry in place of float64.
func jsonNumberHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		n, ok := data.(json.Number)
		if !ok {
			return nil, errInvalidDecodeCondition
		}

		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return n.Int64()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			i, err := n.Int64()
			if err != nil {
				return nil, err
			}
			return uint64(i), nil
		case reflect.Float32, reflect.Float64:
			return n.Float64()
		case reflect.String:
			return n.String(), nil
		default:
			return nil, errInvalidDecodeCondition
		}
	}
}

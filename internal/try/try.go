// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package try provides small helpers for turning panics and deferred
// close failures into ordinary errors.
package try

import (
	"errors"
	"fmt"
	"io"
)

// PanicError represents a recovered panic value.
type PanicError struct {
	Value any
}

// Error implements the [builtin.error] interface.
func (e PanicError) Error() string {
	return fmt.Sprintf("recovered from panic: %v", e.Value)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e PanicError) Unwrap() error {
	err, ok := e.Value.(error)
	if !ok {
		return nil
	}
	return err
}

// Recover recovers an in flight panic, if any, and joins it as a
// [PanicError] onto *err. It must be called via defer.
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}

	*err = errors.Join(*err, PanicError{Value: r})
}

// Close closes v, if it is an [io.Closer], and joins any close failure
// onto *err. It must be called via defer.
func Close(err *error, v any) {
	c, ok := v.(io.Closer)
	if !ok {
		return
	}

	cerr := c.Close()
	if cerr == nil {
		return
	}

	*err = errors.Join(*err, cerr)
}

// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package typedjson

import (
	"context"

	"github.com/z5labs/typedjson/internal/try"
)

// Future is a deferred load result. It is completed exactly once and
// may be awaited any number of times, from any goroutine.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{
		done: make(chan struct{}),
	}
}

func (f *Future[T]) complete(v T, err error) {
	f.value = v
	f.err = err
	close(f.done)
}

// recoverPanic fails the future instead of crashing the process if the
// producing goroutine panics before completing it.
func (f *Future[T]) recoverPanic() {
	var err error
	try.Recover(&err)
	if err == nil {
		return
	}

	select {
	case <-f.done:
	default:
		var zero T
		f.complete(zero, err)
	}
}

// Done returns a channel which is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the result is available or ctx is done. A resolved
// future always returns its result, even when ctx has already been
// canceled.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	default:
	}

	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, context.Cause(ctx)
	}
}

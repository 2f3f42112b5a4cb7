// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package typedjson

import (
	"context"
	"io/fs"
	"log/slog"

	"github.com/goccy/go-json"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Mode selects how a load delivers its result.
type Mode int

const (
	// NonBlocking performs the read on its own goroutine and delivers
	// the result through an unresolved [Future]. This is the default
	// discipline of [Load].
	NonBlocking Mode = iota

	// Blocking performs the read and parse before returning, so the
	// returned [Future] is already resolved.
	Blocking
)

// String implements the [fmt.Stringer] interface.
func (m Mode) String() string {
	switch m {
	case Blocking:
		return "blocking"
	default:
		return "non-blocking"
	}
}

type options struct {
	fsys      fs.FS
	log       *slog.Logger
	tp        trace.TracerProvider
	unmarshal func([]byte, any) error
}

// Option configures how a load is performed.
type Option func(*options)

// WithFS overrides the file system that paths are resolved against.
// The default resolves paths directly against the OS file system,
// absolute paths included.
func WithFS(fsys fs.FS) Option {
	return func(o *options) {
		o.fsys = fsys
	}
}

// WithLogger registers a logger for per call diagnostics. Without it
// loads are silent.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithTracerProvider overrides the [trace.TracerProvider] used for
// per load spans. The global provider is used by default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tp = tp
	}
}

// WithUnmarshalFunc replaces the JSON codec used to decode file
// contents. The default is github.com/goccy/go-json.
func WithUnmarshalFunc(f func([]byte, any) error) Option {
	return func(o *options) {
		o.unmarshal = f
	}
}

func newOptions(opts ...Option) *options {
	o := &options{
		fsys:      osFS{},
		unmarshal: json.Unmarshal,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Load reads the file at path and parses its contents as JSON into a
// value of type T, without blocking the caller. The returned [Future]
// resolves once the read and parse have completed, or fails with the
// read or parse error unchanged.
func Load[T any](ctx context.Context, path string, opts ...Option) *Future[T] {
	return LoadMode[T](ctx, path, NonBlocking, opts...)
}

// LoadSync is the blocking form of [Load]. It occupies the caller for
// the full duration of the read and parse.
func LoadSync[T any](ctx context.Context, path string, opts ...Option) (T, error) {
	return LoadMode[T](ctx, path, Blocking, opts...).Await(ctx)
}

// LoadMode is the operation underlying [Load] and [LoadSync], with the
// execution discipline chosen by mode. In [Blocking] mode the returned
// [Future] is resolved before LoadMode returns.
//
// path is treated as an opaque string. Nonexistent or unreadable paths
// surface as the file system's own error.
func LoadMode[T any](ctx context.Context, path string, mode Mode, opts ...Option) *Future[T] {
	o := newOptions(opts...)
	o.logLoad(ctx, path, mode)

	f := newFuture[T]()
	if mode == Blocking {
		f.complete(load[T](ctx, path, o))
		return f
	}

	go func() {
		defer f.recoverPanic()
		f.complete(load[T](ctx, path, o))
	}()
	return f
}

// load always reads before parsing and parses synchronously once the
// bytes are available. Failures of either stage are returned unwrapped.
func load[T any](ctx context.Context, path string, o *options) (T, error) {
	var v T

	_, span := o.tracer().Start(ctx, "load", trace.WithAttributes(
		attribute.String("path", path),
	))
	defer span.End()

	b, err := readFile(o.fsys, path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return v, err
	}

	err = o.unmarshal(b, &v)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return v, err
	}
	return v, nil
}

// pathTraceLen bounds the logged path to its trailing bytes, keeping
// the filename and immediate parent directories out of long paths.
const pathTraceLen = 32

// logLoad emits the single diagnostic record for a load call, before
// the read begins. A nil logger and a panicking handler are both
// tolerated; diagnostics must never affect the result.
func (o *options) logLoad(ctx context.Context, path string, mode Mode) {
	if o.log == nil {
		return
	}
	defer func() {
		_ = recover()
	}()

	o.log.LogAttrs(
		ctx,
		slog.LevelDebug,
		"load",
		slog.String("path", trailingPath(path)),
		slog.Bool("blocking", mode == Blocking),
	)
}

func trailingPath(path string) string {
	if len(path) <= pathTraceLen {
		return path
	}
	return path[len(path)-pathTraceLen:]
}

func (o *options) tracer() trace.Tracer {
	tp := o.tp
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return tp.Tracer("github.com/z5labs/typedjson")
}

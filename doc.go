// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package typedjson loads JSON files into typed Go values.
//
// The package exposes one underlying operation with three call shapes:
//
//   - Load: non-blocking, returns a [Future] which resolves to the value
//   - LoadSync: blocking, returns the value directly
//   - LoadMode: the underlying operation, with the mode chosen at the call site
//
// # Basic Usage
//
// Load a file into any JSON compatible type:
//
//	type Config struct {
//	    Name string `json:"name"`
//	}
//
//	cfg, err := typedjson.LoadSync[Config](ctx, "config.json")
//
// Or defer the result while other work proceeds:
//
//	f := typedjson.Load[Config](ctx, "config.json")
//	// ...
//	cfg, err := f.Await(ctx)
//
// # Collaborators
//
// Reading is delegated to an [io/fs.FS] (the OS file system by default),
// parsing to a JSON codec (github.com/goccy/go-json by default) and
// diagnostics to an optional [log/slog.Logger]. All three are injectable
// via [Option]s, which keeps loads trivially testable against
// [testing/fstest.MapFS].
//
// # Failure Semantics
//
// Read and parse failures propagate to the caller unchanged. The package
// performs no retries, supplies no fallback values and never wraps the
// underlying error, so callers can match failures directly with
// [errors.Is] and [errors.As]:
//
//	_, err := typedjson.LoadSync[Config](ctx, "missing.json")
//	if errors.Is(err, fs.ErrNotExist) {
//	    // ...
//	}
//
// Note that no runtime shape validation is performed. The type parameter
// is a compile time promise only; valid JSON which matches none of the
// expected fields still loads successfully.
package typedjson

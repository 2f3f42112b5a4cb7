// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package shape provides generic utilities for describing the shapes
// of JSON compatible data.
//
// Most of the package constrains the compiler rather than doing work
// at runtime: [Primitive], [Integer] and [Float] are constraints over
// the JSON scalar types, [Dictionary] names the string keyed mapping
// shape and [Nullable] represents a value that is optionally null.
//
// # Contracts Without A Runtime Rendering
//
// A few shape transformations common in structurally typed languages
// have no Go equivalent and are carried as documented conventions
// instead:
//
//   - A deeply read-only mirror of a structure is rendered at runtime
//     by [github.com/z5labs/typedjson/jsonvalue.ReadOnly] rather than
//     by the type system.
//   - A "partial" view of a structure (every field optional) is
//     conventionally expressed by declaring fields as [Nullable] or as
//     pointers, with [Ref] and [Deref] bridging the two.
//   - The union of all property value types of a structure is rendered
//     as value extraction via [Values].
package shape

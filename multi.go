// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package typedjson

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// LoadAll loads every path concurrently, taking inspiration from
// io.MultiWriter. The returned slice is aligned positionally with
// paths. If any load fails the first failure is returned and the
// remaining loads are abandoned.
func LoadAll[T any](ctx context.Context, paths []string, opts ...Option) ([]T, error) {
	o := newOptions(opts...)

	vals := make([]T, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		o.logLoad(gctx, path, NonBlocking)

		g.Go(func() error {
			v, err := load[T](gctx, path, o)
			if err != nil {
				return err
			}
			vals[i] = v
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err
	}
	return vals, nil
}

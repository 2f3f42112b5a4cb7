// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package typedjson_test

import (
	"context"
	"fmt"
	"testing/fstest"

	"github.com/z5labs/typedjson"
)

func ExampleLoadSync() {
	fsys := fstest.MapFS{
		"config.json": &fstest.MapFile{Data: []byte(`{"name":"bedrock"}`)},
	}

	type Config struct {
		Name string `json:"name"`
	}

	cfg, err := typedjson.LoadSync[Config](context.Background(), "config.json", typedjson.WithFS(fsys))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(cfg.Name)
	// Output: bedrock
}

func ExampleLoad() {
	fsys := fstest.MapFS{
		"config.json": &fstest.MapFile{Data: []byte(`{"name":"bedrock"}`)},
	}

	type Config struct {
		Name string `json:"name"`
	}

	f := typedjson.Load[Config](context.Background(), "config.json", typedjson.WithFS(fsys))

	cfg, err := f.Await(context.Background())
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(cfg.Name)
	// Output: bedrock
}

// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package jsonvalue

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestUnmarshal(t *testing.T) {
	t.Run("will produce a normalized tree", func(t *testing.T) {
		v, err := Unmarshal([]byte(`{"name":"typedjson","port":8080,"tags":["a","b"],"meta":{"ok":true,"ref":null}}`))
		require.Nil(t, err)

		o, ok := v.(Object)
		require.True(t, ok)
		require.Equal(t, "typedjson", o["name"])
		require.Equal(t, json.Number("8080"), o["port"])

		tags, ok := o["tags"].(Array)
		require.True(t, ok)
		require.Equal(t, Array{"a", "b"}, tags)

		meta, ok := o["meta"].(Object)
		require.True(t, ok)
		require.Equal(t, true, meta["ok"])
		require.Nil(t, meta["ref"])
	})

	t.Run("will preserve large integers", func(t *testing.T) {
		v, err := Unmarshal([]byte(`{"id":9007199254740993}`))
		require.Nil(t, err)

		id, err := v.(Object)["id"].(json.Number).Int64()
		require.Nil(t, err)
		require.Equal(t, int64(9007199254740993), id)
	})

	t.Run("will fail on invalid JSON", func(t *testing.T) {
		_, err := Unmarshal([]byte(`{name:}`))
		require.NotNil(t, err)
	})

	t.Run("will fail on trailing data", func(t *testing.T) {
		_, err := Unmarshal([]byte(`{"a":1} trailing`))
		require.ErrorIs(t, err, ErrTrailingData)
	})

	t.Run("will accept scalar top level values", func(t *testing.T) {
		v, err := Unmarshal([]byte(`"hello"`))
		require.Nil(t, err)
		require.Equal(t, "hello", v)
	})
}

func TestEqual(t *testing.T) {
	testCases := []struct {
		name  string
		a     any
		b     any
		equal bool
	}{
		{
			name:  "identical objects",
			a:     Object{"a": json.Number("1")},
			b:     Object{"a": json.Number("1")},
			equal: true,
		},
		{
			name:  "numbers across representations",
			a:     Object{"a": json.Number("1")},
			b:     Object{"a": float64(1)},
			equal: true,
		},
		{
			name:  "integer and decimal forms",
			a:     json.Number("1"),
			b:     json.Number("1.0"),
			equal: true,
		},
		{
			name:  "differing values",
			a:     Object{"a": json.Number("1")},
			b:     Object{"a": json.Number("2")},
			equal: false,
		},
		{
			name:  "differing keys",
			a:     Object{"a": json.Number("1")},
			b:     Object{"b": json.Number("1")},
			equal: false,
		},
		{
			name:  "array order matters",
			a:     Array{"a", "b"},
			b:     Array{"b", "a"},
			equal: false,
		},
		{
			name:  "nested structures",
			a:     Object{"a": Array{Object{"b": true}}},
			b:     Object{"a": Array{Object{"b": true}}},
			equal: true,
		},
		{
			name:  "null against null",
			a:     nil,
			b:     nil,
			equal: true,
		},
		{
			name:  "null against value",
			a:     nil,
			b:     false,
			equal: false,
		},
		{
			name:  "string against number",
			a:     "1",
			b:     json.Number("1"),
			equal: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.equal, Equal(tc.a, tc.b))
			require.Equal(t, tc.equal, Equal(tc.b, tc.a))
		})
	}
}

func TestClone(t *testing.T) {
	t.Run("will not share containers with the source", func(t *testing.T) {
		src := Object{
			"meta": Object{"ok": true},
			"tags": Array{"a"},
		}

		cloned := Clone(src).(Object)
		src["meta"].(Object)["ok"] = false
		src["tags"].(Array)[0] = "mutated"

		require.Equal(t, true, cloned["meta"].(Object)["ok"])
		require.Equal(t, "a", cloned["tags"].(Array)[0])
	})
}

func TestKeys(t *testing.T) {
	t.Run("will return keys in sorted order", func(t *testing.T) {
		o := Object{"b": 1, "a": 2, "c": 3}
		require.Equal(t, []string{"a", "b", "c"}, Keys(o))
	})
}

func TestValues(t *testing.T) {
	t.Run("will order values by their sorted keys", func(t *testing.T) {
		o := Object{"b": 2, "a": 1}
		require.Equal(t, []any{1, 2}, Values(o))
	})
}

func TestPick(t *testing.T) {
	t.Run("will keep only the named entries", func(t *testing.T) {
		o := Object{"a": 1, "b": 2, "c": 3}
		require.Equal(t, Object{"a": 1, "c": 3}, Pick(o, "a", "c", "missing"))
	})
}

func TestOmit(t *testing.T) {
	t.Run("will drop the named entries", func(t *testing.T) {
		o := Object{"a": 1, "b": 2, "c": 3}
		require.Equal(t, Object{"b": 2}, Omit(o, "a", "c"))
	})
}

func TestMerge(t *testing.T) {
	t.Run("will let src win over dst", func(t *testing.T) {
		out := Merge(Object{"a": 1}, Object{"a": 2})
		require.Equal(t, Object{"a": 2}, out)
	})

	t.Run("will merge nested objects recursively", func(t *testing.T) {
		dst := Object{"meta": Object{"a": 1, "b": 2}}
		src := Object{"meta": Object{"b": 3, "c": 4}}

		out := Merge(dst, src)
		require.Equal(t, Object{"meta": Object{"a": 1, "b": 3, "c": 4}}, out)
	})

	t.Run("will not mutate either argument", func(t *testing.T) {
		dst := Object{"meta": Object{"a": 1}}
		src := Object{"meta": Object{"b": 2}}

		_ = Merge(dst, src)
		require.Equal(t, Object{"meta": Object{"a": 1}}, dst)
		require.Equal(t, Object{"meta": Object{"b": 2}}, src)
	})
}

// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package typedjson

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("will decode onto json tagged fields", func(t *testing.T) {
		src := map[string]any{
			"name": "typedjson",
			"port": json.Number("8080"),
		}

		var cfg testConfig
		err := Decode(src, &cfg)
		require.Nil(t, err)
		require.Equal(t, testConfig{Name: "typedjson", Port: 8080}, cfg)
	})

	t.Run("will decode numbers onto float fields", func(t *testing.T) {
		src := map[string]any{
			"ratio": json.Number("0.5"),
		}

		var out struct {
			Ratio float64 `json:"ratio"`
		}
		err := Decode(src, &out)
		require.Nil(t, err)
		require.Equal(t, 0.5, out.Ratio)
	})

	t.Run("will decode durations from strings", func(t *testing.T) {
		src := map[string]any{
			"timeout": "5s",
		}

		var out struct {
			Timeout time.Duration `json:"timeout"`
		}
		err := Decode(src, &out)
		require.Nil(t, err)
		require.Equal(t, 5*time.Second, out.Timeout)
	})

	t.Run("will decode onto encoding.TextUnmarshaler implementations", func(t *testing.T) {
		src := map[string]any{
			"start": "2026-01-02T15:04:05Z",
		}

		var out struct {
			Start time.Time `json:"start"`
		}
		err := Decode(src, &out)
		require.Nil(t, err)
		require.Equal(t, time.Date(2026, time.January, 2, 15, 4, 5, 0, time.UTC), out.Start)
	})

	t.Run("will report a coercion failure", func(t *testing.T) {
		src := map[string]any{
			"timeout": "not a duration",
		}

		var out struct {
			Timeout time.Duration `json:"timeout"`
		}
		err := Decode(src, &out)
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "failed to coerce")
	})
}

func TestAs(t *testing.T) {
	t.Run("will return the decoded value", func(t *testing.T) {
		src := map[string]any{
			"name": "typedjson",
			"port": json.Number("8080"),
		}

		cfg, err := As[testConfig](src)
		require.Nil(t, err)
		require.Equal(t, testConfig{Name: "typedjson", Port: 8080}, cfg)
	})
}

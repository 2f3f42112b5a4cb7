// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package typedjson

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOSFS(t *testing.T) {
	t.Run("will open absolute paths", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.json")

		err := os.WriteFile(path, []byte(`{"name":"typedjson"}`), 0o600)
		require.Nil(t, err)

		cfg, err := LoadSync[testConfig](context.Background(), path)
		require.Nil(t, err)
		require.Equal(t, "typedjson", cfg.Name)
	})

	t.Run("will surface the os error for missing files", func(t *testing.T) {
		_, err := osFS{}.Open(filepath.Join(t.TempDir(), "missing.json"))
		require.True(t, errors.Is(err, fs.ErrNotExist))
	})
}

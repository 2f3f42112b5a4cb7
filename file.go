// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package typedjson

import (
	"io"
	"io/fs"
	"os"

	"github.com/z5labs/typedjson/internal/try"
)

// osFS is the default file system for loads. Unlike [os.DirFS] it
// places no restriction on the shape of paths, since load paths are
// opaque caller strings and are frequently absolute.
type osFS struct{}

// Open implements the [fs.FS] interface.
func (osFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

func readFile(fsys fs.FS, path string) (_ []byte, err error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer try.Close(&err, f)

	return io.ReadAll(f)
}

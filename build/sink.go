// seehuhn.de/go/wavefont - generate font sources for the Wavefont typeface
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package build

import (
	"os"
	"path/filepath"
)

// Sink receives the generated files.
// Paths use forward slashes and are relative to the output root.
// Existing files must be overwritten.
type Sink interface {
	WriteFile(path string, data []byte) error
}

// DirSink writes files below a directory of the local file system.
type DirSink struct {
	Root string
}

// WriteFile writes data to the file, creating parent directories as needed.
func (d *DirSink) WriteFile(path string, data []byte) error {
	fname := filepath.Join(d.Root, filepath.FromSlash(path))
	err := os.MkdirAll(filepath.Dir(fname), 0o755)
	if err != nil {
		return err
	}
	return os.WriteFile(fname, data, 0o644)
}

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

// Package memfs provides an in-memory file tree for tests.
package memfs

import (
	"io/fs"
	"maps"
	"slices"
	"sync"
)

// FS is an in-memory collection of files, keyed by slash-separated path.
// It can be used as a build.Sink.
type FS struct {
	mu    sync.Mutex
	files map[string][]byte
	log   []string
}

// New creates an empty FS.
func New() *FS {
	return &FS{files: make(map[string][]byte)}
}

// WriteFile stores a copy of data under path, replacing earlier contents.
func (m *FS) WriteFile(path string, data []byte) error {
	if !fs.ValidPath(path) {
		return &fs.PathError{Op: "write", Path: path, Err: fs.ErrInvalid}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = slices.Clone(data)
	m.log = append(m.log, path)
	return nil
}

// ReadFile returns the contents of the file at path.
func (m *FS) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: path, Err: fs.ErrNotExist}
	}
	return slices.Clone(data), nil
}

// Paths returns the paths of all stored files, in sorted order.
func (m *FS) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Sorted(maps.Keys(m.files))
}

// Writes returns the paths passed to WriteFile, in call order.
func (m *FS) Writes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.log)
}

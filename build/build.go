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

// Package build generates the complete set of font sources for a face.
//
// [Plan] lists the files in a fixed order, [Run] renders them and hands
// them to a [Sink].  The output depends only on the face, so that running
// the generator twice yields identical files.
package build

import (
	"bytes"
	"fmt"
	"io"
	"path"

	"seehuhn.de/go/wavefont/face"
	"seehuhn.de/go/wavefont/shape"
	"seehuhn.de/go/wavefont/ufo"
)

// Request is one file to be emitted.
type Request struct {
	Path string

	// Master is nil for files shared by all masters.
	Master *face.Master

	// Glyph is set for .glif files.
	Glyph *shape.Glyph

	render func(w io.Writer) error
}

// Render returns the contents of the file.
func (r *Request) Render() ([]byte, error) {
	buf := &bytes.Buffer{}
	err := r.render(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.Path, err)
	}
	return buf.Bytes(), nil
}

// Plan returns the files to generate for face f.
//
// The designspace document comes first, followed by one block per master:
// the UFO skeleton, the cap component, the low bars, the low clip glyphs,
// the center bars and the center clip glyphs.
func Plan(f *face.Face) []*Request {
	res := []*Request{{
		Path: ufo.DesignspaceName(f),
		render: func(w io.Writer) error {
			return ufo.WriteDesignspace(w, f)
		},
	}}
	for _, m := range face.Masters {
		res = append(res, planMaster(f, m)...)
	}
	return res
}

func planMaster(f *face.Face, m *face.Master) []*Request {
	dir := ufo.MasterDir(f, m)
	glyphs := shape.Master(f, m)

	res := []*Request{
		{
			Path:   path.Join(dir, "metainfo.plist"),
			Master: m,
			render: ufo.WriteMetaInfo,
		},
		{
			Path:   path.Join(dir, "fontinfo.plist"),
			Master: m,
			render: func(w io.Writer) error {
				return ufo.WriteFontInfo(w, f, m)
			},
		},
		{
			Path:   path.Join(dir, "lib.plist"),
			Master: m,
			render: func(w io.Writer) error {
				return ufo.WriteLib(w, glyphs)
			},
		},
		{
			Path:   path.Join(dir, "layercontents.plist"),
			Master: m,
			render: ufo.WriteLayerContents,
		},
		{
			Path:   path.Join(dir, ufo.DefaultLayer, "contents.plist"),
			Master: m,
			render: func(w io.Writer) error {
				return ufo.WriteContents(w, glyphs)
			},
		},
	}
	for _, g := range glyphs {
		res = append(res, &Request{
			Path:   path.Join(dir, ufo.DefaultLayer, ufo.FileName(g.Name)),
			Master: m,
			Glyph:  g,
			render: func(w io.Writer) error {
				return ufo.EncodeGlyph(w, g)
			},
		})
	}
	return res
}

// Report summarises a generator run.
type Report struct {
	Files  int
	Glyphs int
	Bytes  int64
}

// Run generates all files of face f and writes them to sink.
func Run(sink Sink, f *face.Face) (*Report, error) {
	log := Logger()

	rep := &Report{}
	var current *face.Master
	var masterGlyphs int
	flush := func() {
		if current != nil {
			log.Info("master done", "face", f.ID, "master", current.Name, "glyphs", masterGlyphs)
		}
	}
	for _, req := range Plan(f) {
		if req.Master != current {
			flush()
			current = req.Master
			masterGlyphs = 0
		}

		data, err := req.Render()
		if err != nil {
			return nil, err
		}
		err = sink.WriteFile(req.Path, data)
		if err != nil {
			return nil, fmt.Errorf("write %s: %w", req.Path, err)
		}
		log.Debug("wrote file", "path", req.Path, "bytes", len(data))

		rep.Files++
		rep.Bytes += int64(len(data))
		if req.Glyph != nil {
			rep.Glyphs++
			masterGlyphs++
		}
	}
	flush()
	return rep, nil
}

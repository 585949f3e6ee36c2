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

package shape

import (
	"seehuhn.de/go/wavefont/face"
	"seehuhn.de/go/wavefont/units"
)

// Clip returns the clip compensation glyph for value v of face f at
// master m.
//
// With linear interpolation the ends of a short bar keep a radius tied to
// the weight and grow wider than the bar is tall.  The compensation glyph
// is a single cap with the true height of the value, fully rounded if the
// master is round at all.  It replaces the bar at heavy weights, see
// [face.Face.Clips].
func Clip(f *face.Face, m *face.Master, v int, a face.Align) *Glyph {
	height := f.Units(float64(v))
	var radius float64
	if m.Radius() != 0 {
		radius = units.Half(height)
	}
	return Cap(&CapParams{
		Name:    ClipName(v, a),
		Advance: m.Width(),
		Weight:  m.Weight,
		Height:  height,
		Radius:  radius,
		Shift:   CapShift(height, a),
	})
}

// Master returns all glyphs of face f for master m, in file order: the
// cap component, the low bars, the low clip glyphs, the center bars and the
// center clip glyphs.
func Master(f *face.Face, m *face.Master) []*Glyph {
	clips := f.Clips(face.Weight.Max)

	res := []*Glyph{CapComponent(m)}
	for _, a := range []face.Align{face.Low, face.Center} {
		for v := range f.Codes(a) {
			res = append(res, BarGlyph(f, m, v, a))
		}
		for _, v := range clips {
			res = append(res, Clip(f, m, v, a))
		}
	}
	return res
}

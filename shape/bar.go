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
	"strconv"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/wavefont/face"
	"seehuhn.de/go/wavefont/units"
)

// BarParams describes a bar glyph.
type BarParams struct {
	Name string

	// Value is the height of the bar on the scale 0..Max.
	Value, Max int

	Weight  float64
	Advance float64

	// CapSize is the height of each rounded end.
	CapSize float64

	Align face.Align
	Codes []rune
}

// Bar returns a glyph made of two cap components and a rectangle.
//
// The total height of the bar, from the bottom of the lower cap to the top
// of the upper cap, is the value converted to font units.  Value 0 gives a
// blank glyph.
func Bar(p *BarParams) *Glyph {
	g := &Glyph{
		Name:     p.Name,
		Advance:  p.Advance,
		Unicodes: p.Codes,
	}
	if p.Value == 0 {
		return g
	}

	max := float64(p.Max)
	h := units.FromValue(float64(p.Value), max)
	shift := BarShift(p.Value, p.Max, p.Align)
	l, r := 0.0, p.Weight

	g.Components = []Component{
		{Base: CapName, Offset: vec.Vec2{X: 0, Y: shift}},
		{Base: CapName, Offset: vec.Vec2{X: 0, Y: h - 2*p.CapSize + shift}},
	}
	bottom := shift + p.CapSize
	top := h + shift - p.CapSize
	g.Contours = []Contour{{
		{Pos: vec.Vec2{X: l, Y: bottom}, Type: Line},
		{Pos: vec.Vec2{X: l, Y: top}, Type: Line},
		{Pos: vec.Vec2{X: r, Y: top}, Type: Line},
		{Pos: vec.Vec2{X: r, Y: bottom}, Type: Line},
	}}
	return g
}

// BarShift returns the vertical offset of a bar of the given value.
func BarShift(value, max int, a face.Align) float64 {
	return units.FromValue(float64(max-value)*a.Factor(), float64(max))
}

// BarName returns the glyph name of the bar for value v.
func BarName(v int, a face.Align) string {
	return "_" + strconv.Itoa(v) + a.Suffix()
}

// ClipName returns the glyph name of the clip compensation glyph for value v.
func ClipName(v int, a face.Align) string {
	return "_" + strconv.Itoa(v) + ".clip" + a.Suffix()
}

// BarGlyph returns the bar for value v of face f at master m.
// The glyph is mapped to its primary code point and to all aliases.
func BarGlyph(f *face.Face, m *face.Master, v int, a face.Align) *Glyph {
	codes := []rune{f.Codes(a)[v]}
	codes = append(codes, f.Aliases(v, a)...)
	return Bar(&BarParams{
		Name:    BarName(v, a),
		Value:   v,
		Max:     f.Max,
		Weight:  m.Weight,
		Advance: m.Width(),
		CapSize: m.CapSize(),
		Align:   a,
		Codes:   codes,
	})
}

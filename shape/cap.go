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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/wavefont/face"
	"seehuhn.de/go/wavefont/units"
)

// Kappa is the relative distance of the Bézier control points from the
// end points, for a cubic approximation of a quarter circle.
const Kappa = 0.552

// CapName is the name of the shared cap glyph.
const CapName = "cap"

// CapParams describes a rounded rectangle.
type CapParams struct {
	Name    string
	Advance float64

	// Weight is the x-coordinate of the right edge.  The left edge is at 0.
	Weight float64

	Height float64
	Radius float64

	// Shift moves the shape up.
	Shift float64

	// Code, if non-zero, is the code point of the glyph.
	Code rune
}

// CapShift returns the vertical shift which aligns a shape of the given
// height.
func CapShift(height float64, a face.Align) float64 {
	return (units.UnitsPerEm - height) * a.Factor()
}

// Cap returns a glyph with a 16-point rounded rectangle outline.
//
// The contour starts on the left edge next to the top-left corner and runs
// clockwise.  Each corner consists of two control points and a smooth curve
// point, each straight edge ends in a line point.  If the radius is zero,
// the corner points coincide and the outline is a plain rectangle.
func Cap(p *CapParams) *Glyph {
	R := p.Radius
	Rc := R * (1 - Kappa)
	h := p.Height
	s := p.Shift
	l, r := 0.0, p.Weight

	pt := func(x, y float64, tp PointType) Point {
		return Point{Pos: vec.Vec2{X: x, Y: y}, Type: tp, Smooth: tp == Curve}
	}
	contour := Contour{
		pt(l, h-Rc+s, OffCurve),

		pt(l+Rc, h+s, OffCurve),
		pt(l+R, h+s, Curve),
		pt(r-R, h+s, Line),
		pt(r-Rc, h+s, OffCurve),

		pt(r, h-Rc+s, OffCurve),
		pt(r, h-R+s, Curve),
		pt(r, R+s, Line),
		pt(r, Rc+s, OffCurve),

		pt(r-Rc, s, OffCurve),
		pt(r-R, s, Curve),
		pt(l+R, s, Line),
		pt(l+Rc, s, OffCurve),

		pt(l, Rc+s, OffCurve),
		pt(l, R+s, Curve),
		pt(l, h-R+s, Line),
	}

	g := &Glyph{
		Name:     p.Name,
		Advance:  p.Advance,
		Contours: []Contour{contour},
	}
	if p.Code != 0 {
		g.Unicodes = []rune{p.Code}
	}
	return g
}

// CapComponent returns the shared cap glyph of a master.
// Bars reference it once for the bottom and once for the top end.
func CapComponent(m *face.Master) *Glyph {
	capSize := m.CapSize()
	return Cap(&CapParams{
		Name:    CapName,
		Advance: 0,
		Weight:  m.Weight,
		Height:  2 * capSize,
		Radius:  capSize,
	})
}

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

// Package shape computes the outlines of the Wavefont glyphs.
//
// Every bar is made of two instances of a shared rounded "cap" glyph,
// one at each end, and a rectangle joining them.  All coordinates are
// kept in float64; rounding happens when a glyph is serialised.
package shape

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/wavefont/units"
)

// PointType gives the role of a point in a contour.
type PointType int

// These are the point types used in Wavefont outlines.
const (
	OffCurve PointType = iota
	Line
	Curve
)

func (t PointType) String() string {
	switch t {
	case OffCurve:
		return "offcurve"
	case Line:
		return "line"
	case Curve:
		return "curve"
	default:
		return "unknown"
	}
}

// Point is a point of a contour.
//
// Curve points end a cubic Bézier segment whose two control points are
// the preceding OffCurve points.
type Point struct {
	Pos    vec.Vec2
	Type   PointType
	Smooth bool
}

// Contour is a closed sequence of points.
type Contour []Point

// Component places a copy of another glyph's outline.
type Component struct {
	Base   string
	Offset vec.Vec2
}

// Matrix returns the transformation which places the base glyph.
func (c Component) Matrix() matrix.Matrix {
	return matrix.Translate(c.Offset.X, c.Offset.Y)
}

// Glyph is the geometry of one glyph.
type Glyph struct {
	Name       string
	Advance    float64
	Unicodes   []rune
	Contours   []Contour
	Components []Component
}

// IsBlank reports whether the glyph has no outline.
func (g *Glyph) IsBlank() bool {
	return len(g.Contours) == 0 && len(g.Components) == 0
}

// Library resolves component references by glyph name.
type Library map[string]*Glyph

// Add adds glyphs to the library.
func (lib Library) Add(gg ...*Glyph) {
	for _, g := range gg {
		lib[g.Name] = g
	}
}

// Resolve returns the outline of g with all components replaced by the
// contours of their base glyphs.
func (g *Glyph) Resolve(lib Library) ([]Contour, error) {
	return g.resolve(lib, matrix.Identity, 0)
}

// maxDepth limits component nesting, to stop reference cycles.
const maxDepth = 8

func (g *Glyph) resolve(lib Library, M matrix.Matrix, depth int) ([]Contour, error) {
	if depth > maxDepth {
		return nil, &ComponentError{Glyph: g.Name, Reason: "components nested too deeply"}
	}

	var res []Contour
	for _, comp := range g.Components {
		base, ok := lib[comp.Base]
		if !ok {
			return nil, &ComponentError{Glyph: g.Name, Base: comp.Base, Reason: "missing base glyph"}
		}
		cc, err := base.resolve(lib, comp.Matrix().Mul(M), depth+1)
		if err != nil {
			return nil, err
		}
		res = append(res, cc...)
	}
	for _, c := range g.Contours {
		out := make(Contour, len(c))
		for i, p := range c {
			out[i] = p
			x, y := M.Apply(p.Pos.X, p.Pos.Y)
			out[i].Pos = vec.Vec2{X: x, Y: y}
		}
		res = append(res, out)
	}
	return res, nil
}

// Bounds returns the control box of the resolved outline.
// The result is the zero rectangle for blank glyphs.
func (g *Glyph) Bounds(lib Library) (rect.Rect, error) {
	cc, err := g.Resolve(lib)
	if err != nil {
		return rect.Rect{}, err
	}

	first := true
	var r rect.Rect
	for _, c := range cc {
		for _, p := range c {
			if first {
				r = rect.Rect{LLx: p.Pos.X, LLy: p.Pos.Y, URx: p.Pos.X, URy: p.Pos.Y}
				first = false
				continue
			}
			r.LLx = math.Min(r.LLx, p.Pos.X)
			r.LLy = math.Min(r.LLy, p.Pos.Y)
			r.URx = math.Max(r.URx, p.Pos.X)
			r.URy = math.Max(r.URy, p.Pos.Y)
		}
	}
	return r, nil
}

// BBox returns the control box of the resolved outline in integer font
// units, as it appears in the serialised glyph.
func (g *Glyph) BBox(lib Library) (funit.Rect16, error) {
	r, err := g.Bounds(lib)
	if err != nil {
		return funit.Rect16{}, err
	}
	return funit.Rect16{
		LLx: units.Round(r.LLx),
		LLy: units.Round(r.LLy),
		URx: units.Round(r.URx),
		URy: units.Round(r.URy),
	}, nil
}

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

// Package preview renders Wavefont glyphs to a bitmap.
//
// The image is meant for quick visual checks of the generated outlines.
// It is not a substitute for rendering the compiled font.
package preview

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/wavefont/shape"
	"seehuhn.de/go/wavefont/units"
)

// Options control the layout of the rendered line.
type Options struct {
	// PixelsPerEm is the size of the em square in pixels.
	PixelsPerEm float64

	// Gap is the horizontal space between glyphs, in font units.
	Gap float64

	// Ascent and Descent give the vertical extent of the canvas, in font
	// units above and below the baseline.
	Ascent, Descent float64
}

var defaultOptions = &Options{
	PixelsPerEm: 64,
	Gap:         100,
	Ascent:      1100,
	Descent:     100,
}

// Render draws the glyphs next to each other, black on white.
// Components are resolved using lib.
func Render(glyphs []*shape.Glyph, lib shape.Library, opt *Options) (*image.Gray, error) {
	if opt == nil {
		opt = defaultOptions
	}

	var width float64
	for _, g := range glyphs {
		width += g.Advance + opt.Gap
	}
	canvas := rect.Rect{
		LLx: -opt.Gap,
		LLy: -opt.Descent,
		URx: width,
		URy: opt.Ascent,
	}

	scale := opt.PixelsPerEm / units.UnitsPerEm
	w := int(math.Ceil((canvas.URx - canvas.LLx) * scale))
	h := int(math.Ceil((canvas.URy - canvas.LLy) * scale))
	img := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	// font units to device pixels, with the y-axis pointing down
	device := matrix.Matrix{scale, 0, 0, -scale, -canvas.LLx * scale, canvas.URy * scale}

	r := vector.NewRasterizer(w, h)
	var x float64
	for _, g := range glyphs {
		contours, err := g.Resolve(lib)
		if err != nil {
			return nil, err
		}
		M := matrix.Translate(x, 0).Mul(device)
		for _, c := range contours {
			addContour(r, c, M)
		}
		x += g.Advance + opt.Gap
	}
	r.Draw(img, img.Bounds(), image.Black, image.Point{})

	return img, nil
}

// addContour appends a closed contour to the rasterizer.
func addContour(r *vector.Rasterizer, c shape.Contour, M matrix.Matrix) {
	n := len(c)
	start := -1
	for i, p := range c {
		if p.Type != shape.OffCurve {
			start = i
			break
		}
	}
	if start < 0 {
		return
	}

	pt := func(v vec.Vec2) (float32, float32) {
		x, y := M.Apply(v.X, v.Y)
		return float32(x), float32(y)
	}

	r.MoveTo(pt(c[start].Pos))
	var ctrl []vec.Vec2
	for k := 1; k <= n; k++ {
		p := c[(start+k)%n]
		if p.Type == shape.OffCurve {
			ctrl = append(ctrl, p.Pos)
			continue
		}
		switch {
		case p.Type == shape.Curve && len(ctrl) >= 2:
			x1, y1 := pt(ctrl[0])
			x2, y2 := pt(ctrl[1])
			x3, y3 := pt(p.Pos)
			r.CubeTo(x1, y1, x2, y2, x3, y3)
		case p.Type == shape.Curve && len(ctrl) == 1:
			x1, y1 := pt(ctrl[0])
			x2, y2 := pt(p.Pos)
			r.QuadTo(x1, y1, x2, y2)
		default:
			r.LineTo(pt(p.Pos))
		}
		ctrl = ctrl[:0]
	}
	r.ClosePath()
}

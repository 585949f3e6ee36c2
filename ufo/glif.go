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

// Package ufo writes Wavefont glyphs as Unified Font Object sources.
//
// Each master becomes one UFO 3 directory with a single glyph layer.
// A designspace document ties the masters together and switches short
// bars to their clip compensation glyphs at heavy weights.
package ufo

import (
	"bytes"
	"encoding/xml"
	"io"
	"regexp"
	"slices"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/wavefont/shape"
	"seehuhn.de/go/wavefont/units"
)

// GlyphFormat is the GLIF format version written by EncodeGlyph.
const GlyphFormat = 2

type glifGlyph struct {
	XMLName  xml.Name      `xml:"glyph"`
	Name     string        `xml:"name,attr"`
	Format   int           `xml:"format,attr"`
	Advance  glifAdvance   `xml:"advance"`
	Unicodes []glifUnicode `xml:"unicode"`
	Outline  *glifOutline  `xml:"outline,omitempty"`
}

type glifAdvance struct {
	Width funit.Int16 `xml:"width,attr"`
}

type glifUnicode struct {
	Hex string `xml:"hex,attr"`
}

type glifOutline struct {
	Components []glifComponent `xml:"component"`
	Contours   []glifContour   `xml:"contour"`
}

type glifComponent struct {
	Base    string      `xml:"base,attr"`
	XOffset funit.Int16 `xml:"xOffset,attr"`
	YOffset funit.Int16 `xml:"yOffset,attr"`
}

type glifContour struct {
	Points []glifPoint `xml:"point"`
}

type glifPoint struct {
	X      funit.Int16 `xml:"x,attr"`
	Y      funit.Int16 `xml:"y,attr"`
	Type   string      `xml:"type,attr,omitempty"`
	Smooth string      `xml:"smooth,attr,omitempty"`
}

// EncodeGlyph writes g in GLIF format.
// All coordinates and offsets are rounded to integer font units.
func EncodeGlyph(w io.Writer, g *shape.Glyph) error {
	out := &glifGlyph{
		Name:    g.Name,
		Format:  GlyphFormat,
		Advance: glifAdvance{Width: units.Round(g.Advance)},
	}
	for _, c := range g.Unicodes {
		out.Unicodes = append(out.Unicodes, glifUnicode{Hex: units.HexCode(c)})
	}

	if !g.IsBlank() {
		outline := &glifOutline{}
		for _, comp := range g.Components {
			outline.Components = append(outline.Components, glifComponent{
				Base:    comp.Base,
				XOffset: units.Round(comp.Offset.X),
				YOffset: units.Round(comp.Offset.Y),
			})
		}
		for _, contour := range g.Contours {
			var cc glifContour
			for _, p := range contour {
				gp := glifPoint{
					X: units.Round(p.Pos.X),
					Y: units.Round(p.Pos.Y),
				}
				if p.Type != shape.OffCurve {
					gp.Type = p.Type.String()
				}
				if p.Smooth {
					gp.Smooth = "yes"
				}
				cc.Points = append(cc.Points, gp)
			}
			outline.Contours = append(outline.Contours, cc)
		}
		out.Outline = outline
	}

	return encodeXML(w, out)
}

// emptyElement matches an element without content.  The start and end
// names are compared by selfClose.
var emptyElement = regexp.MustCompile(`<([A-Za-z]+)([^<>]*)></([A-Za-z]+)>`)

// encodeXML writes v as an indented XML document.  Elements without
// content use the short form <name .../>.
func encodeXML(w io.Writer, v any) error {
	buf := &bytes.Buffer{}
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(buf)
	enc.Indent("", "  ")
	err := enc.Encode(v)
	if err != nil {
		return err
	}
	buf.WriteString("\n")

	_, err = w.Write(selfClose(buf.Bytes()))
	return err
}

func selfClose(data []byte) []byte {
	return emptyElement.ReplaceAllFunc(data, func(m []byte) []byte {
		sub := emptyElement.FindSubmatch(m)
		if !bytes.Equal(sub[1], sub[3]) {
			return m
		}
		return slices.Concat([]byte("<"), sub[1], sub[2], []byte("/>"))
	})
}

// FileName returns the file name of a glyph within the glyphs directory.
//
// Names are used verbatim: "_12.clip.center" is stored in
// "_12.clip.center.glif".  Downstream tools locate glyphs by these
// names, so the mapping must not change.
func FileName(glyphName string) string {
	return glyphName + ".glif"
}

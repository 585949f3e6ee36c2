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

package ufo

import (
	"io"

	"howett.net/plist"

	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/wavefont/face"
	"seehuhn.de/go/wavefont/shape"
	"seehuhn.de/go/wavefont/units"
)

// Creator is recorded in metainfo.plist.
const Creator = "seehuhn.de/go/wavefont"

// DefaultLayer is the directory of the only glyph layer.
const DefaultLayer = "glyphs"

func encodePlist(w io.Writer, v any) error {
	enc := plist.NewEncoderForFormat(w, plist.XMLFormat)
	enc.Indent("\t")
	return enc.Encode(v)
}

type metaInfo struct {
	Creator       string `plist:"creator"`
	FormatVersion int    `plist:"formatVersion"`
}

// WriteMetaInfo writes metainfo.plist.
func WriteMetaInfo(w io.Writer) error {
	return encodePlist(w, &metaInfo{Creator: Creator, FormatVersion: 3})
}

type fontInfo struct {
	FamilyName         string `plist:"familyName"`
	StyleName          string `plist:"styleName"`
	StyleMapFamilyName string `plist:"styleMapFamilyName"`
	StyleMapStyleName  string `plist:"styleMapStyleName"`
	VersionMajor       int    `plist:"versionMajor"`
	VersionMinor       int    `plist:"versionMinor"`

	UnitsPerEm int `plist:"unitsPerEm"`
	Ascender   int `plist:"ascender"`
	Descender  int `plist:"descender"`
	XHeight    int `plist:"xHeight"`
	CapHeight  int `plist:"capHeight"`

	OS2WeightClass int `plist:"openTypeOS2WeightClass"`
	OS2WidthClass  int `plist:"openTypeOS2WidthClass"`

	PostScriptFontName string `plist:"postscriptFontName"`
}

// WriteFontInfo writes fontinfo.plist for master m of face f.
func WriteFontInfo(w io.Writer, f *face.Face, m *face.Master) error {
	weight := os2.WeightNormal
	styleMap := "regular"
	if m.Weight > face.Weight.Min {
		weight = os2.WeightBold
		styleMap = "bold"
	}

	unitHeight := int(units.Round(f.Units(float64(f.Max))))
	info := &fontInfo{
		FamilyName:         f.Name,
		StyleName:          m.Name,
		StyleMapFamilyName: f.Name,
		StyleMapStyleName:  styleMap,
		VersionMajor:       1,
		VersionMinor:       0,

		UnitsPerEm: units.UnitsPerEm,
		Ascender:   int(units.Round(f.Units(float64(f.Ascender)))),
		Descender:  -int(units.Round(f.Units(float64(f.Descender)))),
		XHeight:    unitHeight / 2,
		CapHeight:  unitHeight,

		OS2WeightClass: int(weight),
		OS2WidthClass:  int(os2.WidthNormal),

		PostScriptFontName: f.Name + "-" + m.Name,
	}
	return encodePlist(w, info)
}

type fontLib struct {
	GlyphOrder      []string          `plist:"public.glyphOrder"`
	PostScriptNames map[string]string `plist:"public.postscriptNames"`
}

// WriteLib writes lib.plist.
//
// Glyphs with a code point get the production name of their first code
// point, so that compiled fonts carry meaningful glyph names.
func WriteLib(w io.Writer, glyphs []*shape.Glyph) error {
	lib := &fontLib{
		PostScriptNames: map[string]string{},
	}
	for _, g := range glyphs {
		lib.GlyphOrder = append(lib.GlyphOrder, g.Name)
		if len(g.Unicodes) > 0 {
			lib.PostScriptNames[g.Name] = ProductionName(g.Unicodes[0])
		}
	}
	return encodePlist(w, lib)
}

// ProductionName returns the "uniXXXX" glyph name for a code point.
// Code points outside the BMP use the "uXXXXX" form.
func ProductionName(c rune) string {
	if c > 0xFFFF {
		return units.Uni(c)
	}
	return "uni" + units.HexCode(c)
}

// WriteLayerContents writes layercontents.plist.
func WriteLayerContents(w io.Writer) error {
	return encodePlist(w, [][]string{{"public.default", DefaultLayer}})
}

// WriteContents writes the contents.plist of the glyph layer.
func WriteContents(w io.Writer, glyphs []*shape.Glyph) error {
	contents := make(map[string]string, len(glyphs))
	for _, g := range glyphs {
		contents[g.Name] = FileName(g.Name)
	}
	return encodePlist(w, contents)
}

// MasterDir returns the name of the UFO directory for master m.
func MasterDir(f *face.Face, m *face.Master) string {
	return f.Name + "-" + m.Name + ".ufo"
}

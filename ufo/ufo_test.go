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
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"howett.net/plist"

	"seehuhn.de/go/wavefont/face"
	"seehuhn.de/go/wavefont/shape"
)

func wavefont100(t *testing.T) *face.Face {
	t.Helper()
	f, err := face.Lookup("wavefont100")
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestEncodeBar(t *testing.T) {
	f := wavefont100(t)
	m := face.MasterByName("w400r100")
	g := shape.BarGlyph(f, m, 50, face.Low)

	buf := &bytes.Buffer{}
	err := EncodeGlyph(buf, g)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), xml.Header+`<glyph name="_50" format="2">`) {
		t.Errorf("unexpected start:\n%s", buf.String())
	}

	var got glifGlyph
	err = xml.Unmarshal(buf.Bytes(), &got)
	if err != nil {
		t.Fatal(err)
	}
	want := glifGlyph{
		XMLName:  xml.Name{Local: "glyph"},
		Name:     "_50",
		Format:   2,
		Advance:  glifAdvance{Width: 400},
		Unicodes: []glifUnicode{{Hex: "0132"}, {Hex: "0035"}, {Hex: "007A"}},
		Outline: &glifOutline{
			Components: []glifComponent{
				{Base: "cap", XOffset: 0, YOffset: 0},
				{Base: "cap", XOffset: 0, YOffset: 100},
			},
			Contours: []glifContour{{Points: []glifPoint{
				{X: 0, Y: 200, Type: "line"},
				{X: 0, Y: 300, Type: "line"},
				{X: 400, Y: 300, Type: "line"},
				{X: 400, Y: 200, Type: "line"},
			}}},
		},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestEncodeBlank(t *testing.T) {
	f := wavefont100(t)
	g := shape.BarGlyph(f, face.Masters[0], 0, face.Center)

	buf := &bytes.Buffer{}
	err := EncodeGlyph(buf, g)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "outline") {
		t.Errorf("blank glyph has an outline:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), `<unicode hex="0400"/>`) {
		t.Errorf("missing code point:\n%s", buf.String())
	}
}

func TestEncodeCapRounding(t *testing.T) {
	m := face.MasterByName("w1r100")
	g := shape.CapComponent(m)

	buf := &bytes.Buffer{}
	err := EncodeGlyph(buf, g)
	if err != nil {
		t.Fatal(err)
	}
	var got glifGlyph
	err = xml.Unmarshal(buf.Bytes(), &got)
	if err != nil {
		t.Fatal(err)
	}
	if got.Unicodes != nil {
		t.Errorf("cap has code points %v", got.Unicodes)
	}
	pts := got.Outline.Contours[0].Points
	if len(pts) != 16 {
		t.Fatalf("got %d points", len(pts))
	}
	// radius 0.5 rounds away from zero
	want := glifPoint{X: 1, Y: 1, Type: "curve", Smooth: "yes"}
	if d := cmp.Diff(want, pts[2]); d != "" {
		t.Error(d)
	}
	if pts[0].Type != "" || pts[0].Smooth != "" {
		t.Errorf("off-curve point has attributes: %v", pts[0])
	}
}

func TestEmptyElements(t *testing.T) {
	f := wavefont100(t)
	m := face.MasterByName("w400r100")

	glif := &bytes.Buffer{}
	err := EncodeGlyph(glif, shape.BarGlyph(f, m, 50, face.Low))
	if err != nil {
		t.Fatal(err)
	}
	ds := &bytes.Buffer{}
	err = WriteDesignspace(ds, f)
	if err != nil {
		t.Fatal(err)
	}

	for _, out := range []string{glif.String(), ds.String()} {
		for _, name := range []string{"advance", "unicode", "component", "point", "axis", "condition", "sub", "dimension"} {
			if strings.Contains(out, "></"+name+">") {
				t.Errorf("%s is not self-closing:\n%s", name, out)
			}
		}
	}
	for _, frag := range []string{
		`  <advance width="400"/>`,
		`    <component base="cap" xOffset="0" yOffset="100"/>`,
	} {
		if !strings.Contains(glif.String(), frag+"\n") {
			t.Errorf("missing %q in\n%s", frag, glif.String())
		}
	}
	if !strings.Contains(ds.String(), `<sub name="_12" with="_12.clip"/>`) {
		t.Errorf("unexpected rules:\n%s", ds.String())
	}
	if !strings.Contains(glif.String(), "<outline>\n") || !strings.HasSuffix(glif.String(), "</glyph>\n") {
		t.Errorf("containers must keep their end tags:\n%s", glif.String())
	}
}

func TestSelfClose(t *testing.T) {
	cases := []struct{ in, want string }{
		{`<a x="1"></a>`, `<a x="1"/>`},
		{`<a></a>`, `<a/>`},
		{`<a>text</a>`, `<a>text</a>`},
		{`<a></b>`, `<a></b>`},
		{"<a>\n  <b y=\"2\"></b>\n</a>", "<a>\n  <b y=\"2\"/>\n</a>"},
	}
	for _, c := range cases {
		if got := string(selfClose([]byte(c.in))); got != c.want {
			t.Errorf("selfClose(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFileName(t *testing.T) {
	cases := map[string]string{
		"cap":             "cap.glif",
		"_12":             "_12.glif",
		"_12.clip":        "_12.clip.glif",
		"_12.center":      "_12.center.glif",
		"_12.clip.center": "_12.clip.center.glif",
	}
	for in, out := range cases {
		if got := FileName(in); got != out {
			t.Errorf("FileName(%q) = %q, want %q", in, got, out)
		}
	}
}

func TestFontInfo(t *testing.T) {
	f := wavefont100(t)
	m := face.MasterByName("w400r0")

	buf := &bytes.Buffer{}
	err := WriteFontInfo(buf, f, m)
	if err != nil {
		t.Fatal(err)
	}
	var info fontInfo
	_, err = plist.Unmarshal(buf.Bytes(), &info)
	if err != nil {
		t.Fatal(err)
	}
	if info.FamilyName != "Wavefont" || info.StyleName != "w400r0" {
		t.Errorf("wrong names %q %q", info.FamilyName, info.StyleName)
	}
	if info.UnitsPerEm != 1000 || info.Ascender != 1100 || info.Descender != -100 {
		t.Errorf("wrong metrics %d %d %d", info.UnitsPerEm, info.Ascender, info.Descender)
	}
	if info.StyleMapStyleName != "bold" {
		t.Errorf("wrong style map %q", info.StyleMapStyleName)
	}
}

func TestLibAndContents(t *testing.T) {
	f := wavefont100(t)
	m := face.MasterByName("w1r0")
	glyphs := shape.Master(f, m)

	buf := &bytes.Buffer{}
	err := WriteLib(buf, glyphs)
	if err != nil {
		t.Fatal(err)
	}
	var lib fontLib
	_, err = plist.Unmarshal(buf.Bytes(), &lib)
	if err != nil {
		t.Fatal(err)
	}
	if len(lib.GlyphOrder) != len(glyphs) || lib.GlyphOrder[0] != "cap" {
		t.Errorf("unexpected glyph order %v", lib.GlyphOrder[:3])
	}
	if _, ok := lib.PostScriptNames["cap"]; ok {
		t.Error("cap has a production name")
	}
	if got := lib.PostScriptNames["_1.center"]; got != "uni0401" {
		t.Errorf("production name of _1.center is %q", got)
	}

	buf.Reset()
	err = WriteContents(buf, glyphs)
	if err != nil {
		t.Fatal(err)
	}
	var contents map[string]string
	_, err = plist.Unmarshal(buf.Bytes(), &contents)
	if err != nil {
		t.Fatal(err)
	}
	if len(contents) != len(glyphs) {
		t.Errorf("contents has %d entries, want %d", len(contents), len(glyphs))
	}
	if got := contents["_7.clip.center"]; got != "_7.clip.center.glif" {
		t.Errorf("unexpected file name %q", got)
	}
}

func TestProductionName(t *testing.T) {
	if got := ProductionName(0x100); got != "uni0100" {
		t.Errorf("got %q", got)
	}
	if got := ProductionName(0x10191); got != "u10191" {
		t.Errorf("got %q", got)
	}
}

func TestLayerContents(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WriteLayerContents(buf)
	if err != nil {
		t.Fatal(err)
	}
	var layers [][]string
	_, err = plist.Unmarshal(buf.Bytes(), &layers)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([][]string{{"public.default", "glyphs"}}, layers); d != "" {
		t.Error(d)
	}
}

func TestDesignspace(t *testing.T) {
	f := wavefont100(t)

	buf := &bytes.Buffer{}
	err := WriteDesignspace(buf, f)
	if err != nil {
		t.Fatal(err)
	}
	var doc dsDocument
	err = xml.Unmarshal(buf.Bytes(), &doc)
	if err != nil {
		t.Fatal(err)
	}

	if len(doc.Axes) != 2 || doc.Axes[1].Tag != "wght" || doc.Axes[1].Default != 400 {
		t.Errorf("unexpected axes %v", doc.Axes)
	}
	if len(doc.Sources) != 4 || doc.Sources[3].Filename != "Wavefont-w400r100.ufo" {
		t.Errorf("unexpected sources %v", doc.Sources)
	}
	if doc.Rules == nil || len(doc.Rules.Rules) != 39 {
		t.Fatal("expected 39 substitution rules")
	}
	want := dsRule{
		Name:       "clip12",
		Conditions: []dsCondition{{Name: "weight", Minimum: 120, Maximum: 400}},
		Subs: []dsSub{
			{Name: "_12", With: "_12.clip"},
			{Name: "_12.center", With: "_12.clip.center"},
		},
	}
	if d := cmp.Diff(want, doc.Rules.Rules[11]); d != "" {
		t.Error(d)
	}
}

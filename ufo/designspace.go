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
	"encoding/xml"
	"io"
	"strconv"

	"seehuhn.de/go/wavefont/face"
	"seehuhn.de/go/wavefont/shape"
)

type dsDocument struct {
	XMLName xml.Name   `xml:"designspace"`
	Format  string     `xml:"format,attr"`
	Axes    []dsAxis   `xml:"axes>axis"`
	Rules   *dsRules   `xml:"rules,omitempty"`
	Sources []dsSource `xml:"sources>source"`
}

type dsAxis struct {
	Tag     string  `xml:"tag,attr"`
	Name    string  `xml:"name,attr"`
	Minimum float64 `xml:"minimum,attr"`
	Maximum float64 `xml:"maximum,attr"`
	Default float64 `xml:"default,attr"`
}

type dsRules struct {
	Processing string   `xml:"processing,attr"`
	Rules      []dsRule `xml:"rule"`
}

type dsRule struct {
	Name       string        `xml:"name,attr"`
	Conditions []dsCondition `xml:"conditionset>condition"`
	Subs       []dsSub       `xml:"sub"`
}

type dsCondition struct {
	Name    string  `xml:"name,attr"`
	Minimum float64 `xml:"minimum,attr"`
	Maximum float64 `xml:"maximum,attr"`
}

type dsSub struct {
	Name string `xml:"name,attr"`
	With string `xml:"with,attr"`
}

type dsSource struct {
	Filename   string        `xml:"filename,attr"`
	Name       string        `xml:"name,attr"`
	FamilyName string        `xml:"familyname,attr"`
	StyleName  string        `xml:"stylename,attr"`
	Location   []dsDimension `xml:"location>dimension"`
}

type dsDimension struct {
	Name   string  `xml:"name,attr"`
	XValue float64 `xml:"xvalue,attr"`
}

// DesignspaceName returns the file name of the designspace document.
func DesignspaceName(f *face.Face) string {
	return f.Name + ".designspace"
}

// WriteDesignspace writes the designspace document of face f.
//
// For every clipped value v, a rule replaces the bar by its compensation
// glyph from the weight where the bar becomes wider than tall.
func WriteDesignspace(w io.Writer, f *face.Face) error {
	doc := &dsDocument{Format: "4.1"}
	for _, a := range face.Axes {
		doc.Axes = append(doc.Axes, dsAxis{
			Tag:     a.Tag,
			Name:    a.Name,
			Minimum: a.Min,
			Maximum: a.Max,
			Default: a.Default,
		})
	}

	clips := f.Clips(face.Weight.Max)
	if len(clips) > 0 {
		rules := &dsRules{Processing: "first"}
		for _, v := range clips {
			rule := dsRule{
				Name: "clip" + strconv.Itoa(v),
				Conditions: []dsCondition{{
					Name:    face.Weight.Name,
					Minimum: f.Units(float64(v)),
					Maximum: face.Weight.Max,
				}},
			}
			for _, a := range []face.Align{face.Low, face.Center} {
				rule.Subs = append(rule.Subs, dsSub{
					Name: shape.BarName(v, a),
					With: shape.ClipName(v, a),
				})
			}
			rules.Rules = append(rules.Rules, rule)
		}
		doc.Rules = rules
	}

	for _, m := range face.Masters {
		doc.Sources = append(doc.Sources, dsSource{
			Filename:   MasterDir(f, m),
			Name:       f.Name + " " + m.Name,
			FamilyName: f.Name,
			StyleName:  m.Name,
			Location: []dsDimension{
				{Name: face.Roundness.Name, XValue: m.Roundness},
				{Name: face.Weight.Name, XValue: m.Weight},
			},
		})
	}

	return encodeXML(w, doc)
}

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

package face

import (
	"slices"

	"seehuhn.de/go/wavefont/units"
)

// Unicode range starts of the low-aligned and the center-aligned bars.
const (
	LowShift    = 0x100
	CenterShift = 0x400
)

// Face is one font face of the family.
//
// Value i of the low-aligned bars is encoded at Low[i], value i of the
// center-aligned bars at Center[i].  Aliases add further code points
// to individual glyphs.
type Face struct {
	ID   string
	Name string

	// Min and Max give the range of the semantic values.
	Min, Max int

	// Ascender and Descender are given on the value scale.
	Ascender, Descender int

	Low    []rune
	Center []rune

	lowAlias    map[int][]rune
	centerAlias map[int][]rune
}

// Units converts a value of the face to font units.
func (f *Face) Units(v float64) float64 {
	return units.FromValue(v, float64(f.Max))
}

// Codes returns the primary code points for the given alignment.
func (f *Face) Codes(a Align) []rune {
	if a == Center {
		return f.Center
	}
	return f.Low
}

// Aliases returns the additional code points of the glyph for value v.
// The result is nil if no alias rule applies.
func (f *Face) Aliases(v int, a Align) []rune {
	var res []rune
	if a == Center {
		res = f.centerAlias[v]
	} else {
		res = f.lowAlias[v]
	}
	return slices.Clone(res)
}

// AliasValues returns the values which carry aliases, in increasing order.
func (f *Face) AliasValues(a Align) []int {
	m := f.lowAlias
	if a == Center {
		m = f.centerAlias
	}
	var vv []int
	for v := range m {
		vv = append(vv, v)
	}
	slices.Sort(vv)
	return vv
}

// Clips returns the values whose bar is shorter than weightMax.
//
// At high weights the rounded ends of these bars would be wider than the
// bar is tall.  Such values need a compensation glyph, see
// [seehuhn.de/go/wavefont/shape.Clip].  Value 0 has no outline and is
// never included.
func (f *Face) Clips(weightMax float64) []int {
	var res []int
	for v := 1; v < len(f.Low); v++ {
		if f.Units(float64(v)) < weightMax {
			res = append(res, v)
		}
	}
	return res
}

func codeRange(start rune, n int) []rune {
	res := make([]rune, n)
	for i := range res {
		res[i] = start + rune(i)
	}
	return res
}

// aliasTable collects alias code points, keeping insertion order.
type aliasTable map[int][]rune

func (t aliasTable) add(v int, codes ...rune) {
	for _, c := range codes {
		if !slices.Contains(t[v], c) {
			t[v] = append(t[v], c)
		}
	}
}

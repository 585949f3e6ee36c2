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

// Package units converts semantic bar values into font design units.
//
// Wavefont glyphs encode a value between 0 and the face maximum as the
// height of a bar.  All geometry is computed in float64 and only rounded
// to integer font units when a glyph is serialised.
package units

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"seehuhn.de/go/postscript/funit"
)

// UnitsPerEm is the size of the em square of every generated master.
const UnitsPerEm = 1000

// FromValue maps a value on the scale 0..max to font units 0..UnitsPerEm.
func FromValue(v, max float64) float64 {
	return UnitsPerEm * v / max
}

// Round rounds x to the nearest integer font unit.
// Halfway cases are rounded away from zero.
func Round(x float64) funit.Int16 {
	return funit.Int16(math.Round(x))
}

// Half returns x/2.
func Half(x float64) float64 {
	return x * .5
}

// Hex formats a non-negative integer as upper case hexadecimal,
// without prefix or padding.
func Hex[T constraints.Integer](v T) string {
	return strings.ToUpper(strconv.FormatUint(uint64(v), 16))
}

// HexCode formats a code point as upper case hexadecimal,
// zero-padded to at least four digits.
func HexCode(c rune) string {
	h := Hex(c)
	if len(h) < 4 {
		h = strings.Repeat("0", 4-len(h)) + h
	}
	return h
}

// Uni formats code points in the "u0041,u00C0" form.
func Uni(codes ...rune) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = "u" + HexCode(c)
	}
	return strings.Join(parts, ",")
}

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
	"maps"
	"slices"
)

// zeroChars render as an empty bar.
var zeroChars = []rune{' ', '\t', '\u00a0', '`', '@'}

// blankChars render as an empty bar rather than as a missing glyph box.
// The list follows the last-resort cmap of the Adobe Blank font.
var blankChars = []rune{
	0x0A, 0x0B, 0x0C, 0x0D, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28,
	0x29, 0x2B, 0x2C, 0x2F, 0x3A, 0x3B, 0x3C, 0x3D, 0x3E, 0x3F, 0x5B, 0x5C,
	0x5D, 0x5E, 0x7B, 0x7D, 0x7E, 0x85, 0xA1, 0xA2, 0xA3, 0xA5, 0xA7, 0xA8,
	0xA9, 0xAA, 0xAB, 0xAE, 0xAF, 0xB0, 0xB4, 0xB6, 0xB7, 0xB8, 0xBA, 0xBB,
	0xBF, 0xC0, 0xC1, 0xC2, 0xC3, 0xC4, 0xC5, 0xC6, 0xC7, 0xC8, 0xC9, 0xCA,
	0xCB, 0xCC, 0xCD, 0xCE, 0xCF, 0xD0, 0xD1, 0xD2, 0xD3, 0xD4, 0xD5, 0xD6,
	0xD7, 0xD8, 0xD9, 0xDA, 0xDB, 0xDC, 0xDD, 0xDE, 0xDF, 0xE0, 0xE1, 0xE2,
	0xE3, 0xE4, 0xE5, 0xE6, 0xE7, 0xE8, 0xE9, 0xEA, 0xEB, 0xEC, 0xED, 0xEE,
	0xEF, 0xF0, 0xF1, 0xF2, 0xF3, 0xF4, 0xF5, 0xF6, 0xF7, 0xF8, 0xF9, 0xFA,
	0xFB, 0xFC, 0xFD, 0xFE, 0xFF, 0x16C, 0x16D, 0x16E, 0x16F, 0x170, 0x171,
	0x172, 0x173, 0x174, 0x175, 0x176, 0x177, 0x178, 0x179, 0x17A, 0x17B,
	0x17C, 0x17D, 0x17E, 0x218, 0x219, 0x21A, 0x21B, 0x237, 0x2C6, 0x2C7,
	0x2D8, 0x2D9, 0x2DA, 0x2DB, 0x2DC, 0x2DD, 0x303, 0x304, 0x306, 0x307,
	0x308, 0x30A, 0x30B, 0x30C, 0x312, 0x326, 0x327, 0x328, 0x3F0, 0x3F1,
	0x3F2, 0x3F3, 0x3F4, 0x3F5, 0x3F6, 0x3F7, 0x3F8, 0x3F9, 0x3FA, 0x3FB,
	0x3FC, 0x3FD, 0x3FE, 0x3FF, 0x464, 0x465, 0x466, 0x467, 0x468, 0x469,
	0x46A, 0x46B, 0x46C, 0x46D, 0x46E, 0x46F, 0x1680, 0x180E, 0x1E80, 0x1E81,
	0x1E82, 0x1E83, 0x1E84, 0x1E85, 0x1E9E, 0x1EF2, 0x1EF3, 0x2000, 0x2001,
	0x2002, 0x2003, 0x2004, 0x2005, 0x2006, 0x2007, 0x2008, 0x2009, 0x200A,
	0x200B, 0x200C, 0x200D, 0x2018, 0x2019, 0x201A, 0x201C, 0x201D, 0x201E,
	0x2022, 0x2026, 0x2028, 0x2029, 0x202F, 0x2039, 0x203A, 0x205F, 0x2060,
	0x2061, 0x2062, 0x20AC, 0x2122, 0x2212, 0x3000, 0xFEFF,
}

var (
	oneChars     = []rune(".*_ˍ")
	oneCentered  = []rune("-–—―")
	maxChars     = []rune("|")
	blockBars    = []rune("▁▂▃▄▅▆▇█")
	blockBarVals = []int{1, 14, 28, 42, 56, 72, 86, 100}
)

// letters assigns the Latin letters to values.  The spacing is irregular
// and must not be replaced by a formula.
var letters = []struct {
	value  int
	letter rune
}{
	{1, 'a'}, {2, 'b'}, {4, 'c'}, {6, 'd'}, {8, 'e'}, {10, 'f'}, {12, 'g'},
	{14, 'h'}, {16, 'i'}, {18, 'j'}, {20, 'k'}, {22, 'l'}, {24, 'm'},
	{26, 'n'}, {28, 'o'}, {30, 'p'}, {32, 'q'}, {34, 'r'}, {36, 's'},
	{38, 't'}, {40, 'u'}, {42, 'v'}, {44, 'w'}, {46, 'x'}, {48, 'y'},
	{50, 'z'},
	{52, 'A'}, {54, 'B'}, {56, 'C'}, {58, 'D'}, {60, 'E'}, {62, 'F'},
	{64, 'G'}, {66, 'H'}, {68, 'I'}, {70, 'J'}, {72, 'K'}, {74, 'L'},
	{76, 'M'}, {78, 'N'}, {80, 'O'}, {82, 'P'}, {84, 'Q'}, {86, 'R'},
	{88, 'S'}, {90, 'T'}, {92, 'U'}, {94, 'V'}, {96, 'W'}, {98, 'X'},
	{99, 'Y'}, {100, 'Z'},
}

func makeWavefont100() *Face {
	low := aliasTable{}
	low.add(0, zeroChars...)
	low.add(0, blankChars...)
	low.add(1, oneChars...)
	for i, v := range blockBarVals {
		if v == 100 {
			low.add(v, maxChars...)
		}
		low.add(v, blockBars[i])
	}
	for i, c := range "0123456789" {
		low.add(10*i, c)
	}
	for _, l := range letters {
		low.add(l.value, l.letter)
	}

	center := aliasTable{}
	center.add(1, oneCentered...)

	return &Face{
		ID:          "wavefont100",
		Name:        "Wavefont",
		Min:         0,
		Max:         100,
		Ascender:    110,
		Descender:   10,
		Low:         codeRange(LowShift, 108),
		Center:      codeRange(CenterShift, 100),
		lowAlias:    low,
		centerAlias: center,
	}
}

var registry = map[string]*Face{}

func init() {
	for _, f := range []*Face{makeWavefont100()} {
		registry[f.ID] = f
	}
}

// Lookup returns the face with the given identifier.
func Lookup(id string) (*Face, error) {
	f, ok := registry[id]
	if !ok {
		return nil, &UnknownFaceError{ID: id}
	}
	return f, nil
}

// IDs returns the identifiers of all known faces, in sorted order.
func IDs() []string {
	return slices.Sorted(maps.Keys(registry))
}

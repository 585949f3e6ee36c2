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

import "strconv"

// Axis describes one variation axis of the design space.
type Axis struct {
	Name    string
	Tag     string
	Min     float64
	Max     float64
	Default float64
}

// The two variation axes of the family.
var (
	Roundness = &Axis{Name: "roundness", Tag: "ROND", Min: 0, Max: 100, Default: 0}
	Weight    = &Axis{Name: "weight", Tag: "wght", Min: 1, Max: 400, Default: 400}
)

// Axes lists the variation axes in designspace order.
var Axes = []*Axis{Roundness, Weight}

// Master is one corner point of the design space.
// Every master gets an independent, complete set of glyphs.
type Master struct {
	Name      string
	Weight    float64
	Roundness float64
}

// Masters lists the four corner masters.
var Masters = []*Master{
	{Name: "w1r0", Weight: Weight.Min, Roundness: Roundness.Min},
	{Name: "w1r100", Weight: Weight.Min, Roundness: Roundness.Max},
	{Name: "w400r0", Weight: Weight.Max, Roundness: Roundness.Min},
	{Name: "w400r100", Weight: Weight.Max, Roundness: Roundness.Max},
}

// MasterByName returns the master with the given name, or nil.
func MasterByName(name string) *Master {
	for _, m := range Masters {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Radius returns the corner radius of the master, in percent of the weight.
func (m *Master) Radius() float64 {
	return m.Roundness / 2
}

// CapSize returns the height in font units of one rounded bar end.
func (m *Master) CapSize() float64 {
	return m.Radius() * .01 * m.Weight
}

// Width returns the advance width of the bar glyphs.
func (m *Master) Width() float64 {
	return m.Weight
}

// Align selects where a bar sits vertically.
type Align int

// These are the supported alignments.
const (
	Low    Align = iota // bars stand on the baseline
	Center              // bars grow symmetrically around the middle of the em
)

// Factor returns the fraction of the free vertical space below the bar.
func (a Align) Factor() float64 {
	if a == Center {
		return .5
	}
	return 0
}

// Suffix returns the glyph name suffix used for the alignment.
func (a Align) Suffix() string {
	if a == Center {
		return ".center"
	}
	return ""
}

func (a Align) String() string {
	switch a {
	case Low:
		return "low"
	case Center:
		return "center"
	default:
		return "Align(" + strconv.Itoa(int(a)) + ")"
	}
}

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

// Wavefont-alias lists the characters which render as Wavefont bars.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/wavefont/face"
	"seehuhn.de/go/wavefont/shape"
	"seehuhn.de/go/wavefont/tools/internal/buildinfo"
	"seehuhn.de/go/wavefont/units"
)

var (
	faceArg  = flag.String("face", "wavefont100", "font face `name`")
	valueArg = flag.Int("value", -1, "only show the given `value`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "wavefont-alias \u2014 list the character aliases of a Wavefont face\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("wavefont-alias"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  wavefont-alias [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	f, err := face.Lookup(*faceArg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	listAliases(os.Stdout, f, *valueArg)
}

func listAliases(w io.Writer, f *face.Face, only int) {
	for _, a := range []face.Align{face.Low, face.Center} {
		for _, v := range f.AliasValues(a) {
			if only >= 0 && v != only {
				continue
			}
			fmt.Fprintf(w, "%s (%s)\n", shape.BarName(v, a), units.Uni(f.Codes(a)[v]))
			for _, c := range f.Aliases(v, a) {
				fmt.Fprintf(w, "  U+%s  %s\n", units.HexCode(c), describe(c))
			}
		}
	}
}

func describe(c rune) string {
	name := runenames.Name(c)
	if name == "" || strings.HasPrefix(name, "<") {
		return fmt.Sprintf("%q", c)
	}
	return fmt.Sprintf("%-4q %s", c, name)
}

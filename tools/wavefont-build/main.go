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

// Wavefont-build writes the UFO sources of a Wavefont face.
//
// The output directory receives one designspace document and one UFO
// directory per master.  Existing files are overwritten.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/wavefont/build"
	"seehuhn.de/go/wavefont/face"
	"seehuhn.de/go/wavefont/preview"
	"seehuhn.de/go/wavefont/shape"
	"seehuhn.de/go/wavefont/tools/internal/buildinfo"
	"seehuhn.de/go/wavefont/tools/internal/profile"
)

var (
	faceArg       = flag.String("face", "wavefont100", "font face `name`")
	outArg        = flag.String("o", "sources", "output `directory`")
	previewArg    = flag.String("preview", "", "write a PNG specimen to `file`")
	previewMaster = flag.String("preview-master", "w400r100", "master shown in the specimen")
	verbose       = flag.Bool("v", false, "log every file written")
	cpuprofile    = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile    = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "wavefont-build \u2014 generate Wavefont font sources\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("wavefont-build"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  wavefont-build [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKnown faces: %s\n", strings.Join(face.IDs(), ", "))
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wavefont-build -o sources\n")
		fmt.Fprintf(os.Stderr, "  wavefont-build -preview w400r100.png\n")
	}
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer stop()

	build.SetLogger(newLogger(*verbose))

	f, err := face.Lookup(*faceArg)
	if err != nil {
		return err
	}

	rep, err := build.Run(&build.DirSink{Root: *outArg}, f)
	if err != nil {
		return err
	}
	fmt.Printf("%s: wrote %d files (%d glyphs, %d bytes) to %s\n",
		f.Name, rep.Files, rep.Glyphs, rep.Bytes, *outArg)

	if *previewArg != "" {
		err = writePreview(f, *previewMaster, *previewArg)
		if err != nil {
			return err
		}
	}
	return nil
}

// newLogger logs in text form on a terminal and as JSON otherwise.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opt := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return slog.New(slog.NewTextHandler(os.Stderr, opt))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opt))
}

func writePreview(f *face.Face, masterName, fname string) error {
	m := face.MasterByName(masterName)
	if m == nil {
		return fmt.Errorf("unknown master %q", masterName)
	}

	glyphs := shape.Master(f, m)
	lib := shape.Library{}
	lib.Add(glyphs...)

	var line []*shape.Glyph
	for v := range f.Low {
		line = append(line, lib[shape.BarName(v, face.Low)])
	}
	img, err := preview.Render(line, lib, nil)
	if err != nil {
		return err
	}

	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(out, img)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

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

package build

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/wavefont/face"
	"seehuhn.de/go/wavefont/internal/memfs"
)

func wavefont100(t *testing.T) *face.Face {
	t.Helper()
	f, err := face.Lookup("wavefont100")
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestPlan(t *testing.T) {
	f := wavefont100(t)
	plan := Plan(f)

	nClips := len(f.Clips(face.Weight.Max))
	perMaster := 5 + 1 + len(f.Low) + len(f.Center) + 2*nClips
	if want := 1 + len(face.Masters)*perMaster; len(plan) != want {
		t.Fatalf("got %d requests, want %d", len(plan), want)
	}
	if plan[0].Path != "Wavefont.designspace" || plan[0].Master != nil {
		t.Errorf("unexpected first request %q", plan[0].Path)
	}

	seen := map[string]bool{}
	for _, req := range plan {
		if seen[req.Path] {
			t.Errorf("duplicate path %q", req.Path)
		}
		seen[req.Path] = true
	}

	for _, p := range []string{
		"Wavefont-w1r0.ufo/metainfo.plist",
		"Wavefont-w1r0.ufo/glyphs/contents.plist",
		"Wavefont-w1r100.ufo/glyphs/cap.glif",
		"Wavefont-w400r0.ufo/glyphs/_0.glif",
		"Wavefont-w400r0.ufo/glyphs/_107.glif",
		"Wavefont-w400r100.ufo/glyphs/_1.clip.glif",
		"Wavefont-w400r100.ufo/glyphs/_39.clip.center.glif",
		"Wavefont-w400r100.ufo/glyphs/_99.center.glif",
	} {
		if !seen[p] {
			t.Errorf("missing %q", p)
		}
	}
	for _, p := range []string{
		"Wavefont-w400r100.ufo/glyphs/_0.clip.glif",
		"Wavefont-w400r100.ufo/glyphs/_40.clip.glif",
		"Wavefont-w400r100.ufo/glyphs/_100.center.glif",
	} {
		if seen[p] {
			t.Errorf("unexpected %q", p)
		}
	}
}

func TestPlanOrder(t *testing.T) {
	f := wavefont100(t)
	var got []string
	for _, req := range Plan(f)[1:12] {
		got = append(got, filepath.Base(req.Path))
	}
	want := []string{
		"metainfo.plist", "fontinfo.plist", "lib.plist",
		"layercontents.plist", "contents.plist",
		"cap.glif", "_0.glif", "_1.glif", "_2.glif", "_3.glif", "_4.glif",
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestRunIdempotent(t *testing.T) {
	f := wavefont100(t)

	a := memfs.New()
	repA, err := Run(a, f)
	if err != nil {
		t.Fatal(err)
	}
	b := memfs.New()
	_, err = Run(b, f)
	if err != nil {
		t.Fatal(err)
	}
	// a second run into the same sink overwrites every file
	_, err = Run(a, f)
	if err != nil {
		t.Fatal(err)
	}

	paths := a.Paths()
	if len(paths) != repA.Files {
		t.Fatalf("got %d files, report says %d", len(paths), repA.Files)
	}
	if d := cmp.Diff(paths, b.Paths()); d != "" {
		t.Fatal(d)
	}
	for _, p := range paths {
		da, _ := a.ReadFile(p)
		db, _ := b.ReadFile(p)
		if !bytes.Equal(da, db) {
			t.Errorf("%s differs between runs", p)
		}
	}
	if len(a.Writes()) != 2*repA.Files {
		t.Errorf("got %d writes", len(a.Writes()))
	}
	if want := (repA.Files - 1) - 5*len(face.Masters); repA.Glyphs != want {
		t.Errorf("got %d glyphs, want %d", repA.Glyphs, want)
	}
}

func TestRunContents(t *testing.T) {
	f := wavefont100(t)
	m := memfs.New()
	if _, err := Run(m, f); err != nil {
		t.Fatal(err)
	}

	data, err := m.ReadFile("Wavefont-w400r100.ufo/glyphs/_50.glif")
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, frag := range []string{
		`<glyph name="_50" format="2">`,
		`<advance width="400"/>`,
		`<unicode hex="0132"/>`,
		`<component base="cap" xOffset="0" yOffset="100"/>`,
		`<point x="400" y="300" type="line"/>`,
	} {
		if !strings.Contains(s, frag) {
			t.Errorf("missing %s in\n%s", frag, s)
		}
	}
}

type failSink struct {
	n int
}

var errFull = errors.New("disk full")

func (s *failSink) WriteFile(path string, data []byte) error {
	if s.n == 0 {
		return errFull
	}
	s.n--
	return nil
}

func TestRunError(t *testing.T) {
	f := wavefont100(t)
	_, err := Run(&failSink{n: 2}, f)
	if !errors.Is(err, errFull) {
		t.Fatalf("expected errFull, got %v", err)
	}
	if !strings.Contains(err.Error(), "fontinfo.plist") {
		t.Errorf("error does not name the file: %v", err)
	}
}

func TestDirSink(t *testing.T) {
	dir := t.TempDir()
	sink := &DirSink{Root: dir}

	for _, content := range []string{"old", "new"} {
		err := sink.WriteFile("a/b/c.glif", []byte(content))
		if err != nil {
			t.Fatal(err)
		}
	}
	data, err := os.ReadFile(filepath.Join(dir, "a", "b", "c.glif"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new" {
		t.Errorf("got %q", data)
	}
}

func TestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
	defer SetLogger(nil)

	f := wavefont100(t)
	if _, err := Run(memfs.New(), f); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(face.Masters) {
		t.Fatalf("got %d log lines:\n%s", len(lines), buf.String())
	}
	for i, m := range face.Masters {
		if !strings.Contains(lines[i], "master="+m.Name) {
			t.Errorf("line %d: %s", i, lines[i])
		}
	}
	if slices.ContainsFunc(lines, func(l string) bool { return strings.Contains(l, "wrote file") }) {
		t.Error("debug messages logged at info level")
	}
}

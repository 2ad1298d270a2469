// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package face

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// ink returns the bounds of the non-transparent pixels of a.
func ink(a *image.Alpha) image.Rectangle {
	var r image.Rectangle
	b := a.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if a.AlphaAt(x, y).A != 0 {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func TestCenter(t *testing.T) {
	for _, w := range []Weight{Regular, Bold} {
		for _, points := range []float64{12, 30, 48} {
			f := Builtin(points, w)
			for _, s := range []string{"QR", "JD", "</>", "gy", "W"} {
				box := image.Rect(0, 0, 120, 100)
				dot := Center(f, s, box)
				b := Bounds(f, s).Add(dot)
				mid := b.Min.Add(b.Max)
				if abs(mid.X-box.Dx()) > 2 || abs(mid.Y-box.Dy()) > 2 {
					t.Errorf("%v %g %q: box %v not centred", w, points, s, b)
				}
				a := image.NewAlpha(box)
				d := font.Drawer{
					Dst:  a,
					Src:  image.NewUniform(color.Opaque),
					Face: f,
					Dot:  fixed.P(dot.X, dot.Y),
				}
				d.DrawString(s)
				if r := ink(a); r.Empty() || !r.In(b.Inset(-1)) {
					t.Errorf("%v %g %q: ink %v outside %v", w, points, s, r, b)
				}
			}
		}
	}
}

func TestLine(t *testing.T) {
	f := Builtin(24, Regular)
	s := "https://example.com"
	dot := Line(f, s, 100, 700, 50)
	if want := 50 + f.Metrics().Ascent.Ceil(); dot.Y != want {
		t.Errorf("baseline %d, want %d", dot.Y, want)
	}
	b := Bounds(f, s).Add(dot)
	if mid := b.Min.X + b.Max.X; abs(mid-800) > 2 {
		t.Errorf("line %v not centred between 100 and 700", b)
	}
}

func TestOpenFallback(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.ttf")
	if err := os.WriteFile(bad, []byte("not a font"), 0666); err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{"", filepath.Join(dir, "missing.ttf"), bad} {
		f := Open(path, 20, Bold)
		if f == nil {
			t.Fatalf("Open(%q) = nil", path)
		}
		if f == basicfont.Face7x13 {
			t.Errorf("Open(%q) fell back to the bitmap face", path)
		}
		if h := f.Metrics().Height.Ceil(); h < 18 || h > 30 {
			t.Errorf("Open(%q): line height %d", path, h)
		}
	}
	if _, err := Load(bad, 20); err == nil {
		t.Error("Load of invalid font: no error")
	}
	if _, err := Load(filepath.Join(dir, "missing.ttf"), 20); !os.IsNotExist(err) {
		t.Errorf("Load of missing font: got %v", err)
	}
}

func TestBoundsDependOnString(t *testing.T) {
	f := Builtin(40, Bold)
	if Bounds(f, "i") == Bounds(f, "W") {
		t.Error("bounds of different strings are equal")
	}
	if Bounds(f, "gy").Max.Y <= 0 {
		t.Error("descenders do not extend below the baseline")
	}
	if Bounds(f, "").Dx() != 0 {
		t.Error("empty string has width")
	}
}

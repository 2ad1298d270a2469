// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package face loads font faces and positions text by its bounding box.

Open never fails: a font file that cannot be read or parsed is replaced
by the embedded Go fonts, and those by the 7x13 bitmap face.  Sizes are
in points at 72 DPI, so one point is one pixel.

Positions returned by Center and Line are dots, the baseline origin
font.Drawer and gg.Context.DrawString expect.
*/
package face // import "github.com/unixdj/qrcard/face"

import (
	"image"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// A Weight selects the embedded fallback font.
type Weight int

const (
	Regular Weight = iota
	Bold
)

// Open returns a face of the font file at path, or the builtin face of
// weight w if path is empty or unusable.
func Open(path string, points float64, w Weight) font.Face {
	if path != "" {
		if f, err := Load(path, points); err == nil {
			return f
		}
	}
	return Builtin(points, w)
}

// Load returns a face of the TrueType or OpenType font file at path.
func Load(path string, points float64) (font.Face, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(b, points)
}

func parse(b []byte, points float64) (font.Face, error) {
	f, err := opentype.Parse(b)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Builtin returns Go Regular or Go Bold at the given size, falling back
// to basicfont.Face7x13.
func Builtin(points float64, w Weight) font.Face {
	src := goregular.TTF
	if w == Bold {
		src = gobold.TTF
	}
	if f, err := parse(src, points); err == nil {
		return f
	}
	return basicfont.Face7x13
}

// Bounds returns the pixel bounding box of s drawn with the dot at the
// origin.  Bounds depend on both the face and the string.
func Bounds(f font.Face, s string) image.Rectangle {
	b, _ := font.BoundString(f, s)
	return image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(),
		b.Max.X.Ceil(), b.Max.Y.Ceil())
}

// Center returns the dot that centres the bounding box of s in r.
func Center(f font.Face, s string, r image.Rectangle) image.Point {
	b := Bounds(f, s)
	return image.Pt(
		r.Min.X+(r.Dx()-b.Dx())/2-b.Min.X,
		r.Min.Y+(r.Dy()-b.Dy())/2-b.Min.Y,
	)
}

// Line returns the dot that centres s horizontally between x0 and x1
// with the top of the line, the ascent above the baseline, at top.
func Line(f font.Face, s string, x0, x1, top int) image.Point {
	b := Bounds(f, s)
	return image.Pt(
		x0+(x1-x0-b.Dx())/2-b.Min.X,
		top+f.Metrics().Ascent.Ceil(),
	)
}

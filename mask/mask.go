// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mask builds single-channel alpha masks and applies them.
package mask // import "github.com/unixdj/qrcard/mask"

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// Circle returns a size×size mask of a circle centred in the square,
// inset pixels inside its edge.  The edge is anti-aliased.
func Circle(size, inset int) *image.Alpha {
	dc := gg.NewContext(size, size)
	if r := float64(size)/2 - float64(inset); r > 0 {
		dc.SetColor(color.White)
		dc.DrawCircle(float64(size)/2, float64(size)/2, r)
		dc.Fill()
	}
	return dc.AsMask()
}

// RoundedRect returns a w×h mask of a rectangle with corners rounded
// to the given radius.
func RoundedRect(w, h int, radius float64) *image.Alpha {
	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), radius)
	dc.Fill()
	return dc.AsMask()
}

// Of returns the alpha channel of img.
func Of(img image.Image) *image.Alpha {
	b := img.Bounds()
	a := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(a, a.Bounds(), img, b.Min, draw.Src)
	return a
}

// Apply returns a copy of img with its alpha multiplied by m, which is
// aligned with the top left corner of img.  Pixels beyond m become
// transparent.
func Apply(img image.Image, m *image.Alpha) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.DrawMask(dst, dst.Bounds(), img, b.Min, m, m.Bounds().Min, draw.Src)
	return dst
}

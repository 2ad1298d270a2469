// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logo

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/unixdj/qrcard/mask"
)

// MaxCoverage is the largest share of a QR symbol a logo may cover and
// still leave it decodable at level H.
const MaxCoverage = 0.3

// Paste draws src centred on dst, blending by the alpha channel of src,
// and returns the rectangle drawn to.  Pixels of dst where src is fully
// transparent are left unchanged.
func Paste(dst draw.Image, src image.Image) image.Rectangle {
	db, sb := dst.Bounds(), src.Bounds()
	p := db.Min.Add(image.Pt((db.Dx()-sb.Dx())/2, (db.Dy()-sb.Dy())/2))
	r := image.Rectangle{p, p.Add(sb.Size())}
	draw.DrawMask(dst, r, opaque{src}, sb.Min, mask.Of(src), image.Point{}, draw.Over)
	return r
}

// Coverage returns the share of symbol covered by the rectangle r.
func Coverage(symbol, r image.Rectangle) float64 {
	if symbol.Empty() {
		return 0
	}
	i := symbol.Intersect(r)
	return float64(i.Dx()*i.Dy()) / float64(symbol.Dx()*symbol.Dy())
}

// opaque presents an image with its alpha dropped, so that a paste
// masked by the original alpha applies it once.
type opaque struct {
	image.Image
}

func (opaque) ColorModel() color.Model {
	return color.NRGBAModel
}

func (o opaque) At(x, y int) color.Color {
	c := color.NRGBAModel.Convert(o.Image.At(x, y)).(color.NRGBA)
	c.A = 0xff
	return c
}

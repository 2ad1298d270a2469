// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package card composes QR codes and text onto printable canvases: a
portfolio card with a list of features, a sheet showing four styled
variants of the same code, and a single premium card.

Text lines are centred horizontally by their bounding box; the
coordinates given for them are the tops of the lines.
*/
package card // import "github.com/unixdj/qrcard/card"

import (
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/unixdj/qrcard/face"
)

// Fonts are the faces used on a canvas.
type Fonts struct {
	Title    font.Face // headings
	Subtitle font.Face // subtitles, variant names, URLs
	Body     font.Face // features, descriptions, footers
}

// Default font sizes in points.
const (
	TitleSize    = 48
	SubtitleSize = 24
	BodySize     = 18
)

// LoadFonts opens the font files regular and bold at the default sizes,
// falling back to the embedded fonts.  Titles use bold.
func LoadFonts(regular, bold string) Fonts {
	return Fonts{
		Title:    face.Open(bold, TitleSize, face.Bold),
		Subtitle: face.Open(regular, SubtitleSize, face.Regular),
		Body:     face.Open(regular, BodySize, face.Regular),
	}
}

var (
	navy     = color.NRGBA{0x1a, 0x36, 0x5d, 0xff}
	slate    = color.NRGBA{0x4a, 0x55, 0x68, 0xff}
	muted    = color.NRGBA{0x71, 0x80, 0x96, 0xff}
	gray     = color.NRGBA{0x80, 0x80, 0x80, 0xff}
	darkBlue = color.NRGBA{0x00, 0x00, 0x8b, 0xff}
	paper    = color.NRGBA{0xf8, 0xfa, 0xfc, 0xff}
	shadow   = color.NRGBA{0, 0, 0, 30}
)

// line draws s centred between x0 and x1 with its top at top.
func line(dc *gg.Context, f font.Face, s string, x0, x1, top int, c color.Color) {
	if s == "" {
		return
	}
	dot := face.Line(f, s, x0, x1, top)
	dc.SetFontFace(f)
	dc.SetColor(c)
	dc.DrawString(s, float64(dot.X), float64(dot.Y))
}

// canvas returns a w×h context filled with c.
func canvas(w, h int, c color.Color) *gg.Context {
	dc := gg.NewContext(w, h)
	dc.SetColor(c)
	dc.Clear()
	return dc
}

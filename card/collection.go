// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package card

import (
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// An Entry is one cell of a collection sheet.
type Entry struct {
	Variant     Variant
	Name        string // shown title-cased; empty is the variant name
	Description string // wrapped onto two lines; empty is the variant default
}

// DefaultEntries returns an entry for each variant.
func DefaultEntries() []Entry {
	e := make([]Entry, 0, len(variants))
	for v := Premium; v <= Classic; v++ {
		e = append(e, Entry{Variant: v})
	}
	return e
}

// SheetText is the text of a collection sheet.
type SheetText struct {
	Title    string
	Subtitle string
	Footer   string // empty is "Scan any QR code to visit: " and the URL
}

// Collection layout.
const (
	SheetWidth  = 1200
	SheetHeight = 1600

	cellQR     = 300
	cellLeft   = 150
	cellTop    = 200
	cellPitchX = 450
	cellPitchY = 400
	cardMargin = 30
	cardBelow  = 80
	cardRadius = 15
	shadowOff  = 5
	footerUp   = 100
)

var title = cases.Title(language.English)

// Collection draws a styled code of url for each entry, two to a row,
// on a sheet of at least SheetWidth×SheetHeight.
func Collection(url string, entries []Entry, t SheetText, f Fonts, o StyleOptions) (*image.RGBA, error) {
	rows := (len(entries) + 1) / 2
	h := max(SheetHeight, cellTop+rows*cellPitchY+2*footerUp)
	dc := canvas(SheetWidth, h, paper)
	line(dc, f.Title, t.Title, 0, SheetWidth, 50, navy)
	line(dc, f.Subtitle, t.Subtitle, 0, SheetWidth, 120, slate)

	for i, e := range entries {
		img, err := Styled(url, e.Variant, o)
		if err != nil {
			return nil, err
		}
		qr := imaging.Resize(img, cellQR, cellQR, imaging.Lanczos)
		x := cellLeft + i%2*cellPitchX
		y := cellTop + i/2*cellPitchY

		cw := float64(cellQR + 2*cardMargin)
		ch := float64(cellQR + 2*cardMargin + cardBelow)
		cx, cy := float64(x-cardMargin), float64(y-cardMargin)
		dc.DrawRoundedRectangle(cx+shadowOff, cy+shadowOff, cw, ch, cardRadius)
		dc.SetColor(shadow)
		dc.Fill()
		dc.DrawRoundedRectangle(cx, cy, cw, ch, cardRadius)
		dc.SetColor(color.White)
		dc.Fill()
		dc.DrawImage(qr, x, y)

		name := e.Name
		if name == "" {
			name = e.Variant.String()
		}
		desc := e.Description
		if desc == "" {
			desc = e.Variant.Description()
		}
		line(dc, f.Subtitle, title.String(name), x, x+cellQR, y+cellQR+20, navy)
		l1, l2 := split(desc, 3)
		line(dc, f.Body, l1, x, x+cellQR, y+cellQR+50, muted)
		line(dc, f.Body, l2, x, x+cellQR, y+cellQR+70, muted)
	}

	footer := t.Footer
	if footer == "" {
		footer = "Scan any QR code to visit: " + url
	}
	line(dc, f.Body, footer, 0, SheetWidth, h-footerUp, slate)
	o.Log.Debug().Int("entries", len(entries)).Int("height", h).Msg("collection sheet")
	return dc.Image().(*image.RGBA), nil
}

// split breaks s after its first n words.
func split(s string, n int) (string, string) {
	w := strings.Fields(s)
	if len(w) <= n {
		return strings.Join(w, " "), ""
	}
	return strings.Join(w[:n], " "), strings.Join(w[n:], " ")
}

// PremiumText is the text of a single premium card.
type PremiumText struct {
	Title string
	URL   string // empty is the encoded URL
}

// Single card layout.
const (
	SingleWidth  = 600
	SingleHeight = 700

	singleQR  = 400
	singleTop = 100
)

// Single draws a premium styled code of url on a card with a title
// above and the URL below.
func Single(url string, t PremiumText, f Fonts, o StyleOptions) (*image.RGBA, error) {
	img, err := Styled(url, Premium, o)
	if err != nil {
		return nil, err
	}
	qr := imaging.Resize(img, singleQR, singleQR, imaging.Lanczos)
	dc := canvas(SingleWidth, SingleHeight, paper)
	dc.DrawImage(qr, (SingleWidth-singleQR)/2, singleTop)
	line(dc, f.Title, t.Title, 0, SingleWidth, 30, navy)
	u := t.URL
	if u == "" {
		u = url
	}
	line(dc, f.Subtitle, u, 0, SingleWidth, singleTop+singleQR+20, slate)
	return dc.Image().(*image.RGBA), nil
}

// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package card

import (
	"image"
	"image/color"
)

// PortfolioText is the text of a portfolio card.
type PortfolioText struct {
	Title    string
	Subtitle string
	URL      string   // shown under the code
	Features []string // one per line, below the URL
}

// Portfolio layout.
const (
	PortfolioWidth  = 800
	PortfolioHeight = 1000

	portfolioQRTop = 200
	featurePitch   = 30
	bottomMargin   = 40
)

// Portfolio composes qr with t on a white canvas of at least
// PortfolioWidth×PortfolioHeight.  The canvas grows to fit a wider code
// or a longer feature list.
func Portfolio(qr image.Image, t PortfolioText, f Fonts) *image.RGBA {
	qb := qr.Bounds()
	w := max(PortfolioWidth, qb.Dx())
	urlTop := portfolioQRTop + qb.Dy() + 30
	featTop := portfolioQRTop + qb.Dy() + 80
	h := max(PortfolioHeight, featTop+len(t.Features)*featurePitch+bottomMargin)

	dc := canvas(w, h, color.White)
	dc.DrawImage(qr, (w-qb.Dx())/2, portfolioQRTop)
	line(dc, f.Title, t.Title, 0, w, 50, color.Black)
	line(dc, f.Subtitle, t.Subtitle, 0, w, 100, gray)
	line(dc, f.Body, t.URL, 0, w, urlTop, color.Black)
	for i, s := range t.Features {
		line(dc, f.Body, s, 0, w, featTop+i*featurePitch, darkBlue)
	}
	return dc.Image().(*image.RGBA)
}

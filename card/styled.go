// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package card

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/rs/zerolog"

	"github.com/unixdj/qrcard"
	"github.com/unixdj/qrcard/logo"
	"github.com/unixdj/qrcard/mask"
)

// A Variant is a colour scheme for a styled code.
type Variant int

const (
	Premium Variant = iota
	Modern
	Colorful
	Classic
)

var variants = [...]struct {
	name   string
	desc   string
	fg, bg color.NRGBA
	style  logo.Style
}{
	Premium: {"premium", "Premium gradient style with rounded corners",
		color.NRGBA{0x1a, 0x36, 0x5d, 0xff}, color.NRGBA{0xff, 0xff, 0xff, 0xff},
		logo.Gradient},
	Modern: {"modern", "Modern flat design with clean aesthetics",
		color.NRGBA{0x2d, 0x37, 0x48, 0xff}, color.NRGBA{0xf7, 0xfa, 0xfc, 0xff},
		logo.Modern},
	Colorful: {"colorful", "Vibrant colors for creative portfolios",
		color.NRGBA{0x6b, 0x46, 0xc1, 0xff}, color.NRGBA{0xfe, 0xf3, 0xc7, 0xff},
		logo.Glass},
	Classic: {"classic", "Traditional professional look",
		color.NRGBA{0x00, 0x00, 0x00, 0xff}, color.NRGBA{0xff, 0xff, 0xff, 0xff},
		logo.Glass},
}

func (v Variant) valid() bool {
	return v >= Premium && v <= Classic
}

func (v Variant) String() string {
	if !v.valid() {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variants[v].name
}

// Description returns the default caption of v.
func (v Variant) Description() string {
	if !v.valid() {
		return ""
	}
	return variants[v].desc
}

// ParseVariant parses a variant name as returned by String, ignoring
// case.
func ParseVariant(s string) (Variant, error) {
	for i, v := range variants {
		if strings.EqualFold(v.name, s) {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("card: unknown variant %q", s)
}

// Styled code parameters.
const (
	StyledScale  = 12
	StyledBorder = 4
	cornerRadius = 20
)

// StyleOptions control logo embedding.
type StyleOptions struct {
	Logo     string // logo file; empty synthesizes one
	LogoText string // text of a synthesized logo
	LogoSize int    // logo side in pixels; 0 is logo.DefaultSize
	Shape    logo.Shape
	Font     string // font file for synthesized logos
	NoLogo   bool
	Log      zerolog.Logger
}

func (o StyleOptions) logo(s logo.Style) logo.Options {
	return logo.Options{
		Style: s,
		Shape: o.Shape,
		Size:  o.LogoSize,
		Text:  o.LogoText,
		Font:  o.Font,
		Log:   o.Log,
	}
}

// WithLogo renders c and pastes the logo described by o over its
// centre, in style s if the logo is synthesized.  A logo covering more
// than logo.MaxCoverage of the symbol is logged but kept.
func WithLogo(c *qrcard.Code, s logo.Style, o StyleOptions) *image.NRGBA {
	img := c.NRGBA()
	if img == nil || o.NoLogo {
		return img
	}
	r := logo.Paste(img, logo.Load(o.Logo, o.logo(s)))
	if cov := logo.Coverage(c.Symbol(), r); cov > logo.MaxCoverage {
		o.Log.Warn().Float64("coverage", cov).
			Msg("logo covers too much of the code, it may not scan")
	}
	return img
}

// Styled encodes url at level H in the colours of v with a logo.
// Premium codes get rounded corners.
func Styled(url string, v Variant, o StyleOptions) (*image.NRGBA, error) {
	if !v.valid() {
		return nil, fmt.Errorf("card: %v: %w", v, qrcard.ErrArgs)
	}
	c, err := qrcard.Encode(url, qrcard.H)
	if err != nil {
		return nil, err
	}
	p := variants[v]
	c.Scale, c.Border = StyledScale, StyledBorder
	c.Palette = &[2]color.Color{p.bg, p.fg}
	img := WithLogo(c, p.style, o)
	if v == Premium {
		b := img.Bounds()
		img = mask.Apply(img, mask.RoundedRect(b.Dx(), b.Dy(), cornerRadius))
	}
	o.Log.Debug().Stringer("variant", v).Int("version", c.Version).
		Int("pixels", c.Pixels()).Msg("styled code")
	return img, nil
}

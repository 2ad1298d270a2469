// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logo

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/unixdj/qrcard/face"
	"github.com/unixdj/qrcard/mask"
)

// DefaultText is drawn on styles showing initials when Options.Text
// is empty.
const DefaultText = "QR"

// A label is the text drawn over a synthesized logo.
type label struct {
	text   string
	scale  float64     // font size in logo sizes
	fg     color.Color // text colour
	shadow color.Color // drawn 1px down and right first; nil for none
	nudge  int         // vertical offset from centre
}

var (
	white      = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	softShadow = color.NRGBA{0, 0, 0, 100}
	slate      = color.NRGBA{45, 55, 72, 0xff}
)

// A painter draws the background of a style on a size×size context and
// returns the label to draw over it.
type painter func(dc *gg.Context, size float64) label

var painters = [numStyles]painter{
	Gradient: paintGradient,
	Modern:   paintModern,
	Glass:    paintGlass,
	Rings:    paintRings,
	Tech:     paintTech,
	Business: paintBusiness,
	Creative: paintCreative,
	Coffee:   paintCoffee,
}

// Synthesize draws the default logo described by opts.  Pixels outside
// the circle inscribed in the square are fully transparent.
func Synthesize(opts Options) *image.NRGBA {
	size := opts.size()
	st := opts.Style
	if st < 0 || st >= numStyles {
		st = Gradient
	}
	dc := gg.NewContext(size, size)
	l := painters[st](dc, float64(size))
	if l.text != "" {
		if opts.Text != "" {
			l.text = opts.Text
		}
		drawLabel(dc, l, opts.Font, size)
	}
	return mask.Apply(dc.Image(), mask.Circle(size, 0))
}

// drawLabel draws l centred by its bounding box, shadow first.
func drawLabel(dc *gg.Context, l label, font string, size int) {
	f := face.Open(font, float64(size)*l.scale, face.Bold)
	dot := face.Center(f, l.text, image.Rect(0, 0, size, size))
	x, y := float64(dot.X), float64(dot.Y+l.nudge)
	dc.SetFontFace(f)
	if l.shadow != nil {
		dc.SetColor(l.shadow)
		dc.DrawString(l.text, x+1, y+1)
	}
	dc.SetColor(l.fg)
	dc.DrawString(l.text, x, y)
}

// ellipse draws the ellipse inscribed in the box (x0,y0)-(x1,y1).  The
// outline, if any, is drawn inside the box over the fill.
func ellipse(dc *gg.Context, x0, y0, x1, y1 float64, fill, outline color.Color, width float64) {
	cx, cy := (x0+x1)/2, (y0+y1)/2
	rx, ry := (x1-x0)/2, (y1-y0)/2
	if fill != nil {
		dc.DrawEllipse(cx, cy, rx, ry)
		dc.SetColor(fill)
		dc.Fill()
	}
	if outline != nil && width > 0 && rx > width/2 && ry > width/2 {
		dc.DrawEllipse(cx, cy, rx-width/2, ry-width/2)
		dc.SetColor(outline)
		dc.SetLineWidth(width)
		dc.Stroke()
	}
}

// disc draws a filled circle of radius r around the centre.
func disc(dc *gg.Context, size, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	m := size / 2
	ellipse(dc, m-r, m-r, m+r, m+r, c, nil, 0)
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func paintGradient(dc *gg.Context, size float64) label {
	im := dc.Image().(*image.RGBA)
	n := int(size)
	c := n / 2
	if edge := float64(c - 3); edge > 0 {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				dx, dy := float64(x-c), float64(y-c)
				d := math.Sqrt(dx*dx + dy*dy)
				if d > edge {
					continue
				}
				t := d / edge
				im.SetRGBA(x, y, color.RGBA{
					lerp(102, 118, t),
					lerp(126, 75, t),
					lerp(234, 162, t),
					0xff,
				})
			}
		}
	}
	ellipse(dc, 2, 2, size-2, size-2, nil, white, 4)
	return label{DefaultText, 1 / 2.2, white, softShadow, -2}
}

func paintModern(dc *gg.Context, size float64) label {
	ellipse(dc, 3, 3, size-3, size-3, slate, nil, 0)
	ellipse(dc, 8, 8, size-8, size-8, nil, color.NRGBA{99, 179, 237, 0xff}, 3)
	return label{DefaultText, 1 / 2.2, white, softShadow, -2}
}

func paintGlass(dc *gg.Context, size float64) label {
	ellipse(dc, 2, 2, size-2, size-2, color.NRGBA{0xff, 0xff, 0xff, 180}, nil, 0)
	ellipse(dc, 6, 6, size-6, size-6, nil, color.NRGBA{100, 149, 237, 200}, 2)
	// Highlight in the upper left.
	ellipse(dc, size/4, size/8, size/2, size/3, color.NRGBA{0xff, 0xff, 0xff, 80}, nil, 0)
	return label{DefaultText, 1 / 2.2, slate, nil, -2}
}

func paintRings(dc *gg.Context, size float64) label {
	colors := [...]color.NRGBA{
		{41, 128, 185, 200},
		{52, 152, 219, 200},
		{155, 89, 182, 200},
	}
	half := math.Floor(size / 2)
	for i, c := range colors {
		disc(dc, size, half-float64(i*8), c)
	}
	return label{DefaultText, 1.0 / 3, white, softShadow, -5}
}

func paintTech(dc *gg.Context, size float64) label {
	colors := [...]color.NRGBA{
		{0, 123, 255, 255},
		{40, 167, 69, 205},
		{255, 193, 7, 155},
	}
	half := math.Floor(size / 2)
	for i, c := range colors {
		disc(dc, size, half-float64(i*6), c)
	}
	return label{"</>", 1.0 / 2, white, color.NRGBA{0, 0, 0, 150}, 0}
}

func paintBusiness(dc *gg.Context, size float64) label {
	accent := color.NRGBA{52, 152, 219, 0xff}
	ellipse(dc, 2, 2, size-2, size-2, color.NRGBA{33, 47, 61, 0xff}, accent, 4)
	ellipse(dc, 8, 8, size-8, size-8, nil, accent, 2)
	return label{DefaultText, 1 / 2.5, white, nil, 0}
}

func paintCreative(dc *gg.Context, size float64) label {
	colors := [...]color.NRGBA{
		{255, 99, 132, 200},
		{54, 162, 235, 200},
		{255, 205, 86, 200},
		{75, 192, 192, 200},
	}
	m := size / 2
	for i, c := range colors {
		dc.MoveTo(m, m)
		dc.DrawArc(m, m, m-5, gg.Radians(float64(i*90)), gg.Radians(float64(i*90+90)))
		dc.ClosePath()
		dc.SetColor(c)
		dc.Fill()
	}
	inner := math.Floor(size / 2)
	off := math.Floor((size - inner) / 2)
	ellipse(dc, off, off, off+inner, off+inner, white, color.Black, 2)
	star(dc, m, m, size/8, size/8*0.4)
	dc.SetColor(color.NRGBA{255, 193, 7, 0xff})
	dc.Fill()
	return label{}
}

// star adds a closed five-pointed star path pointing up.
func star(dc *gg.Context, cx, cy, outer, inner float64) {
	for i := 0; i < 10; i++ {
		r := outer
		if i&1 != 0 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/5
		x, y := cx+r*math.Cos(a), cy+r*math.Sin(a)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
}

func paintCoffee(dc *gg.Context, size float64) label {
	roast := color.NRGBA{101, 67, 33, 0xff}
	ellipse(dc, 5, 5, size-5, size-5, color.NRGBA{139, 69, 19, 0xff}, roast, 3)

	cw, ch := math.Floor(size/3), size/2.5
	x, y := math.Floor((size-cw)/2), math.Floor((size-ch)/2)+5
	dc.DrawRectangle(x, y, cw, ch)
	dc.SetColor(white)
	dc.Fill()
	dc.DrawRectangle(x+3, y+3, cw-6, ch-6)
	dc.SetColor(roast)
	dc.Fill()

	sx := x + math.Floor(cw/2)
	for i := -1; i <= 1; i++ {
		dx := float64(i * 4)
		dc.DrawLine(sx+dx, y-10, sx+dx, y-5)
	}
	dc.SetColor(color.NRGBA{0xff, 0xff, 0xff, 180})
	dc.SetLineWidth(2)
	dc.Stroke()
	return label{}
}

// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qrcard encodes QR codes for printed cards and rasterizes them
as two-tone bitmaps.

Symbol encoding is done by github.com/skip2/go-qrcode.  A Code keeps
the resulting module grid as packed 1-bit rows and renders it at a
given scale with a quiet zone, either as an image.Image view, a mutable
NRGBA copy for compositing, a PNG or PBM file, or text.

A logo pasted over the centre of the symbol stays decodable only at
level H and only while it covers no more than about 30% of the symbol.
That is left to the caller.
*/
package qrcard // import "github.com/unixdj/qrcard"

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/skip2/go-qrcode"
	"golang.org/x/image/draw"
)

var (
	ErrArgs    = errors.New("qr: invalid arguments")
	ErrLevel   = errors.New("qr: invalid level")
	ErrVersion = errors.New("qr: invalid version")
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 7% of codewords can be restored
	M              // 15%
	Q              // 25%
	H              // 30%
)

var recovery = [...]qrcode.RecoveryLevel{
	L: qrcode.Low,
	M: qrcode.Medium,
	Q: qrcode.High,
	H: qrcode.Highest,
}

func (l Level) String() string {
	if l < L || l > H {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return "LMQH"[l : l+1]
}

// ParseLevel parses one of "l", "m", "q" or "h", in either case.
func ParseLevel(s string) (Level, error) {
	if len(s) == 1 {
		if i := strings.IndexByte("lmqhLMQH", s[0]); i >= 0 {
			return Level(i & 3), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrLevel, s)
}

// MinVersion and MaxVersion bound QR versions for EncodeVersion.
const (
	MinVersion = 1
	MaxVersion = 40
)

// Default rendering parameters.
const (
	DefaultScale  = 8
	DefaultBorder = 4
)

// Encode returns an encoding of text at the given error correction
// level, using the smallest version that fits.
func Encode(text string, level Level) (*Code, error) {
	return EncodeVersion(text, 0, level)
}

// EncodeVersion is like Encode, but forces the QR version unless
// version is 0.
func EncodeVersion(text string, version int, level Level) (*Code, error) {
	if level < L || level > H {
		return nil, ErrLevel
	}
	var (
		q   *qrcode.QRCode
		err error
	)
	switch {
	case version == 0:
		q, err = qrcode.New(text, recovery[level])
	case version < MinVersion || version > MaxVersion:
		return nil, fmt.Errorf("%w: %d", ErrVersion, version)
	default:
		q, err = qrcode.NewWithForcedVersion(text, version, recovery[level])
	}
	if err != nil {
		return nil, fmt.Errorf("qr: encoding %d bytes at level %v: %w",
			len(text), level, err)
	}
	q.DisableBorder = true
	c := pack(q.Bitmap())
	c.Version = q.VersionNumber
	return c, nil
}

// pack converts a module grid to a Code with default scale and border.
func pack(grid [][]bool) *Code {
	siz := len(grid)
	stride := (siz + 7) / 8
	b := make([]byte, stride*siz)
	for y, row := range grid {
		for x, dark := range row {
			if dark {
				b[y*stride+x/8] |= 1 << uint(7-x&7)
			}
		}
	}
	return &Code{
		Bitmap: b,
		Size:   siz,
		Stride: stride,
		Scale:  DefaultScale,
		Border: DefaultBorder,
	}
}

// A Code is a square pixel grid.
// It implements image.Image and direct PNG encoding.
type Code struct {
	Bitmap  []byte          // 1 is black, 0 is white
	Size    int             // number of modules on a side
	Stride  int             // number of bytes per row
	Version int             // QR version
	Scale   int             // number of image pixels per QR module
	Border  int             // quiet zone width in modules
	Palette *[2]color.Color // background and foreground; nil is white, black
	Reverse bool            // swap background and foreground
}

// Black returns true if the pixel at (x,y) is black.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7-x&7)) != 0
}

// Pixels returns the length of a side of the rendered image.
func (c *Code) Pixels() int {
	return (c.Size + 2*c.Border) * c.Scale
}

// Symbol returns the bounds of the symbol, quiet zone excluded, in the
// rendered image.
func (c *Code) Symbol() image.Rectangle {
	off := c.Border * c.Scale
	return image.Rect(off, off, off+c.Size*c.Scale, off+c.Size*c.Scale)
}

func (c *Code) isValid() bool {
	return c != nil && c.Size > 0 && c.Scale > 0 && c.Border >= 0 &&
		c.Stride >= (c.Size+7)/8 && len(c.Bitmap) >= c.Stride*c.Size
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

// colors returns the background and foreground colours.
func (c *Code) colors() (bg, fg color.Color) {
	bg, fg = whiteColor, blackColor
	if c.Palette != nil {
		bg, fg = c.Palette[0], c.Palette[1]
	}
	if c.Reverse {
		bg, fg = fg, bg
	}
	return bg, fg
}

// Image returns an Image displaying the code.
func (c *Code) Image() image.Image {
	bg, fg := c.colors()
	return &codeImage{c, color.Palette{bg, fg}}
}

// codeImage implements image.Image
type codeImage struct {
	*Code
	pal color.Palette
}

func (c *codeImage) Bounds() image.Rectangle {
	d := c.Pixels()
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	if x < 0 || y < 0 {
		return c.pal[0]
	}
	if c.Black(x/c.Scale-c.Border, y/c.Scale-c.Border) {
		return c.pal[1]
	}
	return c.pal[0]
}

func (c *codeImage) ColorModel() color.Model {
	return c.pal
}

// NRGBA returns a copy of the rendered code that can be drawn on.
func (c *Code) NRGBA() *image.NRGBA {
	if !c.isValid() {
		return nil
	}
	d := c.Pixels()
	img := image.NewNRGBA(image.Rect(0, 0, d, d))
	bg, fg := c.colors()
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	src := image.NewUniform(fg)
	off := c.Border * c.Scale
	for y := 0; y < c.Size; y++ {
		for x := 0; x < c.Size; {
			if !c.Black(x, y) {
				x++
				continue
			}
			// Fill runs of dark modules at once.
			s := x
			for x < c.Size && c.Black(x, y) {
				x++
			}
			r := image.Rect(s*c.Scale, y*c.Scale, x*c.Scale, (y+1)*c.Scale)
			draw.Draw(img, r.Add(image.Pt(off, off)), src, image.Point{}, draw.Src)
		}
	}
	return img
}

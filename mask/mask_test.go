// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mask

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestCircle(t *testing.T) {
	for _, tt := range []struct{ size, inset int }{
		{100, 0}, {61, 0}, {100, 10}, {8, 0},
	} {
		m := Circle(tt.size, tt.inset)
		if m.Bounds() != image.Rect(0, 0, tt.size, tt.size) {
			t.Fatalf("Circle(%d, %d): bounds %v", tt.size, tt.inset, m.Bounds())
		}
		c := float64(tt.size) / 2
		r := c - float64(tt.inset)
		for y := 0; y < tt.size; y++ {
			for x := 0; x < tt.size; x++ {
				d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c)
				a := m.AlphaAt(x, y).A
				switch {
				case d > r+1 && a != 0:
					t.Errorf("Circle(%d, %d): alpha %d at (%d,%d) outside",
						tt.size, tt.inset, a, x, y)
				case d < r-1 && a != 0xff:
					t.Errorf("Circle(%d, %d): alpha %d at (%d,%d) inside",
						tt.size, tt.inset, a, x, y)
				}
			}
		}
	}
	if m := Circle(10, 6); ink(m) {
		t.Error("Circle with inset past the centre is not empty")
	}
}

func ink(m *image.Alpha) bool {
	for _, a := range m.Pix {
		if a != 0 {
			return true
		}
	}
	return false
}

func TestRoundedRect(t *testing.T) {
	m := RoundedRect(60, 40, 10)
	for _, tt := range []struct {
		x, y int
		a    uint8
	}{
		{0, 0, 0}, {59, 0, 0}, {0, 39, 0}, {59, 39, 0},
		{30, 0, 0xff}, {0, 20, 0xff}, {30, 20, 0xff}, {10, 10, 0xff},
	} {
		if a := m.AlphaAt(tt.x, tt.y).A; a != tt.a {
			t.Errorf("alpha at (%d,%d) = %d, want %d", tt.x, tt.y, a, tt.a)
		}
	}
}

func TestOf(t *testing.T) {
	img := image.NewNRGBA(image.Rect(5, 5, 15, 15))
	img.SetNRGBA(5, 5, color.NRGBA{0xff, 0, 0, 0x80})
	img.SetNRGBA(14, 14, color.NRGBA{0, 0xff, 0, 0xff})
	a := Of(img)
	if a.Bounds() != image.Rect(0, 0, 10, 10) {
		t.Fatalf("bounds %v", a.Bounds())
	}
	if v := a.AlphaAt(0, 0).A; v != 0x80 {
		t.Errorf("alpha at origin = %#x, want 0x80", v)
	}
	if v := a.AlphaAt(9, 9).A; v != 0xff {
		t.Errorf("alpha at corner = %#x, want 0xff", v)
	}
	if v := a.AlphaAt(5, 5).A; v != 0 {
		t.Errorf("alpha of transparent pixel = %#x", v)
	}
}

func TestApply(t *testing.T) {
	red := color.NRGBA{0xff, 0, 0, 0xff}
	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	for i := 0; i < len(img.Pix); i += 4 {
		copy(img.Pix[i:], []uint8{red.R, red.G, red.B, red.A})
	}
	out := Apply(img, Circle(40, 0))
	if got := out.NRGBAAt(20, 20); got != red {
		t.Errorf("centre = %v, want %v", got, red)
	}
	if got := out.NRGBAAt(0, 0); got.A != 0 {
		t.Errorf("corner = %v, want transparent", got)
	}
	if got := img.NRGBAAt(0, 0); got != red {
		t.Errorf("source modified: %v", got)
	}
	// Pixels beyond a smaller mask are transparent.
	out = Apply(img, Circle(20, 0))
	if got := out.NRGBAAt(30, 30); got.A != 0 {
		t.Errorf("beyond mask = %v, want transparent", got)
	}
}

// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrcard

import (
	"io"
	"strings"
)

// String renders the code with UTF-8 half blocks, two module rows per
// line, quiet zone included.  Light modules are drawn as blocks, so the
// result scans on a dark terminal; c.Reverse draws dark modules instead.
// Scale is ignored.
func (c *Code) String() string {
	if !c.isValid() {
		return ""
	}
	blocks := [4]string{" ", "▄", "▀", "█"} // indexed by top<<1 | bottom
	bord := c.Border
	pix := c.Size + 2*bord
	lit := func(x, y int) int {
		if y >= c.Size+bord || c.Black(x, y) != c.Reverse {
			return 0
		}
		return 1
	}
	var b strings.Builder
	b.Grow((pix*3 + 1) * (pix + 1) / 2)
	for y := -bord; y < c.Size+bord; y += 2 {
		for x := -bord; x < c.Size+bord; x++ {
			b.WriteString(blocks[lit(x, y)<<1|lit(x, y+1)])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ASCII writes the code to w as text, two characters per module, '#'
// for black.
func (c *Code) ASCII(w io.Writer) error {
	if !c.isValid() {
		return ErrArgs
	}
	siz := c.Size
	bord := c.Border
	pix := siz + 2*bord
	b := make([]byte, (pix*2+1)*pix)
	i := 0
	for y := -bord; y < siz+bord; y++ {
		for x := -bord; x < siz+bord; x++ {
			var p byte = ' '
			if c.Black(x, y) != c.Reverse {
				p = '#'
			}
			_ = b[i+1]
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	_, err := w.Write(b)
	return err
}

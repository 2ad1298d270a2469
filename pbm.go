// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrcard

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.  EncodePBM disregards c.Palette, as other PNM
// formats are not supported.
func (c *Code) EncodePBM(w io.Writer) error {
	if !c.isValid() {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	siz := c.Size
	scale := c.Scale
	bord := c.Border
	length := scale * (siz + bord*2)
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	// In PBM 1 is black.
	var white byte
	if c.Reverse {
		white = 255
	}
	quiet := make([]byte, (length+7)/8)
	for i := range quiet {
		quiet[i] = white
	}
	for i := 0; i < scale*bord; i++ {
		if _, err := b.Write(quiet); err != nil {
			return err
		}
	}
	row := make([]byte, len(quiet))
	for y := 0; y < siz; y++ {
		pbmRow(row, c, y, white)
		for i := 0; i < scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	for i := 0; i < scale*bord; i++ {
		if _, err := b.Write(quiet); err != nil {
			return err
		}
	}
	return b.Flush()
}

// pbmRow encodes row y of the code, quiet zone included, at c.Scale
// bits per module.
func pbmRow(row []byte, c *Code, y int, white byte) {
	for i := range row {
		row[i] = white
	}
	off := c.Border * c.Scale
	for x := 0; x < c.Size; x++ {
		if !c.Black(x, y) {
			continue
		}
		for p := off + x*c.Scale; p < off+(x+1)*c.Scale; p++ {
			row[p/8] ^= 0x80 >> uint(p&7)
		}
	}
}

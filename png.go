// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrcard

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// Lossless, so the best compression costs only time.
var encoder = png.Encoder{CompressionLevel: png.BestCompression}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if w == nil || img == nil {
		return ErrArgs
	}
	return encoder.Encode(w, img)
}

// Save writes img to the named file as PNG, creating or truncating it,
// and returns the path.  A failed write may leave a partial file.
func Save(path string, img image.Image) (string, error) {
	if img == nil {
		return "", ErrArgs
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return "", err
	}
	err = encoder.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// PNG returns a PNG image displaying the code, or nil if the code is
// invalid.
func (c *Code) PNG() []byte {
	var b bytes.Buffer
	if err := c.EncodePNG(&b); err != nil {
		return nil
	}
	return b.Bytes()
}

// EncodePNG writes a PNG image displaying the code to w.
func (c *Code) EncodePNG(w io.Writer) error {
	if !c.isValid() {
		return ErrArgs
	}
	return EncodePNG(w, c.Image())
}

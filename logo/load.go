// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logo

import (
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/unixdj/qrcard/mask"
)

// Load returns the logo in the image file at path, scaled to
// opts.Size with a Lanczos filter and masked to opts.Shape.  If path is
// empty, or the file is missing or cannot be decoded, Load logs the
// reason to opts.Log and returns Synthesize(opts).
func Load(path string, opts Options) *image.NRGBA {
	if path == "" {
		return Synthesize(opts)
	}
	img, err := decodeFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			opts.Log.Warn().Str("path", path).
				Msg("logo file not found, using default logo")
		} else {
			opts.Log.Warn().Str("path", path).Err(err).
				Msg("logo file unusable, using default logo")
		}
		return Synthesize(opts)
	}
	size := opts.size()
	opts.Log.Debug().Str("path", path).
		Stringer("bounds", img.Bounds()).Int("size", size).
		Msg("loaded logo")
	return Shaped(imaging.Resize(img, size, size, imaging.Lanczos), opts.Shape)
}

// Shaped returns a copy of img masked to shape.
func Shaped(img image.Image, shape Shape) *image.NRGBA {
	b := img.Bounds()
	switch shape {
	case Circle:
		return mask.Apply(img, mask.Circle(min(b.Dx(), b.Dy()), 0))
	case Rounded:
		r := float64(min(b.Dx(), b.Dy())) / 5
		return mask.Apply(img, mask.RoundedRect(b.Dx(), b.Dy(), r))
	}
	return imaging.Clone(img)
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

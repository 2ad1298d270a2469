// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package logo loads and synthesizes small square logos and pastes them
over the centre of a QR code.

Load is best effort: a logo file that is missing or cannot be decoded
is reported as a warning and replaced by the synthesized default for the
requested Style.  Synthesized logos are transparent outside the circle
inscribed in their square.
*/
package logo // import "github.com/unixdj/qrcard/logo"

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultSize is the side of a logo in pixels when Options.Size is 0.
const DefaultSize = 100

// A Style selects how a default logo is drawn.
type Style int

const (
	Gradient Style = iota // radial blue to purple disc, white rim
	Modern                // dark disc, blue accent ring
	Glass                 // translucent white disc, highlight
	Rings                 // three concentric discs
	Tech                  // tricolour rings, "</>"
	Business              // dark disc, two accent rings, initials
	Creative              // four pie slices, white centre, star
	Coffee                // brown disc, cup with steam
	numStyles
)

var styleNames = [numStyles]string{
	"gradient", "modern", "glass", "rings",
	"tech", "business", "creative", "coffee",
}

func (s Style) String() string {
	if s < 0 || s >= numStyles {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

// ParseStyle returns the Style named s, ignoring case.
func ParseStyle(s string) (Style, error) {
	for i, v := range styleNames {
		if strings.EqualFold(s, v) {
			return Style(i), nil
		}
	}
	return 0, fmt.Errorf("logo: unknown style %q", s)
}

// Styles returns the names of all styles.
func Styles() []string {
	return append([]string(nil), styleNames[:]...)
}

// A Shape is the mask applied to a logo loaded from a file.
type Shape int

const (
	Circle  Shape = iota // inscribed circle
	Rounded              // square with rounded corners
	None                 // unmasked
	numShapes
)

var shapeNames = [numShapes]string{"circle", "rounded", "none"}

func (s Shape) String() string {
	if s < 0 || s >= numShapes {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// ParseShape returns the Shape named s, ignoring case.
func ParseShape(s string) (Shape, error) {
	for i, v := range shapeNames {
		if strings.EqualFold(s, v) {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("logo: unknown shape %q", s)
}

// Options describe a logo.
type Options struct {
	Style Style  // style of the synthesized logo
	Shape Shape  // mask for a logo loaded from a file
	Size  int    // side in pixels; 0 is DefaultSize
	Text  string // text drawn on the synthesized logo; "" is the style's
	Font  string // font file for the text; "" is the embedded Go Bold

	// Log receives fallback warnings.  The zero Logger discards them.
	Log zerolog.Logger
}

func (o *Options) size() int {
	if o.Size <= 0 {
		return DefaultSize
	}
	return o.Size
}

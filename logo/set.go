// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logo

import (
	"path/filepath"

	"github.com/unixdj/qrcard"
)

// SetStyles are the styles written by WriteSet, in order.
var SetStyles = []Style{Coffee, Tech, Business, Creative}

// SetName returns the file name WriteSet uses for s.
func SetName(s Style) string {
	return "logo_" + s.String() + ".png"
}

// WriteSet writes a logo of each of SetStyles to dir and returns the
// paths written.  opts.Style is ignored.
func WriteSet(dir string, opts Options) ([]string, error) {
	paths := make([]string, 0, len(SetStyles))
	for _, s := range SetStyles {
		o := opts
		o.Style = s
		p, err := qrcard.Save(filepath.Join(dir, SetName(s)), Synthesize(o))
		if err != nil {
			return paths, err
		}
		opts.Log.Info().Str("path", p).Stringer("style", s).Msg("created logo")
		paths = append(paths, p)
	}
	return paths, nil
}

// WriteSample writes the sample ring logo to path.
func WriteSample(path string, opts Options) (string, error) {
	opts.Style = Rings
	return qrcard.Save(path, Synthesize(opts))
}

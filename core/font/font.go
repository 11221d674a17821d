/*
Package font is for typeface and font handling.

We stick to the nomenclature of the typesetting packages this module grew out of:

* A "scalable font" is a parsed outline font, e.g. "Noto Sans JP Medium".
If it has been loaded from a collection (*.ttc), it is the first font of the
collection.

* A "typecase" is a scaled font, i.e. a font in a certain point size.
Typecases answer metric questions (advance widths, kerning, ascent and
descent) in pixels and draw glyph coverage.

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-24, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package font

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/okanimoji/core"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer traces with key 'okanimoji.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("okanimoji.fonts")
}

// ErrFontParse is the cause of errors for binaries which do not decode as an
// outline font. Errors returned from this package carry code core.EINVALID.
var ErrFontParse = errors.New("cannot decode font")

// DefaultPtSize is the point size used if a typecase is requested with an
// unusable size.
const DefaultPtSize float32 = 64

// ScalableFont is a parsed outline font, not yet scaled to a size.
// It is immutable once loaded and may be shared between goroutines.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path, if loaded from a file
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// LoadOpenTypeFont loads and parses a font file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", fontfile)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	if f.Fontname == "" {
		f.Fontname = filepath.Base(fontfile)
	}
	return f, nil
}

var ttcMagic = []byte("ttcf")

// ParseOpenTypeFont parses font bytes. Font collections (*.ttc) are accepted,
// in which case the first font of the collection is used.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	if len(fbytes) == 0 {
		return nil, core.WrapError(ErrFontParse, core.EINVALID, "font data is empty")
	}
	f = &ScalableFont{Binary: fbytes}
	if bytes.HasPrefix(fbytes, ttcMagic) {
		var coll *sfnt.Collection
		if coll, err = sfnt.ParseCollection(fbytes); err == nil {
			tracer().Debugf("font collection contains %d fonts, using first", coll.NumFonts())
			f.SFNT, err = coll.Font(0)
		}
	} else {
		f.SFNT, err = sfnt.Parse(fbytes)
	}
	if err != nil {
		tracer().Errorf("cannot parse font: %v", err)
		return nil, core.WrapError(errors.Join(ErrFontParse, err), core.EINVALID,
			"font data does not decode as an outline font")
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// PrepareCase creates a typecase from a scalable font for a given point size.
// Point sizes are interpreted at 72 DPI, i.e. one point equals one pixel.
// Sizes outside of 5pt…500pt are replaced by DefaultPtSize.
func (sf *ScalableFont) PrepareCase(fontsize float32) (*TypeCase, error) {
	if sf == nil || sf.SFNT == nil {
		return nil, core.Error(core.EINVALID, "cannot prepare typecase for null font")
	}
	if fontsize < 5.0 || fontsize > 500.0 {
		tracer().Errorf("font size must be 5pt < size < 500pt, is %g (set to %g)", fontsize, DefaultPtSize)
		fontsize = DefaultPtSize
	}
	return newTypeCase(sf, fontsize), nil
}

// NormalizeFontname creates a lookup key from a font name or a font file name:
// surrounding space and file extension are dropped, inner spaces are replaced
// by '-' and everything is lower-cased.
// "Noto Medium.ttf" and "noto-medium" both result in "noto-medium".
func NormalizeFontname(fname string) string {
	if fname = strings.TrimSpace(fname); fname == "" {
		return ""
	}
	fname = filepath.Base(fname)
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".ttf", ".otf", ".ttc":
		fname = fname[:len(fname)-len(filepath.Ext(fname))]
	}
	fname = strings.ReplaceAll(fname, " ", "-")
	fname = strings.ReplaceAll(fname, "_", "-")
	return strings.ToLower(fname)
}

/*
Package export writes coverage rasters to image files.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package export

import (
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/okanimoji/core"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/bmp"
)

// tracer traces with key 'okanimoji.export'.
func tracer() tracing.Trace {
	return tracing.Select("okanimoji.export")
}

// Format is an image file format.
type Format int

// Supported image formats.
const (
	Unknown Format = iota
	PNG
	BMP
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "PNG"
	case BMP:
		return "BMP"
	}
	return "unknown"
}

// FormatFor derives the image format from the extension of a file name.
func FormatFor(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return PNG
	case ".bmp":
		return BMP
	}
	return Unknown
}

// Shipout encodes img in the given format.
func Shipout(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	default:
		return core.Error(core.EINVALID, "unsupported image format")
	}
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot encode %s image", f)
	}
	return nil
}

// SaveFile writes img to a file, in the format given by the file extension
// (.png or .bmp).
func SaveFile(filename string, img image.Image) error {
	f := FormatFor(filename)
	if f == Unknown {
		return core.Error(core.EINVALID, "cannot save image as %s: use .png or .bmp", filepath.Base(filename))
	}
	out, err := os.Create(filename)
	if err != nil {
		return core.WrapError(err, core.EMISSING, "cannot create %s", filename)
	}
	if err = Shipout(out, img, f); err != nil {
		out.Close()
		return err
	}
	if err = out.Close(); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write %s", filename)
	}
	tracer().Infof("saved %d×%d raster as %s to %s", img.Bounds().Dx(), img.Bounds().Dy(), f, filename)
	return nil
}

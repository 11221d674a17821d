package raster

import (
	"errors"
	"image"
	"math"

	"github.com/npillmayer/okanimoji/core"
	"github.com/npillmayer/okanimoji/core/font"
)

// ErrNoGlyphs is the cause of errors for texts which do not produce a single
// glyph, i.e. empty texts or texts consisting of characters unsupported by
// the font.
var ErrNoGlyphs = errors.New("no glyphs to render")

// Face is a font at a given size. Metrics are in pixels with y growing
// downwards. *font.TypeCase implements Face.
type Face interface {
	// Advance returns the advance width for r; ok is false if the face has
	// no glyph for r.
	Advance(r rune) (adv float32, ok bool)
	// Kern returns the kerning between two adjacent characters.
	Kern(r0, r1 rune) float32
	// Metrics returns ascent (> 0) and descent (≤ 0).
	Metrics() (ascent, descent float32)
	// PixelBounds returns the pixel bounds of r set at pen position x,
	// relative to the baseline.
	PixelBounds(r rune, x float32) image.Rectangle
	// DrawGlyph calls plot for every covered pixel of r set at pen position x.
	// Coordinates are local to PixelBounds(r, x).Min, v is in (0, 1].
	DrawGlyph(r rune, x float32, plot func(lx, ly int, v float32))
}

var _ Face = (*font.TypeCase)(nil)

// Glyph is a character positioned on the baseline at pen position X.
type Glyph struct {
	Char rune
	X    float32
}

// Layout positions the glyphs of text on a line, starting at pen position 0.
// It returns the positioned glyphs and the total advance.
func Layout(text string, face Face) ([]Glyph, float32) {
	glyphs := make([]Glyph, 0, len(text))
	var pen, prevAdv float32
	var prev rune
	for _, r := range text {
		adv, ok := face.Advance(r)
		if !ok {
			tracer().Debugf("skipping unsupported character %#U", r)
			continue
		}
		if len(glyphs) > 0 {
			pen += prevAdv + face.Kern(prev, r)
		}
		glyphs = append(glyphs, Glyph{Char: r, X: pen})
		prev, prevAdv = r, adv
	}
	if len(glyphs) == 0 {
		return glyphs, 0
	}
	return glyphs, pen + prevAdv
}

// Rasterize renders text with face into a coverage raster.
// Returns an error wrapping ErrNoGlyphs if no character of text is
// supported by face.
func Rasterize(text string, face Face) (*Coverage, error) {
	if face == nil {
		return nil, core.Error(core.EINVALID, "no font to rasterize with")
	}
	glyphs, total := Layout(text, face)
	if len(glyphs) == 0 {
		return nil, core.WrapError(ErrNoGlyphs, core.ENOGLYPHS, "font has no glyphs for %q", text)
	}
	ascent, descent := face.Metrics()
	w := int(math.Ceil(float64(total)))
	h := int(math.Ceil(float64(ascent - descent)))
	cov := NewCoverage(w, h)
	baseline := int(math.Ceil(float64(ascent)))
	tracer().Debugf("rasterizing %d glyphs into %d×%d pixels, baseline at %d",
		len(glyphs), cov.Width(), cov.Height(), baseline)
	for _, g := range glyphs {
		bounds := face.PixelBounds(g.Char, g.X)
		if bounds.Empty() {
			continue
		}
		ox, oy := bounds.Min.X, baseline+bounds.Min.Y
		face.DrawGlyph(g.Char, g.X, func(lx, ly int, v float32) {
			cov.Set(ox+lx, oy+ly, gray(v))
		})
	}
	return cov, nil
}

// RasterizeFont renders text with a font at a given point size.
func RasterizeFont(text string, sf *font.ScalableFont, ptSize float32) (*Coverage, error) {
	tc, err := sf.PrepareCase(ptSize)
	if err != nil {
		return nil, err
	}
	return Rasterize(text, tc)
}

// gray maps coverage to an 8-bit intensity. The product is rounded to
// float32 first, so that coverage a/255 maps back to a.
func gray(v float32) uint8 {
	g := math.Ceil(float64(v * 255))
	if g > 255 {
		return 255
	} else if g < 0 {
		return 0
	}
	return uint8(g)
}

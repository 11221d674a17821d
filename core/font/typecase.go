package font

import (
	"image"
	"image/draw"
	"math"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// TypeCase is a scalable font at a given point size. All metrics are
// reported in pixels (at 72 DPI), with y growing downwards as in images.
//
// A TypeCase is not safe for concurrent use: it owns an sfnt.Buffer and a
// rasterizer which are re-used between calls.
type TypeCase struct {
	scalableFontParent *ScalableFont
	size               float32
	ppem               fixed.Int26_6
	buf                sfnt.Buffer
	rast               vector.Rasterizer
	mask               image.Alpha
}

func newTypeCase(sf *ScalableFont, size float32) *TypeCase {
	return &TypeCase{
		scalableFontParent: sf,
		size:               size,
		ppem:               fixed.Int26_6(0.5 + size*64),
	}
}

// ScalableFontParent returns the font this typecase has been derived from.
func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.scalableFontParent
}

// PtSize returns the point size of the typecase.
func (tc *TypeCase) PtSize() float32 {
	return tc.size
}

func (tc *TypeCase) glyphIndex(r rune) (sfnt.GlyphIndex, bool) {
	x, err := tc.scalableFontParent.SFNT.GlyphIndex(&tc.buf, r)
	return x, err == nil && x != 0
}

// Supports returns true if the font has a glyph for r.
func (tc *TypeCase) Supports(r rune) bool {
	_, ok := tc.glyphIndex(r)
	return ok
}

// Advance returns the advance width of the glyph for r. If the font has no
// glyph for r, ok is false.
func (tc *TypeCase) Advance(r rune) (adv float32, ok bool) {
	x, ok := tc.glyphIndex(r)
	if !ok {
		return 0, false
	}
	a, err := tc.scalableFontParent.SFNT.GlyphAdvance(&tc.buf, x, tc.ppem, xfont.HintingNone)
	if err != nil {
		tracer().Debugf("no advance for %#U: %v", r, err)
		return 0, false
	}
	return fromFixed(a), true
}

// Kern returns the kerning adjustment between two adjacent characters.
// Pairs without a kerning entry yield 0.
//
// We do not use opentype.Face.Kern, which scales kerning values by the
// units-per-em of the font instead of by the requested size.
func (tc *TypeCase) Kern(r0, r1 rune) float32 {
	x0, ok0 := tc.glyphIndex(r0)
	x1, ok1 := tc.glyphIndex(r1)
	if !ok0 || !ok1 {
		return 0
	}
	k, err := tc.scalableFontParent.SFNT.Kern(&tc.buf, x0, x1, tc.ppem, xfont.HintingNone)
	if err != nil {
		return 0
	}
	return fromFixed(k)
}

// Metrics returns ascent and descent of the typecase. Ascent is positive,
// descent is negative for fonts which reach below the baseline, so
// ascent − descent is the height of a line of text.
func (tc *TypeCase) Metrics() (ascent, descent float32) {
	m, err := tc.scalableFontParent.SFNT.Metrics(&tc.buf, tc.ppem, xfont.HintingNone)
	if err != nil {
		tracer().Errorf("cannot read font metrics: %v", err)
		return 0, 0
	}
	return fromFixed(m.Ascent), -fromFixed(m.Descent)
}

// PixelBounds returns the integer pixel bounds of the glyph for r, set with
// its origin at (x, 0) on the baseline. Min.Y is negative for glyphs rising
// above the baseline. Unsupported characters have empty bounds.
func (tc *TypeCase) PixelBounds(r rune, x float32) image.Rectangle {
	segments, dot, ok := tc.load(r, x)
	if !ok || len(segments) == 0 {
		return image.Rectangle{}
	}
	return pixelRect(segments.Bounds().Add(dot))
}

// DrawGlyph samples the coverage of the glyph for r, set with its origin at
// (x, 0). plot is called for every pixel with non-zero coverage, with
// coordinates local to PixelBounds(r, x).Min and coverage in (0, 1].
func (tc *TypeCase) DrawGlyph(r rune, x float32, plot func(lx, ly int, v float32)) {
	segments, dot, ok := tc.load(r, x)
	if !ok || len(segments) == 0 {
		return
	}
	dr := pixelRect(segments.Bounds().Add(dot))
	w, h := dr.Dx(), dr.Dy()
	if w <= 0 || h <= 0 {
		return // e.g., space characters
	}
	// bias translates from glyph space to rasterizer space, where the glyph's
	// pixel bounds start at (0,0)
	biasX := dot.X - fixed.Int26_6(dr.Min.X<<6)
	biasY := dot.Y - fixed.Int26_6(dr.Min.Y<<6)
	if cap(tc.mask.Pix) < w*h {
		tc.mask.Pix = make([]uint8, 2*w*h)
	}
	tc.mask.Pix = tc.mask.Pix[:w*h]
	for i := range tc.mask.Pix {
		tc.mask.Pix[i] = 0
	}
	tc.mask.Stride = w
	tc.mask.Rect = image.Rect(0, 0, w, h)
	tc.rast.Reset(w, h)
	tc.rast.DrawOp = draw.Src
	pt := func(p fixed.Point26_6) (float32, float32) {
		return fromFixed(p.X + biasX), fromFixed(p.Y + biasY)
	}
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			tc.rast.MoveTo(pt(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			tc.rast.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			tc.rast.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			dx, dy := pt(seg.Args[2])
			tc.rast.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	tc.rast.Draw(&tc.mask, tc.mask.Bounds(), image.Opaque, image.Point{})
	for ly := 0; ly < h; ly++ {
		row := tc.mask.Pix[ly*w : (ly+1)*w]
		for lx, a := range row {
			if a > 0 {
				plot(lx, ly, float32(a)/255)
			}
		}
	}
}

// load returns the outline segments of the glyph for r, together with the
// sub-pixel dot where it is set. Segments become invalid with the next call
// using tc.buf.
func (tc *TypeCase) load(r rune, x float32) (sfnt.Segments, fixed.Point26_6, bool) {
	gid, ok := tc.glyphIndex(r)
	if !ok {
		return nil, fixed.Point26_6{}, false
	}
	segments, err := tc.scalableFontParent.SFNT.LoadGlyph(&tc.buf, gid, tc.ppem, nil)
	if err != nil {
		tracer().Errorf("cannot load glyph for %#U: %v", r, err)
		return nil, fixed.Point26_6{}, false
	}
	dot := fixed.Point26_6{X: toFixed(x)}
	return segments, dot, true
}

func pixelRect(b fixed.Rectangle26_6) image.Rectangle {
	return image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
}

func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(v) * 64))
}

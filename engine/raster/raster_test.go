package raster

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/npillmayer/okanimoji/core"
	"github.com/npillmayer/okanimoji/core/font"
	"github.com/npillmayer/okanimoji/engine/quantize"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

// boxFace draws every supported character as a solid box from the ascent
// line down to the baseline.
type boxFace struct {
	advance map[rune]float32
	kern    map[[2]rune]float32
	ink     map[rune]float32 // coverage per character, default 1
	depth   map[rune]int     // pixels below the baseline
	ascent  float32
	descent float32
}

func (f boxFace) Advance(r rune) (float32, bool) {
	a, ok := f.advance[r]
	return a, ok
}

func (f boxFace) Kern(r0, r1 rune) float32 {
	return f.kern[[2]rune{r0, r1}]
}

func (f boxFace) Metrics() (float32, float32) {
	return f.ascent, f.descent
}

func (f boxFace) PixelBounds(r rune, x float32) image.Rectangle {
	a, ok := f.advance[r]
	if !ok {
		return image.Rectangle{}
	}
	x0 := int(math.Floor(float64(x)))
	return image.Rect(x0, -int(f.ascent), x0+int(a), f.depth[r])
}

func (f boxFace) DrawGlyph(r rune, x float32, plot func(lx, ly int, v float32)) {
	b := f.PixelBounds(r, x)
	v, ok := f.ink[r]
	if !ok {
		v = 1
	}
	for ly := 0; ly < b.Dy(); ly++ {
		for lx := 0; lx < b.Dx(); lx++ {
			plot(lx, ly, v)
		}
	}
}

func newBoxFace() boxFace {
	return boxFace{
		advance: map[rune]float32{'A': 10, 'V': 12, 'x': 10, 'y': 10, 'g': 6},
		kern: map[[2]rune]float32{
			{'A', 'V'}: -2,
			{'V', 'A'}: -3,
			{'x', 'y'}: -5,
		},
		ink:     map[rune]float32{'y': 0.5},
		depth:   map[rune]int{'g': 20},
		ascent:  8,
		descent: -2,
	}
}

func TestLayoutKernsEveryPair(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "okanimoji.raster")
	defer teardown()
	//
	glyphs, total := Layout("AVA", newBoxFace())
	require.Len(t, glyphs, 3)
	assert.Equal(t, float32(0), glyphs[0].X)
	assert.Equal(t, float32(8), glyphs[1].X)
	assert.Equal(t, float32(17), glyphs[2].X)
	assert.Equal(t, float32(27), total)
}

func TestRasterizeDimensions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "okanimoji.raster")
	defer teardown()
	//
	cov, err := Rasterize("AVA", newBoxFace())
	require.NoError(t, err)
	assert.Equal(t, 27, cov.Width())
	assert.Equal(t, 10, cov.Height())
	assert.Equal(t, uint8(255), cov.Intensity(0, 0))
	assert.Equal(t, uint8(255), cov.Intensity(26, 7))
	assert.Equal(t, uint8(0), cov.Intensity(5, 8), "below the baseline there is no ink")
	assert.Equal(t, uint8(0), cov.Intensity(-1, 0))
	assert.Equal(t, uint8(0), cov.Intensity(27, 0))
	assert.Equal(t, uint8(255), cov.Image().RGBAAt(3, 3).A)
	assert.Equal(t, uint8(0), cov.Image().RGBAAt(3, 9).A)
}

func TestRasterizeSkipsUnsupported(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "okanimoji.raster")
	defer teardown()
	//
	cov1, err := Rasterize("A日V", newBoxFace())
	require.NoError(t, err)
	cov2, err := Rasterize("AV", newBoxFace())
	require.NoError(t, err)
	assert.Equal(t, cov2.Image().Pix, cov1.Image().Pix, "unsupported characters should be ignored")
	assert.Equal(t, 20, cov1.Width())
}

func TestRasterizeNoGlyphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "okanimoji.raster")
	defer teardown()
	//
	for _, text := range []string{"", "日本語"} {
		cov, err := Rasterize(text, newBoxFace())
		assert.Nil(t, cov)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNoGlyphs))
		assert.Equal(t, core.ENOGLYPHS, core.Code(err))
	}
	_, err := Rasterize("A", nil)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestOverlappingGlyphsKeepMaximum(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "okanimoji.raster")
	defer teardown()
	//
	cov, err := Rasterize("xy", newBoxFace())
	require.NoError(t, err)
	assert.Equal(t, 15, cov.Width())
	assert.Equal(t, uint8(255), cov.Intensity(7, 2), "overlap keeps the darker sample")
	assert.Equal(t, uint8(128), cov.Intensity(12, 2), "coverage 0.5 should map to ceil(127.5)")
}

func TestSamplesOutsideAreClipped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "okanimoji.raster")
	defer teardown()
	//
	cov, err := Rasterize("g", newBoxFace())
	require.NoError(t, err)
	assert.Equal(t, 6, cov.Width())
	assert.Equal(t, 10, cov.Height())
	assert.Equal(t, uint8(255), cov.Intensity(5, 9))
}

func TestGrayKeepsAlphaLevels(t *testing.T) {
	for a := 0; a <= 255; a++ {
		assert.Equal(t, uint8(a), gray(float32(a)/255), "coverage %d/255", a)
	}
	assert.Equal(t, uint8(255), gray(1.5))
	assert.Equal(t, uint8(0), gray(-0.5))
}

func TestRasterizedAlphaIsExact(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "okanimoji.raster")
	defer teardown()
	//
	face := newBoxFace()
	for a := 1; a <= 255; a++ {
		face.ink = map[rune]float32{'A': float32(a) / 255}
		cov, err := Rasterize("A", face)
		require.NoError(t, err)
		require.Equal(t, uint8(a), cov.Intensity(3, 3), "coverage %d/255", a)
	}
}

func TestThresholdLevelStaysBlank(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "okanimoji.raster")
	defer teardown()
	//
	one := quantize.Size{Cols: 1, Rows: 1}
	mask := func(a int, p quantize.Profile) uint {
		face := newBoxFace()
		face.ink = map[rune]float32{'A': float32(a) / 255}
		cov, err := Rasterize("A", face)
		require.NoError(t, err)
		return quantize.NewSampler(cov, one, p).Mask(0, 0)
	}
	assert.Equal(t, uint(0), mask(200, quantize.Block), "alpha 200 is not above the block threshold")
	assert.Equal(t, uint(0xF), mask(201, quantize.Block))
	assert.Equal(t, uint(0), mask(170, quantize.Braille), "alpha 170 is not above the braille threshold")
	assert.Equal(t, uint(0xFF), mask(171, quantize.Braille))
}

func TestCoverageSet(t *testing.T) {
	cov := NewCoverage(0, -3)
	assert.Equal(t, 1, cov.Width())
	assert.Equal(t, 1, cov.Height())
	cov.Set(0, 0, 100)
	cov.Set(0, 0, 50)
	cov.Set(4, 4, 255)
	assert.Equal(t, uint8(100), cov.Intensity(0, 0))
	assert.Equal(t, uint8(100), cov.Image().RGBAAt(0, 0).G)
}

func TestRasterizeGoFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "okanimoji.raster")
	defer teardown()
	//
	sf, err := font.ParseOpenTypeFont(goregular.TTF)
	require.NoError(t, err)
	cov, err := RasterizeFont("Hi", sf, 64)
	require.NoError(t, err)
	tc, err := sf.PrepareCase(64)
	require.NoError(t, err)
	ascent, descent := tc.Metrics()
	_, total := Layout("Hi", tc)
	assert.Equal(t, int(math.Ceil(float64(total))), cov.Width())
	assert.Equal(t, int(math.Ceil(float64(ascent-descent))), cov.Height())
	ink := 0
	for y := 0; y < cov.Height(); y++ {
		for x := 0; x < cov.Width(); x++ {
			if cov.Intensity(x, y) > 200 {
				ink++
			}
		}
	}
	assert.Greater(t, ink, 100, "'Hi' at 64pt should have plenty of dark pixels")
	// the stem of 'H' is left of the middle of its advance and crosses the x-height
	h, _ := tc.Advance('H')
	midY := int(math.Ceil(float64(ascent))) - 20
	dark := false
	for x := 0; x < int(h/2); x++ {
		if cov.Intensity(x, midY) > 250 {
			dark = true
		}
	}
	assert.True(t, dark)
}

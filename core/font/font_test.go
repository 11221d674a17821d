package font

import (
	"errors"
	"image"
	"testing"

	"github.com/npillmayer/okanimoji/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestParseGoFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "okanimoji.fonts")
	defer teardown()
	//
	f, err := ParseOpenTypeFont(goregular.TTF)
	require.NoError(t, err)
	assert.Equal(t, "Go Regular", f.Fontname)
}

func TestParseInvalidFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "okanimoji.fonts")
	defer teardown()
	//
	_, err := ParseOpenTypeFont(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFontParse))
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = ParseOpenTypeFont([]byte("this is not a font, just some text"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFontParse))
	_, err = ParseOpenTypeFont([]byte("ttcf and then garbage"))
	assert.True(t, errors.Is(err, ErrFontParse), "broken collections are parse errors as well")
}

func TestLoadMissingFontFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "okanimoji.fonts")
	defer teardown()
	//
	_, err := LoadOpenTypeFont("testdata/does-not-exist.ttf")
	require.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestTypeCaseMetrics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "okanimoji.fonts")
	defer teardown()
	//
	tc := goRegularCase(t, 64)
	assert.Equal(t, float32(64), tc.PtSize())
	ascent, descent := tc.Metrics()
	t.Logf("ascent = %.2f, descent = %.2f", ascent, descent)
	assert.Greater(t, ascent, float32(0))
	assert.Less(t, descent, float32(0))
	adv, ok := tc.Advance('A')
	assert.True(t, ok)
	assert.Greater(t, adv, float32(0))
	_, ok = tc.Advance('日')
	assert.False(t, ok, "Go Regular has no CJK glyphs")
	assert.False(t, tc.Supports('日'))
	assert.Equal(t, float32(0), tc.Kern('日', 'A'))
}

func TestTypeCaseSizeClamping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "okanimoji.fonts")
	defer teardown()
	//
	tc := goRegularCase(t, 1)
	assert.Equal(t, DefaultPtSize, tc.PtSize())
	var sf *ScalableFont
	_, err := sf.PrepareCase(12)
	assert.Error(t, err)
}

func TestDrawGlyphStaysInBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "okanimoji.fonts")
	defer teardown()
	//
	tc := goRegularCase(t, 32)
	bounds := tc.PixelBounds('g', 10.25)
	t.Logf("bounds of 'g' = %v", bounds)
	require.False(t, bounds.Empty())
	assert.Less(t, bounds.Min.Y, 0, "'g' rises above the baseline")
	assert.Greater(t, bounds.Max.Y, 0, "'g' descends below the baseline")
	count := 0
	tc.DrawGlyph('g', 10.25, func(lx, ly int, v float32) {
		count++
		p := image.Pt(lx, ly).Add(bounds.Min)
		if !p.In(bounds) {
			t.Errorf("sample %v outside of glyph bounds %v", p, bounds)
		}
		if v <= 0 || v > 1 {
			t.Errorf("coverage %f out of range", v)
		}
	})
	assert.Greater(t, count, 0)
	assert.True(t, tc.PixelBounds(' ', 0).Empty(), "space has no ink")
	tc.DrawGlyph(' ', 0, func(lx, ly int, v float32) {
		t.Errorf("space should not produce coverage")
	})
}

func TestNormalizeFontname(t *testing.T) {
	for in, out := range map[string]string{
		"noto-medium":                "noto-medium",
		" Noto Medium.ttf ":          "noto-medium",
		"assets/fonts/Migu_Bold.TTF": "migu-bold",
		"osaka.ttc":                  "osaka",
		"version.1.2":                "version.1.2",
		"":                           "",
	} {
		assert.Equal(t, out, NormalizeFontname(in), "normalizing %q", in)
	}
}

func goRegularCase(t *testing.T, size float32) *TypeCase {
	f, err := ParseOpenTypeFont(goregular.TTF)
	require.NoError(t, err)
	tc, err := f.PrepareCase(size)
	require.NoError(t, err)
	return tc
}

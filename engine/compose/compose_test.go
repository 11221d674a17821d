package compose

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/okanimoji/core"
	"github.com/npillmayer/okanimoji/engine/quantize"
	"github.com/npillmayer/okanimoji/engine/raster"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int) *raster.Coverage {
	cov := raster.NewCoverage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cov.Set(x, y, 255)
		}
	}
	return cov
}

func grid(lines ...string) quantize.Grid {
	g := make(quantize.Grid, len(lines))
	for i, l := range lines {
		g[i] = []rune(l)
	}
	return g
}

func TestCompositeDimensions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "okanimoji.compose")
	defer teardown()
	//
	art, err := Composite(solid(100, 50), 40, 10, 2)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(art, "\n"))
	lines := strings.Split(strings.TrimSuffix(art, "\n"), "\n")
	require.Len(t, lines, 7)
	for _, l := range lines {
		assert.Equal(t, 22, utf8.RuneCountInString(l))
	}
	assert.Equal(t, strings.Repeat("█", 20)+"  ", lines[0])
	assert.Equal(t, strings.Repeat("█", 20)+"⣿⣿", lines[2])
	assert.Equal(t, "  "+strings.Repeat("⣿", 20), lines[6])
}

func TestCompositeWithMargin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "okanimoji.compose")
	defer teardown()
	//
	c, err := New(30, 50, 2, true)
	require.NoError(t, err)
	g := c.Render(solid(100, 50))
	assert.Equal(t, 30-2-MarginCols+2, g.Cols())
	c, err = New(8, 10, 2, true)
	require.NoError(t, err)
	assert.Equal(t, 1+2, c.Render(solid(100, 50)).Cols())
	_, err = New(7, 10, 2, true)
	assert.Equal(t, core.EINVALID, core.Code(err), "margin and shadow leave no column")
}

func TestCompositeInvalid(t *testing.T) {
	_, err := Composite(solid(10, 10), 0, 10, 2)
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = Composite(solid(10, 10), 40, 10, -1)
	assert.Equal(t, core.EINVALID, core.Code(err))
	for _, w := range []int{1, 2} {
		_, err = Composite(solid(100, 50), w, 10, 2)
		assert.Equal(t, core.EINVALID, core.Code(err), "width %d cannot hold a shadow of 2", w)
	}
	_, err = Composite(solid(10, 10), 40, -1, 2)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestCompositeFitsWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "okanimoji.compose")
	defer teardown()
	//
	for w := 3; w <= 12; w++ {
		art, err := Composite(solid(100, 50), w, 10, 2)
		require.NoError(t, err)
		for _, l := range strings.Split(strings.TrimSuffix(art, "\n"), "\n") {
			assert.LessOrEqual(t, utf8.RuneCountInString(l), w)
		}
	}
}

func TestCompositeZeroHeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "okanimoji.compose")
	defer teardown()
	//
	c, err := New(40, 0, 2, false)
	require.NoError(t, err)
	g := c.Render(solid(100, 50))
	assert.Equal(t, 1+2, g.Rows(), "a single front row plus the shadow offset")
	assert.Equal(t, 2+2, g.Cols(), "a 2:1 raster is two cells wide at one row")
}

func TestMergeBlankShadowPadsFront(t *testing.T) {
	front := grid(
		"▛▀▜",
		"▙▄▟",
	)
	shadow := quantize.NewGrid(quantize.Size{Cols: 3, Rows: 2})
	want := grid(
		"▛▀▜ ",
		"▙▄▟ ",
		"    ",
	)
	if diff := cmp.Diff(want, Merge(front, shadow, 1)); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeFrontWins(t *testing.T) {
	front := grid(
		"█ ",
		" ▗",
	)
	shadow := grid(
		"⠁⠂",
		"⠄⡀",
	)
	want := grid(
		"█⠂",
		"⠄▗",
	)
	if diff := cmp.Diff(want, Merge(front, shadow, 0)); diff != "" {
		t.Errorf("merge with offset 0 mismatch (-want +got):\n%s", diff)
	}
	want = grid(
		"█  ",
		" ▗⠂",
		" ⠄⡀",
	)
	if diff := cmp.Diff(want, Merge(front, shadow, 1)); diff != "" {
		t.Errorf("merge with offset 1 mismatch (-want +got):\n%s", diff)
	}
}

func TestLayersShareSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "okanimoji.compose")
	defer teardown()
	//
	c, err := New(80, 10, 3, false)
	require.NoError(t, err)
	front, shadow := c.Layers(raster.NewCoverage(160, 40))
	assert.Equal(t, front.Rows(), shadow.Rows())
	assert.Equal(t, front.Cols(), shadow.Cols())
	assert.True(t, front.IsBlank())
	assert.True(t, shadow.IsBlank())
}

func TestCompositeIsDeterministic(t *testing.T) {
	cov := raster.NewCoverage(64, 32)
	for i := 0; i < 32; i++ {
		cov.Set(i*2, i, 255)
		cov.Set(i*2+1, i, 180)
	}
	a1, err := Composite(cov, 30, 8, 1)
	require.NoError(t, err)
	a2, err := Composite(cov, 30, 8, 1)
	require.NoError(t, err)
	assert.Equal(t, a1, a2)
}

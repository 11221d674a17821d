package compose

import (
	"github.com/npillmayer/okanimoji/core"
	"github.com/npillmayer/okanimoji/engine/quantize"
)

// MarginCols is the number of columns reserved at the right in margin mode.
const MarginCols = 5

// Compositor merges a block layer and an offset braille layer.
type Compositor struct {
	Sizing       quantize.Sizing  // sizing of both layers
	ShadowOffset int              // offset of the braille layer, in cells
	Front        quantize.Profile // opaque layer, Block by default
	Shadow       quantize.Profile // shadow layer, Braille by default
}

// New creates a compositor for art at most maxWidth columns wide (including
// the shadow) and of a preferred height of minHeight rows. If margin is set,
// MarginCols columns are kept free in addition. A minHeight of 0 yields art
// of a single row. New fails if no column is left for the front layer.
func New(maxWidth, minHeight, shadowOffset int, margin bool) (*Compositor, error) {
	if maxWidth < 1 || minHeight < 0 || shadowOffset < 0 {
		return nil, core.Error(core.EINVALID,
			"invalid art dimensions: width=%d, height=%d, shadow=%d", maxWidth, minHeight, shadowOffset)
	}
	w := maxWidth - shadowOffset
	if margin {
		w -= MarginCols
	}
	if w < 1 {
		return nil, core.Error(core.EINVALID,
			"width %d leaves no room for art with shadow offset %d (margin=%v)", maxWidth, shadowOffset, margin)
	}
	return &Compositor{
		Sizing:       quantize.HeightDriven{MinRows: minHeight, MaxCols: w},
		ShadowOffset: shadowOffset,
		Front:        quantize.Block,
		Shadow:       quantize.Braille,
	}, nil
}

// Layers quantizes src into the block and braille layers. Both layers have
// the same size.
func (c *Compositor) Layers(src quantize.Source) (front, shadow quantize.Grid) {
	size := c.Sizing.Resolve(src.Width(), src.Height())
	tracer().Debugf("compositing layers of size %s, shadow offset %d", size, c.ShadowOffset)
	front = quantize.Quantize(src, size, c.Front)
	shadow = quantize.Quantize(src, size, c.Shadow)
	return
}

// Render produces the merged grid for src.
func (c *Compositor) Render(src quantize.Source) quantize.Grid {
	front, shadow := c.Layers(src)
	return Merge(front, shadow, c.ShadowOffset)
}

// Merge overlays front over shadow, which is shifted by off rows and columns.
// The result has the size of front, enlarged by off in both directions.
// Front characters take precedence unless they are spaces.
func Merge(front, shadow quantize.Grid, off int) quantize.Grid {
	if off < 0 {
		off = 0
	}
	rows, cols := front.Rows()+off, front.Cols()+off
	merged := make(quantize.Grid, rows)
	for row := range merged {
		merged[row] = make([]rune, cols)
		for col := range merged[row] {
			c := front.At(row, col)
			if c == ' ' {
				c = shadow.At(row-off, col-off)
			}
			merged[row][col] = c
		}
	}
	return merged
}

// Composite renders src as art of at most maxWidth columns, with a braille
// shadow offset by shadowOffset cells. The result has a newline after every
// row.
func Composite(src quantize.Source, maxWidth, minHeight, shadowOffset int) (string, error) {
	c, err := New(maxWidth, minHeight, shadowOffset, false)
	if err != nil {
		return "", err
	}
	return c.Render(src).String(), nil
}

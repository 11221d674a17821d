package quantize

import (
	"fmt"
	"math"
)

// CellHeightFactor is the ratio of height to width of a terminal cell.
const CellHeightFactor = 2

// Size is the size of a character grid.
type Size struct {
	Cols, Rows int
}

func (sz Size) String() string {
	return fmt.Sprintf("%d×%d", sz.Cols, sz.Rows)
}

// Sizing derives the size of a character grid from the size of a raster,
// preserving its aspect ratio.
type Sizing interface {
	Resolve(w, h int) Size
}

// WidthDriven sizing starts from a column count. If MaxRows is positive and
// the derived row count exceeds it, rows are clamped and the column count is
// recomputed from the clamped row count.
type WidthDriven struct {
	Cols    int
	MaxRows int
}

// Resolve is part of interface Sizing.
func (s WidthDriven) Resolve(w, h int) Size {
	aspect := aspectRatio(w, h)
	cols := atLeast1(s.Cols)
	rows := rowsFor(cols, aspect)
	if s.MaxRows > 0 && rows > s.MaxRows {
		rows = s.MaxRows
		cols = minInt(cols, ceil(float64(rows)*aspect*CellHeightFactor))
	}
	return Size{Cols: atLeast1(cols), Rows: atLeast1(rows)}
}

// HeightDriven sizing starts from a desired minimum row count and limits the
// column count to MaxCols (if positive). Columns are ceil(aspect * MinRows),
// rows are derived from columns.
type HeightDriven struct {
	MinRows int
	MaxCols int
}

// Resolve is part of interface Sizing.
func (s HeightDriven) Resolve(w, h int) Size {
	aspect := aspectRatio(w, h)
	cols := ceil(aspect * float64(atLeast1(s.MinRows)))
	if s.MaxCols > 0 {
		cols = minInt(cols, s.MaxCols)
	}
	cols = atLeast1(cols)
	return Size{Cols: cols, Rows: atLeast1(rowsFor(cols, aspect))}
}

// Fixed sizing ignores the raster's aspect ratio.
type Fixed Size

// Resolve is part of interface Sizing.
func (s Fixed) Resolve(w, h int) Size {
	return Size{Cols: atLeast1(s.Cols), Rows: atLeast1(s.Rows)}
}

func rowsFor(cols int, aspect float64) int {
	return ceil(float64(cols) / aspect / CellHeightFactor)
}

func aspectRatio(w, h int) float64 {
	return float64(atLeast1(w)) / float64(atLeast1(h))
}

func ceil(x float64) int {
	return int(math.Ceil(x))
}

func atLeast1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

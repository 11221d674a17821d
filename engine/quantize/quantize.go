package quantize

import (
	"math"
	"strings"
)

// Source is a gray-scale raster. Intensity must return 0 for positions
// outside of [0, Width) × [0, Height).
type Source interface {
	Width() int
	Height() int
	Intensity(x, y int) uint8
}

// Grid is a rectangular grid of characters, indexed [row][col].
// A space denotes an empty cell.
type Grid [][]rune

// NewGrid creates a grid of spaces.
func NewGrid(size Size) Grid {
	g := make(Grid, size.Rows)
	for r := range g {
		g[r] = []rune(strings.Repeat(" ", size.Cols))
	}
	return g
}

// Rows returns the number of rows of the grid.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns of the grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// At returns the character at (row, col), or a space if the position is
// outside the grid.
func (g Grid) At(row, col int) rune {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return ' '
	}
	return g[row][col]
}

// IsBlank is true if every cell of the grid is a space.
func (g Grid) IsBlank() bool {
	for _, row := range g {
		for _, c := range row {
			if c != ' ' {
				return false
			}
		}
	}
	return true
}

// String renders the grid with a newline after every row, including the last.
func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Sampler computes the masks of the cells of a grid of a given size over a
// source raster.
type Sampler struct {
	src            Source
	profile        Profile
	scaleX, scaleY float64
}

// NewSampler prepares sampling src into a grid of the given size.
func NewSampler(src Source, size Size, p Profile) *Sampler {
	size = Size{Cols: atLeast1(size.Cols), Rows: atLeast1(size.Rows)}
	return &Sampler{
		src:     src,
		profile: p,
		scaleX:  float64(src.Width()) / float64(size.Cols*p.CellCols),
		scaleY:  float64(src.Height()) / float64(size.Rows*p.CellRows),
	}
}

// Mask returns the bit mask of the cell at (row, col).
func (s *Sampler) Mask(row, col int) uint {
	var mask uint
	p := s.profile
	for i := 0; i < p.CellRows; i++ {
		y := int(math.Floor(float64(row*p.CellRows+i) * s.scaleY))
		for j := 0; j < p.CellCols; j++ {
			x := int(math.Floor(float64(col*p.CellCols+j) * s.scaleX))
			if x < 0 || x >= s.src.Width() || y < 0 || y >= s.src.Height() {
				continue
			}
			if s.src.Intensity(x, y) > p.Threshold {
				mask |= 1 << (i*p.CellCols + j)
			}
		}
	}
	return mask
}

// Quantize samples src into a grid of the given size, using profile p.
func Quantize(src Source, size Size, p Profile) Grid {
	size = Size{Cols: atLeast1(size.Cols), Rows: atLeast1(size.Rows)}
	sampler := NewSampler(src, size, p)
	grid := make(Grid, size.Rows)
	for row := range grid {
		grid[row] = make([]rune, size.Cols)
		for col := range grid[row] {
			grid[row][col] = p.Table[sampler.Mask(row, col)]
		}
	}
	tracer().Debugf("quantized %d×%d raster into %s grid with profile %s",
		src.Width(), src.Height(), size, p)
	return grid
}

// QuantizeTo resolves the grid size with sizing and samples src.
func QuantizeTo(src Source, sizing Sizing, p Profile) Grid {
	return Quantize(src, sizing.Resolve(src.Width(), src.Height()), p)
}

package quantize

import "fmt"

// Profile fixes the sub-cell sampling shape, the binarization threshold and
// the character table of a quantization.
type Profile struct {
	Name      string
	CellRows  int    // sub-cell rows per output cell
	CellCols  int    // sub-cell columns per output cell
	Threshold uint8  // sub-cells with intensity > Threshold are 'on'
	Table     []rune // len(Table) == 1 << (CellRows*CellCols)
}

// Block renders quadrant block characters. Blocks are opaque and coarse,
// hence the high threshold.
var Block = Profile{
	Name:      "block",
	CellRows:  2,
	CellCols:  2,
	Threshold: 200,
	Table:     BlockTable[:],
}

// Braille renders braille patterns with 8 dots per cell.
var Braille = Profile{
	Name:      "braille",
	CellRows:  4,
	CellCols:  2,
	Threshold: 170,
	Table:     BrailleTable[:],
}

// WithThreshold returns a copy of the profile with a different threshold.
func (p Profile) WithThreshold(t uint8) Profile {
	p.Threshold = t
	return p
}

func (p Profile) String() string {
	return fmt.Sprintf("%s(%d×%d>%d)", p.Name, p.CellRows, p.CellCols, p.Threshold)
}

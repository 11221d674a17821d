package quantize

// BlockTable maps a 2×2 mask to a quadrant block character.
var BlockTable = [16]rune{
	' ', '▘', '▝', '▀',
	'▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜',
	'▄', '▙', '▟', '█',
}

// BrailleTable maps a 4×2 mask to a braille pattern. Mask 0 maps to a space
// instead of the blank braille pattern U+2800.
var BrailleTable = brailleTable()

// brailleDots maps sub-cell (i, j) of a 4×2 cell to the bit of its dot in
// the braille pattern block, which numbers dots 1-2-3-7 down the left column
// and 4-5-6-8 down the right one.
var brailleDots = [4][2]uint{
	{0, 3},
	{1, 4},
	{2, 5},
	{6, 7},
}

func brailleTable() (table [256]rune) {
	for mask := range table {
		var dots rune
		for i := 0; i < 4; i++ {
			for j := 0; j < 2; j++ {
				if mask&(1<<(i*2+j)) != 0 {
					dots |= 1 << brailleDots[i][j]
				}
			}
		}
		table[mask] = 0x2800 + dots
	}
	table[0] = ' '
	return
}

/*
Package quantize re-encodes a gray-scale raster as a grid of Unicode
characters.

Every output cell covers a small block of sub-cells (2×2 for block mosaic
characters, 4×2 for braille patterns). Each sub-cell samples one pixel of the
source raster and contributes a bit if the pixel's intensity exceeds the
profile's threshold. Bit i*cellCols+j corresponds to sub-cell row i and
column j, counting top-to-bottom and left-to-right. The resulting mask is an
index into the profile's character table.

Terminal cells are roughly twice as high as they are wide. Output sizes are
therefore derived from the source's aspect ratio with a cell height factor
of 2 (see Sizing).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package quantize

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'okanimoji.quantize'.
func tracer() tracing.Trace {
	return tracing.Select("okanimoji.quantize")
}

/*
Package raster lays out a line of text and samples the glyph outlines into
a gray-scale coverage raster.

Glyphs are positioned left to right on a common baseline. The pen advances by
the advance width of each glyph, adjusted by the kerning of every pair of
consecutive glyphs. Characters the font has no glyph for are skipped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package raster

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'okanimoji.raster'.
func tracer() tracing.Trace {
	return tracing.Select("okanimoji.raster")
}

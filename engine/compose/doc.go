/*
Package compose renders a coverage raster as terminal art with a shadow.

A raster is quantized twice, into a coarse layer of block characters and a
fine layer of braille patterns. The braille layer is shifted right and down
by the shadow offset and shows through wherever the block layer is empty.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package compose

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'okanimoji.compose'.
func tracer() tracing.Trace {
	return tracing.Select("okanimoji.compose")
}

/*
Package pipeline renders text to terminal art, from font name to string.

A Renderer normalizes its input to NFC, fetches a type case from a font
registry, rasterizes the text and composites the raster.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pipeline

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'okanimoji.pipeline'.
func tracer() tracing.Trace {
	return tracing.Select("okanimoji.pipeline")
}

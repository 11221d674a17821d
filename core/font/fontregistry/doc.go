/*
Package fontregistry manages a registry for loaded fonts.

Fonts are looked up by normalized name. A registry first consults its own
cache of parsed fonts and then asks a catalog (see package resources) for the
bytes of a font file. Parsed fonts are immutable and shared; type cases are
not safe for concurrent use, so every request for a type case is served with
a fresh one.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'okanimoji.fonts'
func tracer() tracing.Trace {
	return tracing.Select("okanimoji.fonts")
}

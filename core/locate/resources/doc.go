/*
Package resources resolves font resources for an application.

Fonts are located by name through a Catalog. Different strategies are
available:

   DirCatalog        // scan a font directory, match file stems to names
   ManifestCatalog   // look up names in the [fonts] table of a TOML manifest
   SystemCatalog     // search platform font directories
   PackagedCatalog   // the Go font family, compiled into the binary

Catalogs may be chained, the first catalog knowing a name wins. All
catalogs answer synchronously; a name no catalog knows results in an error
wrapping ErrFontNotFound, carrying code core.EMISSING.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'okanimoji.resources'.
func tracer() tracing.Trace {
	return tracing.Select("okanimoji.resources")
}

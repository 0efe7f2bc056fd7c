/*
Package fontcatalog manages a catalog of loaded stroke fonts.

A catalog holds two independent kinds of font tables behind one lookup
interface: compact (engraving-style) tables, bundled with this module, and
outline (SVG-font style) tables, which may be registered at runtime from
raw SVG sources. Fonts are append-only: registration never removes or
mutates entries, and all catalog access is guarded for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontcatalog

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'hershey.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("hershey.fonts")
}

/*
Package font is the data model for stroke fonts.

A stroke font is a collection of glyphs which carry vector path data to be
traced with a pen, rather than outlines to be filled. Two structurally
different table formats are unified behind one glyph-lookup contract:

▪︎ Compact fonts: the legacy engraving format. Glyphs live in an array
indexed by ASCII code point, offset by the table's zero point '!'. Path
data is already in canonical form.

▪︎ Outline fonts: SVG-font style tables, keyed by unicode scalar, with
explicit per-glyph metadata (name, advance width, path data).

Fonts are immutable after construction. Glyph lookup is pure: the same
(font, character) pair always yields the same glyph record.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package font

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'hershey.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("hershey.fonts")
}

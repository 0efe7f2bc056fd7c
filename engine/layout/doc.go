/*
Package layout typesets text with stroke fonts.

The layout engine walks a text string, resolves each character to a glyph
of the selected font, and accumulates pen offsets. It has two entry
points sharing one resolution core:

▪︎ RenderGlyphs emits a flat, ordered list of glyph-placement records,
without any spacing or offset math, for downstream custom renderers.

▪︎ RenderSVG performs full layout — per-character spacing, inter-word
gaps, optional line wrapping, per-line and block centering, and
right-to-left placement — and emits an SVG fragment.

Layout state is transient: every render call starts from a fresh pen and
shares nothing with other calls.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'hershey.layout'.
func tracer() tracing.Trace {
	return tracing.Select("hershey.layout")
}

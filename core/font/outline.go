package font

import (
	"github.com/npillmayer/hershey/core/option"
)

// OutlineGlyph is one entry of an outline (SVG-font style) glyph table.
// The advance width is optional; width-less glyphs inherit the table's
// default advance.
type OutlineGlyph struct {
	Name    string
	Advance option.Float64T
	Path    string
}

type outlineTable struct {
	glyphs map[rune]OutlineGlyph
	deflt  option.Float64T
}

var _ GlyphSource = outlineTable{}

// NewOutlineFont creates a font from a unicode-keyed glyph table.
// The space character is expected to be present as a regular (width-only)
// entry, so that word spacing works by advance.
func NewOutlineFont(id string, md Metadata, glyphs map[rune]OutlineGlyph) *Font {
	return NewFont(id, Outline, md, outlineTable{
		glyphs: glyphs,
		deflt:  md.DefaultAdvance,
	})
}

// Glyph looks up r by its exact unicode value. A glyph without a declared
// width in a table without a default advance cannot be resolved.
func (t outlineTable) Glyph(r rune) (Glyph, bool) {
	g, ok := t.glyphs[r]
	if !ok {
		return Glyph{}, false
	}
	adv := g.Advance
	if adv.IsNone() {
		adv = t.deflt
	}
	if adv.IsNone() {
		tracer().Errorf("glyph %#U has no advance width and font declares no default", r)
		return Glyph{}, false
	}
	name := g.Name
	if name == "" {
		name = string(r)
	}
	return Glyph{
		Rune:    r,
		Name:    name,
		Advance: adv.Unwrap(),
		Path:    g.Path,
	}, true
}

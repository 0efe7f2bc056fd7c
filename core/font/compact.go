package font

import (
	"strconv"
	"strings"

	"github.com/npillmayer/hershey/core/option"
)

// Properties of the compact (engraving) format. Glyph coordinates occupy a
// fixed design box; the default advance is the customary inter-word gap in
// those units.
const (
	CompactGlyphHeight   = 21.0
	CompactSpaceAdvance  = 16.0
	compactTableZeroRune = '!' // first entry of a compact table
)

// CompactGlyph is one entry of a compact glyph table, as found in the
// bundled JSON catalogs. The advance width is kept in its stored string
// form ("o") and parsed at lookup time.
type CompactGlyph struct {
	Path   string `json:"d"`
	Offset string `json:"o"`
}

type compactTable struct {
	chars []CompactGlyph
}

var _ GlyphSource = compactTable{}

// NewCompactFont creates a font from a compact glyph table. The table is
// indexed by code point, with chars[0] corresponding to '!'.
func NewCompactFont(id string, family string, chars []CompactGlyph) *Font {
	md := Metadata{
		Family:         family,
		Height:         CompactGlyphHeight,
		DefaultAdvance: option.SomeFloat64(CompactSpaceAdvance),
	}
	return NewFont(id, Compact, md, compactTable{chars: chars})
}

// Glyph looks up r in the table. Code points below the table's zero point
// (this includes the space character) and indices beyond the table length
// yield absent.
func (t compactTable) Glyph(r rune) (Glyph, bool) {
	inx := int(r) - compactTableZeroRune
	if inx < 0 || inx >= len(t.chars) {
		return Glyph{}, false
	}
	entry := t.chars[inx]
	o, err := strconv.Atoi(strings.TrimSpace(entry.Offset))
	if err != nil {
		tracer().Debugf("compact glyph %#U has unusable offset %q", r, entry.Offset)
		return Glyph{}, false
	}
	return Glyph{
		Rune:    r,
		Name:    string(r),
		Advance: float64(o),
		Path:    entry.Path,
	}, true
}

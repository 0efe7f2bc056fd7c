package font

import (
	"strings"

	"github.com/npillmayer/hershey/core/option"
	xfont "golang.org/x/image/font"
)

// Kind discriminates the two stroke-font table formats.
type Kind int

// Stroke-font table formats.
const (
	Compact Kind = iota // ASCII-offset-indexed glyph table
	Outline             // unicode-keyed glyph table
)

// Stringer implementation.
func (k Kind) String() string {
	if k == Compact {
		return "compact"
	}
	return "outline"
}

// Glyph is a normalized glyph record, independent of the source table
// format. An empty Path means the glyph has no drawable path data
// (whitespace glyphs); its advance width still applies.
type Glyph struct {
	Rune    rune    // character identity
	Name    string  // display name
	Advance float64 // advance width in font-native units
	Path    string  // SVG path data, possibly empty
}

// Metadata carries font-global information.
type Metadata struct {
	Family         string          // declared family name, as found in the source
	Height         float64         // native glyph height (units-per-em for outline fonts)
	DefaultAdvance option.Float64T // advance for inter-word gaps and width-less glyphs
	Style          xfont.Style
	Weight         xfont.Weight
}

// GlyphSource is the capability shared by all table formats: look up a
// glyph for a character. Lookups never fail hard; a character not covered
// by the table yields ok=false.
type GlyphSource interface {
	Glyph(r rune) (Glyph, bool)
}

// Font is a stroke font: an identifier, metadata and a glyph table.
// Immutable after construction.
type Font struct {
	ID       string // normalized machine name, see NormalizeFontname
	Kind     Kind
	Metadata Metadata
	src      GlyphSource
}

// NewFont wraps a glyph source into a font. The id will be normalized.
func NewFont(id string, kind Kind, md Metadata, src GlyphSource) *Font {
	return &Font{
		ID:       NormalizeFontname(id),
		Kind:     kind,
		Metadata: md,
		src:      src,
	}
}

// Glyph resolves a character to a glyph record. ok is false whenever the
// font does not cover r; callers must treat this as a normal outcome.
func (f *Font) Glyph(r rune) (Glyph, bool) {
	if f == nil || f.src == nil {
		return Glyph{}, false
	}
	return f.src.Glyph(r)
}

// DefaultAdvance returns the font's default advance width, or 0 if the
// font does not declare one.
func (f *Font) DefaultAdvance() float64 {
	if f == nil {
		return 0
	}
	return f.Metadata.DefaultAdvance.UnwrapOr(0)
}

// IsNull is true for degenerate fonts, i.e. fonts whose lookups always
// yield absent.
func (f *Font) IsNull() bool {
	if f == nil || f.src == nil {
		return true
	}
	_, ok := f.src.(nullSource)
	return ok
}

// --- Null font ---------------------------------------------------------------

type nullSource struct{}

func (nullSource) Glyph(rune) (Glyph, bool) {
	return Glyph{}, false
}

// NullFont returns a degenerate font for an unknown font identifier.
// Every glyph lookup on it yields absent. Callers receive it instead of an
// error, so that entire strings render as blank layout rather than
// aborting.
func NullFont(id string) *Font {
	return &Font{
		ID:  NormalizeFontname(id),
		src: nullSource{},
	}
}

// --- Font names ---------------------------------------------------------------

// NormalizeFontname derives a font's machine name from its declared family
// name: lowercased, with spaces replaced by underscores.
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	fname = strings.ToLower(fname)
	return fname
}

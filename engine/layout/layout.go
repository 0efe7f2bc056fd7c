package layout

import (
	"strings"

	"github.com/npillmayer/hershey/core/font"
	"golang.org/x/text/unicode/norm"
)

// compactAdvanceFactor corrects for the compact format's advance units:
// compact tables store advance offsets doubled (half-unit convention),
// while outline fonts carry advance widths in their natural units-per-em
// space and need no correction.
const compactAdvanceFactor = 0.5

// kindFactor is the font-type multiplier applied to advance widths.
func kindFactor(f *font.Font) float64 {
	if f.Kind == font.Compact {
		return compactAdvanceFactor
	}
	return 1
}

// foldText prepares input text for per-character resolution: CRLF line
// endings fold to LF, and the text is normalized to NFC so that composed
// and decomposed forms hit the same unicode-keyed table entries.
func foldText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return norm.NFC.String(text)
}

// spaceAdvance is the advance width used for the space character and as
// fallback for unresolvable characters: the font's space glyph if it has
// one, the font's default advance otherwise. In font-native units.
func spaceAdvance(f *font.Font) float64 {
	if sp, ok := f.Glyph(' '); ok {
		return sp.Advance
	}
	return f.DefaultAdvance()
}

package layout

// A Placement is one record of the flat render stream: a resolved glyph,
// a newline marker, or a space substitute for an unresolvable character.
type Placement struct {
	Type    string  // source font kind for glyph records, empty for newline markers
	Char    rune    // the input character
	Name    string  // glyph display name; "newline" and "space" for markers
	Advance float64 // advance width in font-native units; 0 for newline markers
	Path    string  // path data, possibly empty
}

// RenderGlyphs resolves every character of text, in order, into a
// placement record. No spacing or offset math is applied; the result is a
// pure per-character resolution stream for downstream custom renderers.
//
// Unresolvable newline characters yield a zero-width newline marker. Any
// other unresolvable character falls back to the space glyph of the
// active font; callers relying on exact-character fidelity must check
// glyph identity, not assume it always matches the input.
func RenderGlyphs(text string, opts Options) ([]Placement, error) {
	f := opts.font()
	if f.IsNull() {
		tracer().Infof("layout renders with unknown font %s, output will be blank", f.ID)
	}
	text = foldText(text)
	placements := make([]Placement, 0, len(text))
	for _, r := range text {
		g, ok := f.Glyph(r)
		if ok {
			placements = append(placements, Placement{
				Type:    f.Kind.String(),
				Char:    r,
				Name:    g.Name,
				Advance: g.Advance,
				Path:    g.Path,
			})
			continue
		}
		if r == '\n' {
			placements = append(placements, Placement{
				Char: r,
				Name: "newline",
			})
			continue
		}
		placements = append(placements, Placement{
			Type:    f.Kind.String(),
			Char:    r,
			Name:    "space",
			Advance: spaceAdvance(f),
		})
	}
	tracer().Debugf("layout resolved %d characters with font %s", len(placements), f.ID)
	return placements, nil
}

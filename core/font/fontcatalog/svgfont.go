package fontcatalog

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"

	"github.com/npillmayer/hershey/core"
	"github.com/npillmayer/hershey/core/font"
	"github.com/npillmayer/hershey/core/font/pathdata"
	"github.com/npillmayer/hershey/core/option"
)

// svgDefaultUnitsPerEm applies when a font-face omits units-per-em.
const svgDefaultUnitsPerEm = 1000.0

// RegisterOutlineFont parses an SVG font source and stores it as an
// outline font. The font's identifier is derived from the declared family
// name (lowercased, spaces replaced with underscores). Path data is
// cleaned (see package pathdata) once, at registration time; it is never
// rescaled here.
//
// Registration fails if the source cannot be parsed, contains no font
// element, or lacks a family name. If a font with the same identifier is
// already present, the stored one is kept and its identifier returned.
func (c *Catalog) RegisterOutlineFont(src []byte) (string, error) {
	f, err := parseSVGFont(src)
	if err != nil {
		tracer().Errorf("cannot register SVG font: %v", err)
		return "", err
	}
	c.StoreFont(f)
	tracer().Infof("registered outline font %s", f.ID)
	return f.ID, nil
}

// parseSVGFont walks the XML token stream and collects the first font
// element with its font-face, missing-glyph and glyph children. A token
// walk keeps us independent of where the font sits in the document tree
// (directly under svg, or nested in defs).
func parseSVGFont(src []byte) (*font.Font, error) {
	decoder := xml.NewDecoder(bytes.NewReader(src))
	var family, fontStyle, fontWeight string
	fontAdvance := option.Float64()
	missingAdvance := option.Float64()
	unitsPerEm := option.Float64()
	glyphs := make(map[rune]font.OutlineGlyph)
	inFont := false
	seenFont := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "unusable SVG font source")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "font":
				if seenFont { // only the first font element counts
					break
				}
				inFont, seenFont = true, true
				fontAdvance = attrFloat(t, "horiz-adv-x")
			case "font-face":
				if !inFont {
					break
				}
				family = attr(t, "font-family")
				unitsPerEm = attrFloat(t, "units-per-em")
				fontStyle = attr(t, "font-style")
				fontWeight = attr(t, "font-weight")
			case "missing-glyph":
				if !inFont {
					break
				}
				missingAdvance = attrFloat(t, "horiz-adv-x")
			case "glyph":
				if !inFont {
					break
				}
				collectGlyph(t, glyphs)
			}
		case xml.EndElement:
			if t.Name.Local == "font" {
				inFont = false
			}
		}
	}
	if !seenFont {
		return nil, core.Error(core.EINVALID, "SVG source contains no font element")
	}
	if family == "" {
		return nil, core.Error(core.EINVALID, "SVG font declares no family name")
	}
	deflt := missingAdvance
	if deflt.IsNone() {
		deflt = fontAdvance
	}
	style, weight := font.StyleAndWeight(fontStyle, fontWeight)
	md := font.Metadata{
		Family:         family,
		Height:         unitsPerEm.UnwrapOr(svgDefaultUnitsPerEm),
		DefaultAdvance: deflt,
		Style:          style,
		Weight:         weight,
	}
	tracer().Debugf("SVG font %q has %d glyphs, units-per-em %g", family, len(glyphs), md.Height)
	return font.NewOutlineFont(family, md, glyphs), nil
}

// collectGlyph stores a glyph element in the table. Glyphs keyed by more
// than one code point (ligatures) are not supported and skipped.
func collectGlyph(t xml.StartElement, glyphs map[rune]font.OutlineGlyph) {
	unicode := []rune(attr(t, "unicode"))
	if len(unicode) != 1 {
		tracer().Debugf("skipping glyph with unicode key %q", string(unicode))
		return
	}
	glyphs[unicode[0]] = font.OutlineGlyph{
		Name:    attr(t, "glyph-name"),
		Advance: attrFloat(t, "horiz-adv-x"),
		Path:    pathdata.CleanPath(attr(t, "d")),
	}
}

func attr(t xml.StartElement, name string) string {
	for _, a := range t.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func attrFloat(t xml.StartElement, name string) option.Float64T {
	v := attr(t, name)
	if v == "" {
		return option.Float64()
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		tracer().Debugf("attribute %s=%q is not a number", name, v)
		return option.Float64()
	}
	return option.SomeFloat64(f)
}

package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/hershey/core"
	"github.com/npillmayer/hershey/core/font"
)

// strokeWidth is the stroke width emitted for every glyph path.
const strokeWidth = 2

// RenderSVG typesets text and returns it as an SVG fragment: one outer
// group carrying id, stroke and a scale/translate transform, one nested
// group per laid-out line, and one path element per resolved glyph.
//
// Words are split on literal space characters; every space contributes
// one inter-word gap, so runs of spaces widen it. Characters are placed
// left-to-right, or right-to-left when opts.FromRight is set; right-to-left
// layout seeds the pen at the right canvas edge and therefore requires
// opts.Canvas. opts.Pos is always required. Unresolvable characters and
// unknown fonts degrade to blank output, they never abort the render.
func RenderSVG(text string, opts Options) (string, error) {
	if opts.Pos == nil {
		return "", core.Error(core.EINVALID, "SVG layout needs a position")
	}
	if opts.FromRight && opts.Canvas == nil {
		return "", core.Error(core.EINVALID, "right-to-left layout needs a canvas size")
	}
	f := opts.font()
	if f.IsNull() {
		tracer().Infof("layout renders with unknown font %s, output will be blank", f.ID)
	}
	scale := opts.scaleFactor()
	lines := typeset(foldText(text), f, opts, scale)
	return assembleSVG(lines, f, opts, scale), nil
}

// A renderedLine is one laid-out line: its glyph path elements and the
// horizontal extent the pen travelled.
type renderedLine struct {
	paths []string
	width float64
}

// typeset walks the text word by word and accumulates pen offsets.
// The pen starts at 0 (left-to-right) or at the right canvas edge scaled
// by the inverse render scale (right-to-left), so that visual right-edge
// placement is scale-invariant.
func typeset(text string, f *font.Font, opts Options, scale float64) []renderedLine {
	factor := kindFactor(f)
	gap := f.DefaultAdvance()*factor + opts.CharSpacing
	start := 0.0
	if opts.FromRight {
		start = opts.Canvas.W / scale
	}
	wrap := math.Inf(1)
	if !opts.Wrap.IsNone() && opts.Wrap.Unwrap() > 0 {
		wrap = opts.Wrap.Unwrap()
	}
	//
	var lines []renderedLine
	cur := renderedLine{}
	pen := start
	flush := func() {
		cur.width = math.Abs(pen - start)
		lines = append(lines, cur)
		cur = renderedLine{}
		pen = start
	}
	for i, textline := range strings.Split(text, "\n") {
		if i > 0 {
			flush()
		}
		for j, word := range strings.Split(textline, " ") {
			if j > 0 { // every space separator widens the gap, even empty words
				if opts.FromRight {
					pen -= gap
				} else {
					pen += gap
				}
			}
			if word == "" {
				continue
			}
			wordW := wordAdvance(word, f, factor, opts.CharSpacing)
			if j > 0 && math.Abs(pen-start)+wordW > wrap {
				flush()
			}
			for _, r := range word {
				g, ok := f.Glyph(r)
				adv := opts.CharSpacing
				if ok {
					adv += g.Advance * factor
				} else {
					adv += spaceAdvance(f) * factor
				}
				if opts.FromRight {
					// retreat first, so the glyph's trailing edge sits at
					// the pre-retreat position
					pen -= adv
					if el := pathElement(g, f, pen); ok && el != "" {
						cur.paths = append(cur.paths, el)
					}
				} else {
					if el := pathElement(g, f, pen); ok && el != "" {
						cur.paths = append(cur.paths, el)
					}
					pen += adv
				}
			}
		}
	}
	flush()
	return lines
}

// wordAdvance sums the pen advance of a word, substituting the space
// advance for unresolvable characters.
func wordAdvance(word string, f *font.Font, factor float64, spacing float64) float64 {
	w := 0.0
	for _, r := range word {
		if g, ok := f.Glyph(r); ok {
			w += g.Advance * factor
		} else {
			w += spaceAdvance(f) * factor
		}
		w += spacing
	}
	return w
}

// pathElement renders one glyph at horizontal pen offset x. Outline
// glyphs are authored in glyph space with an inverted Y axis and receive
// an additional flip: translate to the font's unit height, then mirror Y.
func pathElement(g font.Glyph, f *font.Font, x float64) string {
	if g.Path == "" {
		return ""
	}
	transform := fmt.Sprintf("translate(%s, %s)", num(x), num(0))
	if f.Kind == font.Outline {
		transform = fmt.Sprintf("translate(%s, %s) scale(1, -1)", num(x), num(f.Metadata.Height))
	}
	return fmt.Sprintf(`<path d="%s" stroke-width="%d" letter="%s" transform="%s"/>`,
		g.Path, strokeWidth, escapeAttr(string(g.Rune)), transform)
}

// assembleSVG nests the rendered lines into line groups and the outer
// group. Line and block centering are realized as per-line translation
// offsets; glyphs are never re-laid-out.
func assembleSVG(lines []renderedLine, f *font.Font, opts Options, scale float64) string {
	id := opts.elementID()
	lineHeight := f.Metadata.Height + opts.LineHeightAdjust
	vOff := 0.0
	if !opts.CenterHeight.IsNone() {
		vOff = (opts.CenterHeight.Unwrap() - float64(len(lines))*lineHeight) / 2
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<g id="%s" stroke="black" fill="none" transform="scale(%s) translate(%s, %s)">`,
		escapeAttr(id), num(scale), num(opts.Pos.X), num(opts.Pos.Y))
	for i, ln := range lines {
		hOff := 0.0
		if !opts.CenterWidth.IsNone() {
			hOff = (opts.CenterWidth.Unwrap() - ln.width) / 2
		}
		fmt.Fprintf(&b, `<g id="%s-line-%d" transform="translate(%s, %s)">`,
			escapeAttr(id), i, num(hOff), num(vOff+float64(i)*lineHeight))
		for _, p := range ln.paths {
			b.WriteString(p)
		}
		b.WriteString("</g>")
	}
	b.WriteString("</g>")
	return b.String()
}

// num formats a coordinate, rounded to 2 decimal places, without
// trailing zeros.
func num(v float64) string {
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

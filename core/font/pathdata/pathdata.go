package pathdata

import (
	"math"
	"strconv"
	"strings"
)

// CleanPath tokenizes raw path data: it inserts a separating blank before
// every command letter, before a numeral directly preceded by a character
// that is neither digit, blank, period nor minus, and before a minus sign
// directly following a digit or a command letter (the minus starts a new
// coordinate). Commas count as blanks. Runs of blanks collapse to a single one.
//
// An empty input is returned unchanged.
func CleanPath(d string) string {
	if d == "" {
		return d
	}
	var b strings.Builder
	b.Grow(len(d) + len(d)/2)
	var prev rune
	for _, r := range d {
		switch {
		case r == ',':
			r = ' '
		case isCommand(r):
			b.WriteByte(' ')
		case isDigit(r):
			if prev != 0 && !isDigit(prev) && prev != ' ' && prev != '.' && prev != '-' {
				b.WriteByte(' ')
			}
		case r == '-':
			if isDigit(prev) || isCommand(prev) {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
		prev = r
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ScalePath converts path data from glyph space to line space. Tokens
// alternate between X and Y coordinates; a command letter resets the
// alternation to "expect X next". X values are multiplied by scale;
// Y values are subtracted from height (the font's declared glyph height)
// before scaling, flipping the inverted Y axis of the source coordinates.
// All results are rounded to 2 decimal places. Non-numeric tokens pass
// through unchanged.
//
// ScalePath expects cleaned path data (see CleanPath). An empty input is
// returned unchanged.
func ScalePath(d string, scale float64, height float64) string {
	if d == "" {
		return d
	}
	fields := strings.Fields(d)
	out := make([]string, 0, len(fields))
	expectX := true
	for _, tok := range fields {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			out = append(out, tok)
			expectX = true
			continue
		}
		var v float64
		if expectX {
			v = f * scale
		} else {
			v = (height - f) * scale
		}
		out = append(out, formatNum(round2(v)))
		expectX = !expectX
	}
	return strings.Join(out, " ")
}

// Normalize is CleanPath followed by ScalePath.
func Normalize(d string, scale float64, height float64) string {
	if d == "" {
		return d
	}
	tracer().Debugf("normalizing path of %d bytes, scale=%g, height=%g", len(d), scale, height)
	return ScalePath(CleanPath(d), scale, height)
}

func isCommand(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package font

import (
	"strconv"
	"strings"

	xfont "golang.org/x/image/font"
)

// StyleAndWeight interprets the font-style and font-weight attributes of an
// SVG font-face element. Unknown or empty values map to normal/regular.
func StyleAndWeight(fontStyle, fontWeight string) (xfont.Style, xfont.Weight) {
	style := xfont.StyleNormal
	switch strings.ToLower(strings.TrimSpace(fontStyle)) {
	case "italic":
		style = xfont.StyleItalic
	case "oblique":
		style = xfont.StyleOblique
	}
	weight := xfont.WeightNormal
	fontWeight = strings.ToLower(strings.TrimSpace(fontWeight))
	if w, err := strconv.Atoi(fontWeight); err == nil {
		/* from https://pkg.go.dev/golang.org/x/image/font
		WeightThin       Weight = -3 // CSS font-weight value 100.
		WeightNormal     Weight = +0 // CSS font-weight value 400.
		WeightBlack      Weight = +5 // CSS font-weight value 900.
		*/
		if w >= 100 && w <= 900 {
			weight = xfont.Weight(w/100 - 4)
		}
		return style, weight
	}
	switch fontWeight {
	case "light":
		weight = xfont.WeightLight
	case "medium":
		weight = xfont.WeightMedium
	case "bold":
		weight = xfont.WeightBold
	case "black":
		weight = xfont.WeightBlack
	}
	return style, weight
}

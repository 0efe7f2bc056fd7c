package layout

import (
	"github.com/npillmayer/hershey/core/font"
	"github.com/npillmayer/hershey/core/font/fontcatalog"
	"github.com/npillmayer/hershey/core/geom"
	"github.com/npillmayer/hershey/core/option"
)

// Defaults for render options.
const (
	DefaultFontID    = "futural"
	DefaultElementID = "hershey"
)

// Options configure a render call. All fields are optional except where a
// render mode states otherwise; unset fields select documented defaults.
type Options struct {
	FontID           string          // font identifier, default "futural"
	ID               string          // id attribute of the outer SVG group
	Scale            option.Float64T // render scale factor, default 1
	Pos              *geom.Point     // position of the outer group; required for SVG mode
	Canvas           *geom.Size      // canvas size; required for right-to-left layout
	CharSpacing      float64         // per-character spacing adjustment
	LineHeightAdjust float64         // per-line height adjustment
	FromRight        bool            // lay out right-to-left
	Wrap             option.Float64T // wrap lines at this width; unset = no wrapping
	CenterWidth      option.Float64T // center each line within this width
	CenterHeight     option.Float64T // center the block within this height
	Catalog          *fontcatalog.Catalog
}

// catalog returns the catalog to resolve fonts from.
func (opts Options) catalog() *fontcatalog.Catalog {
	if opts.Catalog != nil {
		return opts.Catalog
	}
	return fontcatalog.Global()
}

// font resolves the selected font; unknown identifiers yield a null font.
func (opts Options) font() *font.Font {
	id := opts.FontID
	if id == "" {
		id = DefaultFontID
	}
	return opts.catalog().Font(id)
}

func (opts Options) elementID() string {
	if opts.ID == "" {
		return DefaultElementID
	}
	return opts.ID
}

// scaleFactor returns the render scale. The zero value counts as unset.
func (opts Options) scaleFactor() float64 {
	s := option.Safe(opts.Scale.Match(option.Of{
		option.None: 1.0,
		0:           1.0,
		option.Some: func(x interface{}) (interface{}, error) {
			return x.(option.Float64T).Unwrap(), nil
		},
	}))
	return s.(float64)
}

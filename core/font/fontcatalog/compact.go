package fontcatalog

import (
	_ "embed"
	"encoding/json"

	"github.com/npillmayer/hershey/core"
	"github.com/npillmayer/hershey/core/font"
)

// Bundled compact font tables (engraving fonts), in the catalog JSON
// format: a map of font id to {name, chars}, with chars[0] corresponding
// to '!'.
//
//go:embed catalogdata/hershey.json
var bundledCatalog []byte

type compactFontRecord struct {
	Name  string              `json:"name"`
	Chars []font.CompactGlyph `json:"chars"`
}

// LoadCompactTable parses a JSON catalog of compact fonts and stores every
// font it declares. Fonts already present in the catalog are kept.
func (c *Catalog) LoadCompactTable(data []byte) error {
	var catalog map[string]compactFontRecord
	if err := json.Unmarshal(data, &catalog); err != nil {
		return core.WrapError(err, core.EINVALID, "unusable compact font table")
	}
	for id, rec := range catalog {
		f := font.NewCompactFont(id, rec.Name, rec.Chars)
		tracer().Debugf("compact table declares font %s with %d glyphs", f.ID, len(rec.Chars))
		c.StoreFont(f)
	}
	return nil
}

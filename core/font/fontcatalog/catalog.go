package fontcatalog

import (
	"sync"

	"github.com/derekparker/trie"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/hershey/core/font"
)

// Catalog is a collection of stroke fonts, keyed by normalized font name.
// Fonts are stored sorted by identifier, so listing order is deterministic.
type Catalog struct {
	sync.Mutex
	fonts *treemap.Map // font id -> *font.Font
	names *trie.Trie   // prefix index over font ids
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		fonts: treemap.NewWithStringComparator(),
		names: trie.New(),
	}
}

var globalCatalog *Catalog

var globalCatalogCreation sync.Once

// Global is an application-wide catalog, pre-loaded with the bundled
// compact fonts. Clients which need isolated catalogs construct their own
// with New and pass them by reference.
func Global() *Catalog {
	globalCatalogCreation.Do(func() {
		globalCatalog = New()
		if err := globalCatalog.LoadCompactTable(bundledCatalog); err != nil {
			panic("cannot load bundled font catalog") // this cannot happen
		}
	})
	return globalCatalog
}

// StoreFont pushes a font into the catalog if it isn't contained yet.
//
// The font is stored under its normalized identifier. If this identifier is
// already associated with a font, that font will not be overridden; the
// first registration wins.
func (c *Catalog) StoreFont(f *font.Font) {
	if f == nil || f.ID == "" {
		tracer().Errorf("catalog cannot store null font")
		return
	}
	c.Lock()
	defer c.Unlock()
	if _, ok := c.fonts.Get(f.ID); ok {
		tracer().Infof("catalog already contains font %s, keeping stored one", f.ID)
		return
	}
	tracer().Debugf("catalog stores %s font %s", f.Kind, f.ID)
	c.fonts.Put(f.ID, f)
	c.names.Add(f.ID, f.Kind)
}

// GetFont returns the font stored under id, if any. Identifiers are
// compared exactly as stored; no case-folding happens at lookup time.
func (c *Catalog) GetFont(id string) (*font.Font, bool) {
	c.Lock()
	defer c.Unlock()
	if f, ok := c.fonts.Get(id); ok {
		return f.(*font.Font), true
	}
	return nil, false
}

// Font returns the font stored under id, or a degenerate null font whose
// lookups always yield absent. Callers must treat "no glyph" as a normal,
// non-fatal outcome distinct from "invalid font".
func (c *Catalog) Font(id string) *font.Font {
	if f, ok := c.GetFont(id); ok {
		return f
	}
	tracer().Infof("catalog does not contain font %s", id)
	return font.NullFont(id)
}

// FontIDs returns the identifiers of all stored fonts, sorted.
func (c *Catalog) FontIDs() []string {
	c.Lock()
	defer c.Unlock()
	keys := c.fonts.Keys()
	ids := make([]string, len(keys))
	for i, k := range keys {
		ids[i] = k.(string)
	}
	return ids
}

// Find returns the identifiers of all stored fonts starting with prefix.
func (c *Catalog) Find(prefix string) []string {
	c.Lock()
	defer c.Unlock()
	return c.names.PrefixSearch(prefix)
}

// LogFontList is a helper function to dump the list of known fonts in a
// catalog to the trace-file (log-level Info).
func (c *Catalog) LogFontList() {
	tracer().Infof("--- catalog fonts ---")
	for _, id := range c.FontIDs() {
		f, _ := c.GetFont(id)
		tracer().Infof("font [%s] = %s (%s)", id, f.Metadata.Family, f.Kind)
	}
	tracer().Infof("---------------------")
}

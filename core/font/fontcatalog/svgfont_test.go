package fontcatalog

import (
	"os"
	"testing"

	"github.com/npillmayer/hershey/core"
	"github.com/npillmayer/hershey/core/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func testFontSource(t *testing.T) []byte {
	src, err := os.ReadFile("testdata/testcasual.svg")
	require.NoError(t, err, "cannot read test font")
	return src
}

func TestRegisterOutlineFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.fonts")
	defer teardown()
	//
	c := New()
	id, err := c.RegisterOutlineFont(testFontSource(t))
	require.NoError(t, err)
	if id != "test_casual" {
		t.Errorf("font id should be derived from family name, is %s", id)
	}
	f, ok := c.GetFont(id)
	require.True(t, ok)
	if f.Kind != font.Outline {
		t.Errorf("registered font should be an outline font")
	}
	if f.Metadata.Height != 1000 {
		t.Errorf("units-per-em should be 1000, is %g", f.Metadata.Height)
	}
}

func TestRegisteredGlyphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.fonts")
	defer teardown()
	//
	c := New()
	id, err := c.RegisterOutlineFont(testFontSource(t))
	require.NoError(t, err)
	f := c.Font(id)
	//
	g, ok := f.Glyph('A')
	require.True(t, ok, "glyph 'A' should resolve")
	if g.Advance != 440 {
		t.Errorf("glyph 'A' should have advance 440, has %g", g.Advance)
	}
	// registration must re-insert token separators, and nothing else
	want := "M 61 0 L 214 714 L 367 0 M 120 230 L 308 230"
	if g.Path != want {
		t.Errorf("glyph 'A' path = %q, want %q", g.Path, want)
	}
	//
	sp, ok := f.Glyph(' ')
	require.True(t, ok, "space should be a real glyph entry")
	if sp.Advance != 226 || sp.Path != "" {
		t.Errorf("space should be width-only with advance 226, is %+v", sp)
	}
	//
	// é has no own width and inherits the missing-glyph advance
	acc, ok := f.Glyph('é')
	require.True(t, ok, "é should resolve")
	if acc.Advance != 500 {
		t.Errorf("é should inherit default advance 500, has %g", acc.Advance)
	}
	//
	// ligature entries are not unicode-scalar-keyed and must be skipped
	if _, ok := f.Glyph('f'); ok {
		t.Errorf("no single glyph 'f' is declared, lookup should fail")
	}
}

func TestRegisterTwiceIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.fonts")
	defer teardown()
	//
	c := New()
	src := testFontSource(t)
	id1, err1 := c.RegisterOutlineFont(src)
	f1, _ := c.GetFont(id1)
	id2, err2 := c.RegisterOutlineFont(src)
	f2, _ := c.GetFont(id2)
	require.NoError(t, err1)
	require.NoError(t, err2)
	if id1 != id2 {
		t.Errorf("re-registration should yield the same id, got %s and %s", id1, id2)
	}
	if f1 != f2 {
		t.Errorf("re-registration should keep the stored font")
	}
	if len(c.FontIDs()) != 1 {
		t.Errorf("catalog should hold exactly one font, has %v", c.FontIDs())
	}
}

func TestRegisterRejectsBadSources(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.fonts")
	defer teardown()
	//
	c := New()
	for name, src := range map[string]string{
		"garbage":   "not xml at all <",
		"no font":   "<svg><defs></defs></svg>",
		"no family": `<svg><font id="x"><font-face units-per-em="1000"/></font></svg>`,
	} {
		_, err := c.RegisterOutlineFont([]byte(src))
		if err == nil {
			t.Errorf("registration of %s source should fail", name)
		} else if core.Code(err) != core.EINVALID {
			t.Errorf("registration of %s source should fail with EINVALID, err is %v", name, err)
		}
	}
	if len(c.FontIDs()) != 0 {
		t.Errorf("failed registrations must not add fonts, catalog has %v", c.FontIDs())
	}
}

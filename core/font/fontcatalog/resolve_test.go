package fontcatalog

import (
	"testing"

	"github.com/npillmayer/hershey/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestResolveSVGFontFromFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.fonts")
	defer teardown()
	//
	c := New()
	promise := c.ResolveSVGFont("testdata/testcasual.svg")
	f, err := promise.Font()
	require.NoError(t, err)
	require.NotNil(t, f)
	if f.ID != "test_casual" {
		t.Errorf("resolved font id should be test_casual, is %s", f.ID)
	}
	if _, ok := c.GetFont("test_casual"); !ok {
		t.Errorf("resolving should register the font with the catalog")
	}
}

func TestResolveSVGFontMissingFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.fonts")
	defer teardown()
	//
	c := New()
	_, err := c.ResolveSVGFont("testdata/no_such_font.svg").Font()
	require.Error(t, err)
	if core.Code(err) != core.EMISSING {
		t.Errorf("missing font file should yield code EMISSING, err is %v", err)
	}
	if core.UserMessage(err) == "" {
		t.Errorf("error should carry a user message")
	}
}

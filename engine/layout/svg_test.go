package layout

import (
	"strings"
	"testing"

	"github.com/npillmayer/hershey/core/geom"
	"github.com/npillmayer/hershey/core/option"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestRenderSVGSingleGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.layout")
	defer teardown()
	//
	svg, err := RenderSVG("A", Options{
		FontID: "futural",
		ID:     "t",
		Pos:    &geom.Point{},
	})
	require.NoError(t, err)
	if n := strings.Count(svg, "<path"); n != 1 {
		t.Fatalf("expected exactly 1 path element, have %d:\n%s", n, svg)
	}
	require.Contains(t, svg, `letter="A"`)
	require.Contains(t, svg, `transform="translate(0, 0)"`)
	require.Contains(t, svg, `<g id="t" stroke="black" fill="none" transform="scale(1) translate(0, 0)">`)
	require.Contains(t, svg, `<g id="t-line-0"`)
}

func TestRenderSVGNeedsPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.layout")
	defer teardown()
	//
	_, err := RenderSVG("A", Options{FontID: "futural"})
	require.Error(t, err, "SVG rendering without a position should fail")
}

func TestRenderSVGRightToLeftNeedsCanvas(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.layout")
	defer teardown()
	//
	_, err := RenderSVG("A", Options{
		FontID:    "futural",
		Pos:       &geom.Point{},
		FromRight: true,
	})
	require.Error(t, err, "right-to-left rendering without a canvas should fail")
}

func TestRenderSVGDirectionParity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.layout")
	defer teardown()
	//
	// futural 'A' advances 18, 'B' advances 16 (compact units halved)
	ltr, err := RenderSVG("AB", Options{FontID: "futural", Pos: &geom.Point{}})
	require.NoError(t, err)
	require.Contains(t, ltr, `translate(0, 0)"`)
	require.Contains(t, ltr, `translate(18, 0)"`)
	//
	// right-to-left seeds the pen at the right canvas edge and retreats
	// by the same advances, so the glyph positions mirror the run width
	rtl, err := RenderSVG("AB", Options{
		FontID:    "futural",
		Pos:       &geom.Point{},
		Canvas:    &geom.Size{W: 100, H: 50},
		FromRight: true,
	})
	require.NoError(t, err)
	require.Contains(t, rtl, `translate(82, 0)"`)
	require.Contains(t, rtl, `translate(66, 0)"`)
}

func TestRenderSVGSubstituteKeepsPenFlowing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.layout")
	defer teardown()
	//
	// '€' is not covered by futural: it renders nothing, but advances the
	// pen by the space advance (16, halved to 8)
	svg, err := RenderSVG("A€B", Options{FontID: "futural", Pos: &geom.Point{}})
	require.NoError(t, err)
	if n := strings.Count(svg, "<path"); n != 2 {
		t.Fatalf("expected 2 path elements, have %d:\n%s", n, svg)
	}
	require.Contains(t, svg, `translate(26, 0)"`, "'B' should sit past the substitute gap")
}

func TestRenderSVGConsecutiveSpaces(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.layout")
	defer teardown()
	//
	// every space contributes one inter-word gap (8 with futural): two
	// spaces push 'B' one gap further than one space, and a leading space
	// indents the first word
	svg, err := RenderSVG("A B", Options{FontID: "futural", Pos: &geom.Point{}})
	require.NoError(t, err)
	require.Contains(t, svg, `letter="B" transform="translate(26, 0)"`)
	//
	svg, err = RenderSVG("A  B", Options{FontID: "futural", Pos: &geom.Point{}})
	require.NoError(t, err)
	require.Contains(t, svg, `letter="B" transform="translate(34, 0)"`)
	//
	svg, err = RenderSVG(" A", Options{FontID: "futural", Pos: &geom.Point{}})
	require.NoError(t, err)
	require.Contains(t, svg, `letter="A" transform="translate(8, 0)"`)
}

func TestRenderSVGWrap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.layout")
	defer teardown()
	//
	// each word "AA" is 36 wide, the inter-word gap is 8; a wrap width of
	// 30 forces the second word onto a fresh line
	svg, err := RenderSVG("AA AA", Options{
		FontID: "futural",
		ID:     "t",
		Pos:    &geom.Point{},
		Wrap:   option.SomeFloat64(30),
	})
	require.NoError(t, err)
	require.Contains(t, svg, `id="t-line-0"`)
	require.Contains(t, svg, `id="t-line-1"`)
	if n := strings.Count(svg, "<path"); n != 4 {
		t.Fatalf("expected 4 path elements, have %d:\n%s", n, svg)
	}
	// the wrapped word restarts at the line origin
	if n := strings.Count(svg, `letter="A" transform="translate(0, 0)"`); n != 2 {
		t.Errorf("both lines should start a glyph at the origin:\n%s", svg)
	}
}

func TestRenderSVGCentering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.layout")
	defer teardown()
	//
	// line width 18 centered in 100 gives a 41 offset; one line of height
	// 21 centered in 100 gives 39.5
	svg, err := RenderSVG("A", Options{
		FontID:       "futural",
		Pos:          &geom.Point{},
		CenterWidth:  option.SomeFloat64(100),
		CenterHeight: option.SomeFloat64(100),
	})
	require.NoError(t, err)
	require.Contains(t, svg, `transform="translate(41, 39.5)"`)
}

func TestRenderSVGLineStacking(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.layout")
	defer teardown()
	//
	svg, err := RenderSVG("A\nA", Options{FontID: "futural", ID: "t", Pos: &geom.Point{}})
	require.NoError(t, err)
	require.Contains(t, svg, `<g id="t-line-0" transform="translate(0, 0)">`)
	require.Contains(t, svg, `<g id="t-line-1" transform="translate(0, 21)">`)
	//
	// LineHeightAdjust widens the line advance
	svg, err = RenderSVG("A\nA", Options{
		FontID:           "futural",
		ID:               "t",
		Pos:              &geom.Point{},
		LineHeightAdjust: 4,
	})
	require.NoError(t, err)
	require.Contains(t, svg, `<g id="t-line-1" transform="translate(0, 25)">`)
}

func TestRenderSVGScaleAndPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.layout")
	defer teardown()
	//
	svg, err := RenderSVG("A", Options{
		FontID: "futural",
		Pos:    &geom.Point{X: 10, Y: 20},
		Scale:  option.SomeFloat64(2),
	})
	require.NoError(t, err)
	require.Contains(t, svg, `transform="scale(2) translate(10, 20)"`)
}

func TestRenderSVGOutlineFlip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.layout")
	defer teardown()
	//
	c := testCatalogWithOutlineFont(t)
	svg, err := RenderSVG("A", Options{
		FontID:  "test_casual",
		Catalog: c,
		Pos:     &geom.Point{},
	})
	require.NoError(t, err)
	// the path data is the cleaned form stored at registration time,
	// emitted untouched; orientation is fixed by the transform alone
	require.Contains(t, svg, `d="M 61 0 L 214 714 L 367 0 M 120 230 L 308 230"`)
	require.Contains(t, svg, `transform="translate(0, 1000) scale(1, -1)"`)
}

func TestRenderSVGUnknownFontIsBlank(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.layout")
	defer teardown()
	//
	svg, err := RenderSVG("AB", Options{FontID: "no_such_font", Pos: &geom.Point{}})
	require.NoError(t, err)
	if strings.Contains(svg, "<path") {
		t.Errorf("unknown font should render an empty group:\n%s", svg)
	}
	require.Contains(t, svg, `<g id="hershey"`)
}

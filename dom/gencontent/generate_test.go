package gencontent_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/counters/dom/gencontent"
	"github.com/npillmayer/counters/dom/style/cssom"
	"github.com/npillmayer/counters/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// generate styles and generates a document and reports one line per node
// with generated output.
func generate(t *testing.T, doc, sheet string, opts ...gencontent.Option) ([]string, error) {
	t.Helper()
	h, err := html.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	var sheets []cssom.StyleSheet
	if sheet != "" {
		css, err := douceuradapter.Parse(sheet)
		require.NoError(t, err)
		sheets = append(sheets, css)
	}
	root, err := cssom.NewStyler(sheets...).Style(h)
	require.NoError(t, err)
	result, err := gencontent.Generate(root, opts...)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, sn := range result.Nodes() {
		g, _ := result.Generated(sn)
		lines = append(lines, fmt.Sprintf("%s|%s|%s", sn.Name(), g.Marker, g.Content))
	}
	return lines, nil
}

func check(t *testing.T, expect, lines []string) {
	t.Helper()
	if diff := cmp.Diff(expect, lines); diff != "" {
		t.Errorf("generated content mismatch (-want +got):\n%s", diff)
	}
}

const nestedLists = `<ol>
<li>A<ol><li>A1</li><li>A2</li></ol></li>
<li>B</li>
</ol>`

func TestNestedLists(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "counters.gencontent")
	defer teardown()
	//
	lines, err := generate(t, nestedLists, `li::after { content: " [" counters(list-item, ".") "]"; }`)
	require.NoError(t, err)
	// the inner list's counter is in scope of the ::after of its parent item
	check(t, []string{
		"li|1. |",
		"li|1. |",
		"li::after|| [1.1]",
		"li|2. |",
		"li::after|| [1.2]",
		"li::after|| [1.2]",
		"li|2. |",
		"li::after|| [2]",
	}, lines)
}

func TestChaptersAndSections(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "counters.gencontent")
	defer teardown()
	//
	doc := `<body><h1>a</h1><h2>a.a</h2><h2>a.b</h2><h1>b</h1><h2>b.a</h2></body>`
	sheet := `
body { counter-reset: chapter; }
h1 { counter-increment: chapter; counter-reset: section; }
h2 { counter-increment: section; }
h1::before { content: "Chapter " counter(chapter, upper-roman) ": "; }
h2::before { content: counter(chapter) "." counter(section) " "; }
`
	lines, err := generate(t, doc, sheet)
	require.NoError(t, err)
	check(t, []string{
		"h1::before||Chapter I: ",
		"h2::before||1.1 ",
		"h2::before||1.2 ",
		"h1::before||Chapter II: ",
		"h2::before||2.1 ",
	}, lines)
}

func TestListStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "counters.gencontent")
	defer teardown()
	//
	doc := `<ul><li>x</li></ul>
<ol style="list-style-type: lower-greek"><li>a</li><li>b</li></ol>
<ol class="plain"><li>n</li></ol>
<ol start="4"><li>d</li><li value="10">j</li><li>k</li></ol>
<ol><li>a</li><li style="display: none">b</li><li>c</li></ol>`
	lines, err := generate(t, doc, `.plain { list-style-type: none; } ul li { list-style-type: square; }`)
	require.NoError(t, err)
	check(t, []string{
		"li|■ |",
		"li|α. |",
		"li|β. |",
		"li|4. |",
		"li|10. |",
		"li|11. |",
		"li|1. |",
		"li|2. |",
	}, lines)
}

func TestUnresolvedCounter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "counters.gencontent")
	defer teardown()
	//
	lines, err := generate(t, `<p>x</p>`, `p::before { content: "[" counter(nope, decimal-leading-zero) "|" counters(nope2, "/") "]"; }`)
	require.NoError(t, err)
	check(t, []string{"p::before||[00|0]"}, lines)
}

func TestGenerateOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "counters.gencontent")
	defer teardown()
	//
	lines, err := generate(t, `<ol><li>a</li><li>b</li></ol>`, "", gencontent.WithMarkerSuffix(")"))
	require.NoError(t, err)
	check(t, []string{"li|1)|", "li|2)|"}, lines)
	lines, err = generate(t, `<ol><li>a</li><li>b</li></ol>`, "", gencontent.WithoutListItemCounter())
	require.NoError(t, err)
	check(t, []string{"li|0. |", "li|0. |"}, lines)
}

func TestGenerateErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "counters.gencontent")
	defer teardown()
	//
	doc := `<ol><li>a</li></ol>`
	_, err := generate(t, doc, `li { counter-increment: 3x; }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "<li> counter-increment")
	lines, err := generate(t, doc, `li { counter-increment: 3x; }`, gencontent.IgnoringErrors())
	require.NoError(t, err)
	check(t, []string{"li|1. |"}, lines)
	_, err = gencontent.Generate(nil)
	assert.Error(t, err)
}

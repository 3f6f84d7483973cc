package css

import (
	"testing"

	"github.com/npillmayer/counters/dom/style"
	"github.com/npillmayer/counters/dom/styledtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

func element(name string, props ...string) *styledtree.StyNode {
	n := styledtree.Node(styledtree.NewNodeForHTMLNode(&html.Node{Type: html.ElementNode, Data: name}))
	if len(props) > 0 {
		pmap := style.NewPropertyMap()
		for i := 0; i+1 < len(props); i += 2 {
			pmap.Set(props[i], style.Property(props[i+1]))
		}
		n.SetStyles(pmap)
	}
	return n
}

func TestGetProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "counters.css")
	defer teardown()
	//
	ol := element("ol", "list-style-type", "upper-roman", "counter-reset", "item")
	li := element("li", "counter-increment", "inherit")
	span := element("span", "list-style-type", "initial")
	ol.AddChild(&li.Node)
	li.AddChild(&span.Node)
	p, err := GetProperty(li, "list-style-type")
	assert.NoError(t, err)
	assert.Equal(t, style.Property("upper-roman"), p, "list-style-type is inherited")
	p, _ = GetProperty(li, "counter-reset")
	assert.Equal(t, style.Property("none"), p, "counter-reset is not inherited")
	p, _ = GetProperty(span, "list-style-type")
	assert.Equal(t, style.Property("disc"), p, "initial resets to the initial value")
	p, _ = GetProperty(span, "display")
	assert.Equal(t, style.Property("inline"), p)
	_, err = GetProperty(nil, "display")
	assert.ErrorIs(t, err, ErrNoNode)
}

func TestGetPropertyExplicitInherit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "counters.css")
	defer teardown()
	//
	div := element("div", "counter-increment", "para 2")
	p := element("p", "counter-increment", "inherit")
	div.AddChild(&p.Node)
	v, _ := GetProperty(p, "counter-increment")
	assert.Equal(t, style.Property("para 2"), v)
}

func TestGetPropertyPseudoElement(t *testing.T) {
	h2 := element("h2")
	before := styledtree.Node(styledtree.NewPseudoNode(h2.HTMLNode(), "before"))
	h2.AddChild(&before.Node)
	v, _ := GetProperty(before, "display")
	assert.Equal(t, style.Property("inline"), v)
}

func TestParseDisplay(t *testing.T) {
	cases := map[style.Property]DisplayMode{
		"":                 NoMode,
		"none":             DisplayNone,
		"list-item":        ListItemMode | BlockMode,
		"List-Item":        ListItemMode | BlockMode,
		"inline list-item": InlineMode | ListItemMode,
		"block list-item":  BlockMode | ListItemMode,
		"inline-block":     InlineMode | InnerBlockMode,
	}
	for v, expect := range cases {
		mode, err := ParseDisplay(v)
		assert.NoError(t, err)
		assert.Equal(t, expect, mode, "display: %s", v)
	}
	mode, err := ParseDisplay("wobbly")
	assert.Error(t, err)
	assert.Equal(t, BlockMode, mode)
	assert.True(t, (ListItemMode | BlockMode).IsListItem())
	assert.True(t, DisplayNone.IsNone())
	assert.Equal(t, "BlockMode ListItemMode", (ListItemMode | BlockMode).String())
}

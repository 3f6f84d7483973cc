package styledtree

import (
	"testing"

	"github.com/npillmayer/counters/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func TestStyledNodeNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "counters.dom")
	defer teardown()
	//
	ol := NewNodeForHTMLNode(&html.Node{Type: html.ElementNode, Data: "ol"})
	li := NewNodeForHTMLNode(&html.Node{
		Type: html.ElementNode,
		Data: "li",
		Attr: []html.Attribute{{Key: "id", Val: "first"}, {Key: "class", Val: "a b"}},
	})
	ol.AddChild(li)
	if name := Node(li).Name(); name != "li#first.a.b" {
		t.Errorf("expected name of li to be 'li#first.a.b', is %q", name)
	}
	if path := Node(li).Path(); path != "ol/li#first.a.b" {
		t.Errorf("expected path 'ol/li#first.a.b', is %q", path)
	}
	if Node(li).ParentNode() != Node(ol) {
		t.Errorf("expected parent of li to be ol")
	}
	if Node(nil) != nil {
		t.Errorf("expected Node(nil) to be nil")
	}
}

func TestStyledNodeStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "counters.dom")
	defer teardown()
	//
	n := NewNodeForHTMLNode(&html.Node{Type: html.ElementNode, Data: "p"})
	if Node(n).Styles() != nil {
		t.Errorf("expected new node to carry no styles")
	}
	pmap := style.NewPropertyMap()
	pmap.Set("counter-increment", "para")
	Node(n).SetStyles(pmap)
	if p, _ := Node(n).Styles().Property("counter-increment"); p != "para" {
		t.Errorf("expected counter-increment 'para', is %q", p)
	}
}

func TestPseudoNode(t *testing.T) {
	h2 := &html.Node{Type: html.ElementNode, Data: "h2"}
	n := NewNodeForHTMLNode(h2)
	before := NewPseudoNode(h2, "before")
	n.AddChild(before)
	if !Node(before).IsPseudoElement() || Node(n).IsPseudoElement() {
		t.Errorf("expected only the ::before node to be a pseudo-element")
	}
	if Node(before).Name() != "h2::before" {
		t.Errorf("expected name 'h2::before', is %q", Node(before).Name())
	}
	if Node(before).HTMLNode() != h2 {
		t.Errorf("expected pseudo-element to link to its originating element")
	}
}

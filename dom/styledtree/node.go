package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/counters/dom/style"
	"github.com/npillmayer/counters/tree"
	"golang.org/x/net/html"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	htmlNode            *html.Node
	pseudo              string // "before" or "after" for generated pseudo-elements
	styles              *style.PropertyMap
}

// NewNodeForHTMLNode creates a new styled node linked to an HTML node.
func NewNodeForHTMLNode(html *html.Node) *tree.Node[*StyNode] {
	sn := &StyNode{}
	sn.Payload = sn // Payload will always reference the node itself
	sn.htmlNode = html
	return &sn.Node
}

// NewPseudoNode creates a styled node for a pseudo-element ("before", "after")
// of an HTML element. The node links to the originating element.
func NewPseudoNode(origin *html.Node, pseudo string) *tree.Node[*StyNode] {
	n := NewNodeForHTMLNode(origin)
	n.Payload.pseudo = pseudo
	return n
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// HTMLNode gets the HTML DOM node corresponding to this styled node.
func (sn *StyNode) HTMLNode() *html.Node {
	return sn.htmlNode
}

// IsPseudoElement is true for nodes created with NewPseudoNode.
func (sn *StyNode) IsPseudoElement() bool {
	return sn.pseudo != ""
}

// PseudoElement returns the name of the pseudo-element, or "".
func (sn *StyNode) PseudoElement() string {
	return sn.pseudo
}

// Styles returns the style properties specified for this node. May be nil.
func (sn *StyNode) Styles() *style.PropertyMap {
	return sn.styles
}

// SetStyles sets the styling properties of a styled node.
func (sn *StyNode) SetStyles(styles *style.PropertyMap) {
	tracer().Debugf("set styles for %s", sn.Name())
	sn.styles = styles
}

// ParentNode returns the styled parent node, or nil for the root.
func (sn *StyNode) ParentNode() *StyNode {
	return Node(sn.Parent())
}

// Name returns a short selector-like name for the node, e.g. "li#first.note"
// or "h2::before".
func (sn *StyNode) Name() string {
	if sn.pseudo != "" {
		return sn.elementName() + "::" + sn.pseudo
	}
	return sn.elementName()
}

func (sn *StyNode) elementName() string {
	h := sn.htmlNode
	if h == nil {
		return "<nil>"
	}
	switch h.Type {
	case html.DocumentNode:
		return "#document"
	case html.TextNode:
		return "#text"
	case html.ElementNode:
	default:
		return "#node"
	}
	var b strings.Builder
	b.WriteString(h.Data)
	for _, a := range h.Attr {
		switch a.Key {
		case "id":
			b.WriteString("#" + a.Val)
		case "class":
			for _, c := range strings.Fields(a.Val) {
				b.WriteString("." + c)
			}
		}
	}
	return b.String()
}

// Path returns the names of the node and all its ancestors, separated by '/'.
func (sn *StyNode) Path() string {
	var names []string
	for n := sn; n != nil; n = n.ParentNode() {
		names = append(names, n.Name())
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, "/")
}

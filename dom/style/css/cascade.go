package css

import (
	"errors"

	"github.com/npillmayer/counters/dom/style"
	"github.com/npillmayer/counters/dom/styledtree"
)

// ErrNoNode is returned when asking for a property of a nil styled node.
var ErrNoNode = errors.New("css: no styled node")

// GetProperty gets the value of a property. If the property is not set
// locally on the style node and the property is inheritable, the search
// cascades to parent property maps, if available. A value of "inherit"
// always cascades, a value of "initial" resets to the default value.
//
// If no value has been specified anywhere, the default value for the
// element is returned (see style.GetUserAgentDefaultProperty).
func GetProperty(node *styledtree.StyNode, key string) (style.Property, error) {
	if node == nil {
		return style.NullStyle, ErrNoNode
	}
	p := GetLocalProperty(node.Styles(), key)
	switch {
	case p.IsInitial():
		return defaultProperty(node, key), nil
	case p.IsInherit():
	case !p.IsEmpty():
		return p, nil
	case !style.IsCascading(key):
		return defaultProperty(node, key), nil
	}
	parent := node.ParentNode()
	if parent == nil {
		return defaultProperty(node, key), nil
	}
	tracer().P("key", key).Debugf("cascading from %s to %s", node.Name(), parent.Name())
	return GetProperty(parent, key)
}

// GetLocalProperty returns a style property value, if it is set locally
// for a styled node's property map. No cascading is performed.
func GetLocalProperty(pmap *style.PropertyMap, key string) style.Property {
	p, _ := pmap.Property(key)
	return p
}

func defaultProperty(node *styledtree.StyNode, key string) style.Property {
	if node.IsPseudoElement() && key == "display" {
		return "inline"
	}
	return style.GetUserAgentDefaultProperty(node.HTMLNode(), key)
}

package style

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Initial values of non-inherited properties, as defined by CSS.
var initialValues = map[string]string{
	"counter-reset":       "none",
	"counter-increment":   "none",
	"counter-set":         "none",
	"content":             "normal",
	"list-style-type":     "disc",
	"list-style-position": "outside",
	"visibility":          "visible",
}

// GetUserAgentDefaultProperty returns the value of a property which has not been
// specified for node, neither by a style sheet nor by the user-agent rules of
// UserAgentDefaults. This is the initial value of the property, except for
// 'display', which depends on the element type.
func GetUserAgentDefaultProperty(node *html.Node, key string) Property {
	if key == "display" {
		return DisplayPropertyForHTMLNode(node)
	}
	if p, ok := initialValues[key]; ok {
		return Property(p)
	}
	return NullStyle
}

// UserAgentDefaults returns the list related properties a user agent style
// sheet assigns to an HTML element:
//
//     ol, ul, menu { counter-reset: list-item }
//     ol           { list-style-type: decimal }
//     ul, menu     { list-style-type: disc }
//     li           { display: list-item }
//
// HTML attributes 'start' of <ol> and 'value' of <li> are mapped to
// 'counter-reset: list-item <start-1>' and 'counter-set: list-item <value>'.
//
// Returns nil for elements without defaults.
func UserAgentDefaults(node *html.Node) *PropertyMap {
	if node == nil || node.Type != html.ElementNode {
		return nil
	}
	var pmap *PropertyMap
	switch node.Data {
	case "ol":
		pmap = NewPropertyMap()
		pmap.Set("counter-reset", "list-item")
		if start, ok := intAttr(node, "start"); ok {
			pmap.Set("counter-reset", Property("list-item "+strconv.FormatInt(start-1, 10)))
		}
		pmap.Set("list-style-type", "decimal")
	case "ul", "menu":
		pmap = NewPropertyMap()
		pmap.Set("counter-reset", "list-item")
		pmap.Set("list-style-type", "disc")
	case "li":
		pmap = NewPropertyMap()
		pmap.Set("display", "list-item")
		if value, ok := intAttr(node, "value"); ok {
			pmap.Set("counter-set", Property("list-item "+strconv.FormatInt(value, 10)))
		}
	}
	return pmap
}

func intAttr(node *html.Node, key string) (int64, bool) {
	for _, a := range node.Attr {
		if a.Key == key {
			n, err := strconv.ParseInt(strings.TrimSpace(a.Val), 10, 64)
			if err != nil {
				tracer().Infof("ignoring illegal %s=%q of <%s>", key, a.Val, node.Data)
				return 0, false
			}
			return n, true
		}
	}
	return 0, false
}

// DisplayPropertyForHTMLNode returns the default `display` CSS property for an HTML node.
func DisplayPropertyForHTMLNode(node *html.Node) Property {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type != html.ElementNode {
		tracer().Debugf("cannot get display-property for non-element")
		return "none"
	}
	switch node.Data {
	case "head", "style", "script", "title", "meta", "link":
		return "none"
	case "html", "aside", "body", "div", "h1", "h2", "h3",
		"h4", "h5", "h6", "p", "li", "ol", "section", "article",
		"ul", "menu", "nav", "header", "footer", "blockquote":
		return "block"
	case "a", "i", "b", "em", "span", "strong", "code":
		return "inline"
	}
	tracer().Infof("unknown HTML element %s/%d will be set to display: block",
		node.Data, node.Type)
	return "block"
}

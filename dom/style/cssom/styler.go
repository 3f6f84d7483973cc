package cssom

import (
	"errors"
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/counters/dom/style"
	"github.com/npillmayer/counters/dom/styledtree"
	"github.com/npillmayer/counters/tree"
	"golang.org/x/net/html"
)

// ErrNoDocument is returned when styling a nil document.
var ErrNoDocument = errors.New("cssom: no document to style")

// Styler applies style sheets to HTML documents.
type Styler struct {
	rules    []compiledRule
	uaStyles bool
}

// compiledRule is a single selector of a rule, together with the position of
// the rule in the list of all rules.
type compiledRule struct {
	sel    cascadia.Sel
	rule   Rule
	order  int
	pseudo string
}

// NewStyler creates a styler for a list of style sheets. Rules of later
// sheets follow rules of earlier sheets in source order.
//
// Selectors which cannot be parsed are dropped, as are rules for
// pseudo-elements other than '::before' and '::after'.
func NewStyler(sheets ...StyleSheet) *Styler {
	s := &Styler{uaStyles: true}
	order := 0
	for _, sheet := range sheets {
		if sheet == nil || sheet.Empty() {
			continue
		}
		for _, rule := range sheet.Rules() {
			order++
			group, err := cascadia.ParseGroupWithPseudoElements(rule.Selector())
			if err != nil {
				tracer().Infof("dropping rule with illegal selector %q: %v", rule.Selector(), err)
				continue
			}
			for _, sel := range group {
				pseudo := sel.PseudoElement()
				if pseudo != "" && pseudo != "before" && pseudo != "after" {
					tracer().Debugf("ignoring pseudo-element ::%s", pseudo)
					continue
				}
				tracer().Debugf("rule #%d: %s", order, sel.String())
				s.rules = append(s.rules, compiledRule{sel: sel, rule: rule, order: order, pseudo: pseudo})
			}
		}
	}
	tracer().Debugf("styler has %d compiled selectors", len(s.rules))
	return s
}

// SetUserAgentStyles switches the user-agent rules for lists on or off.
// They are on by default.
func (s *Styler) SetUserAgentStyles(on bool) *Styler {
	s.uaStyles = on
	return s
}

// Style creates a styled tree for an HTML document. The root of the styled
// tree corresponds to doc, every element of doc gets a styled node.
// Text, comment and other non-element nodes are not represented.
func (s *Styler) Style(doc *html.Node) (*tree.Node[*styledtree.StyNode], error) {
	if doc == nil {
		return nil, ErrNoDocument
	}
	root := s.styleNode(doc)
	tracer().Infof("styled tree created")
	return root, nil
}

func (s *Styler) styleNode(h *html.Node) *tree.Node[*styledtree.StyNode] {
	n := styledtree.NewNodeForHTMLNode(h)
	if h.Type != html.ElementNode {
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				n.AddChild(s.styleNode(c))
			}
		}
		return n
	}
	var element, before, after []declaration
	for _, cr := range s.rules {
		if !cr.sel.Match(h) {
			continue
		}
		decls := declarationsOf(cr)
		switch cr.pseudo {
		case "before":
			before = append(before, decls...)
		case "after":
			after = append(after, decls...)
		default:
			element = append(element, decls...)
		}
	}
	element = append(element, inlineDeclarations(h)...)
	var pmap *style.PropertyMap
	if s.uaStyles {
		pmap = style.UserAgentDefaults(h)
	}
	styledtree.Node(n).SetStyles(cascade(pmap, element))
	if pseudo := pseudoElement(h, "before", before); pseudo != nil {
		n.AddChild(pseudo)
	}
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			n.AddChild(s.styleNode(c))
		}
	}
	if pseudo := pseudoElement(h, "after", after); pseudo != nil {
		n.AddChild(pseudo)
	}
	return n
}

// pseudoElement creates a styled node for a pseudo-element, if it generates
// content.
func pseudoElement(h *html.Node, pseudo string, decls []declaration) *tree.Node[*styledtree.StyNode] {
	if len(decls) == 0 {
		return nil
	}
	pmap := cascade(nil, decls)
	content, _ := pmap.Property("content")
	switch strings.ToLower(content.String()) {
	case "", "none", "normal":
		return nil
	}
	n := styledtree.NewPseudoNode(h, pseudo)
	styledtree.Node(n).SetStyles(pmap)
	return n
}

// --- Cascade ---------------------------------------------------------------

type declaration struct {
	key         string
	value       style.Property
	important   bool
	inline      bool
	specificity cascadia.Specificity
	order       int
}

// precedes is true if declaration d is to be overridden by other.
func (d declaration) precedes(other declaration) bool {
	if d.important != other.important {
		return other.important
	}
	if d.inline != other.inline {
		return other.inline
	}
	if d.specificity != other.specificity {
		return d.specificity.Less(other.specificity)
	}
	return d.order < other.order
}

func declarationsOf(cr compiledRule) []declaration {
	keys := cr.rule.Properties()
	decls := make([]declaration, 0, len(keys))
	for i, key := range keys {
		decls = append(decls, declaration{
			key:         strings.ToLower(key),
			value:       cr.rule.Value(key),
			important:   cr.rule.IsImportant(key),
			specificity: cr.sel.Specificity(),
			order:       cr.order<<16 | i,
		})
	}
	return decls
}

func inlineDeclarations(h *html.Node) []declaration {
	var text string
	for _, a := range h.Attr {
		if a.Key == "style" {
			text = strings.TrimSpace(a.Val)
		}
	}
	if text == "" {
		return nil
	}
	if !strings.HasSuffix(text, ";") {
		text += ";"
	}
	parsed, err := parser.ParseDeclarations(text)
	if err != nil {
		tracer().Infof("ignoring illegal inline style %q of <%s>: %v", text, h.Data, err)
		return nil
	}
	decls := make([]declaration, 0, len(parsed))
	for i, d := range parsed {
		decls = append(decls, declaration{
			key:       strings.ToLower(d.Property),
			value:     style.Property(d.Value),
			important: d.Important,
			inline:    true,
			order:     i,
		})
	}
	return decls
}

// cascade applies declarations in order of ascending precedence on top of
// pmap, which may be nil.
func cascade(pmap *style.PropertyMap, decls []declaration) *style.PropertyMap {
	if pmap == nil {
		pmap = style.NewPropertyMap()
	}
	sort.SliceStable(decls, func(i, j int) bool {
		return decls[i].precedes(decls[j])
	})
	for _, d := range decls {
		kvs, err := style.SplitCompoundProperty(d.key, d.value)
		if err != nil { // not a shorthand
			pmap.Set(d.key, d.value)
			continue
		}
		for _, kv := range kvs {
			pmap.Set(kv.Key, kv.Value)
		}
	}
	return pmap
}

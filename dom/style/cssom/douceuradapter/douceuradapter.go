/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/counters/dom/style"
	"github.com/npillmayer/counters/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'counters.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("counters.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses the text of a style sheet.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing style sheet: %w", err)
	}
	return Wrap(c), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss, ok := other.(*CSSStyles)
	if !ok {
		tracer().Errorf("cannot append rules from style sheet of type %T", other)
		return
	}
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the qualified rules of a stylesheet. Rules embedded in
// '@media' rules for screen media are included, in source order. Other
// at-rules are skipped, including their embedded rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	return appendRules(make([]cssom.Rule, 0, len(sheet.css.Rules)), sheet.css.Rules)
}

func appendRules(rules []cssom.Rule, from []*css.Rule) []cssom.Rule {
	for _, r := range from {
		switch {
		case r.Kind == css.QualifiedRule:
			rules = append(rules, Rule(*r))
		case r.Name == "@media" && forScreenMedia(r.Prelude):
			rules = appendRules(rules, r.Rules)
		default:
			tracer().Debugf("skipping at-rule %s %s", r.Name, r.Prelude)
		}
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule in source order,
// e.g. "counter-reset". Keys declared more than once are listed once.
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	seen := make(map[string]bool, len(decl))
	for _, d := range decl {
		if !seen[d.Property] {
			seen[d.Property] = true
			props = append(props, d.Property)
		}
	}
	return props
}

// Value returns the property value for given key with this rule, e.g. "chapter 2".
// If a key is declared more than once, the last declaration wins, except
// for important declarations.
func (r Rule) Value(key string) style.Property {
	if d := r.declaration(key); d != nil {
		return style.Property(d.Value)
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	if d := r.declaration(key); d != nil {
		return d.Important
	}
	return false
}

func (r Rule) declaration(key string) *css.Declaration {
	var found *css.Declaration
	for _, d := range r.Declarations {
		if d.Property == key && (found == nil || d.Important || !found.Important) {
			found = d
		}
	}
	return found
}

var _ cssom.Rule = &Rule{}

var styleElements = cascadia.MustCompile("style")

// ExtractStyleElements searches for embedded <style>s in an HTML parse tree.
// It returns the content of style-elements as style sheets, in document order.
// Style elements with a media type other than "all" and "screen" are skipped.
func ExtractStyleElements(htmldoc *html.Node) ([]*CSSStyles, error) {
	if htmldoc == nil {
		return nil, nil
	}
	var sheets []*CSSStyles
	for _, el := range styleElements.MatchAll(htmldoc) {
		if !forScreen(el) || el.FirstChild == nil {
			continue
		}
		c, err := Parse(el.FirstChild.Data)
		if err != nil {
			return sheets, err
		}
		sheets = append(sheets, c)
	}
	tracer().Debugf("extracted %d style sheets", len(sheets))
	return sheets, nil
}

func forScreen(el *html.Node) bool {
	for _, a := range el.Attr {
		if a.Key == "media" {
			return forScreenMedia(a.Val)
		}
	}
	return true
}

// forScreenMedia checks a media query list, e.g. "screen, print", for media
// types 'screen' or 'all'. Media features are not evaluated.
func forScreenMedia(query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	for _, q := range strings.Split(query, ",") {
		words := strings.Fields(strings.ToLower(q))
		if len(words) > 1 && words[0] == "only" {
			words = words[1:]
		}
		if len(words) == 0 {
			continue
		}
		switch words[0] {
		case "screen", "all":
			return true
		}
	}
	return false
}

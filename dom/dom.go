package dom

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/counters/dom/gencontent"
	"github.com/npillmayer/counters/dom/style/cssom"
	"github.com/npillmayer/counters/dom/style/cssom/douceuradapter"
	"golang.org/x/net/html"
)

// ErrNoHTML is returned by Process for a nil document.
var ErrNoHTML = errors.New("dom: no HTML document")

// Document is an HTML document together with its styled tree and the
// content generated for it.
type Document struct {
	HTML    *html.Node
	Styled  *gencontent.StyledTree
	Content *gencontent.Result
}

// Option configures Parse and Process.
type Option func(*processor)

type processor struct {
	sheets   []cssom.StyleSheet
	uaStyles bool
	genopts  []gencontent.Option
}

// WithStyleSheet adds a style sheet. Style sheets are applied after the
// <style> elements of the document, in the order given.
func WithStyleSheet(sheet cssom.StyleSheet) Option {
	return func(p *processor) {
		if sheet != nil {
			p.sheets = append(p.sheets, sheet)
		}
	}
}

// WithoutUserAgentStyles switches off the user-agent list styles, i.e.
// <li> is not a list item unless a style sheet says so.
func WithoutUserAgentStyles() Option {
	return func(p *processor) {
		p.uaStyles = false
	}
}

// WithGenerateOptions passes options to gencontent.Generate.
func WithGenerateOptions(opts ...gencontent.Option) Option {
	return func(p *processor) {
		p.genopts = append(p.genopts, opts...)
	}
}

// Parse reads an HTML document from r and processes it.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	h, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return Process(h, opts...)
}

// Process styles an HTML document and generates its content. Style sheets
// are collected from the <style> elements of the document, followed by the
// style sheets given as options.
func Process(h *html.Node, opts ...Option) (*Document, error) {
	if h == nil {
		return nil, ErrNoHTML
	}
	p := &processor{uaStyles: true}
	for _, opt := range opts {
		opt(p)
	}
	styles, err := douceuradapter.ExtractStyleElements(h)
	if err != nil {
		return nil, fmt.Errorf("parsing <style>: %w", err)
	}
	sheets := make([]cssom.StyleSheet, 0, len(styles)+len(p.sheets))
	for _, s := range styles {
		sheets = append(sheets, s)
	}
	sheets = append(sheets, p.sheets...)
	tracer().Infof("styling document with %d style sheets", len(sheets))
	styler := cssom.NewStyler(sheets...).SetUserAgentStyles(p.uaStyles)
	doc := &Document{HTML: h}
	if doc.Styled, err = styler.Style(h); err != nil {
		return doc, err
	}
	doc.Content, err = gencontent.Generate(doc.Styled, p.genopts...)
	return doc, err
}

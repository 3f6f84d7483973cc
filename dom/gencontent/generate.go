package gencontent

import (
	"fmt"
	"strings"

	"github.com/npillmayer/counters"
	"github.com/npillmayer/counters/dom/style/css"
	"github.com/npillmayer/counters/dom/styledtree"
	"github.com/npillmayer/counters/tree"
	"golang.org/x/net/html"
)

// ListItemCounter is the name of the implicit counter of list items.
const ListItemCounter = "list-item"

// DefaultMarkerSuffix follows numeric list markers, e.g. "3. ".
const DefaultMarkerSuffix = ". "

// StyledTree is the type of tree Generate operates on.
type StyledTree = tree.Node[*styledtree.StyNode]

// Generated is the output generated for a styled node.
type Generated struct {
	Marker  string // list marker, including suffix
	Content string // value of property 'content'
}

// IsEmpty is true if neither a marker nor content has been generated.
func (g Generated) IsEmpty() bool {
	return g.Marker == "" && g.Content == ""
}

// Result holds the generated content of a document.
type Result struct {
	nodes     []*styledtree.StyNode
	generated map[*styledtree.StyNode]Generated
	store     *counters.Store[*StyledTree]
}

// Nodes returns all nodes with generated content, in document order.
func (r *Result) Nodes() []*styledtree.StyNode {
	return r.nodes
}

// Generated returns the output generated for a styled node.
func (r *Result) Generated(sn *styledtree.StyNode) (Generated, bool) {
	g, ok := r.generated[sn]
	return g, ok
}

// Counters returns the counter store in its state after the walk.
func (r *Result) Counters() *counters.Store[*StyledTree] {
	return r.store
}

// Option configures Generate.
type Option func(*generator)

// WithMarkerSuffix sets the suffix of numeric list markers.
func WithMarkerSuffix(suffix string) Option {
	return func(g *generator) {
		g.markerSuffix = suffix
	}
}

// WithoutListItemCounter switches off the implicit increment of counter
// 'list-item' for list items.
func WithoutListItemCounter() Option {
	return func(g *generator) {
		g.listItems = false
	}
}

// IgnoringErrors makes Generate drop malformed property values, instead of
// returning an error.
func IgnoringErrors() Option {
	return func(g *generator) {
		g.lenient = true
	}
}

type generator struct {
	markerSuffix string
	listItems    bool
	lenient      bool
	store        *counters.Store[*StyledTree]
	result       *Result
}

// Generate walks a styled tree in document order, applies counter properties
// and computes list markers and generated content.
func Generate(root *StyledTree, opts ...Option) (*Result, error) {
	g := &generator{
		markerSuffix: DefaultMarkerSuffix,
		listItems:    true,
		store:        counters.NewTreeStore[*styledtree.StyNode](),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.result = &Result{
		generated: make(map[*styledtree.StyNode]Generated),
		store:     g.store,
	}
	if err := tree.Walk(root, g.enter, nil); err != nil {
		return g.result, err
	}
	tracer().Infof("generated content for %d nodes", len(g.result.nodes))
	return g.result, nil
}

func (g *generator) enter(n *StyledTree, depth int) error {
	sn := styledtree.Node(n)
	if h := sn.HTMLNode(); h == nil || h.Type != html.ElementNode {
		return nil
	}
	display, err := g.display(sn)
	if err != nil {
		return err
	}
	if display.IsNone() {
		tracer().Debugf("%s has display: none, skipping", sn.Name())
		return tree.SkipChildren
	}
	if err = g.applyCounterProperties(n, display.IsListItem()); err != nil {
		return err
	}
	var out Generated
	if display.IsListItem() {
		if out.Marker, err = g.marker(n); err != nil {
			return err
		}
	}
	if out.Content, err = g.content(n); err != nil {
		return err
	}
	if !out.IsEmpty() {
		tracer().Debugf("%s: marker = %q, content = %q", sn.Name(), out.Marker, out.Content)
		g.result.nodes = append(g.result.nodes, sn)
		g.result.generated[sn] = out
	}
	return nil
}

func (g *generator) display(sn *styledtree.StyNode) (css.DisplayMode, error) {
	p, err := css.GetProperty(sn, "display")
	if err != nil {
		return css.NoMode, g.fail(sn, "display", err)
	}
	mode, err := css.ParseDisplay(p)
	if err != nil {
		return mode, g.fail(sn, "display", err)
	}
	return mode, nil
}

// applyCounterProperties applies counter-reset, counter-increment and
// counter-set, in this order. List items increment counter 'list-item',
// unless it is incremented explicitly.
func (g *generator) applyCounterProperties(n *StyledTree, isListItem bool) error {
	sn := styledtree.Node(n)
	resets, err := g.directives(sn, "counter-reset", counters.DefaultResetValue)
	if err != nil {
		return err
	}
	for _, cd := range resets {
		g.store.ResetTo(cd.Name, cd.Value, n)
	}
	increments, err := g.directives(sn, "counter-increment", counters.DefaultIncrementValue)
	if err != nil {
		return err
	}
	explicitListItem := false
	for _, cd := range increments {
		g.store.IncrementBy(cd.Name, cd.Value, n)
		explicitListItem = explicitListItem || cd.Name == ListItemCounter
	}
	if isListItem && g.listItems && !explicitListItem {
		g.store.Increment(ListItemCounter, n)
	}
	sets, err := g.directives(sn, "counter-set", 0)
	if err != nil {
		return err
	}
	for _, cd := range sets {
		g.store.Set(cd.Name, cd.Value, n)
	}
	return nil
}

func (g *generator) directives(sn *styledtree.StyNode, key string, dflt int64) ([]css.CounterDirective, error) {
	p, err := css.GetProperty(sn, key)
	if err != nil {
		return nil, g.fail(sn, key, err)
	}
	cds, err := css.ParseCounterDirectives(p, dflt)
	if err != nil {
		return nil, g.fail(sn, key, err)
	}
	return cds, nil
}

// marker computes the list marker of a list item.
func (g *generator) marker(n *StyledTree) (string, error) {
	sn := styledtree.Node(n)
	p, err := css.GetProperty(sn, "list-style-type")
	if err != nil {
		return "", g.fail(sn, "list-style-type", err)
	}
	symbol := css.ParseListStyleType(p)
	switch {
	case symbol == counters.None:
		return "", nil
	case symbol.IsGlyph():
		return symbol.Format(0) + " ", nil
	}
	return g.counter(n, ListItemCounter, symbol) + g.markerSuffix, nil
}

// content computes the value of property 'content'.
func (g *generator) content(n *StyledTree) (string, error) {
	sn := styledtree.Node(n)
	p, err := css.GetProperty(sn, "content")
	if err != nil {
		return "", g.fail(sn, "content", err)
	}
	items, err := css.ParseContent(p)
	if err != nil {
		return "", g.fail(sn, "content", err)
	}
	var b strings.Builder
	for _, item := range items {
		var text string
		var ref css.CounterRef
		switch m := item.Match(); m {
		case m.Literal(&text):
			b.WriteString(text)
		case m.Counter(&ref):
			b.WriteString(g.counter(n, ref.Name, ref.Style))
		case m.Counters(&ref):
			b.WriteString(g.nestedCounters(n, ref))
		}
	}
	return b.String(), nil
}

// counter resolves a counter. A counter not in scope is instantiated at n.
func (g *generator) counter(n *StyledTree, name string, symbol counters.SymbolType) string {
	var s string
	switch m := g.store.Counter(name, symbol, n).Match(); m {
	case m.Just(&s):
		return s
	case m.Nothing():
	}
	g.store.Reset(name, n)
	return g.store.Counter(name, symbol, n).WithDefault(symbol.Format(counters.DefaultResetValue))
}

func (g *generator) nestedCounters(n *StyledTree, ref css.CounterRef) string {
	if s, ok := g.store.Counters(ref.Name, ref.Separator, ref.Style, n).Get(); ok {
		return s
	}
	g.store.Reset(ref.Name, n)
	return g.store.Counters(ref.Name, ref.Separator, ref.Style, n).WithDefault("")
}

// fail wraps an error with the node and property it occured for. If errors
// are ignored, it logs the error and returns nil.
func (g *generator) fail(sn *styledtree.StyNode, key string, err error) error {
	err = fmt.Errorf("<%s> %s: %w", sn.Name(), key, err)
	if g.lenient {
		tracer().Errorf("ignoring: %v", err)
		return nil
	}
	return err
}

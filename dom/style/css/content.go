package css

import (
	"fmt"
	"strings"

	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/counters"
	"github.com/npillmayer/counters/dom/style"
)

type contentKind uint8

const (
	contentLiteral contentKind = iota
	contentCounter
	contentCounters
)

// ContentItem is an option type for the components of property 'content':
//
//     ContentItem
//         = Literal text
//         | Counter name style
//         | Counters name separator style
//
type ContentItem struct {
	kind    contentKind
	text    string
	counter CounterRef
}

// CounterRef is the argument list of CSS functions counter() and counters().
// Separator is empty for counter().
type CounterRef struct {
	Name      string
	Separator string
	Style     counters.SymbolType
}

// Literal creates a content item for a string literal.
func Literal(text string) ContentItem {
	return ContentItem{kind: contentLiteral, text: text}
}

// Counter creates a content item for "counter(name, style)".
func Counter(name string, symbol counters.SymbolType) ContentItem {
	return ContentItem{kind: contentCounter, counter: CounterRef{Name: name, Style: symbol}}
}

// Counters creates a content item for "counters(name, separator, style)".
func Counters(name, separator string, symbol counters.SymbolType) ContentItem {
	return ContentItem{
		kind:    contentCounters,
		counter: CounterRef{Name: name, Separator: separator, Style: symbol},
	}
}

func (item ContentItem) String() string {
	switch item.kind {
	case contentCounter:
		return fmt.Sprintf("counter(%s, %s)", item.counter.Name, item.counter.Style)
	case contentCounters:
		return fmt.Sprintf("counters(%s, %q, %s)", item.counter.Name, item.counter.Separator,
			item.counter.Style)
	}
	return fmt.Sprintf("%q", item.text)
}

// --- Matching --------------------------------------------------------------

// Match is used for pattern-matching a content item in a switch statement:
//
//     switch m := item.Match(); m {
//     case m.Literal(&text):
//     case m.Counter(&ref):
//     case m.Counters(&ref):
//     }
//
func (item ContentItem) Match() *CMatcher {
	return &CMatcher{item: item}
}

// CMatcher is part of pattern matching for content items. Exactly one of
// its methods returns the matcher itself, the other ones return nil.
type CMatcher struct {
	item ContentItem
}

func (m *CMatcher) Literal(text *string) *CMatcher {
	if m.item.kind == contentLiteral {
		if text != nil {
			*text = m.item.text
		}
		return m
	}
	return nil
}

func (m *CMatcher) Counter(ref *CounterRef) *CMatcher {
	if m.item.kind == contentCounter {
		if ref != nil {
			*ref = m.item.counter
		}
		return m
	}
	return nil
}

func (m *CMatcher) Counters(ref *CounterRef) *CMatcher {
	if m.item.kind == contentCounters {
		if ref != nil {
			*ref = m.item.counter
		}
		return m
	}
	return nil
}

// --- Parsing ---------------------------------------------------------------

// ParseContent parses the value of property 'content'. Supported are
// string literals and the functions counter() and counters(). Values
// "none" and "normal" result in no items.
func ParseContent(p style.Property) ([]ContentItem, error) {
	if p.IsEmpty() || isKeyword(p, "none") || isKeyword(p, "normal") {
		return nil, nil
	}
	var items []ContentItem
	ts := tokenize(string(p))
	for !ts.atEnd() {
		t := ts.pop()
		switch {
		case t.Type == scanner.TokenString:
			items = append(items, Literal(unquote(t.Value)))
		case t.Type == scanner.TokenFunction && strings.EqualFold(t.Value, "counter("):
			item, err := parseCounterFunction(ts, false)
			if err != nil {
				return nil, fmt.Errorf("content %q: %w", p, err)
			}
			items = append(items, item)
		case t.Type == scanner.TokenFunction && strings.EqualFold(t.Value, "counters("):
			item, err := parseCounterFunction(ts, true)
			if err != nil {
				return nil, fmt.Errorf("content %q: %w", p, err)
			}
			items = append(items, item)
		default:
			return nil, fmt.Errorf("content %q: %w", p, unexpected(t, "string or counter function"))
		}
	}
	return items, nil
}

// parseCounterFunction parses the arguments of counter() and counters(),
// after the opening parenthesis.
func parseCounterFunction(ts *tokens, nested bool) (ContentItem, error) {
	name, err := ts.expectIdent()
	if err != nil {
		return ContentItem{}, err
	}
	var separator string
	if nested {
		if err = ts.expectChar(","); err != nil {
			return ContentItem{}, err
		}
		t := ts.pop()
		if t.Type != scanner.TokenString {
			return ContentItem{}, unexpected(t, "separator string")
		}
		separator = unquote(t.Value)
	}
	symbol := counters.Decimal
	if ts.isChar(",") {
		ts.pop()
		kw, err := ts.expectIdent()
		if err != nil {
			return ContentItem{}, err
		}
		symbol = counters.ParseSymbolType(kw)
	}
	if err = ts.expectChar(")"); err != nil {
		return ContentItem{}, err
	}
	if nested {
		return Counters(name, separator, symbol), nil
	}
	return Counter(name, symbol), nil
}

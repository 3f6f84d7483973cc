package counters

import (
	"strings"

	"github.com/npillmayer/counters/numbering"
)

// SymbolType denotes how a counter value is rendered, corresponding to the
// keywords of CSS property 'list-style-type'.
type SymbolType uint8

// Symbol types known to the counter engine. Unspecified renders decimal.
const (
	Unspecified SymbolType = iota
	None
	Disc
	Circle
	Square
	Decimal
	DecimalLeadingZero
	UpperAlpha
	LowerAlpha
	UpperRoman
	LowerRoman
	LowerGreek
	Georgian
	Armenian
	NumericFallback
)

// Glyphs for non-numeric list markers.
const (
	DiscSymbol   = "•"
	CircleSymbol = "◦"
	SquareSymbol = "■"
)

var symbolKeywords = [...]string{
	Unspecified:        "",
	None:               "none",
	Disc:               "disc",
	Circle:             "circle",
	Square:             "square",
	Decimal:            "decimal",
	DecimalLeadingZero: "decimal-leading-zero",
	UpperAlpha:         "upper-alpha",
	LowerAlpha:         "lower-alpha",
	UpperRoman:         "upper-roman",
	LowerRoman:         "lower-roman",
	LowerGreek:         "lower-greek",
	Georgian:           "georgian",
	Armenian:           "armenian",
	NumericFallback:    "numeric",
}

// String returns the CSS keyword of a symbol type.
func (sym SymbolType) String() string {
	if int(sym) < len(symbolKeywords) {
		return symbolKeywords[sym]
	}
	return symbolKeywords[NumericFallback]
}

// IsGlyph is true for symbol types rendering a fixed glyph (or nothing),
// independent of the counter value.
func (sym SymbolType) IsGlyph() bool {
	return sym == None || sym == Disc || sym == Circle || sym == Square
}

// ParseSymbolType returns the symbol type for a CSS 'list-style-type' keyword.
// An empty keyword results in Unspecified, unknown keywords result in
// NumericFallback.
func ParseSymbolType(keyword string) SymbolType {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	switch keyword {
	case "":
		return Unspecified
	case "upper-latin":
		return UpperAlpha
	case "lower-latin":
		return LowerAlpha
	}
	for sym, kw := range symbolKeywords {
		if kw == keyword {
			return SymbolType(sym)
		}
	}
	return NumericFallback
}

// Format renders a counter value according to a symbol type.
func (sym SymbolType) Format(value int64) string {
	switch sym {
	case None:
		return ""
	case Disc:
		return DiscSymbol
	case Circle:
		return CircleSymbol
	case Square:
		return SquareSymbol
	case Unspecified, Decimal, NumericFallback:
		return numbering.Decimal(value)
	case DecimalLeadingZero:
		return numbering.DecimalLeadingZero(value)
	case UpperAlpha:
		return numbering.UpperAlpha(value)
	case LowerAlpha:
		return numbering.LowerAlpha(value)
	case UpperRoman:
		if value > numbering.MaxRoman {
			return numbering.Decimal(value)
		}
		return numbering.UpperRoman(value)
	case LowerRoman:
		if value > numbering.MaxRoman {
			return numbering.Decimal(value)
		}
		return numbering.LowerRoman(value)
	case LowerGreek:
		return numbering.LowerGreek(value)
	case Georgian:
		return numbering.Georgian(value)
	case Armenian:
		return numbering.Armenian(value)
	}
	return numbering.Decimal(value)
}

package css

import (
	"fmt"
	"strings"

	"github.com/npillmayer/counters"
	"github.com/npillmayer/counters/dom/style"
)

// CounterDirective is a single entry of property 'counter-reset',
// 'counter-set' or 'counter-increment', e.g. "chapter 2".
type CounterDirective struct {
	Name  string
	Value int64
}

func (cd CounterDirective) String() string {
	return fmt.Sprintf("%s %d", cd.Name, cd.Value)
}

// ParseCounterDirectives parses the value of a counter property:
//
//     [ <counter-name> <integer>? ]+ | none
//
// Entries without an integer get defaultValue, which is
// counters.DefaultResetValue for resets and counters.DefaultIncrementValue
// for increments. An empty value and "none" result in no directives.
func ParseCounterDirectives(p style.Property, defaultValue int64) ([]CounterDirective, error) {
	if p.IsEmpty() || isKeyword(p, "none") {
		return nil, nil
	}
	var directives []CounterDirective
	ts := tokenize(string(p))
	for !ts.atEnd() {
		name, err := ts.expectIdent()
		if err != nil {
			return nil, fmt.Errorf("counter directive %q: %w", p, err)
		}
		if isReservedCounterName(name) {
			return nil, fmt.Errorf("counter directive %q: %q is not a valid counter name", p, name)
		}
		cd := CounterDirective{Name: name, Value: defaultValue}
		if ts.isInteger() {
			if cd.Value, err = ts.integer(); err != nil {
				return nil, fmt.Errorf("counter directive %q: %w", p, err)
			}
		}
		directives = append(directives, cd)
	}
	tracer().Debugf("counter directives %q = %v", p, directives)
	return directives, nil
}

// ParseListStyleType returns the symbol type for a value of property
// 'list-style-type'. Unknown keywords map to counters.NumericFallback.
func ParseListStyleType(p style.Property) counters.SymbolType {
	return counters.ParseSymbolType(string(p))
}

func isKeyword(p style.Property, kw string) bool {
	return strings.EqualFold(strings.TrimSpace(string(p)), kw)
}

func isReservedCounterName(name string) bool {
	switch strings.ToLower(name) {
	case "none", "initial", "inherit", "unset", "default":
		return true
	}
	return false
}

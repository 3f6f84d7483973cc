package counters

import (
	"strings"

	"github.com/npillmayer/counters/maybe"
)

// Counter implements CSS function counter(name, style): it resolves the
// counter as seen from node scope and formats its value. If no node in scope
// owns the counter, Nothing is returned.
func (s *Store[N]) Counter(name string, symbol SymbolType, scope N) maybe.Maybe[string] {
	owner, found := s.findOwner(name, scope)
	if !found {
		return maybe.Nothing[string]()
	}
	value, ok := s.scopes[owner][name]
	if !ok {
		return maybe.Nothing[string]()
	}
	return maybe.Just(symbol.Format(value))
}

// Counters implements CSS function counters(name, separator, style): it
// concatenates the values of all nested instances of a counter in scope of
// node scope, outermost first, joined by separator.
//
// After finding an owner, the search continues at the owner's parent. The
// chain ends with the first search not finding an owner, even if an outer
// ancestor would own the counter. If no owner is found at all, Nothing is
// returned.
func (s *Store[N]) Counters(name, separator string, symbol SymbolType, scope N) maybe.Maybe[string] {
	var resolved []string
	current, more := scope, true
	for more {
		owner, found := s.findOwner(name, current)
		if !found {
			break
		}
		var value string
		switch m := s.Counter(name, symbol, owner).Match(); m {
		case m.Just(&value):
			resolved = append(resolved, value)
		case m.Nothing():
		}
		current, more = s.nav.Parent(owner)
	}
	if len(resolved) == 0 {
		return maybe.Nothing[string]()
	}
	var b strings.Builder
	for i := len(resolved) - 1; i >= 0; i-- {
		b.WriteString(resolved[i])
		if i > 0 {
			b.WriteString(separator)
		}
	}
	return maybe.Just(b.String())
}

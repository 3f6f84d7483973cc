package counters

import (
	"math"
)

// Navigator is the view of the document tree a Store relies upon.
// Nodes are identified by Go equality on N.
type Navigator[N comparable] interface {
	Parent(N) (N, bool) // parent of a node, false for the root
	Children(N) []N     // children of a node in document order
}

// Default values for resets and increments, if not given explicitly.
const (
	DefaultResetValue     int64 = 0
	DefaultIncrementValue int64 = 1
)

// Scope holds the counters owned by a single node.
type Scope map[string]int64

// Store manages counters for the nodes of a document.
//
// A node owns a counter if it has been the target of a reset, either directly
// or implicitly by an increment not finding any owner. Ownership is never
// inherited. Entries are never removed; a Store is meant to be dropped after
// a document has been processed.
type Store[N comparable] struct {
	nav    Navigator[N]
	scopes map[N]Scope
	owners map[string]int // number of owners per counter name
}

// NewStore creates an empty counter store for a document accessible through nav.
func NewStore[N comparable](nav Navigator[N]) *Store[N] {
	if nav == nil {
		panic("counters: store needs a navigator")
	}
	return &Store[N]{
		nav:    nav,
		scopes: make(map[N]Scope),
		owners: make(map[string]int),
	}
}

// Reset resets counter name at node scope to 0. The node becomes (or stays)
// the owner of the counter.
func (s *Store[N]) Reset(name string, scope N) {
	s.ResetTo(name, DefaultResetValue, scope)
}

// ResetTo sets counter name at node scope to value. No search is performed;
// the node becomes (or stays) the owner of the counter.
func (s *Store[N]) ResetTo(name string, value int64, scope N) {
	sc, ok := s.scopes[scope]
	if !ok {
		sc = make(Scope)
		s.scopes[scope] = sc
	}
	if _, owned := sc[name]; !owned {
		s.owners[name]++
	}
	sc[name] = value
	tracer().P("counter", name).Debugf("reset to %d at %v", value, scope)
}

// Increment increments counter name by 1. See IncrementBy.
func (s *Store[N]) Increment(name string, scope N) {
	s.IncrementBy(name, DefaultIncrementValue, scope)
}

// IncrementBy adds delta to the value of counter name, as seen from node
// scope. If no owner of the counter is in scope, the counter is reset to 0
// at scope before the increment is applied, as CSS requires.
//
// Values saturate at the bounds of int64.
func (s *Store[N]) IncrementBy(name string, delta int64, scope N) {
	owner, found := s.findOwner(name, scope)
	if !found {
		tracer().P("counter", name).Debugf("no counter in scope of %v, implicit reset", scope)
		s.ResetTo(name, DefaultResetValue, scope)
		owner = scope
	}
	sc := s.scopes[owner]
	sc[name] = saturatingAdd(sc[name], delta)
	tracer().P("counter", name).Debugf("incremented by %d to %d at %v", delta, sc[name], owner)
}

// Set sets the value of counter name, as seen from node scope, as CSS
// property 'counter-set' does. If no owner of the counter is in scope, the
// counter is instantiated at scope.
func (s *Store[N]) Set(name string, value int64, scope N) {
	owner, found := s.findOwner(name, scope)
	if !found {
		s.ResetTo(name, value, scope)
		return
	}
	s.scopes[owner][name] = value
	tracer().P("counter", name).Debugf("set to %d at %v", value, owner)
}

// Owner returns the node owning counter name, as seen from node scope.
func (s *Store[N]) Owner(name string, scope N) (N, bool) {
	return s.findOwner(name, scope)
}

// Value returns the current value of counter name, as seen from node scope.
func (s *Store[N]) Value(name string, scope N) (int64, bool) {
	owner, found := s.findOwner(name, scope)
	if !found {
		return 0, false
	}
	v, ok := s.scopes[owner][name]
	return v, ok
}

// Owns is a predicate: does node own counter name?
func (s *Store[N]) Owns(node N, name string) bool {
	if sc, ok := s.scopes[node]; ok {
		_, owned := sc[name]
		return owned
	}
	return false
}

// Scope returns a copy of the counters owned by node, or nil.
func (s *Store[N]) Scope(node N) Scope {
	sc, ok := s.scopes[node]
	if !ok {
		return nil
	}
	c := make(Scope, len(sc))
	for k, v := range sc {
		c[k] = v
	}
	return c
}

func saturatingAdd(a, b int64) int64 {
	c := a + b
	if (c > a) == (b > 0) {
		return c
	}
	if b > 0 {
		return math.MaxInt64
	}
	return math.MinInt64
}

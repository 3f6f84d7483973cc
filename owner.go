package counters

// findOwner searches the node owning counter name, starting at scope.
//
// As long as the current node does not own the counter, its preceding
// siblings are checked, nearest first. The first sibling owning the counter
// becomes the current node. If no sibling owns it, the search moves up to the
// parent. Following siblings and descendents are never considered.
func (s *Store[N]) findOwner(name string, scope N) (N, bool) {
	var none N
	if s.owners[name] == 0 {
		return none, false // nobody owns this counter
	}
	for !s.Owns(scope, name) {
		parent, ok := s.nav.Parent(scope)
		if !ok {
			return none, false
		}
		if sibling, found := s.precedingOwner(name, parent, scope); found {
			scope = sibling
		} else {
			scope = parent
		}
	}
	return scope, true
}

// precedingOwner checks the siblings preceding node within parent, from the
// nearest one backwards to the first child.
func (s *Store[N]) precedingOwner(name string, parent, node N) (N, bool) {
	siblings := s.nav.Children(parent)
	at := -1
	for i, sibling := range siblings {
		if sibling == node {
			at = i
			break
		}
	}
	for i := at - 1; i >= 0; i-- {
		if s.Owns(siblings[i], name) {
			return siblings[i], true
		}
	}
	var none N
	return none, false
}

package counters

import (
	"github.com/npillmayer/counters/tree"
)

// TreeNavigator lets a Store operate on trees of package tree.
type TreeNavigator[T comparable] struct{}

// Parent is part of interface Navigator.
func (TreeNavigator[T]) Parent(n *tree.Node[T]) (*tree.Node[T], bool) {
	p := n.Parent()
	return p, p != nil
}

// Children is part of interface Navigator.
func (TreeNavigator[T]) Children(n *tree.Node[T]) []*tree.Node[T] {
	return n.Children()
}

var _ Navigator[*tree.Node[int]] = TreeNavigator[int]{}

// NewTreeStore creates a counter store for a tree of package tree.
func NewTreeStore[T comparable]() *Store[*tree.Node[T]] {
	return NewStore[*tree.Node[T]](TreeNavigator[T]{})
}

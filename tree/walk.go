package tree

import (
	"errors"
)

// ErrEmptyTree is returned if Walk is called for an empty tree.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// SkipChildren may be returned by an enter-visitor to prune the sub-tree
// below the current node. Walk will not report it as an error, and the
// leave-visitor is still called for the node.
var SkipChildren = errors.New("skip children of this node")

// Visitor is a function type to operate on tree nodes during a walk.
// depth is the distance of n from the start node of the walk.
type Visitor[T comparable] func(n *Node[T], depth int) error

// Walk traverses the (sub-)tree starting at root in document order.
// enter is called for a node before any of its descendents, leave is called
// after all of its descendents have been visited. Either may be nil.
//
// If a visitor returns an error other than SkipChildren, the walk stops and
// the error is returned.
//
// Children added or removed during a walk will affect the walk only for
// parents not yet entered.
func Walk[T comparable](root *Node[T], enter, leave Visitor[T]) error {
	if root == nil {
		return ErrEmptyTree
	}
	tracer().Debugf("walking tree in document order, root = %v", root)
	return walk(root, 0, enter, leave)
}

func walk[T comparable](n *Node[T], depth int, enter, leave Visitor[T]) error {
	descend := true
	if enter != nil {
		if err := enter(n, depth); err != nil {
			if !errors.Is(err, SkipChildren) {
				return err
			}
			descend = false
		}
	}
	if descend {
		for _, ch := range n.Children() {
			if err := walk(ch, depth+1, enter, leave); err != nil {
				return err
			}
		}
	}
	if leave != nil {
		if err := leave(n, depth); err != nil && !errors.Is(err, SkipChildren) {
			return err
		}
	}
	return nil
}

// DocumentOrder returns all nodes of the (sub-)tree starting at root,
// in document order.
func DocumentOrder[T comparable](root *Node[T]) []*Node[T] {
	var nodes []*Node[T]
	_ = Walk(root, func(n *Node[T], _ int) error {
		nodes = append(nodes, n)
		return nil
	}, nil)
	return nodes
}

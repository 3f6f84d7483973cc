/*
Package idtree implements an arena-allocated tree with stable integer node ids.

Nodes are created once and never removed, so a NodeID is a stable identity
for the lifetime of a Tree. This makes node ids suitable keys for side
tables, e.g. a counters.Store[idtree.NodeID].

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package idtree

import "fmt"

// NodeID identifies a node of a Tree.
type NodeID int32

// NoNode is the id of a non-existent node, e.g. the parent of the root.
const NoNode NodeID = -1

type node struct {
	parent   NodeID
	children []NodeID
	label    string
}

// Tree is an arena of nodes. The zero value is not usable, use New().
type Tree struct {
	nodes []node
}

// New creates a tree with a single root node.
func New(rootLabel string) *Tree {
	return &Tree{nodes: []node{{parent: NoNode, label: rootLabel}}}
}

// Root returns the id of the root node.
func (t *Tree) Root() NodeID {
	return 0
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Add appends a new node as the last child of parent and returns its id.
// It panics if parent is not a node of t.
func (t *Tree) Add(parent NodeID, label string) NodeID {
	if !t.valid(parent) {
		panic(fmt.Sprintf("idtree: cannot add child to invalid node %d", parent))
	}
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{parent: parent, label: label})
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id
}

// Parent returns the parent of a node. It returns false for the root
// and for invalid ids.
func (t *Tree) Parent(id NodeID) (NodeID, bool) {
	if !t.valid(id) || t.nodes[id].parent == NoNode {
		return NoNode, false
	}
	return t.nodes[id].parent, true
}

// Children returns the children of a node in document order.
// Clients must not modify the returned slice.
func (t *Tree) Children(id NodeID) []NodeID {
	if !t.valid(id) {
		return nil
	}
	return t.nodes[id].children
}

// Label returns the label of a node.
func (t *Tree) Label(id NodeID) string {
	if !t.valid(id) {
		return ""
	}
	return t.nodes[id].label
}

// Find returns the first node in document order carrying label.
func (t *Tree) Find(label string) (NodeID, bool) {
	var found NodeID = NoNode
	t.walk(t.Root(), func(id NodeID) bool {
		if t.nodes[id].label == label {
			found = id
			return false
		}
		return true
	})
	return found, found != NoNode
}

// walk visits nodes in document order until visit returns false.
func (t *Tree) walk(id NodeID, visit func(NodeID) bool) bool {
	if !visit(id) {
		return false
	}
	for _, ch := range t.nodes[id].children {
		if !t.walk(ch, visit) {
			return false
		}
	}
	return true
}

func (t *Tree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

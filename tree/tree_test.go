package tree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func buildTestTree() (*Node[string], map[string]*Node[string]) {
	nodes := make(map[string]*Node[string])
	mk := func(name string) *Node[string] {
		n := NewNode(name)
		nodes[name] = n
		return n
	}
	root := mk("root")
	a, b, c := mk("a"), mk("b"), mk("c")
	root.AddChild(a).AddChild(b).AddChild(c)
	a.AddChild(mk("a1")).AddChild(mk("a2"))
	b.AddChild(mk("b1"))
	return root, nodes
}

func TestNodeChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "counters.tree")
	defer teardown()
	//
	root, nodes := buildTestTree()
	if root.ChildCount() != 3 {
		t.Fatalf("expected root to have 3 children, has %d", root.ChildCount())
	}
	if nodes["a1"].Parent() != nodes["a"] {
		t.Errorf("expected parent of a1 to be a, is %v", nodes["a1"].Parent())
	}
	if i := root.IndexOfChild(nodes["c"]); i != 2 {
		t.Errorf("expected c to be at position 2, is at %d", i)
	}
	if i := root.IndexOfChild(nodes["a1"]); i != -1 {
		t.Errorf("expected a1 not to be a child of root, is at %d", i)
	}
	if ch, ok := root.Child(3); ok || ch != nil {
		t.Errorf("expected no child at position 3, have %v", ch)
	}
}

func TestNodeIsolateAndInsert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "counters.tree")
	defer teardown()
	//
	root, nodes := buildTestTree()
	nodes["b"].Isolate()
	if root.ChildCount() != 2 || nodes["b"].Parent() != nil {
		t.Fatalf("expected b to be detached, root has %d children", root.ChildCount())
	}
	if i := root.IndexOfChild(nodes["c"]); i != 1 {
		t.Errorf("expected c to move up to position 1, is at %d", i)
	}
	root.InsertChildAt(0, nodes["b"])
	if ch, _ := root.Child(0); ch != nodes["b"] {
		t.Errorf("expected b to be the first child, is %v", ch)
	}
	// moving a node between parents detaches it from the old one
	nodes["c"].AddChild(nodes["a1"])
	if nodes["a"].ChildCount() != 1 || nodes["a1"].Parent() != nodes["c"] {
		t.Errorf("expected a1 to be moved to c")
	}
}

func TestWalkDocumentOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "counters.tree")
	defer teardown()
	//
	root, _ := buildTestTree()
	var entered, left []string
	err := Walk(root, func(n *Node[string], depth int) error {
		entered = append(entered, n.Payload)
		return nil
	}, func(n *Node[string], depth int) error {
		left = append(left, n.Payload)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	expectSequence(t, "enter", entered, "root", "a", "a1", "a2", "b", "b1", "c")
	expectSequence(t, "leave", left, "a1", "a2", "a", "b1", "b", "c", "root")
}

func TestWalkSkipAndAbort(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "counters.tree")
	defer teardown()
	//
	root, _ := buildTestTree()
	var entered []string
	err := Walk(root, func(n *Node[string], depth int) error {
		entered = append(entered, n.Payload)
		if n.Payload == "a" {
			return SkipChildren
		}
		return nil
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	expectSequence(t, "enter", entered, "root", "a", "b", "b1", "c")
	//
	boom := errors.New("boom")
	err = Walk(root, func(n *Node[string], depth int) error {
		if n.Payload == "b1" {
			return boom
		}
		return nil
	}, nil)
	if !errors.Is(err, boom) {
		t.Errorf("expected walk to be aborted with error, got %v", err)
	}
	if err = Walk[string](nil, nil, nil); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("expected ErrEmptyTree for nil root, got %v", err)
	}
}

func TestDocumentOrder(t *testing.T) {
	root, nodes := buildTestTree()
	all := DocumentOrder(nodes["a"])
	if len(all) != 3 || all[0] != nodes["a"] || all[2] != nodes["a2"] {
		t.Errorf("expected sub-tree a to have nodes [a a1 a2], has %v", all)
	}
	if len(DocumentOrder(root)) != 7 {
		t.Errorf("expected 7 nodes in tree")
	}
}

func expectSequence(t *testing.T, what string, have []string, want ...string) {
	t.Helper()
	if len(have) != len(want) {
		t.Fatalf("%s: expected %v, have %v", what, want, have)
	}
	for i := range want {
		if have[i] != want[i] {
			t.Errorf("%s: expected %v, have %v", what, want, have)
			return
		}
	}
}

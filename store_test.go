package counters

import (
	"math"
	"testing"

	"github.com/npillmayer/counters/idtree"
	"github.com/npillmayer/counters/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestStoreChapterScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "counters")
	defer teardown()
	//
	doc := idtree.New("root")
	child1 := doc.Add(doc.Root(), "child1")
	child2 := doc.Add(doc.Root(), "child2")
	s := NewStore[idtree.NodeID](doc)
	s.Reset("chapter", doc.Root())
	s.Increment("chapter", child1)
	s.Increment("chapter", child2)
	if s.Owns(child1, "chapter") || s.Owns(child2, "chapter") {
		t.Errorf("expected neither child to own counter 'chapter'")
	}
	if v, ok := s.Value("chapter", doc.Root()); !ok || v != 2 {
		t.Errorf("expected root's chapter value to be 2, is %d", v)
	}
	if c := s.Counter("chapter", Decimal, child2).WithDefault("?"); c != "2" {
		t.Errorf("expected counter(chapter) at child2 to be '2', is '%s'", c)
	}
}

func TestStoreSiblingTieBreak(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "counters")
	defer teardown()
	//
	doc := idtree.New("root")
	s1 := doc.Add(doc.Root(), "S1")
	s2 := doc.Add(doc.Root(), "S2")
	s3 := doc.Add(doc.Root(), "S3")
	inner := doc.Add(s2, "inner")
	s := NewStore[idtree.NodeID](doc)
	s.ResetTo("c", 1, s1)
	s.ResetTo("c", 3, s3)
	owner, ok := s.Owner("c", inner)
	if !ok || owner != s1 {
		t.Errorf("expected owner of c for child of S2 to be S1, is %d", owner)
	}
	if v, _ := s.Value("c", inner); v != 1 {
		t.Errorf("expected value 1 (from S1), is %d", v)
	}
}

func TestStoreNearestPrecedingSibling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "counters")
	defer teardown()
	//
	doc := idtree.New("root")
	a := doc.Add(doc.Root(), "a")
	b := doc.Add(doc.Root(), "b")
	c := doc.Add(doc.Root(), "c")
	s := NewStore[idtree.NodeID](doc)
	s.ResetTo("x", 10, a)
	s.ResetTo("x", 20, b)
	owner, ok := s.Owner("x", c)
	assert.True(t, ok)
	assert.Equal(t, b, owner, "nearest preceding sibling must win")
	_, ok = s.Owner("x", doc.Root())
	assert.False(t, ok, "following descendants must not be found from root")
}

func TestStoreImplicitReset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "counters")
	defer teardown()
	//
	doc := idtree.New("root")
	n := doc.Add(doc.Root(), "n")
	s := NewStore[idtree.NodeID](doc)
	if !s.Counter("item", Decimal, n).IsNothing() {
		t.Errorf("expected counter 'item' to be unresolved before any mutation")
	}
	s.Increment("item", n)
	if !s.Owns(n, "item") {
		t.Fatalf("expected n to own 'item' after implicit reset")
	}
	if v, _ := s.Value("item", n); v != DefaultIncrementValue {
		t.Errorf("expected value %d after implicit reset, is %d", DefaultIncrementValue, v)
	}
	s.IncrementBy("other", 5, n)
	if v, _ := s.Value("other", n); v != 5 {
		t.Errorf("expected value 5 after implicit reset with delta, is %d", v)
	}
}

func TestStoreSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "counters")
	defer teardown()
	//
	doc := idtree.New("root")
	a := doc.Add(doc.Root(), "a")
	s := NewStore[idtree.NodeID](doc)
	s.Set("c", 5, a)
	assert.True(t, s.Owns(a, "c"), "set without owner instantiates the counter")
	s.Reset("d", doc.Root())
	s.Set("d", 9, a)
	assert.False(t, s.Owns(a, "d"), "set must not create a new owner if one is in scope")
	v, _ := s.Value("d", doc.Root())
	assert.Equal(t, int64(9), v)
}

func TestStoreResetIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "counters")
	defer teardown()
	//
	doc := idtree.New("root")
	s := NewStore[idtree.NodeID](doc)
	s.ResetTo("c", 7, doc.Root())
	s.ResetTo("c", 7, doc.Root())
	assert.Equal(t, Scope{"c": 7}, s.Scope(doc.Root()))
	s.Reset("c", doc.Root())
	v, _ := s.Value("c", doc.Root())
	assert.Equal(t, int64(0), v)
	assert.Nil(t, s.Scope(idtree.NodeID(99)))
}

func TestStoreSaturation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "counters")
	defer teardown()
	//
	doc := idtree.New("root")
	s := NewStore[idtree.NodeID](doc)
	s.ResetTo("big", math.MaxInt64-1, doc.Root())
	s.IncrementBy("big", 10, doc.Root())
	v, _ := s.Value("big", doc.Root())
	assert.Equal(t, int64(math.MaxInt64), v)
	s.ResetTo("small", math.MinInt64+1, doc.Root())
	s.IncrementBy("small", -10, doc.Root())
	v, _ = s.Value("small", doc.Root())
	assert.Equal(t, int64(math.MinInt64), v)
}

func TestStoreOnPointerTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "counters")
	defer teardown()
	//
	root := tree.NewNode("ol")
	li1 := tree.NewNode("li")
	li2 := tree.NewNode("li")
	root.AddChild(li1).AddChild(li2)
	s := NewTreeStore[string]()
	s.Reset("list-item", root)
	s.Increment("list-item", li1)
	s.Increment("list-item", li2)
	owner, ok := s.Owner("list-item", li2)
	assert.True(t, ok)
	assert.Same(t, root, owner)
	assert.Equal(t, "ii", s.Counter("list-item", LowerRoman, li2).WithDefault(""))
	_, ok = s.Owner("list-item", nil)
	assert.False(t, ok, "nil node must not be found")
}

func TestNewStoreWithoutNavigator(t *testing.T) {
	assert.Panics(t, func() { NewStore[int](nil) })
}

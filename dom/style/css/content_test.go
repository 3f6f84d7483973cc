package css

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/counters"
	"github.com/npillmayer/counters/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "counters.css")
	defer teardown()
	//
	cases := []struct {
		value  style.Property
		expect []ContentItem
	}{
		{"normal", nil},
		{"none", nil},
		{`"Chapter "`, []ContentItem{Literal("Chapter ")}},
		{`'it''s'`, []ContentItem{Literal("it"), Literal("s")}},
		{`"\"q\" \2022 x"`, []ContentItem{Literal(`"q" •x`)}},
		{`counter(chapter)`, []ContentItem{Counter("chapter", counters.Decimal)}},
		{`"§" counter( chapter , upper-roman ) ". "`, []ContentItem{
			Literal("§"), Counter("chapter", counters.UpperRoman), Literal(". "),
		}},
		{`counters(item, ".")`, []ContentItem{Counters("item", ".", counters.Decimal)}},
		{`counters(item, "-", lower-alpha) ")"`, []ContentItem{
			Counters("item", "-", counters.LowerAlpha), Literal(")"),
		}},
	}
	for _, c := range cases {
		items, err := ParseContent(c.value)
		if err != nil {
			t.Errorf("unexpected error for %q: %v", c.value, err)
			continue
		}
		if diff := cmp.Diff(c.expect, items, cmp.AllowUnexported(ContentItem{})); diff != "" {
			t.Errorf("content %q mismatch (-want +got):\n%s", c.value, diff)
		}
	}
}

func TestParseContentErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "counters.css")
	defer teardown()
	//
	for _, v := range []style.Property{
		`counter()`, `counter(a b)`, `counters(a)`, `counters(a, b)`,
		`counter(a`, `attr(title)`, `"unclosed`, `open-quote`,
	} {
		if _, err := ParseContent(v); err == nil {
			t.Errorf("expected error for %q, got none", v)
		}
	}
}

func TestContentMatch(t *testing.T) {
	items := []ContentItem{Literal("x"), Counter("c", counters.Decimal), Counters("c", ".", counters.Decimal)}
	var kinds []string
	for _, item := range items {
		var text string
		var ref CounterRef
		switch m := item.Match(); m {
		case m.Literal(&text):
			kinds = append(kinds, "literal:"+text)
		case m.Counter(&ref):
			kinds = append(kinds, "counter:"+ref.Name)
		case m.Counters(&ref):
			kinds = append(kinds, "counters:"+ref.Separator)
		}
	}
	expect := []string{"literal:x", "counter:c", "counters:."}
	if diff := cmp.Diff(expect, kinds); diff != "" {
		t.Errorf("match mismatch (-want +got):\n%s", diff)
	}
}

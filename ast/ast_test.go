package ast

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestKindClassification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmark.ast")
	defer teardown()
	//
	assert.True(t, NewParagraph().IsBlock())
	assert.True(t, NewThematicBreak().IsBlock())
	assert.True(t, NewText("x").IsInline())
	assert.True(t, NewHardBreak().IsLeaf())
	assert.False(t, NewEmphasis().IsLeaf())
	assert.False(t, NewText("x").IsBlock())
}

func TestHeadingLevelClamped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmark.ast")
	defer teardown()
	//
	if h := NewHeading(0); h.Level != 1 {
		t.Errorf("(1) expected level 0 to clamp to 1, got %d", h.Level)
	}
	if h := NewHeading(9); h.Level != 6 {
		t.Errorf("(2) expected level 9 to clamp to 6, got %d", h.Level)
	}
	if h := NewHeading(3); h.Level != 3 {
		t.Errorf("(3) expected level 3 to stay 3, got %d", h.Level)
	}
}

func TestOrderedListStartClamped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmark.ast")
	defer teardown()
	//
	if l := NewOrderedList(0); l.Start != 1 {
		t.Errorf("expected start 0 to clamp to 1, got %d", l.Start)
	}
	if l := NewOrderedList(7); l.Start != 7 {
		t.Errorf("expected start 7 to stay 7, got %d", l.Start)
	}
}

func TestAppendToLeafIsDropped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmark.ast")
	defer teardown()
	//
	leaf := NewCode("x")
	leaf.AppendChild(NewText("nope"))
	assert.Empty(t, leaf.Children, "leaf kinds must never carry children")
}

func TestAutolinkEchoesDestination(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmark.ast")
	defer teardown()
	//
	a := NewAutolink("https://example.com")
	assert.Len(t, a.Children, 1)
	assert.Equal(t, Text, a.Children[0].Kind)
	assert.Equal(t, "https://example.com", a.Children[0].Literal)
}

func TestStats(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmark.ast")
	defer teardown()
	//
	doc := NewDocument()
	h := NewHeading(1).AppendChild(NewText("T"))
	p := NewParagraph().AppendChild(NewText("a")).AppendChild(NewText("b"))
	doc.AppendChild(h).AppendChild(p)
	counts := Stats(doc)
	assert.Equal(t, 1, counts[Document])
	assert.Equal(t, 1, counts[Heading])
	assert.Equal(t, 1, counts[Paragraph])
	assert.Equal(t, 3, counts[Text])
	assert.Equal(t, 6, Count(doc))
	t.Logf("tree dump:\n%s", Dump(doc))
}

package block

import (
	"strings"
	"testing"

	"github.com/npillmayer/commonmark/ast"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestSegmentHeadings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmark.block")
	defer teardown()
	//
	for level := 1; level <= 6; level++ {
		line := strings.Repeat("#", level) + " T"
		blocks := Segment([]string{line})
		if len(blocks) != 1 {
			t.Fatalf("(%d) expected 1 block, got %d", level, len(blocks))
		}
		h := blocks[0]
		assert.Equal(t, ast.Heading, h.Kind)
		assert.Equal(t, level, h.Level)
		assert.Equal(t, "T", h.Children[0].Literal)
	}
}

func TestSegmentSevenHashesIsParagraph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmark.block")
	defer teardown()
	//
	blocks := Segment([]string{"####### too deep"})
	if len(blocks) != 1 || blocks[0].Kind != ast.Paragraph {
		t.Fatalf("expected a paragraph, got %v", blocks)
	}
}

func TestSegmentThematicBreakBeatsListItem(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmark.block")
	defer teardown()
	//
	blocks := Segment([]string{"- - -"})
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	assert.Equal(t, ast.ThematicBreak, blocks[0].Kind)
	//
	blocks = Segment([]string{"***"})
	assert.Equal(t, ast.ThematicBreak, blocks[0].Kind)
}

func TestSegmentFencedCode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmark.block")
	defer teardown()
	//
	blocks := Segment([]string{"```go", "x := 1", "y := 2", "```"})
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	cb := blocks[0]
	assert.Equal(t, ast.CodeBlock, cb.Kind)
	assert.Equal(t, "go", cb.Info)
	assert.Equal(t, "x := 1\ny := 2", cb.Literal)
}

func TestSegmentFenceShieldsBlockSyntax(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmark.block")
	defer teardown()
	//
	blocks := Segment([]string{"```", "# not a heading", "- not a list", "```"})
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	assert.Equal(t, ast.CodeBlock, blocks[0].Kind)
	assert.Equal(t, "# not a heading\n- not a list", blocks[0].Literal)
}

func TestSegmentUnterminatedFence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmark.block")
	defer teardown()
	//
	blocks := Segment([]string{"```", "dangling"})
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	assert.Equal(t, ast.CodeBlock, blocks[0].Kind)
	assert.Equal(t, "dangling", blocks[0].Literal)
	assert.Equal(t, "", blocks[0].Info)
}

func TestSegmentBlockquoteJoinsLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmark.block")
	defer teardown()
	//
	blocks := Segment([]string{"> first line", ">second line", "> "})
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	bq := blocks[0]
	assert.Equal(t, ast.Blockquote, bq.Kind)
	if len(bq.Children) != 1 || bq.Children[0].Kind != ast.Paragraph {
		t.Fatalf("expected exactly one paragraph inside blockquote")
	}
	assert.Equal(t, "first line second line ", bq.Children[0].Children[0].Literal)
}

func TestSegmentPlainLineEndsBlockquote(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmark.block")
	defer teardown()
	//
	blocks := Segment([]string{"> quoted", "plain"})
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	assert.Equal(t, ast.Blockquote, blocks[0].Kind)
	assert.Equal(t, ast.Paragraph, blocks[1].Kind)
}

func TestSegmentBlankSplitsParagraphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmark.block")
	defer teardown()
	//
	blocks := Segment([]string{"one", "", "two"})
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	assert.Equal(t, ast.Paragraph, blocks[0].Kind)
	assert.Equal(t, ast.Paragraph, blocks[1].Kind)
}

func TestSegmentDegradesToParagraph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmark.block")
	defer teardown()
	//
	blocks := Segment([]string{"no structure here at all"})
	if len(blocks) != 1 || blocks[0].Kind != ast.Paragraph {
		t.Fatalf("expected a single paragraph, got %v", blocks)
	}
}

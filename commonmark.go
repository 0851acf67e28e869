package commonmark

import (
	"strings"

	"github.com/npillmayer/commonmark/ast"
	"github.com/npillmayer/commonmark/block"
	"github.com/npillmayer/commonmark/htmlrender"
)

// Parse builds the document tree for a markdown text. It is deterministic
// and total: repeated calls on identical input yield identical trees, and
// inputs without recognizable structure degrade to a single paragraph of
// raw text.
func Parse(text string) *ast.Node {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	tracer().Debugf("parse: %d input line(s)", len(lines))
	doc := ast.NewDocument()
	for _, b := range block.Segment(lines) {
		doc.AppendChild(b)
	}
	return doc
}

// Render produces the HTML for a document tree built by Parse.
func Render(doc *ast.Node) string {
	return htmlrender.Render(doc)
}

// ToHTML is the Parse/Render composition for callers which only need the
// resulting HTML blob.
func ToHTML(text string) string {
	return Render(Parse(text))
}

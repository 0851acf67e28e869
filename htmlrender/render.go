package htmlrender

import (
	"fmt"
	"strings"

	"github.com/npillmayer/commonmark/ast"
	"github.com/npillmayer/cords"
)

// Render produces the HTML for a document tree. It is a total function over
// trees built by the parser: unknown content degrades to empty output, it
// never fails.
func Render(doc *ast.Node) string {
	if doc == nil {
		return ""
	}
	b := cords.NewBuilder()
	renderNode(doc, b)
	return materialize(b.Cord())
}

// materialize flattens the output cord into a contiguous string.
func materialize(c cords.Cord) string {
	var sb strings.Builder
	c.EachLeaf(func(l cords.Leaf, pos uint64) error {
		sb.WriteString(l.String())
		return nil
	})
	return sb.String()
}

func emit(b *cords.Builder, s string) {
	if s == "" {
		return
	}
	b.Append(fragment(s))
}

func renderChildren(n *ast.Node, b *cords.Builder) {
	for _, c := range n.Children {
		renderNode(c, b)
	}
}

func renderNode(n *ast.Node, b *cords.Builder) {
	switch n.Kind {
	case ast.Document:
		for i, c := range n.Children {
			if i > 0 {
				emit(b, "\n")
			}
			renderNode(c, b)
		}
	case ast.Paragraph:
		emit(b, "<p>")
		renderChildren(n, b)
		emit(b, "</p>")
	case ast.Heading:
		emit(b, fmt.Sprintf("<h%d>", n.Level))
		renderChildren(n, b)
		emit(b, fmt.Sprintf("</h%d>", n.Level))
	case ast.Blockquote:
		emit(b, "<blockquote>")
		renderChildren(n, b)
		emit(b, "</blockquote>")
	case ast.CodeBlock:
		if n.Info != "" {
			emit(b, `<pre><code class="language-`+n.Info+`">`)
		} else {
			emit(b, "<pre><code>")
		}
		emit(b, n.Literal)
		emit(b, "</code></pre>")
	case ast.BulletList:
		emit(b, "<ul>")
		renderChildren(n, b)
		emit(b, "</ul>")
	case ast.OrderedList:
		if n.Start != 1 {
			emit(b, fmt.Sprintf(`<ol start="%d">`, n.Start))
		} else {
			emit(b, "<ol>")
		}
		renderChildren(n, b)
		emit(b, "</ol>")
	case ast.ListItem:
		emit(b, "<li>")
		renderChildren(n, b)
		emit(b, "</li>")
	case ast.ThematicBreak:
		emit(b, "<hr />")
	case ast.Text:
		emit(b, n.Literal) // deliberately unescaped
	case ast.Emphasis:
		emit(b, "<em>")
		renderChildren(n, b)
		emit(b, "</em>")
	case ast.Strong:
		emit(b, "<strong>")
		renderChildren(n, b)
		emit(b, "</strong>")
	case ast.Code:
		emit(b, "<code>")
		emit(b, n.Literal)
		emit(b, "</code>")
	case ast.SoftBreak:
		emit(b, "\n")
	case ast.HardBreak:
		emit(b, "<br />")
	case ast.HTMLInline:
		emit(b, n.Literal)
	case ast.Autolink:
		emit(b, `<a href="`+n.Destination+`">`)
		emit(b, n.Destination)
		emit(b, "</a>")
	case ast.Image:
		emit(b, `<img src="`+n.Destination+`" alt="`+altText(n)+`"`)
		if n.Title != "" {
			emit(b, ` title="`+n.Title+`"`)
		}
		emit(b, " />")
	case ast.Link:
		emit(b, `<a href="`+n.Destination+`">`)
		renderChildren(n, b)
		emit(b, "</a>")
	default:
		tracer().Errorf("render: unhandled node kind %s", n.Kind)
	}
}

// altText extracts the alt text from an image node's single text child.
func altText(img *ast.Node) string {
	if len(img.Children) == 1 && img.Children[0].Kind == ast.Text {
		return img.Children[0].Literal
	}
	return ""
}

// --- Cord leaf -------------------------------------------------------------

// fragment is the cord leaf type for rendered HTML output.
type fragment string

// Weight of a fragment is its length in bytes.
func (f fragment) Weight() uint64 {
	return uint64(len(f))
}

func (f fragment) String() string {
	return string(f)
}

// Split splits a fragment at position i, resulting in 2 new leafs.
func (f fragment) Split(i uint64) (cords.Leaf, cords.Leaf) {
	return f[:i], f[i:]
}

// Substring returns a segment of the fragment's text.
func (f fragment) Substring(i, j uint64) []byte {
	return []byte(f[i:j])
}

var _ cords.Leaf = fragment("")

package ast

// NodeKind discriminates the closed set of node types a document tree may
// contain.
type NodeKind int8

// The block-level kinds.
const (
	Document NodeKind = iota
	Paragraph
	Heading
	Blockquote
	CodeBlock
	BulletList
	OrderedList
	ListItem
	ThematicBreak
	// The inline kinds.
	Text
	Emphasis
	Strong
	Code
	SoftBreak
	HardBreak
	HTMLInline
	Autolink
	Image
	Link
)

var kindNames = [...]string{
	"Document", "Paragraph", "Heading", "Blockquote", "CodeBlock",
	"BulletList", "OrderedList", "ListItem", "ThematicBreak",
	"Text", "Emphasis", "Strong", "Code", "SoftBreak", "HardBreak",
	"HTMLInline", "Autolink", "Image", "Link",
}

func (k NodeKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "<unknown kind>"
	}
	return kindNames[k]
}

// Node is a node of a markdown document tree. Which of the fields carry
// meaning depends on Kind; the per-kind constructors are the only intended
// way to create nodes.
type Node struct {
	Kind        NodeKind
	Literal     string  // verbatim content of Text, Code, CodeBlock, HTMLInline
	Info        string  // fence info string of a CodeBlock, "" if absent
	Destination string  // target URL of Link, Image, Autolink
	Title       string  // optional title of an Image, "" if absent
	Level       int     // Heading level, 1…6
	Start       int     // first ordinal of an OrderedList, ≥ 1
	Children    []*Node // ordered; document order equals source order
}

// IsLeaf is true for node kinds which never carry children.
func (n *Node) IsLeaf() bool {
	switch n.Kind {
	case CodeBlock, ThematicBreak, Text, Code, SoftBreak, HardBreak, HTMLInline:
		return true
	}
	return false
}

// IsBlock is true for block-level node kinds (structural elements spanning
// one or more input lines).
func (n *Node) IsBlock() bool {
	return n.Kind <= ThematicBreak
}

// IsInline is true for inline node kinds (elements within a line of text).
func (n *Node) IsInline() bool {
	return n.Kind >= Text
}

// AppendChild appends a child node to n, preserving document order.
// Appending to a leaf kind is an error; it is traced and dropped.
func (n *Node) AppendChild(child *Node) *Node {
	if child == nil {
		return n
	}
	if n.IsLeaf() {
		tracer().Errorf("ast: cannot append child to leaf node %s", n.Kind)
		return n
	}
	n.Children = append(n.Children, child)
	return n
}

// --- Constructors ----------------------------------------------------------

// NewDocument creates an empty document root.
func NewDocument() *Node {
	return &Node{Kind: Document}
}

// NewParagraph creates an empty paragraph node.
func NewParagraph() *Node {
	return &Node{Kind: Paragraph}
}

// NewHeading creates a heading node. level is clamped into 1…6.
func NewHeading(level int) *Node {
	if level < 1 {
		tracer().Errorf("ast: heading level %d clamped to 1", level)
		level = 1
	} else if level > 6 {
		tracer().Errorf("ast: heading level %d clamped to 6", level)
		level = 6
	}
	return &Node{Kind: Heading, Level: level}
}

// NewBlockquote creates an empty blockquote node.
func NewBlockquote() *Node {
	return &Node{Kind: Blockquote}
}

// NewCodeBlock creates a code block leaf holding the newline-joined fenced
// content. info is the fence info string, "" if the fence had none.
func NewCodeBlock(literal string, info string) *Node {
	return &Node{Kind: CodeBlock, Literal: literal, Info: info}
}

// NewBulletList creates an empty bullet list node.
func NewBulletList() *Node {
	return &Node{Kind: BulletList}
}

// NewOrderedList creates an empty ordered list node. start is clamped to ≥ 1.
func NewOrderedList(start int) *Node {
	if start < 1 {
		tracer().Errorf("ast: ordered list start %d clamped to 1", start)
		start = 1
	}
	return &Node{Kind: OrderedList, Start: start}
}

// NewListItem creates an empty list item node.
func NewListItem() *Node {
	return &Node{Kind: ListItem}
}

// NewThematicBreak creates a thematic break leaf.
func NewThematicBreak() *Node {
	return &Node{Kind: ThematicBreak}
}

// NewText creates a text leaf with verbatim content.
func NewText(literal string) *Node {
	return &Node{Kind: Text, Literal: literal}
}

// NewEmphasis creates an empty emphasis node.
func NewEmphasis() *Node {
	return &Node{Kind: Emphasis}
}

// NewStrong creates an empty strong-emphasis node.
func NewStrong() *Node {
	return &Node{Kind: Strong}
}

// NewCode creates an inline code span leaf.
func NewCode(literal string) *Node {
	return &Node{Kind: Code, Literal: literal}
}

// NewSoftBreak creates a soft line break leaf.
func NewSoftBreak() *Node {
	return &Node{Kind: SoftBreak}
}

// NewHardBreak creates a hard line break leaf.
func NewHardBreak() *Node {
	return &Node{Kind: HardBreak}
}

// NewHTMLInline creates a leaf holding a verbatim inline HTML tag.
func NewHTMLInline(literal string) *Node {
	return &Node{Kind: HTMLInline, Literal: literal}
}

// NewAutolink creates an autolink node with a single text child echoing the
// destination URL.
func NewAutolink(destination string) *Node {
	n := &Node{Kind: Autolink, Destination: destination}
	n.Children = []*Node{NewText(destination)}
	return n
}

// NewImage creates an image node with a single text child holding the alt
// text. title may be empty.
func NewImage(destination string, alt string, title string) *Node {
	n := &Node{Kind: Image, Destination: destination, Title: title}
	n.Children = []*Node{NewText(alt)}
	return n
}

// NewLink creates a link node; the label becomes the node's children and is
// appended by the caller.
func NewLink(destination string) *Node {
	return &Node{Kind: Link, Destination: destination}
}

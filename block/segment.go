package block

import (
	"regexp"
	"strings"

	"github.com/npillmayer/commonmark/ast"
	"github.com/npillmayer/commonmark/inline"
)

var (
	headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	breakPattern   = regexp.MustCompile(`^(\*( ?\*){2,}|-( ?-){2,}|_( ?_){2,})$`)
)

// Segment consumes input lines in a single forward pass and produces the
// ordered top-level block nodes. It never fails: lines with no recognizable
// structure accumulate into paragraphs.
func Segment(lines []string) []*ast.Node {
	var blocks []*ast.Node
	var para, quote, fence []string
	inFence := false
	fenceInfo := ""

	flushPara := func() {
		if len(para) == 0 {
			return
		}
		p := ast.NewParagraph()
		for _, n := range inline.Assemble(para) {
			p.AppendChild(n)
		}
		blocks = append(blocks, p)
		para = nil
	}
	flushQuote := func() {
		if len(quote) == 0 {
			return
		}
		p := ast.NewParagraph()
		for _, n := range inline.Scan(strings.Join(quote, " ")) {
			p.AppendChild(n)
		}
		blocks = append(blocks, ast.NewBlockquote().AppendChild(p))
		quote = nil
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if isFence(line) {
			if inFence {
				blocks = append(blocks, ast.NewCodeBlock(strings.Join(fence, "\n"), fenceInfo))
				inFence, fence, fenceInfo = false, nil, ""
			} else {
				flushQuote()
				flushPara()
				inFence = true
				fenceInfo = strings.TrimSpace(line[3:])
			}
			continue
		}
		if inFence {
			fence = append(fence, line)
			continue
		}
		if m := headingPattern.FindStringSubmatch(line); m != nil {
			flushQuote()
			flushPara()
			h := ast.NewHeading(len(m[1]))
			for _, n := range inline.Scan(strings.TrimSpace(m[2])) {
				h.AppendChild(n)
			}
			blocks = append(blocks, h)
			continue
		}
		trimmed := strings.TrimSpace(line)
		if breakPattern.MatchString(trimmed) {
			flushQuote()
			flushPara()
			blocks = append(blocks, ast.NewThematicBreak())
			continue
		}
		if isListItem(line) {
			flushQuote()
			flushPara()
			list, consumed := parseList(lines[i:])
			blocks = append(blocks, list)
			i += consumed - 1
			continue
		}
		if strings.HasPrefix(line, ">") {
			flushPara()
			quote = append(quote, stripQuoteMarker(line))
			continue
		}
		if trimmed == "" {
			flushQuote()
			flushPara()
			continue
		}
		// a plain line ends a blockquote; it does not continue across it
		flushQuote()
		para = append(para, line)
	}
	// EOF flush order: fence, blockquote, paragraph
	if inFence {
		tracer().Debugf("block: unterminated fence consumed %d line(s)", len(fence))
		blocks = append(blocks, ast.NewCodeBlock(strings.Join(fence, "\n"), fenceInfo))
	}
	flushQuote()
	flushPara()
	return blocks
}

func isFence(line string) bool {
	return strings.HasPrefix(line, "```")
}

// stripQuoteMarker removes the leading '>' and at most one following space.
func stripQuoteMarker(line string) string {
	line = line[1:]
	return strings.TrimPrefix(line, " ")
}

// indentWidth is the number of leading whitespace characters of a line.
func indentWidth(line string) int {
	w := 0
	for w < len(line) && (line[w] == ' ' || line[w] == '\t') {
		w++
	}
	return w
}

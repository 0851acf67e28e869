package block

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/commonmark/ast"
	"github.com/npillmayer/commonmark/inline"
)

var (
	bulletPattern  = regexp.MustCompile(`^([-*+]) (.*)$`)
	ordinalPattern = regexp.MustCompile(`^(\d+)\. (.*)$`)
)

func isListItem(line string) bool {
	return bulletPattern.MatchString(line) || ordinalPattern.MatchString(line)
}

func sameFamilyItem(line string, ordered bool) bool {
	if ordered {
		return ordinalPattern.MatchString(line)
	}
	return bulletPattern.MatchString(line)
}

// parseList consumes a complete list starting at lines[0], which must be a
// list-item line. It returns the list node and the number of lines consumed.
func parseList(lines []string) (*ast.Node, int) {
	ordered := ordinalPattern.MatchString(lines[0])
	end := listExtent(lines, ordered)
	extent := lines[:end]
	tracer().Debugf("block: list extent is %d line(s), ordered=%v", end, ordered)

	var list *ast.Node
	if ordered {
		m := ordinalPattern.FindStringSubmatch(lines[0])
		start, _ := strconv.Atoi(m[1])
		list = ast.NewOrderedList(start)
	} else {
		list = ast.NewBulletList()
	}
	for i := 0; i < len(extent); {
		if !sameFamilyItem(extent[i], ordered) {
			// blank line between items, already accounted for by the extent
			i++
			continue
		}
		item, consumed := parseItem(extent[i:], ordered)
		list.AppendChild(item)
		i += consumed
	}
	return list, end
}

// listExtent looks ahead from the first item line and returns the exclusive
// index of the first line no longer belonging to the list. A line belongs if
// it is an item of the same marker family, a continuation line indented at
// least two columns, or a blank line directly followed by one of the two.
// Changing the marker family (bullet vs ordinal) ends the list.
func listExtent(lines []string, ordered bool) int {
	j := 0
	for j < len(lines) {
		line := lines[j]
		switch {
		case sameFamilyItem(line, ordered):
		case strings.TrimSpace(line) == "":
			if j+1 >= len(lines) {
				return j
			}
			next := lines[j+1]
			if !sameFamilyItem(next, ordered) && indentWidth(next) < 2 {
				return j
			}
		case indentWidth(line) >= 2:
		default:
			return j
		}
		j++
	}
	return j
}

// parseItem consumes one item at lines[0] and returns the item node plus the
// number of lines consumed (including trailing blanks that turned out not to
// belong to the item's content).
func parseItem(lines []string, ordered bool) (*ast.Node, int) {
	first, contentIndent := splitMarker(lines[0], ordered)
	content := []string{first}
	hasBlank := false
	pendingBlanks := 0
	consumed := 1
	for consumed < len(lines) {
		line := lines[consumed]
		if sameFamilyItem(line, ordered) {
			break
		}
		if strings.TrimSpace(line) == "" {
			pendingBlanks++
			consumed++
			continue
		}
		if indentWidth(line) == 0 {
			break
		}
		// further indented content: retain any buffered blank lines
		for ; pendingBlanks > 0; pendingBlanks-- {
			content = append(content, "")
			hasBlank = true
		}
		content = append(content, stripIndent(line, contentIndent))
		consumed++
	}

	item := ast.NewListItem()
	switch {
	case len(content) == 1:
		// tight item, inline nodes directly without a paragraph wrapper
		for _, n := range inline.Scan(strings.TrimRight(content[0], " \t")) {
			item.AppendChild(n)
		}
	case !hasBlank:
		p := ast.NewParagraph()
		for _, n := range inline.Assemble(content) {
			p.AppendChild(n)
		}
		item.AppendChild(p)
	default:
		for _, b := range parseItemBlocks(content) {
			item.AppendChild(b)
		}
	}
	return item, consumed
}

// splitMarker splits an item line into its first-line content and the
// content indentation width, i.e. the printed width of the marker text
// ("- " is 2, "12. " is 4).
func splitMarker(line string, ordered bool) (string, int) {
	if ordered {
		m := ordinalPattern.FindStringSubmatch(line)
		return m[2], len(m[1]) + 2
	}
	m := bulletPattern.FindStringSubmatch(line)
	return m[2], 2
}

// stripIndent removes up to n columns of leading whitespace.
func stripIndent(line string, n int) string {
	for i := 0; i < n && len(line) > 0 && (line[0] == ' ' || line[0] == '\t'); i++ {
		line = line[1:]
	}
	return line
}

// parseItemBlocks is the reduced segmenter for multi-paragraph item bodies:
// fence-aware and blank-line-splitting, producing paragraphs and code
// blocks only.
func parseItemBlocks(lines []string) []*ast.Node {
	var blocks []*ast.Node
	var para, fence []string
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

	for _, line := range lines {
		if isFence(line) {
			if inFence {
				blocks = append(blocks, ast.NewCodeBlock(strings.Join(fence, "\n"), fenceInfo))
				inFence, fence, fenceInfo = false, nil, ""
			} else {
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
		if strings.TrimSpace(line) == "" {
			flushPara()
			continue
		}
		para = append(para, line)
	}
	if inFence {
		blocks = append(blocks, ast.NewCodeBlock(strings.Join(fence, "\n"), fenceInfo))
	}
	flushPara()
	return blocks
}

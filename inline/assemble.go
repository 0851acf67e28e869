package inline

import (
	"strings"

	"github.com/npillmayer/commonmark/ast"
)

// Assemble scans N contiguous source lines forming one paragraph body.
//
// Every line but the last contributes its inline nodes plus a trailing
// break node: a hard break if the raw line carried two or more trailing
// space characters, a soft break otherwise. The last line never gets a
// break appended, so trailing whitespace on it is simply dropped.
func Assemble(lines []string) []*ast.Node {
	var nodes []*ast.Node
	for i, line := range lines {
		nodes = append(nodes, Scan(strings.TrimRight(line, " \t"))...)
		if i == len(lines)-1 {
			break
		}
		if strings.HasSuffix(line, "  ") {
			nodes = append(nodes, ast.NewHardBreak())
		} else {
			nodes = append(nodes, ast.NewSoftBreak())
		}
	}
	return nodes
}

package ast

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/k0kubun/pp"
)

// Stats counts the nodes of a tree, grouped by kind. It is a diagnostic
// helper for debugging and tests, not part of the rendering contract.
func Stats(root *Node) map[NodeKind]int {
	counts := make(map[NodeKind]int)
	if root == nil {
		return counts
	}
	stack := arraystack.New()
	stack.Push(root)
	for !stack.Empty() {
		v, _ := stack.Pop()
		n := v.(*Node)
		counts[n.Kind]++
		// push in reverse so that children pop in document order
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack.Push(n.Children[i])
		}
	}
	return counts
}

// Count returns the total number of nodes in a tree.
func Count(root *Node) int {
	total := 0
	for _, c := range Stats(root) {
		total += c
	}
	return total
}

// Dump pretty-prints a tree for debugging purposes.
func Dump(root *Node) string {
	return pp.Sprint(root)
}

package bintree

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump returns a printable representation of the shape of the (sub-)tree
// starting at root, one node per line. Missing left children are printed
// as '∅' if the right child is present, so left and right stay distinguishable.
func Dump[T any](root *Node[T]) string {
	if root == nil {
		return "∅\n"
	}
	p := tp.New()
	dump(p, root)
	return p.String()
}

func dump[T any](p tp.Tree, node *Node[T]) {
	label := fmt.Sprintf("%v", node.Value)
	if node.IsLeaf() {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	if node.Left != nil {
		dump(branch, node.Left)
	} else {
		branch.AddNode("∅")
	}
	if node.Right != nil {
		dump(branch, node.Right)
	}
}
